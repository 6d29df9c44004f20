package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundfeed/internal/ui/popup"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case popup.CloseMsg:
		m.Popup = nil
		return m, nil

	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)

	case FeedMessage:
		return m.handleFeedMsg(msg)
	}

	// Anything else (cursor blink, ...) belongs to the open popup.
	if m.Popup != nil {
		var cmd tea.Cmd
		m.Popup, cmd = m.Popup.Update(msg)
		return m, cmd
	}
	return m, nil
}
