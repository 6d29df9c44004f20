package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/soundfeed/internal/ui/playerbar"
	"github.com/llehouerou/soundfeed/internal/ui/render"
	"github.com/llehouerou/soundfeed/internal/ui/styles"
)

const hints = "enter play · space pause · L like · c comment · a stats · ? keys"

// View implements tea.Model.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	bar, _ := m.renderPlayer()
	listHeight := m.listHeight(bar)

	var body string
	if m.Popup != nil {
		body = m.Popup.View(m.Width, listHeight)
	} else {
		body = m.list().render(m.Width, listHeight, m.playingID())
	}

	parts := []string{m.renderHeader(), body, m.renderStatus()}
	if bar != "" {
		parts = append(parts, bar)
	}
	return strings.Join(parts, "\n")
}

// listHeight is what remains for the list below the header, above the
// status line and the player bar.
func (m Model) listHeight(bar string) int {
	h := m.Height - 2
	if bar != "" {
		h -= playerbar.Height
	}
	return max(h, 0)
}

func (m Model) renderPlayer() (string, playerbar.ProgressLayout) {
	st := playerbar.NewState(m.Playback.State(), m.Gesture)
	return playerbar.Render(st, m.Width)
}

func (m Model) renderHeader() string {
	s := styles.T().S()

	tabs := []Tab{TabFeed, TabLiked}
	if m.Offline {
		tabs = tabs[:1]
	}
	rendered := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t == m.ActiveTab {
			rendered = append(rendered, s.TabActive.Render(" "+t.String()+" "))
		} else {
			rendered = append(rendered, s.TabInactive.Render(" "+t.String()+" "))
		}
	}
	left := styles.Gradient("soundfeed", styles.T().Secondary, styles.T().Primary, true) +
		"  " + strings.Join(rendered, " ")

	l := m.Lists[m.ActiveTab]
	var right string
	switch {
	case l.Loading:
		right = "loading..."
	case l.Loaded:
		right = fmt.Sprintf("page %d/%d · %d posts", l.Page, l.TotalPages, l.Total)
	}
	return render.Row(left, s.Muted.Render(right), m.Width)
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	var line string
	switch {
	case m.ErrorMsg != "":
		line = s.Error.Render(render.Truncate(m.ErrorMsg, m.Width))
	case m.StatusMsg != "":
		line = s.Success.Render(render.Truncate(m.StatusMsg, m.Width))
	default:
		line = s.Subtle.Render(render.Truncate(hints, m.Width))
	}
	return line + strings.Repeat(" ", max(m.Width-lipgloss.Width(line), 0))
}
