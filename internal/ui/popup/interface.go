package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup defines the contract for modal popup components.
type Popup interface {
	// Init returns any initial command (e.g., focus text input).
	Init() tea.Cmd

	// Update handles messages and returns updated popup + command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup centered in a width x height area.
	View(width, height int) string
}

// CloseMsg is sent by a popup that wants to be dismissed.
type CloseMsg struct{}

// Close returns a command that sends CloseMsg.
func Close() tea.Cmd {
	return func() tea.Msg { return CloseMsg{} }
}
