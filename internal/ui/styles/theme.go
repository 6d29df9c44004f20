// Package styles holds the soundfeed palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette plus styles built from it.
type Theme struct {
	Primary   lipgloss.Color // accent: active tab, playing row, bar fill end
	Secondary lipgloss.Color // warm accent: bar fill start, counters

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color

	styles *Styles
}

// Styles are the pre-built styles shared by the UI packages.
type Styles struct {
	Base        lipgloss.Style
	Muted       lipgloss.Style
	Subtle      lipgloss.Style
	Title       lipgloss.Style
	Playing     lipgloss.Style
	Cursor      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#ff7a1a"),
	Secondary: lipgloss.Color("#ffc15e"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5c5c5c"),

	BgCursor: lipgloss.Color("#2e2e2e"),

	Border:      lipgloss.Color("#5c5c5c"),
	BorderFocus: lipgloss.Color("#ff7a1a"),

	Success: lipgloss.Color("#4fc08d"),
	Error:   lipgloss.Color("#ff5f5f"),
}

// T returns the active theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles for t, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.build()
	}
	return t.styles
}

func (t *Theme) build() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Playing: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Cursor:  lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase),
		TabActive: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(t.FgMuted).Padding(0, 1),
		Success:     lipgloss.NewStyle().Foreground(t.Success),
		Error:       lipgloss.NewStyle().Foreground(t.Error),
	}
}
