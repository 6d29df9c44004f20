// Package popup renders centered modal boxes over the main view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/soundfeed/internal/ui/styles"
)

// Dialog is a bordered box with a title, content lines and a footer hint.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // content width; 0 = auto-fit
}

// Render returns the dialog centered in a termWidth x termHeight area.
func (d Dialog) Render(termWidth, termHeight int) string {
	t := styles.T()

	width := d.Width
	if width == 0 {
		width = max(maxLineWidth(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer))
	}
	// border + padding
	width = max(min(width, termWidth-4), 1)

	content := strings.Split(d.Content, "\n")
	// border, title and footer rows
	room := termHeight - 2
	if d.Title != "" {
		room -= 2
	}
	if d.Footer != "" {
		room -= 2
	}
	if room > 0 && len(content) > room {
		content = append(content[:room-1], "…")
	}

	var lines []string
	if d.Title != "" {
		lines = append(lines, centerLine(t.S().Title.Render(ansi.Truncate(d.Title, width, "…")), width), "")
	}
	for _, line := range content {
		lines = append(lines, padLine(ansi.Truncate(line, width, "…"), width))
	}
	if d.Footer != "" {
		lines = append(lines, "", centerLine(t.S().Subtle.Render(ansi.Truncate(d.Footer, width, "…")), width))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))

	return Center(box, termWidth, termHeight)
}

// Center places pre-rendered content in the middle of the area.
func Center(content string, termWidth, termHeight int) string {
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, content)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}

func padLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
