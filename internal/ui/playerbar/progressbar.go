package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/soundfeed/internal/icons"
	"github.com/llehouerou/soundfeed/internal/playback"
	"github.com/llehouerou/soundfeed/internal/ui/styles"
)

const (
	filledCell = "━"
	emptyCell  = "─"
	minBar     = 3
)

// ProgressLayout locates the bar cells inside a rendered progress line so
// mouse columns can be mapped back to a percentage.
type ProgressLayout struct {
	Row      int // line within the rendered block
	BarStart int // column of the first bar cell
	BarWidth int // 0 when there was no room for a bar
}

// Hit reports whether (x, y) falls on a bar cell.
func (l ProgressLayout) Hit(x, y int) bool {
	return l.BarWidth > 0 && y == l.Row && x >= l.BarStart && x < l.BarStart+l.BarWidth
}

// Offset converts a column to a bar-relative one. It may be negative or past
// the end while dragging outside the bar.
func (l ProgressLayout) Offset(x int) int {
	return x - l.BarStart
}

// RenderProgress renders "▶  1:23  ━━━───  4:56" at width cells.
func RenderProgress(position, duration time.Duration, width int, status playback.Status) (string, ProgressLayout) {
	prefix := statusIcon(status) + "  " + formatDuration(position) + "  "
	suffix := "  " + formatTotal(duration)

	barWidth := width - lipgloss.Width(prefix) - lipgloss.Width(suffix)
	if barWidth < minBar {
		return statusIcon(status) + " " + formatDuration(position) + " / " + formatTotal(duration), ProgressLayout{}
	}

	var ratio float64
	if duration > 0 {
		ratio = min(max(float64(position)/float64(duration), 0), 1)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)

	t := styles.T()
	bar := styles.GradientFill(filledCell, filled, barWidth, t.Secondary, t.Primary) +
		emptyBarStyle().Render(strings.Repeat(emptyCell, barWidth-filled))

	line := timeStyle().Render(prefix) + bar + timeStyle().Render(suffix)
	return line, ProgressLayout{BarStart: lipgloss.Width(prefix), BarWidth: barWidth}
}

func statusIcon(s playback.Status) string {
	switch s {
	case playback.StatusPlaying:
		return icons.Play()
	case playback.StatusLoading:
		return icons.Loading()
	default:
		return icons.Pause()
	}
}

func formatDuration(d time.Duration) string {
	d = max(d, 0)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

// formatTotal shows "--:--" while the length is unknown.
func formatTotal(d time.Duration) string {
	if d <= 0 {
		return "--:--"
	}
	return formatDuration(d)
}
