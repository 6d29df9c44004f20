// Package playerbar renders the persistent player and resolves seek gestures
// on its progress line.
package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/soundfeed/internal/icons"
	"github.com/llehouerou/soundfeed/internal/playback"
	"github.com/llehouerou/soundfeed/internal/ui/render"
)

const (
	// Height is the rendered height: two content rows plus the border.
	Height = 4

	padX = 2
	// progressRow is the progress line's row, counting the top border.
	progressRow = 2
)

// State holds everything needed to render the player bar.
type State struct {
	Status       playback.Status
	Title        string
	Author       string
	Genres       []string
	FreeDownload bool
	Position     time.Duration
	Duration     time.Duration
	Volume       float64
	Visible      bool
}

// NewState builds the render state from a playback snapshot. While a seek
// gesture is dragging, its live position replaces the polled one.
func NewState(s playback.Snapshot, g *SeekGesture) State {
	st := State{
		Status:   s.Status(),
		Position: s.Position,
		Duration: s.Duration,
		Volume:   s.Volume,
		Visible:  s.IsPlayerVisible,
	}
	t := s.CurrentTrack
	if t == nil {
		t = s.PendingTrack
	}
	if t != nil {
		st.Title = t.Title
		st.Author = t.Author.Name
		st.Genres = t.Genres
		st.FreeDownload = t.FreeDownload
	}
	if g != nil {
		st.Position = g.Display(s.Position, s.Duration)
	}
	return st
}

// Interactive reports whether the progress line accepts seek gestures.
func (s State) Interactive() bool {
	return s.Status.HasTrack() && s.Duration > 0
}

// Render returns the player bar at width and where its progress bar landed.
// It returns "" when the player is hidden or there is nothing to show.
func Render(s State, width int) (string, ProgressLayout) {
	if !s.Visible || s.Status == playback.StatusIdle {
		return "", ProgressLayout{}
	}

	// border + horizontal padding on both sides
	inner := max(width-2-2*padX, 0)

	title := s.Title
	if title == "" {
		title = "Untitled"
	}
	if s.Status == playback.StatusLoading {
		title = "Loading " + title
	}

	var meta []string
	if len(s.Genres) > 0 {
		meta = append(meta, strings.Join(s.Genres, ", "))
	}
	if s.FreeDownload {
		meta = append(meta, icons.Free())
	}

	volume := RenderVolume(s.Volume)
	metaText := strings.Join(meta, "  ")
	room := inner - lipgloss.Width(volume) - 1
	if metaText != "" {
		room -= lipgloss.Width(metaText) + 2
	}
	line1 := titleStyle().Render(render.Truncate(title, max(room, 0)))
	if s.Author != "" && lipgloss.Width(title)+3 < room {
		line1 += authorStyle().Render(" · " + render.Truncate(s.Author, room-lipgloss.Width(title)-3))
	}
	if metaText != "" {
		line1 += "  " + metaStyle().Render(metaText)
	}
	line1 = render.Row(line1, volume, inner)

	line2, layout := RenderProgress(s.Position, s.Duration, inner, s.Status)
	if layout.BarWidth > 0 {
		layout.Row = progressRow
		layout.BarStart += 1 + padX
	}

	out := barStyle().Width(width - 2).Render(line1 + "\n" + line2)
	return out, layout
}
