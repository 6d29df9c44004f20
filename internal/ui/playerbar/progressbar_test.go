package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/llehouerou/soundfeed/internal/icons"
	"github.com/llehouerou/soundfeed/internal/playback"
	"github.com/llehouerou/soundfeed/internal/ui/testutil"
)

func TestRenderProgress_Layout(t *testing.T) {
	icons.Init("none")
	t.Cleanup(func() { icons.Init("") })

	line, layout := RenderProgress(30*time.Second, 2*time.Minute, 40, playback.StatusPlaying)
	plain := testutil.StripANSI(line)

	// ">  0:30  " is 9 cells, "  2:00" is 6.
	if layout.BarStart != 9 {
		t.Errorf("BarStart = %d, want 9", layout.BarStart)
	}
	if layout.BarWidth != 25 {
		t.Errorf("BarWidth = %d, want 25", layout.BarWidth)
	}
	if w := testutil.MeasureWidth(line); w != 40 {
		t.Errorf("width = %d, want 40", w)
	}
	if !strings.HasPrefix(plain, ">  0:30  ") || !strings.HasSuffix(plain, "  2:00") {
		t.Errorf("line = %q", plain)
	}
	// 25% of 25 cells
	if n := strings.Count(plain, filledCell); n != 6 {
		t.Errorf("filled cells = %d, want 6", n)
	}
}

func TestRenderProgress_UnknownDuration(t *testing.T) {
	line, layout := RenderProgress(5*time.Second, 0, 40, playback.StatusPlaying)
	plain := testutil.StripANSI(line)

	if !strings.HasSuffix(plain, "--:--") {
		t.Errorf("line = %q, want --:-- total", plain)
	}
	if strings.Contains(plain, filledCell) {
		t.Error("unknown duration should show an empty bar")
	}
	if layout.BarWidth == 0 {
		t.Error("bar should still be laid out")
	}
}

func TestRenderProgress_TooNarrow(t *testing.T) {
	icons.Init("none")
	t.Cleanup(func() { icons.Init("") })

	line, layout := RenderProgress(65*time.Second, 3*time.Minute, 12, playback.StatusPaused)
	if got := testutil.StripANSI(line); got != "= 1:05 / 3:00" {
		t.Errorf("line = %q", got)
	}
	if layout != (ProgressLayout{}) {
		t.Errorf("layout = %+v, want zero", layout)
	}
}

func TestProgressLayout_Hit(t *testing.T) {
	l := ProgressLayout{Row: 2, BarStart: 10, BarWidth: 20}

	tests := []struct {
		x, y int
		want bool
	}{
		{10, 2, true},
		{29, 2, true},
		{30, 2, false},
		{9, 2, false},
		{15, 1, false},
	}
	for _, tt := range tests {
		if got := l.Hit(tt.x, tt.y); got != tt.want {
			t.Errorf("Hit(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if l.Offset(12) != 2 || l.Offset(4) != -6 {
		t.Errorf("Offset() wrong: %d %d", l.Offset(12), l.Offset(4))
	}
	if (ProgressLayout{}).Hit(0, 0) {
		t.Error("empty layout should never hit")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{59 * time.Second, "0:59"},
		{61 * time.Second, "1:01"},
		{75*time.Minute + 2*time.Second, "75:02"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
