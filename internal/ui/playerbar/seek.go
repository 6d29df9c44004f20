package playerbar

import (
	"math"
	"time"
)

const (
	DefaultTapSlop      = 1.0 // percent of bar width
	DefaultSettleWindow = 100 * time.Millisecond
)

// GestureConfig tunes tap detection and the post-release hold.
type GestureConfig struct {
	TapSlop      float64       // movement up to this many percent is a tap
	SettleWindow time.Duration // Dragging stays true this long after release
}

// SeekGesture turns press/motion/release on the progress bar into at most one
// seek per gesture. x is the column relative to the first bar cell.
//
// Move only updates the live percentage used for rendering; nothing is
// committed until Release.
type SeekGesture struct {
	cfg GestureConfig

	active   bool
	dragged  bool
	width    int
	startPct float64
	livePct  float64

	settleUntil time.Time
}

// NewSeekGesture creates a gesture resolver. Zero config values use defaults.
func NewSeekGesture(cfg GestureConfig) *SeekGesture {
	if cfg.TapSlop <= 0 {
		cfg.TapSlop = DefaultTapSlop
	}
	if cfg.SettleWindow <= 0 {
		cfg.SettleWindow = DefaultSettleWindow
	}
	return &SeekGesture{cfg: cfg}
}

// Begin starts a gesture at x. It returns false when the bar is not
// interactive (unknown duration, no width) or x is outside it.
func (g *SeekGesture) Begin(x, width int, duration time.Duration) bool {
	if duration <= 0 || width <= 0 || x < 0 || x >= width {
		return false
	}
	g.active = true
	g.dragged = false
	g.width = width
	g.startPct = g.percentAt(x)
	g.livePct = g.startPct
	g.settleUntil = time.Time{}
	return true
}

// Move tracks the pointer during a gesture.
func (g *SeekGesture) Move(x int) {
	if !g.active {
		return
	}
	g.livePct = g.percentAt(x)
	if math.Abs(g.livePct-g.startPct) > g.cfg.TapSlop {
		g.dragged = true
	}
}

// Release ends the gesture and returns the seek target. A drag commits the
// last live percentage; a tap commits the release location. ok is false
// when no gesture was in progress or the duration became unknown.
func (g *SeekGesture) Release(x int, duration time.Duration) (target time.Duration, ok bool) {
	if !g.active {
		return 0, false
	}
	g.active = false
	if duration <= 0 {
		return 0, false
	}

	pct := g.livePct
	if !g.dragged {
		pct = g.percentAt(x)
		g.livePct = pct
	}
	g.settleUntil = time.Now().Add(g.cfg.SettleWindow)
	return percentOf(pct, duration), true
}

// Cancel abandons the gesture without seeking.
func (g *SeekGesture) Cancel() {
	g.active = false
	g.dragged = false
	g.settleUntil = time.Time{}
}

// Dragging reports whether the live percentage should be shown instead of
// the polled position: during a gesture and for the settle window after it.
func (g *SeekGesture) Dragging() bool {
	return g.active || time.Now().Before(g.settleUntil)
}

// Percent returns the live percentage in [0, 100].
func (g *SeekGesture) Percent() float64 {
	return g.livePct
}

// Display returns the position to render: the live drag position while
// dragging, otherwise position.
func (g *SeekGesture) Display(position, duration time.Duration) time.Duration {
	if !g.Dragging() || duration <= 0 {
		return position
	}
	return percentOf(g.livePct, duration)
}

func (g *SeekGesture) percentAt(x int) float64 {
	return min(max(float64(x)/float64(g.width)*100, 0), 100)
}

func percentOf(pct float64, d time.Duration) time.Duration {
	return time.Duration(math.Round(pct / 100 * float64(d)))
}
