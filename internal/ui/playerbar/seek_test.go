package playerbar

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/soundfeed/internal/playback"
	"github.com/llehouerou/soundfeed/internal/player"
)

func TestSeekGesture_BeginNotInteractive(t *testing.T) {
	tests := []struct {
		name     string
		x, width int
		duration time.Duration
	}{
		{"unknown duration", 10, 100, 0},
		{"negative duration", 10, 100, -time.Second},
		{"no width", 0, 0, time.Minute},
		{"left of bar", -1, 100, time.Minute},
		{"right of bar", 100, 100, time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSeekGesture(GestureConfig{})
			if g.Begin(tt.x, tt.width, tt.duration) {
				t.Error("Begin() = true, want false")
			}
			if g.Dragging() {
				t.Error("Dragging() = true after rejected Begin")
			}
			if _, ok := g.Release(tt.x, tt.duration); ok {
				t.Error("Release() committed without a gesture")
			}
		})
	}
}

func TestSeekGesture_DragCommitsLastLivePercent(t *testing.T) {
	g := NewSeekGesture(GestureConfig{})
	require.True(t, g.Begin(10, 100, 200*time.Second))

	g.Move(50)
	assert.InDelta(t, 50, g.Percent(), 1e-9)
	g.Move(75)

	// The release column is ignored for a drag.
	target, ok := g.Release(20, 200*time.Second)
	require.True(t, ok)
	assert.Equal(t, 150*time.Second, target)
}

func TestSeekGesture_TapSeeksToReleaseLocation(t *testing.T) {
	g := NewSeekGesture(GestureConfig{})
	require.True(t, g.Begin(30, 100, 200*time.Second))

	target, ok := g.Release(40, 200*time.Second)
	require.True(t, ok)
	assert.Equal(t, 80*time.Second, target)
}

func TestSeekGesture_TapAtStart(t *testing.T) {
	g := NewSeekGesture(GestureConfig{})
	require.True(t, g.Begin(25, 100, 120*time.Second))
	g.Move(25)

	target, ok := g.Release(25, 120*time.Second)
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, target, "tap must not seek to a stale 0%")
}

func TestSeekGesture_JitterWithinSlopIsTap(t *testing.T) {
	g := NewSeekGesture(GestureConfig{TapSlop: 1})
	// 200 columns: one column is 0.5%.
	require.True(t, g.Begin(60, 200, 100*time.Second))
	g.Move(61)

	target, ok := g.Release(62, 100*time.Second)
	require.True(t, ok)
	assert.Equal(t, 31*time.Second, target)
}

func TestSeekGesture_DragStaysDragAfterReturning(t *testing.T) {
	g := NewSeekGesture(GestureConfig{})
	require.True(t, g.Begin(50, 100, 100*time.Second))
	g.Move(80)
	g.Move(51)

	target, ok := g.Release(90, 100*time.Second)
	require.True(t, ok)
	assert.Equal(t, 51*time.Second, target)
}

func TestSeekGesture_MoveClamps(t *testing.T) {
	g := NewSeekGesture(GestureConfig{})
	require.True(t, g.Begin(50, 100, time.Minute))

	g.Move(-40)
	assert.Equal(t, 0.0, g.Percent())
	g.Move(400)
	assert.Equal(t, 100.0, g.Percent())

	target, ok := g.Release(400, time.Minute)
	require.True(t, ok)
	assert.Equal(t, time.Minute, target)
}

func TestSeekGesture_MoveWithoutBeginIgnored(t *testing.T) {
	g := NewSeekGesture(GestureConfig{})
	g.Move(50)
	assert.Equal(t, 0.0, g.Percent())
	assert.False(t, g.Dragging())
}

func TestSeekGesture_Cancel(t *testing.T) {
	g := NewSeekGesture(GestureConfig{})
	require.True(t, g.Begin(10, 100, time.Minute))
	g.Move(70)

	g.Cancel()

	assert.False(t, g.Dragging())
	_, ok := g.Release(70, time.Minute)
	assert.False(t, ok)
}

func TestSeekGesture_ReleaseWithLostDuration(t *testing.T) {
	g := NewSeekGesture(GestureConfig{})
	require.True(t, g.Begin(10, 100, time.Minute))

	_, ok := g.Release(10, 0)
	assert.False(t, ok)
	assert.False(t, g.Dragging())
}

func TestSeekGesture_SettleWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := NewSeekGesture(GestureConfig{SettleWindow: 100 * time.Millisecond})
		require.True(t, g.Begin(0, 100, 100*time.Second))
		g.Move(40)
		assert.True(t, g.Dragging())

		_, ok := g.Release(40, 100*time.Second)
		require.True(t, ok)
		assert.True(t, g.Dragging(), "held after release")
		assert.Equal(t, 40*time.Second, g.Display(5*time.Second, 100*time.Second))

		time.Sleep(60 * time.Millisecond)
		assert.True(t, g.Dragging())

		time.Sleep(50 * time.Millisecond)
		assert.False(t, g.Dragging())
		assert.Equal(t, 5*time.Second, g.Display(5*time.Second, 100*time.Second))
	})
}

func TestSeekGesture_DisplayWhileDragging(t *testing.T) {
	g := NewSeekGesture(GestureConfig{})
	assert.Equal(t, 7*time.Second, g.Display(7*time.Second, time.Minute))

	require.True(t, g.Begin(0, 100, time.Minute))
	g.Move(50)
	assert.Equal(t, 30*time.Second, g.Display(7*time.Second, time.Minute))
}

func TestSeekGesture_OneSeekPerGesture(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m := player.NewMock()
		m.SetSourceDuration("t.mp3", 100*time.Second)
		svc := playback.New(m, playback.Config{})
		defer svc.Close()
		require.NoError(t, svc.PlayTrack(playback.Track{ID: "t", Source: "t.mp3"}))

		g := NewSeekGesture(GestureConfig{})
		st := svc.State()
		require.True(t, g.Begin(10, 100, st.Duration))
		for x := 11; x <= 60; x++ {
			g.Move(x)
		}
		assert.Empty(t, m.SeekCalls(), "moves must not seek")

		target, ok := g.Release(60, st.Duration)
		require.True(t, ok)
		require.NoError(t, svc.SeekTo(target))

		assert.Equal(t, []time.Duration{60 * time.Second}, m.SeekCalls())
		assert.Equal(t, 60*time.Second, svc.State().Position)
	})
}
