package mpris

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/soundfeed/internal/playback"
	"github.com/llehouerou/soundfeed/internal/player"
)

var testTrack = playback.Track{
	ID:     "a",
	Title:  "Night Drive",
	Author: playback.Author{Name: "Ada", Avatar: "https://cdn.example.com/ada.png"},
	Source: "a.mp3",
}

func newTestController(t *testing.T) (*player.Mock, playback.Service, controller) {
	t.Helper()
	m := player.NewMock()
	m.SetSourceDuration(testTrack.Source, 90*time.Second)
	svc := playback.New(m, playback.Config{})
	return m, svc, controller{service: svc}
}

func TestController_Idle(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		_, svc, c := newTestController(t)
		defer svc.Close()

		assert.Equal(t, statusStopped, c.status())
		_, ok := c.metadata()
		assert.False(t, ok)
		assert.False(t, c.canPlay())
		assert.False(t, c.canSeek())
		assert.NoError(t, c.seekBy(5*time.Second), "seek without a track is not a bus error")
		assert.NoError(t, c.play())
	})
}

func TestController_PlayingTrack(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		_, svc, c := newTestController(t)
		defer svc.Close()
		require.NoError(t, svc.PlayTrack(testTrack))

		assert.Equal(t, statusPlaying, c.status())
		info, ok := c.metadata()
		require.True(t, ok)
		assert.Equal(t, trackInfo{
			ObjectPath: trackObjectPath("a"),
			Title:      "Night Drive",
			Artist:     "Ada",
			ArtURL:     "https://cdn.example.com/ada.png",
			Length:     90 * time.Second,
		}, info)
		assert.True(t, c.canSeek())

		require.NoError(t, c.playPause())
		assert.Equal(t, statusPaused, c.status())
		require.NoError(t, c.play())
		assert.Equal(t, statusPlaying, c.status())
		require.NoError(t, c.pause())
		assert.Equal(t, statusPaused, c.status())

		require.NoError(t, c.stop())
		assert.Equal(t, statusStopped, c.status())
		_, ok = c.metadata()
		assert.False(t, ok)
	})
}

func TestController_Seeking(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, svc, c := newTestController(t)
		defer svc.Close()
		require.NoError(t, svc.PlayTrack(testTrack))

		require.NoError(t, c.setPosition("/org/mpris/MediaPlayer2/Track/stale", 10*time.Second))
		assert.Empty(t, m.SeekCalls())

		require.NoError(t, c.setPosition(trackObjectPath("a"), 30*time.Second))
		assert.Equal(t, 30*time.Second, c.position())

		require.NoError(t, c.seekBy(5*time.Second))
		assert.Equal(t, []time.Duration{30 * time.Second, 35 * time.Second}, m.SeekCalls())

		require.NoError(t, c.seekBy(-time.Minute))
		assert.Equal(t, time.Duration(0), c.position())
	})
}

func TestController_Volume(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		_, svc, c := newTestController(t)
		defer svc.Close()

		c.setVolume(0.3)
		assert.InDelta(t, 0.3, c.volume(), 1e-9)

		c.setVolume(4)
		assert.InDelta(t, 1.0, c.volume(), 1e-9)
	})
}

func TestTrackObjectPath(t *testing.T) {
	a := trackObjectPath("a")
	assert.Equal(t, a, trackObjectPath("a"))
	assert.NotEqual(t, a, trackObjectPath("b"))
	assert.Regexp(t, `^/org/mpris/MediaPlayer2/Track/[0-9a-f]+$`, a)
}

type countingNotifier struct {
	mu        sync.Mutex
	playPause int
	title     int
}

func (n *countingNotifier) OnPlayPause() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.playPause++
	return nil
}

func (n *countingNotifier) OnTitle() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.title++
	return nil
}

func (n *countingNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.playPause, n.title
}

func TestForward_SignalsChanges(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		_, svc, _ := newTestController(t)
		n := &countingNotifier{}
		done := make(chan struct{})
		exited := make(chan struct{})
		sub := svc.Subscribe()
		go func() {
			forward(sub, n, done, nil)
			close(exited)
		}()

		require.NoError(t, svc.PlayTrack(testTrack))
		synctest.Wait()
		playPause, title := n.counts()
		assert.Positive(t, playPause)
		assert.Equal(t, 1, title)

		require.NoError(t, svc.PauseTrack())
		synctest.Wait()
		after, _ := n.counts()
		assert.Greater(t, after, playPause)

		close(done)
		<-exited
		require.NoError(t, svc.Close())
	})
}

func TestForward_StopsWhenServiceCloses(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		_, svc, _ := newTestController(t)
		exited := make(chan struct{})
		sub := svc.Subscribe()
		go func() {
			forward(sub, &countingNotifier{}, make(chan struct{}), nil)
			close(exited)
		}()

		require.NoError(t, svc.Close())
		<-exited
	})
}
