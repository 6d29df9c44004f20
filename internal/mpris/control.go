package mpris

import (
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/llehouerou/soundfeed/internal/playback"
)

// MPRIS playback status values.
const (
	statusPlaying = "Playing"
	statusPaused  = "Paused"
	statusStopped = "Stopped"
)

// trackInfo is the subset of xesam metadata exported for the current track.
type trackInfo struct {
	ObjectPath string
	Title      string
	Artist     string
	ArtURL     string
	Length     time.Duration
}

// controller maps media-key style requests onto the playback service.
type controller struct {
	service playback.Service
}

func (c controller) playPause() error {
	return c.service.TogglePlayPause()
}

func (c controller) play() error {
	return c.service.ResumeTrack()
}

func (c controller) pause() error {
	return c.service.PauseTrack()
}

func (c controller) stop() error {
	return c.service.StopTrack()
}

// seekBy moves relative to the current position.
func (c controller) seekBy(offset time.Duration) error {
	return ignoreSeek(c.service.SeekTo(c.service.State().Position + offset))
}

// setPosition seeks to an absolute position. Requests for a track that is
// no longer current are ignored.
func (c controller) setPosition(objectPath string, pos time.Duration) error {
	st := c.service.State()
	if st.CurrentTrack == nil || trackObjectPath(st.CurrentTrack.ID) != objectPath {
		return nil
	}
	return ignoreSeek(c.service.SeekTo(pos))
}

func (c controller) status() string {
	switch c.service.State().Status() {
	case playback.StatusPlaying:
		return statusPlaying
	case playback.StatusPaused:
		return statusPaused
	case playback.StatusIdle, playback.StatusLoading:
	}
	return statusStopped
}

// metadata returns the current track, if any.
func (c controller) metadata() (trackInfo, bool) {
	st := c.service.State()
	t := st.CurrentTrack
	if t == nil {
		return trackInfo{}, false
	}
	return trackInfo{
		ObjectPath: trackObjectPath(t.ID),
		Title:      t.Title,
		Artist:     t.Author.Name,
		ArtURL:     t.Author.Avatar,
		Length:     st.Duration,
	}, true
}

func (c controller) volume() float64 {
	return c.service.State().Volume
}

func (c controller) setVolume(level float64) {
	c.service.SetVolumeLevel(level)
}

func (c controller) position() time.Duration {
	return c.service.State().Position
}

func (c controller) canPlay() bool {
	return c.service.State().CurrentTrack != nil
}

func (c controller) canSeek() bool {
	st := c.service.State()
	return st.CurrentTrack != nil && st.Duration > 0
}

// ignoreSeek drops the sentinel for seeks without a seekable track; the
// bus has no meaningful error for it.
func ignoreSeek(err error) error {
	if errors.Is(err, playback.ErrSeekIgnored) {
		return nil
	}
	return err
}

func trackObjectPath(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}

// notifier receives property change signals.
type notifier interface {
	OnPlayPause() error
	OnTitle() error
}

// forward turns service events into property change signals until done is
// closed or the service shuts down.
func forward(sub *playback.Subscription, n notifier, done <-chan struct{}, onErr func(error)) {
	for {
		var err error
		select {
		case <-done:
			return
		case <-sub.Done:
			return
		case <-sub.StateChanged:
			err = n.OnPlayPause()
		case <-sub.TrackChanged:
			err = n.OnTitle()
		}
		if err != nil && onErr != nil {
			onErr(err)
		}
	}
}
