//go:build linux

// Package mpris exposes the playback service on the session bus so desktop
// media keys and applets can drive it.
package mpris

import (
	"log/slog"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/soundfeed/internal/playback"
)

// Adapter connects the playback service to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
	done   chan struct{}
	logger *slog.Logger
}

// New creates and starts an MPRIS adapter for service.
func New(service playback.Service) (*Adapter, error) {
	a := &Adapter{
		done:   make(chan struct{}),
		logger: slog.Default().With("component", "mpris"),
	}

	ctl := controller{service: service}
	a.server = server.NewServer("soundfeed", &rootAdapter{}, &playerAdapter{ctl: ctl})
	ev := events.NewEventHandler(a.server)
	sub := service.Subscribe()

	go func() {
		if err := a.server.Listen(); err != nil {
			a.logger.Warn("listen failed", "err", err)
		}
	}()
	go forward(sub, ev.Player, a.done, func(err error) {
		a.logger.Debug("signal failed", "err", err)
	})

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	close(a.done)
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // the TUI owns its lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Soundfeed", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file", "http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	ctl controller
}

// Next and Previous have no meaning without a queue.
func (p *playerAdapter) Next() error     { return nil }
func (p *playerAdapter) Previous() error { return nil }

func (p *playerAdapter) Pause() error     { return p.ctl.pause() }
func (p *playerAdapter) PlayPause() error { return p.ctl.playPause() }
func (p *playerAdapter) Stop() error      { return p.ctl.stop() }
func (p *playerAdapter) Play() error      { return p.ctl.play() }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.ctl.seekBy(time.Duration(offset) * time.Microsecond)
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	return p.ctl.setPosition(trackID, time.Duration(position)*time.Microsecond)
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.ctl.status() {
	case statusPlaying:
		return types.PlaybackStatusPlaying, nil
	case statusPaused:
		return types.PlaybackStatusPaused, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	info, ok := p.ctl.metadata()
	if !ok {
		return types.Metadata{}, nil
	}
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(info.ObjectPath),
		Length:  types.Microseconds(info.Length.Microseconds()),
		Title:   info.Title,
		ArtUrl:  info.ArtURL,
	}
	if info.Artist != "" {
		meta.Artist = []string{info.Artist}
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.ctl.volume(), nil
}

func (p *playerAdapter) SetVolume(level float64) error {
	p.ctl.setVolume(level)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.ctl.position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.ctl.canPlay(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.ctl.canSeek(), nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}
