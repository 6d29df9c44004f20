package player

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// ErrInvalidSource is returned by Play when the loaded source is empty,
// unreachable or cannot be decoded.
var ErrInvalidSource = errors.New("invalid audio source")

var errSourceReplaced = errors.New("source replaced while opening")

// Player is the beep-backed audio handle.
type Player struct {
	mu sync.Mutex

	state  State
	source string
	gen    uint64 // bumped on every Load/Unload

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	closer   io.Closer

	// attached is true while the mixer holds the effect chain. The end of
	// stream callback clears it under the output lock, so it is an atomic.
	attached  atomic.Bool
	streamGen atomic.Uint64

	volumeLevel   float64
	httpClient    *http.Client
	maxRemoteSize int64
}

// New creates a player with full volume.
func New() *Player {
	return &Player{
		state:       Stopped,
		volumeLevel:   1,
		httpClient:    &http.Client{Timeout: 60 * time.Second},
		maxRemoteSize: defaultMaxRemoteSize,
	}
}

// Load replaces whatever is loaded with source. The source is not opened
// until Play, so startup failures surface there.
func (p *Player) Load(source string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.releaseLocked()
	p.source = source
	return nil
}

// Unload releases the current stream and forgets the source.
func (p *Player) Unload() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.releaseLocked()
	p.source = ""
}

// Play starts or resumes output. The first Play after Load opens and decodes
// the source; opening happens without holding the player lock so reads stay
// responsive during slow network fetches.
func (p *Player) Play() error {
	p.mu.Lock()
	switch p.state {
	case Playing:
		p.mu.Unlock()
		return nil
	case Paused:
		p.resumeLocked()
		p.mu.Unlock()
		return nil
	case Stopped:
	}
	source, gen := p.source, p.gen
	p.mu.Unlock()

	if source == "" {
		return ErrInvalidSource
	}

	opened, err := p.open(source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		opened.close()
		return errSourceReplaced
	}
	if err := initOutput(opened.format.SampleRate); err != nil {
		opened.close()
		return fmt.Errorf("init speaker: %w", err)
	}
	p.startLocked(opened)
	return nil
}

// Pause pauses output. No-op unless playing.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Playing || p.ctrl == nil {
		return
	}
	output.Lock()
	p.ctrl.Paused = true
	output.Unlock()
	p.state = Paused
}

// State returns the current handle state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Duration returns the length of the open stream, or 0 when unknown.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// CurrentTime returns the playback position. The boolean is false when no
// stream is ready yet.
func (p *Player) CurrentTime() (time.Duration, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0, false
	}
	output.Lock()
	pos := p.streamer.Position()
	output.Unlock()
	return p.format.SampleRate.D(pos), true
}

func (p *Player) startLocked(o *openedSource) {
	p.streamer = o.streamer
	p.format = o.format
	p.closer = o.closer

	var out beep.Streamer = o.streamer
	if rate := sampleRate(); o.format.SampleRate != rate {
		out = beep.Resample(4, o.format.SampleRate, rate, o.streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: out, Paused: false}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel <= 0,
	}
	p.state = Playing
	p.attachLocked()
}

// attachLocked hands the effect chain to the mixer. Must not be called
// with the output lock held.
func (p *Player) attachLocked() {
	sg := p.streamGen.Add(1)
	p.attached.Store(true)
	output.Play(beep.Seq(p.volume, beep.Callback(func() {
		if p.streamGen.Load() == sg {
			p.attached.Store(false)
		}
	})))
}

func (p *Player) resumeLocked() {
	if p.ctrl == nil {
		return
	}
	output.Lock()
	if !p.attached.Load() && p.streamer.Position() >= p.streamer.Len() {
		_ = p.streamer.Seek(0)
	}
	p.ctrl.Paused = false
	output.Unlock()
	if !p.attached.Load() {
		// The mixer drops a drained chain; hand it back.
		p.attachLocked()
	}
	p.state = Playing
}

func (p *Player) releaseLocked() {
	p.gen++
	if p.streamer != nil {
		p.streamGen.Add(1)
		if isOutputInitialized() {
			output.Clear()
		}
		p.streamer.Close()
		p.streamer = nil
	}
	if p.closer != nil {
		p.closer.Close()
		p.closer = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.attached.Store(false)
	p.state = Stopped
}
