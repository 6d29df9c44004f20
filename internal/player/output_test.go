package player

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

const testRate = beep.SampleRate(8000)

// mixerOutput stands in for the speaker: tests pull samples explicitly.
type mixerOutput struct {
	mu    sync.Mutex
	mixer beep.Mixer
	rate  beep.SampleRate
}

func (o *mixerOutput) Init(rate beep.SampleRate, _ int) error {
	o.rate = rate
	return nil
}

func (o *mixerOutput) Play(s ...beep.Streamer) {
	o.mu.Lock()
	o.mixer.Add(s...)
	o.mu.Unlock()
}

func (o *mixerOutput) Clear() {
	o.mu.Lock()
	o.mixer.Clear()
	o.mu.Unlock()
}

func (o *mixerOutput) Lock()   { o.mu.Lock() }
func (o *mixerOutput) Unlock() { o.mu.Unlock() }

// pull streams n samples, as the device would.
func (o *mixerOutput) pull(n int) {
	buf := make([][2]float64, n)
	o.mu.Lock()
	o.mixer.Stream(buf)
	o.mu.Unlock()
}

func (o *mixerOutput) streams() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mixer.Len()
}

func useMixerOutput(t *testing.T) *mixerOutput {
	t.Helper()
	outputMu.Lock()
	prev, prevInit, prevRate := output, outputInitialized, outputSampleRate
	o := &mixerOutput{}
	output, outputInitialized, outputSampleRate = o, false, 0
	outputMu.Unlock()

	t.Cleanup(func() {
		outputMu.Lock()
		output, outputInitialized, outputSampleRate = prev, prevInit, prevRate
		outputMu.Unlock()
	})
	return o
}

// writeWAV writes d of mono silence at testRate and returns its path.
func writeWAV(t *testing.T, d time.Duration) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: testRate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, beep.Silence(testRate.N(d)), format); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
	return path
}

func playWAV(t *testing.T, d time.Duration) (*Player, *mixerOutput) {
	t.Helper()
	out := useMixerOutput(t)
	p := New()
	if err := p.Load(writeWAV(t, d)); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := p.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	t.Cleanup(p.Unload)
	return p, out
}

func position(t *testing.T, p *Player) time.Duration {
	t.Helper()
	pos, ok := p.CurrentTime()
	if !ok {
		t.Fatal("CurrentTime() ok = false with an open stream")
	}
	return pos
}

func TestPlayer_PlayOpensStream(t *testing.T) {
	p, out := playWAV(t, time.Second)

	if p.State() != Playing {
		t.Fatalf("State() = %v, want Playing", p.State())
	}
	if d := p.Duration(); d != time.Second {
		t.Errorf("Duration() = %v, want 1s", d)
	}
	if out.rate != testRate {
		t.Errorf("output rate = %v, want %v", out.rate, testRate)
	}

	out.pull(800)
	if got := position(t, p); got != 100*time.Millisecond {
		t.Errorf("position = %v, want 100ms", got)
	}
}

func TestPlayer_PlayPauseIdempotent(t *testing.T) {
	p, out := playWAV(t, time.Second)

	if err := p.Play(); err != nil {
		t.Fatalf("second Play() error = %v", err)
	}
	if n := out.streams(); n != 1 {
		t.Fatalf("mixer streams = %d, want 1", n)
	}

	p.Pause()
	p.Pause()
	if p.State() != Paused {
		t.Fatalf("State() = %v, want Paused", p.State())
	}
	out.pull(400)
	if got := position(t, p); got != 0 {
		t.Errorf("position while paused = %v, want 0", got)
	}

	if err := p.Play(); err != nil {
		t.Fatalf("resume error = %v", err)
	}
	out.pull(400)
	if got := position(t, p); got != 50*time.Millisecond {
		t.Errorf("position after resume = %v, want 50ms", got)
	}
	if n := out.streams(); n != 1 {
		t.Errorf("mixer streams = %d, want 1", n)
	}
}

func TestPlayer_SeekClamps(t *testing.T) {
	p, _ := playWAV(t, time.Second)

	p.Seek(5 * time.Second)
	if got := position(t, p); got != time.Second {
		t.Errorf("position after seek past end = %v, want 1s", got)
	}

	p.Seek(-time.Second)
	if got := position(t, p); got != 0 {
		t.Errorf("position after negative seek = %v, want 0", got)
	}

	p.Seek(250 * time.Millisecond)
	if got := position(t, p); got != 250*time.Millisecond {
		t.Errorf("position = %v, want 250ms", got)
	}
}

func TestPlayer_ResumeAfterNaturalEnd(t *testing.T) {
	p, out := playWAV(t, time.Second)

	out.pull(testRate.N(time.Second) + 512)
	if n := out.streams(); n != 0 {
		t.Fatalf("mixer streams at end = %d, want 0", n)
	}
	if got := position(t, p); got != time.Second {
		t.Fatalf("position at end = %v, want 1s", got)
	}

	// What the playback service does on end of track, then a user play.
	p.Pause()
	p.Seek(0)
	if err := p.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	out.pull(800)

	if n := out.streams(); n != 1 {
		t.Errorf("mixer streams after resume = %d, want 1", n)
	}
	if got := position(t, p); got != 100*time.Millisecond {
		t.Errorf("position after resume = %v, want 100ms", got)
	}
}

func TestPlayer_ResumeAtEndRewinds(t *testing.T) {
	p, out := playWAV(t, time.Second)

	out.pull(testRate.N(time.Second) + 512)
	p.Pause()
	if err := p.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	out.pull(400)

	if got := position(t, p); got != 50*time.Millisecond {
		t.Errorf("position = %v, want 50ms", got)
	}
}

func TestPlayer_SeekBackAfterEndWhilePlaying(t *testing.T) {
	p, out := playWAV(t, time.Second)

	out.pull(testRate.N(time.Second) + 512)
	p.Seek(500 * time.Millisecond)
	out.pull(800)

	if n := out.streams(); n != 1 {
		t.Errorf("mixer streams = %d, want 1", n)
	}
	if got := position(t, p); got != 600*time.Millisecond {
		t.Errorf("position = %v, want 600ms", got)
	}
}

func TestPlayer_UnloadClearsMixer(t *testing.T) {
	p, out := playWAV(t, time.Second)

	p.Unload()

	if n := out.streams(); n != 0 {
		t.Errorf("mixer streams = %d, want 0", n)
	}
	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
	if _, ok := p.CurrentTime(); ok {
		t.Error("CurrentTime() ok = true after Unload")
	}
}

func TestPlayer_RemoteSizeLimit(t *testing.T) {
	data, err := os.ReadFile(writeWAV(t, 100*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "audio/wav")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	t.Run("over limit", func(t *testing.T) {
		useMixerOutput(t)
		p := New()
		p.maxRemoteSize = int64(len(data) - 1)
		_ = p.Load(srv.URL + "/stream")

		err := p.Play()
		if !errors.Is(err, ErrInvalidSource) || !errors.Is(err, errSourceTooLarge) {
			t.Fatalf("Play() error = %v, want ErrInvalidSource wrapping errSourceTooLarge", err)
		}
	})

	t.Run("at limit", func(t *testing.T) {
		useMixerOutput(t)
		p := New()
		p.maxRemoteSize = int64(len(data))
		_ = p.Load(srv.URL + "/stream")
		defer p.Unload()

		if err := p.Play(); err != nil {
			t.Fatalf("Play() error = %v", err)
		}
		if d := p.Duration(); d != 100*time.Millisecond {
			t.Errorf("Duration() = %v, want 100ms", d)
		}
	})
}
