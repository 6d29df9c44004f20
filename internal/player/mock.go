// internal/player/mock.go
package player

import (
	"sync"
	"time"
)

// Mock is a test double for Player. It is safe for concurrent use since the
// playback poller reads it from its own goroutine.
type Mock struct {
	mu sync.Mutex

	state     State
	source    string
	position  time.Duration
	duration  time.Duration
	volume    float64
	available bool

	// advance makes the position follow the clock while playing.
	advance   bool
	startedAt time.Time

	playErr   error
	playGate  chan struct{}
	durations map[string]time.Duration

	loadCalls   []string
	playCalls   int
	pauseCalls  int
	seekCalls   []time.Duration
	volumeCalls []float64
	timeReads   int
	unloads     int
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:     Stopped,
		volume:    1,
		available: true,
		durations: make(map[string]time.Duration),
	}
}

func (m *Mock) Load(source string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls = append(m.loadCalls, source)
	m.source = source
	m.state = Stopped
	m.position = 0
	m.duration = 0
	return nil
}

func (m *Mock) Play() error {
	m.mu.Lock()
	m.playCalls++
	gate := m.playGate
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case Playing:
		return nil
	case Paused:
		m.state = Playing
		m.startedAt = time.Now()
		return nil
	case Stopped:
	}
	if m.source == "" {
		return ErrInvalidSource
	}
	if m.playErr != nil {
		return m.playErr
	}
	if d, ok := m.durations[m.source]; ok {
		m.duration = d
	}
	m.state = Playing
	m.startedAt = time.Now()
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
	if m.state == Playing {
		m.position = m.positionLocked()
		m.state = Paused
	}
}

func (m *Mock) Seek(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, pos)
	pos = max(pos, 0)
	if m.duration > 0 {
		pos = min(pos, m.duration)
	}
	m.position = pos
	m.startedAt = time.Now()
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumeCalls = append(m.volumeCalls, level)
	m.volume = ClampVolume(level)
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) CurrentTime() (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeReads++
	if !m.available || m.state == Stopped {
		return 0, false
	}
	return m.positionLocked(), true
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Unload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unloads++
	m.source = ""
	m.state = Stopped
	m.position = 0
	m.duration = 0
}

func (m *Mock) positionLocked() time.Duration {
	if m.advance && m.state == Playing {
		return m.position + time.Since(m.startedAt)
	}
	return m.position
}

// Test helpers

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	m.playErr = err
	m.mu.Unlock()
}

// SetSourceDuration sets the duration reported after source is played.
func (m *Mock) SetSourceDuration(source string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations[source] = d
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	m.duration = d
	m.mu.Unlock()
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
	m.startedAt = time.Now()
}

// SetAdvance makes the reported position advance with time while playing.
func (m *Mock) SetAdvance(on bool) {
	m.mu.Lock()
	m.advance = on
	m.mu.Unlock()
}

// SetTimeAvailable controls whether CurrentTime reports a ready stream.
func (m *Mock) SetTimeAvailable(ok bool) {
	m.mu.Lock()
	m.available = ok
	m.mu.Unlock()
}

// GatePlay makes every Play call block until the returned function is called.
func (m *Mock) GatePlay() (release func()) {
	gate := make(chan struct{})
	m.mu.Lock()
	m.playGate = gate
	m.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			m.playGate = nil
			m.mu.Unlock()
			close(gate)
		})
	}
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

func (m *Mock) VolumeCalls() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.volumeCalls...)
}

// TimeReads returns how many times CurrentTime was called.
func (m *Mock) TimeReads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timeReads
}

func (m *Mock) Unloads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unloads
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
