// internal/playback/service_impl.go
package playback

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/llehouerou/soundfeed/internal/player"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.Mutex

	cfg    Config
	log    *slog.Logger
	player player.Interface

	// transition is a one-slot semaphore: holding it is the only way to
	// change which track is loaded.
	transition chan struct{}

	current     *Track
	pending     *Track
	playing     bool
	loading     bool
	position    time.Duration
	duration    time.Duration
	volume      float64
	visible     bool
	settleUntil time.Time

	seq     uint64 // bumped per transition and by Stop/Close
	pollGen uint64 // bumped whenever playing flips
	poll    *poller

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates the playback service around the single audio handle.
func New(p player.Interface, cfg Config) Service {
	cfg = cfg.withDefaults()
	s := &serviceImpl{
		cfg:        cfg,
		log:        cfg.Logger.With("component", "playback"),
		player:     p,
		transition: make(chan struct{}, 1),
		volume:     cfg.Volume,
	}
	s.poll = newPoller(cfg.PollInterval, s.sample)
	p.SetVolume(s.volume)
	return s
}

// events collects notifications built under the lock and sent after it.
type events struct {
	state      *StateChange
	track      *TrackChange
	position   *PositionChange
	visibility *VisibilityChange
	err        *ErrorEvent
}

// PlayTrack loads and starts t, or toggles it when it is already current.
// It blocks until the load resolves.
func (s *serviceImpl) PlayTrack(t Track) error {
	select {
	case s.transition <- struct{}{}:
	default:
		s.log.Debug("transition rejected", "track_id", t.ID)
		return ErrTransitionRejected
	}
	defer func() { <-s.transition }()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}

	if s.current != nil && s.current.ID == t.ID {
		var ev events
		err := s.toggleLocked(&ev)
		s.mu.Unlock()
		s.emit(ev)
		return err
	}

	prevStatus := s.statusLocked()
	prevTrack := s.current
	s.seq++
	seq := s.seq
	s.setPlayingLocked(false)
	s.loading = true
	s.pending = cloneTrack(t)
	s.current = nil
	s.position, s.duration = 0, 0
	s.settleUntil = time.Time{}
	s.mu.Unlock()

	s.emit(events{state: &StateChange{Previous: prevStatus, Current: StatusLoading}})
	s.log.Debug("loading track", "track_id", t.ID, "seq", seq)

	// The handle is driven without the lock so reads stay live while a
	// remote source is fetched.
	err := s.startHandle(t.Source)

	s.mu.Lock()
	s.loading = false
	s.pending = nil

	if seq != s.seq {
		// Stopped or closed while loading: the result no longer applies.
		if err == nil {
			s.player.Unload()
		}
		current, closed := s.statusLocked(), s.closed
		s.mu.Unlock()
		s.log.Debug("discarding superseded load", "track_id", t.ID, "seq", seq)
		if closed {
			return ErrClosed
		}
		s.emit(events{state: &StateChange{Previous: StatusLoading, Current: current}})
		return fmt.Errorf("%w: superseded by stop", ErrTransitionRejected)
	}

	if err != nil {
		s.player.Unload()
		s.mu.Unlock()
		loadErr := fmt.Errorf("%w: %w", ErrLoadFailed, err)
		s.log.Warn("track load failed", "track_id", t.ID, "source", t.Source, "err", err)
		ev := events{
			state: &StateChange{Previous: StatusLoading, Current: StatusIdle},
			err:   &ErrorEvent{Operation: "play", TrackID: t.ID, Err: loadErr},
		}
		if prevTrack != nil {
			ev.track = &TrackChange{Previous: prevTrack}
		}
		s.emit(ev)
		return loadErr
	}

	current := cloneTrack(t)
	s.current = current
	s.position = 0
	s.duration = s.player.Duration()
	ev := events{
		state: &StateChange{Previous: StatusLoading, Current: StatusPlaying},
		track: &TrackChange{Previous: prevTrack, Current: cloneTrack(t)},
	}
	if !s.visible {
		s.visible = true
		ev.visibility = &VisibilityChange{Visible: true}
	}
	s.setPlayingLocked(true)
	s.mu.Unlock()

	s.log.Info("track started", "track_id", t.ID, "title", t.Title)
	s.emit(ev)
	return nil
}

func (s *serviceImpl) startHandle(source string) error {
	if err := s.player.Load(source); err != nil {
		return err
	}
	return s.player.Play()
}

// PauseTrack pauses playback. No-op unless playing.
func (s *serviceImpl) PauseTrack() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	var ev events
	s.pauseLocked(&ev)
	s.mu.Unlock()
	s.emit(ev)
	return nil
}

// ResumeTrack resumes a paused track. No-op unless paused.
func (s *serviceImpl) ResumeTrack() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	var ev events
	err := s.resumeLocked(&ev)
	s.mu.Unlock()
	s.emit(ev)
	return err
}

// TogglePlayPause flips Playing and Paused. No-op when idle or loading.
func (s *serviceImpl) TogglePlayPause() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	var ev events
	err := s.toggleLocked(&ev)
	s.mu.Unlock()
	s.emit(ev)
	return err
}

// StopTrack unloads the handle and clears the track regardless of any
// in-flight load; that load is discarded when it resolves.
func (s *serviceImpl) StopTrack() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}

	prevStatus := s.statusLocked()
	prevTrack := s.current
	s.seq++
	s.setPlayingLocked(false)
	s.player.Unload()
	s.current = nil
	s.pending = nil
	s.position, s.duration = 0, 0
	s.settleUntil = time.Time{}

	var ev events
	if s.visible {
		s.visible = false
		ev.visibility = &VisibilityChange{Visible: false}
	}
	if current := s.statusLocked(); current != prevStatus {
		ev.state = &StateChange{Previous: prevStatus, Current: current}
	}
	if prevTrack != nil {
		ev.track = &TrackChange{Previous: prevTrack}
		ev.position = &PositionChange{}
	}
	s.mu.Unlock()

	s.emit(ev)
	return nil
}

// SeekTo commits an absolute seek, clamped to [0, duration].
func (s *serviceImpl) SeekTo(position time.Duration) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.current == nil || s.duration <= 0 {
		s.mu.Unlock()
		s.log.Debug("seek ignored", "position", position)
		return ErrSeekIgnored
	}

	pos := min(max(position, 0), s.duration)
	s.player.Seek(pos)
	s.position = pos
	s.settleUntil = time.Now().Add(s.cfg.SeekSettle)
	dur := s.duration
	s.mu.Unlock()

	s.emit(events{position: &PositionChange{Position: pos, Duration: dur}})
	return nil
}

// SetVolumeLevel sets the volume, clamped to [0, 1]. It persists across tracks.
func (s *serviceImpl) SetVolumeLevel(level float64) {
	level = player.ClampVolume(level)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.volume = level
	s.player.SetVolume(level)
}

// ShowPlayer marks the player as visible.
func (s *serviceImpl) ShowPlayer() {
	s.mu.Lock()
	if s.closed || s.visible {
		s.mu.Unlock()
		return
	}
	s.visible = true
	s.mu.Unlock()
	s.emit(events{visibility: &VisibilityChange{Visible: true}})
}

// HidePlayer hides the player, pauses playback and rewinds to the start.
func (s *serviceImpl) HidePlayer() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	var ev events
	s.pauseLocked(&ev)
	if s.current != nil {
		s.player.Seek(0)
		s.position = 0
		s.settleUntil = time.Time{}
		ev.position = &PositionChange{Position: 0, Duration: s.duration}
	}
	if s.visible {
		s.visible = false
		ev.visibility = &VisibilityChange{Visible: false}
	}
	s.mu.Unlock()
	s.emit(ev)
}

// State returns a copy of the current state.
func (s *serviceImpl) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		CurrentTrack:    copyTrack(s.current),
		PendingTrack:    copyTrack(s.pending),
		IsPlaying:       s.playing,
		IsLoading:       s.loading,
		Position:        s.position,
		Duration:        s.duration,
		Volume:          s.volume,
		IsPlayerVisible: s.visible,
	}
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close stops the poller, releases the handle and signals subscribers.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.seq++
	s.setPlayingLocked(false)
	s.player.Unload()
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return nil
}

// sample is the poller tick. Ticks from a stopped generation never touch
// the handle.
func (s *serviceImpl) sample(gen uint64) {
	s.mu.Lock()
	if gen != s.pollGen || !s.playing || s.closed {
		s.mu.Unlock()
		return
	}

	pos, ok := s.player.CurrentTime()
	if !ok {
		s.mu.Unlock()
		return
	}
	dur := s.player.Duration()
	if absDuration(dur-s.duration) > s.cfg.DurationEpsilon {
		s.duration = dur
	}

	var ev events
	switch {
	case dur > 0 && pos >= dur:
		s.player.Pause()
		s.player.Seek(0)
		s.position = 0
		s.setPlayingLocked(false)
		ev.state = &StateChange{Previous: StatusPlaying, Current: StatusPaused, Ended: true}
		ev.position = &PositionChange{Position: 0, Duration: s.duration}
		s.log.Debug("track ended", "track_id", s.current.ID)
	case time.Now().Before(s.settleUntil):
		// A committed seek is still propagating; its position wins.
	default:
		s.position = s.clampLocked(pos)
		ev.position = &PositionChange{Position: s.position, Duration: s.duration}
	}
	s.mu.Unlock()
	s.emit(ev)
}

func (s *serviceImpl) toggleLocked(ev *events) error {
	if s.playing {
		s.pauseLocked(ev)
		return nil
	}
	return s.resumeLocked(ev)
}

func (s *serviceImpl) pauseLocked(ev *events) {
	if !s.playing {
		return
	}
	s.player.Pause()
	s.setPlayingLocked(false)
	ev.state = &StateChange{Previous: StatusPlaying, Current: StatusPaused}
}

func (s *serviceImpl) resumeLocked(ev *events) error {
	if s.playing || s.loading || s.current == nil {
		return nil
	}
	if err := s.player.Play(); err != nil {
		s.log.Warn("resume failed", "track_id", s.current.ID, "err", err)
		ev.err = &ErrorEvent{Operation: "resume", TrackID: s.current.ID, Err: err}
		return fmt.Errorf("resume: %w", err)
	}
	s.setPlayingLocked(true)
	ev.state = &StateChange{Previous: StatusPaused, Current: StatusPlaying}
	if !s.visible {
		s.visible = true
		ev.visibility = &VisibilityChange{Visible: true}
	}
	return nil
}

// setPlayingLocked flips the playing flag and starts or stops the poller
// exactly on the edge.
func (s *serviceImpl) setPlayingLocked(on bool) {
	if s.playing == on {
		return
	}
	s.playing = on
	s.pollGen++
	if on {
		s.poll.start(s.pollGen)
	} else {
		s.poll.stop()
	}
}

func (s *serviceImpl) statusLocked() Status {
	switch {
	case s.loading:
		return StatusLoading
	case s.playing:
		return StatusPlaying
	case s.current != nil:
		return StatusPaused
	default:
		return StatusIdle
	}
}

func (s *serviceImpl) clampLocked(pos time.Duration) time.Duration {
	if s.duration <= 0 {
		return pos
	}
	return min(max(pos, 0), s.duration)
}

func (s *serviceImpl) emit(ev events) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		if ev.state != nil {
			sub.sendState(*ev.state)
		}
		if ev.track != nil {
			sub.sendTrack(*ev.track)
		}
		if ev.position != nil {
			sub.sendPosition(*ev.position)
		}
		if ev.visibility != nil {
			sub.sendVisibility(*ev.visibility)
		}
		if ev.err != nil {
			sub.sendError(*ev.err)
		}
	}
}

func cloneTrack(t Track) *Track {
	t.Genres = slices.Clone(t.Genres)
	t.Features = slices.Clone(t.Features)
	return &t
}

func copyTrack(t *Track) *Track {
	if t == nil {
		return nil
	}
	return cloneTrack(*t)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
