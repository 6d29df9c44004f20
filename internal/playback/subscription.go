package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
// Sends never block the service: events are dropped when a buffer is full,
// so subscribers should treat them as "re-read State()" notifications.
type Subscription struct {
	StateChanged      <-chan StateChange
	TrackChanged      <-chan TrackChange
	PositionChanged   <-chan PositionChange
	VisibilityChanged <-chan VisibilityChange
	Error             <-chan ErrorEvent
	Done              <-chan struct{}

	stateCh      chan StateChange
	trackCh      chan TrackChange
	positionCh   chan PositionChange
	visibilityCh chan VisibilityChange
	errorCh      chan ErrorEvent
	doneCh       chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:      make(chan StateChange, eventBufferSize),
		trackCh:      make(chan TrackChange, eventBufferSize),
		positionCh:   make(chan PositionChange, eventBufferSize),
		visibilityCh: make(chan VisibilityChange, eventBufferSize),
		errorCh:      make(chan ErrorEvent, eventBufferSize),
		doneCh:       make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.TrackChanged = s.trackCh
	s.PositionChanged = s.positionCh
	s.VisibilityChanged = s.visibilityCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
		// Drop if buffer full
	}
}

func (s *Subscription) sendTrack(e TrackChange) {
	select {
	case s.trackCh <- e:
	default:
	}
}

func (s *Subscription) sendPosition(e PositionChange) {
	select {
	case s.positionCh <- e:
	default:
	}
}

func (s *Subscription) sendVisibility(e VisibilityChange) {
	select {
	case s.visibilityCh <- e:
	default:
	}
}

func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
