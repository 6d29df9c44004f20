package playback

import "errors"

var (
	// ErrLoadFailed wraps the handle error when a track could not be
	// loaded or started. State is back to Idle when it is returned.
	ErrLoadFailed = errors.New("load failed")

	// ErrTransitionRejected is returned when a track change arrives while
	// another one is in flight. Nothing changed; callers may re-issue later.
	ErrTransitionRejected = errors.New("transition already in progress")

	// ErrSeekIgnored is returned when seeking before the duration is known.
	ErrSeekIgnored = errors.New("seek ignored: duration unknown")

	// ErrClosed is returned by operations on a closed service.
	ErrClosed = errors.New("playback service closed")
)
