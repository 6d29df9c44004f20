package playback

import "time"

// StateChange is emitted when the status changes.
// Ended is set when the change comes from reaching the end of the track.
type StateChange struct {
	Previous Status
	Current  Status
	Ended    bool
}

// TrackChange is emitted when a different track finished loading or the
// current track was cleared. Toggling the same track does not emit it.
type TrackChange struct {
	Previous *Track
	Current  *Track
}

// PositionChange is emitted on every applied poller sample and committed seek.
type PositionChange struct {
	Position time.Duration
	Duration time.Duration
}

// VisibilityChange is emitted when the player is shown or hidden.
type VisibilityChange struct {
	Visible bool
}

// ErrorEvent is emitted when an error occurs during playback.
type ErrorEvent struct {
	Operation string // e.g., "play", "resume"
	TrackID   string
	Err       error
}
