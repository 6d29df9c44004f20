// internal/playback/state.go
package playback

// Status represents the playback state machine.
//
//	Idle ──PlayTrack──▶ Loading ──ok──▶ Playing ◀──resume/toggle──▶ Paused
//	  ▲                    │                │                          │
//	  └──────fail──────────┘                └────────stop──────────────┘
//
// PlayTrack with the current track id toggles Playing/Paused without a load.
// PlayTrack with another id goes back through Loading. PlayTrack while
// Loading is rejected.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusPlaying
	StatusPaused
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusLoading:
		return "Loading"
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// HasTrack returns true if a track is loaded (Playing or Paused).
func (s Status) HasTrack() bool {
	return s == StatusPlaying || s == StatusPaused
}
