// internal/player/state.go
package player

// State represents the handle state machine.
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │
//	└──────────┘                 └──────────┘
//	     ▲                          │     ▲
//	     │ load/unload        pause │     │ play
//	     │                          ▼     │
//	     │                       ┌──────────┐
//	     └───────────────────────│  Paused  │
//	                             └──────────┘
//
// Valid transitions:
//   - Stopped → Playing (via Play, opens the loaded source)
//   - Playing → Paused  (via Pause)
//   - Paused  → Playing (via Play)
//   - any     → Stopped (via Load or Unload)
//
// No-op transitions:
//   - Playing → Playing (Play while playing)
//   - Paused  → Paused  (Pause while paused)
//   - Stopped → Paused  (Pause while stopped)
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}
