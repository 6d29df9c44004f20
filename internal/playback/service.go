package playback

import "time"

// Service is the centralized playback core shared by every screen.
// All mutation goes through these methods; readers use State and Subscribe.
type Service interface {
	// Track transitions
	PlayTrack(t Track) error // load-or-toggle; blocks until the load resolves

	// Playback control
	PauseTrack() error
	ResumeTrack() error
	StopTrack() error
	TogglePlayPause() error
	SeekTo(position time.Duration) error
	SetVolumeLevel(level float64)

	// Presentation
	ShowPlayer()
	HidePlayer() // also pauses and rewinds

	// State queries
	State() Snapshot

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
