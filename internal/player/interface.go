// internal/player/interface.go
package player

import "time"

// Interface defines the audio handle contract for dependency injection and testing.
//
// Exactly one handle exists per process. Operations are requests to an
// asynchronous output device: their effect is observed through later
// CurrentTime/Duration reads, except Play, whose error reports startup failure.
type Interface interface {
	Load(source string) error
	Play() error
	Pause()
	Seek(pos time.Duration)
	SetVolume(level float64)
	Volume() float64
	CurrentTime() (time.Duration, bool)
	Duration() time.Duration
	State() State
	Unload()
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
