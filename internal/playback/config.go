package playback

import (
	"log/slog"
	"time"
)

const (
	DefaultPollInterval    = 100 * time.Millisecond
	DefaultDurationEpsilon = 50 * time.Millisecond
	DefaultSeekSettle      = 100 * time.Millisecond
)

// Config tunes the service. Zero values fall back to the defaults above.
type Config struct {
	PollInterval    time.Duration // how often the handle is sampled while playing
	DurationEpsilon time.Duration // smaller duration changes are ignored
	SeekSettle      time.Duration // poller position updates are held back after a seek
	Volume          float64       // initial volume level; 0 means 1.0
	Logger          *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.DurationEpsilon <= 0 {
		c.DurationEpsilon = DefaultDurationEpsilon
	}
	if c.SeekSettle <= 0 {
		c.SeekSettle = DefaultSeekSettle
	}
	if c.Volume <= 0 || c.Volume > 1 {
		c.Volume = 1
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
