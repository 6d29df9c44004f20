package playback

import (
	"testing"
	"time"
)

func TestConfig_WithDefaults(t *testing.T) {
	c := Config{}.withDefaults()

	if c.PollInterval != DefaultPollInterval {
		t.Errorf("PollInterval = %v, want %v", c.PollInterval, DefaultPollInterval)
	}
	if c.DurationEpsilon != DefaultDurationEpsilon {
		t.Errorf("DurationEpsilon = %v, want %v", c.DurationEpsilon, DefaultDurationEpsilon)
	}
	if c.SeekSettle != DefaultSeekSettle {
		t.Errorf("SeekSettle = %v, want %v", c.SeekSettle, DefaultSeekSettle)
	}
	if c.Volume != 1 {
		t.Errorf("Volume = %v, want 1", c.Volume)
	}
	if c.Logger == nil {
		t.Error("Logger is nil")
	}
}

func TestConfig_WithDefaults_KeepsValues(t *testing.T) {
	c := Config{
		PollInterval:    250 * time.Millisecond,
		DurationEpsilon: time.Second,
		SeekSettle:      300 * time.Millisecond,
		Volume:          0.4,
	}.withDefaults()

	if c.PollInterval != 250*time.Millisecond {
		t.Errorf("PollInterval = %v", c.PollInterval)
	}
	if c.DurationEpsilon != time.Second {
		t.Errorf("DurationEpsilon = %v", c.DurationEpsilon)
	}
	if c.SeekSettle != 300*time.Millisecond {
		t.Errorf("SeekSettle = %v", c.SeekSettle)
	}
	if c.Volume != 0.4 {
		t.Errorf("Volume = %v", c.Volume)
	}
}
