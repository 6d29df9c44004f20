// internal/playback/state_test.go
package playback

import (
	"testing"
	"time"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusIdle, "Idle"},
		{StatusLoading, "Loading"},
		{StatusPlaying, "Playing"},
		{StatusPaused, "Paused"},
		{Status(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatus_HasTrack(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusIdle, false},
		{StatusLoading, false},
		{StatusPlaying, true},
		{StatusPaused, true},
	}
	for _, tt := range tests {
		if got := tt.status.HasTrack(); got != tt.want {
			t.Errorf("%v.HasTrack() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestSnapshot_Status(t *testing.T) {
	track := &Track{ID: "x"}
	tests := []struct {
		name string
		snap Snapshot
		want Status
	}{
		{"empty", Snapshot{}, StatusIdle},
		{"loading wins", Snapshot{IsLoading: true, CurrentTrack: track}, StatusLoading},
		{"playing", Snapshot{IsPlaying: true, CurrentTrack: track}, StatusPlaying},
		{"paused", Snapshot{CurrentTrack: track}, StatusPaused},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.Status(); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapshot_Progress(t *testing.T) {
	tests := []struct {
		name string
		pos  time.Duration
		dur  time.Duration
		want float64
	}{
		{"unknown duration", 10 * time.Second, 0, 0},
		{"start", 0, time.Minute, 0},
		{"half", 30 * time.Second, time.Minute, 0.5},
		{"past end", 2 * time.Minute, time.Minute, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Snapshot{Position: tt.pos, Duration: tt.dur}
			if got := s.Progress(); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}
