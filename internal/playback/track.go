package playback

import "time"

// Author identifies who published a track.
type Author struct {
	ID     string
	Name   string
	Avatar string
	Banner string
}

// Track is an immutable copy of a post's playable data.
// It is not a reference to posts.Post; display fields are never mutated here.
type Track struct {
	ID           string
	Title        string
	Author       Author
	Source       string // path, file:// URI or http(s) URL
	FreeDownload bool
	Genres       []string
	Features     []string
	Views        int
	Comments     int
	Downloads    int
}

// Snapshot is a consistent, read-only view of the playback state.
type Snapshot struct {
	CurrentTrack    *Track
	PendingTrack    *Track // track being loaded, nil unless IsLoading
	IsPlaying       bool
	IsLoading       bool
	Position        time.Duration
	Duration        time.Duration
	Volume          float64
	IsPlayerVisible bool
}

// Status derives the state machine position from the snapshot.
func (s Snapshot) Status() Status {
	switch {
	case s.IsLoading:
		return StatusLoading
	case s.IsPlaying:
		return StatusPlaying
	case s.CurrentTrack != nil:
		return StatusPaused
	default:
		return StatusIdle
	}
}

// Progress returns Position/Duration in [0, 1], or 0 when duration is unknown.
func (s Snapshot) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return min(max(float64(s.Position)/float64(s.Duration), 0), 1)
}
