package player

import "time"

// Seek moves playback to pos, clamped to [0, Duration()].
// No-op when no stream is open.
func (p *Player) Seek(pos time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return
	}

	n := max(p.format.SampleRate.N(pos), 0)
	n = min(n, p.streamer.Len())

	// Mute around the seek to avoid clicks from the partially filled buffer.
	output.Lock()
	if p.volume != nil {
		p.volume.Silent = true
	}
	_ = p.streamer.Seek(n)
	if p.volume != nil {
		p.volume.Silent = p.volumeLevel <= 0
	}
	output.Unlock()

	// Seeking back into a drained stream while playing restarts output;
	// a paused one is re-attached by Play.
	if p.state == Playing && !p.attached.Load() && n < p.streamer.Len() {
		p.attachLocked()
	}
}
