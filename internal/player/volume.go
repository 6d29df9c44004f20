package player

import "math"

// SetVolume sets the volume level (0.0 to 1.0). The level survives Load,
// so it carries over to the next track.
func (p *Player) SetVolume(level float64) {
	level = ClampVolume(level)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.volumeLevel = level

	if p.volume != nil {
		output.Lock()
		p.volume.Volume = levelToVolume(level)
		p.volume.Silent = level <= 0
		output.Unlock()
	}
}

// Volume returns the current volume level (0.0 to 1.0).
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volumeLevel
}

// ClampVolume clamps level to [0, 1]. NaN maps to 0.
func ClampVolume(level float64) float64 {
	if math.IsNaN(level) || level < 0 {
		return 0
	}
	if level > 1 {
		return 1
	}
	return level
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale with base 2: 0 is unity, -1 half, -2 quarter.
// We map: 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (essentially silent)
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
