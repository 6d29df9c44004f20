package playback

import "time"

// poller calls sample on a fixed interval from its own goroutine.
//
// start and stop are called with the service lock held and never wait on the
// goroutine; sample takes the lock itself and must drop ticks whose
// generation is stale, so a tick already in flight when stop runs is harmless.
type poller struct {
	interval time.Duration
	sample   func(gen uint64)

	stopCh chan struct{}
}

func newPoller(interval time.Duration, sample func(gen uint64)) *poller {
	return &poller{interval: interval, sample: sample}
}

// start begins sampling for generation gen, replacing any running loop.
func (p *poller) start(gen uint64) {
	p.stop()
	stop := make(chan struct{})
	p.stopCh = stop

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				p.sample(gen)
			}
		}
	}()
}

func (p *poller) stop() {
	if p.stopCh != nil {
		close(p.stopCh)
		p.stopCh = nil
	}
}
