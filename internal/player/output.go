package player

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// audioOutput is the mixer the player hands its effect chain to.
// Lock/Unlock guard every access to streamers owned by the mixer.
type audioOutput interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Clear()                  { speaker.Clear() }
func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }

var (
	outputMu          sync.Mutex
	output            audioOutput = speakerOutput{}
	outputInitialized bool
	outputSampleRate  beep.SampleRate
)

func initOutput(rate beep.SampleRate) error {
	outputMu.Lock()
	defer outputMu.Unlock()
	if outputInitialized {
		return nil
	}
	if err := output.Init(rate, rate.N(time.Second/10)); err != nil {
		return err
	}
	outputSampleRate = rate
	outputInitialized = true
	return nil
}

func isOutputInitialized() bool {
	outputMu.Lock()
	defer outputMu.Unlock()
	return outputInitialized
}

func sampleRate() beep.SampleRate {
	outputMu.Lock()
	defer outputMu.Unlock()
	return outputSampleRate
}
