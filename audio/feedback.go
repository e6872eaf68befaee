// Package audio provides optional procedural feedback cues for deck events.
// The widget core never touches audio; hosts wire cues to deck callbacks.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Feedback plays short sine cues for gesture outcomes.
// All methods are no-ops until Init succeeds, so hosts can run silently
// when no audio device is available.
type Feedback struct {
	mu          sync.Mutex
	initialized bool
}

// NewFeedback creates an uninitialized feedback player.
func NewFeedback() *Feedback {
	return &Feedback{}
}

// Init opens the speaker. Failure is non-fatal: the host keeps running
// without sound.
func (f *Feedback) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	f.initialized = true
	return nil
}

// Swipe plays the commit-swipe cue.
func (f *Feedback) Swipe() {
	f.tone(660, 90*time.Millisecond)
}

// Flip plays the commit-flip cue.
func (f *Feedback) Flip() {
	f.tone(880, 70*time.Millisecond)
}

// Revert plays the short revert tick.
func (f *Feedback) Revert() {
	f.tone(330, 40*time.Millisecond)
}

func (f *Feedback) tone(freq float64, d time.Duration) {
	f.mu.Lock()
	ok := f.initialized
	f.mu.Unlock()
	if !ok {
		return
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
