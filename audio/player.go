package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/dla/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player owns the speaker and plays the completion chime
// Every method is safe to call before Initialize or after Cleanup
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates an uninitialized player
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker; failure leaves the player silent
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops playback and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// PlayChime queues the completion chime, returns false when nothing will sound
func (p *Player) PlayChime() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return false
	}
	chime, err := NewChime(sampleRate)
	if err != nil {
		return false
	}
	speaker.Lock()
	p.mixer.Add(chime)
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute state, returns true if sound is now on
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return !p.muted
}

// IsEnabled returns true if initialized and unmuted
func (p *Player) IsEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && !p.muted
}
