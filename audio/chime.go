package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/dla/parameter"
)

const chimeAttack = 5 * time.Millisecond

// envelope applies a linear attack then a linear release to zero over a fixed length
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

// newEnvelope shapes s over duration; s should end at or after duration
func newEnvelope(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position < e.attack:
			vol = float64(e.position) / float64(e.attack)
		case e.total > e.attack:
			vol = float64(e.total-e.position) / float64(e.total-e.attack)
		}
		vol = math.Max(vol, 0)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf, so zero becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is a shaped sine tone of fixed length
func note(freq float64, duration time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.2fHz: %w", freq, err)
	}
	return newEnvelope(beep.Take(rate.N(duration), sine), duration, chimeAttack, rate), nil
}

// NewChime builds the two-note completion chime (fundamental then fifth)
func NewChime(rate beep.SampleRate) (beep.Streamer, error) {
	first, err := note(parameter.ChimeFundamental, parameter.ChimeNoteDuration, rate)
	if err != nil {
		return nil, err
	}
	second, err := note(parameter.ChimeFifth, parameter.ChimeNoteDuration, rate)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Seq(first, second), parameter.ChimeGain), nil
}
