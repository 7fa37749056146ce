package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Completion Chime
const (
	ChimeFundamental  = 523.25 // C5
	ChimeFifth        = 783.99 // G5
	ChimeNoteDuration = 140 * time.Millisecond
	ChimeGain         = 0.25
)
