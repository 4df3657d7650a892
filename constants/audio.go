package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two identical sounds (about three frames)
	MinSoundGap = 50 * time.Millisecond
)

// Capture Sound Timing (two-note coin chirp)
const (
	CaptureNote1Duration = 60 * time.Millisecond
	CaptureNote2Duration = 160 * time.Millisecond
	CaptureNote1Freq     = 988.0  // B5
	CaptureNote2Freq     = 1319.0 // E6
)

// Game Over Sound Timing (descending buzz)
const (
	GameOverSoundDuration = 450 * time.Millisecond
	GameOverStartFreq     = 220.0
	GameOverEndFreq       = 80.0
)

// Level Clear Sound Timing (bell)
const (
	ClearSoundDuration = 600 * time.Millisecond
	ClearSoundFreq     = 880.0
	ClearSoundRelease  = 8.0 // Exponential decay rate per second
)
