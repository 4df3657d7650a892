package audio

import "github.com/g4stlyx/pokedex/constants"

// SoundType represents different sound effects
type SoundType int

const (
	SoundCapture    SoundType = iota // Creature caught
	SoundGameOver                    // Hero reached
	SoundLevelClear                  // Board emptied
	soundTypeCount
)

// String returns the sound name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundCapture:
		return "capture"
	case SoundGameOver:
		return "game_over"
	case SoundLevelClear:
		return "level_clear"
	default:
		return "unknown"
	}
}

// AudioConfig holds mixing parameters
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.6,
		EffectVolumes: [soundTypeCount]float64{
			SoundCapture:    0.5,
			SoundGameOver:   0.7,
			SoundLevelClear: 0.6,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// clamp01 bounds a volume to [0, 1]
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
