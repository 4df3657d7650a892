package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/g4stlyx/pokedex/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length wave, optionally gliding between two frequencies
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from startFreq to endFreq
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// decay multiplies a stream by exp(-rate*t)
type decay struct {
	streamer beep.Streamer
	rate     float64
	sr       beep.SampleRate
	position int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.position) / float64(d.sr)
		g := math.Exp(-d.rate * t)
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume maps to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateCaptureSound generates the two-note chirp played when a creature is caught
func CreateCaptureSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constants.CaptureNote1Freq, constants.CaptureNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.CaptureNote1Duration, 5*time.Millisecond, 20*time.Millisecond, rate)

	n2 := NewOscillator(constants.CaptureNote2Freq, constants.CaptureNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.CaptureNote2Duration, 5*time.Millisecond, 120*time.Millisecond, rate)

	vol := cfg.EffectVolumes[SoundCapture] * cfg.MasterVolume
	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol)
}

// CreateGameOverSound generates a descending saw buzz
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sweep := NewSweep(constants.GameOverStartFreq, constants.GameOverEndFreq, constants.GameOverSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(sweep, constants.GameOverSoundDuration, 10*time.Millisecond, 200*time.Millisecond, rate)

	vol := cfg.EffectVolumes[SoundGameOver] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateLevelClearSound generates a bell: sine fundamental plus octave, exponentially decaying
func CreateLevelClearSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	n := rate.N(constants.ClearSoundDuration)

	var fund beep.Streamer
	if tone, err := generators.SineTone(rate, constants.ClearSoundFreq); err == nil {
		fund = beep.Take(n, tone)
	} else {
		fund = NewOscillator(constants.ClearSoundFreq, constants.ClearSoundDuration, WaveSine, rate)
	}
	over := NewOscillator(constants.ClearSoundFreq*2, constants.ClearSoundDuration, WaveSine, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	bell := &decay{streamer: mixed, rate: constants.ClearSoundRelease, sr: rate}

	vol := cfg.EffectVolumes[SoundLevelClear] * cfg.MasterVolume
	return newVolume(bell, vol)
}

// GetSoundEffect returns the streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundCapture:
		return CreateCaptureSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	case SoundLevelClear:
		return CreateLevelClearSound(cfg)
	default:
		return nil
	}
}

// soundLength returns the nominal duration of a sound effect
func soundLength(soundType SoundType) time.Duration {
	switch soundType {
	case SoundCapture:
		return constants.CaptureNote1Duration + constants.CaptureNote2Duration
	case SoundGameOver:
		return constants.GameOverSoundDuration
	case SoundLevelClear:
		return constants.ClearSoundDuration
	default:
		return 0
	}
}
