package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the total number of samples
func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Stream never finished")
	return 0, 0
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples, got %d ok=%v", n, ok)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestOscillatorLength verifies the oscillator stops after its duration
func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	total, _ := drain(t, NewSweep(220, 80, 100*time.Millisecond, WaveSaw, rate))
	if want := rate.N(100 * time.Millisecond); total != want {
		t.Errorf("Sweep streamed %d samples, want %d", total, want)
	}
}

// TestEnvelopeSilencesEdges verifies attack starts from silence
func TestEnvelopeSilencesEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 50 * time.Millisecond
	env := NewEnvelope(NewOscillator(440, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 1)
	env.Stream(samples)
	if samples[0][0] != 0 {
		t.Errorf("First enveloped sample should be silent, got %f", samples[0][0])
	}
}

func TestSoundEffectsFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	for st := SoundCapture; st < soundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			s := GetSoundEffect(st, cfg)
			if s == nil {
				t.Fatal("Expected a streamer")
			}
			total, peak := drain(t, s)
			if want := rate.N(soundLength(st)); total < want-1 || total > want+1 {
				t.Errorf("Streamed %d samples, want about %d", total, want)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("Peak amplitude %f outside (0, 1]", peak)
			}
		})
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Unknown sound should have no streamer")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, CreateCaptureSound(cfg))
	if peak != 0 {
		t.Errorf("Zero master volume should be silent, peak %f", peak)
	}
}
