package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/g4stlyx/pokedex/constants"
)

// SoundManager mixes one-shot effects onto the speaker
// Every method is safe to call when audio is disabled or failed to initialize
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	lastPlayed  [soundTypeCount]time.Time
	now         func() time.Time

	// play hands a streamer to the mixer; replaced in tests
	play func(beep.Streamer)
}

// NewSoundManager creates a sound manager; nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.MasterVolume = clamp01(cfg.MasterVolume)

	sm := &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
	sm.play = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	return sm
}

// Initialize opens the speaker; a no-op when disabled or already open
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues soundType unless the same sound started less than MinSoundGap ago
// Returns true if the sound was queued
func (sm *SoundManager) Play(soundType SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || soundType < 0 || soundType >= soundTypeCount {
		return false
	}

	now := sm.now()
	if last := sm.lastPlayed[soundType]; !last.IsZero() && now.Sub(last) < constants.MinSoundGap {
		return false
	}

	s := GetSoundEffect(soundType, sm.cfg)
	if s == nil {
		return false
	}
	sm.lastPlayed[soundType] = now
	sm.play(s)
	log.Printf("audio: %s (%v)", soundType, soundLength(soundType))
	return true
}

// PlayCapture plays the capture chirp
func (sm *SoundManager) PlayCapture() { sm.Play(SoundCapture) }

// PlayGameOver plays the game over buzz
func (sm *SoundManager) PlayGameOver() { sm.Play(SoundGameOver) }

// PlayLevelClear plays the level clear bell
func (sm *SoundManager) PlayLevelClear() { sm.Play(SoundLevelClear) }
