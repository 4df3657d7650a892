package systems

import (
	"math"
	"time"

	"github.com/g4stlyx/pokedex/engine"
)

// StepOutcome reports what a motion step decided
type StepOutcome int

const (
	OutcomeIdle         StepOutcome = iota // Session not running, nothing moved
	OutcomeContinue                        // Still running, schedule the next frame
	OutcomeGameOver                        // An entity reached the hero
	OutcomeLevelCleared                    // No uncaught entities remain
)

// StepResult is returned by MotionSystem.Step
type StepResult struct {
	Outcome  StepOutcome
	Moved    []*engine.Entity // Entities whose position changed this frame
	Collider *engine.Entity   // Set on OutcomeGameOver
}

// MotionConfig holds the tuning the motion step reads
type MotionConfig struct {
	BaseSpeed     float64       // Units per second at level 1
	SpeedPerLevel float64       // Units per second added per level
	EnemyRadius   float64       // Collision radius of a creature
	MaxFrameDelta time.Duration // Upper bound on simulated frame time
}

// MotionSystem advances uncaught entities toward the hero and detects terminal conditions
// Pure step logic: scheduling belongs to the caller
type MotionSystem struct {
	cfg MotionConfig
}

// NewMotionSystem creates a motion system with the given tuning
func NewMotionSystem(cfg MotionConfig) *MotionSystem {
	return &MotionSystem{cfg: cfg}
}

// Speed returns the homing speed for a level
func (m *MotionSystem) Speed(level int) float64 {
	if level < 1 {
		level = 1
	}
	return m.cfg.BaseSpeed + float64(level-1)*m.cfg.SpeedPerLevel
}

// CollisionRange returns the center distance below which an entity hits the hero
func (m *MotionSystem) CollisionRange(hero engine.Hero) float64 {
	return hero.Radius + m.cfg.EnemyRadius
}

// ClampDelta converts a frame delta to seconds bounded to [0, MaxFrameDelta]
func (m *MotionSystem) ClampDelta(dt time.Duration) float64 {
	if dt <= 0 {
		return 0
	}
	if dt > m.cfg.MaxFrameDelta {
		dt = m.cfg.MaxFrameDelta
	}
	return dt.Seconds()
}

// Step runs one frame: Running -> {Running | GameOver | LevelCleared}
// The first collision found ends the frame; later entities are not moved
func (m *MotionSystem) Step(s *engine.Session, dt time.Duration) StepResult {
	if s.Phase != engine.PhaseRunning {
		return StepResult{Outcome: OutcomeIdle}
	}

	step := m.Speed(s.Level) * m.ClampDelta(dt)
	reach := m.CollisionRange(s.Hero)
	hero := s.Hero.Pos

	result := StepResult{Outcome: OutcomeContinue}
	remaining := 0

	for _, e := range s.Entities {
		if e.Caught() {
			continue
		}
		remaining++

		// Pure pursuit: steer at the hero's current position
		d := hero.Sub(e.Pos)
		dist := math.Max(d.Len(), 1)
		if step > 0 {
			e.Pos = e.Pos.Add(d.Scale(step / dist))
			result.Moved = append(result.Moved, e)
		}

		if e.Pos.Dist(hero) < reach {
			s.TransitionPhase(engine.PhaseGameOver)
			result.Outcome = OutcomeGameOver
			result.Collider = e
			return result
		}
	}

	if remaining == 0 {
		s.TransitionPhase(engine.PhaseLevelCleared)
		result.Outcome = OutcomeLevelCleared
	}
	return result
}
