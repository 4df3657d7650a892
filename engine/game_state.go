package engine

import "fmt"

// Phase is the lifecycle phase of the current level
type Phase int

const (
	PhaseIdle         Phase = iota // Awaiting a start action
	PhaseLoading                   // Batch fetch in flight
	PhaseRunning                   // Motion and input active
	PhaseGameOver                  // An entity reached the hero
	PhaseLevelCleared              // Every entity caught
	PhaseLoadFailed                // No creatures after the retry batch
)

var phaseNames = [...]string{
	PhaseIdle:         "Idle",
	PhaseLoading:      "Loading",
	PhaseRunning:      "Running",
	PhaseGameOver:     "GameOver",
	PhaseLevelCleared: "LevelCleared",
	PhaseLoadFailed:   "LoadFailed",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Terminal reports whether the phase ends a level attempt
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseLevelCleared || p == PhaseLoadFailed
}

var validTransitions = map[Phase][]Phase{
	PhaseIdle:         {PhaseLoading},
	PhaseLoading:      {PhaseLoading, PhaseRunning, PhaseLoadFailed, PhaseIdle},
	PhaseRunning:      {PhaseGameOver, PhaseLevelCleared, PhaseLoading, PhaseIdle},
	PhaseGameOver:     {PhaseLoading, PhaseIdle},
	PhaseLevelCleared: {PhaseLoading, PhaseIdle},
	PhaseLoadFailed:   {PhaseLoading, PhaseIdle},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Session is the explicit game state owned by the level director
// Owned by the game goroutine; not safe for concurrent use
type Session struct {
	Level       int
	CaughtCount int
	Phase       Phase
	Generation  uint64 // Bumped on every level start and reset

	Board    Size
	Hero     Hero
	Entities []*Entity

	// Raw text of the input line
	Input        string
	InputEnabled bool

	nextID EntityID
}

// NewSession creates an idle session at level 1
func NewSession(board Size, heroRadius float64) *Session {
	s := &Session{
		Level: 1,
		Phase: PhaseIdle,
		Board: board,
		Hero:  Hero{Radius: heroRadius},
	}
	s.Hero.Pos = board.Center()
	return s
}

// TransitionPhase moves to the given phase if the transition is valid
// Returns true if transition succeeded, false if transition is invalid
func (s *Session) TransitionPhase(to Phase) bool {
	if !CanTransition(s.Phase, to) {
		return false
	}
	s.Phase = to
	return true
}

// NewEntity allocates an entity with a session-unique ID
func (s *Session) NewEntity(displayName string) *Entity {
	s.nextID++
	return NewEntity(s.nextID, displayName)
}

// Remaining counts entities not yet caught
func (s *Session) Remaining() int {
	n := 0
	for _, e := range s.Entities {
		if !e.Caught() {
			n++
		}
	}
	return n
}

// PlaceHero centers the hero on the current board
func (s *Session) PlaceHero() {
	s.Hero.Pos = s.Board.Center()
}

// Reset returns to level 1 with an empty registry and a new generation
func (s *Session) Reset() {
	s.Level = 1
	s.CaughtCount = 0
	s.Entities = nil
	s.Input = ""
	s.InputEnabled = false
	s.Phase = PhaseIdle
	s.Generation++
}

// RequiredCount is the number of creatures spawned for a level
func RequiredCount(level, baseCount int) int {
	if level < 1 {
		level = 1
	}
	return baseCount + (level - 1)
}
