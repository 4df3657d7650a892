package engine

import "github.com/g4stlyx/pokedex/name"

// EntityID identifies a spawned creature within a session
// IDs are never reused across levels of the same session
type EntityID uint64

// Entity is one spawned creature competing to reach the hero
type Entity struct {
	ID EntityID

	// Identity, fixed at spawn
	DisplayName    string
	Target         string // Hyphen-preserving token
	TargetNoHyphen string // Hyphen-stripped token
	SpriteURL      string
	display        []rune

	// Simulation state
	Pos    Vec
	caught bool
	typed  int
}

// NewEntity creates an uncaught entity with its match targets precomputed
func NewEntity(id EntityID, displayName string) *Entity {
	return &Entity{
		ID:             id,
		DisplayName:    displayName,
		Target:         name.Normalize(displayName),
		TargetNoHyphen: name.StripHyphen(displayName),
		display:        []rune(displayName),
	}
}

// Display returns the display name as runes; callers must not modify it
func (e *Entity) Display() []rune {
	return e.display
}

// Len returns the display name length in characters
func (e *Entity) Len() int {
	return len(e.display)
}

// Caught reports whether the entity has been caught
func (e *Entity) Caught() bool {
	return e.caught
}

// Typed returns the number of display characters highlighted as typed
func (e *Entity) Typed() int {
	return e.typed
}

// SetTyped stores typed-progress clamped to [0, Len]
// Ignored once caught: progress stays frozen at full length
func (e *Entity) SetTyped(n int) {
	if e.caught {
		return
	}
	if n < 0 {
		n = 0
	}
	if n > len(e.display) {
		n = len(e.display)
	}
	e.typed = n
}

// Catch marks the entity caught and fully typed
// Returns false if it was already caught
func (e *Entity) Catch() bool {
	if e.caught {
		return false
	}
	e.caught = true
	e.typed = len(e.display)
	return true
}

// Label splits the display name into typed prefix and remaining suffix
func (e *Entity) Label() (typed, remaining string) {
	return string(e.display[:e.typed]), string(e.display[e.typed:])
}

// Hero is the fixed point the player defends
type Hero struct {
	Pos    Vec
	Radius float64
}
