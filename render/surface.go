package render

import (
	"time"

	"github.com/g4stlyx/pokedex/constants"
	"github.com/g4stlyx/pokedex/engine"
)

// OverlayKind selects the terminal-state card drawn over the board
type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayGameOver
	OverlayLevelCleared
	OverlayLoadFailed
)

// Action is a player choice offered by an overlay
type Action int

const (
	ActionRetry Action = iota // Restart the same level
	ActionReset               // Back to level 1, idle
	ActionNext                // Advance to the next level
)

// Hint returns the key hint for the action
func (a Action) Hint() string {
	switch a {
	case ActionRetry:
		return constants.HintRetry
	case ActionReset:
		return constants.HintReset
	case ActionNext:
		return constants.HintNext
	default:
		return ""
	}
}

// Overlay describes a terminal-state card
// Actions[0] is the primary action bound to Enter
type Overlay struct {
	Kind    OverlayKind
	Level   int
	Actions []Action
}

// Primary returns the first action and whether one exists
func (o Overlay) Primary() (Action, bool) {
	if len(o.Actions) == 0 {
		return 0, false
	}
	return o.Actions[0], true
}

// Has reports whether the overlay offers a
func (o Overlay) Has(a Action) bool {
	for _, x := range o.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// HUD is the counter line under the board
type HUD struct {
	Level       int
	Caught      int
	Remaining   int
	NextEnabled bool
}

// Surface receives presentation intents from the level director
// Implementations own every visual handle; the director only passes entity IDs
type Surface interface {
	// ClearBoard drops every sprite, the hero and any overlay; loading shows a spinner until the next AddEntity
	ClearBoard(loading bool)
	PlaceHero(hero engine.Hero)
	AddEntity(e *engine.Entity)
	SetEntityPosition(id engine.EntityID, pos engine.Vec)
	SetLabel(id engine.EntityID, typed, remaining string)
	// CaptureEntity plays the capture effect and removes the sprite once delay has elapsed
	CaptureEntity(id engine.EntityID, delay time.Duration)
	RemoveEntity(id engine.EntityID)
	ShowOverlay(o Overlay)
	UpdateHUD(h HUD)
	SetInput(text string, enabled bool)
}
