package render

import (
	"time"

	"github.com/g4stlyx/pokedex/engine"
)

// Op names a recorded Surface call
type Op string

const (
	OpClearBoard  Op = "clear_board"
	OpPlaceHero   Op = "place_hero"
	OpAddEntity   Op = "add_entity"
	OpSetPosition Op = "set_position"
	OpSetLabel    Op = "set_label"
	OpCapture     Op = "capture"
	OpRemove      Op = "remove"
	OpOverlay     Op = "overlay"
	OpHUD         Op = "hud"
	OpInput       Op = "input"
)

// Call is one recorded Surface call
type Call struct {
	Op        Op
	ID        engine.EntityID
	Pos       engine.Vec
	Typed     string
	Remaining string
	Delay     time.Duration
}

// Recorder is a Surface that keeps the latest state and a call log
// Used as a deterministic stand-in for the terminal
type Recorder struct {
	Calls []Call

	Entities  map[engine.EntityID]engine.Vec
	Labels    map[engine.EntityID][2]string
	Captured  []engine.EntityID
	Hero      engine.Hero
	HeroSet   bool
	Loading   bool
	Overlay   Overlay
	HUD       HUD
	Input     string
	InputOpen bool
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{
		Entities: make(map[engine.EntityID]engine.Vec),
		Labels:   make(map[engine.EntityID][2]string),
	}
}

// Count returns how many calls of op were recorded
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// ResetCalls drops the call log, keeping state
func (r *Recorder) ResetCalls() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) ClearBoard(loading bool) {
	r.Calls = append(r.Calls, Call{Op: OpClearBoard})
	clear(r.Entities)
	clear(r.Labels)
	r.HeroSet = false
	r.Overlay = Overlay{}
	r.Loading = loading
}

func (r *Recorder) PlaceHero(hero engine.Hero) {
	r.Calls = append(r.Calls, Call{Op: OpPlaceHero, Pos: hero.Pos})
	r.Hero = hero
	r.HeroSet = true
}

func (r *Recorder) AddEntity(e *engine.Entity) {
	typed, remaining := e.Label()
	r.Calls = append(r.Calls, Call{Op: OpAddEntity, ID: e.ID, Pos: e.Pos, Typed: typed, Remaining: remaining})
	r.Entities[e.ID] = e.Pos
	r.Labels[e.ID] = [2]string{typed, remaining}
	r.Loading = false
}

func (r *Recorder) SetEntityPosition(id engine.EntityID, pos engine.Vec) {
	r.Calls = append(r.Calls, Call{Op: OpSetPosition, ID: id, Pos: pos})
	if _, ok := r.Entities[id]; ok {
		r.Entities[id] = pos
	}
}

func (r *Recorder) SetLabel(id engine.EntityID, typed, remaining string) {
	r.Calls = append(r.Calls, Call{Op: OpSetLabel, ID: id, Typed: typed, Remaining: remaining})
	r.Labels[id] = [2]string{typed, remaining}
}

func (r *Recorder) CaptureEntity(id engine.EntityID, delay time.Duration) {
	r.Calls = append(r.Calls, Call{Op: OpCapture, ID: id, Delay: delay})
	r.Captured = append(r.Captured, id)
}

func (r *Recorder) RemoveEntity(id engine.EntityID) {
	r.Calls = append(r.Calls, Call{Op: OpRemove, ID: id})
	delete(r.Entities, id)
	delete(r.Labels, id)
}

func (r *Recorder) ShowOverlay(o Overlay) {
	r.Calls = append(r.Calls, Call{Op: OpOverlay})
	r.Overlay = o
	if o.Kind != OverlayNone {
		r.Loading = false
	}
}

func (r *Recorder) UpdateHUD(h HUD) {
	r.Calls = append(r.Calls, Call{Op: OpHUD})
	r.HUD = h
}

func (r *Recorder) SetInput(text string, enabled bool) {
	r.Calls = append(r.Calls, Call{Op: OpInput, Typed: text})
	r.Input = text
	r.InputOpen = enabled
}

var (
	_ Surface = (*Recorder)(nil)
	_ Surface = (*TerminalSurface)(nil)
)
