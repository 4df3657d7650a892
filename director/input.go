package director

import (
	"unicode/utf8"

	"github.com/g4stlyx/pokedex/engine"
)

// inputActive reports whether keystrokes reach the input line
func (d *Director) inputActive() bool {
	return d.session.Phase == engine.PhaseRunning && d.session.InputEnabled
}

// TypeRune appends r to the input line
func (d *Director) TypeRune(r rune) {
	if !d.inputActive() {
		return
	}
	d.session.Input += string(r)
	d.applyInput()
}

// Backspace deletes the last character of the input line
func (d *Director) Backspace() {
	if !d.inputActive() || d.session.Input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(d.session.Input)
	d.session.Input = d.session.Input[:len(d.session.Input)-size]
	d.applyInput()
}

// KillLine clears the input line
func (d *Director) KillLine() {
	if !d.inputActive() || d.session.Input == "" {
		return
	}
	d.session.Input = ""
	d.applyInput()
}

// SetInput replaces the whole input line, as a paste would
func (d *Director) SetInput(text string) {
	if !d.inputActive() {
		return
	}
	d.session.Input = text
	d.applyInput()
}

// applyInput runs the matcher and pushes only the changed labels
func (d *Director) applyInput() {
	res := d.input.Apply(d.session)

	for _, e := range res.Changed {
		typed, remaining := e.Label()
		d.surface.SetLabel(e.ID, typed, remaining)
	}
	for _, e := range res.Caught {
		d.surface.CaptureEntity(e.ID, d.cfg.CaptureDelay)
		d.mCatches.Add(1)
	}
	if len(res.Caught) > 0 {
		if d.sounder != nil {
			d.sounder.PlayCapture()
		}
		d.updateHUD()
	}

	d.surface.SetInput(d.session.Input, true)
}
