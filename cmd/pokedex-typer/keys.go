package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/g4stlyx/pokedex/render"
)

// controller is the part of the level director driven by the keyboard
type controller interface {
	TypeRune(r rune)
	Backspace()
	KillLine()
	Primary() bool
	Act(a render.Action) bool
}

// handleKey maps a key press to a director call; returns false to quit
func handleKey(c controller, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		c.Primary()
	case tcell.KeyCtrlR:
		c.Act(render.ActionReset)
	case tcell.KeyCtrlN:
		c.Act(render.ActionNext)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		c.Backspace()
	case tcell.KeyCtrlU:
		c.KillLine()
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			c.TypeRune(ev.Rune())
		}
	}
	return true
}
