package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/g4stlyx/pokedex/constants"
	"github.com/g4stlyx/pokedex/engine"
	"github.com/g4stlyx/pokedex/status"
)

func newTestSurface(t *testing.T, w, h int, opts ...TerminalOption) (*TerminalSurface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return NewTerminalSurface(screen, opts...), screen
}

// rowText returns the runes of screen row y
func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestBoardSizeUsesRowUnits(t *testing.T) {
	s, _ := newTestSurface(t, 80, 24)

	size := s.BoardSize()
	wantH := float64(24-constants.HUDRows) * constants.RowUnits
	if size.W != 80 || size.H != wantH {
		t.Errorf("BoardSize = %+v, want {80 %g}", size, wantH)
	}

	x, y := s.Cell(engine.Vec{X: 10.7, Y: 9.9})
	if x != 10 || y != 4 {
		t.Errorf("Cell = (%d,%d), want (10,4)", x, y)
	}

	// Off-board positions clamp to the edge
	x, y = s.Cell(engine.Vec{X: -3, Y: 1000})
	if x != 0 || y != 24-constants.HUDRows-1 {
		t.Errorf("Clamped cell = (%d,%d)", x, y)
	}
}

func TestDrawSpriteWithLabel(t *testing.T) {
	s, screen := newTestSurface(t, 40, 12)

	e := engine.NewEntity(1, "Pikachu")
	e.Pos = engine.Vec{X: 20, Y: 10}
	e.SetTyped(4)
	s.AddEntity(e)
	s.PlaceHero(engine.Hero{Pos: engine.Vec{X: 5, Y: 2}})
	s.Draw(time.Now())

	if r, _, _, _ := screen.GetContent(20, 5); r != constants.CreatureGlyph {
		t.Errorf("Creature glyph = %q, want %q", r, constants.CreatureGlyph)
	}
	if !strings.Contains(rowText(screen, 4), "Pikachu") {
		t.Errorf("Label row = %q", rowText(screen, 4))
	}

	// Typed prefix and remaining suffix use different colors
	lx := strings.Index(rowText(screen, 4), "Pikachu")
	_, _, typedStyle, _ := screen.GetContent(lx, 4)
	_, _, restStyle, _ := screen.GetContent(lx+5, 4)
	if fg, _, _ := typedStyle.Decompose(); fg != RgbLabelTyped {
		t.Errorf("Typed prefix color = %v", fg)
	}
	if fg, _, _ := restStyle.Decompose(); fg != RgbLabelRemain {
		t.Errorf("Remaining color = %v", fg)
	}

	if r, _, _, _ := screen.GetContent(5, 1); r != constants.HeroGlyph {
		t.Errorf("Hero glyph = %q", r)
	}
}

func TestCaptureExpires(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s, screen := newTestSurface(t, 40, 12, WithClock(engine.NewManualClock(now)))

	e := engine.NewEntity(7, "Eevee")
	e.Pos = engine.Vec{X: 10, Y: 10}
	s.AddEntity(e)
	s.CaptureEntity(7, 250*time.Millisecond)

	s.Draw(now.Add(100 * time.Millisecond))
	if s.Sprites() != 1 {
		t.Fatal("Sprite removed before the capture delay")
	}
	if r, _, _, _ := screen.GetContent(10, 5); r != constants.CaptureGlyph {
		t.Errorf("Capturing glyph = %q", r)
	}

	s.Draw(now.Add(250 * time.Millisecond))
	if s.Sprites() != 0 {
		t.Error("Sprite should be gone after the capture delay")
	}
}

func TestOverlayAndHUD(t *testing.T) {
	s, screen := newTestSurface(t, 60, 20)

	s.PlaceHero(engine.Hero{Pos: engine.Vec{X: 30, Y: 18}})
	s.ShowOverlay(Overlay{Kind: OverlayLevelCleared, Level: 3, Actions: []Action{ActionNext}})
	s.UpdateHUD(HUD{Level: 3, Caught: 5, Remaining: 0, NextEnabled: true})
	s.SetInput("mew", false)
	s.Draw(time.Now())

	var all strings.Builder
	for y := 0; y < 20; y++ {
		all.WriteString(rowText(screen, y))
		all.WriteByte('\n')
	}
	text := all.String()

	for _, want := range []string{"Level 3 Cleared!", constants.HintNext, "Level 3 | Caught 5 | Remaining 0", "> mew"} {
		if !strings.Contains(text, want) {
			t.Errorf("Screen missing %q", want)
		}
	}
}

func TestClearBoardShowsLoading(t *testing.T) {
	s, screen := newTestSurface(t, 60, 20)

	e := engine.NewEntity(1, "Mew")
	s.AddEntity(e)
	s.ShowOverlay(Overlay{Kind: OverlayGameOver, Actions: []Action{ActionRetry, ActionReset}})
	s.ClearBoard(true)
	s.Draw(time.Now())

	if s.Sprites() != 0 {
		t.Error("ClearBoard should drop sprites")
	}
	rows := 20 - constants.HUDRows
	if !strings.Contains(rowText(screen, rows/2), loadingMessage) {
		t.Errorf("Expected loading message, got %q", rowText(screen, rows/2))
	}
	if strings.Contains(rowText(screen, rows/2), "Game Over") {
		t.Error("Overlay should be cleared")
	}
}

func TestDebugLine(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyFrames).Store(42)
	s, screen := newTestSurface(t, 80, 10, WithMetrics(reg))
	s.Draw(time.Now())

	if !strings.Contains(rowText(screen, 0), "engine.frames=42") {
		t.Errorf("Debug line = %q", rowText(screen, 0))
	}
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	s, _ := newTestSurface(t, 20, 10)
	s.RemoveEntity(99)
	s.SetLabel(99, "a", "b")
	s.SetEntityPosition(99, engine.Vec{})
	s.CaptureEntity(99, time.Second)
	if s.Sprites() != 0 {
		t.Error("Unknown IDs must not create sprites")
	}
}

func TestOverlayActions(t *testing.T) {
	o := Overlay{Kind: OverlayGameOver, Actions: []Action{ActionRetry, ActionReset}}
	if a, ok := o.Primary(); !ok || a != ActionRetry {
		t.Errorf("Primary = %v %v", a, ok)
	}
	if !o.Has(ActionReset) || o.Has(ActionNext) {
		t.Error("Has reports wrong actions")
	}
	if _, ok := (Overlay{}).Primary(); ok {
		t.Error("Empty overlay has no primary action")
	}
}
