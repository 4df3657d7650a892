package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/g4stlyx/pokedex/constants"
	"github.com/g4stlyx/pokedex/engine"
	"github.com/g4stlyx/pokedex/status"
)

const (
	overlayWidth   = 44
	overlayHeight  = 7
	loadingMessage = "Loading Pokémon..."
)

// sprite is the visual handle of one creature
type sprite struct {
	pos          engine.Vec
	typed        string
	remaining    string
	capturing    bool
	captureUntil time.Time
}

// TerminalSurface draws the board on a tcell screen
// Intents only mutate retained state; Draw paints it. All calls come from the game goroutine
type TerminalSurface struct {
	screen  tcell.Screen
	now     func() time.Time
	metrics *status.Registry

	sprites map[engine.EntityID]*sprite
	order   []engine.EntityID

	hero         engine.Hero
	heroPlaced   bool
	loading      bool
	overlay      Overlay
	hud          HUD
	input        string
	inputEnabled bool
}

// TerminalOption configures a TerminalSurface
type TerminalOption func(*TerminalSurface)

// WithMetrics shows the registry on the top board row
func WithMetrics(reg *status.Registry) TerminalOption {
	return func(s *TerminalSurface) { s.metrics = reg }
}

// WithClock sets the time source used to stamp capture effects
func WithClock(tp engine.TimeProvider) TerminalOption {
	return func(s *TerminalSurface) { s.now = tp.Now }
}

// NewTerminalSurface creates a surface drawing on screen
func NewTerminalSurface(screen tcell.Screen, opts ...TerminalOption) *TerminalSurface {
	s := &TerminalSurface{
		screen:  screen,
		now:     time.Now,
		sprites: make(map[engine.EntityID]*sprite),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// boardRows returns the number of terminal rows used by the board
func (s *TerminalSurface) boardRows() int {
	_, h := s.screen.Size()
	rows := h - constants.HUDRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// BoardSize returns the board extent in board units for the current screen
func (s *TerminalSurface) BoardSize() engine.Size {
	w, _ := s.screen.Size()
	return engine.Size{W: float64(w), H: float64(s.boardRows()) * constants.RowUnits}
}

// Cell maps a board position to a screen cell, clamped to the board
func (s *TerminalSurface) Cell(pos engine.Vec) (x, y int) {
	w, _ := s.screen.Size()
	x = clampInt(int(math.Floor(pos.X)), 0, w-1)
	y = clampInt(int(math.Floor(pos.Y/constants.RowUnits)), 0, s.boardRows()-1)
	return x, y
}

// ClearBoard implements Surface
func (s *TerminalSurface) ClearBoard(loading bool) {
	clear(s.sprites)
	s.order = s.order[:0]
	s.heroPlaced = false
	s.overlay = Overlay{}
	s.loading = loading
}

// PlaceHero implements Surface
func (s *TerminalSurface) PlaceHero(hero engine.Hero) {
	s.hero = hero
	s.heroPlaced = true
}

// AddEntity implements Surface
func (s *TerminalSurface) AddEntity(e *engine.Entity) {
	typed, remaining := e.Label()
	if _, ok := s.sprites[e.ID]; !ok {
		s.order = append(s.order, e.ID)
	}
	s.sprites[e.ID] = &sprite{pos: e.Pos, typed: typed, remaining: remaining}
	s.loading = false
}

// SetEntityPosition implements Surface
func (s *TerminalSurface) SetEntityPosition(id engine.EntityID, pos engine.Vec) {
	if sp, ok := s.sprites[id]; ok {
		sp.pos = pos
	}
}

// SetLabel implements Surface
func (s *TerminalSurface) SetLabel(id engine.EntityID, typed, remaining string) {
	if sp, ok := s.sprites[id]; ok {
		sp.typed, sp.remaining = typed, remaining
	}
}

// CaptureEntity implements Surface
func (s *TerminalSurface) CaptureEntity(id engine.EntityID, delay time.Duration) {
	sp, ok := s.sprites[id]
	if !ok {
		return
	}
	sp.capturing = true
	sp.captureUntil = s.now().Add(delay)
	sp.typed, sp.remaining = sp.typed+sp.remaining, ""
}

// RemoveEntity implements Surface
func (s *TerminalSurface) RemoveEntity(id engine.EntityID) {
	if _, ok := s.sprites[id]; !ok {
		return
	}
	delete(s.sprites, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// ShowOverlay implements Surface
func (s *TerminalSurface) ShowOverlay(o Overlay) {
	s.overlay = o
	if o.Kind != OverlayNone {
		s.loading = false
	}
}

// UpdateHUD implements Surface
func (s *TerminalSurface) UpdateHUD(h HUD) {
	s.hud = h
}

// SetInput implements Surface
func (s *TerminalSurface) SetInput(text string, enabled bool) {
	s.input = text
	s.inputEnabled = enabled
}

// Sprites returns the number of sprites still on the board, including ones mid-capture
func (s *TerminalSurface) Sprites() int {
	return len(s.sprites)
}

// Expire removes sprites whose capture effect has finished
func (s *TerminalSurface) Expire(now time.Time) {
	for _, id := range append([]engine.EntityID(nil), s.order...) {
		if sp := s.sprites[id]; sp.capturing && !now.Before(sp.captureUntil) {
			s.RemoveEntity(id)
		}
	}
}

// Draw paints the retained state and shows the frame
func (s *TerminalSurface) Draw(now time.Time) {
	s.Expire(now)

	s.screen.Clear()
	w, h := s.screen.Size()
	base := tcell.StyleDefault.Background(RgbBackground)
	s.screen.Fill(' ', base)

	rows := s.boardRows()

	for _, id := range s.order {
		s.drawSprite(s.sprites[id], base)
	}

	if s.heroPlaced {
		x, y := s.Cell(s.hero.Pos)
		s.screen.SetContent(x, y, constants.HeroGlyph, nil, base.Foreground(RgbHero).Bold(true))
	}

	switch {
	case s.overlay.Kind != OverlayNone:
		s.drawOverlay(w, rows, base)
	case s.loading:
		s.drawCentered(rows/2, loadingMessage, base.Foreground(RgbLabelRemain))
	case !s.heroPlaced && len(s.sprites) == 0:
		s.drawCentered(rows/2, constants.HintStart+"   "+constants.HintQuit, base.Foreground(RgbLabelRemain))
	}

	if s.metrics != nil {
		s.drawText(0, 0, w, s.metrics.Line(), base.Foreground(RgbDebugText))
	}

	if h > rows {
		s.drawHUD(rows, w)
	}
	if h > rows+1 {
		s.drawInput(rows+1, w, base)
	}

	s.screen.Show()
}

// drawSprite draws the glyph and, on the row above, the label with the typed prefix highlighted
func (s *TerminalSurface) drawSprite(sp *sprite, base tcell.Style) {
	w, _ := s.screen.Size()
	x, y := s.Cell(sp.pos)

	glyph, glyphStyle := constants.CreatureGlyph, base.Foreground(RgbCreature)
	if sp.capturing {
		glyph, glyphStyle = constants.CaptureGlyph, base.Foreground(RgbCapture).Bold(true)
	}
	s.screen.SetContent(x, y, glyph, nil, glyphStyle)

	labelY := y - 1
	if labelY < 0 {
		labelY = y + 1
	}
	labelLen := len([]rune(sp.typed)) + len([]rune(sp.remaining))
	lx := clampInt(x-labelLen/2, 0, max(0, w-labelLen))
	lx = s.drawText(lx, labelY, w, sp.typed, base.Foreground(RgbLabelTyped).Bold(true))
	s.drawText(lx, labelY, w, sp.remaining, base.Foreground(RgbLabelRemain))
}

func (s *TerminalSurface) drawOverlay(w, rows int, base tcell.Style) {
	bw := min(overlayWidth, w)
	bh := min(overlayHeight, rows)
	x0 := (w - bw) / 2
	y0 := (rows - bh) / 2
	box := base.Background(RgbOverlayBg)

	for y := y0; y < y0+bh; y++ {
		for x := x0; x < x0+bw; x++ {
			s.screen.SetContent(x, y, ' ', nil, box)
		}
	}

	title, message := overlayText(s.overlay)
	hints := make([]string, 0, len(s.overlay.Actions))
	for _, a := range s.overlay.Actions {
		hints = append(hints, a.Hint())
	}

	s.drawCentered(y0+1, title, box.Foreground(overlayColor(s.overlay.Kind)).Bold(true))
	s.drawCentered(y0+3, message, box.Foreground(RgbLabelRemain))
	s.drawCentered(y0+bh-2, strings.Join(hints, "  "), box.Foreground(RgbInputText))
}

// overlayText returns the title and message for an overlay
func overlayText(o Overlay) (title, message string) {
	switch o.Kind {
	case OverlayGameOver:
		return "Game Over", "Try again or lower your level pace."
	case OverlayLevelCleared:
		return fmt.Sprintf("Level %d Cleared!", o.Level), "Every creature is in the Pokédex."
	case OverlayLoadFailed:
		return "Failed to load Pokémon", "Check your connection and try again."
	default:
		return "", ""
	}
}

func (s *TerminalSurface) drawHUD(y, w int) {
	style := tcell.StyleDefault.Background(RgbHUDBg).Foreground(RgbStatusText)
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, y, ' ', nil, style)
	}

	text := fmt.Sprintf(" Level %d | Caught %d | Remaining %d ", s.hud.Level, s.hud.Caught, s.hud.Remaining)
	x := s.drawText(0, y, w, text, style)
	if s.hud.NextEnabled {
		s.drawText(x+1, y, w, " "+constants.HintNext+" ", style.Background(RgbHUDNextBg).Bold(true))
	}
}

func (s *TerminalSurface) drawInput(y, w int, base tcell.Style) {
	style := base.Foreground(RgbInputText)
	if !s.inputEnabled {
		style = base.Foreground(RgbInputDisabled)
	}
	x := s.drawText(0, y, w, "> "+s.input, style)
	if s.inputEnabled && x < w {
		s.screen.SetContent(x, y, ' ', nil, style.Reverse(true))
	}
}

// drawCentered draws text centered on row y
func (s *TerminalSurface) drawCentered(y int, text string, style tcell.Style) {
	w, _ := s.screen.Size()
	x := max(0, (w-len([]rune(text)))/2)
	s.drawText(x, y, w, text, style)
}

// drawText draws text from (x, y), clipped at w, and returns the column after it
func (s *TerminalSurface) drawText(x, y, w int, text string, style tcell.Style) int {
	for _, r := range text {
		if x >= w {
			break
		}
		if x >= 0 {
			s.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
