package constants

// Key hints shown on overlays and the status line
const (
	HintStart = "[Enter] start"
	HintRetry = "[Enter] retry level"
	HintNext  = "[Enter] next level"
	HintReset = "[Ctrl+R] reset"
	HintQuit  = "[Esc] quit"
)

// Glyphs
const (
	HeroGlyph     = '@'
	CreatureGlyph = 'ø'
	CaptureGlyph  = '*'
)

// HUD layout
const (
	// HUDRows is the number of rows reserved below the board (HUD + input line)
	HUDRows = 2
)
