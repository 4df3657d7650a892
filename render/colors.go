package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground    = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbHero          = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbCreature      = tcell.NewRGBColor(220, 60, 60)   // Poké Ball red
	RgbLabelTyped    = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbLabelRemain   = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbCapture       = tcell.NewRGBColor(255, 255, 200) // Yellow-white flash
	RgbOverlayBg     = tcell.NewRGBColor(40, 42, 58)
	RgbGameOver      = tcell.NewRGBColor(255, 80, 80)
	RgbLevelCleared  = tcell.NewRGBColor(80, 220, 120)
	RgbLoadFailed    = tcell.NewRGBColor(255, 165, 0)
	RgbStatusText    = tcell.NewRGBColor(0, 0, 0)
	RgbHUDBg         = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbHUDNextBg     = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbInputText     = tcell.NewRGBColor(255, 255, 255)
	RgbInputDisabled = tcell.NewRGBColor(110, 110, 110)
	RgbDebugText     = tcell.NewRGBColor(120, 120, 160)
)

// overlayColor returns the title color for kind
func overlayColor(kind OverlayKind) tcell.Color {
	switch kind {
	case OverlayGameOver:
		return RgbGameOver
	case OverlayLevelCleared:
		return RgbLevelCleared
	default:
		return RgbLoadFailed
	}
}
