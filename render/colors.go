package render

import "github.com/gdamore/tcell/v2"

// Table and die palette
var (
	RgbFelt      = tcell.NewRGBColor(53, 101, 77)   // Casino felt green
	RgbFeltDark  = tcell.NewRGBColor(38, 74, 56)    // Shaded felt for the button well
	RgbTitle     = tcell.NewRGBColor(255, 255, 255) // White
	RgbSubtitle  = tcell.NewRGBColor(200, 220, 205) // Pale green-gray
	RgbTagline   = tcell.NewRGBColor(230, 200, 120) // Muted gold
	RgbHelp      = tcell.NewRGBColor(160, 190, 170) // Dim green-gray
	RgbStatusBar = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbDieFace      = tcell.NewRGBColor(245, 244, 238) // Ivory
	RgbDieEdge      = tcell.NewRGBColor(90, 90, 90)    // Settled outline
	RgbDieEdgeSpin  = tcell.NewRGBColor(40, 40, 40)    // Outline while in motion
	RgbPipBlack     = tcell.NewRGBColor(20, 20, 20)    // Standard pips
	RgbPipRed       = tcell.NewRGBColor(200, 30, 30)   // Faces 1 and 4
	RgbButton       = tcell.NewRGBColor(255, 255, 255) // Roll button text
	RgbButtonBusy   = tcell.NewRGBColor(150, 160, 155) // Roll button while rolling
	RgbSelection    = tcell.NewRGBColor(255, 215, 0)   // Selected die count
	RgbSelectionFg  = tcell.NewRGBColor(20, 20, 20)    // Text on the selection highlight
	RgbOption       = tcell.NewRGBColor(235, 235, 235) // Unselected die count
	RgbIndicatorOff = tcell.NewRGBColor(255, 120, 120) // Muted indicator
)
