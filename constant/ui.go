package constant

import "time"

// Frame Timing
const (
	// FrameUpdateInterval is the render tick (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize bounds tasks posted to the UI loop
	EventQueueSize = 128
)

// Die Glyph Geometry
const (
	DieWidth    = 11
	DieHeight   = 5
	DieGapX     = 4
	DieGapY     = 1
	PipColumnDx = 3
)

// Text
const (
	TitleText      = "MonoDice"
	SubtitleText   = "Select the number of dice to start"
	TaglineText    = "ALLAN DRINKING GAME SERIES"
	RollLabel      = "ROLL"
	RollingLabel   = "Rolling..."
	GameHelpText   = "space roll · r back · m mute · q quit"
	SelectHelpText = "1-5 or ↑↓ enter · q quit"
	MutedIndicator = "muted"
	SoundIndicator = "sound"
)
