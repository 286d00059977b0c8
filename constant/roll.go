package constant

import "time"

// Roll Timing
const (
	// RollDuration is shared by the completion timer, the spin transition and the clatter
	RollDuration = 3000 * time.Millisecond

	// FaceCycleInterval is the tick of the face-cycling animation
	FaceCycleInterval = 100 * time.Millisecond
)

// Dice
const (
	MinDice  = 1
	MaxDice  = 5
	FaceMin  = 1
	FaceMax  = 6
	FaceSpan = FaceMax - FaceMin + 1
)

// Spin Choreography
const (
	SpinMinRevolutions = 3
	SpinMaxRevolutions = 5
)

// Shake Jitter
const (
	ShakeMaxRotation = 15.0 // degrees, either direction
	ShakeMinScale    = 0.95
	ShakeScaleSpan   = 0.1
)
