// Package motion turns roll outcomes into per-die visual poses
//
// Two animators are provided: Spinner tumbles a cube through several full
// revolutions onto the committed face, Shaker cycles random faces with a
// small jitter and snaps to the committed face. Both are driven by the
// same (value, rolling, trigger) tuple and never leave the die showing
// anything other than the committed value once rolling stops.
package motion

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/monodice/constant"
	"github.com/lixenwraith/monodice/dice"
)

// DieView is the observable state of a single die
// Trigger changes once per accepted roll, even when Value repeats
type DieView struct {
	Value   dice.Face
	Rolling bool
	Trigger int
}

// Pose is an animator's visual output for one frame
type Pose struct {
	Face        dice.Face        // Face presented to the viewer
	Orientation dice.Orientation // Cube rotation, degrees
	Rotation    float64          // In-plane jitter, degrees
	Scale       float64          // Jitter scale, 1 at rest
	Settled     bool             // No animation in flight
}

// Animator consumes die views and produces poses
// Calls must come from a single goroutine
type Animator interface {
	// Sync observes the latest die view
	Sync(view DieView, now time.Time)
	// Pose returns the pose at now
	Pose(now time.Time) Pose
}

// Variant selects an animator implementation
type Variant string

const (
	VariantSpin  Variant = "spin"
	VariantShake Variant = "shake"
)

// ErrUnknownVariant is returned for unrecognised variant names
var ErrUnknownVariant = errors.New("unknown animation variant")

// ParseVariant validates a variant name
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantSpin, VariantShake:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// New creates an animator of the given variant timed to the roll duration
// Unknown variants fall back to the spinner
func New(v Variant, src dice.Source) Animator {
	if v == VariantShake {
		return NewShaker(src, constant.RollDuration, constant.FaceCycleInterval)
	}
	return NewSpinner(src, constant.RollDuration)
}

// restPose is the settled pose for a face
func restPose(f dice.Face, o dice.Orientation) Pose {
	return Pose{
		Face:        f,
		Orientation: o,
		Scale:       1,
		Settled:     true,
	}
}
