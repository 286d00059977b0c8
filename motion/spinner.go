package motion

import (
	"time"

	"github.com/lixenwraith/monodice/constant"
	"github.com/lixenwraith/monodice/dice"
)

// Spinner tumbles a cube onto the committed face
// Rotation accumulates across rolls so consecutive spins never jump back
type Spinner struct {
	src      dice.Source
	duration time.Duration

	value   dice.Face
	trigger int
	synced  bool

	from, to dice.Orientation
	start    time.Time
	spinning bool
}

// NewSpinner creates a spinner whose transition lasts duration
func NewSpinner(src dice.Source, duration time.Duration) *Spinner {
	return &Spinner{
		src:      src,
		duration: duration,
	}
}

// Sync implements Animator
func (s *Spinner) Sync(view DieView, now time.Time) {
	defer func() {
		s.value = view.Value
		s.trigger = view.Trigger
		s.synced = true
	}()

	// Initial mount: establish the starting pose without a spin
	if !s.synced || view.Trigger == 0 {
		s.to = dice.FaceOrientation(view.Value)
		s.from = s.to
		s.spinning = false
		return
	}

	if view.Rolling && view.Trigger != s.trigger {
		current := s.orientationAt(now)
		s.from = current
		s.to = Advance(current, view.Value, s.revolutions(), s.revolutions())
		s.start = now
		s.spinning = true
		return
	}

	if !view.Rolling && s.spinning {
		s.settle()
	}

	// A value change outside a roll realigns without extra turns
	if !s.spinning && view.Value != s.value {
		s.to = Advance(s.to, view.Value, 0, 0)
		s.from = s.to
	}
}

// Pose implements Animator
func (s *Spinner) Pose(now time.Time) Pose {
	if s.spinning && now.Sub(s.start) >= s.duration {
		s.settle()
	}

	if !s.spinning {
		return restPose(s.value, s.to)
	}

	o := s.orientationAt(now)
	return Pose{
		Face:        VisibleFace(o),
		Orientation: o,
		Scale:       1,
	}
}

// Target returns the orientation the current spin ends on
func (s *Spinner) Target() dice.Orientation {
	return s.to
}

// Spinning reports whether a transition is in flight
func (s *Spinner) Spinning() bool {
	return s.spinning
}

func (s *Spinner) settle() {
	s.spinning = false
	s.from = s.to
}

// orientationAt interpolates the in-flight transition with an ease-out curve
func (s *Spinner) orientationAt(now time.Time) dice.Orientation {
	if !s.spinning || s.duration <= 0 {
		return s.to
	}
	t := float64(now.Sub(s.start)) / float64(s.duration)
	return lerpOrientation(s.from, s.to, EaseOutCubic(t))
}

// revolutions draws an extra full-turn count for one axis
func (s *Spinner) revolutions() int {
	span := constant.SpinMaxRevolutions - constant.SpinMinRevolutions + 1
	return constant.SpinMinRevolutions + s.src.IntN(span)
}
