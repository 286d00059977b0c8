package motion

import (
	"time"

	"github.com/lixenwraith/monodice/constant"
	"github.com/lixenwraith/monodice/dice"
)

// Shaker cycles random faces with jitter while rolling, then snaps to the value
type Shaker struct {
	src      dice.Source
	duration time.Duration
	interval time.Duration

	value   dice.Face
	trigger int
	synced  bool

	rolling bool
	start   time.Time
	tick    int

	face     dice.Face
	rotation float64
	scale    float64
}

// NewShaker creates a shaker that changes face every interval for duration
func NewShaker(src dice.Source, duration, interval time.Duration) *Shaker {
	return &Shaker{
		src:      src,
		duration: duration,
		interval: interval,
		scale:    1,
	}
}

// Sync implements Animator
func (s *Shaker) Sync(view DieView, now time.Time) {
	restart := view.Rolling && (!s.synced || view.Trigger != s.trigger)

	s.value = view.Value
	s.trigger = view.Trigger

	if !s.synced {
		s.face = view.Value
		s.synced = true
	}

	switch {
	case !view.Rolling:
		s.stop()
	case restart:
		s.rolling = true
		s.start = now
		s.tick = 0
	}
}

// Pose implements Animator
func (s *Shaker) Pose(now time.Time) Pose {
	if !s.rolling {
		return restPose(s.face, dice.FaceOrientation(s.face))
	}

	elapsed := now.Sub(s.start)
	if elapsed > s.duration {
		s.stop()
		return restPose(s.face, dice.FaceOrientation(s.face))
	}

	// One random draw per elapsed interval, not per frame
	if s.interval > 0 {
		if n := int(elapsed / s.interval); n > s.tick {
			s.tick = n
			s.jitter()
		}
	}

	return Pose{
		Face:        s.face,
		Orientation: dice.FaceOrientation(s.face),
		Rotation:    s.rotation,
		Scale:       s.scale,
	}
}

func (s *Shaker) jitter() {
	s.face = dice.Face(s.src.IntN(constant.FaceSpan) + constant.FaceMin)
	s.rotation = s.src.Float64()*2*constant.ShakeMaxRotation - constant.ShakeMaxRotation
	s.scale = constant.ShakeMinScale + s.src.Float64()*constant.ShakeScaleSpan
}

// stop snaps to the committed value and clears all jitter
func (s *Shaker) stop() {
	s.rolling = false
	s.face = s.value
	s.rotation = 0
	s.scale = 1
}
