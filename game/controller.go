package game

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/monodice/constant"
	"github.com/lixenwraith/monodice/dice"
	"github.com/lixenwraith/monodice/engine"
	"github.com/lixenwraith/monodice/motion"
	"github.com/lixenwraith/monodice/status"
)

// SoundPlayer is the per-session audio sink
type SoundPlayer interface {
	PlayRoll()
	PlayClick()
	Release()
}

// Deps are the collaborators a Controller is built from
type Deps struct {
	Generator   *dice.Generator
	Scheduler   engine.Scheduler
	Clock       engine.TimeProvider
	Sound       SoundPlayer           // Optional
	NewAnimator func() motion.Animator // One per die
	Stats       *status.Registry      // Optional
}

// Controller runs one game view: mount, rolls and teardown
// All methods and scheduled callbacks run on the UI goroutine
type Controller struct {
	session   *Session
	gen       *dice.Generator
	sched     engine.Scheduler
	clock     engine.TimeProvider
	sound     SoundPlayer
	animators []motion.Animator

	cancel func() // Pending completion timer
	left   bool

	statAccepted *atomic.Int64
	statRejected *atomic.Int64
}

// NewController mounts a session with count dice showing a fresh outcome
// The mount is not animated: trigger 0 pins every die to its value
func NewController(count int, deps Deps) *Controller {
	stats := deps.Stats
	if stats == nil {
		stats = status.NewRegistry()
	}
	sound := deps.Sound
	if sound == nil {
		sound = nopSound{}
	}

	count = dice.ClampCount(count)
	c := &Controller{
		session: &Session{
			Count:  count,
			Values: deps.Generator.Generate(count),
		},
		gen:          deps.Generator,
		sched:        deps.Scheduler,
		clock:        deps.Clock,
		sound:        sound,
		animators:    make([]motion.Animator, count),
		statAccepted: stats.Ints.Get(status.RollsAccepted),
		statRejected: stats.Ints.Get(status.RollsRejected),
	}

	for i := range c.animators {
		c.animators[i] = deps.NewAnimator()
	}
	c.syncAnimators()

	stats.Ints.Get(status.SessionsStarted).Add(1)
	return c
}

// Roll starts a roll; returns false while a roll is in flight or after Leave
func (c *Controller) Roll() bool {
	if c.left || c.session.Rolling {
		c.statRejected.Add(1)
		return false
	}
	c.statAccepted.Add(1)

	s := c.session
	s.Values = c.gen.Generate(s.Count)
	s.Rolling = true
	s.Trigger++

	c.sound.PlayRoll()
	c.syncAnimators()

	trigger := s.Trigger
	c.cancel = c.sched.After(constant.RollDuration, func() {
		c.complete(trigger)
	})
	return true
}

// complete clears the rolling flag for the roll identified by trigger
func (c *Controller) complete(trigger int) {
	if c.left || trigger != c.session.Trigger {
		return
	}
	c.cancel = nil
	c.session.Rolling = false
	c.syncAnimators()
}

// Leave tears the view down: click, cancel the pending timer, release audio
// Idempotent
func (c *Controller) Leave() {
	if c.left {
		return
	}
	c.left = true

	c.sound.PlayClick()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.sound.Release()
}

// Session returns the live session state
func (c *Controller) Session() *Session {
	return c.session
}

// Rolling reports whether a roll is in flight
func (c *Controller) Rolling() bool {
	return c.session.Rolling
}

// Left reports whether Leave has been called
func (c *Controller) Left() bool {
	return c.left
}

// Dice returns the per-die views exposed to rendering
func (c *Controller) Dice() []motion.DieView {
	return c.session.Views()
}

// Poses returns every die's pose at now
func (c *Controller) Poses(now time.Time) []motion.Pose {
	poses := make([]motion.Pose, len(c.animators))
	for i, a := range c.animators {
		poses[i] = a.Pose(now)
	}
	return poses
}

func (c *Controller) syncAnimators() {
	now := c.clock.Now()
	for i, a := range c.animators {
		a.Sync(c.session.View(i), now)
	}
}

type nopSound struct{}

func (nopSound) PlayRoll()  {}
func (nopSound) PlayClick() {}
func (nopSound) Release()   {}
