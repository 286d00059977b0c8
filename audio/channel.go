package audio

import (
	"github.com/gopxl/beep"
)

// Channel is a per-session bus feeding the engine master
// Methods must be called from the goroutine that owns the session
type Channel struct {
	engine *AudioEngine

	mixer    *beep.Mixer
	ctrl     *beep.Ctrl
	released bool
}

// PlayRoll schedules a fresh clatter on the channel
func (c *Channel) PlayRoll() {
	if c.released || !c.engine.IsEnabled() {
		return
	}

	ae := c.engine
	ae.mu.Lock()
	impacts := ae.synth.Clatter()
	s := newVolume(ae.synth.RollStreamer(impacts), ae.config.effectVolume(SoundRoll))
	ae.mu.Unlock()

	played := ae.attach(func() {
		if c.mixer == nil {
			c.mixer = &beep.Mixer{}
			c.ctrl = &beep.Ctrl{Streamer: keepAlive(c.mixer)}
			ae.master.Add(c.ctrl)
		}
		c.mixer.Add(s)
	})
	if played {
		ae.statImpacts.Add(int64(len(impacts)))
	}
}

// PlayClick plays the blip on the master bus so it outlives Release
func (c *Channel) PlayClick() {
	c.engine.PlayClick()
}

// Release detaches the channel; sounds still pending on it are dropped
func (c *Channel) Release() {
	if c.released {
		return
	}
	c.released = true

	if c.ctrl == nil {
		return
	}

	ae := c.engine
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if ae.out != nil {
		ae.out.Lock()
		defer ae.out.Unlock()
	}
	c.ctrl.Streamer = nil
	c.mixer.Clear()
}

// Released reports whether Release has been called
func (c *Channel) Released() bool {
	return c.released
}
