package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/monodice/status"
)

// AudioEngine owns the master bus and the output device
// The device is opened lazily on the first audible play and falls back to silent mode
type AudioEngine struct {
	config *AudioConfig
	synth  *Synth

	outputs []Output // Candidates in priority order
	out     Output   // Opened output, nil until first play or in silent mode

	master *beep.Mixer
	volume *effects.Volume

	opened     atomic.Bool
	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	mu       sync.Mutex // Protects config, out and synth
	stopChan chan struct{}
	wg       sync.WaitGroup

	statImpacts *atomic.Int64
	statClicks  *atomic.Int64
	statSilent  *atomic.Bool
	statBackend *status.AtomicString
	statVolume  *status.AtomicFloat
}

// NewAudioEngine creates an engine; no device is touched until the first play
// Without explicit outputs the speaker is tried first, then the CLI pipe
func NewAudioEngine(cfg *AudioConfig, src Rand, reg *status.Registry, outputs ...Output) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	if len(outputs) == 0 {
		outputs = []Output{NewSpeakerOutput(), NewPipeOutput()}
	}

	ae := &AudioEngine{
		config:   cfg,
		synth:    NewSynth(beep.SampleRate(cfg.SampleRate), src),
		outputs:  outputs,
		master:   &beep.Mixer{},
		stopChan: make(chan struct{}),

		statImpacts: reg.Ints.Get(status.AudioImpacts),
		statClicks:  reg.Ints.Get(status.AudioClicks),
		statSilent:  reg.Bools.Get(status.AudioSilent),
		statBackend: reg.Strings.Get(status.AudioBackend),
		statVolume:  reg.Floats.Get(status.AudioVolume),
	}
	ae.volume = newVolume(keepAlive(ae.master), cfg.MasterVolume)
	ae.muted.Store(!cfg.Enabled)
	ae.running.Store(true)
	ae.statBackend.Store("none")
	ae.statVolume.Set(cfg.MasterVolume)

	return ae
}

// ensureOutput opens the first working output; caller holds ae.mu
// Returns false when the engine is in silent mode
func (ae *AudioEngine) ensureOutput() bool {
	if ae.opened.Load() {
		return ae.out != nil
	}
	ae.opened.Store(true)

	for _, out := range ae.outputs {
		if err := out.Open(ae.synth.SampleRate(), ae.volume); err != nil {
			log.Printf("audio: %s unavailable: %v", out.Name(), err)
			continue
		}

		ae.out = out
		ae.statBackend.Store(out.Name())
		log.Printf("audio: using %s output at %d Hz", out.Name(), ae.config.SampleRate)

		if r, ok := out.(errorReporter); ok {
			ae.wg.Add(1)
			go ae.monitorOutput(r.Errors())
		}
		return true
	}

	log.Printf("audio: %v, running silent", ErrNoAudioBackend)
	ae.enterSilentMode()
	return false
}

// monitorOutput switches to silent mode on the first device failure
func (ae *AudioEngine) monitorOutput(errs <-chan error) {
	defer ae.wg.Done()

	select {
	case err := <-errs:
		log.Printf("audio: output failed: %v", err)
		ae.enterSilentMode()
	case <-ae.stopChan:
	}
}

func (ae *AudioEngine) enterSilentMode() {
	ae.silentMode.Store(true)
	ae.statSilent.Store(true)
}

// attach mutates the streamer graph under the output lock
// No-op when stopped, muted or silent
func (ae *AudioEngine) attach(fn func()) bool {
	if !ae.IsEnabled() {
		return false
	}

	ae.mu.Lock()
	defer ae.mu.Unlock()

	if !ae.ensureOutput() || ae.silentMode.Load() {
		return false
	}

	ae.out.Lock()
	fn()
	ae.out.Unlock()
	return true
}

// PlayClick plays the confirmation blip on the master bus
func (ae *AudioEngine) PlayClick() {
	if !ae.IsEnabled() {
		return
	}

	ae.mu.Lock()
	s := newVolume(ae.synth.ClickStreamer(), ae.config.effectVolume(SoundClick))
	ae.mu.Unlock()

	if ae.attach(func() { ae.master.Add(s) }) {
		ae.statClicks.Add(1)
	}
}

// NewChannel creates a per-session bus; nothing is attached until it first plays
func (ae *AudioEngine) NewChannel() *Channel {
	return &Channel{engine: ae}
}

// Stop closes the output and ends all playback
func (ae *AudioEngine) Stop() {
	if !ae.running.CompareAndSwap(true, false) {
		return
	}
	close(ae.stopChan)

	ae.mu.Lock()
	out := ae.out
	ae.out = nil
	ae.mu.Unlock()

	if out != nil {
		out.Lock()
		ae.master.Clear()
		out.Unlock()

		if err := out.Close(); err != nil {
			log.Printf("audio: close %s: %v", out.Name(), err)
		}
	}

	ae.wg.Wait()
}

// ToggleMute toggles mute state, returns true if now enabled
func (ae *AudioEngine) ToggleMute() bool {
	newMute := !ae.muted.Load()
	ae.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsEnabled returns true if running, unmuted and not silent
func (ae *AudioEngine) IsEnabled() bool {
	return ae.running.Load() && !ae.muted.Load() && !ae.silentMode.Load()
}

// IsSilent returns true once no output could be opened or the output failed
func (ae *AudioEngine) IsSilent() bool {
	return ae.silentMode.Load()
}

// IsRunning returns true until Stop
func (ae *AudioEngine) IsRunning() bool {
	return ae.running.Load()
}

// Volume returns the master volume (0.0-1.0)
func (ae *AudioEngine) Volume() float64 {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	return ae.config.MasterVolume
}

// SetVolume updates master volume (0.0-1.0)
func (ae *AudioEngine) SetVolume(vol float64) {
	vol = clampVolume(vol)

	ae.mu.Lock()
	ae.config.MasterVolume = vol
	out := ae.out
	if out != nil {
		out.Lock()
	}
	setVolume(ae.volume, vol)
	if out != nil {
		out.Unlock()
	}
	ae.mu.Unlock()

	ae.statVolume.Set(vol)
}

// Backend returns the opened output name, or "none"
func (ae *AudioEngine) Backend() string {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	if ae.out == nil {
		return "none"
	}
	return ae.out.Name()
}
