package app

import (
	"github.com/lixenwraith/monodice/audio"
	"github.com/lixenwraith/monodice/game"
)

// Sound is the process-wide audio the app drives
type Sound interface {
	// NewSession returns the audio sink for one game view
	NewSession() game.SoundPlayer
	ToggleMute() bool
	IsMuted() bool
}

// EngineSound adapts an AudioEngine; nil yields a permanently muted sink
func EngineSound(ae *audio.AudioEngine) Sound {
	if ae == nil {
		return nopSound{}
	}
	return engineSound{ae}
}

type engineSound struct {
	*audio.AudioEngine
}

func (s engineSound) NewSession() game.SoundPlayer {
	return s.NewChannel()
}

type nopSound struct{}

func (nopSound) NewSession() game.SoundPlayer { return nopPlayer{} }
func (nopSound) ToggleMute() bool             { return false }
func (nopSound) IsMuted() bool                { return true }

type nopPlayer struct{}

func (nopPlayer) PlayRoll()  {}
func (nopPlayer) PlayClick() {}
func (nopPlayer) Release()   {}
