package audio

import "errors"

// SoundType represents the two effects the game plays
type SoundType int

const (
	SoundRoll  SoundType = iota // Dice clatter, one per accepted roll
	SoundClick                  // Confirmation blip on leaving the game view
	soundTypeCount
)

// String returns the config key for the sound
func (st SoundType) String() string {
	switch st {
	case SoundRoll:
		return "roll"
	case SoundClick:
		return "click"
	default:
		return "unknown"
	}
}

// BackendType identifies the audio backend
type BackendType int

const (
	BackendSpeaker BackendType = iota
	BackendPulse
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS
)

// BackendConfig describes a CLI audio backend
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// Rand is the random source the synthesizer draws from
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrPipeClosed     = errors.New("audio pipe closed")
	ErrOutputOpen     = errors.New("audio output already open")
)
