package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/monodice/constant"
)

// Output is a device the engine's master bus is streamed to
// Lock/Unlock guard mutation of the streamer graph against the device goroutine
type Output interface {
	Name() string
	Open(sr beep.SampleRate, root beep.Streamer) error
	Lock()
	Unlock()
	Close() error
}

// errorReporter is implemented by outputs that can fail after Open
type errorReporter interface {
	Errors() <-chan error
}

// speakerOutput plays through beep's speaker (oto)
type speakerOutput struct{}

// NewSpeakerOutput returns the native speaker output
func NewSpeakerOutput() Output {
	return speakerOutput{}
}

func (speakerOutput) Name() string { return "speaker" }

func (speakerOutput) Open(sr beep.SampleRate, root beep.Streamer) error {
	if err := speaker.Init(sr, sr.N(constant.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(root)
	return nil
}

func (speakerOutput) Lock()   { speaker.Lock() }
func (speakerOutput) Unlock() { speaker.Unlock() }

func (speakerOutput) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}
