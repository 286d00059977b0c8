package audio

import (
	"github.com/lixenwraith/monodice/config"
	"github.com/lixenwraith/monodice/status"
)

// AudioService wraps AudioEngine as a Service
// The engine never fails to start; missing devices degrade to silent mode on first play
type AudioService struct {
	src     Rand
	stats   *status.Registry
	outputs []Output

	audioEngine *AudioEngine
}

// NewService creates a new audio service
// outputs override the default speaker/pipe search, mainly for tests
func NewService(src Rand, stats *status.Registry, outputs ...Output) *AudioService {
	return &AudioService{
		src:     src,
		stats:   stats,
		outputs: outputs,
	}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// Accepts a config.Config (or pointer) among args; defaults otherwise
func (s *AudioService) Init(args ...any) error {
	cfg := config.Default()
	for _, arg := range args {
		switch v := arg.(type) {
		case config.Config:
			cfg = v
		case *config.Config:
			if v != nil {
				cfg = *v
			}
		}
	}

	ac := NewAudioConfig(cfg.AudioEnabled, cfg.MasterVolume, cfg.EffectVolumes, cfg.SampleRate)
	s.audioEngine = NewAudioEngine(ac, s.src, s.stats, s.outputs...)
	return nil
}

// Start implements Service
// Output is opened lazily by the first play
func (s *AudioService) Start() error {
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.audioEngine != nil {
		s.audioEngine.Stop()
	}
	return nil
}

// Engine returns the underlying AudioEngine (nil before Init)
func (s *AudioService) Engine() *AudioEngine {
	return s.audioEngine
}
