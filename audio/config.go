package audio

import "github.com/lixenwraith/monodice/constant"

// AudioConfig holds engine settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns unmuted full-volume settings at the hardware rate
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		EffectVolumes: map[SoundType]float64{
			SoundRoll:  1.0,
			SoundClick: 1.0,
		},
		SampleRate: constant.AudioSampleRate,
	}
}

// NewAudioConfig builds a config from named effect volumes ("roll", "click")
// Unknown names are ignored; missing names keep full volume
func NewAudioConfig(enabled bool, master float64, effects map[string]float64, sampleRate int) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = clampVolume(master)
	if sampleRate > 0 {
		cfg.SampleRate = sampleRate
	}

	for st := SoundType(0); st < soundTypeCount; st++ {
		if v, ok := effects[st.String()]; ok {
			cfg.EffectVolumes[st] = clampVolume(v)
		}
	}
	return cfg
}

// effectVolume returns the per-effect volume, 1.0 when unset
func (c *AudioConfig) effectVolume(st SoundType) float64 {
	if v, ok := c.EffectVolumes[st]; ok {
		return v
	}
	return 1.0
}

func clampVolume(vol float64) float64 {
	if vol < 0 {
		return 0
	}
	if vol > 1 {
		return 1
	}
	return vol
}
