// Package config loads runtime settings from the environment
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/monodice/constant"
	"github.com/lixenwraith/monodice/motion"
)

// Config is the complete runtime configuration
// Command-line flags override values parsed here
type Config struct {
	AudioEnabled  bool               `env:"MONODICE_AUDIO_ENABLED" envDefault:"true"`
	MasterVolume  float64            `env:"MONODICE_MASTER_VOLUME" envDefault:"1.0"`
	SampleRate    int                `env:"MONODICE_SAMPLE_RATE"   envDefault:"44100"`
	EffectVolumes map[string]float64 `env:"MONODICE_SFX_VOLUMES"   envDefault:"roll:1.0,click:1.0"`
	Variant       string             `env:"MONODICE_VARIANT"       envDefault:"spin"`
	Seed          uint64             `env:"MONODICE_SEED"`
	Debug         bool               `env:"MONODICE_DEBUG"`
	LogDir        string             `env:"MONODICE_LOG_DIR"       envDefault:"logs"`
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		AudioEnabled:  true,
		MasterVolume:  1.0,
		SampleRate:    constant.AudioSampleRate,
		EffectVolumes: map[string]float64{"roll": 1.0, "click": 1.0},
		Variant:       string(motion.VariantSpin),
		LogDir:        "logs",
	}
}

// Load parses the environment into a validated Config
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Default(), fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate clamps numeric ranges and rejects unknown variants
func (c *Config) Validate() error {
	c.MasterVolume = clampUnit(c.MasterVolume)

	if c.SampleRate <= 0 {
		c.SampleRate = constant.AudioSampleRate
	}

	if c.EffectVolumes == nil {
		c.EffectVolumes = map[string]float64{}
	}
	for k, v := range c.EffectVolumes {
		c.EffectVolumes[k] = clampUnit(v)
	}

	if c.LogDir == "" {
		c.LogDir = "logs"
	}

	if _, err := motion.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// AnimationVariant returns the validated animation variant
func (c Config) AnimationVariant() motion.Variant {
	v, err := motion.ParseVariant(c.Variant)
	if err != nil {
		return motion.VariantSpin
	}
	return v
}

// EffectVolume returns the volume for a named effect, 1.0 when unset
func (c Config) EffectVolume(name string) float64 {
	if v, ok := c.EffectVolumes[name]; ok {
		return v
	}
	return 1.0
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
