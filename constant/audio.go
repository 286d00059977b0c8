package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate    = 44100
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8) // 4 bytes
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines latency and pipe writer tick rate
	AudioBufferDuration = 50 * time.Millisecond

	// AudioResampleQuality is the interpolation quality passed to beep.ResampleRatio
	AudioResampleQuality = 4
)

// Clatter (dice roll) Sound
const (
	// NoiseBufferDuration is the length of the shared white noise impulse
	NoiseBufferDuration = 100 * time.Millisecond

	ClatterMinImpacts   = 15
	ClatterImpactSpread = 10 // impacts in [ClatterMinImpacts, ClatterMinImpacts+ClatterImpactSpread)

	// ClatterWindow bounds impact start offsets, slightly shorter than the roll
	ClatterWindow = 2900 * time.Millisecond

	// ClatterOffsetExponent > 1 clusters impacts toward the start of the roll
	ClatterOffsetExponent = 1.2

	// ClatterLoudnessSpan is the horizon over which impact loudness fades to zero
	ClatterLoudnessSpan = 3 * time.Second

	ClatterPeakGain = 0.4

	ClatterMinRate  = 0.8
	ClatterRateSpan = 0.6

	ClatterMinCutoff  = 800.0 // Hz
	ClatterCutoffSpan = 1000.0
	ClatterFilterQdB  = 0.5

	ImpactAttack = 5 * time.Millisecond
	ImpactLength = 100 * time.Millisecond

	// ImpactFloorGain is the exponential decay target, never exactly zero
	ImpactFloorGain = 0.001
)

// Click Sound
const (
	ClickSoundDuration = 100 * time.Millisecond
	ClickStartFreq     = 800.0 // Hz
	ClickEndFreq       = 400.0 // Hz
	ClickPeakGain      = 0.15
	ClickFloorGain     = 0.001
)
