package audio

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/monodice/constant"
)

const (
	cacheKeyNoise = "noise"
	cacheKeyClick = "click"
)

// Impact is one scheduled collision in a clatter
type Impact struct {
	Offset time.Duration // Start relative to the roll
	Rate   float64       // Playback speed of the noise burst
	Cutoff float64       // Low-pass cutoff, Hz
	Peak   float64       // Envelope peak gain
}

// Synth renders dice clatter and click sounds
// Must be driven from a single goroutine; returned streamers are independent
type Synth struct {
	sr    beep.SampleRate
	src   Rand
	cache *soundCache
}

// NewSynth creates a synthesizer for the given sample rate
func NewSynth(sr beep.SampleRate, src Rand) *Synth {
	return &Synth{
		sr:    sr,
		src:   src,
		cache: newSoundCache(),
	}
}

// SampleRate returns the rate streamers are rendered at
func (s *Synth) SampleRate() beep.SampleRate {
	return s.sr
}

func (s *Synth) format() beep.Format {
	return beep.Format{SampleRate: s.sr, NumChannels: constant.AudioChannels, Precision: constant.AudioBitDepth / 8}
}

// noise returns the shared white-noise impulse, generated on first use
func (s *Synth) noise() *beep.Buffer {
	return s.cache.get(cacheKeyNoise, func() *beep.Buffer {
		buf := beep.NewBuffer(s.format())
		buf.Append(beep.Take(s.sr.N(constant.NoiseBufferDuration), noiseSource(s.src)))
		return buf
	})
}

// Clatter draws a fresh set of impacts ordered by offset
// Offsets cluster early; later impacts are quieter as the dice settle
func (s *Synth) Clatter() []Impact {
	count := constant.ClatterMinImpacts + s.src.IntN(constant.ClatterImpactSpread)
	window := constant.ClatterWindow.Seconds()
	span := constant.ClatterLoudnessSpan.Seconds()

	impacts := make([]Impact, count)
	for i := range impacts {
		offset := math.Pow(s.src.Float64(), constant.ClatterOffsetExponent) * window

		impacts[i] = Impact{
			Offset: time.Duration(offset * float64(time.Second)),
			Rate:   constant.ClatterMinRate + s.src.Float64()*constant.ClatterRateSpan,
			Cutoff: constant.ClatterMinCutoff + s.src.Float64()*constant.ClatterCutoffSpan,
			Peak:   math.Max(0, 1-offset/span) * constant.ClatterPeakGain,
		}
	}

	slices.SortFunc(impacts, func(a, b Impact) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
	return impacts
}

// ImpactStreamer renders one impact: delay, pitch shift, low-pass and envelope
func (s *Synth) ImpactStreamer(im Impact) beep.Streamer {
	noise := s.noise()

	burst := beep.ResampleRatio(constant.AudioResampleQuality, im.Rate, noise.Streamer(0, noise.Len()))
	filtered := newLowPass(burst, s.sr, im.Cutoff, constant.ClatterFilterQdB)
	shaped := newImpactEnvelope(filtered, s.sr, im.Peak,
		constant.ImpactAttack, constant.ImpactLength, constant.ImpactFloorGain)

	return beep.Seq(
		generators.Silence(s.sr.N(im.Offset)),
		beep.Take(s.sr.N(constant.ImpactLength), shaped),
	)
}

// RollStreamer mixes all impacts into a single finite streamer
func (s *Synth) RollStreamer(impacts []Impact) beep.Streamer {
	streamers := make([]beep.Streamer, len(impacts))
	for i, im := range impacts {
		streamers[i] = s.ImpactStreamer(im)
	}
	return beep.Mix(streamers...)
}

// ClickStreamer returns the short descending confirmation blip
func (s *Synth) ClickStreamer() beep.Streamer {
	buf := s.cache.get(cacheKeyClick, func() *beep.Buffer {
		buf := beep.NewBuffer(s.format())
		buf.Append(newSweep(s.sr, constant.ClickSoundDuration,
			constant.ClickStartFreq, constant.ClickEndFreq,
			constant.ClickPeakGain, constant.ClickFloorGain))
		return buf
	})
	return buf.Streamer(0, buf.Len())
}
