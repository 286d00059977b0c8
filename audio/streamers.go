package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// noiseSource produces endless white noise in [-1, 1), identical on both channels
func noiseSource(src Rand) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := src.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	})
}

// keepAlive streams m forever, padding with silence when m has nothing to play
// Keeps the output graph attached between sounds
func keepAlive(m *beep.Mixer) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, _ := m.Stream(samples)
		for i := n; i < len(samples); i++ {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	})
}

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so 0 volume becomes silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// setVolume retargets an existing gain stage
func setVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(vol)
	v.Silent = false
}

// lowPass is an RBJ-cookbook biquad low-pass filter applied per channel
type lowPass struct {
	streamer beep.Streamer

	b0, b1, b2 float64
	a1, a2     float64

	x1, x2 [2]float64
	y1, y2 [2]float64
}

// newLowPass filters s with the given cutoff (Hz) and resonance (dB)
func newLowPass(s beep.Streamer, sr beep.SampleRate, cutoff, qDB float64) *lowPass {
	nyquist := float64(sr) / 2
	if cutoff >= nyquist {
		cutoff = nyquist * 0.99
	}

	q := math.Pow(10, qDB/20)
	w0 := 2 * math.Pi * cutoff / float64(sr)
	sinW, cosW := math.Sincos(w0)
	alpha := sinW / (2 * q)

	a0 := 1 + alpha
	return &lowPass{
		streamer: s,
		b0:       (1 - cosW) / 2 / a0,
		b1:       (1 - cosW) / a0,
		b2:       (1 - cosW) / 2 / a0,
		a1:       -2 * cosW / a0,
		a2:       (1 - alpha) / a0,
	}
}

func (f *lowPass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for ch := 0; ch < 2; ch++ {
			x := samples[i][ch]
			y := f.b0*x + f.b1*f.x1[ch] + f.b2*f.x2[ch] - f.a1*f.y1[ch] - f.a2*f.y2[ch]

			f.x2[ch], f.x1[ch] = f.x1[ch], x
			f.y2[ch], f.y1[ch] = f.y1[ch], y
			samples[i][ch] = y
		}
	}
	return n, ok
}

func (f *lowPass) Err() error { return f.streamer.Err() }

// impactEnvelope ramps linearly from silence to peak, then decays exponentially to floor
type impactEnvelope struct {
	streamer beep.Streamer
	position int
	attack   int
	length   int
	peak     float64
	floor    float64
}

// newImpactEnvelope shapes s with a click-free attack and exponential tail
func newImpactEnvelope(s beep.Streamer, sr beep.SampleRate, peak float64, attack, length time.Duration, floor float64) *impactEnvelope {
	return &impactEnvelope{
		streamer: s,
		attack:   sr.N(attack),
		length:   sr.N(length),
		peak:     peak,
		floor:    floor,
	}
}

// gain returns the envelope value at sample position p
func (e *impactEnvelope) gain(p int) float64 {
	if e.peak <= 0 {
		return 0
	}
	if p < e.attack {
		return e.peak * float64(p) / float64(e.attack)
	}

	decay := e.length - e.attack
	if decay <= 0 || p >= e.length {
		return e.floor
	}
	frac := float64(p-e.attack) / float64(decay)
	return e.peak * math.Pow(e.floor/e.peak, frac)
}

func (e *impactEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *impactEnvelope) Err() error { return e.streamer.Err() }

// sweep is a sine whose frequency and gain both glide exponentially over its length
type sweep struct {
	sr       beep.SampleRate
	position int
	length   int
	phase    float64

	startFreq, endFreq float64
	startGain, endGain float64
}

// newSweep creates a finite exponential sine sweep
func newSweep(sr beep.SampleRate, d time.Duration, startFreq, endFreq, startGain, endGain float64) *sweep {
	return &sweep{
		sr:        sr,
		length:    sr.N(d),
		startFreq: startFreq,
		endFreq:   endFreq,
		startGain: startGain,
		endGain:   endGain,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}

		frac := float64(s.position) / float64(s.length)
		freq := s.startFreq * math.Pow(s.endFreq/s.startFreq, frac)
		gain := s.startGain * math.Pow(s.endGain/s.startGain, frac)

		v := math.Sin(2*math.Pi*s.phase) * gain
		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }
