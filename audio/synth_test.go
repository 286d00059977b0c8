package audio

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/monodice/constant"
)

const testRate = beep.SampleRate(8000)

func newTestSynth(seed uint64) *Synth {
	return NewSynth(testRate, rand.New(rand.NewPCG(seed, seed^0x9e3779b9)))
}

// drain streams s to completion (bounded by limit samples) and returns everything produced
func drain(s beep.Streamer, limit int) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	return out
}

func rms(samples [][2]float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s[0] * s[0]
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// TestClatterBounds verifies impact count, offsets, rates, cutoffs and ordering
func TestClatterBounds(t *testing.T) {
	s := newTestSynth(1)

	for round := 0; round < 200; round++ {
		impacts := s.Clatter()

		if len(impacts) < 15 || len(impacts) > 24 {
			t.Fatalf("Round %d: expected 15-24 impacts, got %d", round, len(impacts))
		}

		for i, im := range impacts {
			if im.Offset < 0 || im.Offset >= constant.ClatterWindow {
				t.Errorf("Impact %d offset %v outside [0, %v)", i, im.Offset, constant.ClatterWindow)
			}
			if im.Rate < 0.8 || im.Rate >= 1.4 {
				t.Errorf("Impact %d rate %f outside [0.8, 1.4)", i, im.Rate)
			}
			if im.Cutoff < 800 || im.Cutoff >= 1800 {
				t.Errorf("Impact %d cutoff %f outside [800, 1800)", i, im.Cutoff)
			}
			if im.Peak < 0 || im.Peak > constant.ClatterPeakGain {
				t.Errorf("Impact %d peak %f outside [0, %f]", i, im.Peak, constant.ClatterPeakGain)
			}
			if i > 0 {
				prev := impacts[i-1]
				if im.Offset < prev.Offset {
					t.Errorf("Impacts not ordered at %d: %v < %v", i, im.Offset, prev.Offset)
				}
				if im.Peak > prev.Peak+1e-9 {
					t.Errorf("Later impact %d louder than earlier: %f > %f", i, im.Peak, prev.Peak)
				}
			}
		}
	}
}

// TestClatterPeakFormula verifies gain falls linearly with offset
func TestClatterPeakFormula(t *testing.T) {
	s := newTestSynth(7)
	for _, im := range s.Clatter() {
		want := math.Max(0, 1-im.Offset.Seconds()/3.0) * 0.4
		if math.Abs(im.Peak-want) > 1e-6 {
			t.Errorf("Offset %v: expected peak %f, got %f", im.Offset, want, im.Peak)
		}
	}
}

// TestNoiseBufferCached verifies the noise impulse is rendered once
func TestNoiseBufferCached(t *testing.T) {
	s := newTestSynth(3)

	first := s.noise()
	second := s.noise()

	if first != second {
		t.Error("Expected noise buffer to be reused")
	}
	if first.Len() != testRate.N(100*time.Millisecond) {
		t.Errorf("Expected %d noise samples, got %d", testRate.N(100*time.Millisecond), first.Len())
	}
}

// TestImpactStreamerLength verifies delay plus burst length
func TestImpactStreamerLength(t *testing.T) {
	s := newTestSynth(4)
	im := Impact{Offset: 250 * time.Millisecond, Rate: 1.0, Cutoff: 1200, Peak: 0.4}

	out := drain(s.ImpactStreamer(im), 1<<20)

	delay := testRate.N(im.Offset)
	limit := delay + testRate.N(constant.ImpactLength)
	if len(out) <= delay || len(out) > limit {
		t.Fatalf("Expected between %d and %d samples, got %d", delay+1, limit, len(out))
	}

	for i := 0; i < delay; i++ {
		if out[i] != [2]float64{} {
			t.Fatalf("Expected silence before offset, sample %d = %v", i, out[i])
		}
	}
	if rms(out[delay:]) == 0 {
		t.Error("Expected audible burst after offset")
	}
}

// TestRollStreamerFinite verifies a roll ends within the window plus one burst
func TestRollStreamerFinite(t *testing.T) {
	s := newTestSynth(5)
	impacts := s.Clatter()

	limit := testRate.N(constant.ClatterWindow + constant.ImpactLength + time.Second)
	out := drain(s.RollStreamer(impacts), limit)

	last := impacts[len(impacts)-1].Offset
	if len(out) >= limit {
		t.Fatalf("Expected roll to end, still streaming after %d samples", len(out))
	}
	if len(out) < testRate.N(last) {
		t.Errorf("Roll ended at %d samples, before last impact at %d", len(out), testRate.N(last))
	}
	if rms(out) == 0 {
		t.Error("Expected non-silent roll")
	}
}

// TestClickStreamer verifies click duration and amplitude ceiling
func TestClickStreamer(t *testing.T) {
	s := newTestSynth(6)

	out := drain(s.ClickStreamer(), 1<<20)
	want := testRate.N(constant.ClickSoundDuration)
	if len(out) != want {
		t.Fatalf("Expected %d samples, got %d", want, len(out))
	}

	for i, v := range out {
		if math.Abs(v[0]) > constant.ClickPeakGain+1e-9 {
			t.Fatalf("Sample %d exceeds click gain: %f", i, v[0])
		}
		if v[0] != v[1] {
			t.Fatalf("Sample %d not mono: %v", i, v)
		}
	}

	// Second call replays the cached buffer from the start
	again := drain(s.ClickStreamer(), 1<<20)
	if len(again) != want || again[10] != out[10] {
		t.Error("Expected identical replay from cache")
	}
}

// TestImpactEnvelopeShape verifies attack, peak and floor points
func TestImpactEnvelopeShape(t *testing.T) {
	env := newImpactEnvelope(nil, testRate, 0.4, 5*time.Millisecond, 100*time.Millisecond, 0.001)

	if g := env.gain(0); g != 0 {
		t.Errorf("Expected gain 0 at start, got %f", g)
	}
	if g := env.gain(env.attack); math.Abs(g-0.4) > 1e-9 {
		t.Errorf("Expected peak 0.4 at end of attack, got %f", g)
	}
	if g := env.gain(env.length); g != 0.001 {
		t.Errorf("Expected floor at end, got %f", g)
	}

	prev := env.gain(env.attack)
	for p := env.attack + 1; p < env.length; p++ {
		g := env.gain(p)
		if g > prev {
			t.Fatalf("Expected monotonic decay, gain rose at %d", p)
		}
		prev = g
	}

	silent := newImpactEnvelope(nil, testRate, 0, 5*time.Millisecond, 100*time.Millisecond, 0.001)
	if g := silent.gain(silent.attack); g != 0 {
		t.Errorf("Expected zero-peak envelope to stay silent, got %f", g)
	}
}

// TestLowPassAttenuation verifies high frequencies are attenuated more than low
func TestLowPassAttenuation(t *testing.T) {
	sr := beep.SampleRate(44100)

	tone := func(freq float64) beep.Streamer {
		return newSweep(sr, 200*time.Millisecond, freq, freq*1.0000001, 0.5, 0.5)
	}

	low := drain(newLowPass(tone(100), sr, 800, constant.ClatterFilterQdB), 1<<20)
	high := drain(newLowPass(tone(6000), sr, 800, constant.ClatterFilterQdB), 1<<20)

	// Skip the filter's settling period
	skip := sr.N(20 * time.Millisecond)
	lowRMS := rms(low[skip:])
	highRMS := rms(high[skip:])

	if highRMS*10 > lowRMS {
		t.Errorf("Expected strong attenuation above cutoff: low=%f high=%f", lowRMS, highRMS)
	}
}

// TestVolumeStage verifies linear gain mapping including zero
func TestVolumeStage(t *testing.T) {
	one := func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	}

	buf := make([][2]float64, 4)

	v := newVolume(beep.StreamerFunc(one), 0.5)
	v.Stream(buf)
	if math.Abs(buf[0][0]-0.5) > 1e-9 {
		t.Errorf("Expected 0.5 gain, got %f", buf[0][0])
	}

	setVolume(v, 0)
	v.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("Expected silence at zero volume, got %f", buf[0][0])
	}

	setVolume(v, 1)
	v.Stream(buf)
	if math.Abs(buf[0][0]-1) > 1e-9 {
		t.Errorf("Expected unity gain, got %f", buf[0][0])
	}
}
