package design

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fsk/dsp/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func mag(c biquad.Coefficients, freq, sr float64) float64 {
	return c.MagnitudeDB(freq, sr)
}

func TestLowpass_BasicResponseShape(t *testing.T) {
	sr := 48000.0
	c := Lowpass(1000, defaultQ, sr)

	if !almostEqual(mag(c, 10, sr), 0, 0.01) {
		t.Errorf("DC gain = %.3f dB, want ~0", mag(c, 10, sr))
	}
	if !almostEqual(mag(c, 1000, sr), -3.01, 0.1) {
		t.Errorf("cutoff gain = %.2f dB, want ~-3.01", mag(c, 1000, sr))
	}
	if mag(c, 10000, sr) > -35 {
		t.Errorf("stopband gain = %.1f dB, want < -35", mag(c, 10000, sr))
	}
}

func TestHighpass_BasicResponseShape(t *testing.T) {
	sr := 48000.0
	c := Highpass(1000, defaultQ, sr)

	if !almostEqual(mag(c, 23000, sr), 0, 0.01) {
		t.Errorf("near-Nyquist gain = %.3f dB, want ~0", mag(c, 23000, sr))
	}
	if !almostEqual(mag(c, 1000, sr), -3.01, 0.1) {
		t.Errorf("cutoff gain = %.2f dB, want ~-3.01", mag(c, 1000, sr))
	}
	if mag(c, 100, sr) > -35 {
		t.Errorf("stopband gain = %.1f dB, want < -35", mag(c, 100, sr))
	}
}

func TestBandpass_PeakGainEqualsQ(t *testing.T) {
	sr := 48000.0
	c := Bandpass(1000, 5, sr)

	if !almostEqual(mag(c, 1000, sr), 20*math.Log10(5), 0.05) {
		t.Errorf("center gain = %.2f dB, want %.2f", mag(c, 1000, sr), 20*math.Log10(5))
	}
	if mag(c, 100, sr) > mag(c, 1000, sr)-20 {
		t.Errorf("low skirt only %.1f dB below peak", mag(c, 1000, sr)-mag(c, 100, sr))
	}
	if mag(c, 10000, sr) > mag(c, 1000, sr)-20 {
		t.Errorf("high skirt only %.1f dB below peak", mag(c, 1000, sr)-mag(c, 10000, sr))
	}
}

func TestDesigners_DefaultQForInvalidQ(t *testing.T) {
	sr := 48000.0
	want := Lowpass(1000, defaultQ, sr)

	for _, q := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		got := Lowpass(1000, q, sr)
		if got != want {
			t.Errorf("q=%v: got %v, want default-Q coefficients", q, got)
		}
	}
}

func TestDesigners_InvalidInputs(t *testing.T) {
	zero := biquad.Coefficients{}
	cases := []struct {
		name     string
		freq, sr float64
	}{
		{"zero freq", 0, 48000},
		{"negative freq", -100, 48000},
		{"at nyquist", 24000, 48000},
		{"above nyquist", 30000, 48000},
		{"zero sample rate", 1000, 0},
		{"nan freq", math.NaN(), 48000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if c := Lowpass(tc.freq, defaultQ, tc.sr); c != zero {
				t.Errorf("Lowpass: got %v, want zero coefficients", c)
			}
			if c := Highpass(tc.freq, defaultQ, tc.sr); c != zero {
				t.Errorf("Highpass: got %v, want zero coefficients", c)
			}
			if c := Bandpass(tc.freq, defaultQ, tc.sr); c != zero {
				t.Errorf("Bandpass: got %v, want zero coefficients", c)
			}
		})
	}
}

func TestDesigners_StableAcrossSampleRates(t *testing.T) {
	for _, sr := range []float64{8000, 44100, 48000, 96000, 192000} {
		for _, freq := range []float64{100, 1000, sr / 4} {
			for _, c := range []biquad.Coefficients{
				Lowpass(freq, defaultQ, sr),
				Highpass(freq, defaultQ, sr),
				Bandpass(freq, 2, sr),
			} {
				if !c.Stable() {
					t.Errorf("unstable section for freq=%v sr=%v: %v", freq, sr, c)
				}
			}
		}
	}
}
