package tones

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fsk/dsp/signal"
	"github.com/cwbudde/algo-fsk/dsp/spectrum"
)

func TestAnalyze_SingleTone(t *testing.T) {
	gen := signal.NewGenerator(8000)

	sig, err := gen.Sine(1000, 0.8, 4096)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	result, err := Analyze(sig, Config{SampleRate: 8000})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if result.FFTSize != 4096 {
		t.Errorf("FFTSize = %d, want 4096", result.FFTSize)
	}

	if len(result.Magnitudes) != 4096/2+1 {
		t.Errorf("len(Magnitudes) = %d, want %d", len(result.Magnitudes), 4096/2+1)
	}

	if len(result.Tones) == 0 {
		t.Fatal("Analyze() found no tones")
	}

	top := result.Tones[0]
	if math.Abs(top.Frequency-1000) > 0.01 {
		t.Errorf("top tone frequency = %v, want 1000", top.Frequency)
	}

	if math.Abs(top.Magnitude-0.8) > 0.02 {
		t.Errorf("top tone magnitude = %v, want 0.8", top.Magnitude)
	}
}

func TestAnalyze_IgnoresDCOffset(t *testing.T) {
	gen := signal.NewGenerator(8000)

	sig, err := gen.Sine(1000, 0.8, 4096)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	for i := range sig {
		sig[i] += 0.5
	}

	result, err := Analyze(sig, Config{SampleRate: 8000, MaxTones: 2})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(result.Tones) == 0 {
		t.Fatal("Analyze() found no tones")
	}

	top := result.Tones[0]
	if math.Abs(top.Frequency-1000) > 0.01 {
		t.Errorf("top tone frequency = %v, want 1000", top.Frequency)
	}

	if math.Abs(top.Magnitude-0.8) > 0.02 {
		t.Errorf("top tone magnitude = %v, want 0.8", top.Magnitude)
	}

	if len(result.Tones) > 1 && result.Tones[1].Magnitude > 0.01*top.Magnitude {
		t.Errorf("second tone at %v Hz with magnitude %v, offset leaked into the spectrum",
			result.Tones[1].Frequency, result.Tones[1].Magnitude)
	}
}

func TestAnalyze_TwoTonesOrderedByMagnitude(t *testing.T) {
	gen := signal.NewGenerator(8000)

	strong, err := gen.Sine(1000, 0.9, 4096)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	weak, err := gen.Sine(1500, 0.5, 4096)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	if err := signal.MixInPlace(strong, weak); err != nil {
		t.Fatalf("MixInPlace() error = %v", err)
	}

	result, err := Analyze(strong, Config{SampleRate: 8000, MaxTones: 2})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(result.Tones) != 2 {
		t.Fatalf("len(Tones) = %d, want 2", len(result.Tones))
	}

	if math.Abs(result.Tones[0].Frequency-1000) > 0.01 {
		t.Errorf("Tones[0].Frequency = %v, want 1000", result.Tones[0].Frequency)
	}

	if math.Abs(result.Tones[1].Frequency-1500) > 0.01 {
		t.Errorf("Tones[1].Frequency = %v, want 1500", result.Tones[1].Frequency)
	}

	if result.Tones[0].Magnitude <= result.Tones[1].Magnitude {
		t.Errorf("tones not ordered by magnitude: %v <= %v",
			result.Tones[0].Magnitude, result.Tones[1].Magnitude)
	}

	if math.Abs(result.Tones[1].Magnitude-0.5) > 0.02 {
		t.Errorf("Tones[1].Magnitude = %v, want 0.5", result.Tones[1].Magnitude)
	}
}

// A tone between bin centers leaks into many neighbouring bins; the
// separation rule must keep its mainlobe from being reported repeatedly.
func TestAnalyze_SeparationSuppressesLeakage(t *testing.T) {
	gen := signal.NewGenerator(8000)

	sig, err := gen.Sine(1003, 1, 2048)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	result, err := Analyze(sig, Config{SampleRate: 8000, MaxTones: 4})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(result.Tones) == 0 {
		t.Fatal("Analyze() found no tones")
	}

	if math.Abs(result.Tones[0].Frequency-1003) > 1 {
		t.Errorf("Tones[0].Frequency = %v, want about 1003", result.Tones[0].Frequency)
	}

	minSep := 2 * 8000.0 / 2048
	for i := 0; i < len(result.Tones); i++ {
		for j := i + 1; j < len(result.Tones); j++ {
			fi := spectrum.BinFrequency(result.Tones[i].Bin, result.FFTSize, 8000)
			fj := spectrum.BinFrequency(result.Tones[j].Bin, result.FFTSize, 8000)

			if math.Abs(fi-fj) < minSep {
				t.Errorf("tones %d and %d only %v Hz apart, want >= %v", i, j, math.Abs(fi-fj), minSep)
			}
		}
	}
}

func TestAnalyze_FrequencyRange(t *testing.T) {
	gen := signal.NewGenerator(8000)

	low, err := gen.Sine(500, 0.5, 4096)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	high, err := gen.Sine(3000, 0.4, 4096)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	if err := signal.MixInPlace(low, high); err != nil {
		t.Fatalf("MixInPlace() error = %v", err)
	}

	result, err := Analyze(low, Config{
		SampleRate:     8000,
		MaxTones:       2,
		RangeLowerFreq: 2000,
		RangeUpperFreq: 4000,
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	for _, tone := range result.Tones {
		if tone.Frequency < 2000 || tone.Frequency > 4000 {
			t.Errorf("tone at %v Hz outside requested range", tone.Frequency)
		}
	}

	if len(result.Tones) == 0 || math.Abs(result.Tones[0].Frequency-3000) > 0.01 {
		t.Errorf("Tones = %+v, want the 3000 Hz tone", result.Tones)
	}
}

func TestAnalyze_MaxTonesLimit(t *testing.T) {
	gen := signal.NewGenerator(8000)

	sig, err := gen.Sine(1000, 1, 4096)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	result, err := Analyze(sig, Config{SampleRate: 8000, MaxTones: 1})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(result.Tones) != 1 {
		t.Errorf("len(Tones) = %d, want 1", len(result.Tones))
	}
}

func TestAnalyze_Validation(t *testing.T) {
	if _, err := Analyze(nil, Config{SampleRate: 8000}); !errors.Is(err, ErrEmptySignal) {
		t.Errorf("empty signal error = %v, want ErrEmptySignal", err)
	}

	if _, err := Analyze([]float64{1, 2, 3}, Config{}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("zero sample rate error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{1000, 1024},
		{1024, 1024},
		{1025, 2048},
	}

	for _, tt := range tests {
		if got := nextPowerOf2(tt.n); got != tt.want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
