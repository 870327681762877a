package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fsk/dsp/window"
	"github.com/cwbudde/algo-fsk/internal/testutil"
)

func TestNewSTFTValidation(t *testing.T) {
	cases := []struct {
		name       string
		windowSize int
		hopSize    int
	}{
		{"not power of two", 100, 10},
		{"too small", 4, 1},
		{"zero hop", 256, 0},
		{"hop exceeds window", 256, 257},
		{"negative window", -8, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSTFT(tc.windowSize, tc.hopSize, window.TypeHann); err == nil {
				t.Fatalf("expected error for window=%d hop=%d", tc.windowSize, tc.hopSize)
			}
		})
	}

	s, err := NewSTFT(256, 64, window.TypeHann)
	if err != nil {
		t.Fatalf("NewSTFT: %v", err)
	}

	if s.WindowSize() != 256 || s.HopSize() != 64 {
		t.Fatalf("accessors: %d %d", s.WindowSize(), s.HopSize())
	}
}

func TestFrameCount(t *testing.T) {
	s, err := NewSTFT(256, 64, window.TypeHann)
	if err != nil {
		t.Fatalf("NewSTFT: %v", err)
	}

	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{255, 0},
		{256, 1},
		{319, 1},
		{320, 2},
		{1000, 12},
	}

	for _, tc := range cases {
		if got := s.FrameCount(tc.n); got != tc.want {
			t.Fatalf("FrameCount(%d)=%d want=%d", tc.n, got, tc.want)
		}
	}
}

func TestTransformShortSignal(t *testing.T) {
	s, err := NewSTFT(256, 64, window.TypeHann)
	if err != nil {
		t.Fatalf("NewSTFT: %v", err)
	}

	frames, err := s.Transform(make([]float64, 100))
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	if frames != nil {
		t.Fatalf("expected no frames for short signal, got %d", len(frames))
	}
}

func TestTransformTracksTone(t *testing.T) {
	sampleRate := 8000.0
	freq := 997.0
	sig := testutil.DeterministicSine(freq, sampleRate, 1.0, 1024)

	s, err := NewSTFT(256, 64, window.TypeHann)
	if err != nil {
		t.Fatalf("NewSTFT: %v", err)
	}

	frames, err := s.Transform(sig)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	wantFrames := (1024-256)/64 + 1
	if len(frames) != wantFrames {
		t.Fatalf("frames=%d want=%d", len(frames), wantFrames)
	}

	for i, f := range frames {
		if f.Offset != i*64 {
			t.Fatalf("frame %d offset=%d want=%d", i, f.Offset, i*64)
		}

		if f.Center(256) != f.Offset+128 {
			t.Fatalf("frame %d center=%d", i, f.Center(256))
		}

		if len(f.Magnitudes) != 129 {
			t.Fatalf("frame %d bins=%d want=129", i, len(f.Magnitudes))
		}

		p, err := PeakInBand(f.Magnitudes, 256, sampleRate, 800, 1200)
		if err != nil {
			t.Fatalf("frame %d peak: %v", i, err)
		}

		if math.Abs(p.Frequency-freq) > 5 {
			t.Fatalf("frame %d freq=%v want=%v", i, p.Frequency, freq)
		}
	}
}

func TestTransformDoesNotModifyInput(t *testing.T) {
	sig := testutil.DeterministicSine(440, 8000, 0.5, 512)
	orig := append([]float64(nil), sig...)

	s, err := NewSTFT(128, 32, window.TypeHamming)
	if err != nil {
		t.Fatalf("NewSTFT: %v", err)
	}

	if _, err := s.Transform(sig); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	for i := range sig {
		if sig[i] != orig[i] {
			t.Fatalf("input modified at %d", i)
		}
	}
}

func TestTransformFramesOwnMagnitudes(t *testing.T) {
	sig := testutil.DeterministicSine(500, 8000, 1.0, 320)

	s, err := NewSTFT(256, 64, window.TypeHann)
	if err != nil {
		t.Fatalf("NewSTFT: %v", err)
	}

	frames, err := s.Transform(sig)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	if len(frames) != 2 {
		t.Fatalf("frames=%d want=2", len(frames))
	}

	frames[0].Magnitudes[0] = -1
	if frames[1].Magnitudes[0] == -1 {
		t.Fatal("frames share magnitude storage")
	}
}
