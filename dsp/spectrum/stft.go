package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-fsk/dsp/window"
)

// Frame is one short-time analysis frame of a longer signal.
type Frame struct {
	// Offset is the index of the first sample covered by the frame.
	Offset int
	// Magnitudes holds the non-negative-frequency bins [0..windowSize/2].
	Magnitudes []float64
}

// Center returns the index of the sample at the middle of the frame.
func (f Frame) Center(windowSize int) int {
	return f.Offset + windowSize/2
}

// STFT decomposes a signal into overlapping windowed magnitude spectra.
//
// The window coefficients and the FFT plan are prepared once at construction;
// Transform reuses the internal frame buffer, so a single STFT value must not
// be shared by concurrent callers.
type STFT struct {
	windowSize int
	hopSize    int
	coeffs     []float64
	plan       *algofft.Plan[complex128]
	frame      []complex128
	bins       []complex128
}

// NewSTFT creates an analyzer with the given window and hop sizes.
//
// windowSize must be a power of two and at least 8. hopSize must be in
// [1, windowSize]. The window is generated in periodic form, as appropriate
// for FFT framing.
func NewSTFT(windowSize, hopSize int, typ window.Type) (*STFT, error) {
	if windowSize < 8 || windowSize&(windowSize-1) != 0 {
		return nil, fmt.Errorf("stft: window size must be a power of two >= 8: %d", windowSize)
	}

	if hopSize < 1 || hopSize > windowSize {
		return nil, fmt.Errorf("stft: hop size must be in [1, %d]: %d", windowSize, hopSize)
	}

	plan, err := algofft.NewPlan64(windowSize)
	if err != nil {
		return nil, fmt.Errorf("stft: failed to create FFT plan: %w", err)
	}

	return &STFT{
		windowSize: windowSize,
		hopSize:    hopSize,
		coeffs:     window.Generate(typ, windowSize, window.WithPeriodic()),
		plan:       plan,
		frame:      make([]complex128, windowSize),
		bins:       make([]complex128, windowSize),
	}, nil
}

// WindowSize returns the analysis window length in samples.
func (s *STFT) WindowSize() int { return s.windowSize }

// HopSize returns the frame advance in samples.
func (s *STFT) HopSize() int { return s.hopSize }

// FrameCount returns the number of full frames available in a signal of
// length n. Signals shorter than one window yield zero frames.
func (s *STFT) FrameCount(n int) int {
	if n < s.windowSize {
		return 0
	}

	return (n-s.windowSize)/s.hopSize + 1
}

// Transform computes the magnitude spectrum of every full analysis frame.
//
// Each returned frame owns its magnitude slice; the input signal is not
// modified.
func (s *STFT) Transform(signal []float64) ([]Frame, error) {
	count := s.FrameCount(len(signal))
	if count == 0 {
		return nil, nil
	}

	binCount := s.windowSize/2 + 1
	frames := make([]Frame, 0, count)

	for idx := range count {
		pos := idx * s.hopSize

		for i := range s.windowSize {
			s.frame[i] = complex(signal[pos+i]*s.coeffs[i], 0)
		}

		if err := s.plan.Forward(s.bins, s.frame); err != nil {
			return nil, fmt.Errorf("stft: forward FFT failed at frame %d: %w", idx, err)
		}

		frames = append(frames, Frame{
			Offset:     pos,
			Magnitudes: Magnitude(s.bins[:binCount]),
		})
	}

	return frames, nil
}
