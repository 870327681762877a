// Package tones finds dominant spectral components in audio signals. It
// ranks spectral peaks by magnitude with a minimum separation between
// reported tones, and can estimate the tone geometry of an FSK recording
// whose transmission parameters are unknown.
package tones

import (
	"errors"
	"fmt"
	"math"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-fsk/dsp/signal"
	"github.com/cwbudde/algo-fsk/dsp/spectrum"
	"github.com/cwbudde/algo-fsk/dsp/window"
)

const defaultMaxTones = 10

var (
	// ErrInvalidSampleRate is returned when the sample rate is not positive.
	ErrInvalidSampleRate = errors.New("tones: sample rate must be positive")

	// ErrEmptySignal is returned for empty input signals.
	ErrEmptySignal = errors.New("tones: empty signal")

	// ErrNoTonePair is returned by EstimateFSK when the spectrum does not
	// contain two tones of comparable strength.
	ErrNoTonePair = errors.New("tones: no two distinct tones found")
)

// Config holds tone analysis parameters. Zero values select defaults.
type Config struct {
	// SampleRate of the signal in Hz. Required.
	SampleRate float64
	// MaxTones limits how many tones are reported. Default 10.
	MaxTones int
	// MinSeparation is the smallest spacing in Hz between reported tones.
	// Defaults to twice the spectral resolution of the signal, so the
	// mainlobe of one tone is never reported twice.
	MinSeparation float64
	// FFTSize pads the transform to the given length. Defaults to the next
	// power of two above the signal length.
	FFTSize int
	// RangeLowerFreq and RangeUpperFreq restrict the search band in Hz.
	// Defaults are 0 and Nyquist. DC is never reported as a tone.
	RangeLowerFreq float64
	RangeUpperFreq float64
	// WindowType applied before the transform. Default Hann.
	WindowType window.Type
}

// Tone is one dominant spectral component.
type Tone struct {
	// Frequency in Hz, refined by parabolic interpolation.
	Frequency float64
	// Magnitude is the window-corrected amplitude estimate.
	Magnitude float64
	// Bin is the index of the underlying spectral maximum.
	Bin int
}

// Result holds the outcome of a tone analysis.
type Result struct {
	// Tones in descending magnitude order.
	Tones []Tone
	// Magnitudes is the one-sided magnitude spectrum the tones were picked
	// from, fftSize/2+1 bins without amplitude correction.
	Magnitudes []float64
	// BinHz is the bin spacing of the padded transform.
	BinHz float64
	// FFTSize actually used.
	FFTSize int
}

// Analyzer performs tone analysis with a fixed configuration.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer, filling configuration defaults.
func NewAnalyzer(cfg Config) *Analyzer {
	if cfg.MaxTones <= 0 {
		cfg.MaxTones = defaultMaxTones
	}

	if cfg.WindowType == 0 {
		cfg.WindowType = window.TypeHann
	}

	return &Analyzer{cfg: cfg}
}

// Analyze is a one-shot tone analysis of samples.
func Analyze(samples []float64, cfg Config) (Result, error) {
	return NewAnalyzer(cfg).Analyze(samples)
}

// Analyze reports the strongest tones of samples. The DC offset is
// subtracted before windowing.
func (a *Analyzer) Analyze(samples []float64) (Result, error) {
	cfg := a.cfg

	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return Result{}, ErrInvalidSampleRate
	}

	if len(samples) == 0 {
		return Result{}, ErrEmptySignal
	}

	cleaned, err := signal.RemoveDC(samples)
	if err != nil {
		return Result{}, ErrEmptySignal
	}

	fftSize := cfg.FFTSize
	if fftSize < len(cleaned) {
		fftSize = nextPowerOf2(len(cleaned))
	}

	mags, err := magnitudeSpectrum(cleaned, fftSize, cfg.WindowType)
	if err != nil {
		return Result{}, err
	}

	binHz := spectrum.BinWidth(fftSize, cfg.SampleRate)

	minSep := cfg.MinSeparation
	if minSep <= 0 {
		minSep = 2 * cfg.SampleRate / float64(len(cleaned))
	}

	upper := cfg.RangeUpperFreq
	if upper <= 0 {
		upper = cfg.SampleRate / 2
	}

	// Visit bins in descending magnitude order, keeping peaks that clear
	// the range and separation constraints.
	order := make([]int, len(mags))
	for i := range order {
		order[i] = i
	}

	sort.Slice(order, func(i, j int) bool {
		return mags[order[i]] > mags[order[j]]
	})

	correction := 2 / (float64(len(cleaned)) * window.Info(cfg.WindowType).CoherentGain)

	tones := make([]Tone, 0, cfg.MaxTones)

	for _, bin := range order {
		if bin == 0 {
			continue
		}

		freq := spectrum.BinFrequency(bin, fftSize, cfg.SampleRate)
		if freq < cfg.RangeLowerFreq || freq > upper {
			continue
		}

		tooClose := false
		for _, t := range tones {
			if math.Abs(freq-spectrum.BinFrequency(t.Bin, fftSize, cfg.SampleRate)) < minSep {
				tooClose = true
				break
			}
		}

		if tooClose {
			continue
		}

		peak := spectrum.InterpolatePeak(mags, bin, fftSize, cfg.SampleRate)
		tones = append(tones, Tone{
			Frequency: peak.Frequency,
			Magnitude: peak.Magnitude * correction,
			Bin:       bin,
		})

		if len(tones) == cfg.MaxTones {
			break
		}
	}

	return Result{Tones: tones, Magnitudes: mags, BinHz: binHz, FFTSize: fftSize}, nil
}

func magnitudeSpectrum(samples []float64, fftSize int, typ window.Type) ([]float64, error) {
	coeffs := window.Generate(typ, len(samples))

	in := make([]complex128, fftSize)
	for i, s := range samples {
		in[i] = complex(s*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("tones: FFT plan failed: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("tones: forward FFT failed: %w", err)
	}

	return spectrum.Magnitude(out[:fftSize/2+1]), nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
