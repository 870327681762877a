package fsk

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fsk/dsp/filter/biquad"
	"github.com/cwbudde/algo-fsk/dsp/filter/design"
	"github.com/cwbudde/algo-fsk/dsp/spectrum"
	"github.com/cwbudde/algo-fsk/dsp/window"
)

// Discriminator selects the frequency detection strategy of a Demodulator.
type Discriminator int

const (
	// DiscriminatorSpectral extracts the dominant frequency of overlapping
	// Hann-windowed FFT frames and takes the per-bit median. This is the
	// default.
	DiscriminatorSpectral Discriminator = iota
	// DiscriminatorGoertzel compares mark and space tone power over each
	// bit period using Goertzel filters. Cheaper than the spectral path
	// and usable at baud rates too high for an FFT window, but blind
	// outside the two nominal tones.
	DiscriminatorGoertzel
)

func (d Discriminator) String() string {
	switch d {
	case DiscriminatorSpectral:
		return "spectral"
	case DiscriminatorGoertzel:
		return "goertzel"
	default:
		return fmt.Sprintf("discriminator(%d)", int(d))
	}
}

// Demodulator recovers a bit stream from an FSK waveform with known
// transmission parameters. Bit boundaries are assumed to lie on multiples
// of SamplesPerBit starting at sample zero.
//
// A Demodulator may be reused for successive recordings but is not safe
// for concurrent use.
type Demodulator struct {
	params   Params
	spb      int
	disc     Discriminator
	observer Observer

	// Spectral discriminator state.
	stft   *spectrum.STFT
	lowHz  float64
	highHz float64

	// Bandpass prefilter coefficients, nil when disabled.
	prefilter []biquad.Coefficients
}

type demodConfig struct {
	windowSize  int
	hopSize     int
	margin      float64
	marginSet   bool
	filterOrder int
	disc        Discriminator
	observer    Observer
}

// DemodOption configures a Demodulator.
type DemodOption func(*demodConfig)

// WithWindowSize sets the analysis window length of the spectral
// discriminator. It must be a power of two, at least 8, and no longer
// than the samples per bit. By default the largest such power of two is
// chosen. The Goertzel discriminator ignores the window size.
func WithWindowSize(n int) DemodOption {
	return func(c *demodConfig) { c.windowSize = n }
}

// WithHopSize sets the frame advance of the spectral discriminator. It
// must be between 1 and the window size. The default is a quarter of the
// window size; larger hops trade frames per bit for speed. The Goertzel
// discriminator ignores the hop size.
func WithHopSize(n int) DemodOption {
	return func(c *demodConfig) { c.hopSize = n }
}

// WithSearchMargin widens the peak search band beyond the two tones by
// the given number of Hz on each side. The default is the larger of half
// the deviation and two FFT bin widths. The margin also sets the corner
// frequencies of the bandpass prefilter.
func WithSearchMargin(hz float64) DemodOption {
	return func(c *demodConfig) { c.margin, c.marginSet = hz, true }
}

// WithBandpass enables a Butterworth bandpass prefilter around the tone
// band, applied to a copy of the input before analysis. order is the
// filter order of each band edge; zero leaves the prefilter disabled.
func WithBandpass(order int) DemodOption {
	return func(c *demodConfig) { c.filterOrder = order }
}

// WithDiscriminator selects the frequency detection strategy.
func WithDiscriminator(d Discriminator) DemodOption {
	return func(c *demodConfig) { c.disc = d }
}

// WithObserver registers an Observer for per-frame and per-bit callbacks.
func WithObserver(o Observer) DemodOption {
	return func(c *demodConfig) { c.observer = o }
}

// NewDemodulator returns a Demodulator for the given parameters.
func NewDemodulator(params Params, opts ...DemodOption) (*Demodulator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	cfg := demodConfig{disc: DiscriminatorSpectral}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.marginSet && (!isFinite(cfg.margin) || cfg.margin < 0) {
		return nil, ErrSearchMargin
	}

	d := &Demodulator{
		params:   params,
		spb:      params.SamplesPerBit(),
		disc:     cfg.disc,
		observer: cfg.observer,
	}
	if d.observer == nil {
		d.observer = nopObserver{}
	}

	margin := cfg.margin

	switch cfg.disc {
	case DiscriminatorGoertzel:
		if !cfg.marginSet {
			margin = params.Deviation / 2
		}

	default:
		win := cfg.windowSize
		if win == 0 {
			if d.spb < 8 {
				return nil, ErrWindowTooLong
			}
			win = autoWindowSize(d.spb)
		} else {
			if win < 8 || win&(win-1) != 0 {
				return nil, ErrWindowSize
			}
			if win > d.spb {
				return nil, ErrWindowTooLong
			}
		}

		hop := cfg.hopSize
		if hop == 0 {
			hop = win / 4
			if hop < 1 {
				hop = 1
			}
		} else if hop < 0 || hop > win {
			return nil, ErrHopSize
		}

		stft, err := spectrum.NewSTFT(win, hop, window.TypeHann)
		if err != nil {
			return nil, fmt.Errorf("fsk: analyzer setup failed: %w", err)
		}
		d.stft = stft

		binHz := spectrum.BinWidth(win, params.SampleRate)
		if !cfg.marginSet {
			margin = math.Max(params.Deviation/2, 2*binHz)
		}

		d.lowHz = math.Max(params.SpaceFreq()-margin, 0)
		d.highHz = math.Min(params.MarkFreq()+margin, params.SampleRate/2)

		lo := int(math.Ceil(d.lowHz / binHz))
		hi := int(math.Floor(d.highHz / binHz))
		if hi > win/2 {
			hi = win / 2
		}
		if lo > hi {
			return nil, ErrSearchBand
		}
	}

	if cfg.filterOrder != 0 {
		if cfg.filterOrder < 0 {
			return nil, ErrFilterOrder
		}
		d.prefilter = d.bandpassCoefficients(margin, cfg.filterOrder)
	}

	return d, nil
}

// bandpassCoefficients designs the prefilter around the tone band. The
// corner frequencies follow the search margin but stay strictly inside
// (0, Nyquist) so the design remains realizable for any valid Params.
func (d *Demodulator) bandpassCoefficients(margin float64, order int) []biquad.Coefficients {
	space, mark := d.params.SpaceFreq(), d.params.MarkFreq()
	nyquist := d.params.SampleRate / 2

	low := math.Max(space-margin, space/2)
	high := math.Min(mark+margin, (mark+nyquist)/2)

	return design.ButterworthBandpass(low, high, order, d.params.SampleRate)
}

// autoWindowSize returns the largest power of two not exceeding spb.
// spb must be at least 8.
func autoWindowSize(spb int) int {
	win := 8
	for win*2 <= spb {
		win *= 2
	}

	return win
}

// Params returns the transmission parameters.
func (d *Demodulator) Params() Params { return d.params }

// SamplesPerBit returns the number of samples in one bit period.
func (d *Demodulator) SamplesPerBit() int { return d.spb }

// Discriminator returns the active frequency detection strategy.
func (d *Demodulator) Discriminator() Discriminator { return d.disc }

// WindowSize returns the analysis window length of the spectral
// discriminator, or 0 for the Goertzel discriminator.
func (d *Demodulator) WindowSize() int {
	if d.stft == nil {
		return 0
	}

	return d.stft.WindowSize()
}

// HopSize returns the analysis hop of the spectral discriminator, or 0
// for the Goertzel discriminator.
func (d *Demodulator) HopSize() int {
	if d.stft == nil {
		return 0
	}

	return d.stft.HopSize()
}

// SearchBand returns the frequency band searched for spectral peaks. Both
// values are 0 for the Goertzel discriminator.
func (d *Demodulator) SearchBand() (lowHz, highHz float64) {
	return d.lowHz, d.highHz
}

// Demodulate decodes the bit stream carried by samples. The input is
// never modified.
//
// An empty input decodes to an empty bit sequence. When some bit periods
// have no analysis frame, typically because the recording was truncated
// mid-bit, Demodulate returns a nil bit sequence and an
// *IncompleteDecodeError carrying the partial result.
func (d *Demodulator) Demodulate(samples []float64) (Bits, error) {
	for i, s := range samples {
		if !isFinite(s) {
			return nil, fmt.Errorf("%w: index %d", ErrNonFiniteSample, i)
		}
	}

	if len(samples) == 0 {
		return Bits{}, nil
	}

	if len(d.prefilter) > 0 {
		filtered := make([]float64, len(samples))
		copy(filtered, samples)
		biquad.NewChain(d.prefilter).ProcessBlock(filtered)
		samples = filtered
	}

	if d.disc == DiscriminatorGoertzel {
		return d.demodulateGoertzel(samples)
	}

	return d.demodulateSpectral(samples)
}

func (d *Demodulator) demodulateSpectral(samples []float64) (Bits, error) {
	count := bitCount(len(samples), d.spb)

	frames, err := d.stft.Transform(samples)
	if err != nil {
		return nil, fmt.Errorf("fsk: spectral analysis failed: %w", err)
	}

	grouped := make([][]float64, count)
	for _, frame := range frames {
		peak, err := spectrum.PeakInBand(frame.Magnitudes, d.stft.WindowSize(),
			d.params.SampleRate, d.lowHz, d.highHz)
		if err != nil {
			return nil, fmt.Errorf("fsk: peak search failed: %w", err)
		}

		ff := FrequencyFrame{
			Offset:    frame.Offset,
			Center:    frame.Center(d.stft.WindowSize()),
			Frequency: peak.Frequency,
			Magnitude: peak.Magnitude,
		}
		d.observer.Frame(ff)

		if idx := ff.Center / d.spb; idx < count {
			grouped[idx] = append(grouped[idx], ff.Frequency)
		}
	}

	bits := make(Bits, 0, count)
	decisions := make([]BitDecision, 0, count)

	var missing []int

	for i, freqs := range grouped {
		if len(freqs) == 0 {
			missing = append(missing, i)
			continue
		}

		dec := BitDecision{
			Index:     i,
			Frequency: median(freqs),
			Frames:    len(freqs),
		}
		dec.Bit = classify(dec.Frequency, d.params.CenterFreq)

		d.observer.Decision(dec)
		decisions = append(decisions, dec)
		bits = append(bits, dec.Bit)
	}

	if len(missing) > 0 {
		return nil, &IncompleteDecodeError{
			BitCount:  count,
			Missing:   missing,
			Decisions: decisions,
		}
	}

	return bits, nil
}

func (d *Demodulator) demodulateGoertzel(samples []float64) (Bits, error) {
	count := bitCount(len(samples), d.spb)

	mg, err := spectrum.NewMultiGoertzel(
		[]float64{d.params.SpaceFreq(), d.params.MarkFreq()}, d.params.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("fsk: tone detector setup failed: %w", err)
	}

	bits := make(Bits, 0, count)
	decisions := make([]BitDecision, 0, count)

	var missing []int

	for i := range count {
		start := i * d.spb
		end := min(start+d.spb, len(samples))

		// A truncated window shorter than half a bit period is reported
		// missing rather than classified from a fragment.
		if 2*(end-start) < d.spb {
			missing = append(missing, i)
			continue
		}

		mg.Reset()
		mg.ProcessBlock(samples[start:end])
		powers := mg.Powers()

		dec := BitDecision{
			Index:     i,
			Frequency: d.params.SpaceFreq(),
			Frames:    end - start,
		}
		if powers[1] > powers[0] {
			dec.Bit = 1
			dec.Frequency = d.params.MarkFreq()
		}

		d.observer.Decision(dec)
		decisions = append(decisions, dec)
		bits = append(bits, dec.Bit)
	}

	if len(missing) > 0 {
		return nil, &IncompleteDecodeError{
			BitCount:  count,
			Missing:   missing,
			Decisions: decisions,
		}
	}

	return bits, nil
}

// Demodulate decodes samples using a freshly configured Demodulator with
// the given parameters.
func Demodulate(params Params, samples []float64, opts ...DemodOption) (Bits, error) {
	d, err := NewDemodulator(params, opts...)
	if err != nil {
		return nil, err
	}

	return d.Demodulate(samples)
}
