package fsk

import "math"

const twoPi = 2 * math.Pi

// Modulator synthesizes phase-continuous FSK waveforms. The carrier phase
// persists across Modulate calls, so streaming a message in chunks yields
// the same samples as modulating it at once.
//
// A Modulator is not safe for concurrent use.
type Modulator struct {
	params    Params
	amplitude float64
	spb       int
	phase     float64 // running carrier phase in radians
}

// ModulatorOption configures a Modulator.
type ModulatorOption func(*Modulator)

// WithAmplitude sets the peak amplitude of the generated waveform. The
// amplitude must be a positive finite number; the default is 1.
func WithAmplitude(amplitude float64) ModulatorOption {
	return func(m *Modulator) { m.amplitude = amplitude }
}

// NewModulator returns a Modulator for the given parameters.
func NewModulator(params Params, opts ...ModulatorOption) (*Modulator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	m := &Modulator{
		params:    params,
		amplitude: 1,
		spb:       params.SamplesPerBit(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if !isFinite(m.amplitude) || m.amplitude <= 0 {
		return nil, ErrInvalidAmplitude
	}

	return m, nil
}

// Params returns the transmission parameters.
func (m *Modulator) Params() Params { return m.params }

// SamplesPerBit returns the number of samples emitted per bit.
func (m *Modulator) SamplesPerBit() int { return m.spb }

// Reset returns the carrier phase to zero, as if no samples had been
// generated yet.
func (m *Modulator) Reset() { m.phase = 0 }

// Modulate generates the waveform for bits, one tone burst of exactly
// SamplesPerBit samples per bit. A zero entry selects the space tone, any
// nonzero entry the mark tone. The first sample of a fresh Modulator
// starts at phase zero.
func (m *Modulator) Modulate(bits Bits) []float64 {
	out := make([]float64, len(bits)*m.spb)

	spaceStep := twoPi * m.params.SpaceFreq() / m.params.SampleRate
	markStep := twoPi * m.params.MarkFreq() / m.params.SampleRate

	pos := 0
	for _, bit := range bits {
		step := spaceStep
		if bit != 0 {
			step = markStep
		}

		for range m.spb {
			out[pos] = m.amplitude * math.Sin(m.phase)
			m.phase += step
			pos++
		}

		// Keep the accumulator bounded without breaking continuity.
		m.phase = math.Mod(m.phase, twoPi)
	}

	return out
}

// Modulate generates the waveform for bits using a fresh zero-phase
// modulator with the given parameters.
func Modulate(params Params, bits Bits) ([]float64, error) {
	m, err := NewModulator(params)
	if err != nil {
		return nil, err
	}

	return m.Modulate(bits), nil
}
