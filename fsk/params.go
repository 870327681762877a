package fsk

import "math"

// Params holds the transmission parameters shared by a modulator and
// demodulator pair. Decoding only works when both ends agree on every
// field; the demodulator makes no attempt to discover them from the
// signal (see measure/tones for blind estimation).
type Params struct {
	// CenterFreq is the carrier center frequency in Hz. The two tones sit
	// symmetrically around it.
	CenterFreq float64
	// Deviation is the tone offset from the center in Hz. A 0 bit is sent
	// at CenterFreq-Deviation, a 1 bit at CenterFreq+Deviation.
	Deviation float64
	// BaudRate is the signalling rate in bits per second.
	BaudRate float64
	// SampleRate is the audio sample rate in Hz.
	SampleRate float64
}

// DefaultParams returns the parameter set used by the command line tools:
// a 10 kHz carrier with 500 Hz deviation at 100 baud, sampled at 44.1 kHz.
func DefaultParams() Params {
	return Params{
		CenterFreq: 10000,
		Deviation:  500,
		BaudRate:   100,
		SampleRate: 44100,
	}
}

// SpaceFreq returns the tone frequency of a 0 bit.
func (p Params) SpaceFreq() float64 { return p.CenterFreq - p.Deviation }

// MarkFreq returns the tone frequency of a 1 bit.
func (p Params) MarkFreq() float64 { return p.CenterFreq + p.Deviation }

// BitDuration returns the length of one bit period in seconds.
func (p Params) BitDuration() float64 { return 1 / p.BaudRate }

// SamplesPerBit returns the number of samples occupied by one bit,
// rounding SampleRate/BaudRate to the nearest integer.
func (p Params) SamplesPerBit() int {
	return int(math.Round(p.SampleRate / p.BaudRate))
}

// Validate reports whether the parameters describe a realizable
// transmission. The mark tone must stay strictly below Nyquist and each
// bit must span at least one sample.
func (p Params) Validate() error {
	if !isFinite(p.CenterFreq) || p.CenterFreq <= 0 {
		return ErrInvalidCenterFreq
	}

	if !isFinite(p.Deviation) || p.Deviation <= 0 || p.Deviation >= p.CenterFreq {
		return ErrInvalidDeviation
	}

	if !isFinite(p.BaudRate) || p.BaudRate <= 0 {
		return ErrInvalidBaudRate
	}

	if !isFinite(p.SampleRate) || p.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	if p.MarkFreq() >= p.SampleRate/2 {
		return ErrNyquist
	}

	if p.SamplesPerBit() < 1 {
		return ErrNoSamplesPerBit
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
