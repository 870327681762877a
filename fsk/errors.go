package fsk

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCenterFreq is returned when the carrier center frequency is
	// not a positive finite number.
	ErrInvalidCenterFreq = errors.New("fsk: center frequency must be positive")

	// ErrInvalidDeviation is returned when the deviation is not positive or
	// would push the space tone to zero or below.
	ErrInvalidDeviation = errors.New("fsk: deviation must be positive and below the center frequency")

	// ErrInvalidBaudRate is returned when the baud rate is not a positive
	// finite number.
	ErrInvalidBaudRate = errors.New("fsk: baud rate must be positive")

	// ErrInvalidSampleRate is returned when the sample rate is not a
	// positive finite number.
	ErrInvalidSampleRate = errors.New("fsk: sample rate must be positive")

	// ErrNyquist is returned when the mark tone reaches or exceeds half the
	// sample rate.
	ErrNyquist = errors.New("fsk: mark frequency reaches the Nyquist frequency")

	// ErrNoSamplesPerBit is returned when the baud rate is so high that a
	// bit rounds to zero samples.
	ErrNoSamplesPerBit = errors.New("fsk: baud rate leaves no samples per bit")

	// ErrInvalidAmplitude is returned for waveform amplitudes that are not
	// positive finite numbers.
	ErrInvalidAmplitude = errors.New("fsk: amplitude must be positive and finite")

	// ErrWindowSize is returned for analysis window lengths that are not a
	// power of two of at least 8.
	ErrWindowSize = errors.New("fsk: window size must be a power of two, at least 8")

	// ErrWindowTooLong is returned when the analysis window does not fit
	// inside a single bit period.
	ErrWindowTooLong = errors.New("fsk: analysis window exceeds the samples per bit")

	// ErrHopSize is returned for analysis hops outside [1, window size].
	ErrHopSize = errors.New("fsk: hop size must be between 1 and the window size")

	// ErrSearchMargin is returned for negative search margins.
	ErrSearchMargin = errors.New("fsk: search margin must not be negative")

	// ErrSearchBand is returned when the peak search band contains no FFT
	// bins at the configured window resolution.
	ErrSearchBand = errors.New("fsk: search band resolves to no FFT bins")

	// ErrFilterOrder is returned for non-positive bandpass filter orders.
	ErrFilterOrder = errors.New("fsk: bandpass order must be positive")

	// ErrInvalidBitChar is returned by ParseBits for characters other than
	// '0' and '1'.
	ErrInvalidBitChar = errors.New("fsk: bit strings may contain only '0' and '1'")

	// ErrNonFiniteSample is returned when the demodulator input contains
	// NaN or infinite samples.
	ErrNonFiniteSample = errors.New("fsk: input contains a non-finite sample")
)

// IncompleteDecodeError reports a demodulation in which some bit periods
// had no analysis frame centered inside them, typically because the
// recording was truncated mid-bit. Decisions holds the bits that could be
// classified, so callers can still render a partial result.
type IncompleteDecodeError struct {
	// BitCount is the number of bit periods covering the input.
	BitCount int
	// Missing lists the bit indices without any contributing frame.
	Missing []int
	// Decisions holds the classified bits in index order.
	Decisions []BitDecision
}

func (e *IncompleteDecodeError) Error() string {
	return fmt.Sprintf("fsk: %d of %d bits have no analysis frames (missing %v)",
		len(e.Missing), e.BitCount, e.Missing)
}
