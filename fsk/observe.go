package fsk

// FrequencyFrame describes the dominant frequency extracted from one
// analysis window during spectral demodulation.
type FrequencyFrame struct {
	// Offset is the index of the first sample covered by the window.
	Offset int
	// Center is the index of the sample at the middle of the window. Bit
	// assignment uses this sample.
	Center int
	// Frequency is the interpolated dominant frequency in Hz.
	Frequency float64
	// Magnitude is the interpolated peak magnitude.
	Magnitude float64
}

// BitDecision describes how a single bit was classified.
type BitDecision struct {
	// Index is the bit position within the decoded sequence.
	Index int
	// Frequency is the value the decision was based on: the median frame
	// frequency for the spectral discriminator, or the winning tone for
	// the Goertzel discriminator.
	Frequency float64
	// Frames counts the contributing analysis windows, or the samples in
	// the bit period for the Goertzel discriminator.
	Frames int
	// Bit is the decoded value, 0 or 1.
	Bit byte
}

// Observer receives progress callbacks during demodulation. Callbacks run
// synchronously inside Demodulate, so implementations should return
// quickly.
type Observer interface {
	// Frame is invoked once per analysis window. The Goertzel
	// discriminator produces no frames.
	Frame(FrequencyFrame)
	// Decision is invoked once per classified bit, in index order.
	Decision(BitDecision)
}

type nopObserver struct{}

func (nopObserver) Frame(FrequencyFrame) {}
func (nopObserver) Decision(BitDecision) {}
