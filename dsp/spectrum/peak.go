package spectrum

import (
	"fmt"
	"math"
)

// Peak is one spectral peak with a sub-bin frequency estimate.
type Peak struct {
	// Bin is the index of the maximal magnitude bin.
	Bin int
	// Frequency is the parabolic-refined peak frequency in Hz.
	Frequency float64
	// Magnitude is the refined peak magnitude.
	Magnitude float64
}

// InterpolatePeak refines the frequency of a local magnitude maximum at bin
// using parabolic interpolation over the bin and its two neighbours.
//
// The fractional offset is clamped to half a bin; bins at either edge of the
// slice, and degenerate flat tops, are returned unrefined. mags holds the
// non-negative-frequency bins [0..Nyquist] of an FFT of size fftSize.
func InterpolatePeak(mags []float64, bin, fftSize int, sampleRate float64) Peak {
	p := Peak{Bin: bin}
	if bin < 0 || bin >= len(mags) {
		return p
	}

	p.Frequency = BinFrequency(bin, fftSize, sampleRate)
	p.Magnitude = mags[bin]

	if bin < 1 || bin > len(mags)-2 {
		return p
	}

	left := mags[bin-1]
	mid := mags[bin]
	right := mags[bin+1]

	denom := left - 2*mid + right
	if math.Abs(denom) < 1e-30 {
		return p
	}

	delta := 0.5 * (left - right) / denom
	if delta > 0.5 {
		delta = 0.5
	} else if delta < -0.5 {
		delta = -0.5
	}

	p.Frequency = (float64(bin) + delta) * BinWidth(fftSize, sampleRate)
	p.Magnitude = mid - 0.25*(left-right)*delta

	return p
}

// PeakInBand finds the dominant spectral peak restricted to [lowHz, highHz].
//
// mags holds the non-negative-frequency bins [0..Nyquist] of an FFT of size
// fftSize. The band is clamped to the available bins; a band that resolves to
// zero bins is an error.
func PeakInBand(mags []float64, fftSize int, sampleRate, lowHz, highHz float64) (Peak, error) {
	if len(mags) == 0 {
		return Peak{}, fmt.Errorf("spectrum: peak search on empty magnitude slice")
	}

	if fftSize <= 0 || sampleRate <= 0 {
		return Peak{}, fmt.Errorf("spectrum: peak search needs fftSize and sampleRate > 0: %d, %v", fftSize, sampleRate)
	}

	binHz := BinWidth(fftSize, sampleRate)

	lo := int(math.Ceil(lowHz / binHz))
	hi := int(math.Floor(highHz / binHz))

	if lo < 0 {
		lo = 0
	}

	if hi > len(mags)-1 {
		hi = len(mags) - 1
	}

	if lo > hi {
		return Peak{}, fmt.Errorf("spectrum: band [%v, %v] Hz resolves to no bins at %v Hz resolution", lowHz, highHz, binHz)
	}

	best := lo
	for k := lo + 1; k <= hi; k++ {
		if mags[k] > mags[best] {
			best = k
		}
	}

	return InterpolatePeak(mags, best, fftSize, sampleRate), nil
}
