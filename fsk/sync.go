package fsk

import "sort"

// bitCount returns the number of bit periods covering n samples. A final
// partial period still counts as a bit.
func bitCount(n, samplesPerBit int) int {
	return (n + samplesPerBit - 1) / samplesPerBit
}

// median returns the median of xs, averaging the two middle values for
// even lengths. xs is reordered in place; it must not be empty.
func median(xs []float64) float64 {
	sort.Float64s(xs)

	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}

	return (xs[n/2-1] + xs[n/2]) / 2
}

// classify maps a dominant frequency to a bit value. Frequencies above the
// carrier center decode as 1; the center itself and everything below
// decode as 0.
func classify(freq, centerFreq float64) byte {
	if freq > centerFreq {
		return 1
	}

	return 0
}
