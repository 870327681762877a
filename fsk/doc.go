// Package fsk implements binary frequency-shift keying over audio-rate
// signals.
//
// A bit stream is transmitted as a sequence of fixed-length tone bursts:
// a 0 bit as the space tone below the carrier center, a 1 bit as the mark
// tone above it. The Modulator synthesizes the waveform with a running
// phase accumulator, so the signal stays phase-continuous across bit
// boundaries and across multiple Modulate calls.
//
// The Demodulator recovers the bit stream from a recording whose
// transmission parameters are known. It slides overlapping analysis
// windows over the signal, extracts the dominant frequency of each window
// restricted to the band around the two tones, groups the measurements by
// bit period anchored at sample zero, and classifies each bit by comparing
// the per-bit median frequency against the carrier center. A cheaper
// Goertzel discriminator that compares mark and space tone power per bit
// is available as an alternative.
package fsk
