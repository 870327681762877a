// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing. RBJ-style single-biquad
// designers (Lowpass, Highpass, Bandpass) cover simple shaping tasks.
// The Butterworth designers build higher-order cascades from second-order
// sections, including [ButterworthBandpass] which isolates a frequency
// band by chaining a highpass and a lowpass cascade.
package design
