// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters such as the Butterworth
// bandpass used to pre-filter noisy FSK recordings.
//
// This package provides the processing runtime only. Coefficient design
// (Butterworth cascades, RBJ biquads) lives in dsp/filter/design.
package biquad
