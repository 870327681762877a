// Package spectrum provides spectrum-domain analysis utilities.
//
// It covers magnitude/power extraction from complex FFT bins, short-time
// Fourier analysis of long signals, band-limited peak search with parabolic
// sub-bin refinement, and Goertzel single-bin evaluation for tone detection.
// FFT plans come from the algo-fft backend; this package owns everything
// after the transform.
package spectrum
