// Package audiofile reads and writes the audio file formats used by the
// command line tools: 16-bit PCM WAV for recordings and CSV for sample
// dumps that plotting tools can consume.
//
// Samples are float64 in [-1, 1] throughout the module. Writing scales to
// the signed 16-bit range after clipping; reading normalizes back and
// keeps only the first channel of multichannel files.
package audiofile
