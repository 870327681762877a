package tones

import "github.com/cwbudde/algo-fsk/dsp/window"

// FSKEstimate describes the tone geometry recovered from an FSK recording.
type FSKEstimate struct {
	// SpaceFreq and MarkFreq are the two detected tones in Hz, low first.
	SpaceFreq float64
	MarkFreq  float64
	// CenterFreq is the midpoint of the two tones.
	CenterFreq float64
	// Deviation is half the tone spacing.
	Deviation float64
}

// The weaker tone of a usable FSK pair must carry at least this fraction
// of the stronger tone's amplitude. A heavily unbalanced bit stream still
// passes; a lone carrier does not.
const minTonePairRatio = 0.05

// EstimateFSK recovers carrier center and deviation from a recording
// without knowing its transmission parameters. The DC offset is removed,
// the signal is Hamming-windowed and transformed whole, and the two
// dominant well-separated tones are taken as mark and space.
//
// The estimate needs both tones present, so the recording must contain at
// least one 0 and one 1 bit.
func EstimateFSK(samples []float64, sampleRate float64) (FSKEstimate, error) {
	result, err := Analyze(samples, Config{
		SampleRate: sampleRate,
		MaxTones:   2,
		WindowType: window.TypeHamming,
	})
	if err != nil {
		return FSKEstimate{}, err
	}

	if len(result.Tones) < 2 {
		return FSKEstimate{}, ErrNoTonePair
	}

	first, second := result.Tones[0], result.Tones[1]
	if second.Magnitude < minTonePairRatio*first.Magnitude {
		return FSKEstimate{}, ErrNoTonePair
	}

	low, high := first.Frequency, second.Frequency
	if low > high {
		low, high = high, low
	}

	return FSKEstimate{
		SpaceFreq:  low,
		MarkFreq:   high,
		CenterFreq: (low + high) / 2,
		Deviation:  (high - low) / 2,
	}, nil
}
