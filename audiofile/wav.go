package audiofile

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	pcmFormat = 1
	bitDepth  = 16
	maxInt16  = 32767
)

var (
	// ErrInvalidSampleRate is returned when the sample rate is not a
	// positive finite number.
	ErrInvalidSampleRate = errors.New("audiofile: sample rate must be positive")

	// ErrNonFiniteSample is returned when the samples to write contain NaN
	// or infinite values.
	ErrNonFiniteSample = errors.New("audiofile: non-finite sample")

	// ErrInvalidWAV is returned for files that are not decodable WAV.
	ErrInvalidWAV = errors.New("audiofile: not a valid wav file")

	// ErrUnsupportedDepth is returned for PCM bit depths the reader does
	// not normalize.
	ErrUnsupportedDepth = errors.New("audiofile: unsupported bit depth")
)

// Info describes a decoded WAV file.
type Info struct {
	// SampleRate in Hz.
	SampleRate float64
	// Channels in the file. Reads return only the first one.
	Channels int
	// BitDepth of the stored PCM samples.
	BitDepth int
}

// WriteWAV stores samples as a mono 16-bit PCM WAV file. Samples are
// clipped to [-1, 1] and scaled to the full 16-bit range.
func WriteWAV(path string, samples []float64, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return ErrInvalidSampleRate
	}

	for i, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("%w: index %d", ErrNonFiniteSample, i)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audiofile: %w", err)
	}

	enc := wav.NewEncoder(f, int(sampleRate), bitDepth, 1, pcmFormat)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: int(sampleRate)},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitDepth,
	}

	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}

		buf.Data[i] = int(s * maxInt16)
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("audiofile: write wav: %w", err)
	}

	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("audiofile: finalize wav: %w", err)
	}

	return f.Close()
}

// ReadWAV loads a PCM WAV file and normalizes it to float64 in [-1, 1].
// Multichannel files are reduced to their first channel.
func ReadWAV(path string) ([]float64, Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Info{}, fmt.Errorf("audiofile: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, Info{}, ErrInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, Info{}, fmt.Errorf("audiofile: read wav: %w", err)
	}

	info := Info{
		SampleRate: float64(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}

	if info.Channels < 1 {
		return nil, Info{}, ErrInvalidWAV
	}

	var scale float64
	switch info.BitDepth {
	case 16, 24, 32:
		scale = float64(int64(1)<<(info.BitDepth-1) - 1)
	default:
		return nil, Info{}, fmt.Errorf("%w: %d", ErrUnsupportedDepth, info.BitDepth)
	}

	frames := len(buf.Data) / info.Channels
	samples := make([]float64, frames)

	for i := range samples {
		samples[i] = float64(buf.Data[i*info.Channels]) / scale
	}

	return samples, info, nil
}
