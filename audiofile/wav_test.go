package audiofile

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fsk/dsp/signal"
)

func TestWAV_RoundTrip(t *testing.T) {
	gen := signal.NewGenerator(8000)

	samples, err := gen.Sine(440, 0.8, 1600)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tone.wav")
	require.NoError(t, WriteWAV(path, samples, 8000))

	got, info, err := ReadWAV(path)
	require.NoError(t, err)

	assert.Equal(t, 8000.0, info.SampleRate)
	assert.Equal(t, 1, info.Channels)
	assert.Equal(t, 16, info.BitDepth)
	require.Len(t, got, len(samples))

	// 16-bit quantization bounds the round trip error.
	for i := range samples {
		assert.InDelta(t, samples[i], got[i], 1.0/32767)
	}
}

func TestWriteWAV_ClipsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, WriteWAV(path, []float64{1.5, -2.0, 0.5}, 8000))

	got, _, err := ReadWAV(path)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, 1.0, got[0])
	assert.Equal(t, -1.0, got[1])
	assert.InDelta(t, 0.5, got[2], 1.0/32767)
}

func TestWriteWAV_Validation(t *testing.T) {
	dir := t.TempDir()

	err := WriteWAV(filepath.Join(dir, "bad.wav"), []float64{0}, 0)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)

	err = WriteWAV(filepath.Join(dir, "bad.wav"), []float64{math.NaN()}, 8000)
	assert.ErrorIs(t, err, ErrNonFiniteSample)
}

func TestReadWAV_FirstChannelOfStereo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")

	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, 8000, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 8000},
		Data:           []int{100, -100, 200, -200, 300, -300},
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	got, info, err := ReadWAV(path)
	require.NoError(t, err)

	assert.Equal(t, 2, info.Channels)
	require.Len(t, got, 3)

	for i, want := range []float64{100, 200, 300} {
		assert.InDelta(t, want/32767, got[i], 1e-12)
	}
}

func TestReadWAV_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not audio"), 0o644))

	_, _, err := ReadWAV(path)
	assert.ErrorIs(t, err, ErrInvalidWAV)
}

func TestReadWAV_MissingFile(t *testing.T) {
	_, _, err := ReadWAV(filepath.Join(t.TempDir(), "absent.wav"))
	assert.Error(t, err)
}
