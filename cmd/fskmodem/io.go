package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cwbudde/algo-fsk/audiofile"
)

// readSamples loads a WAV or CSV recording, chosen by file extension.
// CSV files carry no sample rate and use flagRate. For WAV files the
// header rate wins unless flag or preset pinned a different one, which
// is an error.
func readSamples(path string, flagRate float64, ratePinned bool) ([]float64, float64, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		samples, err := audiofile.ReadCSV(path)
		if err != nil {
			return nil, 0, err
		}

		return samples, flagRate, nil
	}

	samples, info, err := audiofile.ReadWAV(path)
	if err != nil {
		return nil, 0, err
	}

	if info.SampleRate != flagRate {
		if ratePinned {
			return nil, 0, fmt.Errorf("%s is sampled at %g Hz, not the requested %g Hz",
				path, info.SampleRate, flagRate)
		}

		log.Debug("using sample rate from WAV header", "rate", info.SampleRate)
	}

	return samples, info.SampleRate, nil
}

// writeSamples stores samples as WAV or CSV, chosen by file extension.
func writeSamples(path string, samples []float64, rate float64) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return audiofile.WriteCSV(path, samples, rate)
	}

	return audiofile.WriteWAV(path, samples, rate)
}
