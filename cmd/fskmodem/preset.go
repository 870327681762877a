package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// preset mirrors the modulation parameter flags. Pointer fields
// distinguish absent keys from explicit zeros.
type preset struct {
	Frequency  *float64 `yaml:"frequency"`
	Deviation  *float64 `yaml:"deviation"`
	BaudRate   *float64 `yaml:"baud-rate"`
	SampleRate *float64 `yaml:"sample-rate"`
}

func loadPreset(path string) (preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return preset{}, fmt.Errorf("read params file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p preset
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return preset{}, fmt.Errorf("parse params file %s: %w", path, err)
	}

	return p, nil
}
