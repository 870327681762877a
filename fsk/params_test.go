package fsk

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	if got := p.SpaceFreq(); got != 9500 {
		t.Errorf("SpaceFreq() = %v, want 9500", got)
	}

	if got := p.MarkFreq(); got != 10500 {
		t.Errorf("MarkFreq() = %v, want 10500", got)
	}

	if got := p.SamplesPerBit(); got != 441 {
		t.Errorf("SamplesPerBit() = %v, want 441", got)
	}

	if got := p.BitDuration(); math.Abs(got-0.01) > 1e-15 {
		t.Errorf("BitDuration() = %v, want 0.01", got)
	}
}

func TestParams_SamplesPerBit_RoundsToNearest(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		baudRate   float64
		want       int
	}{
		{"exact", 44100, 100, 441},
		{"round up", 8000, 300, 27},
		{"round up fractional", 48000, 45, 1067},
		{"half rounds away from zero", 1000, 400, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{CenterFreq: 1000, Deviation: 100, BaudRate: tt.baudRate, SampleRate: tt.sampleRate}
			if got := p.SamplesPerBit(); got != tt.want {
				t.Errorf("SamplesPerBit() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParams_Validate(t *testing.T) {
	valid := DefaultParams()

	tests := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"valid", func(*Params) {}, nil},
		{"zero center", func(p *Params) { p.CenterFreq = 0 }, ErrInvalidCenterFreq},
		{"negative center", func(p *Params) { p.CenterFreq = -100 }, ErrInvalidCenterFreq},
		{"NaN center", func(p *Params) { p.CenterFreq = math.NaN() }, ErrInvalidCenterFreq},
		{"zero deviation", func(p *Params) { p.Deviation = 0 }, ErrInvalidDeviation},
		{"deviation at center", func(p *Params) { p.Deviation = p.CenterFreq }, ErrInvalidDeviation},
		{"deviation above center", func(p *Params) { p.Deviation = p.CenterFreq + 1 }, ErrInvalidDeviation},
		{"zero baud rate", func(p *Params) { p.BaudRate = 0 }, ErrInvalidBaudRate},
		{"infinite baud rate", func(p *Params) { p.BaudRate = math.Inf(1) }, ErrInvalidBaudRate},
		{"zero sample rate", func(p *Params) { p.SampleRate = 0 }, ErrInvalidSampleRate},
		{"mark above Nyquist", func(p *Params) { p.CenterFreq = 22000 }, ErrNyquist},
		{"mark at Nyquist", func(p *Params) { p.CenterFreq = 21550 }, ErrNyquist},
		{"bit shorter than one sample", func(p *Params) { p.BaudRate = 100000 }, ErrNoSamplesPerBit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)

			err := p.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParams_ToneFrequencies(t *testing.T) {
	p := Params{CenterFreq: 5030, Deviation: 430, BaudRate: 75, SampleRate: 44100}

	if got := p.SpaceFreq(); got != 4600 {
		t.Errorf("SpaceFreq() = %v, want 4600", got)
	}

	if got := p.MarkFreq(); got != 5460 {
		t.Errorf("MarkFreq() = %v, want 5460", got)
	}

	if got := p.SamplesPerBit(); got != 588 {
		t.Errorf("SamplesPerBit() = %v, want 588", got)
	}
}
