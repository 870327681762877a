package fsk

import "testing"

func benchBits(n int) Bits {
	bits := make(Bits, n)
	for i := range bits {
		bits[i] = byte(i % 2)
	}

	return bits
}

func BenchmarkModulate(b *testing.B) {
	params := DefaultParams()

	m, err := NewModulator(params)
	if err != nil {
		b.Fatal(err)
	}

	bits := benchBits(64)

	b.SetBytes(int64(len(bits) * params.SamplesPerBit() * 8))
	b.ReportAllocs()

	for b.Loop() {
		m.Modulate(bits)
	}
}

func BenchmarkDemodulate(b *testing.B) {
	params := DefaultParams()

	m, err := NewModulator(params)
	if err != nil {
		b.Fatal(err)
	}

	samples := m.Modulate(benchBits(32))

	for _, disc := range []Discriminator{DiscriminatorSpectral, DiscriminatorGoertzel} {
		b.Run(disc.String(), func(b *testing.B) {
			d, err := NewDemodulator(params, WithDiscriminator(disc))
			if err != nil {
				b.Fatal(err)
			}

			b.SetBytes(int64(len(samples) * 8))
			b.ReportAllocs()

			for b.Loop() {
				if _, err := d.Demodulate(samples); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
