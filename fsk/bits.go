package fsk

import "fmt"

// Bits is a sequence of bit values, one byte per bit. ParseBits produces
// only 0 and 1 entries; the modulator treats any nonzero entry as 1.
type Bits []byte

// ParseBits converts a string of '0' and '1' characters into Bits.
func ParseBits(s string) (Bits, error) {
	bits := make(Bits, len(s))

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidBitChar, s[i], i)
		}
	}

	return bits, nil
}

// String renders the bits as a string of '0' and '1' characters, mapping
// nonzero entries to '1'.
func (b Bits) String() string {
	out := make([]byte, len(b))

	for i, bit := range b {
		if bit == 0 {
			out[i] = '0'
		} else {
			out[i] = '1'
		}
	}

	return string(out)
}
