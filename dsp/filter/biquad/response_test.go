package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeSquared_MatchesResponse(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	const sampleRate = 48000.0

	for _, f := range []float64{100, 1000, 5000, 12000, 20000} {
		got := c.MagnitudeSquared(f, sampleRate)
		h := c.Response(f, sampleRate)
		want := real(h)*real(h) + imag(h)*imag(h)
		if math.Abs(got-want) > 1e-10 {
			t.Errorf("f=%v: closed form %v, complex %v", f, got, want)
		}
	}
}

func TestMagnitudeDB_MatchesMagnitudeSquared(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	got := c.MagnitudeDB(1000, 48000)
	want := 10 * math.Log10(c.MagnitudeSquared(1000, 48000))
	if !almostEqual(got, want, eps) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResponse_Passthrough(t *testing.T) {
	c := passthrough()
	for _, f := range []float64{0, 1000, 10000, 23999} {
		h := c.Response(f, 48000)
		if math.Abs(cmplx.Abs(h)-1) > 1e-12 {
			t.Errorf("f=%v: |H|=%v, want 1", f, cmplx.Abs(h))
		}
	}
}

func TestPhase_MatchesResponse(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	got := c.Phase(1000, 48000)
	want := cmplx.Phase(c.Response(1000, 48000))
	if !almostEqual(got, want, eps) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestChain_Response_ProductOfSections(t *testing.T) {
	chain := NewChain(chainCoeffs)
	h := chain.Response(1000, 48000)
	want := chainCoeffs[0].Response(1000, 48000) * chainCoeffs[1].Response(1000, 48000)
	if cmplx.Abs(h-want) > 1e-12 {
		t.Fatalf("got %v, want %v", h, want)
	}
}

func TestChain_Response_WithGain(t *testing.T) {
	chain := NewChain([]Coefficients{passthrough()}, WithGain(2))
	h := chain.Response(1000, 48000)
	if math.Abs(cmplx.Abs(h)-2) > 1e-12 {
		t.Fatalf("|H|=%v, want 2", cmplx.Abs(h))
	}
}

func TestPoles_ComplexPair(t *testing.T) {
	// z^2 - 0.2z + 0.04 has complex roots with |p|^2 = 0.04.
	c := Coefficients{A1: -0.2, A2: 0.04}
	for _, p := range c.Poles() {
		if math.Abs(cmplx.Abs(p)-0.2) > 1e-12 {
			t.Errorf("|pole|=%v, want 0.2", cmplx.Abs(p))
		}
	}
}

func TestZeros_RealPair(t *testing.T) {
	// B0 + B1 z^-1 + B2 z^-2 = 0.25(1 + z^-1)^2: double zero at z = -1.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25}
	for _, z := range c.Zeros() {
		if cmplx.Abs(z-complex(-1, 0)) > 1e-9 {
			t.Errorf("zero=%v, want -1", z)
		}
	}
}

func TestStable(t *testing.T) {
	stable := Coefficients{B0: 1, A1: -0.2, A2: 0.04}
	if !stable.Stable() {
		t.Error("expected stable section")
	}

	// Pole at z=2 is well outside the unit circle.
	unstable := Coefficients{B0: 1, A1: -3, A2: 2}
	if unstable.Stable() {
		t.Error("expected unstable section")
	}

	chain := NewChain([]Coefficients{stable, unstable})
	if chain.Stable() {
		t.Error("chain with an unstable section should report unstable")
	}
}
