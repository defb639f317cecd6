package crt

import "testing"

func TestSinCos14Axes(t *testing.T) {
	cases := []struct {
		angle    int
		sin, cos int
	}{
		{0, 0, 0x8000},
		{T14Full / 4, 0x8000, 0},
		{T14Full / 2, 0, -0x8000},
		{3 * T14Full / 4, -0x8000, 0},
	}
	for _, c := range cases {
		s, co := SinCos14(c.angle)
		if s != c.sin || co != c.cos {
			t.Errorf("SinCos14(%d) = (%d,%d), want (%d,%d)", c.angle, s, co, c.sin, c.cos)
		}
	}
}

func TestSinCos14RoundTrip(t *testing.T) {
	const q = 0x8000
	for n := 0; n < T14Full; n += 7 {
		s, c := SinCos14(n)
		mag := s*s + c*c
		want := q * q
		// allow ~2^-6 relative error from the interpolated table
		tolerance := want >> 6
		if mag < want-tolerance || mag > want+tolerance {
			t.Errorf("SinCos14(%d): s^2+c^2 = %d, want ~%d", n, mag, want)
		}
	}
}

func TestExpxZero(t *testing.T) {
	if got := expx(0); got != expOne {
		t.Errorf("expx(0) = %d, want %d", got, expOne)
	}
}

func TestExpxReciprocal(t *testing.T) {
	n := 3 * expOne / 2
	pos := expx(n)
	neg := expx(-n)
	// expx(-n) should be ~1/expx(n) in expP-bit fixed point
	product := (pos * neg) >> expP
	tolerance := expOne / 50
	if product < expOne-tolerance || product > expOne+tolerance {
		t.Errorf("expx(%d)*expx(%d) = %d (fixed point), want ~%d", n, -n, product, expOne)
	}
}

func TestPosmod(t *testing.T) {
	if got := posmod(-1, 262); got != 261 {
		t.Errorf("posmod(-1, 262) = %d, want 261", got)
	}
	if got := posmod(5, 4); got != 1 {
		t.Errorf("posmod(5, 4) = %d, want 1", got)
	}
}
