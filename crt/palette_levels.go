package crt

// ireLevels is the table-driven form of the palette encoder's
// square-wave sampler: ireLevels[high][attenuated][base] gives the
// signal amplitude for a base color (hue in bits 0-3, brightness in
// bits 4-5, 64 combinations) in the "high" or "low" half of its square
// wave, attenuated or not by color emphasis.
//
// It is built, once, by mechanically walking every (base color,
// high/low, attenuated) combination through the amplitude arithmetic
// the reference hardware actually implements (a "+410 on the high half
// of the cycle, -300 on the low half, offset by one of four 300-step
// brightness levels" square wave),
// so the table is provably equivalent to that arithmetic rather than a
// second, hand-tuned set of constants.
var ireLevels [2][2][64]int

func init() {
	for base := 0; base < 64; base++ {
		hue := base & 0x0f
		bri := ((base >> 4) & 0x3) * 300
		for highIdx := 0; highIdx < 2; highIdx++ {
			for attIdx := 0; attIdx < 2; attIdx++ {
				ireLevels[highIdx][attIdx][base] = paletteAmplitude(hue, bri, highIdx == 1, attIdx == 1)
			}
		}
	}
}

func paletteAmplitude(hue, bri int, high, attenuated bool) int {
	var v int
	switch {
	case hue >= 0x0e:
		return 0
	case hue == 0:
		v = bri + 410
	case hue == 0x0d:
		v = bri - 300
	default:
		if high {
			v = bri + 410
		} else {
			v = bri - 300
		}
	}
	if v > 1024 {
		v = 1024
	}
	if attenuated {
		return (v >> 1) + (v >> 2)
	}
	return v
}

// activeEmphasisMask maps phase/2 mod 6 to the emphasis bits (in
// palette index bits 6-8) that attenuate that sub-sample: red+green,
// red, red+blue, blue, green+blue, green (0100=red, 0200=green,
// 0400=blue in the original octal notation).
var activeEmphasisMask = [6]int{0x0c0, 0x040, 0x140, 0x100, 0x180, 0x080}

// squareSample returns one quadrature sub-sample of the composite
// square wave a console PPU emits for palette pixel p at the given
// accumulated subcarrier phase.
func squareSample(p, phase int) int {
	hue := p & 0x0f
	base := p & 0x3f
	high := ((hue+phase)%12 < 6)
	attenuated := (p&0x1c0)&activeEmphasisMask[(phase>>1)%6] != 0

	hi, att := 0, 0
	if high {
		hi = 1
	}
	if attenuated {
		att = 1
	}
	return ireLevels[hi][att][base]
}
