package crt

import "testing"

func uniformFrame(w, h int, rgb int32) []int32 {
	buf := make([]int32, w*h)
	for i := range buf {
		buf[i] = rgb
	}
	return buf
}

func newTestEngine(outW, outH int) *Engine {
	out := make([]int32, outW*outH)
	return NewEngine(DefaultConfig(), outW, outH, out)
}

func TestTimingLayoutSyncAndBlank(t *testing.T) {
	e := newTestEngine(64, 64)
	src := uniformFrame(16, 16, 0x00404040)
	e.EncodeRGB(RGBSettings{RGB: src, W: 16, H: 16, Color: false, Field: 0})

	t0 := e.timing
	for n := 11; n < CRTBot; n++ {
		if n >= 4 && n <= 9 {
			continue // vsync/equalizing pulse lines have their own shape
		}
		line := e.analog[n*t0.hres : (n+1)*t0.hres]
		for i := 0; i < t0.syncBeg; i++ {
			if line[i] != int8(rgbLevels.blank) {
				t.Fatalf("line %d sample %d = %d, want blank (%d)", n, i, line[i], rgbLevels.blank)
			}
		}
		for i := t0.syncBeg; i < t0.bwBeg; i++ {
			if line[i] != int8(rgbLevels.sync) {
				t.Fatalf("line %d sample %d = %d, want sync (%d)", n, i, line[i], rgbLevels.sync)
			}
		}
	}
}

func TestColorBurstPresence(t *testing.T) {
	e := newTestEngine(64, 64)
	src := uniformFrame(16, 16, 0x00404040)
	cc, ccs := defaultCC()

	e.EncodeRGB(RGBSettings{RGB: src, W: 16, H: 16, Color: true, Field: 0, CC: cc, CCScale: ccs})
	t0 := e.timing
	line := e.analog[30*t0.hres : 31*t0.hres]
	for tt := t0.cbBeg; tt < t0.cbBeg+CBCycles*t0.cbFreq; tt++ {
		want := int8(rgbLevels.blank + cc[tt&3]*rgbLevels.burst/ccs)
		if line[tt] != want {
			t.Errorf("burst sample %d = %d, want %d", tt, line[tt], want)
		}
	}

	e2 := newTestEngine(64, 64)
	e2.EncodeRGB(RGBSettings{RGB: src, W: 16, H: 16, Color: false, Field: 0})
	t1 := e2.timing
	line2 := e2.analog[30*t1.hres : 31*t1.hres]
	for tt := t1.cbBeg; tt < t1.cbBeg+CBCycles*t1.cbFreq; tt++ {
		if line2[tt] != int8(rgbLevels.blank) {
			t.Errorf("monochrome burst region sample %d = %d, want blank", tt, line2[tt])
		}
	}
}

func TestClampInvariants(t *testing.T) {
	e := newTestEngine(48, 48)
	src := make([]int32, 16*16)
	for i := range src {
		if i%2 == 0 {
			src[i] = 0x00FFFFFF
		} else {
			src[i] = 0x00000000
		}
	}
	e.EncodeRGB(RGBSettings{RGB: src, W: 16, H: 16, Color: true, Field: 0})
	e.Decode(80)

	for _, v := range e.inp {
		if v < -127 || v > 127 {
			t.Fatalf("inp sample %d out of range [-127,127]", v)
		}
	}
	for _, px := range e.out {
		r := (px >> 16) & 0xff
		g := (px >> 8) & 0xff
		b := px & 0xff
		if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
			t.Fatalf("out pixel %06x has a channel outside [0,255]", px)
		}
	}
}

func TestDeterminism(t *testing.T) {
	src := uniformFrame(16, 16, 0x00A0B0C0)

	run := func() []int32 {
		e := newTestEngine(48, 48)
		e.EncodeRGB(RGBSettings{RGB: src, W: 16, H: 16, Color: true, Field: 0})
		e.Decode(40)
		out := make([]int32, len(e.out))
		copy(out, e.out)
		return out
	}

	a := run()
	b := run()
	if len(a) != len(b) {
		t.Fatalf("length mismatch")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pixel %d differs: %06x vs %06x", i, a[i], b[i])
		}
	}
}

func TestMonochromeRoundTrip(t *testing.T) {
	const gray = 0x00808080
	src := uniformFrame(16, 16, gray)

	e := newTestEngine(64, 64)
	for frame := 0; frame < 4; frame++ {
		e.EncodeRGB(RGBSettings{RGB: src, W: 16, H: 16, Color: false, Field: 0})
		e.Decode(0)
	}

	g := 0x80
	for y := 8; y < 56; y++ {
		for x := 8; x < 56; x++ {
			px := e.out[y*e.outW+x]
			r := int((px >> 16) & 0xff)
			gg := int((px >> 8) & 0xff)
			b := int(px & 0xff)
			if abs(r-g) > 6 || abs(gg-g) > 6 || abs(b-g) > 6 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want near (%d,%d,%d)", x, y, r, gg, b, g, g, g)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestHSyncRecoversShiftedPulse(t *testing.T) {
	e := newTestEngine(32, 32)
	src := uniformFrame(16, 16, 0x00606060)
	e.EncodeRGB(RGBSettings{RGB: src, W: 16, H: 16, Color: true, Field: 0})

	const shift = 3
	t0 := e.timing
	shifted := make([]int8, len(e.analog))
	for n := 0; n < VRes; n++ {
		row := e.analog[n*t0.hres : (n+1)*t0.hres]
		dst := shifted[n*t0.hres : (n+1)*t0.hres]
		for i := range row {
			src := (i - shift + t0.hres) % t0.hres
			dst[i] = row[src]
		}
	}
	e.analog = shifted
	e.hsync = 0
	e.Decode(0)

	if d := abs(e.hsync - shift); d > 1 {
		t.Errorf("hsync = %d, want within 1 of %d", e.hsync, shift)
	}
}

func TestPaletteEncodeProducesChroma(t *testing.T) {
	e := newTestEngine(64, 64)
	data := make([]int32, 16*16)
	for i := range data {
		data[i] = int32(0x06 | (0x3 << 4)) // hue 0x06 (blue region), brightness 3
	}
	e.EncodePalette(PaletteSettings{Data: data, W: 16, H: 16, Color: true, DotCrawlOffset: 0})
	e.Decode(0)

	found := false
	for _, v := range e.ccref {
		if v != 0 {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected non-zero recovered color-burst reference after palette encode")
	}
}

func TestNoisyMonochromeStillLocks(t *testing.T) {
	e := newTestEngine(32, 32)
	src := uniformFrame(16, 16, 0x00707070)
	for frame := 0; frame < 4; frame++ {
		e.EncodeRGB(RGBSettings{RGB: src, W: 16, H: 16, Color: false, Field: 0})
		e.Decode(255)
		if e.hsync < -e.timing.hres || e.hsync > e.timing.hres {
			t.Fatalf("hsync escaped bounded range: %d", e.hsync)
		}
	}
}

func TestEngineResetRestoresDefaults(t *testing.T) {
	e := newTestEngine(16, 16)
	e.SetHue(90)
	e.SetSaturation(5)
	e.hsync = 42
	e.Reset()
	if e.hue != 0 || e.saturation != 18 || e.hsync != 0 {
		t.Errorf("Reset did not restore defaults: hue=%d saturation=%d hsync=%d", e.hue, e.saturation, e.hsync)
	}
}
