package crt

// PaletteSettings describes one field handed to the palette (PPU-style)
// encoder. Data holds 9-bit palette indices: bits 0-3 hue (0x0 black,
// 0x1..0xC colored, 0xD black, 0xE/0xF forced black), bits 4-5
// brightness, bits 6-8 R/G/B emphasis.
type PaletteSettings struct {
	Data           []int32
	W, H           int
	Raw            bool
	Color          bool
	DotCrawlOffset int
	CC             [4]int
	CCScale        int
	// BorderData is the palette index painted into the left/right
	// border columns that surround active video; zero (black) unless
	// the caller wants a colored border/pulse region.
	BorderData int
}

// EncodePalette lays out one full field of composite signal from a
// palette-indexed raster, synthesizing chroma as a four-sample-per-
// subcarrier square wave per pixel rather than modulating a continuous
// I/Q pair, the way a console's composite-output PPU does it.
func (e *Engine) EncodePalette(s PaletteSettings) {
	cbFreq := e.cfg.paletteCBFreq()
	t := newPaletteLineTiming(ChromaSawtooth.ccLineTenths(), cbFreq)
	e.allocate(t)
	e.palette = true

	cc, ccs := s.CC, s.CCScale
	if ccs == 0 {
		cc, ccs = defaultCC()
	}

	destw := t.avLen
	desth := CRTLines
	if s.Raw {
		destw, desth = s.W, s.H
		if destw > t.avLen {
			destw = t.avLen
		}
		if desth > CRTLines {
			desth = CRTLines
		}
	}

	// Unlike the RGB path, the palette encoder never centers its
	// output inside the active-video window: the PPU always drives a
	// fixed 256-pixel-wide picture starting right after the 1-pixel
	// sync pulse and 15-pixel left border.
	xo := t.ppuAvBeg
	yo := CRTTop
	xo &= ^3

	var lo, po int
	switch s.DotCrawlOffset % 3 {
	case 0:
		lo, po = 0, 0
	case 1:
		lo, po = 3, 1
	case 2:
		lo, po = 2, 2
	}

	borderPhase := (1 + po) * 3
	for n := 0; n < VRes; n++ {
		borderPhase = writePaletteLineTiming(e.analog[n*t.hres:(n+1)*t.hres], n, t, s.Color, cc, ccs, po, borderPhase, e.blackPoint, e.whitePoint, s.BorderData)
	}

	phase := 3
	for y := lo - 3; y < desth; y++ {
		sy := (y * s.H) / desth
		// The source clamps sy to [0, s.h]; reading row s.h is one past
		// the last valid row (harmless in C, a panic in Go) and the
		// negative y start (lo-3) can drive sy negative, which the
		// source also clamps to 0.
		if sy >= s.H {
			sy = s.H - 1
		}
		if sy < 0 {
			sy = 0
		}
		sy *= s.W
		phase += xo * 3

		for x := 0; x < destw; x++ {
			p := int(s.Data[(x*s.W)/destw+sy])

			ire := paletteLevels.black + e.blackPoint
			ire += squareSample(p, phase+0)
			ire += squareSample(p, phase+1)
			ire += squareSample(p, phase+2)
			ire += squareSample(p, phase+3)
			ire = (ire * (paletteLevels.white * e.whitePoint / 100)) >> 12
			if ire < 0 {
				ire = 0
			}
			if ire > 110 {
				ire = 110
			}

			e.analog[(x+xo)+(y+yo)*t.hres] = int8(ire)
			phase += 3
		}
		phase = (phase + (t.hres-destw)*3) % 12
	}
}

// writePaletteLineTiming writes one scan line's horizontal timing for
// the palette encoder. Unlike the RGB encoder's equalizing/serration
// pulses, a console PPU emits a single sync separator pulse for its
// few post-render lines and otherwise the ordinary FP/SYNC/breezeway/
// burst/back-porch sequence, followed - for every active-picture line
// - by a border region synthesized from the same four-sample square
// wave the active-pixel loop uses, so the picture is surrounded by a
// border/pulse color rather than a flat blank level. phase threads the
// square-wave phase across calls, matching the source's single running
// phase variable; the returned value is the phase to pass in for line
// n+1.
func writePaletteLineTiming(line []int8, n int, t lineTiming, color bool, cc [4]int, ccScale, po, phase, blackPoint, whitePoint, borderData int) int {
	hres := t.hres
	pos := 0
	set := func(upto int, v int8) {
		for pos < upto {
			line[pos] = v
			pos++
		}
	}

	if n >= 259 {
		set(t.syncBeg, int8(paletteLevels.blank))
		set(ppuPos(327, hres), int8(paletteLevels.sync))
		set(hres, int8(paletteLevels.blank))
		return phase
	}

	set(t.syncBeg, int8(paletteLevels.blank))
	set(t.bwBeg, int8(paletteLevels.sync))
	set(t.cbBeg, int8(paletteLevels.blank))

	if color {
		for pos < t.cbBeg+CBCycles*t.cbFreq {
			cb := cc[(pos+po)&3]
			line[pos] = int8(paletteLevels.blank + cb*paletteLevels.burst/ccScale)
			pos++
		}
	} else {
		pos = t.cbBeg + CBCycles*t.cbFreq
	}
	set(t.avBeg, int8(paletteLevels.blank))

	phase += pos * 3
	if n >= CRTTop {
		for pos < hres {
			p := borderData
			if pos == t.avBeg {
				p = 0xf0
			}
			ire := paletteLevels.black + blackPoint
			ire += squareSample(p, phase+0)
			ire += squareSample(p, phase+1)
			ire += squareSample(p, phase+2)
			ire += squareSample(p, phase+3)
			ire = (ire * (paletteLevels.white * whitePoint / 100)) >> 12
			if ire < 0 {
				ire = 0
			}
			if ire > 110 {
				ire = 110
			}
			line[pos] = int8(ire)
			phase += 3
			pos++
		}
	} else {
		set(hres, int8(paletteLevels.blank))
		phase += (hres - t.avBeg) * 3
	}
	return phase % 12
}
