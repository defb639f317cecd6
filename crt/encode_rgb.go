package crt

// RGBSettings describes one frame/field handed to the general RGB
// encoder. RGB is caller-owned, row-major, 0x00RRGGBB per pixel, W*H
// long.
type RGBSettings struct {
	RGB    []int32
	W, H   int
	Raw    bool // if true, don't rescale destw/desth to the default envelope
	Color  bool // write color burst and modulate chroma
	Field  int  // 0 or 1, selects even/odd field timing and row interleave
	CC     [4]int
	CCScale int
}

func defaultCC() ([4]int, int) { return [4]int{0, 1, 0, -1}, 1 }

// writeLineTiming writes one scan line's horizontal sync/blank/burst
// pattern into analog, following the three line shapes NTSC uses in
// the vertical-blanking interval (equalizing pulses, vertical sync
// serration, and ordinary blanked lines) plus, for active-video lines,
// optional color burst.
func writeLineTiming(line []int8, n int, t lineTiming, lv levelSet, field int, color bool, cc [4]int, ccScale int, ccAtPO int) {
	hres := t.hres
	pos := 0
	set := func(upto int, v int8) {
		for pos < upto {
			line[pos] = v
			pos++
		}
	}
	switch {
	case n <= 3 || (n >= 7 && n <= 9):
		set(4*hres/100, int8(lv.sync))
		set(50*hres/100, int8(lv.blank))
		set(54*hres/100, int8(lv.sync))
		set(100*hres/100, int8(lv.blank))
	case n >= 4 && n <= 6:
		even := [4]int{46, 50, 96, 100}
		odd := [4]int{4, 50, 96, 100}
		offs := even
		if field == 1 {
			offs = odd
		}
		set(offs[0]*hres/100, int8(lv.sync))
		set(offs[1]*hres/100, int8(lv.blank))
		set(offs[2]*hres/100, int8(lv.sync))
		set(offs[3]*hres/100, int8(lv.blank))
	default:
		set(t.syncBeg, int8(lv.blank))
		set(t.bwBeg, int8(lv.sync))
		set(t.avBeg, int8(lv.blank))
		if n < CRTTop {
			set(hres, int8(lv.blank))
		}
		if color && n >= CRTTop {
			for tt := t.cbBeg; tt < t.cbBeg+CBCycles*t.cbFreq; tt++ {
				cb := cc[(tt+ccAtPO)&3]
				line[tt] = int8(lv.blank + cb*lv.burst/ccScale)
			}
		}
	}
}

// EncodeRGB lays out one full field of composite signal from an RGB
// raster, sampling two source rows per output line (field-interleaved)
// and quadrature-modulating band-limited I/Q onto the chroma reference.
func (e *Engine) EncodeRGB(s RGBSettings) {
	t := newLineTiming(e.cfg.Chroma.ccLineTenths(), 4)
	e.allocate(t)
	e.palette = false

	cc, ccs := s.CC, s.CCScale
	if ccs == 0 {
		cc, ccs = defaultCC()
	}

	destw := t.avLen
	desth := (CRTLines * 64500) >> 16
	if s.Raw {
		destw, desth = s.W, s.H
		if destw > t.avLen {
			destw = t.avLen
		}
		if desth > ((CRTLines*64500)>>16) {
			desth = (CRTLines * 64500) >> 16
		}
	}

	xo := t.avBeg + 4 + (t.avLen-destw)/2
	yo := CRTTop + 4 + (CRTLines-desth)/2
	xo &= ^3
	// Clip the rectangle to the active-video envelope.
	if xo+destw > t.avBeg+t.avLen {
		destw = t.avBeg + t.avLen - xo
	}
	if yo+desth > CRTBot {
		desth = CRTBot - yo
	}

	field := s.Field & 1

	for n := 0; n < VRes; n++ {
		writeLineTiming(e.analog[n*t.hres:(n+1)*t.hres], n, t, rgbLevels, field, s.Color, cc, ccs, 0)
	}

	for y := 0; y < desth; y++ {
		fieldOffset := (field*s.H + desth) / desth / 2
		syA := (y*s.H)/desth + fieldOffset
		syB := (y*s.H+desth/2)/desth + fieldOffset
		// The source clamps these to exactly s.H, one row past the last
		// valid one; in C that reads adjacent memory, but a Go slice
		// bounds-checks, so clamp to the last row instead.
		if syA >= s.H {
			syA = s.H - 1
		}
		if syB >= s.H {
			syB = s.H - 1
		}
		syA *= s.W
		syB *= s.W

		e.filt.resetIIR()

		for x := 0; x < destw; x++ {
			sx := (x * s.W) / destw
			pA := s.RGB[sx+syA]
			pB := s.RGB[sx+syB]
			rA, gA, bA := int(pA>>16&0xff), int(pA>>8&0xff), int(pA&0xff)
			rB, gB, bB := int(pB>>16&0xff), int(pB>>8&0xff), int(pB&0xff)

			fy := (19595*rA + 38470*gA + 7471*bA + 19595*rB + 38470*gB + 7471*bB) >> 15
			fi := (39059*rA - 18022*gA - 21103*bA + 39059*rB - 18022*gB - 21103*bB) >> 15
			fq := (13894*rA - 34275*gA + 20382*bA + 13894*rB - 34275*gB + 20382*bB) >> 15

			ph := e.cfg.Chroma.ccPhase(y + yo)
			ire := rgbLevels.black + e.blackPoint

			fy = e.filt.iirY.apply(fy)
			fi = e.filt.iirI.apply(fi) * ph * cc[(x+0)&3] / ccs
			fq = e.filt.iirQ.apply(fq) * ph * cc[(x+3)&3] / ccs

			ire += (fy + fi + fq) * (rgbLevels.white * e.whitePoint / 100) >> 10
			if ire < 0 {
				ire = 0
			}
			if ire > 110 {
				ire = 110
			}

			e.analog[(x+xo)+(y+yo)*t.hres] = int8(ire)
		}
	}
}

// EncodeRGBFullscreen is the single-row-sampled variant of EncodeRGB:
// no field interleave, used when the caller wants every output line
// backed by exactly one source row (e.g. a still test pattern).
func (e *Engine) EncodeRGBFullscreen(s RGBSettings) {
	t := newLineTiming(e.cfg.Chroma.ccLineTenths(), 4)
	e.allocate(t)
	e.palette = false

	cc, ccs := s.CC, s.CCScale
	if ccs == 0 {
		cc, ccs = defaultCC()
	}

	destw := t.avLen
	if s.Raw {
		destw = s.W
		if destw > t.avLen {
			destw = t.avLen
		}
	}
	desth := CRTLines
	if s.Raw && s.H < desth {
		desth = s.H
	}

	xo := t.avBeg
	yo := CRTTop

	for n := 0; n < VRes; n++ {
		writeLineTiming(e.analog[n*t.hres:(n+1)*t.hres], n, t, rgbLevels, 0, s.Color, cc, ccs, 0)
	}

	for y := 0; y < desth; y++ {
		sy := (y * s.H) / desth
		if sy >= s.H {
			sy = s.H - 1
		}
		sy *= s.W

		e.filt.resetIIR()

		for x := 0; x < destw; x++ {
			sx := (x * s.W) / destw
			p := s.RGB[sx+sy]
			r, g, b := int(p>>16&0xff), int(p>>8&0xff), int(p&0xff)

			fy := (19595*r + 38470*g + 7471*b) >> 14
			fi := (39059*r - 18022*g - 21103*b) >> 14
			fq := (13894*r - 34275*g + 20382*b) >> 14

			ph := e.cfg.Chroma.ccPhase(y + yo)
			ire := rgbLevels.black + e.blackPoint

			fy = e.filt.iirY.apply(fy)
			fi = e.filt.iirI.apply(fi) * ph * cc[(x+0)&3] / ccs
			fq = e.filt.iirQ.apply(fq) * ph * cc[(x+3)&3] / ccs

			ire += (fy + fi + fq) * (rgbLevels.white * e.whitePoint / 100) >> 10
			if ire < 0 {
				ire = 0
			}
			if ire > 110 {
				ire = 110
			}

			e.analog[(x+xo)+(y+yo)*t.hres] = int8(ire)
		}
	}
}
