package crt

const (
	hsyncWindow = 8
	vsyncWindow = 8
)

// yiqSample is one demodulated Y/I/Q triple at a single analog sample
// position, scratch space for one scan line's worth of resampling.
type yiqSample struct {
	y, i, q int
}

// Decode demodulates the most recently encoded analog signal into
// e.out. noise (>=0) is the amount of synthetic channel noise injected
// before sync recovery and demodulation; 0 reproduces the signal with
// no added noise.
func (e *Engine) Decode(noise int) {
	t := e.timing
	lv := rgbLevels
	if e.palette {
		lv = paletteLevels
	}

	e.injectNoise(noise)

	bright := e.brightness - (lv.black + e.blackPoint)

	huesn, huecs := SinCos14(((e.hue % 360) + 90) * 8192 / 180)
	huesn >>= 11
	huecs >>= 11

	// Vertical sync: integrate candidate lines until the running sum
	// drops under threshold, or give up and keep the previous lock.
	vsyncThresh := e.cfg.vsyncThreshold() * lv.sync
	line := e.vsync
	j := 0
	found := false
	for i := -vsyncWindow; i < vsyncWindow; i++ {
		line = posmod(e.vsync+i, VRes)
		sig := e.inp[line*t.hres:]
		s := 0
		for j = 0; j < t.hres; j++ {
			s += int(sig[j])
			if s <= vsyncThresh {
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !e.cfg.LockVSync {
		e.vsync = 0
	} else if found {
		e.vsync = line
	}
	e.lastVSyncGaveUp = !found
	field := j > t.hres/2
	ratio := (e.outH << 16) / CRTLines
	ratio = (ratio + 32768) >> 16
	fieldRows := 0
	if field {
		fieldRows = ratio / 2
	}

	// Bloom emulation tracks one leaky-integrated "beam energy" value
	// across the whole field: a scan line brighter than average narrows
	// line_w for the lines after it, the way an electron beam actually
	// diverts less deflection current into a brighter beam.
	maxE := (128 + noise/2) * t.avLen
	prevE := 16384 / 8

	scratch := make([]yiqSample, t.avLen+1)

	for ln := CRTTop; ln < CRTBot; ln++ {
		beg := (ln-CRTTop+0)*e.outH/CRTLines + fieldRows
		end := (ln-CRTTop+1)*e.outH/CRTLines + fieldRows
		if beg >= e.outH {
			continue
		}
		if end > e.outH {
			end = e.outH
		}

		base := posmod(ln+e.vsync, VRes) * t.hres
		sig := e.inp[base+e.hsync:]
		s := 0
		i := -hsyncWindow
		for ; i < hsyncWindow; i++ {
			s += int(sig[t.syncBeg+i])
			if s <= 4*lv.sync {
				break
			}
		}
		if e.cfg.LockHSync {
			e.hsync = posmod(i+e.hsync, t.hres)
		} else {
			e.hsync = 0
		}

		burstSig := e.inp[base+(e.hsync & ^3):]
		for i := t.cbBeg; i < t.cbBeg+CBCycles*t.cbFreq; i++ {
			p := e.ccref[i&3] * 127 / 128
			n := int(burstSig[i])
			e.ccref[i&3] = p + n
		}

		// The palette decoder resamples from PPUAV_BEG, not AV_BEG: its
		// active video starts after the 1-PPU-pixel sync pulse and
		// 15-PPU-pixel left border the RGB path has no equivalent of. It also
		// carries a constant nudge against the recovered hsync/vsync,
		// matching the source's xnudge/ynudge.
		avOrigin, xnudge, ynudge := t.avBeg, 0, 0
		if e.palette {
			avOrigin, xnudge, ynudge = t.ppuAvBeg, -3, 3
		}
		xpos := posmod(avOrigin+e.hsync+xnudge, t.hres)
		ypos := posmod(ln+e.vsync+ynudge, VRes)
		pos := xpos + ypos*t.hres
		phasealign := pos & 3

		dci := e.ccref[(phasealign+1)&3] - e.ccref[(phasealign+3)&3]
		dcq := e.ccref[(phasealign+2)&3] - e.ccref[(phasealign+0)&3]

		var wave [4]int
		wave[0] = ((dci*huecs - dcq*huesn) >> 4) * e.saturation
		wave[1] = ((dcq*huecs + dci*huesn) >> 4) * e.saturation
		wave[2] = -wave[0]
		wave[3] = -wave[1]

		lineSig := e.inp[pos:]

		var dx, scanL, scanR, eqL, eqR int
		if e.cfg.Bloom {
			s := 0
			for i := 0; i < t.avLen; i++ {
				s += int(lineSig[i])
			}
			prevE = (prevE*123)/128 + (((maxE>>1)-s)<<10)/maxE
			lineW := (t.avLen*112)/128 + (prevE >> 9)

			dx = (lineW << 12) / e.outW
			scanL = ((t.avLen/2)-(lineW>>1)+8) << 12
			scanR = (t.avLen - 1) << 12
			eqL = scanL >> 12
			eqR = scanR >> 12
		} else {
			dx = ((t.avLen - 1) << 12) / e.outW
			scanL = 0
			scanR = (t.avLen - 1) << 12
			eqL = 0
			eqR = t.avLen
		}

		e.filt.resetEQ()
		for i := eqL; i < eqR; i++ {
			scratch[i].y = e.filt.eqY.apply(int(lineSig[i])+bright) << 4
			scratch[i].i = e.filt.eqI.apply(int(lineSig[i])*wave[(i+0)&3]>>9) >> 3
			scratch[i].q = e.filt.eqQ.apply(int(lineSig[i])*wave[(i+3)&3]>>9) >> 3
		}

		row := e.out[beg*e.outW : (beg+1)*e.outW]
		cL := 0
		for pos := scanL; pos < scanR && cL < e.outW; pos += dx {
			r := pos & 0xfff
			l := 0xfff - r
			s := pos >> 12

			a, b := scratch[s], scratch[s+1]
			y := (a.y*l)>>2 + (b.y*r)>>2
			iC := (a.i*l)>>14 + (b.i*r)>>14
			qC := (a.q*l)>>14 + (b.q*r)>>14

			rr := (((y + 3879*iC + 2556*qC) >> 12) * e.contrast) >> 8
			gg := (((y - 1126*iC - 2605*qC) >> 12) * e.contrast) >> 8
			bb := (((y - 4530*iC + 7021*qC) >> 12) * e.contrast) >> 8
			rr, gg, bb = clamp255(rr), clamp255(gg), clamp255(bb)

			aa := int32(rr<<16 | gg<<8 | bb)
			prev := row[cL]
			row[cL] = ((aa & 0xfefeff) >> 1) + ((prev & 0xfefeff) >> 1)
			cL++
		}

		for s := beg + 1; s < end; s++ {
			copy(e.out[s*e.outW:(s+1)*e.outW], e.out[(s-1)*e.outW:s*e.outW])
		}
	}
}

func clamp255(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// injectNoise copies e.analog into e.inp, adding quantized noise from
// the engine's own PRNG state (so two Engines never share noise).
func (e *Engine) injectNoise(noise int) {
	for i := range e.analog {
		e.rng = 214019*e.rng + 140327895
		delta := ((int(e.rng>>16) & 0xff) - 0x7f) * noise >> 8
		s := int(e.analog[i]) + delta
		if s > 127 {
			s = 127
		}
		if s < -127 {
			s = -127
		}
		e.inp[i] = int8(s)
	}
}
