package crt

// Filter bank: one-pole IIR low-passes for encode-side band-limiting,
// and three-band equalizers for decode-side band-shaping. Both are
// pure fixed-point and carry no heap state beyond a few ints - cheap
// to give one set per Engine instance.

// iirLowPass is a single-pole low-pass filter used to band-limit Y, I
// or Q before they're written into the analog signal.
type iirLowPass struct {
	c int // filter coefficient, expP-bit fixed point
	h int // history (previous output)
}

// init derives the filter coefficient from a total bandwidth and a
// cutoff frequency, both in Hz.
func (f *iirLowPass) init(freq, limit int) {
	*f = iirLowPass{}
	rate := (freq << 9) / limit
	f.c = expOne - expx(-((expPi << 9) / rate))
}

func (f *iirLowPass) reset() { f.h = 0 }

func (f *iirLowPass) apply(s int) int {
	f.h += expMul(s-f.h, f.c)
	return f.h
}

const (
	histLen = 3
	histOld = histLen - 1
	histNew = 0
	eqP     = 16
	eqR     = 1 << (eqP - 1)
)

// eqFilter is the three-band ("low / mid-band / high") equalizer used
// on decode to band-shape the recovered Y, I or Q channel. It cascades
// two 4-stage one-pole low-passes (at a low and a high cutoff) and
// derives low/mid/high bands from their difference, each independently
// gained.
type eqFilter struct {
	lf, hf int
	gain   [3]int
	fLo    [4]int
	fHi    [4]int
	hist   [histLen]int
}

// init sets up an equalizer for cutoffs fLo/fHi (in the same units as
// rate, typically "sample-rate-relative cycles") with per-band gains.
func (f *eqFilter) init(fLo, fHi, rate int, gLo, gMid, gHi int) {
	*f = eqFilter{}
	f.gain = [3]int{gLo, gMid, gHi}

	sn, _ := SinCos14(t14Half * fLo / rate)
	f.lf = scaleToEQ(sn)
	sn, _ = SinCos14(t14Half * fHi / rate)
	f.hf = scaleToEQ(sn)
}

func scaleToEQ(sn int) int {
	if shift := eqP - 15; shift >= 0 {
		return 2 * (sn << shift)
	} else {
		return 2 * (sn >> -shift)
	}
}

func (f *eqFilter) reset() {
	f.fLo = [4]int{}
	f.fHi = [4]int{}
	f.hist = [histLen]int{}
}

func (f *eqFilter) apply(s int) int {
	f.fLo[0] += (f.lf*(s-f.fLo[0]) + eqR) >> eqP
	f.fHi[0] += (f.hf*(s-f.fHi[0]) + eqR) >> eqP

	for i := 1; i < 4; i++ {
		f.fLo[i] += (f.lf*(f.fLo[i-1]-f.fLo[i]) + eqR) >> eqP
		f.fHi[i] += (f.hf*(f.fHi[i-1]-f.fHi[i]) + eqR) >> eqP
	}

	var r [3]int
	r[0] = f.fLo[3]
	r[1] = f.fHi[3] - f.fLo[3]
	r[2] = f.hist[histOld] - f.fHi[3]

	for i := range r {
		r[i] = (r[i] * f.gain[i]) >> eqP
	}

	for i := histOld; i > 0; i-- {
		f.hist[i] = f.hist[i-1]
	}
	f.hist[histNew] = s

	return r[0] + r[1] + r[2]
}

// filterBank bundles the three Y/I/Q instances of each filter family
// that one Engine needs, so each Engine owns a complete set.
type filterBank struct {
	iirY, iirI, iirQ iirLowPass
	eqY, eqI, eqQ    eqFilter
}

func (b *filterBank) initEncode(hres int) {
	b.iirY.init(lineFreqHz, yFreqHz)
	b.iirI.init(lineFreqHz, iFreqHz)
	b.iirQ.init(lineFreqHz, qFreqHz)
}

func (b *filterBank) initDecode(hres int) {
	b.eqY.init(kHzToLine(eqYCutoffKHz[0], hres), kHzToLine(eqYCutoffKHz[1], hres), hres, eqYGains[0], eqYGains[1], eqYGains[2])
	b.eqI.init(kHzToLine(eqICutoffKHz[0], hres), kHzToLine(eqICutoffKHz[1], hres), hres, eqIGains[0], eqIGains[1], eqIGains[2])
	b.eqQ.init(kHzToLine(eqQCutoffKHz[0], hres), kHzToLine(eqQCutoffKHz[1], hres), hres, eqQGains[0], eqQGains[1], eqQGains[2])
}

func (b *filterBank) resetIIR() {
	b.iirY.reset()
	b.iirI.reset()
	b.iirQ.reset()
}

func (b *filterBank) resetEQ() {
	b.eqY.reset()
	b.eqI.reset()
	b.eqQ.reset()
}
