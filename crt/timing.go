package crt

// ChromaPattern selects how many subcarrier cycles fit in one scan line,
// which in turn decides whether a line's chroma phase inverts relative
// to the one above it (see ccLineTenths and ccPhase below).
type ChromaPattern int

const (
	// ChromaVertical gives 228 chroma clocks/line: the "rainbow"
	// waterfall pattern, no per-line phase inversion.
	ChromaVertical ChromaPattern = iota
	// ChromaCheckered gives 227.5 chroma clocks/line: alternating
	// lines invert chroma phase. This is the default, matching
	// real broadcast NTSC.
	ChromaCheckered
	// ChromaSawtooth gives 227.3 chroma clocks/line.
	ChromaSawtooth
)

// ccLineTenths is CC_CLOCKS_PER_LINE * 10, so that the /10 truncation in
// HRES derivation matches the source's integer math exactly.
func (p ChromaPattern) ccLineTenths() int {
	switch p {
	case ChromaVertical:
		return 2280
	case ChromaSawtooth:
		return 2273
	default:
		return 2275
	}
}

// ccPhase returns the per-line chroma phase inversion: always +1 unless
// the pattern is checkered, in which case odd lines invert.
func (p ChromaPattern) ccPhase(line int) int {
	if p == ChromaCheckered && line&1 != 0 {
		return -1
	}
	return 1
}

// Line-segment durations, in nanoseconds, of one NTSC scan line.
const (
	frontPorchNs = 1500
	syncTipNs    = 4700
	breezewayNs  = 600
	colorBurstNs = 2500
	backPorchNs  = 1600
	activeNs     = 52600
	hblankNs     = frontPorchNs + syncTipNs + breezewayNs + colorBurstNs + backPorchNs
	lineNs       = hblankNs + activeNs
)

const (
	// CRTTop is the first scan line carrying active video.
	CRTTop = 21
	// CRTBot is one past the final line carrying active video.
	CRTBot = 261
	// CRTLines is the number of active-video lines.
	CRTLines = CRTBot - CRTTop
	// VRes is the number of lines in one full field/frame buffer.
	VRes = 262
	// CBCycles is the number of color-burst cycles written per line.
	CBCycles = 10
)

// lineTiming holds the sample offsets of every named interval on a
// scan line, derived from HRES. The RGB path derives them from the
// nanosecond durations above via ns2pos; the palette path instead
// derives them from a PPU-pixel count via ppuPos, since the console
// PPU that the palette encoder models lays out its line in PPU dot
// counts, not in real time.
type lineTiming struct {
	hres    int
	cbFreq  int
	syncBeg int
	bwBeg   int
	cbBeg   int
	bpBeg   int
	avBeg   int
	avLen   int
	// ppuAvBeg is the palette path's true active-video origin: AV_BEG
	// plus the 1 PPU-pixel sync "pulse" and 15 PPU-pixel left border
	// that the RGB path has no equivalent of. Zero/unused on RGB
	// timing.
	ppuAvBeg int
}

func ns2pos(ns, hres int) int {
	return ns * hres / lineNs
}

func newLineTiming(ccLineTenths, cbFreq int) lineTiming {
	hres := ccLineTenths * cbFreq / 10
	return lineTiming{
		hres:    hres,
		cbFreq:  cbFreq,
		syncBeg: ns2pos(frontPorchNs, hres),
		bwBeg:   ns2pos(frontPorchNs+syncTipNs, hres),
		cbBeg:   ns2pos(frontPorchNs+syncTipNs+breezewayNs, hres),
		bpBeg:   ns2pos(frontPorchNs+syncTipNs+breezewayNs+colorBurstNs, hres),
		avBeg:   ns2pos(hblankNs, hres),
		avLen:   ns2pos(activeNs, hres),
	}
}

// Line-segment durations, in PPU pixels, of one palette-encoded scan
// line: front porch, sync tip, breezeway, color burst, back porch,
// a one-pixel sync "pulse", a 15-pixel left border, 256 pixels of
// active video and an 11-pixel right border.
const (
	fpPPUpx   = 9
	syncPPUpx = 25
	bwPPUpx   = 4
	cbPPUpx   = 15
	bpPPUpx   = 5
	psPPUpx   = 1
	lbPPUpx   = 15
	avPPUpx   = 256
	rbPPUpx   = 11
	hbPPUpx   = fpPPUpx + syncPPUpx + bwPPUpx + cbPPUpx + bpPPUpx
	linePPUpx = hbPPUpx + psPPUpx + lbPPUpx + avPPUpx + rbPPUpx
)

// ppuPos converts a PPU-pixel offset into a sample position at the
// given HRES, matching the source's PPUpx2pos macro.
func ppuPos(px, hres int) int {
	return px * hres / linePPUpx
}

// newPaletteLineTiming builds the palette encoder's line timing from
// PPU-pixel counts rather than nanosecond durations: the two pipelines
// share the same outer HRES derivation but disagree on every internal
// segment boundary (e.g. CB_BEG = 38/341 PPU pixels, not 6800/63500 ns),
// and the palette active-video origin sits 16 PPU pixels (the 1-pixel
// sync pulse plus 15-pixel left border) after AV_BEG.
func newPaletteLineTiming(ccLineTenths, cbFreq int) lineTiming {
	hres := ccLineTenths * cbFreq / 10
	return lineTiming{
		hres:     hres,
		cbFreq:   cbFreq,
		syncBeg:  ppuPos(fpPPUpx, hres),
		bwBeg:    ppuPos(fpPPUpx+syncPPUpx, hres),
		cbBeg:    ppuPos(fpPPUpx+syncPPUpx+bwPPUpx, hres),
		bpBeg:    ppuPos(fpPPUpx+syncPPUpx+bwPPUpx+cbPPUpx, hres),
		avBeg:    ppuPos(hbPPUpx, hres),
		avLen:    ppuPos(avPPUpx, hres),
		ppuAvBeg: ppuPos(hbPPUpx+psPPUpx+lbPPUpx, hres),
	}
}

// Frequencies used for band-limiting Y/I/Q on encode, expressed as a
// fraction of the 14.31818 MHz line-locked clock.
const (
	lineFreqHz = 1431818
	yFreqHz    = 420000
	iFreqHz    = 150000
	qFreqHz    = 55000
)

// kHzToLine converts a frequency in kHz to a sample-rate-relative cycle
// count at the given horizontal resolution, matching the source's
// kHz2L macro.
func kHzToLine(kHz, hres int) int {
	return hres * (kHz * 100) / lineFreqHz
}
