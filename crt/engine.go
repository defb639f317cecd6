package crt

import (
	"log"

	"github.com/google/uuid"
)

// Engine is one independent instance of the NTSC encode/decode
// pipeline: its own analog signal buffer, its own filter and
// burst-recovery state, its own noise generator. The source kept all
// of this as process-wide C statics; here it is entirely contained in
// the struct so that N engines can run in N goroutines without
// aliasing each other (see the concurrency invariant in SPEC_FULL.md).
type Engine struct {
	id  uuid.UUID
	cfg Config

	timing lineTiming
	filt   filterBank

	analog []int8 // signal written by an encoder, read by Decode
	inp    []int8 // analog + noise, decoder-private

	out  []int32 // caller-bound output raster, 0x00RRGGBB per pixel
	outW int
	outH int

	// Persisted across frames.
	hsync int
	vsync int
	ccref [4]int // recovered color-burst reference, one per phase bucket

	rng int32 // noise PRNG state

	hue          int
	saturation   int
	brightness   int
	contrast     int
	blackPoint   int
	whitePoint   int

	palette bool // true after the most recent encode used the palette path

	lastVSyncGaveUp bool // true if the last Decode's vsync search exhausted its window
}

// VSyncGaveUp reports whether the most recent Decode's vertical-sync
// search window found no candidate line and kept the previous lock.
func (e *Engine) VSyncGaveUp() bool { return e.lastVSyncGaveUp }

// NewEngine builds an Engine bound to outW x outH, with out as its
// output raster (caller-owned, length outW*outH, row-major). cfg is
// copied; mutate the Engine's exported knobs (Hue, Saturation, ...)
// through Reset / the setters below, not by re-deriving cfg.
func NewEngine(cfg Config, outW, outH int, out []int32) *Engine {
	e := &Engine{id: uuid.New()}
	e.Resize(outW, outH, out)
	e.Init(cfg)
	log.Printf("crt: engine %s initialized (%dx%d)", e.id, outW, outH)
	return e
}

// Init (re)installs filter coefficients for cfg and resets all
// persisted decode state. Call it again if Config changes.
func (e *Engine) Init(cfg Config) {
	e.cfg = cfg
	e.filt.initEncode(0)
	e.Reset()
}

// Reset restores the user-tunable picture controls and sync lock to
// their defaults, matching the source's crt_reset.
func (e *Engine) Reset() {
	e.hue = 0
	e.saturation = 18
	e.brightness = 0
	e.contrast = 179
	e.blackPoint = 0
	e.whitePoint = 100
	e.hsync = 0
	e.vsync = 0
	e.ccref = [4]int{}
	e.rng = 194
}

// Resize rebinds the engine to a new output raster without touching
// filter coefficients or sync lock, matching the source's crt_resize.
func (e *Engine) Resize(outW, outH int, out []int32) {
	e.outW = outW
	e.outH = outH
	e.out = out
}

// Hue, Saturation, Brightness, Contrast, BlackPoint and WhitePoint are
// the picture controls a caller tunes between decodes; Reset restores
// their defaults.
func (e *Engine) SetHue(v int)        { e.hue = v }
func (e *Engine) SetSaturation(v int) { e.saturation = v }
func (e *Engine) SetBrightness(v int) { e.brightness = v }
func (e *Engine) SetContrast(v int)   { e.contrast = v }
func (e *Engine) SetBlackPoint(v int) { e.blackPoint = v }
func (e *Engine) SetWhitePoint(v int) { e.whitePoint = v }

// HSync and VSync expose the currently-recovered sync lock, mostly
// useful for tests and diagnostics.
func (e *Engine) HSync() int { return e.hsync }
func (e *Engine) VSync() int { return e.vsync }

// allocate ensures e.analog/e.inp are sized for timing t, reallocating
// (and so zeroing) them if the size actually changed - a mode switch
// between RGB and palette changes HRES and must not leave stale
// samples from the other mode lying around.
func (e *Engine) allocate(t lineTiming) {
	// One extra line of padding absorbs the decoder's burst/resample
	// windows reading a few samples past a line's nominal end when
	// vsync lock sits near the last line of the buffer.
	need := t.hres*VRes + t.hres
	changedSize := len(e.analog) != need
	if changedSize {
		e.analog = make([]int8, need)
		e.inp = make([]int8, need)
	}
	if changedSize || e.timing.hres != t.hres {
		e.filt.initDecode(t.hres)
	}
	e.timing = t
}
