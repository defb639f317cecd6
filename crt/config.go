package crt

// Config carries the knobs that the original C implementation baked in
// as preprocessor definitions (CRT_DO_BLOOM, CRT_DO_VSYNC, CRT_DO_HSYNC,
// CRT_CHROMA_PATTERN, CRT_NES_HIRES). An Engine reads Config once, at
// Init, and derives its timing layout and filter coefficients from it;
// changing it afterwards requires calling Init again.
type Config struct {
	// Chroma is the subcarrier pattern used by the RGB encoder path
	// (the palette path always uses ChromaSawtooth, matching the
	// console-composite reference hardware it models).
	Chroma ChromaPattern

	// Bloom enables scan-line energy-driven beam-width emulation on
	// decode. Off by default, matching the source.
	Bloom bool

	// LockVSync, when false, pins vertical sync at line 0 every
	// frame instead of searching for it (CRT_DO_VSYNC=0 equivalent).
	LockVSync bool
	// LockHSync, when false, pins horizontal sync at sample 0 every
	// line instead of searching for it (CRT_DO_HSYNC=0 equivalent).
	LockHSync bool

	// PaletteHiRes selects the wider-bandwidth palette encoder
	// timing (CB_FREQ=6, vsync threshold 150) used by high-resolution
	// console PPUs, instead of the standard CB_FREQ=3/threshold 100.
	PaletteHiRes bool
}

// DefaultConfig matches the source's compiled-in defaults: checkered
// chroma, no bloom, sync search enabled, standard-resolution palette
// timing.
func DefaultConfig() Config {
	return Config{
		Chroma:    ChromaCheckered,
		LockVSync: true,
		LockHSync: true,
	}
}

func (c Config) vsyncThreshold() int {
	if c.PaletteHiRes {
		return 150
	}
	return 100
}

func (c Config) paletteCBFreq() int {
	if c.PaletteHiRes {
		return 6
	}
	return 3
}
