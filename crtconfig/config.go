// Package crtconfig builds an Engine configuration from command-line
// flags and, optionally, a named YAML preset, the way a monitor's
// saved picture presets work.
package crtconfig

import (
	"flag"

	"ntsccrt/crt"
)

// Config holds every command-line-tunable knob for a crtbench-style
// front end: which Engine.Config to build, and which picture controls
// to apply on top of Engine.Reset's defaults.
type Config struct {
	OutWidth   int
	OutHeight  int
	Noise      int
	Preset     string
	PresetFile string

	Hue        int
	Saturation int
	Brightness int
	Contrast   int
	BlackPoint int
	WhitePoint int

	Bloom        bool
	PaletteHiRes bool
}

// New populates Config from command-line flags, matching
// hacktvlive/config.Config.New's flag.*Var + flag.Parse shape.
func New() *Config {
	cfg := &Config{}
	flag.IntVar(&cfg.OutWidth, "w", 640, "Output raster width")
	flag.IntVar(&cfg.OutHeight, "h", 480, "Output raster height")
	flag.IntVar(&cfg.Noise, "noise", 0, "Decoder channel noise amount (0-255)")
	flag.StringVar(&cfg.Preset, "preset", "", "Named picture preset to apply (looked up in -preset-file, or the built-in set)")
	flag.StringVar(&cfg.PresetFile, "preset-file", "", "YAML file of picture presets (optional; built-in presets are used if empty)")
	flag.IntVar(&cfg.Hue, "hue", 0, "Hue adjustment in degrees")
	flag.IntVar(&cfg.Saturation, "saturation", 18, "Chroma saturation")
	flag.IntVar(&cfg.Brightness, "brightness", 0, "Brightness offset")
	flag.IntVar(&cfg.Contrast, "contrast", 179, "Contrast scale")
	flag.IntVar(&cfg.BlackPoint, "black-point", 0, "Black level offset")
	flag.IntVar(&cfg.WhitePoint, "white-point", 100, "White level percentage")
	flag.BoolVar(&cfg.Bloom, "bloom", false, "Enable bloom emulation")
	flag.BoolVar(&cfg.PaletteHiRes, "palette-hires", false, "Use high-resolution palette encoder timing")
	flag.Parse()
	return cfg
}

// EngineConfig builds the crt.Config this Config describes.
func (c *Config) EngineConfig() crt.Config {
	cfg := crt.DefaultConfig()
	cfg.Bloom = c.Bloom
	cfg.PaletteHiRes = c.PaletteHiRes
	return cfg
}

// Apply pushes the picture controls onto an already-built Engine.
func (c *Config) Apply(e *crt.Engine) {
	e.SetHue(c.Hue)
	e.SetSaturation(c.Saturation)
	e.SetBrightness(c.Brightness)
	e.SetContrast(c.Contrast)
	e.SetBlackPoint(c.BlackPoint)
	e.SetWhitePoint(c.WhitePoint)
}
