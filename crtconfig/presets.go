package crtconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset bundles the picture controls a named "look" sets, the
// composite-TV equivalent of a monitor's saved picture mode.
type Preset struct {
	Name       string `yaml:"name"`
	Hue        int    `yaml:"hue"`
	Saturation int    `yaml:"saturation"`
	Brightness int    `yaml:"brightness"`
	Contrast   int    `yaml:"contrast"`
	BlackPoint int    `yaml:"black_point"`
	WhitePoint int    `yaml:"white_point"`
	Noise      int    `yaml:"noise"`
}

// PresetFile is the top-level shape of a YAML preset document: a named
// list of Preset entries.
type PresetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets reads and parses a YAML preset file.
func LoadPresets(path string) (*PresetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("crtconfig: reading preset file: %w", err)
	}
	var pf PresetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("crtconfig: parsing preset file: %w", err)
	}
	return &pf, nil
}

// Find returns the named preset, or false if it isn't present.
func (pf *PresetFile) Find(name string) (Preset, bool) {
	for _, p := range pf.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// ApplyTo overlays a preset's controls onto cfg.
func (p Preset) ApplyTo(cfg *Config) {
	cfg.Hue = p.Hue
	cfg.Saturation = p.Saturation
	cfg.Brightness = p.Brightness
	cfg.Contrast = p.Contrast
	cfg.BlackPoint = p.BlackPoint
	cfg.WhitePoint = p.WhitePoint
	cfg.Noise = p.Noise
}

// DefaultPresets is a small built-in set used when no preset file is
// given: "good-signal" (engine defaults), "rusty-antenna" (heavy
// noise, desaturated), and "famicom-composite" (palette-style levels
// tuned for a console's direct composite output).
func DefaultPresets() *PresetFile {
	return &PresetFile{Presets: []Preset{
		{Name: "good-signal", Hue: 0, Saturation: 18, Brightness: 0, Contrast: 179, WhitePoint: 100, Noise: 0},
		{Name: "rusty-antenna", Hue: 0, Saturation: 10, Brightness: -4, Contrast: 150, WhitePoint: 90, Noise: 110},
		{Name: "famicom-composite", Hue: 0, Saturation: 22, Brightness: 0, Contrast: 180, WhitePoint: 100, Noise: 0},
	}}
}
