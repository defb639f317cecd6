// Command crtbench drives one encode/decode pass over a synthetic test
// pattern and reports basic sync-recovery diagnostics. It exists for
// ad-hoc local benchmarking, not as a PPM-producing CLI front end -
// that tool is an external collaborator (see SPEC_FULL.md's Non-goals)
// and is not reproduced here.
package main

import (
	"log"

	"ntsccrt/crt"
	"ntsccrt/crtconfig"
	"ntsccrt/testpattern"
)

func main() {
	cfg := crtconfig.New()

	out := make([]int32, cfg.OutWidth*cfg.OutHeight)
	e := crt.NewEngine(cfg.EngineConfig(), cfg.OutWidth, cfg.OutHeight, out)
	cfg.Apply(e)

	if cfg.Preset != "" {
		presets := crtconfig.DefaultPresets()
		if cfg.PresetFile != "" {
			loaded, err := crtconfig.LoadPresets(cfg.PresetFile)
			if err != nil {
				log.Printf("crtbench: falling back to built-in presets: %v", err)
			} else {
				presets = loaded
			}
		}
		if p, ok := presets.Find(cfg.Preset); ok {
			p.ApplyTo(cfg)
			cfg.Apply(e)
		} else {
			log.Printf("crtbench: no preset named %q, using engine defaults", cfg.Preset)
		}
	}

	src := testpattern.SMPTEBars(320, 240)
	for frame := 0; frame < 4; frame++ {
		e.EncodeRGB(crt.RGBSettings{RGB: src, W: 320, H: 240, Color: true, Field: frame & 1})
		e.Decode(cfg.Noise)
	}

	log.Printf("crtbench: hsync=%d vsync=%d", e.HSync(), e.VSync())
}
