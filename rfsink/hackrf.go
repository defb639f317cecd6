// Package rfsink adapts an encoded composite-video line buffer to a
// HackRF transmit stream, the way hacktvlive/sdr did for its float64
// signal generator - only here the source samples are the crt
// package's signed-8-bit IRE buffer instead of a float64 waveform.
package rfsink

import (
	"fmt"
	"log"

	"github.com/samuel/go-hackrf/hackrf"
)

// Config holds the radio parameters needed to put an analog buffer on
// the air.
type Config struct {
	FrequencyHz uint64
	SampleRate  float64
	TXGain      int
}

// AnalogSource is anything that can hand over one frame's worth of
// signed-8-bit IRE samples, read-only, for the TX callback to stream
// out repeatedly. The crt package never imports radio code, and
// *crt.Engine does not export its analog buffer, so it does not
// satisfy this interface.
type AnalogSource interface {
	AnalogFrame() []int8
}

// Open configures an already-opened HackRF device for transmission and
// starts streaming src's analog frame on loop, converting each signed
// IRE sample to an 8-bit I/Q pair the way hacktvlive/sdr/transmitter.go
// does (Q fixed at 0 - composite video has no quadrature component at
// the RF stage, only at the chroma-subcarrier stage already baked into
// the analog buffer).
func Open(dev *hackrf.Device, cfg Config, src AnalogSource) error {
	if err := dev.SetFreq(cfg.FrequencyHz); err != nil {
		return fmt.Errorf("rfsink: SetFreq: %w", err)
	}
	if err := dev.SetSampleRate(cfg.SampleRate); err != nil {
		return fmt.Errorf("rfsink: SetSampleRate: %w", err)
	}
	if err := dev.SetTXVGAGain(cfg.TXGain); err != nil {
		return fmt.Errorf("rfsink: SetTXVGAGain: %w", err)
	}
	if err := dev.SetAmpEnable(false); err != nil {
		return fmt.Errorf("rfsink: SetAmpEnable: %w", err)
	}

	log.Printf("rfsink: starting transmission on %.3f MHz (%.2f Msps)", float64(cfg.FrequencyHz)/1e6, cfg.SampleRate/1e6)

	counter := 0
	return dev.StartTX(func(buf []byte) error {
		frame := src.AnalogFrame()
		if len(frame) == 0 {
			return fmt.Errorf("rfsink: analog source produced an empty frame")
		}
		n := len(buf) / 2
		for i := 0; i < n; i++ {
			ire := frame[counter]
			amplitude := ireToAmplitude(ire)
			buf[i*2] = byte(int8(amplitude))
			buf[i*2+1] = 0
			counter++
			if counter >= len(frame) {
				counter = 0
			}
		}
		return nil
	})
}

// ireToAmplitude maps a signed-8-bit IRE sample (-128..127, in practice
// -40..110) onto the signed-8-bit range HackRF's I channel expects.
func ireToAmplitude(ire int8) int8 {
	return ire
}
