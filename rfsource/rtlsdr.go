// Package rfsource adapts an RTL-SDR device into a stream of
// AM-demodulated samples on the crt package's signed IRE scale
// (crt.Engine has no method that accepts them), grounded on rtl_tv/sdr/rtlsdr.go's device setup and the AM-demod
// loop in rtl_tv/decoder/decoder.go.
package rfsource

import (
	"fmt"
	"log"
	"math"

	rtl "github.com/jpoirier/gortlsdr"
)

// Config mirrors rtl_tv/config's SDRConfig shape: the handful of knobs
// that matter for tuning into a composite-video carrier.
type Config struct {
	FrequencyHz  int
	SampleRateHz int
	Gain         int
}

// Open opens device 0, tunes and configures it per cfg, exactly as
// rtl_tv/sdr/rtlsdr.go's SetupDevice did.
func Open(cfg Config) (*rtl.Context, error) {
	devCount := rtl.GetDeviceCount()
	if devCount == 0 {
		return nil, fmt.Errorf("rfsource: no RTL-SDR devices found")
	}
	log.Printf("rfsource: found %d RTL-SDR device(s), using device 0", devCount)

	dongle, err := rtl.Open(0)
	if err != nil {
		return nil, fmt.Errorf("rfsource: open: %w", err)
	}
	if err := dongle.SetCenterFreq(cfg.FrequencyHz); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("rfsource: SetCenterFreq: %w", err)
	}
	if err := dongle.SetSampleRate(cfg.SampleRateHz); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("rfsource: SetSampleRate: %w", err)
	}
	if err := dongle.SetTunerGainMode(true); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("rfsource: SetTunerGainMode: %w", err)
	}
	if err := dongle.SetTunerGain(cfg.Gain); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("rfsource: SetTunerGain: %w", err)
	}
	if err := dongle.ResetBuffer(); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("rfsource: ResetBuffer: %w", err)
	}
	return dongle, nil
}

// DemodulateAM converts a buffer of interleaved 8-bit I/Q samples into
// signed analog samples on the crt package's IRE-ish scale, matching
// the magnitude-demod step rtl_tv/decoder/decoder.go performs before
// handing samples to its own (float64) decoder.
func DemodulateAM(iq []byte, gain float64) []int8 {
	n := len(iq) / 2
	out := make([]int8, n)
	for i := 0; i < n; i++ {
		ii := float64(int(iq[i*2])-127) / 128.0
		qq := float64(int(iq[i*2+1])-127) / 128.0
		mag := math.Sqrt(ii*ii + qq*qq)
		v := int(mag*gain*127) - 64
		if v > 127 {
			v = 127
		}
		if v < -127 {
			v = -127
		}
		out[i] = int8(v)
	}
	return out
}
