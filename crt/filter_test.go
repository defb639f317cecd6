package crt

import "testing"

func TestIIRLowPassConverges(t *testing.T) {
	var f iirLowPass
	f.init(lineFreqHz, yFreqHz)

	var out int
	for i := 0; i < 500; i++ {
		out = f.apply(1000)
	}
	if abs(out-1000) > 5 {
		t.Errorf("iirLowPass did not converge to step input: got %d, want ~1000", out)
	}
}

func TestIIRLowPassResetZeroesHistory(t *testing.T) {
	var f iirLowPass
	f.init(lineFreqHz, iFreqHz)
	for i := 0; i < 50; i++ {
		f.apply(500)
	}
	f.reset()
	if f.h != 0 {
		t.Errorf("reset left history at %d, want 0", f.h)
	}
}

func TestEQFilterResetZeroesState(t *testing.T) {
	var f eqFilter
	f.init(kHzToLine(80, 910), kHzToLine(1150, 910), 910, 65536, 65536, 1311)
	for i := 0; i < 20; i++ {
		f.apply(300)
	}
	f.reset()
	if f.fLo != [4]int{} || f.fHi != [4]int{} || f.hist != [histLen]int{} {
		t.Errorf("reset left non-zero state: fLo=%v fHi=%v hist=%v", f.fLo, f.fHi, f.hist)
	}
}

func TestEQFilterApplyDoesNotPanic(t *testing.T) {
	var f eqFilter
	f.init(kHzToLine(1500, 910), kHzToLine(3000, 910), 910, eqYGains[0], eqYGains[1], eqYGains[2])
	for i := 0; i < 10; i++ {
		out := f.apply(100)
		_ = out // exercised purely for panics/overflow; exact value depends on history
	}
}
