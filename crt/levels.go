package crt

// Signal levels (IRE units, 100 IRE = 0.714V white). The RGB path and
// the palette path use different absolute levels, because they model
// two different real-world transmitters.
type levelSet struct {
	white int
	burst int
	black int
	blank int
	sync  int
}

var rgbLevels = levelSet{white: 100, burst: 20, black: 7, blank: 0, sync: -40}
var paletteLevels = levelSet{white: 110, burst: 30, black: 0, blank: 0, sync: -37}

// eqGains are the three-band equalizer gains used to shape Y, I and Q
// on decode. Fixed point at EQ_P=16; changing EQ_P requires retuning
// these.
var (
	eqYGains = [3]int{65536, 8192, 9175}
	eqIGains = [3]int{65536, 65536, 1311}
	eqQGains = [3]int{65536, 65536, 0}
)

// eqCutoffs is (low, high) cutoff in kHz for each of Y/I/Q's
// three-band equalizer.
var (
	eqYCutoffKHz = [2]int{1500, 3000}
	eqICutoffKHz = [2]int{80, 1150}
	eqQCutoffKHz = [2]int{80, 1000}
)
