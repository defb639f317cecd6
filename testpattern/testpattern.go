// Package testpattern generates synthetic RGB rasters for driving the
// crt encoder in tests and demos: a set of resolution-independent
// pattern generators (bars, checkerboard, solid fill).
package testpattern

// SMPTEBars fills a w*h 0x00RRGGBB raster with the standard seven
// vertical SMPTE color bars.
func SMPTEBars(w, h int) []int32 {
	bars := [7]int32{
		0x00C0C0C0, // gray
		0x00C0C000, // yellow
		0x0000C0C0, // cyan
		0x0000C000, // green
		0x00C000C0, // magenta
		0x00C00000, // red
		0x000000C0, // blue
	}
	buf := make([]int32, w*h)
	barWidth := w / 7
	if barWidth == 0 {
		barWidth = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := x / barWidth
			if idx >= 7 {
				idx = 6
			}
			buf[y*w+x] = bars[idx]
		}
	}
	return buf
}

// Checkerboard fills a w*h raster with alternating cell colors, useful
// for exercising the encoder's horizontal/vertical chroma resolution.
func Checkerboard(w, h, cell int, a, b int32) []int32 {
	if cell <= 0 {
		cell = 1
	}
	buf := make([]int32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if ((x/cell)+(y/cell))%2 == 0 {
				buf[y*w+x] = a
			} else {
				buf[y*w+x] = b
			}
		}
	}
	return buf
}

// Solid fills a w*h raster with one color, used by the monochrome
// round-trip identity tests.
func Solid(w, h int, rgb int32) []int32 {
	buf := make([]int32, w*h)
	for i := range buf {
		buf[i] = rgb
	}
	return buf
}
