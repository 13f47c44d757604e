package render

import (
	"image/color"
	"math"
)

// falloff is the distance over which brightness drops by one level.
const falloff = 4

// Brightness returns the flat shading brightness in [0, 255] of a face whose
// centroid lies at dist from a light: 255 - dist/4 clamped. It reaches 0 at
// a distance of 1020.
func Brightness(dist float64) float64 {
	b := 255 - dist/falloff
	switch {
	case math.IsNaN(b) || b < 0:
		return 0
	case b > 255:
		return 255
	}
	return b
}

// Gray returns the opaque gray with the given brightness in [0, 255].
func Gray(brightness float64) color.RGBA {
	g := uint8(math.Round(brightness))
	return color.RGBA{R: g, G: g, B: g, A: 255}
}
