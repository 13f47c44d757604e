package render

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// Triangle2 is a triangle in screen space. Coordinates are pixels with the
// origin at the top left corner of the viewport.
type Triangle2 [3]r2.Vec

// Surface is a pixel destination for rendered triangles such as a window
// back buffer or an in-memory image.
type Surface interface {
	// Clear fills the whole surface with c.
	Clear(c color.Color)
	// FillTriangle fills t with c, overwriting what was drawn before.
	FillTriangle(t Triangle2, c color.Color)
}

// Draw clears dst to black and fills the shaded triangles in order. Since
// there is no depth buffer, triangles drawn later cover earlier ones.
func Draw(dst Surface, shaded []Shaded) {
	dst.Clear(color.Black)
	for i := range shaded {
		dst.FillTriangle(shaded[i].Screen, shaded[i].Color)
	}
}
