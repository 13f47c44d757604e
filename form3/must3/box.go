package must3

import (
	"github.com/soypat/flat3"
	"github.com/soypat/flat3/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// trianglesPerSide is the amount of triangles each box side is split into:
// the side is divided in four quadrants around its center, two triangles each.
const trianglesPerSide = 8

// Cube returns a closed mesh approximating a cube centered at center whose
// edges measure 2*half.
func Cube(center flat3.Point, half float64, mat flat3.Material) flat3.Mesh {
	if half <= 0 {
		panic("half <= 0")
	}
	return Box(center, d3.Elem(half), mat)
}

// Box returns a closed mesh approximating an axis aligned box centered at
// center with half sizes along each axis given by half.
func Box(center flat3.Point, half r3.Vec, mat flat3.Material) flat3.Mesh {
	if !d3.IsFinite(half) {
		panic("half size is not finite")
	}
	if d3.LTEZero(half) {
		panic("half size <= 0")
	}
	if !d3.IsFinite(r3.Vec(center)) {
		panic("center is not finite")
	}
	hx := flat3.I.Scale(half.X)
	hy := flat3.J.Scale(half.Y)
	hz := flat3.K.Scale(half.Z)
	// Each side is given by the offset from center to the side's center
	// followed by the two in-plane half extents.
	sides := [6][3]flat3.Vector{
		{hx.Neg(), hy, hz},
		{hx, hy, hz},
		{hy.Neg(), hx, hz},
		{hy, hx, hz},
		{hz.Neg(), hy, hx},
		{hz, hy, hx},
	}
	faces := make([]flat3.Face, 0, len(sides)*trianglesPerSide)
	for _, side := range sides {
		faces = appendSide(faces, center.Add(side[0]), side[1], side[2])
	}
	return flat3.NewMesh(mat, faces...)
}

// appendSide appends the triangles of the rectangle centered at c spanned by
// ±tp and ±lf. Every quadrant is split along the diagonal that does not pass
// through c.
func appendSide(dst []flat3.Face, c flat3.Point, tp, lf flat3.Vector) []flat3.Face {
	for _, sign := range [4][2]float64{{1, 1}, {-1, -1}, {-1, 1}, {1, -1}} {
		a := c.Add(lf.Scale(sign[0]))
		b := c.Add(tp.Scale(sign[1]))
		corner := a.Add(tp.Scale(sign[1]))
		dst = append(dst,
			flat3.Face{corner, a, b},
			flat3.Face{c, a, b},
		)
	}
	return dst
}
