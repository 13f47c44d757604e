package flat3

var _ Transformable[Face] = Face{}

// Face is a triangle defined by three vertices. Winding order is not
// guaranteed to be consistent across the faces of a mesh.
type Face [3]Point

// Translate moves every vertex of f by (dx, dy, dz).
func (f Face) Translate(dx, dy, dz float64) Face {
	return Face{f[0].Translate(dx, dy, dz), f[1].Translate(dx, dy, dz), f[2].Translate(dx, dy, dz)}
}

// Scale scales every vertex of f about the origin.
func (f Face) Scale(sx, sy, sz float64) Face {
	return Face{f[0].Scale(sx, sy, sz), f[1].Scale(sx, sy, sz), f[2].Scale(sx, sy, sz)}
}

// RotateX rotates every vertex of f about the X axis through the origin.
func (f Face) RotateX(cos, sin float64) Face {
	return Face{f[0].RotateX(cos, sin), f[1].RotateX(cos, sin), f[2].RotateX(cos, sin)}
}

// RotateY rotates every vertex of f about the Y axis through the origin.
func (f Face) RotateY(cos, sin float64) Face {
	return Face{f[0].RotateY(cos, sin), f[1].RotateY(cos, sin), f[2].RotateY(cos, sin)}
}

// RotateZ rotates every vertex of f about the Z axis through the origin.
func (f Face) RotateZ(cos, sin float64) Face {
	return Face{f[0].RotateZ(cos, sin), f[1].RotateZ(cos, sin), f[2].RotateZ(cos, sin)}
}

// Centroid returns the arithmetic mean of the vertices.
func (f Face) Centroid() Point {
	const third = 1. / 3
	return Point{
		X: (f[0].X + f[1].X + f[2].X) * third,
		Y: (f[0].Y + f[1].Y + f[2].Y) * third,
		Z: (f[0].Z + f[1].Z + f[2].Z) * third,
	}
}

// Normal returns the cross product of the edges f[0]→f[1] and f[0]→f[2].
// It is not normalized: its magnitude is twice the triangle's area.
func (f Face) Normal() Vector {
	return f[1].Sub(f[0]).Cross(f[2].Sub(f[0]))
}

// Degenerate returns true if the triangle's area is below tol.
func (f Face) Degenerate(tol float64) bool {
	return f.Normal().Norm() <= 2*tol
}
