package flat3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transformable is implemented by geometric values that can be moved,
// rotated about the world axes and scaled about the origin. Rotations take
// the cosine and sine of the angle so callers composing many rotations per
// frame evaluate the trigonometric functions once.
type Transformable[T any] interface {
	Translate(dx, dy, dz float64) T
	RotateX(cos, sin float64) T
	RotateY(cos, sin float64) T
	RotateZ(cos, sin float64) T
	Scale(sx, sy, sz float64) T
}

// RotateXAbout rotates t about the axis parallel to X passing through c.
// It is exactly t.Translate(-c).RotateX(cos, sin).Translate(c).
func RotateXAbout[T Transformable[T]](t T, c Point, cos, sin float64) T {
	return t.Translate(-c.X, -c.Y, -c.Z).RotateX(cos, sin).Translate(c.X, c.Y, c.Z)
}

// RotateYAbout rotates t about the axis parallel to Y passing through c.
func RotateYAbout[T Transformable[T]](t T, c Point, cos, sin float64) T {
	return t.Translate(-c.X, -c.Y, -c.Z).RotateY(cos, sin).Translate(c.X, c.Y, c.Z)
}

// RotateZAbout rotates t about the axis parallel to Z passing through c.
func RotateZAbout[T Transformable[T]](t T, c Point, cos, sin float64) T {
	return t.Translate(-c.X, -c.Y, -c.Z).RotateZ(cos, sin).Translate(c.X, c.Y, c.Z)
}

// ScaleAbout scales t by (sx, sy, sz) keeping c fixed.
func ScaleAbout[T Transformable[T]](t T, c Point, sx, sy, sz float64) T {
	return t.Translate(-c.X, -c.Y, -c.Z).Scale(sx, sy, sz).Translate(c.X, c.Y, c.Z)
}

// RotateX rotates t about the X axis through the origin by radians.
func RotateX[T Transformable[T]](t T, radians float64) T {
	sin, cos := math.Sincos(radians)
	return t.RotateX(cos, sin)
}

// RotateY rotates t about the Y axis through the origin by radians.
func RotateY[T Transformable[T]](t T, radians float64) T {
	sin, cos := math.Sincos(radians)
	return t.RotateY(cos, sin)
}

// RotateZ rotates t about the Z axis through the origin by radians.
func RotateZ[T Transformable[T]](t T, radians float64) T {
	sin, cos := math.Sincos(radians)
	return t.RotateZ(cos, sin)
}

func rotateX(v r3.Vec, cos, sin float64) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y*cos - v.Z*sin, Z: v.Y*sin + v.Z*cos}
}

func rotateY(v r3.Vec, cos, sin float64) r3.Vec {
	return r3.Vec{X: v.X*cos + v.Z*sin, Y: v.Y, Z: v.Z*cos - v.X*sin}
}

func rotateZ(v r3.Vec, cos, sin float64) r3.Vec {
	return r3.Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos, Z: v.Z}
}
