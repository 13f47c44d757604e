package flat3

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is a free 3D vector. It has direction and magnitude but no position.
type Vector r3.Vec

// Unit vectors along the world axes.
var (
	I = Vector{X: 1}
	J = Vector{Y: 1}
	K = Vector{Z: 1}
)

// Vec returns the vector (x, y, z).
func Vec(x, y, z float64) Vector { return Vector{X: x, Y: y, Z: z} }

// Add returns u + v.
func (u Vector) Add(v Vector) Vector { return Vector(r3.Add(r3.Vec(u), r3.Vec(v))) }

// Sub returns u - v.
func (u Vector) Sub(v Vector) Vector { return Vector(r3.Sub(r3.Vec(u), r3.Vec(v))) }

// Neg returns -u.
func (u Vector) Neg() Vector { return Vector(r3.Scale(-1, r3.Vec(u))) }

// Scale returns k*u.
func (u Vector) Scale(k float64) Vector { return Vector(r3.Scale(k, r3.Vec(u))) }

// Cross returns the cross product u×v.
func (u Vector) Cross(v Vector) Vector { return Vector(r3.Cross(r3.Vec(u), r3.Vec(v))) }

// Dot returns the dot product u·v.
func (u Vector) Dot(v Vector) float64 { return r3.Dot(r3.Vec(u), r3.Vec(v)) }

// Mod returns the squared magnitude of u. Use Norm for the magnitude.
func (u Vector) Mod() float64 { return r3.Norm2(r3.Vec(u)) }

// Norm returns the magnitude of u.
func (u Vector) Norm() float64 { return r3.Norm(r3.Vec(u)) }

// IsZero reports whether u is the zero vector.
func (u Vector) IsZero() bool { return u == Vector{} }

// AddPoint returns the point p displaced by u. It is equivalent to p.Add(u).
func (u Vector) AddPoint(p Point) Point { return p.Add(u) }

// RotateX rotates u about the X axis by the angle with cosine cos and sine sin.
func (u Vector) RotateX(cos, sin float64) Vector { return Vector(rotateX(r3.Vec(u), cos, sin)) }

// RotateY rotates u about the Y axis by the angle with cosine cos and sine sin.
func (u Vector) RotateY(cos, sin float64) Vector { return Vector(rotateY(r3.Vec(u), cos, sin)) }

// RotateZ rotates u about the Z axis by the angle with cosine cos and sine sin.
func (u Vector) RotateZ(cos, sin float64) Vector { return Vector(rotateZ(r3.Vec(u), cos, sin)) }

func (u Vector) String() string { return fmt.Sprintf("<%.3f, %.3f, %.3f>", u.X, u.Y, u.Z) }
