package flat3

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

var _ Transformable[Point] = Point{}

// Point is a position in world space. Point is an immutable value:
// every operation returns a new Point.
type Point r3.Vec

// Origin is the world origin.
var Origin Point

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

// Add returns p displaced by v.
func (p Point) Add(v Vector) Point { return Point(r3.Add(r3.Vec(p), r3.Vec(v))) }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector { return Vector(r3.Sub(r3.Vec(p), r3.Vec(q))) }

// Vector returns the vector from the origin to p.
func (p Point) Vector() Vector { return Vector(p) }

// Translate returns p moved by (dx, dy, dz).
func (p Point) Translate(dx, dy, dz float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Scale returns p scaled about the origin by (sx, sy, sz).
func (p Point) Scale(sx, sy, sz float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy, Z: p.Z * sz}
}

// RotateX rotates p about the X axis through the origin.
func (p Point) RotateX(cos, sin float64) Point { return Point(rotateX(r3.Vec(p), cos, sin)) }

// RotateY rotates p about the Y axis through the origin.
func (p Point) RotateY(cos, sin float64) Point { return Point(rotateY(r3.Vec(p), cos, sin)) }

// RotateZ rotates p about the Z axis through the origin.
func (p Point) RotateZ(cos, sin float64) Point { return Point(rotateZ(r3.Vec(p), cos, sin)) }

func (p Point) String() string { return fmt.Sprintf("(%.3f, %.3f, %.3f)", p.X, p.Y, p.Z) }
