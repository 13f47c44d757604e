package render

import (
	"fmt"
	"math"

	"github.com/soypat/flat3"
	"github.com/soypat/flat3/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// panSpeed is the world displacement per screen unit of Move at focal distance 1.
const panSpeed = 10

// Camera projects world points onto an image plane placed at the focal
// distance along the view direction. It does not use matrices: points are
// intersected with the focal plane and decomposed in the plane's basis.
//
// Every mutating method validates the resulting state and recomputes the
// cached projection coefficients before returning, so Render never reads
// stale state. Methods that fail leave the camera unchanged.
// A Camera is not safe for concurrent use.
type Camera struct {
	p       flat3.Point
	v       flat3.Vector
	n       flat3.Vector
	f       float64
	width   int
	height  int
	maxDist float64

	// Cached projection state.
	d      float64      // plane constant -(p·v)
	center flat3.Point  // view axis intersection with the focal plane
	up     flat3.Vector // n with its component along v removed
	m      flat3.Vector // v×n
	// Offsets are decomposed as a*up + b*m by solving the two equations
	// of components ax and ay. ka and kb hold the inverted 2x2 system.
	ax, ay int
	ka, kb [2]float64
}

// NewCamera returns a camera at p looking along v with up reference n and
// the given focal distance and viewport size in pixels. v need not be unit
// length. The maximum render distance is unbounded.
func NewCamera(p flat3.Point, v, n flat3.Vector, focal float64, width, height int) (*Camera, error) {
	c := Camera{
		p:       p,
		v:       v,
		n:       n,
		f:       focal,
		maxDist: math.Inf(1),
	}
	if err := c.setViewport(width, height); err != nil {
		return nil, err
	}
	if err := c.update(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Position returns the camera position.
func (c *Camera) Position() flat3.Point { return c.p }

// View returns the view direction.
func (c *Camera) View() flat3.Vector { return c.v }

// Up returns the up reference as it was set.
func (c *Camera) Up() flat3.Vector { return c.n }

// Basis returns the image plane basis vectors used for projection.
// The first is the up reference made orthogonal to the view direction,
// the second is View×Up.
func (c *Camera) Basis() (flat3.Vector, flat3.Vector) { return c.up, c.m }

// Focal returns the focal distance.
func (c *Camera) Focal() float64 { return c.f }

// Viewport returns the viewport width and height in pixels.
func (c *Camera) Viewport() (width, height int) { return c.width, c.height }

// MaxDistance returns the maximum render distance. It is +Inf by default.
func (c *Camera) MaxDistance() float64 { return c.maxDist }

// SetPosition places the camera at p.
func (c *Camera) SetPosition(p flat3.Point) {
	c.p = p
	c.mustUpdate()
}

// Translate moves the camera by (dx, dy, dz) in world space.
func (c *Camera) Translate(dx, dy, dz float64) {
	c.SetPosition(c.p.Translate(dx, dy, dz))
}

// Move pans the camera along the image plane basis by screen displacement
// (dx, dy). The displacement is scaled by -10/focal so panning slows down
// as the camera zooms in.
func (c *Camera) Move(dx, dy float64) {
	k := -panSpeed / c.f
	c.SetPosition(c.p.Add(c.up.Scale(k * dx).Add(c.m.Scale(k * dy))))
}

// SetView sets the view direction.
func (c *Camera) SetView(v flat3.Vector) error {
	return c.commit(func(next *Camera) { next.v = v })
}

// SetUp sets the up reference. It must not be parallel to the view direction.
func (c *Camera) SetUp(n flat3.Vector) error {
	return c.commit(func(next *Camera) { next.n = n })
}

// SetFocal sets the focal distance.
func (c *Camera) SetFocal(f float64) error {
	return c.commit(func(next *Camera) { next.f = f })
}

// Zoom multiplies the focal distance by factor.
func (c *Camera) Zoom(factor float64) error {
	return c.SetFocal(c.f * factor)
}

// SetViewport sets the viewport size in pixels.
func (c *Camera) SetViewport(width, height int) error {
	return c.setViewport(width, height)
}

func (c *Camera) setViewport(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidViewport)
	}
	c.width, c.height = width, height
	return nil
}

// SetMaxDistance sets the distance past which faces are not rendered.
// Use math.Inf(1) to disable distance culling.
func (c *Camera) SetMaxDistance(dist float64) error {
	if !(dist > 0) {
		return fmt.Errorf("%g: %w", dist, ErrInvalidDistance)
	}
	c.maxDist = dist
	return nil
}

// RotateX rotates the view direction and up reference together about the
// world X axis by the angle with cosine cos and sine sin.
func (c *Camera) RotateX(cos, sin float64) error {
	return c.commit(func(next *Camera) {
		next.v = next.v.RotateX(cos, sin)
		next.n = next.n.RotateX(cos, sin)
	})
}

// RotateY rotates the view direction and up reference about the world Y axis.
func (c *Camera) RotateY(cos, sin float64) error {
	return c.commit(func(next *Camera) {
		next.v = next.v.RotateY(cos, sin)
		next.n = next.n.RotateY(cos, sin)
	})
}

// RotateZ rotates the view direction and up reference about the world Z axis.
func (c *Camera) RotateZ(cos, sin float64) error {
	return c.commit(func(next *Camera) {
		next.v = next.v.RotateZ(cos, sin)
		next.n = next.n.RotateZ(cos, sin)
	})
}

// TurnX is RotateX taking an angle in radians.
func (c *Camera) TurnX(radians float64) error {
	sin, cos := math.Sincos(radians)
	return c.RotateX(cos, sin)
}

// TurnY is RotateY taking an angle in radians.
func (c *Camera) TurnY(radians float64) error {
	sin, cos := math.Sincos(radians)
	return c.RotateY(cos, sin)
}

// TurnZ is RotateZ taking an angle in radians.
func (c *Camera) TurnZ(radians float64) error {
	sin, cos := math.Sincos(radians)
	return c.RotateZ(cos, sin)
}

// InFront reports whether q lies strictly on the forward side of the plane
// through the camera position with normal View.
func (c *Camera) InFront(q flat3.Point) bool {
	return c.v.Dot(q.Vector())+c.d > 0
}

// Project returns the screen position of q in pixels. ok is false when the
// ray from the camera through q is parallel to the focal plane or the
// result is not finite. Points
// behind the camera are projected mirrored; use InFront to detect them.
func (c *Camera) Project(q flat3.Point) (screen r2.Vec, ok bool) {
	// Solving v·(p + t(q-p)) + d = f for t with d = -(v·p).
	den := c.v.Dot(q.Sub(c.p))
	if den == 0 {
		return r2.Vec{}, false
	}
	t := c.f / den
	onPlane := c.p.Add(q.Sub(c.p).Scale(t))
	a, b := c.decompose(onPlane.Sub(c.center))
	if !finite(a) || !finite(b) {
		return r2.Vec{}, false
	}
	return r2.Vec{
		X: a + float64(c.width)/2,
		Y: b + float64(c.height)/2,
	}, true
}

// decompose returns a, b such that a*up + b*m = o for o in the focal plane.
func (c *Camera) decompose(o flat3.Vector) (a, b float64) {
	oi := d3.Component(r3.Vec(o), c.ax)
	oj := d3.Component(r3.Vec(o), c.ay)
	return c.ka[0]*oi + c.ka[1]*oj, c.kb[0]*oi + c.kb[1]*oj
}

// commit applies fn to a copy of the camera and keeps the result only if it is valid.
func (c *Camera) commit(fn func(next *Camera)) error {
	next := *c
	fn(&next)
	if err := next.update(); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Camera) mustUpdate() {
	if err := c.update(); err != nil {
		panic("bug: valid camera became invalid: " + err.Error())
	}
}

// update validates the camera parameters and recomputes the cached projection state.
func (c *Camera) update() error {
	if !(c.f > 0) || math.IsInf(c.f, 1) {
		return fmt.Errorf("%g: %w", c.f, ErrInvalidFocal)
	}
	vv := c.v.Mod()
	m := c.v.Cross(c.n)
	if m.IsZero() || vv == 0 {
		return fmt.Errorf("view %v, up %v: %w", c.v, c.n, ErrDegenerateBasis)
	}
	up := c.n.Sub(c.v.Scale(c.n.Dot(c.v) / vv))

	// Pick the pair of component equations with the best conditioned
	// determinant. The determinants are the components of up×m.
	w := up.Cross(m)
	ax, ay, det := 1, 2, w.X
	if math.Abs(w.Y) > math.Abs(det) {
		ax, ay, det = 2, 0, w.Y
	}
	if math.Abs(w.Z) > math.Abs(det) {
		ax, ay, det = 0, 1, w.Z
	}
	if det == 0 || math.IsNaN(det) {
		return fmt.Errorf("view %v, up %v: %w", c.v, c.n, ErrDegenerateBasis)
	}
	upi, upj := d3.Component(r3.Vec(up), ax), d3.Component(r3.Vec(up), ay)
	mi, mj := d3.Component(r3.Vec(m), ax), d3.Component(r3.Vec(m), ay)

	c.d = -c.v.Dot(c.p.Vector())
	c.center = c.p.Add(c.v.Scale(c.f / vv))
	c.up = up
	c.m = m
	c.ax, c.ay = ax, ay
	c.ka = [2]float64{mj / det, -mi / det}
	c.kb = [2]float64{-upj / det, upi / det}
	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
