package render

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/soypat/flat3"
	"github.com/soypat/flat3/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	width, height = 640, 480
	pixTol        = 1e-3
)

func newTestCamera(t testing.TB, focal float64) *Camera {
	t.Helper()
	cam, err := NewCamera(flat3.Origin, flat3.I, flat3.J, focal, width, height)
	if err != nil {
		t.Fatal(err)
	}
	return cam
}

func assertProject(t *testing.T, cam *Camera, q flat3.Point, want r2.Vec) {
	t.Helper()
	got, ok := cam.Project(q)
	if !ok {
		t.Fatalf("projection of %v failed", q)
	}
	if math.Abs(got.X-want.X) > pixTol || math.Abs(got.Y-want.Y) > pixTol {
		t.Errorf("projected %v to %v, want %v", q, got, want)
	}
}

var screenCenter = r2.Vec{X: width / 2, Y: height / 2}

func TestProjectCenter(t *testing.T) {
	for _, focal := range []float64{0.5, 1, 10, 300} {
		cam := newTestCamera(t, focal)
		assertProject(t, cam, flat3.Pt(10, 0, 0), screenCenter)
	}
}

func TestProjectBasis(t *testing.T) {
	cam := newTestCamera(t, 10)
	// up is +Y and View×Up is +Z. At depth 20 with focal 10 offsets are halved.
	assertProject(t, cam, flat3.Pt(20, 8, 0), r2.Vec{X: width/2 + 4, Y: height / 2})
	assertProject(t, cam, flat3.Pt(20, 0, -6), r2.Vec{X: width / 2, Y: height/2 - 3})
}

func TestProjectNonUnitView(t *testing.T) {
	cam, err := NewCamera(flat3.Pt(1, 2, 3), flat3.Vec(4, 0, 0), flat3.Vec(0, 2, 0), 10, width, height)
	if err != nil {
		t.Fatal(err)
	}
	assertProject(t, cam, flat3.Pt(50, 2, 3), screenCenter)
	// The up reference need not be orthogonal to the view direction.
	skewed, err := NewCamera(flat3.Origin, flat3.I, flat3.Vec(1, 1, 0), 10, width, height)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := newTestCamera(t, 10).Project(flat3.Pt(20, 8, -3))
	assertProject(t, skewed, flat3.Pt(20, 8, -3), want)
}

func TestProjectSingular(t *testing.T) {
	cam := newTestCamera(t, 10)
	if _, ok := cam.Project(flat3.Pt(0, 5, 5)); ok {
		t.Error("point on the camera plane must not project")
	}
	for _, q := range []flat3.Point{flat3.Pt(20, math.Inf(1), 0), flat3.Pt(20, 0, math.NaN()), flat3.Pt(math.Inf(-1), 1, 1)} {
		if _, ok := cam.Project(q); ok {
			t.Errorf("non-finite point %v must not project", q)
		}
	}
}

func TestProjectAnyOrientation(t *testing.T) {
	// Every cardinal view direction with every non parallel cardinal up reference.
	axes := []flat3.Vector{flat3.I, flat3.J, flat3.K, flat3.I.Neg(), flat3.J.Neg(), flat3.K.Neg()}
	for _, v := range axes {
		for _, n := range axes {
			if v.Cross(n).IsZero() {
				continue
			}
			cam, err := NewCamera(flat3.Pt(1, -1, 2), v, n, 10, width, height)
			if err != nil {
				t.Fatal(err)
			}
			p := cam.Position()
			ahead := p.Add(v.Scale(25))
			assertProject(t, cam, ahead, screenCenter)
			// A point displaced along up at the focal plane moves by the displacement.
			assertProject(t, cam, p.Add(v.Scale(10)).Add(n.Scale(7)), r2.Vec{X: width/2 + 7, Y: height / 2})
			m := v.Cross(n)
			assertProject(t, cam, p.Add(v.Scale(10)).Add(m.Scale(-5)), r2.Vec{X: width / 2, Y: height/2 - 5})
		}
	}
}

// The plane based projection of a camera with orthonormal view and up
// must agree with a look-at view matrix followed by a perspective divide.
func TestProjectMatchesLookAt(t *testing.T) {
	const (
		focal = 200
		tol   = 1e-2
	)
	rng := rand.New(rand.NewSource(1))
	dirs := d3.CenteredBox(r3.Vec{}, d3.Elem(2)).RandomSet(rng, 64)
	pts := d3.CenteredBox(r3.Vec{}, d3.Elem(40)).RandomSet(rng, 64)
	for i := 0; i+1 < len(dirs); i += 2 {
		side := r3.Cross(dirs[i], dirs[i+1])
		if r3.Norm(side) < 0.1 || r3.Norm(dirs[i]) < 0.1 {
			continue
		}
		v := flat3.Vector(r3.Unit(dirs[i]))
		n := flat3.Vector(r3.Unit(side))
		p := flat3.Point(pts[i])
		cam, err := NewCamera(p, v, n, focal, width, height)
		if err != nil {
			t.Fatal(err)
		}
		view := mgl64.LookAtV(toMgl(r3.Vec(p)), toMgl(r3.Vec(p.Add(v))), toMgl(r3.Vec(n)))
		for _, q := range pts {
			c := view.Mul4x1(toMgl(q).Vec4(1))
			depth := -c.Z()
			if depth < 5 {
				continue
			}
			// Screen X runs along up and screen Y along View×Up.
			wantX := width/2 + focal*c.Y()/depth
			wantY := height/2 + focal*c.X()/depth
			got, ok := cam.Project(flat3.Point(q))
			if !ok {
				t.Fatalf("projection of %v failed", q)
			}
			if math.Abs(got.X-wantX) > tol || math.Abs(got.Y-wantY) > tol {
				t.Errorf("camera %d: projected %v to %v, look-at gives (%g,%g)", i, q, got, wantX, wantY)
			}
		}
	}
}

func toMgl(v r3.Vec) mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

func TestCameraErrors(t *testing.T) {
	for _, test := range []struct {
		name   string
		v, n   flat3.Vector
		focal  float64
		w, h   int
		target error
	}{
		{"parallel", flat3.I, flat3.I.Scale(3), 1, width, height, ErrDegenerateBasis},
		{"antiparallel", flat3.J, flat3.J.Neg(), 1, width, height, ErrDegenerateBasis},
		{"zero view", flat3.Vector{}, flat3.J, 1, width, height, ErrDegenerateBasis},
		{"zero up", flat3.I, flat3.Vector{}, 1, width, height, ErrDegenerateBasis},
		{"zero focal", flat3.I, flat3.J, 0, width, height, ErrInvalidFocal},
		{"negative focal", flat3.I, flat3.J, -2, width, height, ErrInvalidFocal},
		{"NaN focal", flat3.I, flat3.J, math.NaN(), width, height, ErrInvalidFocal},
		{"no width", flat3.I, flat3.J, 1, 0, height, ErrInvalidViewport},
	} {
		_, err := NewCamera(flat3.Origin, test.v, test.n, test.focal, test.w, test.h)
		if !errors.Is(err, test.target) {
			t.Errorf("%s: got error %v, want %v", test.name, err, test.target)
		}
	}
}

func TestFailedMutationKeepsState(t *testing.T) {
	cam := newTestCamera(t, 10)
	before := *cam
	if err := cam.SetUp(flat3.I.Neg()); !errors.Is(err, ErrDegenerateBasis) {
		t.Errorf("SetUp parallel got %v", err)
	}
	if err := cam.SetView(flat3.J); !errors.Is(err, ErrDegenerateBasis) {
		t.Errorf("SetView parallel got %v", err)
	}
	if err := cam.SetFocal(0); !errors.Is(err, ErrInvalidFocal) {
		t.Errorf("SetFocal(0) got %v", err)
	}
	if err := cam.Zoom(-1); !errors.Is(err, ErrInvalidFocal) {
		t.Errorf("Zoom(-1) got %v", err)
	}
	if err := cam.RotateX(0, 0); !errors.Is(err, ErrDegenerateBasis) {
		t.Errorf("degenerate rotation got %v", err)
	}
	if err := cam.SetMaxDistance(-1); !errors.Is(err, ErrInvalidDistance) {
		t.Errorf("SetMaxDistance(-1) got %v", err)
	}
	if err := cam.SetViewport(-1, 2); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("SetViewport got %v", err)
	}
	if *cam != before {
		t.Error("failed mutation modified camera")
	}
}

func TestMutationsRefreshProjection(t *testing.T) {
	cam := newTestCamera(t, 10)
	q := flat3.Pt(20, 8, 0)

	if err := cam.SetFocal(20); err != nil {
		t.Fatal(err)
	}
	assertProject(t, cam, q, r2.Vec{X: width/2 + 8, Y: height / 2})
	if err := cam.Zoom(0.5); err != nil {
		t.Fatal(err)
	}
	assertProject(t, cam, q, r2.Vec{X: width/2 + 4, Y: height / 2})

	cam.Translate(0, 8, 0)
	assertProject(t, cam, q, screenCenter)
	cam.SetPosition(flat3.Origin)

	// A quarter turn about Z points the camera along +Y and its up along -X.
	if err := cam.RotateZ(0, 1); err != nil {
		t.Fatal(err)
	}
	assertProject(t, cam, flat3.Pt(0, 30, 0), screenCenter)
	if !cam.InFront(flat3.Pt(0, 1, 0)) || cam.InFront(flat3.Pt(1, 0, 0)) {
		t.Error("visibility not updated after rotation")
	}
	if err := cam.TurnZ(-math.Pi / 2); err != nil {
		t.Fatal(err)
	}
	assertProject(t, cam, flat3.Pt(30, 0, 0), screenCenter)

	if err := cam.TurnY(-math.Pi / 2); err != nil {
		t.Fatal(err)
	}
	assertProject(t, cam, flat3.Pt(0, 0, 30), screenCenter)
	if err := cam.TurnX(math.Pi / 2); err != nil {
		t.Fatal(err)
	}
	assertProject(t, cam, flat3.Pt(0, -30, 0), screenCenter)
}

func TestMove(t *testing.T) {
	cam := newTestCamera(t, 10)
	// Pan speed is -10/focal: one screen unit at focal 10 moves one world unit.
	cam.Move(1, 2)
	want := flat3.Pt(0, -1, -2)
	if cam.Position() != want {
		t.Errorf("got position %v, want %v", cam.Position(), want)
	}
	assertProject(t, cam, flat3.Pt(10, -1, -2), screenCenter)
	if err := cam.SetFocal(20); err != nil {
		t.Fatal(err)
	}
	cam.Move(2, 0)
	if got := cam.Position(); got != flat3.Pt(0, -2, -2) {
		t.Errorf("zoomed in pan got position %v", got)
	}
}

func TestInFrontPlane(t *testing.T) {
	cam, err := NewCamera(flat3.Pt(5, 0, 0), flat3.Vec(2, 0, 0), flat3.K, 1, width, height)
	if err != nil {
		t.Fatal(err)
	}
	onPlane := flat3.Pt(5, 3, -7)
	if cam.InFront(onPlane) {
		t.Error("vertex on the camera plane must not be in front")
	}
	const eps = 1e-9
	if !cam.InFront(onPlane.Add(cam.View().Scale(eps))) {
		t.Error("vertex perturbed along view direction must be in front")
	}
	if cam.InFront(onPlane.Add(cam.View().Scale(-eps))) {
		t.Error("vertex perturbed against view direction must be behind")
	}
}
