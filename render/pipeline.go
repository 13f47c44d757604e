package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/soypat/flat3"
	"gonum.org/v1/gonum/spatial/r2"
)

// ScreenMargin is how many pixels past each viewport edge a projected vertex
// may lie and still keep its triangle. Triangles with all three vertices
// outside the enlarged viewport are rejected.
const ScreenMargin = 100

// Shaded is a screen space triangle ready to be filled.
type Shaded struct {
	Screen Triangle2
	Color  color.RGBA
	// Normal is the unnormalized world space normal of the source face.
	Normal flat3.Vector
	// Depth is the squared distance from the camera to the nearest vertex
	// of the source face. Shaded triangles are ordered by decreasing Depth.
	Depth float64
}

// Frame is the result of rendering a scene.
type Frame struct {
	// Shaded holds one entry per retained face and scene light, farthest face first.
	Shaded []Shaded
	// Faces is the amount of faces in the scene.
	Faces int
	// Behind counts faces with no vertex in front of the camera.
	Behind int
	// Far counts faces beyond the camera's max distance.
	Far int
	// Singular counts faces with a non-finite vertex or a vertex that
	// could not be projected.
	Singular int
	// Offscreen counts faces projected entirely outside the viewport margin.
	Offscreen int
}

// Render is shorthand for c.Render(s).
func Render(s *flat3.Scene, c *Camera) []Shaded {
	return c.Render(s)
}

// Render projects and shades the scene and returns the triangles in
// drawing order. See RenderFrame.
func (c *Camera) Render(s *flat3.Scene) []Shaded {
	return c.RenderFrame(s).Shaded
}

// RenderFrame runs the render pipeline over every face in the scene:
//   - faces with no vertex in front of the camera are dropped. Faces
//     straddling the camera plane are kept and not clipped.
//   - faces with a non-finite vertex are dropped.
//   - faces whose nearest vertex is farther than MaxDistance are dropped.
//   - the remaining vertices are projected onto the viewport. A face with a
//     vertex that can not be projected is dropped.
//   - faces entirely outside the viewport enlarged by ScreenMargin are dropped.
//   - faces are sorted farthest first and shaded once per scene light.
//
// Failures are isolated per face and never abort the frame.
func (c *Camera) RenderFrame(s *flat3.Scene) Frame {
	type candidate struct {
		face   flat3.Face
		screen Triangle2
		depth  float64
	}
	var (
		frame      Frame
		candidates []candidate
		maxDist2   = c.maxDist * c.maxDist
		bounds     = c.screenBounds()
	)
	s.EachFace(func(_ flat3.Mesh, f flat3.Face) {
		frame.Faces++
		if !c.InFront(f[0]) && !c.InFront(f[1]) && !c.InFront(f[2]) {
			frame.Behind++
			return
		}
		depth := c.depth(f)
		if math.IsNaN(depth) || math.IsInf(depth, 0) {
			frame.Singular++
			return
		}
		if depth > maxDist2 {
			frame.Far++
			return
		}
		var tri Triangle2
		for i := range f {
			var ok bool
			tri[i], ok = c.Project(f[i])
			if !ok {
				frame.Singular++
				return
			}
		}
		if !bounds.Contains(tri[0]) && !bounds.Contains(tri[1]) && !bounds.Contains(tri[2]) {
			frame.Offscreen++
			return
		}
		candidates = append(candidates, candidate{face: f, screen: tri, depth: depth})
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].depth > candidates[j].depth
	})

	lights := s.Lights()
	frame.Shaded = make([]Shaded, 0, len(candidates)*len(lights))
	for _, cd := range candidates {
		centroid := cd.face.Centroid()
		normal := cd.face.Normal()
		for _, light := range lights {
			frame.Shaded = append(frame.Shaded, Shaded{
				Screen: cd.screen,
				Color:  Gray(Brightness(centroid.Sub(light.Position).Norm())),
				Normal: normal,
				Depth:  cd.depth,
			})
		}
	}
	return frame
}

// depth returns the squared distance from the camera to the nearest vertex
// of f. It is NaN if any vertex distance is NaN.
func (c *Camera) depth(f flat3.Face) float64 {
	d := math.Inf(1)
	for _, q := range f {
		dq := q.Sub(c.p).Mod()
		if math.IsNaN(dq) {
			return dq
		}
		d = math.Min(d, dq)
	}
	return d
}

// screenBounds returns the viewport enlarged by ScreenMargin, bounds included.
func (c *Camera) screenBounds() r2.Box {
	return r2.Box{
		Min: r2.Vec{X: -ScreenMargin, Y: -ScreenMargin},
		Max: r2.Vec{X: float64(c.width + ScreenMargin), Y: float64(c.height + ScreenMargin)},
	}
}
