package must3

import (
	"testing"

	"github.com/soypat/flat3"
)

func TestCubePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero size cube")
		}
	}()
	Cube(flat3.Origin, 0, flat3.Material{})
}

func TestSideCentersAroundCube(t *testing.T) {
	cube := Cube(flat3.Pt(1, 2, 3), 2, flat3.Material{})
	// The second triangle of each quadrant has the side's center as first vertex.
	var sum flat3.Vector
	for side := 0; side < 6; side++ {
		c := cube.Face(side*trianglesPerSide + 1)[0]
		sum = sum.Add(c.Sub(flat3.Pt(1, 2, 3)))
		if d := c.Sub(flat3.Pt(1, 2, 3)).Norm(); d != 2 {
			t.Errorf("side %d center at distance %g from cube center", side, d)
		}
	}
	if !sum.IsZero() {
		t.Errorf("side centers not symmetric about cube center: %v", sum)
	}
}
