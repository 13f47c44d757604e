package form3

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/flat3"
	"github.com/soypat/flat3/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Stack returns the stack trace recorded when the shape generator failed.
func (s *shapeErr) Stack() string { return s.stack }

// Cube returns a closed triangle mesh approximating a cube centered at center
// with edges of length 2*half. Errors returned by the generators in this
// package implement interface{ Stack() string } which returns the stack
// trace recorded when the invalid parameter was detected.
func Cube(center flat3.Point, half float64, mat flat3.Material) (m flat3.Mesh, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Cube(center, half, mat), err
}

// Box returns a closed triangle mesh approximating an axis aligned box
// centered at center. half holds the half extents along each axis.
func Box(center flat3.Point, half r3.Vec, mat flat3.Material) (m flat3.Mesh, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Box(center, half, mat), err
}
