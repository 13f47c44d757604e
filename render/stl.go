package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/flat3"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"
)

// size of a binary STL triangle record.
const stlTriangleSize = 50

// CreateSTL writes the faces of every mesh to a binary STL file at path.
func CreateSTL(path string, meshes ...flat3.Mesh) error {
	var faces []flat3.Face
	for _, m := range meshes {
		faces = append(faces, m.Faces()...)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	if err = WriteSTL(w, faces); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	return file.Close()
}

// WriteSTL writes faces to a writer in binary STL file format. Facet
// normals are the unit normals of the faces' winding.
func WriteSTL(w io.Writer, faces []flat3.Face) error {
	if len(faces) == 0 {
		return errors.New("empty face slice")
	}
	header := stlHeader{
		Count: uint32(len(faces)),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	var (
		d stlTriangle
		b [stlTriangleSize]byte
	)
	for _, face := range faces {
		d.Normal = toMs3(unitNormal(face))
		d.Vertex1 = toMs3(r3.Vec(face[0]))
		d.Vertex2 = toMs3(r3.Vec(face[1]))
		d.Vertex3 = toMs3(r3.Vec(face[2]))
		d.put(b[:])
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

// ReadSTL reads the faces of a binary STL stream such as the output of
// WriteSTL. Faces whose stored normal
// disagrees with their winding are still returned alongside an error
// wrapping errCalculatedNormalMismatch.
func ReadSTL(r io.Reader) (output []flat3.Face, readErr error) {
	var header stlHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errors.New("encountered EOF while reading STL header")
		}
		return nil, errors.New("STL header read failed: " + err.Error())
	}
	if header.Count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		buf            [stlTriangleSize]byte
		d              stlTriangle
		i              int
		normMismatches int
	)
	defer func() {
		if readErr != nil && !errors.Is(readErr, errCalculatedNormalMismatch) {
			readErr = fmt.Errorf("%d/%d STL triangles read: %w", i+1, header.Count, readErr)
		}
	}()
	for i = 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		d.get(buf[:])
		if err := d.validate(); err != nil {
			if !errors.Is(err, errCalculatedNormalMismatch) {
				return nil, err
			}
			normMismatches++
			readErr = fmt.Errorf("%d faces: %w", normMismatches, err)
		}
		output = append(output, d.face())
	}
	return output, readErr
}

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

// stlTriangle defines the triangle data within an STL file.
type stlTriangle struct {
	Normal  ms3.Vec
	Vertex1 ms3.Vec
	Vertex2 ms3.Vec
	Vertex3 ms3.Vec
	_       uint16 // Attribute byte count
}

func (t stlTriangle) put(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to marshal stlTriangle")
	}
	putVec(b, t.Normal)
	putVec(b[12:], t.Vertex1)
	putVec(b[24:], t.Vertex2)
	putVec(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (t *stlTriangle) get(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to unmarshal stlTriangle")
	}
	t.Normal = getVec(b)
	t.Vertex1 = getVec(b[12:])
	t.Vertex2 = getVec(b[24:])
	t.Vertex3 = getVec(b[36:])
}

func putVec(b []byte, v ms3.Vec) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Z))
}

func getVec(b []byte) ms3.Vec {
	_ = b[11] // early bounds check
	return ms3.Vec{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b)),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}

func badVec(v ms3.Vec) bool {
	return math32.IsNaN(v.X) || math32.IsInf(v.X, 0) ||
		math32.IsNaN(v.Y) || math32.IsInf(v.Y, 0) ||
		math32.IsNaN(v.Z) || math32.IsInf(v.Z, 0)
}

var errCalculatedNormalMismatch = errors.New("facet normal not approximately equal to normal calculated from vertices")

func (t stlTriangle) validate() error {
	const normTol = 5e-2
	if badVec(t.Normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	if badVec(t.Vertex1) || badVec(t.Vertex2) || badVec(t.Vertex3) {
		return errors.New("inf/NaN STL triangle vertex")
	}
	tri := ms3.Triangle{t.Vertex1, t.Vertex2, t.Vertex3}
	if tri.IsDegenerate(0) {
		return errors.New("triangle is degenerate")
	}
	if !equalWithin(ms3.Unit(tri.Normal()), t.Normal, normTol) {
		return errCalculatedNormalMismatch
	}
	return nil
}

func (t stlTriangle) face() flat3.Face {
	return flat3.Face{
		fromMs3(t.Vertex1),
		fromMs3(t.Vertex2),
		fromMs3(t.Vertex3),
	}
}

// unitNormal returns the face normal scaled to unit length or the zero
// vector for degenerate faces.
func unitNormal(f flat3.Face) r3.Vec {
	n := r3.Vec(f.Normal())
	if r3.Norm2(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

func toMs3(v r3.Vec) ms3.Vec {
	return ms3.Vec{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func fromMs3(v ms3.Vec) flat3.Point {
	return flat3.Pt(float64(v.X), float64(v.Y), float64(v.Z))
}

func equalWithin(a, b ms3.Vec, tol float32) bool {
	d := ms3.Sub(a, b)
	return math32.Abs(d.X) <= tol && math32.Abs(d.Y) <= tol && math32.Abs(d.Z) <= tol
}
