package flat3

import (
	"image/color"

	"github.com/soypat/flat3/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

var _ Transformable[Mesh] = Mesh{}

// Material holds the shading parameters shared by all faces of a mesh.
type Material struct {
	Color color.RGBA
}

// Mesh is an ordered, fixed size collection of faces sharing a material.
// Mesh has value semantics: transforms never modify the receiver, they
// return a new Mesh backed by a new face slice. The face count of a mesh
// and all meshes derived from it by transforms is the same.
type Mesh struct {
	faces    []Face
	material Material
}

// NewMesh returns a mesh holding a copy of faces.
func NewMesh(mat Material, faces ...Face) Mesh {
	m := Mesh{
		faces:    make([]Face, len(faces)),
		material: mat,
	}
	copy(m.faces, faces)
	return m
}

// Len returns the number of faces in the mesh.
func (m Mesh) Len() int { return len(m.faces) }

// Face returns the i'th face of the mesh.
func (m Mesh) Face(i int) Face { return m.faces[i] }

// Faces returns a copy of the mesh's faces.
func (m Mesh) Faces() []Face {
	return append([]Face(nil), m.faces...)
}

// Material returns the material of the mesh.
func (m Mesh) Material() Material { return m.material }

// WithMaterial returns m with its material replaced. The returned mesh
// shares face storage with m which is safe since faces are never modified.
func (m Mesh) WithMaterial(mat Material) Mesh {
	m.material = mat
	return m
}

// Bounds returns the axis aligned bounding box of the mesh vertices.
// The bounding box of an empty mesh is the zero box.
func (m Mesh) Bounds() r3.Box {
	if len(m.faces) == 0 {
		return r3.Box{}
	}
	bb := d3.Empty()
	for _, f := range m.faces {
		for _, v := range f {
			bb = bb.Include(r3.Vec(v))
		}
	}
	return r3.Box(bb)
}

// Translate returns m with every face moved by (dx, dy, dz).
func (m Mesh) Translate(dx, dy, dz float64) Mesh {
	return m.apply(func(f Face) Face { return f.Translate(dx, dy, dz) })
}

// Scale returns m with every face scaled about the origin.
func (m Mesh) Scale(sx, sy, sz float64) Mesh {
	return m.apply(func(f Face) Face { return f.Scale(sx, sy, sz) })
}

// RotateX returns m rotated about the X axis through the origin.
func (m Mesh) RotateX(cos, sin float64) Mesh {
	return m.apply(func(f Face) Face { return f.RotateX(cos, sin) })
}

// RotateY returns m rotated about the Y axis through the origin.
func (m Mesh) RotateY(cos, sin float64) Mesh {
	return m.apply(func(f Face) Face { return f.RotateY(cos, sin) })
}

// RotateZ returns m rotated about the Z axis through the origin.
func (m Mesh) RotateZ(cos, sin float64) Mesh {
	return m.apply(func(f Face) Face { return f.RotateZ(cos, sin) })
}

func (m Mesh) apply(fn func(Face) Face) Mesh {
	faces := make([]Face, len(m.faces))
	for i, f := range m.faces {
		faces[i] = fn(f)
	}
	return Mesh{faces: faces, material: m.material}
}
