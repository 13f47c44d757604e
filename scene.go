package flat3

import "image/color"

// Light is a point light source. Intensity is carried for consumers;
// flat shading only uses the light's distance to a face.
type Light struct {
	Position  Point
	Color     color.RGBA
	Intensity float64
}

// Scene aggregates meshes and lights in insertion order. The zero value
// is an empty scene ready to use. A scene does not own a camera.
type Scene struct {
	meshes []Mesh
	lights []Light
}

// AddMesh appends meshes to the scene and returns the index of the first one added.
func (s *Scene) AddMesh(meshes ...Mesh) int {
	idx := len(s.meshes)
	s.meshes = append(s.meshes, meshes...)
	return idx
}

// AddLight appends lights to the scene.
func (s *Scene) AddLight(lights ...Light) {
	s.lights = append(s.lights, lights...)
}

// SetMesh replaces the i'th mesh, usually with a transformed version of itself.
func (s *Scene) SetMesh(i int, m Mesh) {
	s.meshes[i] = m
}

// Mesh returns the i'th mesh added to the scene.
func (s *Scene) Mesh(i int) Mesh { return s.meshes[i] }

// Meshes returns the scene's meshes in insertion order.
func (s *Scene) Meshes() []Mesh { return append([]Mesh(nil), s.meshes...) }

// Lights returns the scene's lights in insertion order.
func (s *Scene) Lights() []Light { return append([]Light(nil), s.lights...) }

// NumFaces returns the total amount of faces over all meshes.
func (s *Scene) NumFaces() (n int) {
	for _, m := range s.meshes {
		n += m.Len()
	}
	return n
}

// EachFace calls fn for every face in the scene in mesh then face order.
func (s *Scene) EachFace(fn func(m Mesh, f Face)) {
	for _, m := range s.meshes {
		for _, f := range m.faces {
			fn(m, f)
		}
	}
}
