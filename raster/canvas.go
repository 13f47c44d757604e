// Package raster fills rendered screen space triangles into an in-memory image.
package raster

import (
	"image"
	"image/color"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/flat3/render"
	"gonum.org/v1/gonum/spatial/r2"
)

var _ render.Surface = (*Canvas)(nil)

// Canvas is a render.Surface backed by fauxgl's triangle rasterizer.
// Depth testing, culling and blending are disabled: each fill overwrites
// the pixels it covers, as painter's algorithm requires.
type Canvas struct {
	ctx    *fauxgl.Context
	shader *flatShader
}

// NewCanvas returns a canvas of width x height pixels cleared to black.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic("canvas dimensions must be positive")
	}
	shader := &flatShader{}
	ctx := fauxgl.NewContext(width, height)
	ctx.Shader = shader
	ctx.Cull = fauxgl.CullNone
	ctx.ReadDepth = false
	ctx.WriteDepth = false
	ctx.AlphaBlend = false
	ctx.ClearColorBufferWith(fauxgl.Black)
	return &Canvas{ctx: ctx, shader: shader}
}

// Bounds returns the pixel bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.ctx.Width, c.ctx.Height)
}

// Clear fills the canvas with col.
func (c *Canvas) Clear(col color.Color) {
	c.ctx.ClearColorBufferWith(fauxgl.MakeColor(col))
}

// FillTriangle fills t with col. Parts of t outside the canvas are clipped.
func (c *Canvas) FillTriangle(t render.Triangle2, col color.Color) {
	c.shader.color = fauxgl.MakeColor(col)
	c.ctx.DrawTriangle(&fauxgl.Triangle{
		V1: c.vertex(t[0]),
		V2: c.vertex(t[1]),
		V3: c.vertex(t[2]),
	})
}

// Image returns the canvas contents. The image is backed by the canvas
// and changes with subsequent draws.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// SavePNG writes the canvas contents to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return fauxgl.SavePNG(path, c.ctx.Image())
}

// vertex maps a pixel position to normalized device coordinates. Pixel rows
// grow downwards while device Y grows upwards.
func (c *Canvas) vertex(v r2.Vec) fauxgl.Vertex {
	w, h := float64(c.ctx.Width), float64(c.ctx.Height)
	return fauxgl.Vertex{
		Position: fauxgl.V(2*v.X/w-1, 1-2*v.Y/h, 0),
	}
}

// Upscale returns img enlarged by an integer factor with nearest neighbour
// sampling so flat shaded edges stay sharp. Factors below 2 return img.
func Upscale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	return resize.Resize(uint(b.Dx()*factor), uint(b.Dy()*factor), img, resize.NearestNeighbor)
}

// flatShader passes positions through unchanged and fills with a single color.
type flatShader struct {
	color fauxgl.Color
}

func (s *flatShader) Vertex(v fauxgl.Vertex) fauxgl.Vertex {
	v.Output = fauxgl.VectorW{X: v.Position.X, Y: v.Position.Y, Z: v.Position.Z, W: 1}
	return v
}

func (s *flatShader) Fragment(fauxgl.Vertex) fauxgl.Color {
	return s.color
}
