// Package render is the immediate-mode graphics layer the scene draws through.
//
// Callers set a viewport and projection, build a modelview transform with the
// matrix stack, and submit colored line and point primitives. Coordinates are
// OpenGL conventions: right-handed eye space looking down -z, NDC in [-1, 1].
package render

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a position with a flat color.
type Vertex struct {
	Pos   mgl32.Vec3
	Color color.RGBA
}

// Backend accepts primitive submissions for one frame.
type Backend interface {
	Clear(c color.Color)
	Viewport(r image.Rectangle)
	Projection(m mgl32.Mat4)

	LoadIdentity()
	PushMatrix()
	PopMatrix()
	Translate(x, y, z float32)
	Scale(x, y, z float32)
	Rotate(deg float32, axis mgl32.Vec3)

	// Lines draws len(v)/2 segments from consecutive vertex pairs.
	Lines(v []Vertex)
	Points(v []Vertex)

	// Flush rasterizes everything submitted since the last flush.
	Flush()
}

var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)
