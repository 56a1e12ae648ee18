// Package rendertest provides a render.Backend that records submissions for
// inspection in tests.
package rendertest

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/stereo-galaxy/internal/render"
)

// Batch is one Lines or Points call together with the state it was issued under.
type Batch struct {
	Points     bool
	Vertices   []render.Vertex
	Modelview  mgl32.Mat4
	Projection mgl32.Mat4
	Viewport   image.Rectangle
}

// Recorder implements render.Backend.
type Recorder struct {
	*render.Stack

	Clears    int
	Flushes   int
	Viewports []image.Rectangle
	Batches   []Batch

	proj     mgl32.Mat4
	viewport image.Rectangle
}

func NewRecorder() *Recorder {
	return &Recorder{Stack: render.NewStack(), proj: mgl32.Ident4()}
}

func (r *Recorder) Clear(color.Color) { r.Clears++ }

func (r *Recorder) Viewport(vp image.Rectangle) {
	r.viewport = vp
	r.Viewports = append(r.Viewports, vp)
}

func (r *Recorder) Projection(m mgl32.Mat4) { r.proj = m }

func (r *Recorder) Lines(v []render.Vertex) { r.record(false, v) }

func (r *Recorder) Points(v []render.Vertex) { r.record(true, v) }

func (r *Recorder) Flush() { r.Flushes++ }

func (r *Recorder) record(points bool, v []render.Vertex) {
	r.Batches = append(r.Batches, Batch{
		Points:     points,
		Vertices:   append([]render.Vertex(nil), v...),
		Modelview:  r.Top(),
		Projection: r.proj,
		Viewport:   r.viewport,
	})
}

var _ render.Backend = (*Recorder)(nil)
