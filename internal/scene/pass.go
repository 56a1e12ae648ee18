package scene

import (
	"image"

	"github.com/iburimskiy/stereo-galaxy/internal/config"
	"github.com/iburimskiy/stereo-galaxy/internal/galaxy"
	"github.com/iburimskiy/stereo-galaxy/internal/render"
	"github.com/iburimskiy/stereo-galaxy/internal/stereo"
)

// Placement positions the box and the galaxy in front of the rig.
type Placement struct {
	Distance  float32 // along -z from the eyes
	Elevation float32
	Scale     float32
	Galaxy    float32 // galaxy scale inside the box
	TiltDeg   float32 // galaxy tilt about x
}

// DefaultPlacement is the layout the program renders with.
func DefaultPlacement() Placement {
	return Placement{
		Distance:  config.NearDist + config.ObjectDistOffset,
		Elevation: config.ObjectElevation,
		Scale:     config.ObjectScale,
		Galaxy:    config.GalaxyScale,
		TiltDeg:   config.GalaxyTiltDeg,
	}
}

// Pass renders one eye's view of the scene.
type Pass struct {
	rig    stereo.Rig
	place  Placement
	points []render.Vertex
}

func NewPass(rig stereo.Rig, place Placement, field *galaxy.Field) *Pass {
	points := make([]render.Vertex, field.Len())
	for i := range points {
		p := field.At(i)
		points[i] = render.Vertex{Pos: p.Pos, Color: p.Color}
	}
	return &Pass{rig: rig, place: place, points: points}
}

// Draw renders the scene for eye into vp. rotationDeg spins the box about the
// vertical axis; the galaxy counter-spins at twice that rate.
func (p *Pass) Draw(b render.Backend, bounds stereo.Bounds, eye stereo.Eye, vp image.Rectangle, rotationDeg float32) {
	b.Viewport(vp)
	b.Projection(bounds.Frustum(eye).Matrix())

	b.LoadIdentity()
	b.Translate(p.rig.ViewOffsetX(eye), p.place.Elevation, -p.place.Distance)
	b.Scale(p.place.Scale, p.place.Scale/bounds.Aspect, p.place.Scale)
	b.Rotate(rotationDeg, render.AxisY)

	DrawCube(b)

	b.PushMatrix()
	b.Scale(p.place.Galaxy, p.place.Galaxy, p.place.Galaxy)
	b.Rotate(p.place.TiltDeg, render.AxisX)
	b.Rotate(-rotationDeg*2, render.AxisZ)
	b.Points(p.points)
	b.PopMatrix()
}

// Viewports splits a w x h window into the left and right stereo halves. The
// right half starts one pixel past the middle.
func Viewports(w, h int) [2]image.Rectangle {
	half := w / 2
	return [2]image.Rectangle{
		image.Rect(0, 0, half, h),
		image.Rect(half+1, 0, half+1+half, h),
	}
}
