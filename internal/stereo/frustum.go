// Package stereo computes the asymmetric view frustums of a two-eye camera rig.
//
// The eyes keep parallel view axes; depth comes from skewing each eye's frustum
// horizontally toward the shared focal plane instead of toeing the cameras in.
package stereo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Rig describes the fixed camera parameters shared by both eyes.
type Rig struct {
	FovDegX          float32 // full horizontal field of view
	NearDist         float32
	FocalDist        float32
	OcularSeparation float32
	FarMultiplier    float32 // far plane = NearDist * FarMultiplier
}

// Frustum holds the six clip plane bounds passed to a perspective projection.
type Frustum struct {
	Left, Right, Bottom, Top, Near, Far float32
}

// Matrix returns the perspective projection for f.
func (f Frustum) Matrix() mgl32.Mat4 {
	return mgl32.Frustum(f.Left, f.Right, f.Bottom, f.Top, f.Near, f.Far)
}

// Width is the horizontal extent of the near plane.
func (f Frustum) Width() float32 { return f.Right - f.Left }

// Bounds is the per-frame output of Rig.Compute.
type Bounds struct {
	Aspect     float32
	HalfWidth  float32
	HalfHeight float32
	Offset     float32
	Near, Far  float32

	LeftEye  Frustum
	RightEye Frustum
}

// Aspect returns the aspect ratio of one viewport when a window of w x h pixels
// is split into two side-by-side halves.
func Aspect(w, h int) float32 {
	if h <= 0 {
		h = 1
	}
	return (0.5 * float32(w)) / float32(h)
}

// Compute derives the symmetric half extents and both eyes' asymmetric
// frustums for the given viewport aspect ratio. The result depends only on the
// rig and aspect.
func (r Rig) Compute(aspect float32) Bounds {
	halfWidth := r.NearDist * float32(math.Tan(float64(mgl32.DegToRad(r.FovDegX/2))))
	offset := (0.5 * r.OcularSeparation) * (r.NearDist / r.FocalDist)

	b := Bounds{
		Aspect:     aspect,
		HalfWidth:  halfWidth,
		HalfHeight: halfWidth / aspect,
		Offset:     offset,
		Near:       r.NearDist,
		Far:        r.NearDist * r.FarMultiplier,
	}
	b.LeftEye = b.frustum(-halfWidth+offset, halfWidth+offset)
	b.RightEye = b.frustum(-halfWidth-offset, halfWidth-offset)
	return b
}

func (b Bounds) frustum(left, right float32) Frustum {
	return Frustum{
		Left:   left,
		Right:  right,
		Bottom: -b.HalfHeight,
		Top:    b.HalfHeight,
		Near:   b.Near,
		Far:    b.Far,
	}
}
