package render

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Project maps v through mvp and the viewport vp to window coordinates with y
// growing downward. depth is the NDC z, larger is farther. ok is false when v
// falls behind the eye or outside the near/far range.
func Project(mvp mgl32.Mat4, v mgl32.Vec3, vp image.Rectangle) (x, y, depth float32, ok bool) {
	clip := mvp.Mul4x1(v.Vec4(1))
	if !insideDepth(clip) {
		return 0, 0, 0, false
	}
	x, y, depth = toWindow(clip, vp)
	return x, y, depth, true
}

// insideDepth reports whether a clip-space point lies between the near and
// far planes, -w <= z <= w with w > 0.
func insideDepth(c mgl32.Vec4) bool {
	return c[3] > 0 && c[2]+c[3] >= 0 && c[3]-c[2] >= 0
}

func toWindow(c mgl32.Vec4, vp image.Rectangle) (x, y, depth float32) {
	ndc := c.Vec3().Mul(1 / c[3])
	w, h := float32(vp.Dx()), float32(vp.Dy())
	x = float32(vp.Min.X) + (ndc[0]+1)/2*w
	y = float32(vp.Min.Y) + (1-ndc[1])/2*h
	return x, y, ndc[2]
}

// clipSegment trims the clip-space segment a-b to the near and far planes.
// ok is false when nothing of it remains.
func clipSegment(a, b mgl32.Vec4) (mgl32.Vec4, mgl32.Vec4, bool) {
	planes := [2]func(mgl32.Vec4) float32{
		func(c mgl32.Vec4) float32 { return c[3] + c[2] }, // near
		func(c mgl32.Vec4) float32 { return c[3] - c[2] }, // far
	}
	for _, dist := range planes {
		da, db := dist(a), dist(b)
		switch {
		case da < 0 && db < 0:
			return a, b, false
		case da < 0:
			a = lerp4(a, b, da/(da-db))
		case db < 0:
			b = lerp4(b, a, db/(db-da))
		}
	}
	// both planes hold, so w >= |z| >= 0; reject the degenerate eye point
	if a[3] <= 0 || b[3] <= 0 {
		return a, b, false
	}
	return a, b, true
}

func lerp4(from, to mgl32.Vec4, t float32) mgl32.Vec4 {
	return from.Add(to.Sub(from).Mul(t))
}
