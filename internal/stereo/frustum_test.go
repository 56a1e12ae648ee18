package stereo

import (
	"math"
	"testing"
)

var testRig = Rig{
	FovDegX:          25,
	NearDist:         1,
	FocalDist:        2,
	OcularSeparation: 2.0 / 12.0,
	FarMultiplier:    64,
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestCompute_HalfWidthIndependentOfAspect(t *testing.T) {
	want := float32(math.Tan(12.5 * math.Pi / 180))
	for _, a := range []float32{0.25, 0.5, 1, 1.6, 4} {
		b := testRig.Compute(a)
		if !near(b.HalfWidth, want) {
			t.Fatalf("aspect %v: HalfWidth = %v; want %v", a, b.HalfWidth, want)
		}
		if !near(b.HalfHeight, b.HalfWidth/a) {
			t.Fatalf("aspect %v: HalfHeight = %v; want %v", a, b.HalfHeight, b.HalfWidth/a)
		}
	}
}

func TestCompute_EyeWidthsEqual(t *testing.T) {
	b := testRig.Compute(1.3)
	if !near(b.LeftEye.Width(), 2*b.HalfWidth) || !near(b.RightEye.Width(), 2*b.HalfWidth) {
		t.Fatalf("widths left=%v right=%v; want both %v", b.LeftEye.Width(), b.RightEye.Width(), 2*b.HalfWidth)
	}
}

func TestCompute_OffsetSymmetry(t *testing.T) {
	b := testRig.Compute(1)
	wantOffset := float32(0.5 * (2.0 / 12.0) * 0.5)
	if !near(b.Offset, wantOffset) {
		t.Fatalf("Offset = %v; want %v", b.Offset, wantOffset)
	}
	if !near(b.RightEye.Left+b.Offset, -b.HalfWidth) {
		t.Fatalf("RightEye.Left+Offset = %v; want %v", b.RightEye.Left+b.Offset, -b.HalfWidth)
	}
	if !near(b.LeftEye.Right-b.Offset, b.HalfWidth) {
		t.Fatalf("LeftEye.Right-Offset = %v; want %v", b.LeftEye.Right-b.Offset, b.HalfWidth)
	}
	// mirror images of each other
	if !near(b.LeftEye.Left, -b.RightEye.Right) || !near(b.LeftEye.Right, -b.RightEye.Left) {
		t.Fatalf("eyes not mirrored: left=%+v right=%+v", b.LeftEye, b.RightEye)
	}
}

func TestCompute_DepthPlanes(t *testing.T) {
	b := testRig.Compute(1)
	for _, f := range []Frustum{b.LeftEye, b.RightEye} {
		if f.Near != 1 || f.Far != 64 {
			t.Fatalf("near/far = %v/%v; want 1/64", f.Near, f.Far)
		}
		if f.Top != b.HalfHeight || f.Bottom != -b.HalfHeight {
			t.Fatalf("top/bottom = %v/%v; want ±%v", f.Top, f.Bottom, b.HalfHeight)
		}
	}
}

func TestAspect_ResizeScenario(t *testing.T) {
	if a := Aspect(512, 512); a != 0.5 {
		t.Fatalf("Aspect(512,512) = %v; want 0.5", a)
	}
	a := Aspect(800, 400)
	if a != 1 {
		t.Fatalf("Aspect(800,400) = %v; want 1", a)
	}
	b := testRig.Compute(a)
	if !near(b.HalfHeight, b.HalfWidth) {
		t.Fatalf("HalfHeight = %v; want HalfWidth %v", b.HalfHeight, b.HalfWidth)
	}
}

func TestFrustumMatrix_MapsNearCornersToNDC(t *testing.T) {
	f := testRig.Compute(1).RightEye
	m := f.Matrix()
	p := m.Mul4x1([4]float32{f.Right, f.Top, -f.Near, 1})
	x, y, z := p[0]/p[3], p[1]/p[3], p[2]/p[3]
	if !near(x, 1) || !near(y, 1) || !near(z, -1) {
		t.Fatalf("near top-right corner -> (%v,%v,%v); want (1,1,-1)", x, y, z)
	}
}

func TestViewOffsetX(t *testing.T) {
	if got := testRig.ViewOffsetX(RightEye); !near(got, -1.0/12.0) {
		t.Fatalf("ViewOffsetX(right) = %v; want %v", got, -1.0/12.0)
	}
	if got := testRig.ViewOffsetX(LeftEye); !near(got, 1.0/12.0) {
		t.Fatalf("ViewOffsetX(left) = %v; want %v", got, 1.0/12.0)
	}
	if CrossViewOrder[0] != RightEye {
		t.Fatalf("left viewport shows %v eye; want right", CrossViewOrder[0])
	}
}
