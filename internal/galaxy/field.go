// Package galaxy generates a spiral-arm particle field.
package galaxy

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Shape controls the spiral distribution.
type Shape struct {
	Particles int
	Arms      int
	Density   float32 // full turns an arm makes from center to rim
	Width     float32 // noise amplitude
}

// Particle is one generated point. Arm and Radius are kept so callers can
// inspect the distribution; neither changes after generation.
type Particle struct {
	Pos    mgl32.Vec3
	Color  color.RGBA
	Arm    int
	Radius float32
}

// Field owns a fixed set of particles. It is read-only after Generate returns.
type Field struct {
	shape     Shape
	particles []Particle
}

// Generate builds a field for shape. The same seed always yields the same field.
func Generate(seed uint64, shape Shape) *Field {
	if shape.Particles < 0 {
		shape.Particles = 0
	}
	if shape.Arms < 1 {
		shape.Arms = 1
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	f := &Field{
		shape:     shape,
		particles: make([]Particle, shape.Particles),
	}
	for i := range f.particles {
		f.particles[i] = spawn(rng, shape)
	}
	return f
}

func spawn(rng *rand.Rand, s Shape) Particle {
	c := color.RGBA{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
		A: 255,
	}

	arm := rng.IntN(s.Arms)
	d := rng.Float32()
	angleDeg := s.SpineAngle(arm, d)

	// x/y noise grows toward the rim, z noise shrinks (flat disk, thick bulge).
	fuzzX := d * s.Width * (rng.Float32() - 0.5)
	fuzzY := d * s.Width * (rng.Float32() - 0.5)
	fuzzZ := 0.5 * (1 - d) * (1 - d) * s.Width * (rng.Float32() - 0.5)

	rad := float64(mgl32.DegToRad(angleDeg))
	return Particle{
		Pos: mgl32.Vec3{
			fuzzX + d*float32(math.Cos(rad)),
			fuzzY + d*float32(math.Sin(rad)),
			fuzzZ,
		},
		Color:  c,
		Arm:    arm,
		Radius: d,
	}
}

// Shape returns the parameters the field was generated with.
func (f *Field) Shape() Shape { return f.shape }

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.particles) }

// At returns particle i.
func (f *Field) At(i int) Particle { return f.particles[i] }

// SpineAngle returns the arm angle in degrees, before noise, for a particle on
// arm at radius d.
func (s Shape) SpineAngle(arm int, d float32) float32 {
	return float32(arm*360)/float32(s.Arms) + d*s.Density*360
}
