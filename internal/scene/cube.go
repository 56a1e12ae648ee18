// Package scene draws the stereo galaxy: a wireframe box with a spinning
// particle disk inside, once per eye.
package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/stereo-galaxy/internal/config"
	"github.com/iburimskiy/stereo-galaxy/internal/render"
)

var cubeEdges = buildCube(config.ColorFront, config.ColorBack, config.ColorConnecting)

func buildCube(front, back, connecting color.RGBA) []render.Vertex {
	const h = 0.5
	square := [4][2]float32{{-h, -h}, {h, -h}, {h, h}, {-h, h}}

	v := make([]render.Vertex, 0, 24)
	face := func(z float32, c color.RGBA) {
		for i := range square {
			a, b := square[i], square[(i+1)%4]
			v = append(v,
				render.Vertex{Pos: mgl32.Vec3{a[0], a[1], z}, Color: c},
				render.Vertex{Pos: mgl32.Vec3{b[0], b[1], z}, Color: c},
			)
		}
	}
	face(h, front)
	face(-h, back)
	for _, p := range square {
		v = append(v,
			render.Vertex{Pos: mgl32.Vec3{p[0], p[1], -h}, Color: connecting},
			render.Vertex{Pos: mgl32.Vec3{p[0], p[1], h}, Color: connecting},
		)
	}
	return v
}

// DrawCube submits the 12 edges of a unit cube centered on the origin.
func DrawCube(b render.Backend) {
	b.Lines(cubeEdges)
}
