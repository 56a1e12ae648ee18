package render

import (
	"cmp"
	"image"
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas rasterizes primitives onto an ebiten image in software. There is no
// depth buffer: primitives queued for a viewport are drawn farthest first on
// Flush. Lines are clipped against the near and far planes; x/y clipping is
// left to the target image bounds.
type Canvas struct {
	*Stack

	LineWidth float32
	PointSize float32

	dst      *ebiten.Image
	viewport image.Rectangle // NDC maps onto this, even past the image edge
	clip     image.Rectangle // viewport cut to the image, where drawing lands
	proj     mgl32.Mat4
	pending  []primitive
}

type primitive struct {
	depth          float32
	x0, y0, x1, y1 float32
	point          bool
	clr            color.RGBA
}

func NewCanvas(lineWidth, pointSize float32) *Canvas {
	return &Canvas{
		Stack:     NewStack(),
		LineWidth: lineWidth,
		PointSize: pointSize,
		proj:      mgl32.Ident4(),
	}
}

// Begin targets dst for the coming frame.
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	c.viewport = dst.Bounds()
	c.clip = c.viewport
	c.pending = c.pending[:0]
}

func (c *Canvas) Clear(clr color.Color) {
	c.pending = c.pending[:0]
	if c.dst != nil {
		c.dst.Fill(clr)
	}
}

// Viewport flushes work queued for the previous viewport before switching.
// Like glViewport, r sets the NDC mapping in full and only the drawing is
// cut to the target.
func (c *Canvas) Viewport(r image.Rectangle) {
	c.Flush()
	c.viewport = r
	c.clip = r
	if c.dst != nil {
		c.clip = r.Intersect(c.dst.Bounds())
	}
}

func (c *Canvas) Projection(m mgl32.Mat4) { c.proj = m }

func (c *Canvas) Lines(v []Vertex) {
	mvp := c.proj.Mul4(c.Top())
	for i := 0; i+1 < len(v); i += 2 {
		a, b, ok := clipSegment(mvp.Mul4x1(v[i].Pos.Vec4(1)), mvp.Mul4x1(v[i+1].Pos.Vec4(1)))
		if !ok {
			continue
		}
		x0, y0, z0 := toWindow(a, c.viewport)
		x1, y1, z1 := toWindow(b, c.viewport)
		// flat shading takes the last vertex's color
		c.pending = append(c.pending, primitive{
			depth: (z0 + z1) / 2,
			x0:    x0, y0: y0, x1: x1, y1: y1,
			clr: v[i+1].Color,
		})
	}
}

func (c *Canvas) Points(v []Vertex) {
	mvp := c.proj.Mul4(c.Top())
	for i := range v {
		x, y, z, ok := Project(mvp, v[i].Pos, c.viewport)
		if !ok {
			continue
		}
		c.pending = append(c.pending, primitive{depth: z, x0: x, y0: y, point: true, clr: v[i].Color})
	}
}

// sortFarthestFirst orders primitives by descending depth, keeping submission
// order among equals.
func sortFarthestFirst(p []primitive) {
	slices.SortStableFunc(p, func(a, b primitive) int {
		return cmp.Compare(b.depth, a.depth)
	})
}

func (c *Canvas) Flush() {
	if len(c.pending) == 0 || c.dst == nil || c.clip.Empty() {
		c.pending = c.pending[:0]
		return
	}
	sortFarthestFirst(c.pending)

	sub := c.dst.SubImage(c.clip).(*ebiten.Image)
	half := c.PointSize / 2
	for _, p := range c.pending {
		if p.point {
			vector.DrawFilledRect(sub, p.x0-half, p.y0-half, c.PointSize, c.PointSize, p.clr, false)
			continue
		}
		vector.StrokeLine(sub, p.x0, p.y0, p.x1, p.y1, c.LineWidth, p.clr, true)
	}
	c.pending = c.pending[:0]
}

var _ Backend = (*Canvas)(nil)
