package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/stereo-galaxy/internal/config"
	"github.com/iburimskiy/stereo-galaxy/internal/galaxy"
	"github.com/iburimskiy/stereo-galaxy/internal/render"
	"github.com/iburimskiy/stereo-galaxy/internal/scene"
	"github.com/iburimskiy/stereo-galaxy/internal/stereo"
)

// DefaultRig is the camera rig the program renders with.
func DefaultRig() stereo.Rig {
	return stereo.Rig{
		FovDegX:          config.FovDegX,
		NearDist:         config.NearDist,
		FocalDist:        config.FocalDist,
		OcularSeparation: config.OcularSeparation,
		FarMultiplier:    config.FarMultiplier,
	}
}

// DefaultShape is the galaxy the program renders.
func DefaultShape() galaxy.Shape {
	return galaxy.Shape{
		Particles: config.NumParticles,
		Arms:      config.NumSpiralArms,
		Density:   config.SpiralDensity,
		Width:     config.SpiralWidth,
	}
}

// windowHost adapts the ebiten window to Host. Ebiten owns the real event
// loop, so events are queued from Update and Layout and drained by the Loop.
type windowHost struct {
	queue         []Event
	start         time.Time
	lastPresent   time.Time
	open          bool
	width, height int
	frames        *frameTap
}

func newWindowHost(width, height int) *windowHost {
	now := time.Now()
	return &windowHost{
		start:       now,
		lastPresent: now,
		open:        true,
		width:       width,
		height:      height,
		frames:      newFrameTap(config.FrameRingSize),
	}
}

func (h *windowHost) PollEvent() (Event, bool) {
	if len(h.queue) == 0 {
		return Event{}, false
	}
	ev := h.queue[0]
	h.queue = h.queue[1:]
	return ev, true
}

func (h *windowHost) Elapsed() time.Duration { return time.Since(h.start) }

// Present records the frame time; ebiten swaps buffers once Draw returns.
func (h *windowHost) Present() {
	now := time.Now()
	h.frames.record(now.Sub(h.lastPresent))
	h.lastPresent = now
}

func (h *windowHost) IsOpen() bool { return h.open }

func (h *windowHost) close() {
	if !h.open {
		return
	}
	h.open = false
	h.queue = append(h.queue, Event{Kind: EventClosed})
}

func (h *windowHost) resize(w, ht int) {
	if w <= 0 || ht <= 0 || (w == h.width && ht == h.height) {
		return
	}
	h.width, h.height = w, ht
	h.queue = append(h.queue, Event{Kind: EventResized, Width: w, Height: ht})
}

type game struct {
	host   *windowHost
	loop   *Loop
	canvas *render.Canvas
}

// NewGame builds the stereo galaxy with a particle field generated from seed.
func NewGame(seed uint64) *game {
	host := newWindowHost(config.InitialWidth, config.InitialHeight)
	rig := DefaultRig()
	place := scene.DefaultPlacement()
	pass := scene.NewPass(rig, place, galaxy.Generate(seed, DefaultShape()))

	return &game{
		host:   host,
		loop:   NewLoop(host, rig, place, pass, config.InitialWidth, config.InitialHeight),
		canvas: render.NewCanvas(config.WireframeLineWidth, config.PointParticleSize),
	}
}

func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.host.close()
	}
	if g.loop.Pump() == Closed {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.loop.State() == Closed {
		return
	}
	// Update ran Pump, so this is the drawing half of Loop.Step.
	g.canvas.Begin(screen)
	g.loop.Render(g.canvas)

	status := fmt.Sprintf("%s  %.0f fps", formatDuration(g.host.Elapsed()), g.host.frames.fps())
	ebitenutil.DebugPrintAt(screen, status, config.HUDX, config.HUDY)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.host.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
