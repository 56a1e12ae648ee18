package game

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/iburimskiy/stereo-galaxy/internal/config"
	"github.com/iburimskiy/stereo-galaxy/internal/render"
	"github.com/iburimskiy/stereo-galaxy/internal/scene"
	"github.com/iburimskiy/stereo-galaxy/internal/stereo"
)

type State int

const (
	Running State = iota
	Closed
)

func (s State) String() string {
	if s == Closed {
		return "closed"
	}
	return "running"
}

// Loop drives the per-frame stereo render: drain host events, derive the
// rotation from elapsed time, recompute both eye frustums and draw each eye
// into its half of the window.
type Loop struct {
	// Out receives the parameter dump printed on the first frame after start
	// and after every resize.
	Out io.Writer

	host      Host
	rig       stereo.Rig
	place     scene.Placement
	pass      *scene.Pass
	degPerSec float32

	state         State
	width, height int
	printed       bool
	frames        int
	rotation      float32
}

func NewLoop(host Host, rig stereo.Rig, place scene.Placement, pass *scene.Pass, width, height int) *Loop {
	return &Loop{
		Out:       os.Stdout,
		host:      host,
		rig:       rig,
		place:     place,
		pass:      pass,
		degPerSec: config.RotationDegPerSec,
		width:     width,
		height:    height,
	}
}

// RotationAngle is the box rotation in degrees after elapsed time.
func RotationAngle(elapsed time.Duration, degPerSec float32) float32 {
	if elapsed < 0 {
		return 0
	}
	return float32(elapsed.Seconds()) * degPerSec
}

func (l *Loop) State() State { return l.state }

func (l *Loop) Size() (int, int) { return l.width, l.height }

// Frames returns the number of frames drawn.
func (l *Loop) Frames() int { return l.frames }

// Rotation returns the rotation angle used by the last frame.
func (l *Loop) Rotation() float32 { return l.rotation }

// Pump drains pending host events and returns the resulting state.
func (l *Loop) Pump() State {
	for {
		ev, ok := l.host.PollEvent()
		if !ok {
			break
		}
		switch ev.Kind {
		case EventClosed:
			l.state = Closed
		case EventResized:
			l.width, l.height = ev.Width, ev.Height
			l.printed = false
		}
	}
	if !l.host.IsOpen() {
		l.state = Closed
	}
	return l.state
}

// Frame draws both eyes through b. It does not present.
func (l *Loop) Frame(b render.Backend) {
	l.rotation = RotationAngle(l.host.Elapsed(), l.degPerSec)
	bounds := l.rig.Compute(stereo.Aspect(l.width, l.height))
	if !l.printed {
		l.printed = true
		l.dump(bounds)
	}

	b.Clear(config.ColorClear)
	viewports := scene.Viewports(l.width, l.height)
	for i, eye := range stereo.CrossViewOrder {
		l.pass.Draw(b, bounds, eye, viewports[i], l.rotation)
	}
	b.Flush()
	l.frames++
}

// Step runs one loop iteration and reports whether the loop is still running.
// A close seen while draining events ends the loop before anything is drawn.
func (l *Loop) Step(b render.Backend) bool {
	if l.Pump() == Closed {
		return false
	}
	l.Render(b)
	return true
}

// Render draws one frame through b and presents it. Step calls it after
// draining events; hosts that deliver events separately call it directly.
func (l *Loop) Render(b render.Backend) {
	l.Frame(b)
	l.host.Present()
}

// Run steps until the host closes.
func (l *Loop) Run(b render.Backend) {
	for l.Step(b) {
	}
}

func (l *Loop) dump(b stereo.Bounds) {
	if l.Out == nil {
		return
	}
	rows := []struct {
		name string
		v    float32
	}{
		{"aspect", b.Aspect},
		{"nearDist", b.Near},
		{"farDist", b.Far},
		{"focalDist", l.rig.FocalDist},
		{"ocularSeparation", l.rig.OcularSeparation},
		{"fovDegX", l.rig.FovDegX},
		{"frustumHalfWidth", b.HalfWidth},
		{"frustumHalfHeight", b.HalfHeight},
		{"frustumOffset", b.Offset},
		{"leftEyeFrustumLeft", b.LeftEye.Left},
		{"leftEyeFrustumRight", b.LeftEye.Right},
		{"rightEyeFrustumLeft", b.RightEye.Left},
		{"rightEyeFrustumRight", b.RightEye.Right},
		{"objectDist", l.place.Distance},
		{"objectElevation", l.place.Elevation},
		{"objectScale", l.place.Scale},
	}
	for _, r := range rows {
		fmt.Fprintf(l.Out, "%-20s = %g\n", r.name, r.v)
	}
	fmt.Fprintln(l.Out)
}
