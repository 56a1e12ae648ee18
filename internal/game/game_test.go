package game

import (
	"testing"
	"time"

	"github.com/iburimskiy/stereo-galaxy/internal/config"
	"github.com/iburimskiy/stereo-galaxy/internal/render/rendertest"
	"github.com/iburimskiy/stereo-galaxy/internal/scene"
)

func TestWindowHost_Events(t *testing.T) {
	h := newWindowHost(512, 512)
	if _, ok := h.PollEvent(); ok {
		t.Fatalf("fresh host has pending events")
	}

	h.resize(512, 512)
	h.resize(0, 300)
	if _, ok := h.PollEvent(); ok {
		t.Fatalf("unchanged or empty size queued a resize")
	}

	h.resize(800, 400)
	ev, ok := h.PollEvent()
	if !ok || ev != (Event{Kind: EventResized, Width: 800, Height: 400}) {
		t.Fatalf("PollEvent = %+v, %v; want resize to 800x400", ev, ok)
	}

	h.close()
	h.close()
	if ev, ok := h.PollEvent(); !ok || ev.Kind != EventClosed {
		t.Fatalf("PollEvent = %+v, %v; want close", ev, ok)
	}
	if _, ok := h.PollEvent(); ok {
		t.Fatalf("close queued twice")
	}
	if h.IsOpen() {
		t.Fatalf("IsOpen after close")
	}
}

func TestWindowHost_PresentRecordsFrames(t *testing.T) {
	h := newWindowHost(512, 512)
	h.lastPresent = time.Now().Add(-10 * time.Millisecond)
	h.Present()
	if got := h.frames.snapshot(config.FrameRingSize); len(got) != 1 || got[0] < 10*time.Millisecond {
		t.Fatalf("recorded frames = %v; want one of at least 10ms", got)
	}
}

func TestNewGame_LoopWiring(t *testing.T) {
	g := NewGame(7)
	if w, h := g.loop.Size(); w != config.InitialWidth || h != config.InitialHeight {
		t.Fatalf("initial size = %dx%d", w, h)
	}
	g.host.resize(1024, 300)
	if g.loop.Pump() != Running {
		t.Fatalf("loop closed after resize")
	}
	if w, h := g.loop.Size(); w != 1024 || h != 300 {
		t.Fatalf("size after resize = %dx%d; want 1024x300", w, h)
	}
	g.host.close()
	if g.loop.Pump() != Closed {
		t.Fatalf("loop still running after close")
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(125 * time.Second); got != "02:05" {
		t.Fatalf("formatDuration(125s) = %q; want 02:05", got)
	}
}

func TestGame_UpdateDrawSplitMatchesStep(t *testing.T) {
	g := NewGame(3)
	rec := rendertest.NewRecorder()

	// Update half
	g.host.resize(640, 480)
	if g.loop.Pump() != Running {
		t.Fatalf("loop closed after resize")
	}
	// Draw half
	g.loop.Render(rec)

	if g.loop.Frames() != 1 || rec.Flushes != 1 {
		t.Fatalf("frames=%d flushes=%d; want 1 each", g.loop.Frames(), rec.Flushes)
	}
	if got := g.host.frames.snapshot(config.FrameRingSize); len(got) != 1 {
		t.Fatalf("presented %d frames; want 1", len(got))
	}
	want := scene.Viewports(640, 480)
	if len(rec.Viewports) != 2 || rec.Viewports[0] != want[0] || rec.Viewports[1] != want[1] {
		t.Fatalf("viewports = %v; want %v", rec.Viewports, want)
	}
}
