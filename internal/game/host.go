package game

import "time"

type EventKind int

const (
	EventClosed EventKind = iota + 1
	EventResized
)

// Event is a window notification delivered by a Host.
type Event struct {
	Kind          EventKind
	Width, Height int
}

// Host is the window the loop renders into.
type Host interface {
	// PollEvent returns the next pending event without blocking.
	PollEvent() (Event, bool)
	// Elapsed is the wall-clock time since the loop started.
	Elapsed() time.Duration
	// Present shows the composed frame.
	Present()
	IsOpen() bool
}
