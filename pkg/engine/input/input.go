// Package input defines the device-agnostic pointer events consumed by the game.
package input

import (
	"fmt"

	"escaperoom/pkg/engine/geom"
)

// Kind is the type of an input event
type Kind int

const (
	KindNone Kind = iota
	KindPointerMove
	KindPointerDown
	KindPointerUp
	KindQuit
)

// Button identifies a pointer button
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// Event is one pointer or window event, already translated from the device layer
type Event struct {
	Kind   Kind
	Pos    geom.Point
	Button Button
}

// Move creates a pointer-move event
func Move(p geom.Point) Event {
	return Event{Kind: KindPointerMove, Pos: p}
}

// Down creates a pointer-down event
func Down(p geom.Point, b Button) Event {
	return Event{Kind: KindPointerDown, Pos: p, Button: b}
}

// Up creates a pointer-up event
func Up(p geom.Point, b Button) Event {
	return Event{Kind: KindPointerUp, Pos: p, Button: b}
}

// Quit creates a quit-requested event
func Quit() Event {
	return Event{Kind: KindQuit}
}

// String returns a compact description for debug logging
func (e Event) String() string {
	switch e.Kind {
	case KindPointerMove:
		return fmt.Sprintf("move(%d,%d)", e.Pos.X, e.Pos.Y)
	case KindPointerDown:
		return fmt.Sprintf("down(%d,%d,b%d)", e.Pos.X, e.Pos.Y, e.Button)
	case KindPointerUp:
		return fmt.Sprintf("up(%d,%d,b%d)", e.Pos.X, e.Pos.Y, e.Button)
	case KindQuit:
		return "quit"
	default:
		return "none"
	}
}
