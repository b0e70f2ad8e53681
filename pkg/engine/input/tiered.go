package input

import (
	"time"

	"escaperoom/pkg/engine/geom"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceMouse
	DeviceTouch
	DeviceWindow
	DeviceScript
)

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "mouse_left_down", "touch_end", "window_close").
type RawInput struct {
	Device    Device
	Code      string
	Pos       geom.Point
	Timestamp time.Time
}

// binding is what a raw code turns into
type binding struct {
	kind   Kind
	button Button
}

// bindings maps raw codes to event kinds (2nd layer).
// Touch is folded onto the left button so a tap behaves like a click.
var bindings = map[string]binding{
	"mouse_move":        {KindPointerMove, ButtonNone},
	"mouse_left_down":   {KindPointerDown, ButtonLeft},
	"mouse_left_up":     {KindPointerUp, ButtonLeft},
	"mouse_right_down":  {KindPointerDown, ButtonRight},
	"mouse_right_up":    {KindPointerUp, ButtonRight},
	"mouse_middle_down": {KindPointerDown, ButtonMiddle},
	"mouse_middle_up":   {KindPointerUp, ButtonMiddle},
	"touch_move":        {KindPointerMove, ButtonNone},
	"touch_start":       {KindPointerDown, ButtonLeft},
	"touch_end":         {KindPointerUp, ButtonLeft},
	"window_close":      {KindQuit, ButtonNone},
	"quit":              {KindQuit, ButtonNone},
}

// Translate is the 2nd layer: it maps a raw device event to a game Event.
// Unknown codes translate to an event of KindNone.
func Translate(raw RawInput) Event {
	b, ok := bindings[raw.Code]
	if !ok {
		return Event{Kind: KindNone}
	}
	if b.kind == KindQuit {
		return Quit()
	}
	return Event{Kind: b.kind, Pos: raw.Pos, Button: b.button}
}

// Queue collects the events of a single frame in arrival order.
// The frame owner drains it once before mutating game state.
type Queue struct {
	events []Event
}

// Push translates and appends a raw input, dropping unknown codes
func (q *Queue) Push(raw RawInput) {
	if ev := Translate(raw); ev.Kind != KindNone {
		q.events = append(q.events, ev)
	}
}

// PushEvent appends an already translated event
func (q *Queue) PushEvent(ev Event) {
	if ev.Kind != KindNone {
		q.events = append(q.events, ev)
	}
}

// Drain returns all queued events and empties the queue
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events
func (q *Queue) Len() int {
	return len(q.events)
}
