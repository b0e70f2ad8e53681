package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escaperoom/pkg/engine/geom"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		code string
		want Event
	}{
		{"mouse_move", Move(geom.Pt(3, 4))},
		{"mouse_left_down", Down(geom.Pt(3, 4), ButtonLeft)},
		{"mouse_left_up", Up(geom.Pt(3, 4), ButtonLeft)},
		{"mouse_right_down", Down(geom.Pt(3, 4), ButtonRight)},
		{"touch_start", Down(geom.Pt(3, 4), ButtonLeft)},
		{"touch_end", Up(geom.Pt(3, 4), ButtonLeft)},
		{"window_close", Quit()},
		{"keyboard_q", Event{Kind: KindNone}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := Translate(RawInput{Device: DeviceMouse, Code: tt.code, Pos: geom.Pt(3, 4), Timestamp: time.Now()})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueue_DrainPreservesOrder(t *testing.T) {
	var q Queue
	q.Push(RawInput{Code: "mouse_move", Pos: geom.Pt(1, 1)})
	q.Push(RawInput{Code: "bogus"})
	q.Push(RawInput{Code: "mouse_left_down", Pos: geom.Pt(1, 1)})
	q.PushEvent(Quit())
	q.PushEvent(Event{})

	require.Equal(t, 3, q.Len())
	events := q.Drain()
	require.Len(t, events, 3)
	assert.Equal(t, KindPointerMove, events[0].Kind)
	assert.Equal(t, KindPointerDown, events[1].Kind)
	assert.Equal(t, KindQuit, events[2].Kind)
	assert.Equal(t, 0, q.Len())
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "down(5,6,b1)", Down(geom.Pt(5, 6), ButtonLeft).String())
	assert.Equal(t, "quit", Quit().String())
}
