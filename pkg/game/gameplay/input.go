package gameplay

import (
	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/state"
)

// ProcessEvent applies one input event to the game
func ProcessEvent(g *state.Game, ev input.Event, now int64) {
	switch ev.Kind {
	case input.KindPointerMove:
		g.Pointer = ev.Pos
		g.Chest.Update(ev.Pos)

	case input.KindPointerDown:
		if ev.Button != input.ButtonLeft {
			return
		}
		g.Pointer = ev.Pos
		g.PointerHeld = true
		HandleClick(g, ev.Pos, now)

	case input.KindPointerUp:
		if ev.Button != input.ButtonLeft {
			return
		}
		g.Pointer = ev.Pos
		g.PointerHeld = false
		g.Chest.EndDrag()

	case input.KindQuit:
		g.Quit = true
	}
}

// Step runs one frame: every pending event in order, then the per-frame tick
func Step(g *state.Game, events []input.Event, now int64) {
	for _, ev := range events {
		ProcessEvent(g, ev, now)
	}
	Tick(g, now)
}
