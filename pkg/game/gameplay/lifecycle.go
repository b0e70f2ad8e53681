// Package gameplay is the room controller: it interprets input against the current
// room and advances timed effects once per frame.
package gameplay

import (
	"log/slog"

	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/inventory"
	"escaperoom/pkg/game/state"
)

// BuildGame creates a new game standing in the cellar
func BuildGame() *state.Game {
	g := state.NewGame()
	slog.Info("new game", "room", g.Room)
	return g
}

// StartRoomTransition begins fading to black. The room switches at the darkest frame.
func StartRoomTransition(g *state.Game, target state.Room) {
	g.Fader.Start(int(target))
	slog.Debug("room transition started", "from", g.Room, "to", target)
}

// UpdateTransition steps the fade one frame and commits the target room at the peak
func UpdateTransition(g *state.Game) {
	if g.Fader.Step() {
		g.Room = state.Room(g.Fader.Target)
		slog.Info("entered room", "room", g.Room)
	}
}

// Tick advances every per-frame effect in a fixed order
func Tick(g *state.Game, now int64) {
	if g.Room == state.RoomCellar && g.Key.Visible() {
		g.PlaceKeyOnChest()
	}

	if g.RopeFalling && g.Room == state.RoomCellar {
		lowerRope(g)
	}

	if g.Dragging == nil && g.PointerHeld {
		beginSlotDrag(g)
	}

	if g.Dragging != nil && !g.PointerHeld {
		DropDraggedItem(g, g.Pointer)
	}

	g.Animations.Update(now)
	UpdateTransition(g)
	g.TickMessage()
}

// lowerRope drops the rope one step toward its resting height
func lowerRope(g *state.Game) {
	g.Rope.Rect.Y += state.RopeFallSpeed
	if g.Rope.Rect.Y >= state.RopeRestY {
		g.Rope.Rect.Y = state.RopeRestY
		g.RopeFalling = false
	}
}

// beginSlotDrag lifts the item under the held pointer out of the slot bar
func beginSlotDrag(g *state.Game) {
	slot, ok := inventory.SlotAt(g.Pointer)
	if !ok {
		return
	}
	item, ok := g.Inventory.BeginDragFromSlot(slot, g.Dragging != nil)
	if !ok {
		return
	}
	origin := inventory.SlotRect(slot).TopLeft()
	g.Dragging = &item
	g.DragOffset = geom.Pt(origin.X-g.Pointer.X, origin.Y-g.Pointer.Y)
}

// DropDraggedItem releases the held inventory item at p. Shards return to where they
// were found and the key is put back in the world; anything else is discarded.
func DropDraggedItem(g *state.Game, p geom.Point) {
	item := g.Dragging
	if item == nil {
		return
	}
	g.Dragging = nil

	switch {
	case g.IsShard(item.Name):
		if frag := g.Shard(item.Name); frag != nil {
			frag.ReturnHome()
		}
		g.ShowMessage(MsgShardDropped)

	case item.Name == entities.NameKey:
		g.Key = entities.NewPuzzleObject(entities.NameKey, geom.R(p.X-16, p.Y-16, 32, 32), entities.ColorKey)
		g.HasKey = false
		g.ShowMessage(MsgKeyDropped)

	default:
		slog.Warn("dropped item discarded", "item", item.Name)
		g.ShowMessage(MsgItemDropped, item.Name)
	}
}
