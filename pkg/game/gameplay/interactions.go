package gameplay

import (
	"log/slog"

	"escaperoom/pkg/engine/anim"
	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/inventory"
	"escaperoom/pkg/game/state"
)

// SolutionCode is the keypad code that lowers the rope
const SolutionCode = "25167"

// RopeTolerance is the furthest the chest center may sit from the rope center
// for the player to reach the rope by standing on the chest
const RopeTolerance = 50

// HandleClick dispatches a primary click at p. The first handler that claims the click wins.
// Clicks are ignored while a room transition is running.
func HandleClick(g *state.Game, p geom.Point, now int64) {
	if g.Fader.Active() {
		return
	}

	if g.Room == state.RoomVault && useKeypad(g, p) {
		return
	}

	if g.Room == state.RoomCellar && g.Key.Hit(p) {
		pickUpKey(g, now)
		return
	}

	if g.Room == state.RoomCellar && g.Chest.BeginDrag(p) {
		return
	}

	if door := g.Door(); door != nil && door.Rect.Contains(p) {
		if useDoor(g, door, p, now) {
			return
		}
	}

	if g.Room == state.RoomCellar && g.Rope.Hit(p) {
		climbRope(g)
		return
	}

	if g.Room == state.RoomAttic {
		pickUpShard(g, p, now)
	}
}

// useKeypad presses the button under p. Only a non-empty submitted code claims the click.
func useKeypad(g *state.Game, p geom.Point) bool {
	code, submitted := g.Keypad.Click(p)
	if !submitted || code == "" {
		return false
	}

	slog.Debug("keypad code submitted", "code", code)
	g.ShowMessage(MsgCodeEntered, code)

	if code == SolutionCode {
		g.Rope.Collected = false
		g.Rope.Rect.Y = -g.Rope.Rect.H
		g.RopeFalling = true
		g.ShowMessage(MsgRopeDescends)
		slog.Info("rope released")
	}
	return true
}

// pickUpKey moves the key from the top of the chest into the inventory
func pickUpKey(g *state.Game, now int64) {
	g.Key.Collected = true
	g.HasKey = true

	item := state.KeyItem()
	if !g.Inventory.Has(item.Name) {
		g.Inventory.Add(item)
	}
	slot := g.Inventory.Len() - 1
	g.Animations.Add(anim.NewPickup(item.Visual, g.Key.Rect.Center(), inventory.SlotCenter(slot), g.Key.Size(), now, anim.PickupDuration))
	g.ShowMessage(MsgKeyPickedUp)
}

// useDoor handles a click on the current room's door. Returns false when the door
// does not react, letting the click fall through.
func useDoor(g *state.Game, door *entities.PuzzleObject, p geom.Point, now int64) bool {
	switch g.Room {
	case state.RoomCellar:
		if door.Open {
			StartRoomTransition(g, state.RoomVault)
			g.ShowMessage(MsgEnteredVault)
			return true
		}
		switch {
		case g.Chest.Rect.Overlaps(door.Rect):
			g.ShowMessage(MsgChestBlocks)
		case !g.HasKey:
			g.ShowMessage(MsgNeedKey)
		default:
			unlockDoor(g, door, p, now)
		}
		return true

	case state.RoomVault:
		StartRoomTransition(g, state.RoomCellar)
		g.ShowMessage(MsgReturnedCellar)
		return true
	}
	return false
}

// unlockDoor opens the door and consumes the key
func unlockDoor(g *state.Game, door *entities.PuzzleObject, p geom.Point, now int64) {
	door.Open = true
	g.EmitCue(state.CueDoorOpen)

	key := state.KeyItem()
	g.Animations.Add(anim.NewUse(key.Visual, p, g.Key.Size(), now, anim.UseDuration))
	g.Inventory.RemoveAllByName(key.Name)
	g.HasKey = false

	g.ShowMessage(MsgDoorOpened)
	slog.Info("door opened", "room", g.Room)
}

// climbRope moves to the attic when the chest stands under the rope
func climbRope(g *state.Game) {
	if geom.Abs(g.Chest.Rect.CenterX()-g.Rope.Rect.CenterX()) > RopeTolerance {
		g.ShowMessage(MsgRopeTooHigh)
		return
	}
	StartRoomTransition(g, state.RoomAttic)
	g.Rope.Collected = true
	g.ShowMessage(MsgClimbedRope)
}

// pickUpShard collects the first uncollected fragment under p
func pickUpShard(g *state.Game, p geom.Point, now int64) {
	for _, frag := range g.Fragments {
		if !frag.Hit(p) {
			continue
		}
		frag.Collected = true
		g.Inventory.Add(state.ShardItem(frag))

		slot := g.Inventory.Len() - 1
		v := anim.Visual{Fill: frag.Fill}
		g.Animations.Add(anim.NewPickup(v, frag.Rect.Center(), inventory.SlotCenter(slot), frag.Size(), now, anim.PickupDuration))
		g.ShowMessage(MsgShardPickedUp)
		slog.Debug("shard collected", "shard", frag.Name, "carried", g.Inventory.Len())
		return
	}
}
