package entities

import (
	"image/color"

	"escaperoom/pkg/engine/geom"
)

// DoorTemplate describes the door shared by every room. Each room gets its own
// instance so moving or opening one never affects another.
type DoorTemplate struct {
	Rect geom.Rect
	Fill color.RGBA
}

// DefaultDoor is the door as it stands in the cellar
var DefaultDoor = DoorTemplate{
	Rect: geom.R(650, 235, 400, 400),
	Fill: ColorDoor,
}

// AtticDoorLift is how far the attic door sits above the cellar door
const AtticDoorLift = 86

// Instance creates a door shifted vertically by dy pixels
func (t DoorTemplate) Instance(dy int, open bool) *PuzzleObject {
	r := t.Rect
	r.Y += dy
	d := NewPuzzleObject(NameDoor, r, t.Fill)
	d.Open = open
	return d
}
