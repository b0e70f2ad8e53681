// Package entities contains the physical props of the dungeon: puzzle objects, doors
// and the draggable chest.
package entities

import (
	"image/color"

	"escaperoom/pkg/engine/geom"
)

// Object names
const (
	NameDoor   = "door"
	NameKey    = "key"
	NameRope   = "rope"
	NameChest  = "chest"
	NameShard1 = "vase_frag1"
	NameShard2 = "vase_frag2"
	NameShard3 = "vase_frag3"
)

// Fallback colors used when a sprite is missing
var (
	ColorDoor  = color.RGBA{0, 255, 0, 255}
	ColorKey   = color.RGBA{255, 255, 0, 255}
	ColorRope  = color.RGBA{255, 255, 0, 255}
	ColorChest = color.RGBA{128, 128, 128, 255}
)

// PuzzleObject is a clickable prop with a fixed home position.
// Collected means the object is out of the world: held, consumed or not yet revealed.
type PuzzleObject struct {
	Name      string
	Rect      geom.Rect
	Home      geom.Point
	Fill      color.RGBA
	Collected bool
	Open      bool
}

// NewPuzzleObject creates an object whose home is its starting position
func NewPuzzleObject(name string, r geom.Rect, fill color.RGBA) *PuzzleObject {
	return &PuzzleObject{
		Name: name,
		Rect: r,
		Home: r.TopLeft(),
		Fill: fill,
	}
}

// Visible reports whether the object is in the world
func (o *PuzzleObject) Visible() bool {
	return !o.Collected
}

// Hit reports whether p lands on the object while it is in the world
func (o *PuzzleObject) Hit(p geom.Point) bool {
	return !o.Collected && o.Rect.Contains(p)
}

// ReturnHome puts the object back in the world at its home position
func (o *PuzzleObject) ReturnHome() {
	o.Rect = o.Rect.MoveTo(o.Home)
	o.Collected = false
}

// Size returns the width and height as a point
func (o *PuzzleObject) Size() geom.Point {
	return geom.Pt(o.Rect.W, o.Rect.H)
}
