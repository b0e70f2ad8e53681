package entities

import (
	"image/color"

	"escaperoom/pkg/engine/geom"
)

// dragDamping is the fraction of the remaining distance covered per pointer update.
// Applied per update rather than per second, so the feel is tied to the frame rate.
const dragDamping = 0.5

// Draggable is a heavy prop that slides horizontally along the floor
type Draggable struct {
	Name     string
	Rect     geom.Rect
	Fill     color.RGBA
	Dragging bool

	offsetX int
	fixedY  int
	bounds  geom.Rect
}

// NewDraggable creates a prop pinned to the vertical position of r and kept inside bounds
func NewDraggable(name string, r geom.Rect, fill color.RGBA, bounds geom.Rect) *Draggable {
	return &Draggable{
		Name:   name,
		Rect:   r,
		Fill:   fill,
		fixedY: r.Y,
		bounds: bounds,
	}
}

// BeginDrag starts dragging if p is on the prop. Only the horizontal grab offset is kept.
func (d *Draggable) BeginDrag(p geom.Point) bool {
	if !d.Rect.Contains(p) {
		return false
	}
	d.Dragging = true
	d.offsetX = d.Rect.X - p.X
	return true
}

// EndDrag releases the prop
func (d *Draggable) EndDrag() {
	d.Dragging = false
}

// Update eases the prop toward the pointer while dragging
func (d *Draggable) Update(p geom.Point) {
	if !d.Dragging {
		return
	}
	target := p.X + d.offsetX
	d.Rect.X += int(float64(target-d.Rect.X) * dragDamping)
	d.Rect.Y = d.fixedY
	d.Rect = d.Rect.ClampInside(d.bounds)
}
