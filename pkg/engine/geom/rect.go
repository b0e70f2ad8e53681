// Package geom provides integer screen-space geometry for hit testing and layout.
package geom

// Point is a position in screen pixels
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
// Right and Bottom edges are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// TopLeft returns the origin of the rectangle
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// CenterX returns the horizontal center, rounded down
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the vertical center, rounded down
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Center returns the center point of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.CenterX(), Y: r.CenterY()}
}

// Contains reports whether p lies inside the rectangle.
// Points on the right or bottom edge are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Overlaps reports whether two rectangles share any area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// MoveTo returns a copy of r with its origin at p
func (r Rect) MoveTo(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// WithCenterX returns a copy of r moved horizontally so its center is at x
func (r Rect) WithCenterX(x int) Rect {
	r.X = x - r.W/2
	return r
}

// CenteredAt returns a rectangle of size w×h centered on p
func CenteredAt(p Point, w, h int) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}
}

// ClampInside moves r the minimum distance needed to lie inside bounds.
// A rectangle larger than bounds is centered on it along that axis.
func (r Rect) ClampInside(bounds Rect) Rect {
	if r.W >= bounds.W {
		r.X = bounds.X + (bounds.W-r.W)/2
	} else if r.X < bounds.X {
		r.X = bounds.X
	} else if r.Right() > bounds.Right() {
		r.X = bounds.Right() - r.W
	}

	if r.H >= bounds.H {
		r.Y = bounds.Y + (bounds.H-r.H)/2
	} else if r.Y < bounds.Y {
		r.Y = bounds.Y
	} else if r.Bottom() > bounds.Bottom() {
		r.Y = bounds.Bottom() - r.H
	}

	return r
}

// Inset shrinks the rectangle by n pixels on every side
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Abs returns the absolute value of an integer
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
