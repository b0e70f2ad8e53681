// Package anim provides timestamp-driven visual tokens and the room transition fader.
package anim

import (
	"image/color"

	"escaperoom/pkg/engine/geom"
)

// Kind distinguishes the two animation flavours. Both share the same interpolation.
type Kind int

const (
	// KindPickup moves a visual to an inventory slot at constant scale and opacity
	KindPickup Kind = iota
	// KindUse shrinks and fades a visual in place
	KindUse
)

// Default durations in milliseconds
const (
	PickupDuration = 500
	UseDuration    = 600
)

// Visual identifies what a token draws: a sprite, or a flat rectangle when Sprite is empty
// or cannot be loaded.
type Visual struct {
	Sprite string
	Fill   color.RGBA
}

// Token is one running animation. Tokens are immutable once created.
type Token struct {
	Kind         Kind
	Visual       Visual
	Start        geom.Point // Center at t=0
	End          geom.Point // Center at t=1
	Size         geom.Point // Unscaled width/height
	StartTime    int64      // Milliseconds
	Duration     int64      // Milliseconds, always > 0
	StartScale   float64
	EndScale     float64
	StartOpacity float64 // 0-255
	EndOpacity   float64 // 0-255
}

// Frame is a token sampled at a point in time
type Frame struct {
	X, Y    float64 // Center
	Scale   float64
	Opacity uint8
}

// NewPickup creates a translation-only token moving a visual from start to end
func NewPickup(v Visual, start, end, size geom.Point, now, duration int64) Token {
	return Token{
		Kind:         KindPickup,
		Visual:       v,
		Start:        start,
		End:          end,
		Size:         size,
		StartTime:    now,
		Duration:     clampDuration(duration),
		StartScale:   1.0,
		EndScale:     1.0,
		StartOpacity: 255,
		EndOpacity:   255,
	}
}

// NewUse creates a shrink-and-vanish token anchored at a single point
func NewUse(v Visual, at, size geom.Point, now, duration int64) Token {
	return Token{
		Kind:         KindUse,
		Visual:       v,
		Start:        at,
		End:          at,
		Size:         size,
		StartTime:    now,
		Duration:     clampDuration(duration),
		StartScale:   1.0,
		EndScale:     0.2,
		StartOpacity: 255,
		EndOpacity:   0,
	}
}

func clampDuration(d int64) int64 {
	if d < 1 {
		return 1
	}
	return d
}

// Progress returns t = clamp((now - start) / duration, 0, 1)
func (t Token) Progress(now int64) float64 {
	p := float64(now-t.StartTime) / float64(t.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Done reports whether the token has reached t == 1
func (t Token) Done(now int64) bool {
	return now-t.StartTime >= t.Duration
}

// Sample linearly interpolates position, scale and opacity at now
func (t Token) Sample(now int64) Frame {
	p := t.Progress(now)
	return Frame{
		X:       lerp(float64(t.Start.X), float64(t.End.X), p),
		Y:       lerp(float64(t.Start.Y), float64(t.End.Y), p),
		Scale:   lerp(t.StartScale, t.EndScale, p),
		Opacity: uint8(lerp(t.StartOpacity, t.EndOpacity, p)),
	}
}

// Bounds returns the on-screen rectangle for a frame of a token of the given size.
// Scaled dimensions never drop below one pixel.
func (f Frame) Bounds(size geom.Point) geom.Rect {
	w := int(float64(size.X) * f.Scale)
	h := int(float64(size.Y) * f.Scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return geom.CenteredAt(geom.Pt(int(f.X), int(f.Y)), w, h)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Set is the collection of running tokens. Tokens are independent of one another.
type Set struct {
	tokens []Token
}

// Add starts a token
func (s *Set) Add(t Token) {
	s.tokens = append(s.tokens, t)
}

// Update discards every token that has completed at now
func (s *Set) Update(now int64) {
	kept := s.tokens[:0]
	for _, t := range s.tokens {
		if !t.Done(now) {
			kept = append(kept, t)
		}
	}
	// Zero the tail so dropped tokens do not linger in the backing array
	for i := len(kept); i < len(s.tokens); i++ {
		s.tokens[i] = Token{}
	}
	s.tokens = kept
}

// Active returns a copy of the running tokens in start order
func (s *Set) Active() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Len returns the number of running tokens
func (s *Set) Len() int {
	return len(s.tokens)
}
