// Package scene turns the game state into an ordered list of draw directives.
// It owns no textures; the renderer resolves sprite IDs and falls back to Fill.
package scene

import (
	"image/color"

	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/game/assets"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/inventory"
	"escaperoom/pkg/game/keypad"
	"escaperoom/pkg/game/state"
)

// Kind is the type of a draw directive
type Kind int

const (
	// KindSprite draws a sprite stretched to Bounds, or a Fill rectangle when it is missing
	KindSprite Kind = iota
	// KindRect fills Bounds
	KindRect
	// KindText draws Text at Bounds.X, Bounds.Y
	KindText
	// KindTooltip draws Text on a framed panel anchored at Bounds.X, Bounds.Y
	KindTooltip
)

// Align is the horizontal anchoring of text
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Palette
var (
	White    = color.RGBA{255, 255, 255, 255}
	Black    = color.RGBA{0, 0, 0, 255}
	Gray     = color.RGBA{128, 128, 128, 255}
	DarkGray = color.RGBA{64, 64, 64, 255}
	Yellow   = color.RGBA{255, 255, 0, 255}
)

// Button opacities
const (
	OpacityPressed = 100
	OpacityHovered = 200
)

// DragLag is how far the dragged item trails behind the pointer
const DragLag = 20

// Message position
const (
	messageMargin = 10
)

var roomBackdrop = map[state.Room]struct {
	sprite string
	fill   color.RGBA
}{
	state.RoomCellar: {assets.SpriteCellar, color.RGBA{34, 28, 24, 255}},
	state.RoomVault:  {assets.SpriteVault, color.RGBA{24, 28, 34, 255}},
	state.RoomAttic:  {assets.SpriteAttic, color.RGBA{40, 34, 26, 255}},
}

// Directive is one draw instruction
type Directive struct {
	Kind    Kind
	Sprite  string
	Bounds  geom.Rect
	Opacity uint8
	Fill    color.RGBA

	// Border is stroked inside Bounds when BorderWidth > 0
	Border      color.RGBA
	BorderWidth int

	// Text is a catalogue key when Translate is set, otherwise drawn as is
	Text      string
	Args      []any
	Translate bool
	Align     Align
	Color     color.RGBA
}

func sprite(id string, r geom.Rect, fill color.RGBA) Directive {
	return Directive{Kind: KindSprite, Sprite: id, Bounds: r, Opacity: 255, Fill: fill}
}

func rect(r geom.Rect, fill color.RGBA, opacity uint8) Directive {
	return Directive{Kind: KindRect, Bounds: r, Opacity: opacity, Fill: fill}
}

// Build produces the draw list for the current frame, back to front
func Build(g *state.Game, now int64) []Directive {
	var out []Directive

	bg := roomBackdrop[g.Room]
	out = append(out, sprite(bg.sprite, state.Playfield, bg.fill))

	switch g.Room {
	case state.RoomCellar:
		out = append(out, door(g.Door()))
		out = append(out, sprite(assets.SpriteChest, g.Chest.Rect, g.Chest.Fill))
		if g.Key.Visible() {
			out = append(out, sprite(assets.SpriteKey, g.Key.Rect, g.Key.Fill))
		}
		if g.Rope.Visible() {
			out = append(out, sprite(assets.SpriteRope, g.Rope.Rect, g.Rope.Fill))
		}
	case state.RoomVault:
		out = append(out, door(g.Door()))
		out = append(out, keypadDirectives(g)...)
	case state.RoomAttic:
		out = append(out, door(g.Door()))
		for _, frag := range g.Fragments {
			if frag.Visible() {
				out = append(out, sprite(assets.SpriteShard, frag.Rect, frag.Fill))
			}
		}
	}

	out = append(out, inventoryDirectives(g)...)

	for _, tok := range g.Animations.Active() {
		f := tok.Sample(now)
		d := sprite(tok.Visual.Sprite, f.Bounds(tok.Size), tok.Visual.Fill)
		if tok.Visual.Sprite == "" {
			d.Kind = KindRect
		}
		d.Opacity = f.Opacity
		out = append(out, d)
	}

	if g.Fader.Active() {
		out = append(out, rect(state.Playfield, Black, uint8(g.Fader.Alpha)))
	}

	if g.Message.Active() {
		out = append(out, Directive{
			Kind:      KindText,
			Bounds:    geom.R(state.ScreenWidth-messageMargin, messageMargin, 0, 0),
			Opacity:   255,
			Text:      g.Message.Key,
			Args:      g.Message.Args,
			Translate: true,
			Align:     AlignRight,
			Color:     Yellow,
		})
	}

	return out
}

func door(d *entities.PuzzleObject) Directive {
	id := assets.SpriteDoor
	if d.Open {
		id = assets.SpriteDoorOpen
	}
	return sprite(id, d.Rect, d.Fill)
}

func keypadDirectives(g *state.Game) []Directive {
	k := g.Keypad
	out := []Directive{sprite(assets.SpriteKeypad, k.Body(), DarkGray)}

	display := sprite(assets.SpriteKeypadDisplay, k.Display(), White)
	display.Border = Black
	display.BorderWidth = 2
	out = append(out, display)

	out = append(out, Directive{
		Kind:    KindText,
		Bounds:  geom.R(k.Display().CenterX(), k.Display().CenterY(), 0, 0),
		Opacity: 255,
		Text:    k.Input(),
		Align:   AlignCenter,
		Color:   Black,
	})

	hovered, isHovered := k.ButtonAt(g.Pointer)
	for idx := 0; idx < keypad.ButtonCount; idx++ {
		b := sprite(assets.SpriteButton, k.ButtonRect(idx), Gray)
		if isHovered && idx == hovered {
			b.Opacity = OpacityHovered
			if g.PointerHeld {
				b.Opacity = OpacityPressed
			}
		}
		out = append(out, b)
	}
	return out
}

func inventoryDirectives(g *state.Game) []Directive {
	var out []Directive

	for i := 0; i < inventory.SlotCount; i++ {
		slot := sprite(assets.SpriteSlot, inventory.SlotRect(i), DarkGray)
		slot.Border = Black
		slot.BorderWidth = 2
		out = append(out, slot)
	}

	for i, item := range g.Inventory.Visible() {
		r := inventory.SlotRect(i).Inset(inventory.ItemInset)
		out = append(out, sprite(item.Visual.Sprite, r, Yellow))
	}

	if g.Dragging != nil {
		size := inventory.SlotSize - 2*inventory.ItemInset
		at := geom.Pt(g.Pointer.X+g.DragOffset.X+DragLag, g.Pointer.Y+g.DragOffset.Y+DragLag)
		out = append(out, sprite(g.Dragging.Visual.Sprite, geom.R(at.X, at.Y, size, size), Yellow))
		return out
	}

	if i, ok := inventory.SlotAt(g.Pointer); ok {
		if item, ok := g.Inventory.At(i); ok && item.Description != "" {
			out = append(out, Directive{
				Kind:      KindTooltip,
				Bounds:    geom.R(g.Pointer.X+10, g.Pointer.Y+10, 0, 0),
				Opacity:   255,
				Fill:      DarkGray,
				Border:    White,
				Text:      item.Description,
				Translate: true,
				Color:     White,
			})
		}
	}

	return out
}

// FadeOpacity returns the opacity of the fade overlay in a draw list, or 0 when there is none
func FadeOpacity(list []Directive) uint8 {
	for _, d := range list {
		if d.Kind == KindRect && d.Bounds == state.Playfield && d.Fill == Black {
			return d.Opacity
		}
	}
	return 0
}
