package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escaperoom/pkg/engine/anim"
	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/game/assets"
	"escaperoom/pkg/game/inventory"
	"escaperoom/pkg/game/keypad"
	"escaperoom/pkg/game/state"
)

func sprites(list []Directive) []string {
	var ids []string
	for _, d := range list {
		if d.Kind == KindSprite {
			ids = append(ids, d.Sprite)
		}
	}
	return ids
}

func find(t *testing.T, list []Directive, id string) Directive {
	t.Helper()
	for _, d := range list {
		if d.Sprite == id {
			return d
		}
	}
	t.Fatalf("no directive for sprite %q", id)
	return Directive{}
}

func TestBuild_CellarOrder(t *testing.T) {
	g := state.NewGame()
	list := Build(g, 0)

	ids := sprites(list)
	require.GreaterOrEqual(t, len(ids), 4)
	assert.Equal(t, []string{assets.SpriteCellar, assets.SpriteDoor, assets.SpriteChest, assets.SpriteKey}, ids[:4])
	assert.NotContains(t, ids, assets.SpriteRope, "rope is hidden until released")
	assert.Equal(t, state.Playfield, list[0].Bounds)
}

func TestBuild_OpenDoorSprite(t *testing.T) {
	g := state.NewGame()
	g.Door().Open = true
	assert.Contains(t, sprites(Build(g, 0)), assets.SpriteDoorOpen)
}

func TestBuild_VaultKeypad(t *testing.T) {
	g := state.NewGame()
	g.Room = state.RoomVault
	g.Keypad.Press(1)
	g.Pointer = g.Keypad.ButtonRect(4).Center()

	list := Build(g, 0)

	var buttons []Directive
	var typed string
	for _, d := range list {
		if d.Sprite == assets.SpriteButton {
			buttons = append(buttons, d)
		}
		if d.Kind == KindText && d.Color == Black {
			typed = d.Text
		}
	}
	require.Len(t, buttons, keypad.ButtonCount)
	assert.Equal(t, uint8(OpacityHovered), buttons[4].Opacity)
	assert.Equal(t, uint8(255), buttons[3].Opacity)
	assert.Equal(t, "2", typed)

	g.PointerHeld = true
	list = Build(g, 0)
	for _, d := range list {
		if d.Sprite == assets.SpriteButton && d.Bounds == g.Keypad.ButtonRect(4) {
			assert.Equal(t, uint8(OpacityPressed), d.Opacity)
		}
	}

	display := find(t, list, assets.SpriteKeypadDisplay)
	assert.Equal(t, 2, display.BorderWidth)
	assert.Equal(t, White, display.Fill)
}

func TestBuild_AtticHidesCollectedShards(t *testing.T) {
	g := state.NewGame()
	g.Room = state.RoomAttic
	g.Fragments[1].Collected = true

	count := 0
	for _, id := range sprites(Build(g, 0)) {
		if id == assets.SpriteShard {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestBuild_FadeOverlay(t *testing.T) {
	g := state.NewGame()
	assert.Equal(t, uint8(0), FadeOpacity(Build(g, 0)))

	g.Fader.Start(int(state.RoomVault))
	for i := 0; i < 5; i++ {
		g.Fader.Step()
	}
	g.ShowMessage("MSG_NEED_KEY")

	list := Build(g, 0)
	assert.Equal(t, uint8(60), FadeOpacity(list))

	last := list[len(list)-1]
	assert.Equal(t, KindText, last.Kind, "message is drawn above the fade")
	assert.True(t, last.Translate)
	assert.Equal(t, AlignRight, last.Align)
}

func TestBuild_InventoryAndTooltip(t *testing.T) {
	g := state.NewGame()
	g.Inventory.Add(state.KeyItem())
	g.Pointer = inventory.SlotCenter(0)

	list := Build(g, 0)

	item := find(t, list, assets.SpriteKey)
	assert.Equal(t, geom.R(15, 15, 54, 54), item.Bounds)

	tip := list[len(list)-1]
	require.Equal(t, KindTooltip, tip.Kind)
	assert.Equal(t, "ITEM_KEY_DESC", tip.Text)
	assert.Equal(t, geom.Pt(52, 52), tip.Bounds.TopLeft())
}

func TestBuild_DraggedItemTrailsPointer(t *testing.T) {
	g := state.NewGame()
	item := state.KeyItem()
	g.Dragging = &item
	g.DragOffset = geom.Pt(-10, -10)
	g.Pointer = geom.Pt(300, 300)
	g.PointerHeld = true

	var dragged *Directive
	list := Build(g, 0)
	for i := range list {
		if list[i].Sprite == assets.SpriteKey && list[i].Bounds.X == 310 {
			dragged = &list[i]
		}
	}
	require.NotNil(t, dragged)
	assert.Equal(t, geom.R(310, 310, 54, 54), dragged.Bounds)
	for _, d := range list {
		assert.NotEqual(t, KindTooltip, d.Kind, "no tooltip while dragging")
	}
}

func TestBuild_Animations(t *testing.T) {
	g := state.NewGame()
	v := anim.Visual{Fill: Yellow}
	g.Animations.Add(anim.NewUse(v, geom.Pt(500, 500), geom.Pt(32, 32), 0, anim.UseDuration))

	list := Build(g, 300)
	var got *Directive
	for i := range list {
		if list[i].Kind == KindRect && list[i].Fill == Yellow {
			got = &list[i]
		}
	}
	require.NotNil(t, got, "sprite-less tokens draw as rectangles")
	assert.Equal(t, uint8(127), got.Opacity)
	assert.Equal(t, 19, got.Bounds.W)
}
