package console

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"

	"escaperoom/pkg/game/state"
)

func plain(key string, args ...any) string {
	if len(args) == 0 {
		return key
	}
	return fmt.Sprintf(key, args...)
}

func newPrinter() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	p := New(&buf, plain)
	p.SetWidth(80)
	return p, &buf
}

func TestMessages(t *testing.T) {
	p, buf := newPrinter()
	p.Messages(state.RoomVault, []state.Message{
		{Key: "Code entered: %s", Args: []any{"25167"}},
		{Key: "hello"},
	})

	assert.Equal(t, "[vault] Code entered: 25167\n[vault] hello\n", color.ClearCode(buf.String()))
}

func TestMessagesTruncated(t *testing.T) {
	p, buf := newPrinter()
	p.SetWidth(12)
	p.Messages(state.RoomCellar, []state.Message{{Key: "a very long message"}})
	assert.Equal(t, "[cellar] ve…\n", color.ClearCode(buf.String()))

	buf.Reset()
	p.SetWidth(4)
	p.Messages(state.RoomCellar, []state.Message{{Key: "x"}})
	assert.Equal(t, "[ce…\n", color.ClearCode(buf.String()))
}

func TestRoomDescriptions(t *testing.T) {
	p, buf := newPrinter()
	g := state.NewGame()

	p.Room(g)
	out := color.ClearCode(buf.String())
	assert.Contains(t, out, "== cellar ==")
	assert.Contains(t, out, "door closed at 650,235")
	assert.Contains(t, out, "chest at 100,500")
	assert.Contains(t, out, "key at 159,463")
	assert.NotContains(t, out, "rope")

	buf.Reset()
	g.Room = state.RoomAttic
	g.Fragments[0].Collected = true
	p.Room(g)
	out = color.ClearCode(buf.String())
	assert.Contains(t, out, "door closed at 650,149")
	assert.NotContains(t, out, "vase_frag1")
	assert.Contains(t, out, "vase_frag2 at 400,550")
}

func TestInventory(t *testing.T) {
	p, buf := newPrinter()
	g := state.NewGame()

	p.Inventory(g)
	assert.Equal(t, "inventory empty\n", color.ClearCode(buf.String()))

	buf.Reset()
	g.Inventory.Add(state.KeyItem())
	for _, f := range g.Fragments {
		g.Inventory.Add(state.ShardItem(f))
	}
	p.Inventory(g)
	assert.Equal(t, "inventory: key, vase_frag1, vase_frag2, vase_frag3*\n", color.ClearCode(buf.String()))
}
