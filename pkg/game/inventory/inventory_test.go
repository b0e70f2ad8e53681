package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escaperoom/pkg/engine/geom"
)

func item(name string, kind Kind) Item {
	return Item{Kind: kind, Name: name, Description: "DESC_" + name}
}

func TestAddAndRemoveByName(t *testing.T) {
	inv := New()
	inv.Add(item("key", KindKey))
	inv.Add(item("vase_frag1", KindShard))
	inv.Add(item("vase_frag2", KindShard))

	require.True(t, inv.Has("key"))
	assert.True(t, inv.RemoveByName("key"))
	assert.False(t, inv.Has("key"))
	assert.False(t, inv.RemoveByName("key"))

	names := []string{}
	for _, it := range inv.Items() {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"vase_frag1", "vase_frag2"}, names, "order is preserved")
}

func TestRemoveAllByName(t *testing.T) {
	inv := New()
	inv.Add(item("key", KindKey))
	inv.Add(item("vase_frag1", KindShard))
	inv.Add(item("key", KindKey))

	assert.Equal(t, 2, inv.RemoveAllByName("key"))
	assert.Equal(t, 1, inv.Len())
	assert.Equal(t, 0, inv.RemoveAllByName("key"))
}

func TestOverflowIsKeptButHidden(t *testing.T) {
	inv := New()
	for _, n := range []string{"a", "b", "c", "d"} {
		inv.Add(item(n, KindOther))
	}

	assert.Equal(t, 4, inv.Len())
	assert.Len(t, inv.Visible(), SlotCount)

	_, ok := inv.BeginDragFromSlot(3, false)
	assert.False(t, ok, "items past the bar cannot be picked")
	assert.Equal(t, 4, inv.Len())
}

func TestBeginDragFromSlot(t *testing.T) {
	inv := New()
	inv.Add(item("key", KindKey))
	inv.Add(item("vase_frag1", KindShard))

	_, ok := inv.BeginDragFromSlot(0, true)
	assert.False(t, ok, "only one item can be dragged at a time")

	_, ok = inv.BeginDragFromSlot(2, false)
	assert.False(t, ok, "empty slot")

	got, ok := inv.BeginDragFromSlot(1, false)
	require.True(t, ok)
	assert.Equal(t, "vase_frag1", got.Name)
	assert.False(t, inv.Has("vase_frag1"), "a dragged item is not in the inventory")
	assert.Equal(t, 1, inv.Len())
}

func TestSlotLayout(t *testing.T) {
	assert.Equal(t, geom.R(10, 10, 64, 64), SlotRect(0))
	assert.Equal(t, geom.R(150, 10, 64, 64), SlotRect(2))
	assert.Equal(t, geom.Pt(42, 42), SlotCenter(0))
	assert.Equal(t, geom.Pt(252, 42), SlotCenter(3), "off-bar slots continue the row")

	i, ok := SlotAt(geom.Pt(100, 20))
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = SlotAt(geom.Pt(77, 20))
	assert.False(t, ok, "padding between slots")

	_, ok = SlotAt(SlotCenter(3))
	assert.False(t, ok)
}

func TestAt(t *testing.T) {
	inv := New()
	inv.Add(item("key", KindKey))

	it, ok := inv.At(0)
	require.True(t, ok)
	assert.Equal(t, KindKey, it.Kind)

	_, ok = inv.At(1)
	assert.False(t, ok)
	_, ok = inv.At(-1)
	assert.False(t, ok)
}
