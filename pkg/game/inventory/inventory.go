// Package inventory holds the items the player carries and the slot bar layout.
package inventory

import (
	"escaperoom/pkg/engine/anim"
	"escaperoom/pkg/engine/geom"
)

// Kind is the category of a carried item
type Kind int

const (
	KindOther Kind = iota
	KindKey
	KindShard
)

// Item is one carried item. Names are unique per physical object
// (each vase shard has its own name), so only the key needs an explicit duplicate check.
type Item struct {
	Kind        Kind
	Name        string
	Visual      anim.Visual
	Description string // Catalogue key
}

// Slot bar layout
const (
	SlotCount   = 3
	SlotSize    = 64
	SlotPadding = 6
	OriginX     = 10
	OriginY     = 10
	// ItemInset is the margin between a slot frame and the item drawn inside it
	ItemInset = 5
)

// SlotRect returns the rectangle of slot i. Indices beyond the bar continue the row.
func SlotRect(i int) geom.Rect {
	return geom.R(OriginX+i*(SlotSize+SlotPadding), OriginY, SlotSize, SlotSize)
}

// SlotCenter returns the center of slot i
func SlotCenter(i int) geom.Point {
	return SlotRect(i).Center()
}

// SlotAt returns the visible slot under p
func SlotAt(p geom.Point) (int, bool) {
	for i := 0; i < SlotCount; i++ {
		if SlotRect(i).Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// Inventory is an ordered list of items. It can grow beyond the visible slots;
// extra items are kept but never drawn or picked from the bar.
type Inventory struct {
	items []Item
}

// New creates an empty inventory
func New() *Inventory {
	return &Inventory{}
}

// Add appends an item to the end
func (inv *Inventory) Add(item Item) {
	inv.items = append(inv.items, item)
}

// Len returns the number of carried items, visible or not
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Items returns a copy of all carried items
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Visible returns the items shown in the slot bar
func (inv *Inventory) Visible() []Item {
	n := len(inv.items)
	if n > SlotCount {
		n = SlotCount
	}
	out := make([]Item, n)
	copy(out, inv.items[:n])
	return out
}

// At returns the item in slot i
func (inv *Inventory) At(i int) (Item, bool) {
	if i < 0 || i >= len(inv.items) {
		return Item{}, false
	}
	return inv.items[i], true
}

// Has reports whether an item with the given name is carried
func (inv *Inventory) Has(name string) bool {
	for _, it := range inv.items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// RemoveByName removes the first item with the given name
func (inv *Inventory) RemoveByName(name string) bool {
	for i, it := range inv.items {
		if it.Name == name {
			inv.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveAllByName removes every item with the given name and returns how many were removed
func (inv *Inventory) RemoveAllByName(name string) int {
	kept := inv.items[:0]
	removed := 0
	for _, it := range inv.items {
		if it.Name == name {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	inv.items = kept
	return removed
}

// BeginDragFromSlot lifts the item in visible slot i out of the inventory.
// Fails when another item is already being dragged or the slot is empty or off the bar.
func (inv *Inventory) BeginDragFromSlot(i int, alreadyDragging bool) (Item, bool) {
	if alreadyDragging || i < 0 || i >= SlotCount || i >= len(inv.items) {
		return Item{}, false
	}
	item := inv.items[i]
	inv.removeAt(i)
	return item, true
}

func (inv *Inventory) removeAt(i int) {
	inv.items = append(inv.items[:i], inv.items[i+1:]...)
}
