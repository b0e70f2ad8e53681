package state

import (
	"image/color"

	"github.com/zyedidia/generic/mapset"

	"escaperoom/pkg/engine/anim"
	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/game/assets"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/inventory"
	"escaperoom/pkg/game/keypad"
)

// Room identifies one of the three rooms
type Room int

// Rooms
const (
	RoomCellar Room = 1
	RoomVault  Room = 2
	RoomAttic  Room = 3
)

func (r Room) String() string {
	switch r {
	case RoomCellar:
		return "cellar"
	case RoomVault:
		return "vault"
	case RoomAttic:
		return "attic"
	}
	return "unknown"
}

// Cue is a fire-and-forget audio signal for the host
type Cue int

// Cues
const (
	CueDoorOpen Cue = iota + 1
)

// Screen dimensions
const (
	ScreenWidth  = 1024
	ScreenHeight = 768
)

// Playfield is the area props are clamped to
var Playfield = geom.R(0, 0, ScreenWidth, ScreenHeight)

// MessageFrames is how many frames a message stays on screen
const MessageFrames = 180

// Message is a catalogue key with its format arguments. It is translated at display time.
type Message struct {
	Key    string
	Args   []any
	Frames int
}

// Active reports whether the message is still on screen
func (m Message) Active() bool {
	return m.Key != "" && m.Frames > 0
}

// Rope geometry. The rope hangs off-screen until the code is entered.
var (
	ropeRect = geom.R(500, -500, 64, 500)
)

// RopeRestY is where the rope stops falling
const RopeRestY = -100

// RopeFallSpeed is how far the rope drops per frame
const RopeFallSpeed = 8

// KeyLift is the gap between the key and the top of the chest
const KeyLift = 5

var shardColors = [...]color.RGBA{
	{200, 100, 50, 255},
	{180, 150, 70, 255},
	{150, 180, 90, 255},
}

// Game represents the whole state of a play session
type Game struct {
	Room Room

	Doors     map[Room]*entities.PuzzleObject
	Chest     *entities.Draggable
	Key       *entities.PuzzleObject
	Rope      *entities.PuzzleObject
	Fragments []*entities.PuzzleObject // Declaration order is hit-test order

	Keypad    *keypad.Keypad
	Inventory *inventory.Inventory
	HasKey    bool

	// Dragging is the inventory item following the pointer, nil when none
	Dragging   *inventory.Item
	DragOffset geom.Point

	Message    Message
	History    []Message
	Animations anim.Set
	Fader      anim.Fader

	RopeFalling bool

	Pointer     geom.Point
	PointerHeld bool

	Quit bool

	shardNames mapset.Set[string]
	cues       []Cue
	unread     []Message
}

// NewGame creates a game standing in the cellar with every prop at its home position
func NewGame() *Game {
	g := &Game{
		Room: RoomCellar,
		Doors: map[Room]*entities.PuzzleObject{
			RoomCellar: entities.DefaultDoor.Instance(0, false),
			RoomVault:  entities.DefaultDoor.Instance(0, true),
			RoomAttic:  entities.DefaultDoor.Instance(-entities.AtticDoorLift, false),
		},
		Chest:      entities.NewDraggable(entities.NameChest, geom.R(100, 500, 150, 150), entities.ColorChest, Playfield),
		Keypad:     keypad.NewDefault(),
		Inventory:  inventory.New(),
		shardNames: mapset.New[string](),
	}

	g.Key = entities.NewPuzzleObject(entities.NameKey, geom.R(0, 0, 32, 32), entities.ColorKey)
	g.PlaceKeyOnChest()

	g.Rope = entities.NewPuzzleObject(entities.NameRope, ropeRect, entities.ColorRope)
	g.Rope.Collected = true

	for i, spot := range []struct {
		name string
		at   geom.Point
	}{
		{entities.NameShard1, geom.Pt(200, 540)},
		{entities.NameShard2, geom.Pt(400, 550)},
		{entities.NameShard3, geom.Pt(700, 520)},
	} {
		frag := entities.NewPuzzleObject(spot.name, geom.R(spot.at.X, spot.at.Y, 32, 32), shardColors[i])
		g.Fragments = append(g.Fragments, frag)
		g.shardNames.Put(spot.name)
	}

	return g
}

// Door returns the door of the current room
func (g *Game) Door() *entities.PuzzleObject {
	return g.Doors[g.Room]
}

// PlaceKeyOnChest centers the key horizontally on the chest, resting just above it
func (g *Game) PlaceKeyOnChest() {
	r := g.Key.Rect.WithCenterX(g.Chest.Rect.CenterX())
	r.Y = g.Chest.Rect.Y - r.H - KeyLift
	g.Key.Rect = r
}

// IsShard reports whether name belongs to one of the vase fragments
func (g *Game) IsShard(name string) bool {
	return g.shardNames.Has(name)
}

// Shard returns the fragment with the given name
func (g *Game) Shard(name string) *entities.PuzzleObject {
	for _, f := range g.Fragments {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// KeyItem is the inventory record for the brass key
func KeyItem() inventory.Item {
	return inventory.Item{
		Kind:        inventory.KindKey,
		Name:        entities.NameKey,
		Visual:      anim.Visual{Sprite: assets.SpriteKey, Fill: entities.ColorKey},
		Description: "ITEM_KEY_DESC",
	}
}

// ShardItem is the inventory record for a vase fragment
func ShardItem(frag *entities.PuzzleObject) inventory.Item {
	return inventory.Item{
		Kind:        inventory.KindShard,
		Name:        frag.Name,
		Visual:      anim.Visual{Sprite: assets.SpriteShard, Fill: frag.Fill},
		Description: "ITEM_SHARD_DESC",
	}
}

// ShowMessage replaces the on-screen message and restarts its countdown
func (g *Game) ShowMessage(key string, args ...any) {
	const maxHistory = 5
	m := Message{Key: key, Args: args, Frames: MessageFrames}
	g.Message = m
	g.unread = append(g.unread, m)

	g.History = append(g.History, m)
	if len(g.History) > maxHistory {
		g.History = g.History[len(g.History)-maxHistory:]
	}
}

// TickMessage counts the message down one frame and clears it when it expires
func (g *Game) TickMessage() {
	if g.Message.Frames <= 0 {
		return
	}
	g.Message.Frames--
	if g.Message.Frames == 0 {
		g.Message = Message{}
	}
}

// DrainMessages returns messages shown since the last drain
func (g *Game) DrainMessages() []Message {
	out := g.unread
	g.unread = nil
	return out
}

// EmitCue queues an audio cue for the host
func (g *Game) EmitCue(c Cue) {
	g.cues = append(g.cues, c)
}

// DrainCues returns and clears the pending cues
func (g *Game) DrainCues() []Cue {
	out := g.cues
	g.cues = nil
	return out
}
