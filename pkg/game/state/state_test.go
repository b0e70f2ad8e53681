package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escaperoom/pkg/game/entities"
)

func TestNewGame_StartingLayout(t *testing.T) {
	g := NewGame()

	assert.Equal(t, RoomCellar, g.Room)
	assert.True(t, g.Rope.Collected, "rope is hidden until the code is entered")
	assert.False(t, g.Key.Collected)
	assert.Equal(t, g.Chest.Rect.CenterX(), g.Key.Rect.CenterX())
	assert.Equal(t, 463, g.Key.Rect.Y)
	require.Len(t, g.Fragments, 3)
	assert.Equal(t, entities.NameShard1, g.Fragments[0].Name)
	assert.Equal(t, 0, g.Inventory.Len())
	assert.Nil(t, g.Dragging)
}

func TestIsShard(t *testing.T) {
	g := NewGame()
	assert.True(t, g.IsShard(entities.NameShard2))
	assert.False(t, g.IsShard(entities.NameKey))
	assert.NotNil(t, g.Shard(entities.NameShard3))
	assert.Nil(t, g.Shard("vase_frag4"))
}

func TestShowMessage(t *testing.T) {
	g := NewGame()
	for i := 0; i < 7; i++ {
		g.ShowMessage("MSG", fmt.Sprint(i))
	}

	assert.Equal(t, []any{"6"}, g.Message.Args)
	assert.Equal(t, MessageFrames, g.Message.Frames)
	assert.Len(t, g.History, 5)
	assert.Equal(t, []any{"2"}, g.History[0].Args)

	assert.Len(t, g.DrainMessages(), 7)
	assert.Empty(t, g.DrainMessages())
}

func TestTickMessage(t *testing.T) {
	g := NewGame()
	g.TickMessage()
	assert.False(t, g.Message.Active())

	g.ShowMessage("MSG")
	g.Message.Frames = 2
	g.TickMessage()
	assert.True(t, g.Message.Active())
	g.TickMessage()
	assert.Equal(t, Message{}, g.Message)
}

func TestRoomString(t *testing.T) {
	assert.Equal(t, "attic", RoomAttic.String())
	assert.Equal(t, "unknown", Room(9).String())
}
