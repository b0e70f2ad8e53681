// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/scene"
	"escaperoom/pkg/game/state"
)

const stateDumpFilename = "state.txt"

var kindNames = map[scene.Kind]string{
	scene.KindSprite:  "sprite",
	scene.KindRect:    "rect",
	scene.KindText:    "text",
	scene.KindTooltip: "tooltip",
}

func rectString(r geom.Rect) string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.W, r.H)
}

func writeObject(w io.Writer, o *entities.PuzzleObject) {
	fmt.Fprintf(w, "  name: %q rect: %s home: %d,%d collected: %v open: %v\n",
		o.Name, rectString(o.Rect), o.Home.X, o.Home.Y, o.Collected, o.Open)
}

// WriteStateDump writes the full game state and the draw list of the frame at now to w
func WriteStateDump(w io.Writer, g *state.Game, now int64) {
	fmt.Fprintln(w, "=== STATE DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "room: %s\n", g.Room)
	fmt.Fprintf(w, "now_ms: %d\n", now)
	fmt.Fprintf(w, "pointer: %d,%d held: %v\n", g.Pointer.X, g.Pointer.Y, g.PointerHeld)
	fmt.Fprintf(w, "has_key: %v\n", g.HasKey)
	fmt.Fprintf(w, "rope_falling: %v\n", g.RopeFalling)
	fmt.Fprintf(w, "fade: active=%v alpha=%d target=%s\n", g.Fader.Active(), g.Fader.Alpha, state.Room(g.Fader.Target))
	fmt.Fprintf(w, "message: %q frames=%d\n", g.Message.Key, g.Message.Frames)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Doors ---")
	for _, room := range []state.Room{state.RoomCellar, state.RoomVault, state.RoomAttic} {
		fmt.Fprintf(w, "%s:\n", room)
		writeObject(w, g.Doors[room])
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Cellar ---")
	fmt.Fprintf(w, "  name: %q rect: %s dragging: %v\n", g.Chest.Name, rectString(g.Chest.Rect), g.Chest.Dragging)
	writeObject(w, g.Key)
	writeObject(w, g.Rope)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Vault ---")
	fmt.Fprintf(w, "  keypad: %s display: %q\n", rectString(g.Keypad.Body()), g.Keypad.Input())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Attic ---")
	for _, f := range g.Fragments {
		writeObject(w, f)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Inventory ---")
	for i, it := range g.Inventory.Items() {
		fmt.Fprintf(w, "  %d: %q sprite: %q\n", i, it.Name, it.Visual.Sprite)
	}
	if g.Dragging != nil {
		fmt.Fprintf(w, "  dragging: %q offset: %d,%d\n", g.Dragging.Name, g.DragOffset.X, g.DragOffset.Y)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Draw list (back to front) ---")
	WriteDrawList(w, scene.Build(g, now))
}

// WriteDrawList writes one line per directive
func WriteDrawList(w io.Writer, list []scene.Directive) {
	for i, d := range list {
		fmt.Fprintf(w, "  %02d %-7s %s a=%d", i, kindNames[d.Kind], rectString(d.Bounds), d.Opacity)
		if d.Sprite != "" {
			fmt.Fprintf(w, " sprite=%s", d.Sprite)
		}
		if d.Text != "" {
			fmt.Fprintf(w, " text=%q", d.Text)
		}
		fmt.Fprintln(w)
	}
}

// DumpStateToFile writes WriteStateDump to state.txt in dir and returns its absolute path
func DumpStateToFile(g *state.Game, now int64, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, stateDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create state dump: %w", err)
	}
	defer f.Close()

	WriteStateDump(f, g, now)
	return absPath, nil
}
