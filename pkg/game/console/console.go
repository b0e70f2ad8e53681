// Package console echoes game messages to the terminal with colors.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"escaperoom/pkg/engine/terminal"
	"escaperoom/pkg/game/state"
)

// Translator turns a catalogue key and args into display text
type Translator func(key string, args ...any) string

// Printer writes styled lines, truncated to the terminal width
type Printer struct {
	w     io.Writer
	t     Translator
	width int

	colorRoom    color.Style
	colorMessage color.Style
	colorItem    color.Style
	colorSubtle  color.Style
	colorAlert   color.Style
}

// New creates a printer writing to w, truncating to the width of the terminal
func New(w io.Writer, t Translator) *Printer {
	return &Printer{
		w:            w,
		t:            t,
		width:        terminal.Width(),
		colorRoom:    color.Style{color.FgCyan, color.OpBold},
		colorMessage: color.Style{color.FgYellow},
		colorItem:    color.Style{color.FgMagenta},
		colorSubtle:  color.Style{color.FgGray},
		colorAlert:   color.Style{color.FgRed, color.OpBold},
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(w int) {
	p.width = w
}

// Messages prints each message prefixed with the room it was shown in
func (p *Printer) Messages(room state.Room, msgs []state.Message) {
	for _, m := range msgs {
		text := p.t(m.Key, m.Args...)
		prefix := fmt.Sprintf("[%s] ", room)
		line := terminal.Truncate(prefix+text, p.width)
		rest, ok := strings.CutPrefix(line, prefix)
		if !ok {
			p.println(p.colorRoom.Sprint(line))
			continue
		}
		p.println(p.colorRoom.Sprint(prefix) + p.colorMessage.Sprint(rest))
	}
}

// Room prints a short description of what is in the current room
func (p *Printer) Room(g *state.Game) {
	p.println(p.colorRoom.Sprintf("== %s ==", g.Room))

	door := g.Door()
	doorState := "closed"
	if door.Open {
		doorState = "open"
	}
	p.println(p.colorSubtle.Sprintf("door %s at %d,%d %dx%d", doorState, door.Rect.X, door.Rect.Y, door.Rect.W, door.Rect.H))

	switch g.Room {
	case state.RoomCellar:
		c := g.Chest.Rect
		p.println(p.colorSubtle.Sprintf("chest at %d,%d %dx%d", c.X, c.Y, c.W, c.H))
		if g.Key.Visible() {
			p.println(p.colorItem.Sprintf("key at %d,%d", g.Key.Rect.X, g.Key.Rect.Y))
		}
		if g.Rope.Visible() {
			r := g.Rope.Rect
			p.println(p.colorItem.Sprintf("rope at %d,%d %dx%d", r.X, r.Y, r.W, r.H))
		}
	case state.RoomVault:
		k := g.Keypad.Body()
		p.println(p.colorSubtle.Sprintf("keypad at %d,%d display %q", k.X, k.Y, g.Keypad.Input()))
	case state.RoomAttic:
		for _, f := range g.Fragments {
			if f.Visible() {
				p.println(p.colorItem.Sprintf("%s at %d,%d", f.Name, f.Rect.X, f.Rect.Y))
			}
		}
	}
}

// Inventory prints the carried items, marking the ones past the slot bar
func (p *Printer) Inventory(g *state.Game) {
	items := g.Inventory.Items()
	if len(items) == 0 {
		p.println(p.colorSubtle.Sprint("inventory empty"))
		return
	}
	names := make([]string, 0, len(items))
	for i, it := range items {
		name := it.Name
		if i >= len(g.Inventory.Visible()) {
			name += "*"
		}
		names = append(names, p.colorItem.Sprint(name))
	}
	p.println("inventory: " + strings.Join(names, ", "))
}

// Alert prints an error line
func (p *Printer) Alert(format string, args ...any) {
	p.println(p.colorAlert.Sprintf(format, args...))
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.w, s)
}
