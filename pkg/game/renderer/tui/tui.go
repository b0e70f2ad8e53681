// Package tui is a headless renderer that plays the game from line commands.
// Each command is turned into pointer events and stepped through the same frame loop as the window.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"escaperoom/pkg/engine/clock"
	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/audio"
	"escaperoom/pkg/game/console"
	"escaperoom/pkg/game/devtools"
	"escaperoom/pkg/game/gameplay"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// DefaultTPS is the simulated frame rate when none is given
const DefaultTPS = 60

// Options wires the renderer to the rest of the game
type Options struct {
	In      io.Reader
	Out     io.Writer
	Printer *console.Printer
	// T translates messages for screenshots
	T      console.Translator
	Sounds *audio.SoundManager
	TPS    int
	// Prompt prints "> " before reading each command
	Prompt bool
}

// TUIRenderer is the line-driven renderer implementation
type TUIRenderer struct {
	in        *bufio.Scanner
	out       io.Writer
	printer   *console.Printer
	translate console.Translator
	sounds    *audio.SoundManager
	prompt    bool

	clock       *clock.Manual
	frameMillis int64
	frame       int

	colorPrompt color.Style
	colorHelp   color.Style
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new TUI renderer
func New(opts Options) *TUIRenderer {
	if opts.TPS <= 0 {
		opts.TPS = DefaultTPS
	}
	if opts.T == nil {
		opts.T = fmt.Sprintf
	}
	return &TUIRenderer{
		in:          bufio.NewScanner(opts.In),
		out:         opts.Out,
		printer:     opts.Printer,
		translate:   opts.T,
		sounds:      opts.Sounds,
		prompt:      opts.Prompt,
		clock:       &clock.Manual{},
		frameMillis: int64(1000 / opts.TPS),
	}
}

// Init sets up the prompt colors
func (t *TUIRenderer) Init() error {
	t.colorPrompt = color.Style{color.FgGreen, color.OpBold}
	t.colorHelp = color.Style{color.FgGray}
	return nil
}

// GetViewportSize returns the logical playfield size commands are given in
func (t *TUIRenderer) GetViewportSize() (width, height int) {
	return state.ScreenWidth, state.ScreenHeight
}

// Frames returns how many frames have been stepped
func (t *TUIRenderer) Frames() int {
	return t.frame
}

// Run reads commands until the game quits or input ends
func (t *TUIRenderer) Run(g *state.Game) error {
	t.printer.Room(g)

	for !g.Quit {
		if t.prompt {
			fmt.Fprint(t.out, t.colorPrompt.Sprint("> "))
		}
		if !t.in.Scan() {
			if err := t.in.Err(); err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			t.step(g, input.Quit())
			break
		}

		line := strings.TrimSpace(t.in.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := t.execute(g, line); err != nil {
			t.printer.Alert("%v", err)
		}
	}

	slog.Info("headless session ended", "frames", t.frame, "room", g.Room.String())
	return nil
}

// execute runs one command line
func (t *TUIRenderer) execute(g *state.Game, line string) error {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "click", "c":
		p, err := points(args, 1)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		t.step(g, input.Move(p[0]), input.Down(p[0], input.ButtonLeft), input.Up(p[0], input.ButtonLeft))

	case "press":
		p, err := points(args, 1)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		t.step(g, input.Move(p[0]), input.Down(p[0], input.ButtonLeft))

	case "release":
		p, err := points(args, 1)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		t.step(g, input.Move(p[0]), input.Up(p[0], input.ButtonLeft))

	case "move", "m":
		p, err := points(args, 1)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		t.step(g, input.Move(p[0]))

	case "drag", "d":
		p, err := points(args, 2)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		t.step(g, input.Move(p[0]), input.Down(p[0], input.ButtonLeft))
		t.step(g, input.Move(p[1]))
		t.step(g, input.Up(p[1], input.ButtonLeft))

	case "wait", "w":
		n := 1
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 0 {
				return fmt.Errorf("wait: bad frame count %q", args[0])
			}
			n = v
		}
		for i := 0; i < n; i++ {
			t.step(g)
		}

	case "look", "l":
		t.printer.Room(g)

	case "inv", "i":
		t.printer.Inventory(g)

	case "dump":
		devtools.WriteStateDump(t.out, g, t.clock.NowMillis())

	case "shot":
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		path, err := devtools.SaveScreenshotHTML(g, t.clock.NowMillis(), devtools.Translator(t.translate), dir)
		if err != nil {
			return fmt.Errorf("shot: %w", err)
		}
		fmt.Fprintln(t.out, t.colorHelp.Sprint("saved "+path))

	case "help", "h", "?":
		t.help()

	case "quit", "q":
		t.step(g, input.Quit())

	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

// step runs one frame with the given events and reports what it produced
func (t *TUIRenderer) step(g *state.Game, events ...input.Event) {
	roomBefore := g.Room

	t.clock.Advance(t.frameMillis)
	t.frame++
	gameplay.Step(g, events, t.clock.NowMillis())

	for _, cue := range g.DrainCues() {
		t.sounds.HandleCue(cue)
	}
	if msgs := g.DrainMessages(); len(msgs) > 0 {
		t.printer.Messages(g.Room, msgs)
	}
	if g.Room != roomBefore {
		t.printer.Room(g)
	}
}

func (t *TUIRenderer) help() {
	lines := []string{
		"click X Y            press and release at X,Y",
		"press X Y            hold the button at X,Y",
		"release X Y          let go at X,Y",
		"move X Y             move the pointer",
		"drag X1 Y1 X2 Y2     hold at the first point, let go at the second",
		"wait [N]             run N empty frames",
		"look                 describe the room",
		"dump                 print the full state and draw list",
		"shot [DIR]           save an HTML screenshot",
		"inv                  list the inventory",
		"quit                 leave the game",
	}
	for _, l := range lines {
		fmt.Fprintln(t.out, t.colorHelp.Sprint(l))
	}
}

// points parses n coordinate pairs
func points(args []string, n int) ([]geom.Point, error) {
	if len(args) != 2*n {
		return nil, fmt.Errorf("want %d coordinates, got %d", 2*n, len(args))
	}
	out := make([]geom.Point, 0, n)
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, fmt.Errorf("bad x %q", args[i])
		}
		y, err := strconv.Atoi(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("bad y %q", args[i+1])
		}
		out = append(out, geom.Pt(x, y))
	}
	return out, nil
}
