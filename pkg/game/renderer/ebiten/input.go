package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/devtools"
	"escaperoom/pkg/game/gameplay"
)

// mouseCodes maps ebiten buttons to the raw codes understood by input.Translate
var mouseCodes = []struct {
	button   ebiten.MouseButton
	down, up string
}{
	{ebiten.MouseButtonLeft, "mouse_left_down", "mouse_left_up"},
	{ebiten.MouseButtonRight, "mouse_right_down", "mouse_right_up"},
	{ebiten.MouseButtonMiddle, "mouse_middle_down", "mouse_middle_up"},
}

// Update gathers input and advances the game by one frame (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.logger.Info("window opened", "width", w, "height", h)
	}

	e.pollInput(time.Now())
	e.handleDevKeys()

	g := e.game
	gameplay.Step(g, e.queue.Drain(), e.clock.NowMillis())

	for _, cue := range g.DrainCues() {
		e.sounds.HandleCue(cue)
	}
	if msgs := g.DrainMessages(); len(msgs) > 0 && e.echo != nil {
		e.echo.Messages(g.Room, msgs)
	}

	if g.Quit {
		e.logger.Info("quit requested", "room", g.Room.String())
		return ebiten.Termination
	}
	return nil
}

// pollInput is the raw layer: it turns this frame's device state into queued events
func (e *EbitenRenderer) pollInput(now time.Time) {
	if ebiten.IsWindowBeingClosed() {
		e.queue.Push(input.RawInput{Device: input.DeviceWindow, Code: "window_close", Timestamp: now})
	}

	x, y := ebiten.CursorPosition()
	p := geom.Pt(x, y)
	if !e.pointerSeen || p != e.lastPointer {
		e.pointerSeen = true
		e.lastPointer = p
		e.queue.Push(input.RawInput{Device: input.DeviceMouse, Code: "mouse_move", Pos: p, Timestamp: now})
	}

	for _, m := range mouseCodes {
		if inpututil.IsMouseButtonJustPressed(m.button) {
			e.queue.Push(input.RawInput{Device: input.DeviceMouse, Code: m.down, Pos: p, Timestamp: now})
		}
		if inpututil.IsMouseButtonJustReleased(m.button) {
			e.queue.Push(input.RawInput{Device: input.DeviceMouse, Code: m.up, Pos: p, Timestamp: now})
		}
	}

	e.pollTouches(now)
}

// pollTouches folds touch screens onto the pointer
func (e *EbitenRenderer) pollTouches(now time.Time) {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		e.queue.Push(input.RawInput{Device: input.DeviceTouch, Code: "touch_start", Pos: geom.Pt(x, y), Timestamp: now})
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if p := geom.Pt(x, y); p != e.lastPointer {
			e.lastPointer = p
			e.queue.Push(input.RawInput{Device: input.DeviceTouch, Code: "touch_move", Pos: p, Timestamp: now})
		}
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		e.queue.Push(input.RawInput{Device: input.DeviceTouch, Code: "touch_end", Pos: geom.Pt(x, y), Timestamp: now})
	}
}

// handleDevKeys writes debug snapshots to the working directory: F9 dumps the state, F12 saves an HTML screenshot
func (e *EbitenRenderer) handleDevKeys() {
	now := e.clock.NowMillis()
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if path, err := devtools.DumpStateToFile(e.game, now, "."); err != nil {
			e.logger.Warn("state dump failed", "error", err)
		} else {
			e.logger.Info("state dumped", "path", path)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		if path, err := devtools.SaveScreenshotHTML(e.game, now, devtools.Translator(e.t), "."); err != nil {
			e.logger.Warn("screenshot failed", "error", err)
		} else {
			e.logger.Info("screenshot saved", "path", path)
		}
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.GetViewportSize()
}
