package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"escaperoom/pkg/game/scene"
	"escaperoom/pkg/game/state"
)

// textOf resolves the display string of a text directive
func (e *EbitenRenderer) textOf(d scene.Directive) string {
	if d.Translate {
		return e.t(d.Text, d.Args...)
	}
	return d.Text
}

// layoutFor maps a directive alignment onto text/v2 layout options.
// Left and right aligned text hangs from its anchor; centered text is centered on it both ways.
func layoutFor(a scene.Align) text.LayoutOptions {
	switch a {
	case scene.AlignCenter:
		return text.LayoutOptions{PrimaryAlign: text.AlignCenter, SecondaryAlign: text.AlignCenter}
	case scene.AlignRight:
		return text.LayoutOptions{PrimaryAlign: text.AlignEnd, SecondaryAlign: text.AlignStart}
	default:
		return text.LayoutOptions{PrimaryAlign: text.AlignStart, SecondaryAlign: text.AlignStart}
	}
}

// drawText draws a KindText directive anchored at Bounds.X, Bounds.Y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, d scene.Directive) {
	str := e.textOf(d)
	if str == "" {
		return
	}

	size := messageFontSize
	if d.Align == scene.AlignCenter {
		size = keypadFontSize
	}
	face := e.getFace(size)

	op := &text.DrawOptions{LayoutOptions: layoutFor(d.Align)}
	op.GeoM.Translate(float64(d.Bounds.X), float64(d.Bounds.Y))
	op.ColorScale.ScaleWithColor(d.Color)
	op.ColorScale.ScaleAlpha(float32(d.Opacity) / 255)
	text.Draw(screen, str, face, op)
}

// drawTooltip draws a KindTooltip directive: text on a framed panel that stays on screen
func (e *EbitenRenderer) drawTooltip(screen *ebiten.Image, d scene.Directive) {
	str := e.textOf(d)
	if str == "" {
		return
	}
	face := e.getFace(tooltipFontSize)
	tw, th := text.Measure(str, face, face.Size*1.2)

	w := tw + 2*tooltipPadding
	h := th + 2*tooltipPadding
	x, y := clampPanel(float64(d.Bounds.X), float64(d.Bounds.Y), w, h, state.ScreenWidth, state.ScreenHeight)

	opacity := float32(d.Opacity) / 255
	drawPanel(screen, float32(x), float32(y), float32(w), float32(h), d.Fill, d.Border, opacity)

	op := &text.DrawOptions{}
	op.LineSpacing = face.Size * 1.2
	op.GeoM.Translate(x+tooltipPadding, y+tooltipPadding)
	op.ColorScale.ScaleWithColor(d.Color)
	op.ColorScale.ScaleAlpha(opacity)
	text.Draw(screen, str, face, op)
}

// clampPanel shifts a w by h panel anchored at (x, y) so it fits inside the screen
func clampPanel(x, y, w, h float64, screenW, screenH int) (float64, float64) {
	if x+w > float64(screenW) {
		x = float64(screenW) - w
	}
	if y+h > float64(screenH) {
		y = float64(screenH) - h
	}
	return max(x, 0), max(y, 0)
}
