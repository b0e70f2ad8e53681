package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	r = min(r, w/2, h/2)
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	quarter := float32(math.Pi / 2)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*quarter, 0, dir)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, quarter, dir)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, quarter, 2*quarter, dir)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, 2*quarter, 3*quarter, dir)
	p.Close()
}

// shadowOf darkens c to roughly 6% brightness
func shadowOf(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	dark := func(v uint32) uint8 {
		return max(uint8((v>>8)*15/255), colorShadowMin)
	}
	return color.RGBA{dark(r), dark(g), dark(b), 255}
}

// drawPanel draws a rounded panel with a soft drop shadow, a fill and a border.
// opacity scales the whole panel.
func drawPanel(screen *ebiten.Image, x, y, w, h float32, fill, border color.Color, opacity float32) {
	shadow := shadowOf(border)

	var path vector.Path
	for i := shadowSpread; i >= 1; i-- {
		fi := float32(i)
		path.Reset()
		appendRoundedRect(&path, x-fi, y-fi, w+2*fi, h+2*fi, tooltipRadius+fi, vector.Clockwise)
		appendRoundedRect(&path, x-fi+1, y-fi+1, w+2*fi-2, h+2*fi-2, tooltipRadius+fi-1, vector.CounterClockwise)

		op := &vector.DrawPathOptions{AntiAlias: true}
		op.ColorScale.ScaleWithColor(shadow)
		op.ColorScale.ScaleAlpha(min(0.05+0.04*fi, 0.25) * opacity)
		vector.FillPath(screen, &path, nil, op)
	}

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, tooltipRadius, vector.Clockwise)
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(fill)
	op.ColorScale.ScaleAlpha(opacity)
	vector.FillPath(screen, &path, nil, op)

	op = &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(border)
	op.ColorScale.ScaleAlpha(opacity)
	vector.StrokePath(screen, &path, &vector.StrokeOptions{Width: tooltipBorder, MiterLimit: 10}, op)
}
