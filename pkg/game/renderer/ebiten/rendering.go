package ebiten

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/game/assets"
	"escaperoom/pkg/game/scene"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if e.game == nil || e.fontSource == nil {
		return
	}

	for _, d := range scene.Build(e.game, e.clock.NowMillis()) {
		switch d.Kind {
		case scene.KindSprite:
			e.drawSprite(screen, d)
		case scene.KindRect:
			fillRect(screen, d.Bounds, d.Fill, d.Opacity)
		case scene.KindText:
			e.drawText(screen, d)
		case scene.KindTooltip:
			e.drawTooltip(screen, d)
		}
	}
}

// drawSprite stretches the texture over Bounds, or fills Bounds when the texture is missing
func (e *EbitenRenderer) drawSprite(screen *ebiten.Image, d scene.Directive) {
	if d.Bounds.W <= 0 || d.Bounds.H <= 0 {
		return
	}

	if tex := e.texture(d.Sprite); tex != nil {
		b := tex.Bounds()
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Scale(float64(d.Bounds.W)/float64(b.Dx()), float64(d.Bounds.H)/float64(b.Dy()))
		op.GeoM.Translate(float64(d.Bounds.X), float64(d.Bounds.Y))
		op.ColorScale.ScaleAlpha(float32(d.Opacity) / 255)
		screen.DrawImage(tex, op)
	} else {
		fillRect(screen, d.Bounds, d.Fill, d.Opacity)
	}

	if d.BorderWidth > 0 {
		bw := float32(d.BorderWidth)
		r := d.Bounds
		vector.StrokeRect(screen,
			float32(r.X)+bw/2, float32(r.Y)+bw/2,
			float32(r.W)-bw, float32(r.H)-bw,
			bw, withOpacity(d.Border, d.Opacity), false)
	}
}

// texture returns the ebiten image for a sprite ID, converting and caching it on first use.
// Missing or broken sprites are cached as nil so the registry is asked once.
func (e *EbitenRenderer) texture(id string) *ebiten.Image {
	if id == "" || e.assets == nil {
		return nil
	}
	if tex, ok := e.textures[id]; ok {
		return tex
	}

	img, err := e.assets.Image(id)
	if err != nil {
		var le *assets.LoadError
		if errors.As(err, &le) && le.Missing() {
			e.logger.Debug("sprite missing, using fill", "sprite", id)
		} else {
			e.logger.Warn("sprite unusable, using fill", "sprite", id, "error", err)
		}
		e.textures[id] = nil
		return nil
	}

	tex := ebiten.NewImageFromImage(img)
	e.textures[id] = tex
	return tex
}

func fillRect(screen *ebiten.Image, r geom.Rect, c color.RGBA, opacity uint8) {
	if r.W <= 0 || r.H <= 0 || opacity == 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), withOpacity(c, opacity), false)
}

// withOpacity scales the alpha of an opaque palette color
func withOpacity(c color.RGBA, opacity uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(uint16(c.A) * uint16(opacity) / 255)}
}
