package devtools

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"escaperoom/pkg/game/scene"
	"escaperoom/pkg/game/state"
)

// Translator turns a catalogue key and args into display text
type Translator func(key string, args ...any) string

// SaveScreenshotHTML saves the current frame as an HTML page in dir and returns its path.
// Sprites are drawn as labelled boxes in their fallback color.
func SaveScreenshotHTML(g *state.Game, now int64, t Translator, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	defer f.Close()

	WriteScreenshotHTML(f, g, scene.Build(g, now), t)
	return filename, nil
}

func cssColor(c color.RGBA, opacity uint8) string {
	a := float64(c.A) / 255 * float64(opacity) / 255
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, a)
}

// WriteScreenshotHTML renders a draw list as absolutely positioned boxes
func WriteScreenshotHTML(w io.Writer, g *state.Game, list []scene.Directive, t Translator) {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Escape Room - Screenshot</title>
    <style>
        body { background-color: #1a1a2e; color: #eee; font-family: sans-serif; padding: 20px; }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .stage { position: relative; overflow: hidden; background: #000; }
        .d { position: absolute; box-sizing: border-box; }
        .sprite { font-size: 10px; color: rgba(255,255,255,0.6); }
        .text { white-space: nowrap; font-size: 20px; }
        .right { transform: translateX(-100%); }
        .center { transform: translate(-50%, -50%); font-size: 28px; }
        .tooltip { padding: 8px; border-radius: 6px; white-space: nowrap; font-size: 16px; }
        .inventory { margin-top: 20px; color: #888; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, "    <div class=\"header\">Room: %s</div>\n", html.EscapeString(g.Room.String()))
	fmt.Fprintf(&b, "    <div class=\"stage\" style=\"width:%dpx;height:%dpx\">\n", state.ScreenWidth, state.ScreenHeight)

	for _, d := range list {
		pos := fmt.Sprintf("left:%dpx;top:%dpx;", d.Bounds.X, d.Bounds.Y)
		size := fmt.Sprintf("width:%dpx;height:%dpx;", d.Bounds.W, d.Bounds.H)

		switch d.Kind {
		case scene.KindSprite, scene.KindRect:
			style := pos + size + "background:" + cssColor(d.Fill, d.Opacity) + ";"
			if d.BorderWidth > 0 {
				style += fmt.Sprintf("border:%dpx solid %s;", d.BorderWidth, cssColor(d.Border, d.Opacity))
			}
			fmt.Fprintf(&b, "        <div class=\"d sprite\" style=\"%s\">%s</div>\n", style, html.EscapeString(d.Sprite))

		case scene.KindText:
			class := "d text"
			switch d.Align {
			case scene.AlignRight:
				class += " right"
			case scene.AlignCenter:
				class += " center"
			}
			style := pos + "color:" + cssColor(d.Color, d.Opacity) + ";"
			fmt.Fprintf(&b, "        <div class=\"%s\" style=\"%s\">%s</div>\n", class, style, html.EscapeString(textOf(d, t)))

		case scene.KindTooltip:
			style := pos + "background:" + cssColor(d.Fill, d.Opacity) + ";border:2px solid " + cssColor(d.Border, d.Opacity) +
				";color:" + cssColor(d.Color, d.Opacity) + ";"
			fmt.Fprintf(&b, "        <div class=\"d tooltip\" style=\"%s\">%s</div>\n", style, html.EscapeString(textOf(d, t)))
		}
	}
	b.WriteString("    </div>\n")

	b.WriteString(`    <div class="inventory">Inventory: `)
	items := g.Inventory.Items()
	if len(items) == 0 {
		b.WriteString(`<span style="color:#666">(empty)</span>`)
	}
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(html.EscapeString(it.Name))
	}
	b.WriteString("</div>\n")

	b.WriteString(`</body>
</html>
`)

	io.WriteString(w, b.String())
}

func textOf(d scene.Directive, t Translator) string {
	if d.Translate && t != nil {
		return t(d.Text, d.Args...)
	}
	if d.Translate && len(d.Args) > 0 {
		return fmt.Sprintf(d.Text, d.Args...)
	}
	return d.Text
}
