// Package ebiten provides the windowed Ebiten renderer for the escape room.
package ebiten

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"escaperoom/pkg/engine/clock"
	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/assets"
	"escaperoom/pkg/game/audio"
	"escaperoom/pkg/game/console"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// Options wires the renderer to the rest of the game
type Options struct {
	Assets *assets.Registry
	Sounds *audio.SoundManager
	// Echo prints messages to the terminal when set
	Echo  *console.Printer
	T     console.Translator
	Title string
	TPS   int
	Clock clock.Clock
}

// EbitenRenderer implements renderer.Renderer with a desktop window
type EbitenRenderer struct {
	game *state.Game

	assets *assets.Registry
	sounds *audio.SoundManager
	echo   *console.Printer
	t      console.Translator
	clock  clock.Clock

	title string
	tps   int

	// Input gathered during Update, drained into gameplay.Step on the same frame
	queue       input.Queue
	lastPointer geom.Point
	pointerSeen bool

	// Fonts
	fontSource  *text.GoTextFaceSource
	cachedFaces map[float64]*text.GoTextFace

	// Textures converted from the asset registry, nil entries are known missing
	textures map[string]*ebiten.Image

	windowOpenedLogged bool
	logger             *slog.Logger
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)
