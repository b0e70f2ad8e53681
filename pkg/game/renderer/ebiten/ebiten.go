package ebiten

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"escaperoom/pkg/engine/clock"
	"escaperoom/pkg/game/state"
)

// New creates a new Ebiten renderer
func New(opts Options) *EbitenRenderer {
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewSystem()
	}
	if opts.T == nil {
		opts.T = fmt.Sprintf
	}
	return &EbitenRenderer{
		assets:      opts.Assets,
		sounds:      opts.Sounds,
		echo:        opts.Echo,
		t:           opts.T,
		clock:       opts.Clock,
		title:       opts.Title,
		tps:         opts.TPS,
		cachedFaces: make(map[float64]*text.GoTextFace),
		textures:    make(map[string]*ebiten.Image),
		logger:      slog.Default().With("renderer", "ebiten"),
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	src, err := loadFontSource()
	if err != nil {
		return err
	}
	e.fontSource = src

	ebiten.SetWindowSize(state.ScreenWidth, state.ScreenHeight)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(e.tps)
	return nil
}

// GetViewportSize returns the logical screen size
func (e *EbitenRenderer) GetViewportSize() (width, height int) {
	return state.ScreenWidth, state.ScreenHeight
}

// Run opens the window and drives g until the player quits
func (e *EbitenRenderer) Run(g *state.Game) error {
	if e.fontSource == nil {
		if err := e.Init(); err != nil {
			return err
		}
	}
	e.game = g

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
