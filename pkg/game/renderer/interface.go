package renderer

import (
	"escaperoom/pkg/game/state"
)

// Renderer defines the interface for game front ends.
// Implementations own the frame loop: they gather input, step the game and present it.
type Renderer interface {
	// Init prepares the renderer (fonts, window settings, textures)
	Init() error

	// Run drives the game until it quits. Returns nil on a normal quit.
	Run(g *state.Game) error

	// GetViewportSize returns the logical screen dimensions
	GetViewportSize() (width, height int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() error {
	if Current != nil {
		return Current.Init()
	}
	return nil
}

// Run runs the game with the current renderer
func Run(g *state.Game) error {
	if Current != nil {
		return Current.Run(g)
	}
	return nil
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (width, height int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return state.ScreenWidth, state.ScreenHeight
}
