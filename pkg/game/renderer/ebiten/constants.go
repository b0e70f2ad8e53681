package ebiten

import "image/color"

// Colors used outside the scene palette
var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorShadowMin  = uint8(8) // Darkest channel value of a panel shadow
)

// Font sizes
const (
	messageFontSize = 20.0
	keypadFontSize  = 28.0
	tooltipFontSize = 16.0
)

// Tooltip panel geometry
const (
	tooltipPadding = 8
	tooltipRadius  = 6
	tooltipBorder  = 2
	shadowSpread   = 6
)
