package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFontSource parses the bundled Go Regular typeface
func loadFontSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return src, nil
}

// getFace returns a cached face of the given size
func (e *EbitenRenderer) getFace(size float64) *text.GoTextFace {
	if face, ok := e.cachedFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: e.fontSource,
		Size:   size,
	}
	e.cachedFaces[size] = face
	return face
}
