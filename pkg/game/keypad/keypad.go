// Package keypad implements the twelve-button code entry pad of the vault room.
package keypad

import (
	"strconv"

	"escaperoom/pkg/engine/geom"
)

// Button indices. Indices 0-8 are the digits 1-9.
const (
	ButtonBackspace = 9
	ButtonZero      = 10
	ButtonSubmit    = 11
	ButtonCount     = 12
)

// MaxDigits is the longest code the buffer will hold
const MaxDigits = 5

// Default layout
const (
	DefaultX       = 50
	DefaultY       = 400
	DefaultButton  = 40
	DefaultSpacing = 10
	displayHeight  = 40
	displayGap     = 50
)

// Keypad holds the typed digits and the button layout.
// The buffer only ever contains the characters 0-9.
type Keypad struct {
	input   string
	buttons [ButtonCount]geom.Rect
	body    geom.Rect
	display geom.Rect
}

// New creates a keypad with its top-left button at (x, y)
func New(x, y, buttonSize, spacing int) *Keypad {
	k := &Keypad{
		body:    geom.R(x, y, buttonSize*3+spacing*2, buttonSize*4+spacing*3),
		display: geom.R(x, y-displayGap, buttonSize*3+spacing*2, displayHeight),
	}
	for idx := 0; idx < ButtonCount; idx++ {
		row, col := idx/3, idx%3
		k.buttons[idx] = geom.R(x+col*(buttonSize+spacing), y+row*(buttonSize+spacing), buttonSize, buttonSize)
	}
	return k
}

// NewDefault creates the keypad at its standard position in the vault
func NewDefault() *Keypad {
	return New(DefaultX, DefaultY, DefaultButton, DefaultSpacing)
}

// Input returns the digits typed so far
func (k *Keypad) Input() string {
	return k.input
}

// Body returns the rectangle enclosing all buttons
func (k *Keypad) Body() geom.Rect {
	return k.body
}

// Display returns the rectangle of the readout above the buttons
func (k *Keypad) Display() geom.Rect {
	return k.display
}

// ButtonRect returns the rectangle of button idx
func (k *Keypad) ButtonRect(idx int) geom.Rect {
	if idx < 0 || idx >= ButtonCount {
		return geom.Rect{}
	}
	return k.buttons[idx]
}

// ButtonAt returns the index of the button under p
func (k *Keypad) ButtonAt(p geom.Point) (int, bool) {
	for idx, r := range k.buttons {
		if r.Contains(p) {
			return idx, true
		}
	}
	return -1, false
}

// Press applies button idx to the buffer.
// Submit returns the buffer without clearing it; every other button returns no result.
func (k *Keypad) Press(idx int) (code string, submitted bool) {
	switch {
	case idx == ButtonBackspace:
		if k.input != "" {
			k.input = k.input[:len(k.input)-1]
		}
	case idx == ButtonSubmit:
		return k.input, true
	case idx >= 0 && idx < ButtonBackspace:
		if len(k.input) < MaxDigits {
			k.input += strconv.Itoa(idx + 1)
		}
	case idx == ButtonZero:
		if len(k.input) < MaxDigits {
			k.input += "0"
		}
	}
	return "", false
}

// Click presses whichever button lies under p. A miss does nothing.
func (k *Keypad) Click(p geom.Point) (code string, submitted bool) {
	idx, ok := k.ButtonAt(p)
	if !ok {
		return "", false
	}
	return k.Press(idx)
}

// Label returns the caption of button idx
func Label(idx int) string {
	switch {
	case idx >= 0 && idx < ButtonBackspace:
		return strconv.Itoa(idx + 1)
	case idx == ButtonBackspace:
		return "<"
	case idx == ButtonZero:
		return "0"
	case idx == ButtonSubmit:
		return "OK"
	}
	return ""
}
