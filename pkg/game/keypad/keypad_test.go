package keypad

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escaperoom/pkg/engine/geom"
)

// typeCode presses the buttons for each digit of code
func typeCode(t *testing.T, k *Keypad, code string) {
	t.Helper()
	for _, r := range code {
		idx := ButtonZero
		if r != '0' {
			idx = int(r-'0') - 1
		}
		_, submitted := k.Press(idx)
		require.False(t, submitted)
	}
}

func TestPress_DigitsAppend(t *testing.T) {
	k := NewDefault()
	typeCode(t, k, "2516")
	assert.Equal(t, "2516", k.Input())

	k.Press(ButtonZero)
	assert.Equal(t, "25160", k.Input())
}

func TestPress_LengthNeverExceedsMax(t *testing.T) {
	k := NewDefault()
	for i := 0; i < 50; i++ {
		k.Press(i % ButtonBackspace)
		k.Press(ButtonZero)
		require.LessOrEqual(t, len(k.Input()), MaxDigits)
	}
	assert.Equal(t, MaxDigits, len(k.Input()))
	assert.Equal(t, "", strings.Trim(k.Input(), "0123456789"), "buffer holds digits only")
}

func TestPress_BackspaceOnEmptyIsNoop(t *testing.T) {
	k := NewDefault()
	code, submitted := k.Press(ButtonBackspace)
	assert.Equal(t, "", code)
	assert.False(t, submitted)
	assert.Equal(t, "", k.Input())
}

func TestPress_BackspaceRemovesLast(t *testing.T) {
	k := NewDefault()
	typeCode(t, k, "251")
	k.Press(ButtonBackspace)
	assert.Equal(t, "25", k.Input())
}

func TestPress_SubmitDoesNotClear(t *testing.T) {
	k := NewDefault()
	typeCode(t, k, "25167")

	code, submitted := k.Press(ButtonSubmit)
	assert.True(t, submitted)
	assert.Equal(t, "25167", code)
	assert.Equal(t, "25167", k.Input())

	again, submitted := k.Press(ButtonSubmit)
	assert.True(t, submitted)
	assert.Equal(t, code, again, "resubmitting sends the same buffer")
}

func TestPress_SubmitEmpty(t *testing.T) {
	k := NewDefault()
	code, submitted := k.Press(ButtonSubmit)
	assert.True(t, submitted)
	assert.Equal(t, "", code)
}

func TestPress_OutOfRangeIsNoop(t *testing.T) {
	k := NewDefault()
	typeCode(t, k, "12")
	for _, idx := range []int{-1, ButtonCount, 99} {
		code, submitted := k.Press(idx)
		assert.False(t, submitted)
		assert.Equal(t, "", code)
	}
	assert.Equal(t, "12", k.Input())
}

func TestLayout(t *testing.T) {
	k := NewDefault()
	assert.Equal(t, geom.R(50, 400, 140, 190), k.Body())
	assert.Equal(t, geom.R(50, 350, 140, 40), k.Display())
	assert.Equal(t, geom.R(50, 400, 40, 40), k.ButtonRect(0))
	assert.Equal(t, geom.R(150, 550, 40, 40), k.ButtonRect(ButtonSubmit))
	assert.Equal(t, geom.Rect{}, k.ButtonRect(12))
}

func TestClick(t *testing.T) {
	k := NewDefault()

	// Button "2" is index 1: column 1, row 0
	code, submitted := k.Click(geom.Pt(110, 410))
	assert.False(t, submitted)
	assert.Equal(t, "", code)
	assert.Equal(t, "2", k.Input())

	// The gap between buttons is not a button
	_, ok := k.ButtonAt(geom.Pt(95, 410))
	assert.False(t, ok)
	k.Click(geom.Pt(95, 410))
	assert.Equal(t, "2", k.Input())

	code, submitted = k.Click(k.ButtonRect(ButtonSubmit).Center())
	assert.True(t, submitted)
	assert.Equal(t, "2", code)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "1", Label(0))
	assert.Equal(t, "9", Label(8))
	assert.Equal(t, "<", Label(ButtonBackspace))
	assert.Equal(t, "0", Label(ButtonZero))
	assert.Equal(t, "OK", Label(ButtonSubmit))
	assert.Equal(t, "", Label(42))
}
