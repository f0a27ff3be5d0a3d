package ui

import (
	"image/color"

	"calcpad/calc"
)

// Theme holds the keypad colors.
type Theme struct {
	Background color.RGBA
	Text       color.RGBA
	Digit      color.RGBA
	Function   color.RGBA
	Operator   color.RGBA
	Focus      color.RGBA
}

// DefaultTheme is black with dark gray digits, light gray functions and orange operators.
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
		Text:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Digit:      color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF},
		Function:   color.RGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF},
		Operator:   color.RGBA{R: 0xFF, G: 0x95, B: 0x00, A: 0xFF},
		Focus:      color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
}

// ButtonColor returns the background of a key in category c.
func (t Theme) ButtonColor(c calc.Category) color.RGBA {
	switch c {
	case calc.Digit:
		return t.Digit
	case calc.Function:
		return t.Function
	default:
		return t.Operator
	}
}

// highlight blends c toward white for the pressed state.
func highlight(c color.RGBA) color.RGBA {
	mix := func(v uint8) uint8 { return v + uint8((uint16(0xFF-v)*2)/5) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
