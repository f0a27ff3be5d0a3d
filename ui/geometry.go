package ui

import (
	"errors"
	"image"

	"calcpad/calc"
)

// ErrTooSmall is returned when the framebuffer cannot fit the keypad.
var ErrTooSmall = errors.New("ui: framebuffer too small for keypad")

// minDisplayHeight is the display line height used when none is given.
const minDisplayHeight = 24

// Geometry places the keypad and the display line on a framebuffer.
type Geometry struct {
	Width   int
	Height  int
	Spacing int
	Unit    int

	// Display is the area the display text is right-aligned in.
	Display image.Rectangle

	buttons [calc.Count]image.Rectangle
}

// NewGeometry lays the keypad out over a width x height surface.
//
// Buttons are unit x unit squares on a four column grid with spacing between
// cells, the zero key spanning two units. The grid is centered horizontally
// and rests on the bottom edge with spacing padding. lineHeight is the pixel
// height the display text needs; the display area is at least that tall.
func NewGeometry(width, height, spacing, lineHeight int) (Geometry, error) {
	if spacing < 0 {
		spacing = 0
	}
	if lineHeight <= 0 {
		lineHeight = minDisplayHeight
	}
	rows := calc.RowCount()

	// Vertically: top pad, display line, gap, rows with gaps between, bottom pad.
	unit := (width - (calc.Columns+1)*spacing) / calc.Columns
	if byHeight := (height - lineHeight - (rows+2)*spacing) / rows; byHeight < unit {
		unit = byHeight
	}
	if unit <= 0 {
		return Geometry{}, ErrTooSmall
	}

	g := Geometry{Width: width, Height: height, Spacing: spacing, Unit: unit}

	gridW := calc.Columns*unit + (calc.Columns-1)*spacing
	gridH := rows*unit + (rows-1)*spacing
	x0 := (width - gridW) / 2
	y0 := height - spacing - gridH

	for r := 0; r < rows; r++ {
		y := y0 + r*(unit+spacing)
		cell := 0
		for c := 0; c < calc.RowLen(r); c++ {
			b, _ := calc.At(r, c)
			x := x0 + cell*(unit+spacing)
			w := calc.Span(b) * unit
			g.buttons[b] = image.Rect(x, y, x+w, y+unit)
			cell += calc.Span(b)
		}
	}

	g.Display = image.Rect(x0, spacing, x0+gridW, y0-spacing)
	return g, nil
}

// Rect returns the on-screen rectangle of b.
func (g Geometry) Rect(b calc.Button) image.Rectangle {
	if !b.Valid() {
		return image.Rectangle{}
	}
	return g.buttons[b]
}

// HitTest returns the button under (x, y).
func (g Geometry) HitTest(x, y int) (calc.Button, bool) {
	p := image.Pt(x, y)
	for _, b := range calc.All() {
		if p.In(g.buttons[b]) {
			return b, true
		}
	}
	return 0, false
}

// Bounds is the full surface the geometry was computed for.
func (g Geometry) Bounds() image.Rectangle { return image.Rect(0, 0, g.Width, g.Height) }
