package ui

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"calcpad/calc"
	"calcpad/hal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgb565(c color.RGBA) uint16 { return hal.RGB565(c.R, c.G, c.B) }

// insidePoint returns a point inside b's capsule that no label glyph reaches.
func insidePoint(g Geometry, b calc.Button) (int, int) {
	r := g.Rect(b)
	return (r.Min.X + r.Max.X) / 2, r.Min.Y + 2
}

func TestServiceKeysOverwriteDisplay(t *testing.T) {
	h, err := newHarness(false)
	require.NoError(t, err)

	h.typeRunes("7")
	require.NoError(t, h.svc.Step())
	assert.Equal(t, "7", h.display.Text())

	h.typeRunes("+")
	require.NoError(t, h.svc.Step())
	assert.Equal(t, "+", h.display.Text())

	h.typeRunes("12*")
	require.NoError(t, h.svc.Step())
	assert.Equal(t, "X", h.display.Text())

	assert.Equal(t, []string{
		`calc: press seven display="7"`,
		`calc: press plus display="+"`,
		`calc: press one display="1"`,
		`calc: press two display="2"`,
		`calc: press multiply display="X"`,
	}, h.log.lines)
}

func TestServiceSpecialKeys(t *testing.T) {
	h, err := newHarness(false)
	require.NoError(t, err)

	h.key(hal.KeyEnter)
	require.NoError(t, h.svc.Step())
	assert.Equal(t, "=", h.display.Text())

	h.key(hal.KeyEscape)
	require.NoError(t, h.svc.Step())
	assert.Equal(t, "AC", h.display.Text())

	h.typeRunes("9")
	h.key(hal.KeyDelete)
	require.NoError(t, h.svc.Step())
	assert.Equal(t, "AC", h.display.Text())
}

func TestServiceIgnoresUnknownAndReleases(t *testing.T) {
	h, err := newHarness(false)
	require.NoError(t, err)

	h.typeRunes("q")
	h.in.kbd.ch <- hal.KeyEvent{Press: false, Rune: '5'}
	h.key(hal.KeyBackspace)
	require.NoError(t, h.svc.Step())
	assert.Equal(t, "", h.display.Text())
	assert.Empty(t, h.log.lines)
}

func TestServiceFocusNavigation(t *testing.T) {
	h, err := newHarness(false)
	require.NoError(t, err)
	assert.Equal(t, calc.AC, h.svc.Focus())

	h.key(hal.KeyDown)
	h.key(hal.KeyRight)
	h.key(hal.KeySpace)
	require.NoError(t, h.svc.Step())
	assert.Equal(t, calc.Eight, h.svc.Focus())
	assert.Equal(t, "8", h.display.Text())

	h.key(hal.KeyDown)
	h.key(hal.KeyDown)
	h.key(hal.KeyTab)
	require.NoError(t, h.svc.Step())
	assert.Equal(t, calc.Two, h.svc.Focus())
	assert.Equal(t, "2", h.display.Text())
}

func TestServiceTap(t *testing.T) {
	h, err := newHarness(false)
	require.NoError(t, err)
	g := h.svc.Geometry()

	zero := g.Rect(calc.Zero)
	h.in.ptr.ch <- hal.Tap{X: zero.Min.X + zero.Dx()*3/4, Y: (zero.Min.Y + zero.Max.Y) / 2}
	require.NoError(t, h.svc.Step())
	assert.Equal(t, "0", h.display.Text())
	assert.Equal(t, calc.Zero, h.svc.Focus())

	h.in.ptr.ch <- hal.Tap{X: 1, Y: 1}
	require.NoError(t, h.svc.Step())
	assert.Equal(t, "0", h.display.Text())
}

func TestServiceRendersCategoryColors(t *testing.T) {
	h, err := newHarness(false)
	require.NoError(t, err)
	require.NoError(t, h.svc.Step())

	theme := DefaultTheme()
	g := h.svc.Geometry()
	tests := []struct {
		b    calc.Button
		want color.RGBA
	}{
		{calc.Five, theme.Digit},
		{calc.Zero, theme.Digit},
		{calc.Percent, theme.Function},
		{calc.AC, theme.Function},
		{calc.Divide, theme.Operator},
		{calc.Equals, theme.Operator},
	}
	for _, tt := range tests {
		x, y := insidePoint(g, tt.b)
		assert.Equal(t, rgb565(tt.want), h.fb.pixel(x, y), "%s", tt.b)
	}
	assert.Equal(t, rgb565(theme.Background), h.fb.pixel(0, 0))
}

func TestServiceRendersDisplayText(t *testing.T) {
	h, err := newHarness(false)
	require.NoError(t, err)
	require.NoError(t, h.svc.Step())

	area := h.svc.Geometry().Display
	count := func() int {
		n := 0
		text := rgb565(DefaultTheme().Text)
		for y := area.Min.Y; y < area.Max.Y; y++ {
			for x := area.Min.X; x < area.Max.X; x++ {
				if h.fb.pixel(x, y) == text {
					n++
				}
			}
		}
		return n
	}
	assert.Zero(t, count(), "empty display draws nothing")

	h.svc.Press(calc.Divide)
	require.NoError(t, h.svc.Step())
	assert.Positive(t, count(), "display shows the division sign")
}

func TestServicePressFlash(t *testing.T) {
	h, err := newHarness(true)
	require.NoError(t, err)
	g := h.svc.Geometry()
	x, y := insidePoint(g, calc.Five)
	digit := DefaultTheme().Digit

	h.ticks.ch <- 10
	h.typeRunes("5")
	require.NoError(t, h.svc.Step())
	assert.Equal(t, rgb565(highlight(digit)), h.fb.pixel(x, y))

	h.ticks.ch <- 10 + pressFlashTicks
	require.NoError(t, h.svc.Step())
	assert.Equal(t, rgb565(digit), h.fb.pixel(x, y))
}

func TestServiceRedrawsOnlyOnChange(t *testing.T) {
	h, err := newHarness(false)
	require.NoError(t, err)

	require.NoError(t, h.svc.Step())
	require.NoError(t, h.svc.Step())
	assert.Equal(t, 1, h.fb.presents)

	h.display.ReceiveInput(calc.Three)
	require.NoError(t, h.svc.Step())
	assert.Equal(t, 2, h.fb.presents)

	h.svc.Close()
	h.svc.Close()
	h.display.ReceiveInput(calc.Four)
	require.NoError(t, h.svc.Step())
	assert.Equal(t, 2, h.fb.presents)
}

func TestNewErrors(t *testing.T) {
	d := calc.NewDisplay()

	_, err := New(nil, nil, nil, nil, d, DefaultConfig())
	assert.True(t, errors.Is(err, hal.ErrNotImplemented))

	_, err = New(fakeDisplay{fb: newFakeFB(20, 20)}, nil, nil, nil, d, DefaultConfig())
	assert.ErrorIs(t, err, ErrTooSmall)
}

func TestDivisionGlyphMatchesPlus(t *testing.T) {
	wDiv, _ := textBox(labelFont, "÷", 1)
	wPlus, _ := textBox(labelFont, "+", 1)
	assert.Equal(t, wPlus, wDiv)
	assert.Positive(t, wDiv)

	fb := newFakeFB(64, 64)
	d := &fbDisplayer{fb: fb}
	d.drawText(labelFont, 8, 40, "÷", 1, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	lit := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if fb.pixel(x, y) != 0 {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xFF}, highlight(DefaultTheme().Digit))
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, highlight(DefaultTheme().Text))
}

// textPixelsAboveGrid counts text-colored pixels above the keypad, split into
// those inside and outside the display area.
func textPixelsAboveGrid(h *harness) (inside, outside int) {
	g := h.svc.Geometry()
	text := rgb565(DefaultTheme().Text)
	top := g.Rect(calc.AC).Min.Y - g.Spacing/2
	for y := 0; y < top; y++ {
		for x := 0; x < h.fb.w; x++ {
			if h.fb.pixel(x, y) != text {
				continue
			}
			if image.Pt(x, y).In(g.Display) {
				inside++
			} else {
				outside++
			}
		}
	}
	return inside, outside
}

func TestServiceDisplayTextNotClipped(t *testing.T) {
	for _, b := range []calc.Button{calc.Seven, calc.PlusMinus, calc.Divide, calc.AC, calc.Percent} {
		tall, err := newHarnessSize(320, 800, false)
		require.NoError(t, err)
		tall.svc.Press(b)
		require.NoError(t, tall.svc.Step())
		want, outside := textPixelsAboveGrid(tall)
		require.Positive(t, want, "%s drawn", b)
		require.Zero(t, outside, "%s on 320x800", b)

		for _, height := range []int{480, 400, 360} {
			h, err := newHarnessSize(320, height, false)
			require.NoError(t, err)
			h.svc.Press(b)
			require.NoError(t, h.svc.Step())

			inside, outside := textPixelsAboveGrid(h)
			assert.Zero(t, outside, "%s on 320x%d", b, height)
			assert.Equal(t, want, inside, "%s on 320x%d drawn in full", b, height)
		}
	}
}
