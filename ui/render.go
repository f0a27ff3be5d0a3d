package ui

import (
	"image"
	"image/color"
	"math"

	"calcpad/calc"
	"calcpad/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

var (
	labelFont   tinyfont.Fonter = divisionFont{base: &freesans.Regular18pt7b}
	displayFont tinyfont.Fonter = divisionFont{base: &freesans.Regular24pt7b}
)

// divisionFont adds a '÷' glyph to an ASCII-only font, sized like its '+'.
type divisionFont struct {
	base tinyfont.Fonter
}

func (f divisionFont) GetYAdvance() uint8 { return f.base.GetYAdvance() }

func (f divisionFont) GetGlyph(r rune) tinyfont.Glypher {
	if r == '÷' {
		return divisionGlyph{info: f.base.GetGlyph('+').Info()}
	}
	return f.base.GetGlyph(r)
}

type divisionGlyph struct {
	info tinyfont.GlyphInfo
}

func (g divisionGlyph) Info() tinyfont.GlyphInfo {
	info := g.info
	info.Rune = '÷'
	return info
}

func (g divisionGlyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	w := int16(g.info.Width)
	h := int16(g.info.Height)
	x0 := x + int16(g.info.XOffset)
	y0 := y + int16(g.info.YOffset)

	bar := h / 8
	if bar < 1 {
		bar = 1
	}
	dot := bar + bar/2 + 1
	mid := y0 + h/2
	cx := x0 + w/2

	fill := func(x, y, w, h int16) {
		for py := y; py < y+h; py++ {
			for px := x; px < x+w; px++ {
				display.SetPixel(px, py, c)
			}
		}
	}
	fill(x0, mid-bar/2, w, bar)
	fill(cx-dot/2, y0+h/8, dot, dot)
	fill(cx-dot/2, y0+h-h/8-dot, dot, dot)
}

// fbDisplayer adapts an RGB565 framebuffer to the drivers.Displayer contract.
// A non-empty clip limits drawing to that rectangle.
type fbDisplayer struct {
	fb   hal.Framebuffer
	clip image.Rectangle
}

func (d *fbDisplayer) bounds() image.Rectangle {
	r := image.Rect(0, 0, d.fb.Width(), d.fb.Height())
	if !d.clip.Empty() {
		r = r.Intersect(d.clip)
	}
	return r
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.setPixel(int(x), int(y), hal.RGB565(c.R, c.G, c.B))
}

func (d *fbDisplayer) setPixel(x, y int, pixel uint16) {
	if !image.Pt(x, y).In(d.bounds()) {
		return
	}
	buf := d.fb.Buffer()
	off := y*d.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }

func (d *fbDisplayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.fillRect(image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)), c)
	return nil
}

func (d *fbDisplayer) fillRect(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(d.bounds())
	if r.Empty() {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	buf := d.fb.Buffer()
	stride := d.fb.StrideBytes()
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := py * stride
		for px := r.Min.X; px < r.Max.X; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				return
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

// fillRoundRect fills r with corners of the given radius, clamped to half the shorter side.
func (d *fbDisplayer) fillRoundRect(r image.Rectangle, radius int, c color.RGBA) {
	w, h := r.Dx(), r.Dy()
	if radius*2 > w {
		radius = w / 2
	}
	if radius*2 > h {
		radius = h / 2
	}
	rf := float64(radius)
	for y := 0; y < h; y++ {
		var dy float64
		switch {
		case y < radius:
			dy = rf - float64(y) - 0.5
		case y >= h-radius:
			dy = float64(y-(h-radius)) + 0.5
		}
		inset := 0
		if dy > 0 {
			inset = int(math.Round(rf - math.Sqrt(math.Max(0, rf*rf-dy*dy))))
		}
		d.fillRect(image.Rect(r.Min.X+inset, r.Min.Y+y, r.Max.X-inset, r.Min.Y+y+1), c)
	}
}

// scaledDisplayer magnifies everything drawn through it by an integer factor around an origin.
type scaledDisplayer struct {
	d      *fbDisplayer
	ox, oy int16
	scale  int16
}

func (s scaledDisplayer) Size() (x, y int16) { return s.d.Size() }
func (s scaledDisplayer) Display() error     { return nil }

func (s scaledDisplayer) SetPixel(x, y int16, c color.RGBA) {
	px := int(s.ox + (x-s.ox)*s.scale)
	py := int(s.oy + (y-s.oy)*s.scale)
	n := int(s.scale)
	s.d.fillRect(image.Rect(px, py, px+n, py+n), c)
}

// textBox measures s in font f at the given scale: its advance width and the
// offset from the ink's vertical center to the baseline, based on the '0' glyph.
func textBox(f tinyfont.Fonter, s string, scale int) (width, baselineFromCenter int) {
	_, outbox := tinyfont.LineWidth(f, s)
	info := f.GetGlyph('0').Info()
	baselineFromCenter = -(int(info.YOffset) + int(info.Height)/2)
	return int(outbox) * scale, baselineFromCenter * scale
}

// lineExtent returns how far the ink of any keypad label reaches above and
// below the baseline in font f at the given scale.
func lineExtent(f tinyfont.Fonter, scale int) (ascent, descent int) {
	for _, b := range calc.All() {
		for _, r := range b.Label() {
			info := f.GetGlyph(r).Info()
			if a := -int(info.YOffset); a > ascent {
				ascent = a
			}
			if d := int(info.YOffset) + int(info.Height); d > descent {
				descent = d
			}
		}
	}
	return ascent * scale, descent * scale
}

// drawText writes s with its baseline starting at (x, y).
func (d *fbDisplayer) drawText(f tinyfont.Fonter, x, y int, s string, scale int, c color.RGBA) {
	if scale <= 1 {
		tinyfont.WriteLine(d, f, int16(x), int16(y), s, c)
		return
	}
	sd := scaledDisplayer{d: d, ox: int16(x), oy: int16(y), scale: int16(scale)}
	tinyfont.WriteLine(sd, f, int16(x), int16(y), s, c)
}
