// Package ui draws the calculator keypad into a framebuffer and turns key
// presses and taps into button presses on a calc.Display.
package ui

import (
	"fmt"

	"calcpad/calc"
	"calcpad/hal"
)

// pressFlashTicks is how long a pressed key stays highlighted (host ticks are 1ms).
const pressFlashTicks = 120

// Config controls keypad layout and appearance.
type Config struct {
	Spacing      int
	DisplayScale int
	LabelScale   int
	Theme        Theme
}

// DefaultConfig returns the stock layout.
func DefaultConfig() Config {
	return Config{
		Spacing:      12,
		DisplayScale: 2,
		LabelScale:   1,
		Theme:        DefaultTheme(),
	}
}

// Service draws the keypad and feeds presses into a calc.Display.
type Service struct {
	cfg Config
	log hal.Logger

	fb     hal.Framebuffer
	d      fbDisplayer
	keys   <-chan hal.KeyEvent
	taps   <-chan hal.Tap
	ticks  <-chan uint64
	geo    Geometry
	cancel func()

	display *calc.Display

	focus calc.Button
	dirty bool

	now          uint64
	pressed      calc.Button
	pressedUntil uint64
	flashing     bool
}

// New binds a keypad to a display state. Input devices and the tick source are optional.
func New(disp hal.Display, in hal.Input, t hal.Time, log hal.Logger, display *calc.Display, cfg Config) (*Service, error) {
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("ui: no framebuffer: %w", hal.ErrNotImplemented)
	}
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("ui: unsupported pixel format %d: %w", fb.Format(), hal.ErrNotImplemented)
	}
	if cfg.DisplayScale <= 0 {
		cfg.DisplayScale = 1
	}
	if cfg.LabelScale <= 0 {
		cfg.LabelScale = 1
	}

	ascent, descent := lineExtent(displayFont, cfg.DisplayScale)
	geo, err := NewGeometry(fb.Width(), fb.Height(), cfg.Spacing, ascent+descent)
	if err != nil {
		return nil, fmt.Errorf("ui: %dx%d: %w", fb.Width(), fb.Height(), err)
	}

	s := &Service{
		cfg:     cfg,
		log:     log,
		fb:      fb,
		d:       fbDisplayer{fb: fb},
		geo:     geo,
		display: display,
		focus:   calc.AC,
		dirty:   true,
	}
	if in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.keys = kbd.Events()
		}
		if ptr := in.Pointer(); ptr != nil {
			s.taps = ptr.Taps()
		}
	}
	if t != nil {
		s.ticks = t.Ticks()
	}
	s.cancel = display.Subscribe(func(string) { s.dirty = true })
	return s, nil
}

// Geometry returns the keypad layout in framebuffer coordinates.
func (s *Service) Geometry() Geometry { return s.geo }

// Focus returns the button the focus ring is on.
func (s *Service) Focus() calc.Button { return s.focus }

// Close detaches the service from its display state.
func (s *Service) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Step drains pending input without blocking and redraws if anything changed.
func (s *Service) Step() error {
	s.drainTicks()
	s.drainKeys()
	s.drainTaps()

	if s.flashing && s.now >= s.pressedUntil {
		s.flashing = false
		s.dirty = true
	}
	if !s.dirty {
		return nil
	}
	s.dirty = false
	s.render()
	return s.fb.Present()
}

// Press delivers b to the display as if its key had been hit.
func (s *Service) Press(b calc.Button) {
	if !b.Valid() {
		return
	}
	if b != s.focus {
		s.focus = b
		s.dirty = true
	}
	if s.ticks != nil {
		s.pressed = b
		s.pressedUntil = s.now + pressFlashTicks
		s.flashing = true
		s.dirty = true
	}
	s.display.ReceiveInput(b)
	if s.log != nil {
		s.log.WriteLineString(fmt.Sprintf("calc: press %s display=%q", b, s.display.Text()))
	}
}

func (s *Service) drainTicks() {
	for {
		select {
		case now, ok := <-s.ticks:
			if !ok {
				s.ticks = nil
				return
			}
			s.now = now
		default:
			return
		}
	}
}

func (s *Service) drainKeys() {
	for {
		select {
		case ev, ok := <-s.keys:
			if !ok {
				s.keys = nil
				return
			}
			s.handleKey(ev)
		default:
			return
		}
	}
}

func (s *Service) drainTaps() {
	for {
		select {
		case tap, ok := <-s.taps:
			if !ok {
				s.taps = nil
				return
			}
			if b, hit := s.geo.HitTest(tap.X, tap.Y); hit {
				s.Press(b)
			}
		default:
			return
		}
	}
}

func (s *Service) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	if ev.Code == hal.KeyUnknown {
		if b, ok := calc.ButtonForRune(ev.Rune); ok {
			s.Press(b)
		}
		return
	}

	switch ev.Code {
	case hal.KeyEnter:
		s.Press(calc.Equals)
	case hal.KeyEscape, hal.KeyDelete:
		s.Press(calc.AC)
	case hal.KeySpace, hal.KeyTab:
		s.Press(s.focus)
	case hal.KeyUp:
		s.moveFocus(-1, 0)
	case hal.KeyDown:
		s.moveFocus(1, 0)
	case hal.KeyLeft:
		s.moveFocus(0, -1)
	case hal.KeyRight:
		s.moveFocus(0, 1)
	}
}

func (s *Service) moveFocus(dr, dc int) {
	next := moveFocus(s.focus, dr, dc)
	if next != s.focus {
		s.focus = next
		s.dirty = true
	}
}

func (s *Service) render() {
	t := s.cfg.Theme
	s.fb.ClearRGB(t.Background.R, t.Background.G, t.Background.B)

	s.renderDisplay()

	ring := s.geo.Spacing / 4
	if ring < 1 {
		ring = 1
	}
	for _, b := range calc.All() {
		r := s.geo.Rect(b)
		if b == s.focus {
			s.d.fillRoundRect(r.Inset(-ring), r.Dy()/2+ring, t.Focus)
		}
		c := t.ButtonColor(b.Category())
		if s.flashing && b == s.pressed {
			c = highlight(c)
		}
		s.d.fillRoundRect(r, r.Dy()/2, c)

		w, base := textBox(labelFont, b.Label(), s.cfg.LabelScale)
		cx := (r.Min.X + r.Max.X) / 2
		cy := (r.Min.Y + r.Max.Y) / 2
		s.d.drawText(labelFont, cx-w/2, cy+base, b.Label(), s.cfg.LabelScale, t.Text)
	}
}

func (s *Service) renderDisplay() {
	text := s.display.Text()
	if text == "" {
		return
	}
	area := s.geo.Display
	w, _ := textBox(displayFont, text, s.cfg.DisplayScale)
	_, descent := lineExtent(displayFont, s.cfg.DisplayScale)
	d := fbDisplayer{fb: s.fb, clip: area}
	d.drawText(displayFont, area.Max.X-w, area.Max.Y-descent, text, s.cfg.DisplayScale, s.cfg.Theme.Text)
}
