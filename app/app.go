// Package app wires the display state, the keypad UI and a HAL into one
// session driven by a per-tick step function.
package app

import (
	"fmt"

	"calcpad/calc"
	"calcpad/hal"
	"calcpad/internal/buildinfo"
	"calcpad/internal/config"
	"calcpad/ui"
)

// Config holds the session settings.
type Config struct {
	UI ui.Config
}

// FromFile converts a loaded configuration into session settings.
func FromFile(c config.Config) Config {
	return Config{UI: ui.Config{
		Spacing:      c.Layout.Spacing,
		DisplayScale: c.Layout.DisplayScale,
		LabelScale:   c.Layout.LabelScale,
		Theme: ui.Theme{
			Background: c.Theme.Background.RGBA(),
			Text:       c.Theme.Text.RGBA(),
			Digit:      c.Theme.Digit.RGBA(),
			Function:   c.Theme.Function.RGBA(),
			Operator:   c.Theme.Operator.RGBA(),
			Focus:      c.Theme.Focus.RGBA(),
		},
	}}
}

// Session is one run of the calculator: a display state and the keypad bound to it.
type Session struct {
	display *calc.Display
	ui      *ui.Service
	log     hal.Logger
}

// New starts a session on h.
func New(h hal.HAL, cfg Config) (*Session, error) {
	display := calc.NewDisplay()
	svc, err := ui.New(h.Display(), h.Input(), h.Time(), h.Logger(), display, cfg.UI)
	if err != nil {
		return nil, err
	}

	s := &Session{display: display, ui: svc, log: h.Logger()}
	if s.log != nil {
		g := svc.Geometry()
		s.log.WriteLineString(fmt.Sprintf("calcpad %s: keypad %dx%d unit=%d spacing=%d",
			buildinfo.Short(), g.Width, g.Height, g.Unit, g.Spacing))
	}
	return s, nil
}

// Display returns the session's display state.
func (s *Session) Display() *calc.Display { return s.display }

// Step runs one UI tick.
func (s *Session) Step() error { return s.ui.Step() }

// Close detaches the UI from the display state.
func (s *Session) Close() { s.ui.Close() }

// Stepper adapts New to the hal runners. A failed start surfaces on the first step.
func Stepper(cfg Config, started func(*Session)) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		s, err := New(h, cfg)
		if err != nil {
			return func() error { return fmt.Errorf("start: %w", err) }
		}
		if started != nil {
			started(s)
		}
		return s.Step
	}
}
