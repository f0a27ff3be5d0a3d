// Package config loads the calcpad YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalid      = errors.New("invalid config")
)

// MaxDimension bounds the screen width and height; the framebuffer is
// allocated up front at that size.
const MaxDimension = 4096

// Config is the full calcpad configuration.
type Config struct {
	Screen Screen `yaml:"screen"`
	Layout Layout `yaml:"layout"`
	Theme  Theme  `yaml:"theme"`
}

// Screen sizes the framebuffer and the host window.
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
	TPS    int `yaml:"tps"`
}

// Layout controls keypad spacing and text magnification.
type Layout struct {
	Spacing      int `yaml:"spacing"`
	DisplayScale int `yaml:"displayScale"`
	LabelScale   int `yaml:"labelScale"`
}

// Theme holds the keypad colors as #RRGGBB strings.
type Theme struct {
	Background Color `yaml:"background"`
	Text       Color `yaml:"text"`
	Digit      Color `yaml:"digit"`
	Function   Color `yaml:"function"`
	Operator   Color `yaml:"operator"`
	Focus      Color `yaml:"focus"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: Screen{Width: 320, Height: 480, Scale: 2, TPS: 60},
		Layout: Layout{Spacing: 12, DisplayScale: 2, LabelScale: 1},
		Theme: Theme{
			Background: Color{A: 0xFF},
			Text:       Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
			Digit:      Color{R: 0x55, G: 0x55, B: 0x55, A: 0xFF},
			Function:   Color{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF},
			Operator:   Color{R: 0xFF, G: 0x95, B: 0x00, A: 0xFF},
			Focus:      Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		},
	}
}

// Load reads path over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Screen.Width > MaxDimension || c.Screen.Height > MaxDimension:
		return fmt.Errorf("%w: screen size %dx%d exceeds %d", ErrInvalid, c.Screen.Width, c.Screen.Height, MaxDimension)
	case c.Screen.Scale <= 0:
		return fmt.Errorf("%w: screen scale %d", ErrInvalid, c.Screen.Scale)
	case c.Screen.TPS <= 0:
		return fmt.Errorf("%w: screen tps %d", ErrInvalid, c.Screen.TPS)
	case c.Layout.Spacing < 0:
		return fmt.Errorf("%w: layout spacing %d", ErrInvalid, c.Layout.Spacing)
	case c.Layout.DisplayScale <= 0 || c.Layout.LabelScale <= 0:
		return fmt.Errorf("%w: text scales %d/%d", ErrInvalid, c.Layout.DisplayScale, c.Layout.LabelScale)
	}
	return nil
}

// Encode writes c as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Color is an opaque RGB color written as "#RRGGBB" (or "#RGB").
type Color color.RGBA

// RGBA returns c as a color.RGBA.
func (c Color) RGBA() color.RGBA { return color.RGBA(c) }

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseColor parses "#RRGGBB" or "#RGB".
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return Color{}, fmt.Errorf("%w %q: missing '#'", ErrInvalidColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w %q: want #RRGGBB", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
