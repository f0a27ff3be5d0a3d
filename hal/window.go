package hal

import "io"

// HostConfig sizes the host framebuffer.
type HostConfig struct {
	Width  int
	Height int
}

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title string
	Scale int
	TPS   int
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64

	// Keys is typed into the keyboard, one rune per tick, starting at the first tick.
	Keys string

	// LogOutput receives logger lines. Defaults to stdout.
	LogOutput io.Writer

	// Done is called with the HAL after the last tick, before RunHeadless returns.
	Done func(HAL) error
}
