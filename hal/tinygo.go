//go:build tinygo

package hal

import "context"

// RunWindow is not available on microcontroller targets.
func RunWindow(_ HostConfig, _ WindowConfig, _ func(h HAL) func() error) error {
	return ErrNotImplemented
}

// RunHeadless is not available on microcontroller targets.
func RunHeadless(_ context.Context, _ HostConfig, _ HeadlessConfig, _ func(h HAL) func() error) error {
	return ErrNotImplemented
}
