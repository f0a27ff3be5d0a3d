//go:build !tinygo && !cgo

package hal

func RunWindow(_ HostConfig, _ WindowConfig, _ func(h HAL) func() error) error {
	return ErrWindowUnavailable
}
