//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// RunHeadless runs the UI without opening a window.
func RunHeadless(ctx context.Context, hostCfg HostConfig, cfg HeadlessConfig, newApp func(HAL) func() error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.LogOutput == nil {
		cfg.LogOutput = os.Stdout
	}

	h := newHost(hostCfg, cfg.LogOutput)
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	keys := []rune(cfg.Keys)
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if len(keys) > 0 {
				h.kbd.inject(keyEventForRune(keys[0]))
				keys = keys[1:]
			}
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				if cfg.Done != nil {
					return cfg.Done(h)
				}
				return nil
			}
		}
	}
}

func keyEventForRune(r rune) KeyEvent {
	switch r {
	case '\n', '\r':
		return KeyEvent{Code: KeyEnter, Press: true}
	case ' ':
		return KeyEvent{Code: KeySpace, Press: true}
	case '\t':
		return KeyEvent{Code: KeyTab, Press: true}
	case 0x1b:
		return KeyEvent{Code: KeyEscape, Press: true}
	}
	return KeyEvent{Press: true, Rune: r}
}
