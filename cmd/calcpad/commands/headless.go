package commands

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"calcpad/app"
	"calcpad/hal"
)

type headlessOptions struct {
	hz       int
	ticks    uint64
	keys     string
	snapshot string
}

func headlessCmd() *cobra.Command {
	var opts headlessOptions
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the keypad without a window, typing keys from --keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("hz") {
				opts.hz = cfg.Screen.TPS
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			err := runHeadless(ctx, opts)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVar(&opts.hz, "hz", 60, "tick rate")
	cmd.Flags().Uint64Var(&opts.ticks, "ticks", 0, "stop after N ticks (0 = run until interrupted)")
	cmd.Flags().StringVar(&opts.keys, "keys", "", "characters to type, one per tick")
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "write the final framebuffer to this PNG file")
	return cmd
}

func runHeadless(ctx context.Context, opts headlessOptions) error {
	var session *app.Session
	return hal.RunHeadless(ctx,
		hal.HostConfig{Width: cfg.Screen.Width, Height: cfg.Screen.Height},
		hal.HeadlessConfig{
			Hz:    opts.hz,
			Ticks: opts.ticks,
			Keys:  opts.keys,
			Done: func(h hal.HAL) error {
				if session != nil {
					h.Logger().WriteLineString(fmt.Sprintf("display: %q", session.Display().Text()))
				}
				if opts.snapshot == "" {
					return nil
				}
				return writeSnapshot(h.Display().Framebuffer(), opts.snapshot)
			},
		},
		app.Stepper(app.FromFile(cfg), func(s *app.Session) { session = s }),
	)
}

func writeSnapshot(fb hal.Framebuffer, path string) error {
	img, err := hal.Snapshot(fb)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}
