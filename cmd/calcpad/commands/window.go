package commands

import (
	"github.com/spf13/cobra"

	"calcpad/app"
	"calcpad/hal"
	"calcpad/internal/buildinfo"
)

func windowCmd() *cobra.Command {
	var scale int
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open the keypad in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("scale") {
				cfg.Screen.Scale = scale
			}
			return hal.RunWindow(
				hal.HostConfig{Width: cfg.Screen.Width, Height: cfg.Screen.Height},
				hal.WindowConfig{
					Title: "Calculator (" + buildinfo.Short() + ")",
					Scale: cfg.Screen.Scale,
					TPS:   cfg.Screen.TPS,
				},
				app.Stepper(app.FromFile(cfg), nil),
			)
		},
	}
	cmd.Flags().IntVar(&scale, "scale", 2, "window pixels per framebuffer pixel")
	return cmd
}
