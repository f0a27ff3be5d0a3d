// Package commands implements the calcpad command line.
package commands

import (
	"github.com/spf13/cobra"

	"calcpad/internal/config"
)

var (
	configPath string
	cfg        config.Config
)

func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "calcpad",
		Short:         "Calculator keypad UI",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (default: built-in settings)")

	root.AddCommand(windowCmd(), headlessCmd(), configCmd(), versionCmd())
	return root
}
