package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lthummus/adminguard/internal/config"
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config [path]",
	Short: "writes a starter config file with the default login limits",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "adminguard.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		return config.WriteDefaultConfig(path)
	},
}
