package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkConfigCmd)
	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(hashPasswordCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(dialbackInvalidCmd)
}

var rootCmd = &cobra.Command{
	Use:          "adminguard",
	Short:        "adminguard protects an admin console login from brute force attempts",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}
