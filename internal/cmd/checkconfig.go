package cmd

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lthummus/adminguard/internal/config"
	"github.com/lthummus/adminguard/internal/durations"
)

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "validates the config file and prints the effective login limits",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		if configErrors := config.ValidateConfig(); len(configErrors) > 0 {
			for _, curr := range configErrors {
				fmt.Fprintf(cmd.OutOrStdout(), "  * %s\n", curr)
			}
			return fmt.Errorf("adminguard: check-config: found %d problems", len(configErrors))
		}

		settings, err := config.LoadLimitSettings()
		if err != nil {
			return err
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.AppendHeader(table.Row{"Setting", "Value", "Changes Live"})
		tw.AppendRows(limitRows(settings))
		tw.AppendFooter(table.Row{"Admin users", len(config.AdminCredentials()), "yes"})
		tw.SetStyle(table.StyleLight)
		tw.Render()

		return nil
	},
}

func limitRows(ls config.LimitSettings) []table.Row {
	return []table.Row{
		{config.KeyMaxAttemptsPerAddress, strconv.Itoa(ls.MaxAttemptsPerAddress), "yes"},
		{config.KeyAddressResetInterval, durations.NiceDuration(ls.AddressResetInterval), "no"},
		{config.KeyMaxAttemptsPerUsername, strconv.Itoa(ls.MaxAttemptsPerUsername), "yes"},
		{config.KeyUsernameResetInterval, durations.NiceDuration(ls.UsernameResetInterval), "no"},
		{config.KeyNormalizeUsernames, strconv.FormatBool(ls.NormalizeUsernames), "no"},
	}
}
