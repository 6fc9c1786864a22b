package cmd

import (
	"errors"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lthummus/adminguard/internal/audit"
	"github.com/lthummus/adminguard/internal/config"
)

var auditLimit int

func init() {
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", 25, "number of events to show")
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "shows the most recent audit events from the audit database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		dbFile := viper.GetString(config.KeyAuditDBFile)
		if dbFile == "" {
			return errors.New("adminguard: audit: `audit.db_file` is not set")
		}

		s, err := audit.NewSQLiteSink(dbFile)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.Recent(cmd.Context(), auditLimit)
		if err != nil {
			return err
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.AppendHeader(table.Row{"Time", "Identity", "Summary", "Detail"})
		for _, curr := range events {
			tw.AppendRow(table.Row{curr.Timestamp.Format(time.RFC3339), curr.Identity, curr.Summary, curr.Detail})
		}
		tw.SetStyle(table.StyleLight)
		tw.Render()

		return nil
	},
}
