package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lthummus/adminguard/internal/dialback"
)

var (
	dialbackFrom string
	dialbackTo   string
)

func init() {
	dialbackInvalidCmd.Flags().StringVar(&dialbackFrom, "from", "", "domain that sent the key")
	dialbackInvalidCmd.Flags().StringVar(&dialbackTo, "to", "", "domain the key was sent to")
}

var dialbackInvalidCmd = &cobra.Command{
	Use:   "dialback-invalid",
	Short: "prints the dialback result element rejecting a key",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dialbackFrom == "" || dialbackTo == "" {
			return errors.New("adminguard: dialback-invalid: both --from and --to must be specified")
		}

		out, err := dialback.NewInvalidKeyError(dialbackFrom, dialbackTo).XML()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}
