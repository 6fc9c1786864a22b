package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lthummus/adminguard/internal/argon"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "reads a password from stdin and prints an argon2id hash for `admin.users`",
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(cmd.InOrStdin())
		password, err := reader.ReadString('\n')
		if err != nil && password == "" {
			return fmt.Errorf("adminguard: hash-password: could not read password: %w", err)
		}

		password = strings.TrimRight(password, "\r\n")
		if password == "" {
			return errors.New("adminguard: hash-password: password is empty")
		}

		hash, err := argon.GenerateFromPassword(password)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}
