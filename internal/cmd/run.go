package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lthummus/adminguard/internal/adminauth"
	"github.com/lthummus/adminguard/internal/ainit"
	"github.com/lthummus/adminguard/internal/audit"
	"github.com/lthummus/adminguard/internal/config"
	"github.com/lthummus/adminguard/internal/console"
	"github.com/lthummus/adminguard/internal/loginlimit"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "runs the login guard, reading `<username> <address> <password>` attempts from stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGuard(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func initConfig() error {
	err := config.Init()
	if err != nil {
		var fileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &fileNotFoundError) {
			return fmt.Errorf("adminguard: no config file found; create one with `adminguard init-config`: %w", err)
		}
		return err
	}

	ainit.ConfigureFileLogging()

	return nil
}

func buildSink() (audit.Sink, func(), error) {
	logSink := audit.NewLogSink()

	config.Lock.RLock()
	dbFile := viper.GetString(config.KeyAuditDBFile)
	config.Lock.RUnlock()

	if dbFile == "" {
		log.Warn().Msg("no audit database configured; audit events only go to the log")
		return logSink, func() {}, nil
	}

	dbSink, err := audit.NewSQLiteSink(dbFile)
	if err != nil {
		return nil, nil, err
	}

	closer := func() {
		log.Info().Msg("closing audit database")
		if err := dbSink.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing audit database")
		}
	}

	return audit.Multi(logSink, dbSink), closer, nil
}

func runGuard(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := initConfig(); err != nil {
		return err
	}

	if configErrors := config.ValidateConfig(); len(configErrors) > 0 {
		log.Error().Strs("problems", configErrors).Msg("invalid configuration")
		return fmt.Errorf("adminguard: run: invalid configuration (%d problems); see `adminguard check-config`", len(configErrors))
	}

	settings, err := config.LoadLimitSettings()
	if err != nil {
		return err
	}

	sink, closeSink, err := buildSink()
	if err != nil {
		return err
	}
	defer closeSink()

	manager, err := loginlimit.NewManager(settings, sink)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager.Start(ctx)
	defer manager.Stop()

	config.WatchLimits(func(ls config.LimitSettings) {
		if err := manager.ApplySettings(ls); err != nil {
			log.Error().Err(err).Msg("could not apply new login limit settings")
		}
	})

	log.Info().Msg("services initialized")

	guard := adminauth.NewGuard(manager, adminauth.ConfigCredentials{})

	err = console.Run(ctx, in, out, guard)
	if errors.Is(err, context.Canceled) {
		log.Warn().Msg("interrupt received")
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().Msg("input closed; shutting down")
	return nil
}
