package main

import (
	"github.com/rs/zerolog/log"

	"github.com/lthummus/adminguard/internal/ainit"
	"github.com/lthummus/adminguard/internal/cmd"
)

func main() {
	log.Info().Bool("loaded", ainit.Loaded()).Msg("initializing services")
	cmd.Execute()
}
