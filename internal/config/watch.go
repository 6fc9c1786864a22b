package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// WatchLimits calls onChange with freshly loaded limit settings every time the config file changes. Invalid settings
// are logged and dropped so that callers only ever see values that passed validation.
func WatchLimits(onChange func(LimitSettings)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		handleLimitChange(e, onChange)
	})
}

func handleLimitChange(e fsnotify.Event, onChange func(LimitSettings)) {
	log.Info().Str("file", e.Name).Str("op", e.Op.String()).Msg("config file changed")

	ls, err := LoadLimitSettings()
	if err != nil {
		log.Error().Err(err).Msg("ignoring invalid login limit settings from changed config")
		return
	}

	onChange(ls)
}
