package config

import (
	"errors"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/lthummus/adminguard/internal/argon"
)

var (
	Lock sync.RWMutex

	initLock  sync.Mutex
	hasInit   bool
	initError error
)

func IsProductionMode() bool {
	return os.Getenv("ENVIRONMENT") == "prod"
}

func IsDebugLoggingEnabled() bool {
	return os.Getenv("DEBUG_LOG") == "true"
}

// Init locates and reads the config file and starts watching it for changes. It is safe to call more than once; only
// the first call does any work.
func Init() error {
	initLock.Lock()
	defer initLock.Unlock()

	if hasInit {
		return initError
	}
	hasInit = true

	Lock.Lock()
	defer Lock.Unlock()

	configFilePath := os.Getenv("CONFIG_FILE_PATH")
	if configFilePath == "" {
		viper.SetConfigName("adminguard")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("/config")
		viper.AddConfigPath(".")
	} else {
		viper.SetConfigFile(configFilePath)
	}

	err := viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			initError = err
			return initError
		}

		log.Error().Str("config_file", viper.ConfigFileUsed()).Err(err).Msg("could not read config")
		initError = err
		return initError
	}
	log.Info().Str("config_file_path", viper.ConfigFileUsed()).Msg("initialized configuration")
	viper.WatchConfig()

	return nil
}

// ValidateConfig returns a list of human readable problems with the current configuration. An empty list means the
// configuration is usable.
func ValidateConfig() []string {
	var errorsFound []string

	_, err := LoadLimitSettings()
	for _, curr := range flattenErrors(err) {
		var ce *ConfigurationError
		if errors.As(curr, &ce) {
			log.Error().Str("key", ce.Key).Any("value", ce.Value).Msg(ce.Reason)
			errorsFound = append(errorsFound, ce.Describe())
		} else {
			errorsFound = append(errorsFound, curr.Error())
		}
	}

	users := AdminCredentials()
	if len(users) == 0 {
		log.Warn().Msg("no admin users configured; every login attempt will fail")
		errorsFound = append(errorsFound, "`admin.users` has no entries")
	}
	for _, username := range slices.Sorted(maps.Keys(users)) {
		hash := users[username]
		if hash == "" {
			errorsFound = append(errorsFound, "`admin.users."+username+"` has an empty password hash")
			continue
		}
		if err := argon.CheckHash(hash); err != nil {
			log.Error().Str("username", username).Err(err).Msg("unusable admin password hash")
			errorsFound = append(errorsFound, "`admin.users."+username+"` has an invalid password hash")
		}
	}

	return errorsFound
}

func flattenErrors(err error) []error {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var ret []error
		for _, curr := range joined.Unwrap() {
			ret = append(ret, flattenErrors(curr)...)
		}
		return ret
	}

	return []error{err}
}

// AdminCredentials returns the configured admin users, keyed by username, with their argon2id password hashes.
func AdminCredentials() map[string]string {
	Lock.RLock()
	defer Lock.RUnlock()

	return viper.GetStringMapString(KeyAdminUsers)
}
