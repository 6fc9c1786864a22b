package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

type loginLimitBlock struct {
	MaxAttemptsPerAddress  int    `yaml:"max_attempts_per_address"`
	AddressResetInterval   string `yaml:"address_reset_interval"`
	MaxAttemptsPerUsername int    `yaml:"max_attempts_per_username"`
	UsernameResetInterval  string `yaml:"username_reset_interval"`
	NormalizeUsernames     bool   `yaml:"normalize_usernames"`
}

type starterConfig struct {
	Security struct {
		LoginLimit loginLimitBlock `yaml:"login_limit"`
	} `yaml:"security"`
	Admin struct {
		Users map[string]string `yaml:"users"`
	} `yaml:"admin"`
	Audit struct {
		DBFile string `yaml:"db_file"`
	} `yaml:"audit"`
}

// WriteDefaultConfig writes a starter config file holding the default limits. An existing file is never overwritten.
func WriteDefaultConfig(path string) error {
	defaults := DefaultLimitSettings()

	var sc starterConfig
	sc.Security.LoginLimit = loginLimitBlock{
		MaxAttemptsPerAddress:  defaults.MaxAttemptsPerAddress,
		AddressResetInterval:   defaults.AddressResetInterval.String(),
		MaxAttemptsPerUsername: defaults.MaxAttemptsPerUsername,
		UsernameResetInterval:  defaults.UsernameResetInterval.String(),
		NormalizeUsernames:     defaults.NormalizeUsernames,
	}
	sc.Admin.Users = map[string]string{}
	sc.Audit.DBFile = "adminguard-audit.db"

	data, err := yaml.Marshal(sc)
	if err != nil {
		log.Error().Err(err).Msg("could not marshal")
		return fmt.Errorf("config: WriteDefaultConfig: could not marshal config: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("config: WriteDefaultConfig: could not create file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("config: WriteDefaultConfig: could not write file: %w", err)
	}

	log.Info().Str("config_file_path", path).Int("bytes_written", len(data)).Msg("wrote config file")

	return nil
}
