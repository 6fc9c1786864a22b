package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	DefaultMaxAttemptsPerAddress  = 10
	DefaultAddressResetInterval   = 15 * time.Minute
	DefaultMaxAttemptsPerUsername = 10
	DefaultUsernameResetInterval  = 15 * time.Minute

	MinMaxAttempts   = 1
	MinResetInterval = time.Millisecond
)

// ConfigurationError is returned when a configured value falls outside of its allowed range.
type ConfigurationError struct {
	Key    string
	Value  any
	Reason string
}

func (ce *ConfigurationError) Error() string {
	return fmt.Sprintf("config: invalid value %v for %s: %s", ce.Value, ce.Key, ce.Reason)
}

// Describe renders the error the same way the rest of ValidateConfig's output looks.
func (ce *ConfigurationError) Describe() string {
	return fmt.Sprintf("`%s` is invalid (%v): %s", ce.Key, ce.Value, ce.Reason)
}

// LimitSettings holds the login limiter tunables. MaxAttemptsPerAddress and MaxAttemptsPerUsername may be changed
// while running; the reset intervals only take effect on restart.
type LimitSettings struct {
	MaxAttemptsPerAddress  int
	AddressResetInterval   time.Duration
	MaxAttemptsPerUsername int
	UsernameResetInterval  time.Duration
	NormalizeUsernames     bool
}

func DefaultLimitSettings() LimitSettings {
	return LimitSettings{
		MaxAttemptsPerAddress:  DefaultMaxAttemptsPerAddress,
		AddressResetInterval:   DefaultAddressResetInterval,
		MaxAttemptsPerUsername: DefaultMaxAttemptsPerUsername,
		UsernameResetInterval:  DefaultUsernameResetInterval,
	}
}

func ValidateMaxAttempts(key string, n int) error {
	if n < MinMaxAttempts {
		return &ConfigurationError{Key: key, Value: n, Reason: fmt.Sprintf("must be at least %d", MinMaxAttempts)}
	}
	return nil
}

func ValidateResetInterval(key string, d time.Duration) error {
	if d < MinResetInterval {
		return &ConfigurationError{Key: key, Value: d, Reason: fmt.Sprintf("must be at least %s", MinResetInterval)}
	}
	return nil
}

// Validate checks every value against its minimum. All problems are reported, joined together.
func (ls LimitSettings) Validate() error {
	return errors.Join(
		ValidateMaxAttempts(KeyMaxAttemptsPerAddress, ls.MaxAttemptsPerAddress),
		ValidateResetInterval(KeyAddressResetInterval, ls.AddressResetInterval),
		ValidateMaxAttempts(KeyMaxAttemptsPerUsername, ls.MaxAttemptsPerUsername),
		ValidateResetInterval(KeyUsernameResetInterval, ls.UsernameResetInterval),
	)
}

// LoadLimitSettings reads the limiter settings from viper. Keys that are not set at all fall back to their defaults;
// keys that are set to something out of range are an error.
func LoadLimitSettings() (LimitSettings, error) {
	Lock.RLock()
	defer Lock.RUnlock()

	// we do it this way so we don't mistakenly pollute the config file with our values
	ls := DefaultLimitSettings()

	if viper.IsSet(KeyMaxAttemptsPerAddress) {
		ls.MaxAttemptsPerAddress = viper.GetInt(KeyMaxAttemptsPerAddress)
	}

	if viper.IsSet(KeyAddressResetInterval) {
		ls.AddressResetInterval = getResetInterval(KeyAddressResetInterval)
	}

	if viper.IsSet(KeyMaxAttemptsPerUsername) {
		ls.MaxAttemptsPerUsername = viper.GetInt(KeyMaxAttemptsPerUsername)
	}

	if viper.IsSet(KeyUsernameResetInterval) {
		ls.UsernameResetInterval = getResetInterval(KeyUsernameResetInterval)
	}

	ls.NormalizeUsernames = viper.GetBool(KeyNormalizeUsernames)

	if err := ls.Validate(); err != nil {
		return LimitSettings{}, err
	}

	return ls, nil
}

// getResetInterval reads a duration string like "15m", or a bare integer taken as milliseconds.
func getResetInterval(key string) time.Duration {
	raw := viper.Get(key)
	if d, ok := raw.(time.Duration); ok {
		return d
	}

	if ms, err := cast.ToInt64E(raw); err == nil {
		return time.Duration(ms) * time.Millisecond
	}

	return viper.GetDuration(key)
}
