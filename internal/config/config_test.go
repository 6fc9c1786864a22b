package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prepareViper(t *testing.T, config string) {
	viper.SetConfigType("yaml")
	err := viper.ReadConfig(strings.NewReader(config))
	require.NoError(t, err)
	t.Cleanup(func() {
		viper.Reset()
	})
}

func TestLoadLimitSettings(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		prepareViper(t, `
admin:
    users:
        alice: hash
`)

		ls, err := LoadLimitSettings()
		require.NoError(t, err)

		assert.Equal(t, DefaultLimitSettings(), ls)
		assert.Equal(t, 10, ls.MaxAttemptsPerAddress)
		assert.Equal(t, 10, ls.MaxAttemptsPerUsername)
		assert.Equal(t, 15*time.Minute, ls.AddressResetInterval)
		assert.Equal(t, 15*time.Minute, ls.UsernameResetInterval)
		assert.False(t, ls.NormalizeUsernames)
	})

	t.Run("bare integer intervals are milliseconds", func(t *testing.T) {
		prepareViper(t, `
security:
    login_limit:
        address_reset_interval: 900000
        username_reset_interval: "60000"
`)

		ls, err := LoadLimitSettings()
		require.NoError(t, err)

		assert.Equal(t, 15*time.Minute, ls.AddressResetInterval)
		assert.Equal(t, time.Minute, ls.UsernameResetInterval)
	})

	t.Run("bare zero interval is rejected", func(t *testing.T) {
		prepareViper(t, `
security:
    login_limit:
        address_reset_interval: 0
`)

		_, err := LoadLimitSettings()
		var ce *ConfigurationError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, KeyAddressResetInterval, ce.Key)
	})

	t.Run("everything overridden", func(t *testing.T) {
		prepareViper(t, `
security:
    login_limit:
        max_attempts_per_address: 3
        address_reset_interval: 1ms
        max_attempts_per_username: 1
        username_reset_interval: 2h
        normalize_usernames: true
`)

		ls, err := LoadLimitSettings()
		require.NoError(t, err)

		assert.Equal(t, 3, ls.MaxAttemptsPerAddress)
		assert.Equal(t, time.Millisecond, ls.AddressResetInterval)
		assert.Equal(t, 1, ls.MaxAttemptsPerUsername)
		assert.Equal(t, 2*time.Hour, ls.UsernameResetInterval)
		assert.True(t, ls.NormalizeUsernames)
	})

	t.Run("explicit zero threshold is rejected", func(t *testing.T) {
		prepareViper(t, `
security:
    login_limit:
        max_attempts_per_address: 0
`)

		_, err := LoadLimitSettings()
		require.Error(t, err)

		var ce *ConfigurationError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, KeyMaxAttemptsPerAddress, ce.Key)
		assert.Equal(t, 0, ce.Value)
	})

	t.Run("interval below a millisecond is rejected", func(t *testing.T) {
		prepareViper(t, `
security:
    login_limit:
        username_reset_interval: 500us
`)

		_, err := LoadLimitSettings()
		require.Error(t, err)

		var ce *ConfigurationError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, KeyUsernameResetInterval, ce.Key)
	})

	t.Run("multiple problems are all reported", func(t *testing.T) {
		prepareViper(t, `
security:
    login_limit:
        max_attempts_per_address: -1
        address_reset_interval: 0s
        max_attempts_per_username: 0
        username_reset_interval: 0s
`)

		_, err := LoadLimitSettings()
		require.Error(t, err)
		assert.Len(t, flattenErrors(err), 4)
	})
}

func TestLimitSettings_Validate(t *testing.T) {
	t.Run("minimums are valid", func(t *testing.T) {
		ls := LimitSettings{
			MaxAttemptsPerAddress:  1,
			AddressResetInterval:   time.Millisecond,
			MaxAttemptsPerUsername: 1,
			UsernameResetInterval:  time.Millisecond,
		}
		assert.NoError(t, ls.Validate())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		err := LimitSettings{}.Validate()
		assert.Error(t, err)
		assert.Len(t, flattenErrors(err), 4)
	})
}

func TestValidateConfig(t *testing.T) {
	t.Run("everything is good", func(t *testing.T) {
		prepareViper(t, `
admin:
    users:
        alice: $argon2id$v=19$m=65536,t=3,p=2$f5DrCPQlwRJ5q1fA4K+i/g$c8XhJISMUI3wjIUULHvn0HIJinvOBBb4KnvOcvuJ4e0
`)

		assert.Empty(t, ValidateConfig())
	})

	t.Run("no admin users", func(t *testing.T) {
		prepareViper(t, `
security:
    login_limit:
        max_attempts_per_address: 4
`)

		errorsFound := ValidateConfig()
		assert.Len(t, errorsFound, 1)
		assert.Equal(t, "`admin.users` has no entries", errorsFound[0])
	})

	t.Run("bad limit", func(t *testing.T) {
		prepareViper(t, `
security:
    login_limit:
        max_attempts_per_username: 0
admin:
    users:
        alice: $argon2id$v=19$m=65536,t=3,p=2$f5DrCPQlwRJ5q1fA4K+i/g$c8XhJISMUI3wjIUULHvn0HIJinvOBBb4KnvOcvuJ4e0
`)

		errorsFound := ValidateConfig()
		assert.Len(t, errorsFound, 1)
		assert.Equal(t, "`security.login_limit.max_attempts_per_username` is invalid (0): must be at least 1", errorsFound[0])
	})

	t.Run("unusable password hashes", func(t *testing.T) {
		prepareViper(t, `
admin:
    users:
        alice: $argon2id$v=19$m=65536,t=3,p=2$f5DrCPQlwRJ5q1fA4K+i/g$c8XhJISMUI3wjIUULHvn0HIJinvOBBb4KnvOcvuJ4e0
        bob: $argon2id$v=19$m=65536,t=0,p=0$f5DrCPQlwRJ5q1fA4K+i/g$c8XhJISMUI3wjIUULHvn0HIJinvOBBb4KnvOcvuJ4e0
        carol: not-a-hash
`)

		errorsFound := ValidateConfig()
		assert.Equal(t, []string{
			"`admin.users.bob` has an invalid password hash",
			"`admin.users.carol` has an invalid password hash",
		}, errorsFound)
	})
}

func TestHandleLimitChange(t *testing.T) {
	t.Run("valid settings are passed along", func(t *testing.T) {
		prepareViper(t, `
security:
    login_limit:
        max_attempts_per_address: 4
`)

		var got *LimitSettings
		handleLimitChange(fsnotify.Event{Name: "adminguard.yaml", Op: fsnotify.Write}, func(ls LimitSettings) {
			got = &ls
		})

		require.NotNil(t, got)
		assert.Equal(t, 4, got.MaxAttemptsPerAddress)
	})

	t.Run("invalid settings are dropped", func(t *testing.T) {
		prepareViper(t, `
security:
    login_limit:
        max_attempts_per_address: 0
`)

		called := false
		handleLimitChange(fsnotify.Event{Name: "adminguard.yaml", Op: fsnotify.Write}, func(ls LimitSettings) {
			called = true
		})

		assert.False(t, called)
	})
}

func TestWriteDefaultConfig(t *testing.T) {
	t.Run("written config loads back to defaults", func(t *testing.T) {
		t.Cleanup(func() {
			viper.Reset()
		})

		path := filepath.Join(t.TempDir(), "adminguard.yaml")
		require.NoError(t, WriteDefaultConfig(path))

		viper.SetConfigFile(path)
		require.NoError(t, viper.ReadInConfig())

		ls, err := LoadLimitSettings()
		require.NoError(t, err)
		assert.Equal(t, DefaultLimitSettings(), ls)
		assert.Equal(t, "adminguard-audit.db", viper.GetString(KeyAuditDBFile))
	})

	t.Run("does not overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "adminguard.yaml")
		require.NoError(t, os.WriteFile(path, []byte("keep: me\n"), 0600))

		err := WriteDefaultConfig(path)
		assert.Error(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "keep: me\n", string(data))
	})
}

func TestIsProductionMode(t *testing.T) {
	t.Run("env var is unset", func(t *testing.T) {
		assert.False(t, IsProductionMode())
	})

	t.Run("env var is set to something non-prod", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "test")
		assert.False(t, IsProductionMode())
	})

	t.Run("env var indicates prod mode", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "prod")
		assert.True(t, IsProductionMode())
	})
}

func TestIsDebugLoggingEnabled(t *testing.T) {
	t.Run("env var is unset", func(t *testing.T) {
		assert.False(t, IsDebugLoggingEnabled())
	})

	t.Run("env var says yes", func(t *testing.T) {
		t.Setenv("DEBUG_LOG", "true")
		assert.True(t, IsDebugLoggingEnabled())
	})
}
