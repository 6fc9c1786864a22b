package loginlimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lthummus/adminguard/internal/audit"
	"github.com/lthummus/adminguard/internal/config"
	"github.com/lthummus/adminguard/internal/durations"
)

// Limiter is what a login handler needs: ask before checking credentials, then report how it went.
type Limiter interface {
	IsOverLimit(username string, address string) bool
	RecordFailure(username string, address string)
	RecordSuccess(username string, address string)
}

const (
	FailedAttemptSummary     = "Failed admin console login attempt"
	SuccessfulAttemptSummary = "Successful admin console login attempt"

	addressLockoutNotice  = "Future login attempts from this address will be temporarily locked out."
	usernameLockoutNotice = "Future login attempts for this user will be temporarily locked out."
)

var ErrNilSink = errors.New("loginlimit: audit sink is nil")

// Decision is the result of checking a username/address pair against the current counters.
type Decision struct {
	AddressOverLimit  bool
	UsernameOverLimit bool
}

func (d Decision) Locked() bool {
	return d.AddressOverLimit || d.UsernameOverLimit
}

// Manager tracks failed admin logins per address and per username and decides when to turn further attempts away.
// Thresholds can be changed while running; reset intervals are fixed for the life of the Manager.
type Manager struct {
	store *Store
	sink  audit.Sink

	maxAttemptsPerAddress  atomic.Int64
	maxAttemptsPerUsername atomic.Int64

	addressResetInterval  time.Duration
	usernameResetInterval time.Duration
	normalizeUsernames    bool

	lifecycleLock sync.Mutex
	runCtx        context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

var _ Limiter = (*Manager)(nil)

func NewManager(settings config.LimitSettings, sink audit.Sink) (*Manager, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("loginlimit: NewManager: invalid settings: %w", err)
	}

	if sink == nil {
		return nil, ErrNilSink
	}

	log.Info().
		Int("max_attempts_per_address", settings.MaxAttemptsPerAddress).
		Str("address_reset_interval", durations.NiceDuration(settings.AddressResetInterval)).
		Int("max_attempts_per_username", settings.MaxAttemptsPerUsername).
		Str("username_reset_interval", durations.NiceDuration(settings.UsernameResetInterval)).
		Bool("normalize_usernames", settings.NormalizeUsernames).
		Msg("initializing admin login limiter")

	m := &Manager{
		store: NewStore(),
		sink:  sink,

		addressResetInterval:  settings.AddressResetInterval,
		usernameResetInterval: settings.UsernameResetInterval,
		normalizeUsernames:    settings.NormalizeUsernames,
	}
	m.maxAttemptsPerAddress.Store(int64(settings.MaxAttemptsPerAddress))
	m.maxAttemptsPerUsername.Store(int64(settings.MaxAttemptsPerUsername))

	return m, nil
}

func (m *Manager) usernameKey(username string) string {
	if m.normalizeUsernames {
		return normalizeUsername(username)
	}
	return username
}

func (m *Manager) MaxAttemptsPerAddress() int {
	return int(m.maxAttemptsPerAddress.Load())
}

func (m *Manager) MaxAttemptsPerUsername() int {
	return int(m.maxAttemptsPerUsername.Load())
}

func (m *Manager) SetMaxAttemptsPerAddress(n int) error {
	if err := config.ValidateMaxAttempts(config.KeyMaxAttemptsPerAddress, n); err != nil {
		return err
	}

	old := m.maxAttemptsPerAddress.Swap(int64(n))
	log.Info().Int64("old", old).Int("new", n).Msg("updated max login attempts per address")
	return nil
}

func (m *Manager) SetMaxAttemptsPerUsername(n int) error {
	if err := config.ValidateMaxAttempts(config.KeyMaxAttemptsPerUsername, n); err != nil {
		return err
	}

	old := m.maxAttemptsPerUsername.Swap(int64(n))
	log.Info().Int64("old", old).Int("new", n).Msg("updated max login attempts per username")
	return nil
}

// ApplySettings takes the live-changeable parts of settings. Anything that needs a restart is reported and ignored.
func (m *Manager) ApplySettings(settings config.LimitSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("loginlimit: ApplySettings: invalid settings: %w", err)
	}

	if settings.MaxAttemptsPerAddress != m.MaxAttemptsPerAddress() {
		_ = m.SetMaxAttemptsPerAddress(settings.MaxAttemptsPerAddress)
	}

	if settings.MaxAttemptsPerUsername != m.MaxAttemptsPerUsername() {
		_ = m.SetMaxAttemptsPerUsername(settings.MaxAttemptsPerUsername)
	}

	if settings.AddressResetInterval != m.addressResetInterval || settings.UsernameResetInterval != m.usernameResetInterval {
		log.Warn().
			Dur("address_reset_interval", settings.AddressResetInterval).
			Dur("username_reset_interval", settings.UsernameResetInterval).
			Msg("reset interval changes take effect after a restart")
	}

	if settings.NormalizeUsernames != m.normalizeUsernames {
		log.Warn().Bool("normalize_usernames", settings.NormalizeUsernames).Msg("username normalization changes take effect after a restart")
	}

	return nil
}

// Check looks at both counters for the pair. A key that has never failed counts as zero.
func (m *Manager) Check(username string, address string) Decision {
	addressCount, _ := m.store.Get(KeyspaceAddress, address)
	usernameCount, _ := m.store.Get(KeyspaceUsername, m.usernameKey(username))

	return Decision{
		AddressOverLimit:  addressCount > m.MaxAttemptsPerAddress(),
		UsernameOverLimit: usernameCount > m.MaxAttemptsPerUsername(),
	}
}

func (m *Manager) IsOverLimit(username string, address string) bool {
	return m.Check(username, address).Locked()
}

// AttemptCounts returns the number of recorded failures for the address and the username.
func (m *Manager) AttemptCounts(username string, address string) (int, int) {
	addressCount, _ := m.store.Get(KeyspaceAddress, address)
	usernameCount, _ := m.store.Get(KeyspaceUsername, m.usernameKey(username))
	return addressCount, usernameCount
}

// RecordFailure charges a failed attempt to both the address and the username. Every failure that leaves a counter
// over its threshold adds a lockout notice to the audit event, not only the first one.
func (m *Manager) RecordFailure(username string, address string) {
	addressCount := m.store.Increment(KeyspaceAddress, address)
	usernameCount := m.store.Increment(KeyspaceUsername, m.usernameKey(username))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("A failed login attempt to the admin console was made from address %s.", address))

	if maxAttempts := m.MaxAttemptsPerAddress(); addressCount > maxAttempts {
		log.Warn().Str("address", address).Int("attempts", addressCount).Int("max_attempts", maxAttempts).Msg("login attempt limit breached for address")
		sb.WriteString(" ")
		sb.WriteString(addressLockoutNotice)
	}

	if maxAttempts := m.MaxAttemptsPerUsername(); usernameCount > maxAttempts {
		log.Warn().Str("username", username).Int("attempts", usernameCount).Int("max_attempts", maxAttempts).Msg("login attempt limit breached for username")
		sb.WriteString(" ")
		sb.WriteString(usernameLockoutNotice)
	}

	m.notify(username, FailedAttemptSummary, sb.String())
}

// RecordSuccess forgets every failure recorded against the address and the username.
func (m *Manager) RecordSuccess(username string, address string) {
	m.store.Clear(KeyspaceAddress, address)
	m.store.Clear(KeyspaceUsername, m.usernameKey(username))

	m.notify(username, SuccessfulAttemptSummary, fmt.Sprintf("The user logged in successfully to the admin console from address %s.", address))
}

func (m *Manager) notify(identity string, summary string, detail string) {
	if err := m.sink.LogEvent(identity, summary, detail); err != nil {
		log.Error().Err(err).Str("identity", identity).Str("summary", summary).Msg("could not record audit event")
	}
}
