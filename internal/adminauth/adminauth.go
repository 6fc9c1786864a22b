package adminauth

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/lthummus/adminguard/internal/argon"
	"github.com/lthummus/adminguard/internal/config"
	"github.com/lthummus/adminguard/internal/loginlimit"
)

type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeInvalidCredentials
	OutcomeLockedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "ok"
	case OutcomeInvalidCredentials:
		return "invalid"
	case OutcomeLockedOut:
		return "locked"
	default:
		return "unknown"
	}
}

// CredentialStore looks up the argon2id hash for an admin user.
type CredentialStore interface {
	PasswordHash(username string) (string, bool)
}

type StaticCredentials map[string]string

func (sc StaticCredentials) PasswordHash(username string) (string, bool) {
	hash, found := sc[username]
	return hash, found
}

// ConfigCredentials reads admin users from the live configuration on every lookup, so edits to the config file take
// effect without a restart.
type ConfigCredentials struct{}

func (ConfigCredentials) PasswordHash(username string) (string, bool) {
	hash, found := config.AdminCredentials()[username]
	return hash, found
}

// fakeArgonHash is checked against when the user does not exist so that user existence can not be detected via timing.
// It is generated with the configured argon parameters so the timing matches real hashes.
var fakeArgonHash = sync.OnceValues(func() (string, error) {
	return argon.GenerateFromPassword("hello world this is my fake password")
})

// Guard runs admin logins through the limiter: check first, then verify credentials, then report the result.
type Guard struct {
	limiter     loginlimit.Limiter
	credentials CredentialStore
}

func NewGuard(limiter loginlimit.Limiter, credentials CredentialStore) *Guard {
	return &Guard{
		limiter:     limiter,
		credentials: credentials,
	}
}

func (g *Guard) Attempt(username string, password string, address string) Outcome {
	if g.limiter.IsOverLimit(username, address) {
		log.Warn().Str("ip", address).Str("username", username).Msg("rejecting login from locked out address or user")
		return OutcomeLockedOut
	}

	hash, found := g.credentials.PasswordHash(username)
	if !found {
		log.Error().Str("ip", address).Msg("invalid login")

		fake, err := fakeArgonHash()
		if err != nil {
			log.Error().Err(err).Msg("could not generate fake hash -- is your argon configuration ok?")
		} else {
			_ = argon.ValidatePassword(password, fake)
		}

		g.limiter.RecordFailure(username, address)
		return OutcomeInvalidCredentials
	}

	if err := argon.ValidatePassword(password, hash); err != nil {
		if !errors.Is(err, argon.ErrWrongPassword) {
			log.Warn().Err(err).Str("username", username).Msg("stored password hash could not be checked")
		}
		log.Error().Str("ip", address).Err(err).Msg("invalid login")

		g.limiter.RecordFailure(username, address)
		return OutcomeInvalidCredentials
	}

	g.limiter.RecordSuccess(username, address)

	log.Info().Str("ip", address).Str("username", username).Msg("successful login")

	return OutcomeSuccess
}
