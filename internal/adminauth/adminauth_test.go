package adminauth

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lthummus/adminguard/internal/config"
	"github.com/lthummus/adminguard/internal/loginlimit"
	"github.com/lthummus/adminguard/internal/mocks"
)

// hash of "test1"
const sampleHash = "$argon2id$v=19$m=65536,t=3,p=2$f5DrCPQlwRJ5q1fA4K+i/g$c8XhJISMUI3wjIUULHvn0HIJinvOBBb4KnvOcvuJ4e0"

var sampleCredentials = StaticCredentials{"alice": sampleHash}

func TestGuard_Attempt(t *testing.T) {
	t.Run("locked out requests never reach the credential check", func(t *testing.T) {
		limiter := mocks.NewMockLimiter(t)
		limiter.On("IsOverLimit", "alice", "10.0.0.1").Return(true)

		g := NewGuard(limiter, sampleCredentials)

		assert.Equal(t, OutcomeLockedOut, g.Attempt("alice", "test1", "10.0.0.1"))
		limiter.AssertNotCalled(t, "RecordFailure", mock.Anything, mock.Anything)
		limiter.AssertNotCalled(t, "RecordSuccess", mock.Anything, mock.Anything)
	})

	t.Run("correct password", func(t *testing.T) {
		limiter := mocks.NewMockLimiter(t)
		limiter.On("IsOverLimit", "alice", "10.0.0.1").Return(false)
		limiter.On("RecordSuccess", "alice", "10.0.0.1").Return().Once()

		g := NewGuard(limiter, sampleCredentials)

		assert.Equal(t, OutcomeSuccess, g.Attempt("alice", "test1", "10.0.0.1"))
	})

	t.Run("wrong password", func(t *testing.T) {
		limiter := mocks.NewMockLimiter(t)
		limiter.On("IsOverLimit", "alice", "10.0.0.1").Return(false)
		limiter.On("RecordFailure", "alice", "10.0.0.1").Return().Once()

		g := NewGuard(limiter, sampleCredentials)

		assert.Equal(t, OutcomeInvalidCredentials, g.Attempt("alice", "nope", "10.0.0.1"))
	})

	t.Run("unknown user", func(t *testing.T) {
		limiter := mocks.NewMockLimiter(t)
		limiter.On("IsOverLimit", "mallory", "10.0.0.1").Return(false)
		limiter.On("RecordFailure", "mallory", "10.0.0.1").Return().Once()

		g := NewGuard(limiter, sampleCredentials)

		assert.Equal(t, OutcomeInvalidCredentials, g.Attempt("mallory", "test1", "10.0.0.1"))
	})

	t.Run("garbage stored hash counts as a failure", func(t *testing.T) {
		limiter := mocks.NewMockLimiter(t)
		limiter.On("IsOverLimit", "bob", "10.0.0.1").Return(false)
		limiter.On("RecordFailure", "bob", "10.0.0.1").Return().Once()

		g := NewGuard(limiter, StaticCredentials{"bob": "not a hash"})

		assert.Equal(t, OutcomeInvalidCredentials, g.Attempt("bob", "whatever", "10.0.0.1"))
	})
}

func TestGuard_WithManager(t *testing.T) {
	ls := config.DefaultLimitSettings()
	ls.MaxAttemptsPerAddress = 2
	ls.MaxAttemptsPerUsername = 2

	sink := mocks.NewMockSink(t)
	sink.On("LogEvent", "alice", loginlimit.FailedAttemptSummary, mock.Anything).Return(nil).Times(3)

	m, err := loginlimit.NewManager(ls, sink)
	require.NoError(t, err)

	g := NewGuard(m, sampleCredentials)

	assert.Equal(t, OutcomeInvalidCredentials, g.Attempt("alice", "bad", "10.0.0.1"))
	assert.Equal(t, OutcomeInvalidCredentials, g.Attempt("alice", "bad", "10.0.0.1"))
	assert.Equal(t, OutcomeInvalidCredentials, g.Attempt("alice", "bad", "10.0.0.1"))

	// even the right password is turned away now
	assert.Equal(t, OutcomeLockedOut, g.Attempt("alice", "test1", "10.0.0.1"))
	assert.Equal(t, OutcomeLockedOut, g.Attempt("alice", "test1", "10.0.0.2"))
}

func TestConfigCredentials(t *testing.T) {
	viper.Set(config.KeyAdminUsers, map[string]string{"alice": sampleHash})
	t.Cleanup(func() {
		viper.Set(config.KeyAdminUsers, map[string]string{})
	})

	hash, found := ConfigCredentials{}.PasswordHash("alice")
	assert.True(t, found)
	assert.Equal(t, sampleHash, hash)

	_, found = ConfigCredentials{}.PasswordHash("bob")
	assert.False(t, found)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "ok", OutcomeSuccess.String())
	assert.Equal(t, "invalid", OutcomeInvalidCredentials.String())
	assert.Equal(t, "locked", OutcomeLockedOut.String())
	assert.Equal(t, "unknown", Outcome(99).String())
}
