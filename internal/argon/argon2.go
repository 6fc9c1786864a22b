package argon

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/crypto/argon2"
)

const (
	MemoryKey      = "security.argon2.memory"
	IterationKey   = "security.argon2.iterations"
	ParallelismKey = "security.argon2.parallelism"
	SaltLengthKey  = "security.argon2.saltLength"
	KeyLengthKey   = "security.argon2.keyLength"

	DefaultMemory      = 64 * 1024
	DefaultIterations  = 3
	DefaultParallelism = 2
	DefaultSaltLength  = 16
	DefaultKeyLength   = 32
)

var (
	ErrInvalidHash    = errors.New("argon2: ValidatePassword: invalid password hash")
	ErrInvalidVersion = errors.New("argon2: ValidatePassword: incorrect version of argon2")
	ErrWrongPassword  = errors.New("argon2: ValidatePassword: wrong password")
)

func init() {
	viper.SetDefault(MemoryKey, DefaultMemory)
	viper.SetDefault(IterationKey, DefaultIterations)
	viper.SetDefault(ParallelismKey, DefaultParallelism)
	viper.SetDefault(SaltLengthKey, DefaultSaltLength)
	viper.SetDefault(KeyLengthKey, DefaultKeyLength)
}

type params struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  int
	keyLength   uint32
}

func paramsFromConfig() (params, error) {
	parallelism, err := safeCastUint8(viper.GetInt(ParallelismKey))
	if err != nil {
		return params{}, err
	}

	return params{
		memory:      viper.GetUint32(MemoryKey),
		iterations:  viper.GetUint32(IterationKey),
		parallelism: parallelism,
		saltLength:  viper.GetInt(SaltLengthKey),
		keyLength:   viper.GetUint32(KeyLengthKey),
	}, nil
}

// GenerateFromPassword hashes password with the configured argon2id parameters and returns it in the usual
// $argon2id$v=..$m=..,t=..,p=..$salt$hash form.
func GenerateFromPassword(password string) (string, error) {
	p, err := paramsFromConfig()
	if err != nil {
		return "", fmt.Errorf("argon2: GenerateFromPassword: invalid argon configuration: %w", err)
	}

	log.Debug().
		Uint32("iteration_count", p.iterations).
		Uint32("memory_count", p.memory).
		Uint8("parallelism_count", p.parallelism).
		Uint32("key_length", p.keyLength).
		Int("salt_length", p.saltLength).
		Msg("hashing password with argon2")

	generatedSalt := securecookie.GenerateRandomKey(p.saltLength)
	if generatedSalt == nil {
		log.Error().Int("salt_length_bytes", p.saltLength).Msg("could not generate random salt")
		return "", errors.New("argon2: GenerateFromPassword: could not generate salt")
	}

	hash := argon2.IDKey([]byte(password), generatedSalt, p.iterations, p.memory, p.parallelism, p.keyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.memory,
		p.iterations,
		p.parallelism,
		base64.RawStdEncoding.EncodeToString(generatedSalt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

type decodedHash struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	hash        []byte
}

func decodeHash(encodedHash string) (decodedHash, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return decodedHash{}, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return decodedHash{}, ErrInvalidHash
	}

	if version != argon2.Version {
		log.Warn().Int("expected_version", argon2.Version).Int("hash_version", version).Msg("invalid argon2 version")
		return decodedHash{}, ErrInvalidVersion
	}

	var d decodedHash
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &d.memory, &d.iterations, &d.parallelism); err != nil {
		return decodedHash{}, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}

	var err error
	d.salt, err = base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil {
		return decodedHash{}, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}

	d.hash, err = base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil {
		return decodedHash{}, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}

	// argon2.IDKey panics on zero time or threads
	if d.memory < 1 || d.iterations < 1 || d.parallelism < 1 {
		return decodedHash{}, fmt.Errorf("%w: m, t and p must all be at least 1", ErrInvalidHash)
	}
	if len(d.salt) == 0 || len(d.hash) == 0 {
		return decodedHash{}, fmt.Errorf("%w: empty salt or hash", ErrInvalidHash)
	}

	return d, nil
}

// CheckHash reports whether encodedHash is an argon2id hash that ValidatePassword can verify against.
func CheckHash(encodedHash string) error {
	_, err := decodeHash(encodedHash)
	return err
}

func ValidatePassword(password string, encodedHash string) error {
	d, err := decodeHash(encodedHash)
	if err != nil {
		return err
	}

	keyLength, err := safeCastUint32(len(d.hash))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}

	calcedHash := argon2.IDKey([]byte(password), d.salt, d.iterations, d.memory, d.parallelism, keyLength)

	if subtle.ConstantTimeCompare(d.hash, calcedHash) != 1 {
		return ErrWrongPassword
	}

	return nil
}
