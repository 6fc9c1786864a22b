package loginlimit

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// transformers carry state, so each call gets its own chain
func newNormalizer() transform.Transformer {
	return transform.Chain(norm.NFC, cases.Lower(language.Und))
}

func normalizeUsername(username string) string {
	normalized, _, err := transform.String(newNormalizer(), username)
	if err != nil {
		// fall back to the raw username so the failure still counts against something
		log.Warn().Err(err).Str("username", username).Msg("could not normalize username for login limiting")
		return username
	}
	return normalized
}
