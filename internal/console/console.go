package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/lthummus/adminguard/internal/adminauth"
)

var ErrMalformedLine = errors.New("console: expected `<username> <address> <password>`")

type Authenticator interface {
	Attempt(username string, password string, address string) adminauth.Outcome
}

type attempt struct {
	username string
	address  string
	password string
}

func parseLine(line string) (attempt, error) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return attempt{}, ErrMalformedLine
	}

	return attempt{username: parts[0], address: parts[1], password: parts[2]}, nil
}

// Run reads login attempts from in, one per line, and writes one result per attempt to out. It returns when in is
// exhausted or ctx is done.
func Run(ctx context.Context, in io.Reader, out io.Writer, auth Authenticator) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("console: Run: could not read input: %w", err)
					}
				default:
				}
				return nil
			}

			if err := handleLine(line, out, auth); err != nil {
				return err
			}
		}
	}
}

func handleLine(line string, out io.Writer, auth Authenticator) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	var response string
	a, err := parseLine(line)
	if err != nil {
		log.Debug().Err(err).Msg("skipping malformed console line")
		response = "error: " + err.Error()
	} else {
		response = auth.Attempt(a.username, a.password, a.address).String()
	}

	if _, err := fmt.Fprintln(out, response); err != nil {
		return fmt.Errorf("console: Run: could not write output: %w", err)
	}

	return nil
}
