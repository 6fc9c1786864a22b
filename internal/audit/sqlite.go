package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3"
)

const writeTimeout = 5 * time.Second

// SQLiteSink persists audit events so they can be reviewed after the process exits.
type SQLiteSink struct {
	db *sql.DB
}

var _ Sink = (*SQLiteSink)(nil)

func NewSQLiteSink(file string) (*SQLiteSink, error) {
	if file == "" {
		return nil, errors.New("audit: NewSQLiteSink: db file not set")
	}

	absDBFile, err := filepath.Abs(file)
	if err != nil {
		log.Warn().Str("raw_db_file", file).Err(err).Msg("could not get db file absolute path")
	}

	log.Info().Str("raw_db_file", file).Str("abs_db_file", absDBFile).Msg("starting audit database initialization")

	if err := migrateFile(file); err != nil {
		return nil, fmt.Errorf("audit: NewSQLiteSink: could not migrate db: %w", err)
	}

	// reopen database now that migration is complete
	database, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, fmt.Errorf("audit: NewSQLiteSink: could not open db: %w", err)
	}

	log.Info().Str("raw_db_file", file).Str("abs_db_file", absDBFile).Msg("finished audit database initialization")

	return &SQLiteSink{db: database}, nil
}

// migrateFile brings file up to the latest schema on a handle of its own. The handle is closed on every path; the
// migration driver also closes it on the paths where it got created, which sql.DB tolerates.
func migrateFile(file string) error {
	migrationDB, err := sql.Open("sqlite3", file)
	if err != nil {
		return fmt.Errorf("could not open db: %w", err)
	}
	defer migrationDB.Close()

	return migrateDatabase(migrationDB)
}

func (s *SQLiteSink) LogEvent(identity string, summary string, detail string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO audit_events (id, created_at, identity, summary, detail) VALUES ($1, $2, $3, $4, $5)",
		uuid.New().String(), time.Now().UnixMilli(), identity, summary, detail)
	if err != nil {
		log.Error().Err(err).Str("identity", identity).Str("summary", summary).Msg("could not write audit event")
		return fmt.Errorf("audit: LogEvent: could not write event: %w", err)
	}

	return nil
}

// Recent returns up to limit events, newest first.
func (s *SQLiteSink) Recent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at, identity, summary, detail FROM audit_events ORDER BY created_at DESC, rowid DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("audit: Recent: could not query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var createdAt int64
		if err := rows.Scan(&e.ID, &createdAt, &e.Identity, &e.Summary, &e.Detail); err != nil {
			return nil, fmt.Errorf("audit: Recent: could not scan event: %w", err)
		}
		e.Timestamp = time.UnixMilli(createdAt)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("audit: Recent: could not read events: %w", err)
	}

	return events, nil
}

func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
