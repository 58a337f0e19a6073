package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/punch/internal/event"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - no schema
// 1 - punches table with seq ordering
const currentSchemaVersion = 1

// SQLiteLog stores events as rows of the punches table, ordered by seq.
type SQLiteLog struct {
	db   *sql.DB
	path string
}

// OpenSQLite creates or opens the database at path and applies the schema.
//
// The database is configured with:
//   - WAL mode
//   - NORMAL synchronous mode
//   - 5-second busy timeout
func OpenSQLite(ctx context.Context, path string) (*SQLiteLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: fmt.Errorf("connect: %w", err)}
	}

	// One process, one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(ctx, db); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	if err := applySchema(ctx, db); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	return &SQLiteLog{db: db, path: path}, nil
}

// Load returns all punches ordered by seq.
func (l *SQLiteLog) Load(ctx context.Context) ([]event.Event, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT seq, ts, kind FROM punches ORDER BY seq ASC`)
	if err != nil {
		return nil, &StorageError{Path: l.path, Op: "load", Err: err}
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var (
			seq      int
			ts, kind string
		)
		if err := rows.Scan(&seq, &ts, &kind); err != nil {
			return nil, &StorageError{Path: l.path, Op: "load", Err: err}
		}
		e, err := unmarshalRow(ts, kind)
		if err != nil {
			return nil, &StorageError{Path: l.path, Line: seq, Op: "load", Err: err}
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Path: l.path, Op: "load", Err: err}
	}

	return events, nil
}

// Append inserts e with the next seq inside a transaction.
func (l *SQLiteLog) Append(ctx context.Context, e event.Event) error {
	if !e.Kind.Valid() {
		return &StorageError{Path: l.path, Op: "append", Err: fmt.Errorf("invalid punch kind %q", e.Kind)}
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return &StorageError{Path: l.path, Op: "append", Err: fmt.Errorf("begin tx: %w", err)}
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO punches (id, seq, ts, kind)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM punches), ?, ?)
	`,
		uuid.Must(uuid.NewV7()).String(),
		e.Timestamp.UTC().Format(event.TimestampLayout),
		e.Kind.Marker(),
	)
	if err != nil {
		return &StorageError{Path: l.path, Op: "append", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Path: l.path, Op: "append", Err: fmt.Errorf("commit: %w", err)}
	}
	return nil
}

// Close closes the database connection.
func (l *SQLiteLog) Close() error {
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}

func unmarshalRow(ts, kind string) (event.Event, error) {
	t, err := event.ParseTimestamp(ts)
	if err != nil {
		return event.Event{}, err
	}
	k, err := event.KindFromMarker(kind)
	if err != nil {
		return event.Event{}, err
	}
	return event.Event{Timestamp: t, Kind: k}, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates tables if they don't exist and stamps the schema version.
func applySchema(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, currentSchemaVersion)
	}

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (l *SQLiteLog) verifyPragma(name, expected string) error {
	var value string
	if err := l.db.QueryRow(fmt.Sprintf("PRAGMA %s", name)).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
