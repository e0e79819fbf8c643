// Package sqlite provides a durable event store on modernc.org/sqlite.
//
// Each event is one row keyed by (aggregate_id, sequence). Appends run in a
// single transaction that first checks the stream head against the caller's
// expected sequence; the primary key catches writers that race past the check.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/eventstore/codec"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/eventstore/sqlite/migrations"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/ports"
)

// Compile-time check that Store implements ports.EventStore.
var _ ports.EventStore = (*Store)(nil)

const migrationTable = "schema_migrations"

// Store is a SQLite-backed event store.
type Store struct {
	sqlDB    *sql.DB
	registry *codec.Registry
}

// Open opens the database at path, applies migrations, and returns a store
// decoding with registry.
func Open(path string, registry *codec.Registry) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	if registry == nil {
		return nil, errors.New("event registry is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, registry: registry}, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "eventstore" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite db: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// Load implements ports.EventStore.
func (s *Store) Load(ctx context.Context, aggregateID uuid.UUID) ([]aggregate.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT sequence, event_type, entity_id, occurred_at, payload_json
FROM events
WHERE aggregate_id = ?
ORDER BY sequence ASC
`, aggregateID.String())
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	defer rows.Close()

	var records []codec.Record
	for rows.Next() {
		rec := codec.Record{AggregateID: aggregateID}
		var (
			seq        int64
			entityID   string
			occurredAt int64
			payload    []byte
		)
		if err := rows.Scan(&seq, &rec.Type, &entityID, &occurredAt, &payload); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		rec.Sequence = uint64(seq)
		rec.Timestamp = fromMillis(occurredAt)
		rec.Payload = payload
		if entityID != "" {
			if rec.EntityID, err = uuid.Parse(entityID); err != nil {
				return nil, fmt.Errorf("parse entity id of sequence %d: %w", seq, err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return s.registry.DecodeStream(records)
}

// Append implements ports.EventStore.
func (s *Store) Append(ctx context.Context, aggregateID uuid.UUID, expectedSeq uint64, events []aggregate.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	records, err := s.registry.EncodeStream(aggregateID, expectedSeq, events)
	if err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var current int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sequence), 0) FROM events WHERE aggregate_id = ?`,
		aggregateID.String(),
	).Scan(&current); err != nil {
		return fmt.Errorf("read stream head: %w", err)
	}
	if uint64(current) != expectedSeq {
		return fmt.Errorf("stream %s is at sequence %d, expected %d: %w",
			aggregateID, current, expectedSeq, domain.ErrConflict)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO events (aggregate_id, sequence, event_type, entity_id, occurred_at, payload_json)
VALUES (?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return fmt.Errorf("prepare append: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		entityID := ""
		if rec.EntityID != uuid.Nil {
			entityID = rec.EntityID.String()
		}
		if _, err := stmt.ExecContext(ctx,
			aggregateID.String(),
			int64(rec.Sequence),
			rec.Type,
			entityID,
			toMillis(rec.Timestamp),
			[]byte(rec.Payload),
		); err != nil {
			if isConstraintError(err) {
				return fmt.Errorf("append sequence %d to %s: %w", rec.Sequence, aggregateID, domain.ErrConflict)
			}
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func isConstraintError(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

// toMillis stores timestamps as UTC unix milliseconds.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// applyMigrations executes the Up section of each embedded migration at most
// once, in file name order.
func applyMigrations(sqlDB *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := sqlDB.Exec(`
CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
);
`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, file := range files {
		var applied int
		if err := sqlDB.QueryRow(
			`SELECT COUNT(1) FROM `+migrationTable+` WHERE name = ?`, file,
		).Scan(&applied); err != nil {
			return fmt.Errorf("check migration %s: %w", file, err)
		}
		if applied > 0 {
			continue
		}

		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		upSQL := extractUp(string(content))
		if strings.TrimSpace(upSQL) == "" {
			continue
		}

		tx, err := sqlDB.Begin()
		if err != nil {
			return fmt.Errorf("begin migration transaction %s: %w", file, err)
		}
		if _, err := tx.Exec(upSQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", file, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO `+migrationTable+` (name, applied_at) VALUES (?, ?)`,
			file, toMillis(time.Now()),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}
	return nil
}

func extractUp(content string) string {
	const up, down = "-- +migrate Up", "-- +migrate Down"
	start := strings.Index(content, up)
	if start == -1 {
		return content
	}
	content = content[start+len(up):]
	if end := strings.Index(content, down); end != -1 {
		content = content[:end]
	}
	return content
}
