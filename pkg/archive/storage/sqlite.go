package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"colloquy-hq/colloquy/pkg/analysis"
	"colloquy-hq/colloquy/pkg/archive"
)

// SQLiteConfig contains configuration for the SQLite storage backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:        "data/colloquy.db",
		BusyTimeout: 5 * time.Second,
	}
}

// SQLite implements the Storage interface on a SQLite database file.
type SQLite struct {
	db     *sql.DB
	config *SQLiteConfig
	logger *slog.Logger
}

// NewSQLite opens or creates the database at the configured path and
// initializes the schema.
func NewSQLite(config *SQLiteConfig) (*SQLite, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}

	logger := slog.Default().With("component", "archive.storage.sqlite")

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return nil, archive.NewStorageError("sqlite", "open", err)
	}

	s := &SQLite{db: db, config: config, logger: logger}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("sqlite archive initialized", "path", config.Path)
	return s, nil
}

// initialize enables WAL mode, sets the busy timeout, and creates the schema.
func (s *SQLite) initialize() error {
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return archive.NewStorageError("sqlite", "enable_wal", err)
	}

	busyMs := s.config.BusyTimeout.Milliseconds()
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", busyMs)); err != nil {
		return archive.NewStorageError("sqlite", "set_busy_timeout", err)
	}

	if _, err := s.db.Exec(Schema); err != nil {
		return archive.NewStorageError("sqlite", "create_schema", err)
	}
	if _, err := s.db.Exec(InsertSchemaVersion, SchemaVersion); err != nil {
		return archive.NewStorageError("sqlite", "insert_schema_version", err)
	}

	var version int
	err := s.db.QueryRow(GetSchemaVersion).Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		return archive.NewStorageError("sqlite", "get_schema_version", err)
	}
	if version != SchemaVersion {
		return archive.NewStorageError("sqlite", "schema_version_mismatch",
			fmt.Errorf("expected schema version %d, got %d", SchemaVersion, version))
	}
	return nil
}

// Store persists one run record.
func (s *SQLite) Store(ctx context.Context, rec *archive.RunRecord) error {
	result, err := json.Marshal(rec.Result)
	if err != nil {
		return archive.NewStorageError("sqlite", "marshal_result", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source, recorded_at, message_count, turn_changes, engagement_score, result)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Source, rec.RecordedAt, rec.MessageCount,
		rec.TurnChanges, rec.EngagementScore, string(result))
	if err != nil {
		return archive.NewStorageError("sqlite", "store", err)
	}
	return nil
}

// Get fetches one run by identifier.
func (s *SQLite) Get(ctx context.Context, id string) (*archive.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source, recorded_at, message_count, turn_changes, engagement_score, result
		FROM runs WHERE id = ?`, id)

	rec, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, &archive.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, archive.NewStorageError("sqlite", "get", err)
	}
	return rec, nil
}

// Query lists runs matching the query, newest first.
func (s *SQLite) Query(ctx context.Context, q archive.Query) ([]*archive.RunRecord, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, source, recorded_at, message_count, turn_changes, engagement_score, result
		FROM runs WHERE 1=1`)
	var args []any

	if q.Source != "" {
		sb.WriteString(" AND source = ?")
		args = append(args, q.Source)
	}
	if !q.Since.IsZero() {
		sb.WriteString(" AND recorded_at >= ?")
		args = append(args, q.Since)
	}
	if !q.Until.IsZero() {
		sb.WriteString(" AND recorded_at < ?")
		args = append(args, q.Until)
	}
	sb.WriteString(" ORDER BY recorded_at DESC, id ASC")
	if q.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, q.Limit)
	}
	if q.Offset > 0 {
		if q.Limit <= 0 {
			sb.WriteString(" LIMIT -1")
		}
		sb.WriteString(" OFFSET ?")
		args = append(args, q.Offset)
	}

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, archive.NewStorageError("sqlite", "query", err)
	}
	defer rows.Close()

	var records []*archive.RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, archive.NewStorageError("sqlite", "scan", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, archive.NewStorageError("sqlite", "query", err)
	}
	return records, nil
}

// Count reports the number of stored runs.
func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, archive.NewStorageError("sqlite", "count", err)
	}
	return n, nil
}

// Delete removes one run by identifier.
func (s *SQLite) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return archive.NewStorageError("sqlite", "delete", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return archive.NewStorageError("sqlite", "delete", err)
	}
	if affected == 0 {
		return &archive.NotFoundError{ID: id}
	}
	return nil
}

// DeleteOlderThan removes runs recorded before the cutoff.
func (s *SQLite) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE recorded_at < ?`, cutoff)
	if err != nil {
		return 0, archive.NewStorageError("sqlite", "delete_older_than", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, archive.NewStorageError("sqlite", "delete_older_than", err)
	}
	return int(affected), nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*archive.RunRecord, error) {
	var rec archive.RunRecord
	var result string
	err := sc.Scan(&rec.ID, &rec.Source, &rec.RecordedAt, &rec.MessageCount,
		&rec.TurnChanges, &rec.EngagementScore, &result)
	if err != nil {
		return nil, err
	}
	rec.Result = &analysis.Result{}
	if err := json.Unmarshal([]byte(result), rec.Result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	return &rec, nil
}
