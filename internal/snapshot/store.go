package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jonesrussell/ssgclient/internal/ssg"
)

// schema creates the snapshot tables. SQLite applies this idempotently.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	endpoint     TEXT NOT NULL,
	status       TEXT NOT NULL,
	error        TEXT NOT NULL DEFAULT '',
	started_at   TIMESTAMP NOT NULL,
	completed_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS documents (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL REFERENCES runs(id),
	name       TEXT NOT NULL,
	endpoint   TEXT NOT NULL,
	body       BLOB NOT NULL,
	fetched_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_run_id ON documents(run_id);
`

// Store persists fetch runs and documents in SQLite.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if necessary) the snapshot database at path.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot database: %w", err)
	}

	if _, execErr := db.Exec(schema); execErr != nil {
		db.Close()
		return nil, fmt.Errorf("apply snapshot schema: %w", execErr)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun records the start of a fetch run.
func (s *Store) BeginRun(ctx context.Context, endpoint string) (*Run, error) {
	run := &Run{
		ID:        uuid.New(),
		Endpoint:  endpoint,
		Status:    StatusRunning,
		StartedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO runs (id, endpoint, status, started_at)
		VALUES (?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, run.ID, run.Endpoint, run.Status, run.StartedAt); err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}

	return run, nil
}

// CompleteRun marks a run as completed, or failed when runErr is non-nil.
func (s *Store) CompleteRun(ctx context.Context, runID uuid.UUID, runErr error) error {
	status := StatusCompleted
	errText := ""
	if runErr != nil {
		status = StatusFailed
		errText = runErr.Error()
	}

	query := `
		UPDATE runs
		SET status = ?, error = ?, completed_at = ?
		WHERE id = ?
	`
	if _, err := s.db.ExecContext(ctx, query, status, errText, time.Now().UTC(), runID); err != nil {
		return fmt.Errorf("complete run: %w", err)
	}
	return nil
}

// SaveDocument captures a raw API response under the given run.
func (s *Store) SaveDocument(ctx context.Context, runID uuid.UUID, name string, resp *ssg.Response) error {
	query := `
		INSERT INTO documents (run_id, name, endpoint, body, fetched_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, runID, name, resp.Endpoint, []byte(resp.Raw), resp.FetchedAt); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	var runs []Run
	query := `
		SELECT id, endpoint, status, error, started_at, completed_at
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`
	if err := s.db.SelectContext(ctx, &runs, query, limit); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Documents returns the documents captured during a run.
func (s *Store) Documents(ctx context.Context, runID uuid.UUID) ([]Document, error) {
	var docs []Document
	query := `
		SELECT id, run_id, name, endpoint, body, fetched_at
		FROM documents
		WHERE run_id = ?
		ORDER BY id
	`
	if err := s.db.SelectContext(ctx, &docs, query, runID); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// CountDocuments returns the number of documents captured during a run.
func (s *Store) CountDocuments(ctx context.Context, runID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM documents WHERE run_id = ?`
	if err := s.db.GetContext(ctx, &count, query, runID); err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return count, nil
}
