// Package snapshot records fetch runs and their raw documents in a local
// SQLite database, so scheduled syncs leave a queryable history.
package snapshot

import (
	"time"

	"github.com/google/uuid"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Run represents one fetch run.
type Run struct {
	ID          uuid.UUID  `db:"id"`
	Endpoint    string     `db:"endpoint"`
	Status      string     `db:"status"`
	Error       string     `db:"error"`
	StartedAt   time.Time  `db:"started_at"`
	CompletedAt *time.Time `db:"completed_at"`
}

// Document is a raw API response captured during a run.
type Document struct {
	ID        int64     `db:"id"`
	RunID     uuid.UUID `db:"run_id"`
	Name      string    `db:"name"`
	Endpoint  string    `db:"endpoint"`
	Body      []byte    `db:"body"`
	FetchedAt time.Time `db:"fetched_at"`
}
