// Package store persists batch-run history behind a driver-agnostic
// interface with SQLite and Postgres implementations.
package store

import (
	"context"

	"github.com/sells-group/leads-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	InputDir string `json:"input_dir,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for run history.
type Store interface {
	RecordRun(ctx context.Context, run *model.Run) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
