// Package store persists run history and result artifacts.
package store

import (
	"context"

	"github.com/axlewave/leadgen-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus  `json:"status,omitempty"`
	Intent model.IntentType `json:"intent,omitempty"`
	Limit  int              `json:"limit,omitempty"`
	Offset int              `json:"offset,omitempty"`
}

// Store defines the persistence interface for run history.
type Store interface {
	CreateRun(ctx context.Context, intent model.IntentType) (*model.Run, error)
	CompleteRun(ctx context.Context, runID string, result *model.RunResult, artifactPath string) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	Migrate(ctx context.Context) error
	Close() error
}
