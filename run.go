package docugen

import (
	"context"
	"time"
)

// Run records one documentation generation.
type Run struct {
	ID        string        `json:"id"`
	OutDir    string        `json:"outDir"`
	Files     int           `json:"files"`
	Pages     int           `json:"pages"`
	Records   int           `json:"records"`
	Warnings  int           `json:"warnings"`
	Failed    int           `json:"failed"`
	Cached    int           `json:"cached"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.OutDir == "" {
		return Errorf(EINVALID, "run output directory required")
	}
	if r.StartedAt.IsZero() {
		return Errorf(EINVALID, "run start time required")
	}
	return nil
}

// RunService represents a service for recording generation runs.
type RunService interface {
	// CreateRun records a finished run and assigns its ID.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns returns the most recent runs first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	OutDir *string `json:"outDir"`

	Limit int `json:"limit"`
}
