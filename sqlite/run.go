package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hulla/docugen"
)

// Compile-time interface verification.
var _ docugen.RunService = (*RunService)(nil)

// RunService implements docugen.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a finished run and assigns its ID.
func (s *RunService) CreateRun(ctx context.Context, run *docugen.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, out_dir, files, pages, records, warnings, failed, cached, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.OutDir, run.Files, run.Pages, run.Records, run.Warnings, run.Failed, run.Cached,
		run.StartedAt.UTC().Format(time.RFC3339Nano), run.Duration.Milliseconds())

	return err
}

// FindRuns retrieves runs matching the filter, most recent first.
func (s *RunService) FindRuns(ctx context.Context, filter docugen.RunFilter) ([]*docugen.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, out_dir, files, pages, records, warnings, failed, cached, started_at, duration_ms FROM runs WHERE 1=1`)

	if filter.OutDir != nil {
		query.WriteString(" AND out_dir = ?")
		args = append(args, *filter.OutDir)
	}

	query.WriteString(" ORDER BY started_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*docugen.Run
	for rows.Next() {
		var run docugen.Run
		var startedAt string
		var durationMS int64

		if err := rows.Scan(&run.ID, &run.OutDir, &run.Files, &run.Pages, &run.Records, &run.Warnings,
			&run.Failed, &run.Cached, &startedAt, &durationMS); err != nil {
			return nil, err
		}

		run.StartedAt, err = parseRFC3339(startedAt, "started_at")
		if err != nil {
			return nil, err
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
