package mock

import (
	"context"

	"github.com/hulla/docugen"
)

// Compile-time interface verification.
var (
	_ docugen.CacheService = (*CacheService)(nil)
	_ docugen.RunService   = (*RunService)(nil)
)

// CacheService is a mock implementation of docugen.CacheService.
type CacheService struct {
	FindEntryFn func(ctx context.Context, path, contentHash string) (*docugen.CacheEntry, error)
	SaveEntryFn func(ctx context.Context, entry *docugen.CacheEntry) error
}

func (s *CacheService) FindEntry(ctx context.Context, path, contentHash string) (*docugen.CacheEntry, error) {
	return s.FindEntryFn(ctx, path, contentHash)
}

func (s *CacheService) SaveEntry(ctx context.Context, entry *docugen.CacheEntry) error {
	return s.SaveEntryFn(ctx, entry)
}

// RunService is a mock implementation of docugen.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *docugen.Run) error
	FindRunsFn  func(ctx context.Context, filter docugen.RunFilter) ([]*docugen.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *docugen.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter docugen.RunFilter) ([]*docugen.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
