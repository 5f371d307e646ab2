package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/hulla/docugen"
)

// Ensure LoggingPageStore implements docugen.PageStore.
var _ docugen.PageStore = (*LoggingPageStore)(nil)

// LoggingPageStore wraps a PageStore with debug logging.
type LoggingPageStore struct {
	next   docugen.PageStore
	logger *slog.Logger
}

// NewLoggingPageStore creates a new LoggingPageStore.
func NewLoggingPageStore(next docugen.PageStore, logger *slog.Logger) *LoggingPageStore {
	return &LoggingPageStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingPageStore) Save(ctx context.Context, page *docugen.Page) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save page",
			"path", page.Path,
			"bytes", len(page.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, page)
}

// Commit delegates to the wrapped store and logs the operation.
func (s *LoggingPageStore) Commit() (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("commit pages", "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.Commit()
}

// Abort delegates to the wrapped store and logs the operation.
func (s *LoggingPageStore) Abort() (err error) {
	defer func() {
		s.logger.Debug("abort pages", "err", err)
	}()
	return s.next.Abort()
}
