package slog

import (
	"log/slog"
	"time"

	"github.com/hulla/docugen"
)

// Ensure LoggingLister implements docugen.FileLister.
var _ docugen.FileLister = (*LoggingLister)(nil)

// LoggingLister wraps a FileLister with debug logging.
type LoggingLister struct {
	next   docugen.FileLister
	logger *slog.Logger
}

// NewLoggingLister creates a new LoggingLister.
func NewLoggingLister(next docugen.FileLister, logger *slog.Logger) *LoggingLister {
	return &LoggingLister{next: next, logger: logger}
}

// List delegates to the wrapped lister and logs the operation.
func (l *LoggingLister) List(includes, extensions, excludes []string) (files []string, err error) {
	defer func(begin time.Time) {
		l.logger.Debug("list",
			"includes", includes,
			"excludes", excludes,
			"count", len(files),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.List(includes, extensions, excludes)
}
