// Package slog provides logging decorators for docugen services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/hulla/docugen"
)

// Ensure LoggingReader implements docugen.FileReader.
var _ docugen.FileReader = (*LoggingReader)(nil)

// LoggingReader wraps a FileReader with debug logging.
type LoggingReader struct {
	next   docugen.FileReader
	logger *slog.Logger
}

// NewLoggingReader creates a new LoggingReader.
func NewLoggingReader(next docugen.FileReader, logger *slog.Logger) *LoggingReader {
	return &LoggingReader{next: next, logger: logger}
}

// ReadFile delegates to the wrapped reader and logs the operation.
func (r *LoggingReader) ReadFile(ctx context.Context, path string) (content string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("read",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadFile(ctx, path)
}
