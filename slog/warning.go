package slog

import (
	"log/slog"

	"github.com/hulla/docugen"
)

// Ensure WarningReporter implements docugen.WarningReporter.
var _ docugen.WarningReporter = (*WarningReporter)(nil)

// WarningReporter logs warnings at warn level.
type WarningReporter struct {
	logger *slog.Logger
}

// NewWarningReporter creates a new WarningReporter.
func NewWarningReporter(logger *slog.Logger) *WarningReporter {
	return &WarningReporter{logger: logger}
}

// Report logs every warning.
func (r *WarningReporter) Report(warnings []docugen.Warning) {
	for _, w := range warnings {
		attrs := []any{"code", w.Code, "path", w.Path}
		if w.Err != nil {
			attrs = append(attrs, "err", w.Err)
		}
		r.logger.Warn(w.String(), attrs...)
	}
}
