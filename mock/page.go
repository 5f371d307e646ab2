package mock

import (
	"context"

	"github.com/hulla/docugen"
)

// Compile-time interface verification.
var (
	_ docugen.Renderer        = (*Renderer)(nil)
	_ docugen.PageStore       = (*PageStore)(nil)
	_ docugen.WarningReporter = (*WarningReporter)(nil)
)

// Renderer is a mock implementation of docugen.Renderer.
type Renderer struct {
	RenderFn func(sourcePath string, records []docugen.DocRecord) (*docugen.Page, error)
	IndexFn  func(pages []*docugen.Page) (*docugen.Page, error)
}

func (r *Renderer) Render(sourcePath string, records []docugen.DocRecord) (*docugen.Page, error) {
	return r.RenderFn(sourcePath, records)
}

func (r *Renderer) Index(pages []*docugen.Page) (*docugen.Page, error) {
	return r.IndexFn(pages)
}

// PageStore is a mock implementation of docugen.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *docugen.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *docugen.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}

// WarningReporter is a mock implementation of docugen.WarningReporter.
type WarningReporter struct {
	ReportFn func(warnings []docugen.Warning)
}

func (r *WarningReporter) Report(warnings []docugen.Warning) {
	r.ReportFn(warnings)
}
