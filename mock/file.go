package mock

import (
	"context"

	"github.com/hulla/docugen"
)

// Compile-time interface verification.
var (
	_ docugen.FileLister = (*FileLister)(nil)
	_ docugen.FileReader = (*FileReader)(nil)
)

// FileLister is a mock implementation of docugen.FileLister.
type FileLister struct {
	ListFn func(includes, extensions, excludes []string) ([]string, error)
}

func (l *FileLister) List(includes, extensions, excludes []string) ([]string, error) {
	return l.ListFn(includes, extensions, excludes)
}

// FileReader is a mock implementation of docugen.FileReader.
type FileReader struct {
	ReadFileFn func(ctx context.Context, path string) (string, error)
}

func (r *FileReader) ReadFile(ctx context.Context, path string) (string, error) {
	return r.ReadFileFn(ctx, path)
}
