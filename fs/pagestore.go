package fs

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hulla/docugen"
)

// Ensure PageStore implements docugen.PageStore at compile time.
var _ docugen.PageStore = (*PageStore)(nil)

// PageStore implements docugen.PageStore with atomic update semantics.
// Pages are saved to a staging directory next to the output directory and
// moved into place on Commit. Files in the output directory that were not
// regenerated are left alone.
type PageStore struct {
	outDir string
}

// NewPageStore creates a new PageStore writing to outDir.
// Pages are staged in outDir.tmp until Commit.
func NewPageStore(outDir string) *PageStore {
	return &PageStore{outDir: filepath.Clean(outDir)}
}

func (s *PageStore) tempDir() string {
	return s.outDir + ".tmp"
}

// Save writes page to the staging directory.
func (s *PageStore) Save(ctx context.Context, page *docugen.Page) error {
	rel, err := pageRelPath(page.Path)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), rel)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(page.Content), 0644)
}

// Commit moves every staged page into the output directory and removes the
// staging directory.
func (s *PageStore) Commit() error {
	tmp := s.tempDir()
	err := filepath.WalkDir(tmp, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(tmp, p)
		if err != nil {
			return err
		}
		dest := filepath.Join(s.outDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return err
		}
		return os.Rename(p, dest)
	})
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	return os.RemoveAll(tmp)
}

// Abort discards staged pages.
func (s *PageStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// pageRelPath validates a page path and converts it to a native relative path.
func pageRelPath(p string) (string, error) {
	if p == "" {
		return "", docugen.Errorf(docugen.EINVALID, "page path required")
	}
	clean := path.Clean(filepath.ToSlash(p))
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", docugen.Errorf(docugen.EINVALID, "page path %q escapes output directory", p)
	}
	return filepath.FromSlash(clean), nil
}
