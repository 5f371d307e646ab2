// Package fs provides file system access for docugen: listing and reading
// source files and storing rendered pages.
package fs

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"github.com/hulla/docugen"
)

// Ensure Lister implements docugen.FileLister at compile time.
var _ docugen.FileLister = (*Lister)(nil)

// Lister walks include directories for source files.
type Lister struct{}

// NewLister creates a new Lister.
func NewLister() *Lister {
	return &Lister{}
}

// List returns every file below includes whose extension is one of
// extensions. Excludes are glob patterns matched against the cleaned,
// slash-separated path; a pattern without a slash also matches the base
// name, so "node_modules" skips that directory at any depth.
//
// Files reachable from more than one include are listed once, in the
// position of their first occurrence.
func (l *Lister) List(includes, extensions, excludes []string) ([]string, error) {
	matchers, err := compileExcludes(excludes)
	if err != nil {
		return nil, err
	}

	var files []string
	seen := make(map[string]struct{})

	for _, include := range includes {
		root := filepath.Clean(include)
		if matchers.match(root) {
			continue
		}

		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if p != root && matchers.match(p) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			if !slices.Contains(extensions, filepath.Ext(p)) {
				return nil
			}
			if _, ok := seen[p]; ok {
				return nil
			}
			seen[p] = struct{}{}
			files = append(files, p)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", include, err)
		}
	}

	return files, nil
}

type excludeMatcher struct {
	glob     glob.Glob
	baseName bool
}

type excludeMatchers []excludeMatcher

func compileExcludes(patterns []string) (excludeMatchers, error) {
	matchers := make(excludeMatchers, 0, len(patterns))
	for _, pattern := range patterns {
		clean := path.Clean(filepath.ToSlash(pattern))
		g, err := glob.Compile(clean, '/')
		if err != nil {
			return nil, docugen.Errorf(docugen.EINVALID, "invalid exclude pattern %q: %s", pattern, err)
		}
		matchers = append(matchers, excludeMatcher{
			glob:     g,
			baseName: !strings.Contains(clean, "/"),
		})
	}
	return matchers, nil
}

func (m excludeMatchers) match(p string) bool {
	slashed := filepath.ToSlash(filepath.Clean(p))
	base := path.Base(slashed)
	for _, matcher := range m {
		if matcher.glob.Match(slashed) {
			return true
		}
		if matcher.baseName && matcher.glob.Match(base) {
			return true
		}
	}
	return false
}
