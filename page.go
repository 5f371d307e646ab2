package docugen

import (
	"context"
	"path"
	"path/filepath"
	"strings"
)

// Page is a rendered documentation page for one source file.
type Page struct {
	// SourcePath is the source file the page documents. Empty for pages
	// that do not correspond to a source file, such as the index.
	SourcePath string

	// Path is the output path relative to the output directory.
	Path string

	Title   string
	Content string

	// Sections are the headings of the page, used to build the index.
	Sections []Section
}

// Adapter selects the documentation site flavor pages are rendered for.
type Adapter string

// Adapter constants.
const (
	AdapterNone      Adapter = "none"
	AdapterStarlight Adapter = "starlight"
)

// Format selects the output file format.
type Format string

// Format constants.
const (
	FormatMarkdown Format = ".md"
	FormatHTML     Format = ".html"
)

// Renderer turns documentation records into pages.
type Renderer interface {
	// Render renders the records of one source file.
	Render(sourcePath string, records []DocRecord) (*Page, error)

	// Index renders a page linking to every page in pages.
	Index(pages []*Page) (*Page, error)
}

// PageStore persists pages with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}

// WarningReporter reports recoverable anomalies to the user.
type WarningReporter interface {
	Report(warnings []Warning)
}

// PagePath returns the output path of the page documenting sourcePath,
// relative to the output directory. The source directory is kept and the
// file name is cut at its first dot, so "src/util/strings.test.ts" becomes
// "src/util/strings.md". Parent directory references are dropped so the
// result always stays inside the output directory.
func PagePath(sourcePath string, format Format) string {
	clean := path.Clean(filepath.ToSlash(sourcePath))
	dir, file := path.Split(clean)

	var parts []string
	for _, part := range strings.Split(dir, "/") {
		if part == "" || part == "." || part == ".." || strings.HasSuffix(part, ":") {
			continue
		}
		parts = append(parts, part)
	}

	name := PageTitle(file)
	if name == "" {
		name = "index"
	}
	parts = append(parts, name+string(format))
	return strings.Join(parts, "/")
}

// PageTitle returns the file name of path up to its first dot.
func PageTitle(sourcePath string) string {
	name := path.Base(filepath.ToSlash(sourcePath))
	if i := strings.Index(name, "."); i != -1 {
		name = name[:i]
	}
	return name
}
