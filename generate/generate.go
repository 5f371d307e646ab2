package generate

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hulla/docugen"
)

// Generator turns source files into documentation pages.
type Generator struct {
	Lister   docugen.FileLister
	Scanner  *Scanner
	Renderer docugen.Renderer
	Pages    docugen.PageStore
	Warnings docugen.WarningReporter

	// Runs is optional. When set, every finished run is recorded.
	Runs docugen.RunService
}

// Options selects the files of a run and where its pages go.
type Options struct {
	OutDir     string
	Includes   []string
	Excludes   []string
	Extensions []string

	// Index adds a page linking every generated page.
	Index bool
}

// Result contains statistics about a run.
type Result struct {
	Files    int
	Pages    int
	Records  int
	Warnings int
	Failed   int
	Cached   int
}

// Run generates pages for every listed file. Files that cannot be read are
// skipped with a warning. Pages are committed only if every page was saved.
func (g *Generator) Run(ctx context.Context, opts Options, progress ProgressFunc) (*Result, error) {
	startedAt := time.Now()

	files, err := g.Lister.List(opts.Includes, opts.Extensions, opts.Excludes)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	if len(files) == 0 {
		return nil, docugen.Errorf(docugen.EINVALID, "no source files found")
	}

	results := g.Scanner.ScanFiles(ctx, files, progress)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Files: len(files)}
	data, warnings := g.collect(ctx, results, result)

	sort.SliceStable(warnings, func(i, j int) bool { return warnings[i].Path < warnings[j].Path })
	result.Warnings = len(warnings)
	if g.Warnings != nil && len(warnings) > 0 {
		g.Warnings.Report(warnings)
	}

	if err := g.writePages(ctx, data, opts.Index, result); err != nil {
		if abortErr := g.Pages.Abort(); abortErr != nil {
			return nil, fmt.Errorf("%w (abort failed: %v)", err, abortErr)
		}
		return nil, err
	}

	if g.Runs != nil {
		run := &docugen.Run{
			OutDir:    opts.OutDir,
			Files:     result.Files,
			Pages:     result.Pages,
			Records:   result.Records,
			Warnings:  result.Warnings,
			Failed:    result.Failed,
			Cached:    result.Cached,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
		}
		if err := g.Runs.CreateRun(ctx, run); err != nil {
			return result, fmt.Errorf("record run: %w", err)
		}
	}

	return result, nil
}

// collect folds scan results into DocsData. Freshly scanned files are
// assembled and written back to the cache.
func (g *Generator) collect(ctx context.Context, results []FileResult, result *Result) (docugen.DocsData, []docugen.Warning) {
	data := make(docugen.DocsData)
	scanned := make(map[string]*docugen.BlockMap)
	hashes := make(map[string]string)
	var warnings []docugen.Warning

	for _, r := range results {
		switch {
		case r.Err != nil:
			result.Failed++
			warnings = append(warnings, docugen.Warning{Code: docugen.EREAD, Path: r.Path, Err: r.Err})
		case r.Cached != nil:
			result.Cached++
			if r.Cached.HasBlocks {
				data[r.Path] = r.Cached.Records
			}
		default:
			scanned[r.Path] = r.Scan.Blocks
			hashes[r.Path] = r.Hash
			if r.Scan.Unterminated >= 0 {
				warnings = append(warnings, docugen.Warning{
					Code: docugen.EUNTERMINATED,
					Path: r.Path,
					Line: fmt.Sprintf("line %d", r.Scan.Unterminated+1),
				})
			}
		}
	}

	assembled, w := docugen.Assemble(scanned)
	warnings = append(warnings, w...)
	for path, records := range assembled {
		data[path] = records
	}

	cache := g.Scanner.Cache
	if cache == nil {
		return data, warnings
	}
	for path, blocks := range scanned {
		records, ok := assembled[path]
		if !ok {
			records = []docugen.DocRecord{}
		}
		entry := &docugen.CacheEntry{
			Path:        path,
			ContentHash: hashes[path],
			HasBlocks:   blocks.Len() > 0,
			Records:     records,
		}
		if err := cache.SaveEntry(ctx, entry); err != nil {
			warnings = append(warnings, docugen.Warning{Code: docugen.ECACHE, Path: path, Err: err})
		}
	}
	return data, warnings
}

// writePages renders and saves one page per file, then the index, then
// commits the pages.
func (g *Generator) writePages(ctx context.Context, data docugen.DocsData, index bool, result *Result) error {
	pages := make([]*docugen.Page, 0, len(data))
	for _, path := range data.Paths() {
		records := data[path]
		page, err := g.Renderer.Render(path, records)
		if err != nil {
			return fmt.Errorf("render %s: %w", path, err)
		}
		if err := g.Pages.Save(ctx, page); err != nil {
			return fmt.Errorf("save %s: %w", page.Path, err)
		}
		pages = append(pages, page)
		result.Records += len(records)
	}

	if index && len(pages) > 0 {
		page, err := g.Renderer.Index(pages)
		if err != nil {
			return fmt.Errorf("render index: %w", err)
		}
		if err := g.Pages.Save(ctx, page); err != nil {
			return fmt.Errorf("save %s: %w", page.Path, err)
		}
		pages = append(pages, page)
	}

	if err := g.Pages.Commit(); err != nil {
		return fmt.Errorf("commit pages: %w", err)
	}
	result.Pages = len(pages)
	return nil
}
