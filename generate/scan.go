package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/hulla/docugen"
	"golang.org/x/sync/errgroup"
)

// Scanner defaults.
const (
	DefaultConcurrency = 8
	DefaultFileTimeout = 10 * time.Second
)

// Scanner reads and scans source files concurrently.
type Scanner struct {
	Reader docugen.FileReader

	// Cache is optional. Files whose content hash has a cache entry are
	// not scanned.
	Cache docugen.CacheService

	Concurrency int
	FileTimeout time.Duration
}

// FileResult is the outcome of scanning one file. Exactly one of Err,
// Cached and Scan is meaningful.
type FileResult struct {
	Path   string
	Hash   string
	Cached *docugen.CacheEntry
	Scan   docugen.ScanResult
	Err    error
}

// ScanFiles scans every path and returns one result per path, in path
// order. A file that cannot be read gets a result with Err set; the other
// files are unaffected. Progress events are emitted from the calling
// goroutine.
func (s *Scanner) ScanFiles(ctx context.Context, paths []string, progress ProgressFunc) []FileResult {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(paths)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan FileResult, len(paths))
	positions := make(map[string]int, len(paths))
	for i, path := range paths {
		positions[path] = i
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, path := range paths {
			g.Go(func() error {
				resultCh <- s.scanFile(gctx, path)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]FileResult, len(paths))
	var completed int
	for result := range resultCh {
		completed++
		results[positions[result.Path]] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Path:      result.Path,
		}
		if result.Err != nil {
			event.Type = ProgressFailed
			event.Error = result.Err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return results
}

// scanFile reads path under the per-file timeout and scans it.
func (s *Scanner) scanFile(ctx context.Context, path string) FileResult {
	result := FileResult{Path: path}

	timeout := s.FileTimeout
	if timeout <= 0 {
		timeout = DefaultFileTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	content, err := s.Reader.ReadFile(ctx, path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Hash = ComputeHash(content)

	if s.Cache != nil {
		entry, err := s.Cache.FindEntry(ctx, path, result.Hash)
		if err == nil {
			result.Cached = entry
			return result
		}
		// A failing cache only costs a rescan, unless the file ran out of time.
		if ctx.Err() != nil {
			result.Err = fmt.Errorf("cache lookup: %w", ctx.Err())
			return result
		}
	}

	result.Scan = docugen.ScanContent(content)
	return result
}

