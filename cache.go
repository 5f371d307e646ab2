package docugen

import (
	"context"
	"time"
)

// CacheEntry holds the assembled records of a file at a given content hash.
type CacheEntry struct {
	Path        string
	ContentHash string

	// HasBlocks reports whether the file contained any documentation block.
	// Files without blocks are absent from DocsData.
	HasBlocks bool

	Records   []DocRecord
	UpdatedAt time.Time
}

// Validate returns an error if the entry contains invalid fields.
func (e *CacheEntry) Validate() error {
	if e.Path == "" {
		return Errorf(EINVALID, "cache entry path required")
	}
	if e.ContentHash == "" {
		return Errorf(EINVALID, "cache entry content hash required")
	}
	return nil
}

// CacheService stores assembled records keyed by file content.
type CacheService interface {
	// FindEntry returns the entry for path if its content hash matches.
	// Returns ENOTFOUND if there is no entry for that content.
	FindEntry(ctx context.Context, path, contentHash string) (*CacheEntry, error)

	// SaveEntry creates or replaces the entry for entry.Path.
	SaveEntry(ctx context.Context, entry *CacheEntry) error
}
