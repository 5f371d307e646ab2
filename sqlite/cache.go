package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hulla/docugen"
	"github.com/vmihailenco/msgpack/v5"
)

// Compile-time interface verification.
var _ docugen.CacheService = (*CacheService)(nil)

// CacheService implements docugen.CacheService using SQLite.
// Records are stored msgpack-encoded in a single blob per file.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// FindEntry retrieves the entry for path if it was saved with contentHash.
func (s *CacheService) FindEntry(ctx context.Context, path, contentHash string) (*docugen.CacheEntry, error) {
	var entry docugen.CacheEntry
	var hasBlocks int
	var records []byte
	var updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT path, content_hash, has_blocks, records, updated_at
		FROM cache_entries
		WHERE path = ? AND content_hash = ?
	`, path, contentHash).Scan(&entry.Path, &entry.ContentHash, &hasBlocks, &records, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, docugen.Errorf(docugen.ENOTFOUND, "cache entry not found")
	}
	if err != nil {
		return nil, err
	}

	entry.HasBlocks = hasBlocks != 0
	if len(records) > 0 {
		if err := msgpack.Unmarshal(records, &entry.Records); err != nil {
			return nil, fmt.Errorf("failed to decode records: %w", err)
		}
	}
	if entry.Records == nil {
		entry.Records = []docugen.DocRecord{}
	}

	entry.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at")
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// SaveEntry creates or replaces the entry for entry.Path.
func (s *CacheService) SaveEntry(ctx context.Context, entry *docugen.CacheEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	records, err := msgpack.Marshal(entry.Records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	var hasBlocks int
	if entry.HasBlocks {
		hasBlocks = 1
	}
	entry.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (path, content_hash, has_blocks, records, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			content_hash = excluded.content_hash,
			has_blocks = excluded.has_blocks,
			records = excluded.records,
			updated_at = excluded.updated_at
	`, entry.Path, entry.ContentHash, hasBlocks, records, entry.UpdatedAt.Format(time.RFC3339Nano))

	return err
}
