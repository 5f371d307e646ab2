package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hulla/docugen"
	"github.com/hulla/docugen/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Staged Page Storage
// The store stages pages next to the output directory and moves them on commit

func TestPageStore_SaveWritesToStagingDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewPageStore(filepath.Join(base, "docs"))

	// When I save a page
	err := store.Save(context.Background(), &docugen.Page{
		Path:    "src/parser.md",
		Content: "## parseFiles",
	})

	// Then no error occurs
	require.NoError(t, err)

	// And the file exists in the staging directory
	_, err = os.Stat(filepath.Join(base, "docs.tmp", "src", "parser.md"))
	require.NoError(t, err, "file should exist in staging directory")

	// And the output directory does not exist yet
	_, err = os.Stat(filepath.Join(base, "docs", "src", "parser.md"))
	assert.True(t, os.IsNotExist(err), "output file should not exist until commit")
}

func TestPageStore_CommitMovesPagesIntoOutputDirectory(t *testing.T) {
	t.Parallel()

	// Given an output directory with an unrelated page
	base := t.TempDir()
	outDir := filepath.Join(base, "docs")
	require.NoError(t, os.MkdirAll(outDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "guide.md"), []byte("# Guide"), 0644))

	// And a store with a saved page
	store := fs.NewPageStore(outDir)
	require.NoError(t, store.Save(context.Background(), &docugen.Page{
		Path:    "src/util/strings.md",
		Content: "## terminateOn",
	}))

	// When I commit
	err := store.Commit()

	// Then the page is in place
	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(outDir, "src", "util", "strings.md"))
	require.NoError(t, err)
	assert.Equal(t, "## terminateOn", string(content))

	// And the unrelated page is kept
	_, err = os.Stat(filepath.Join(outDir, "guide.md"))
	require.NoError(t, err)

	// And the staging directory is gone
	_, err = os.Stat(filepath.Join(base, "docs.tmp"))
	assert.True(t, os.IsNotExist(err), "staging directory should be removed after commit")
}

func TestPageStore_CommitReplacesExistingPage(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	outDir := filepath.Join(base, "docs")
	require.NoError(t, os.MkdirAll(outDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "a.md"), []byte("old"), 0644))

	store := fs.NewPageStore(outDir)
	require.NoError(t, store.Save(context.Background(), &docugen.Page{Path: "a.md", Content: "new"}))
	require.NoError(t, store.Commit())

	content, err := os.ReadFile(filepath.Join(outDir, "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestPageStore_CommitWithoutPagesIsNoop(t *testing.T) {
	t.Parallel()

	store := fs.NewPageStore(filepath.Join(t.TempDir(), "docs"))

	assert.NoError(t, store.Commit())
}

func TestPageStore_AbortCleansUpStagingDirectory(t *testing.T) {
	t.Parallel()

	// Given a store with saved pages
	base := t.TempDir()
	store := fs.NewPageStore(filepath.Join(base, "docs"))
	require.NoError(t, store.Save(context.Background(), &docugen.Page{Path: "a.md", Content: "# A"}))

	// When I abort
	err := store.Abort()

	// Then the staging directory is removed
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "docs.tmp"))
	assert.True(t, os.IsNotExist(err), "staging directory should be removed after abort")

	// And nothing was written to the output directory
	_, err = os.Stat(filepath.Join(base, "docs"))
	assert.True(t, os.IsNotExist(err), "output directory should not exist after abort")
}

func TestPageStore_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	store := fs.NewPageStore(filepath.Join(t.TempDir(), "docs"))

	err := store.Save(context.Background(), &docugen.Page{
		Path:    "../../etc/passwd",
		Content: "bad content",
	})

	require.Error(t, err, "path traversal should be rejected")
	assert.Equal(t, docugen.EINVALID, docugen.ErrorCode(err))
}

func TestPageStore_RejectsEmptyPath(t *testing.T) {
	t.Parallel()

	store := fs.NewPageStore(filepath.Join(t.TempDir(), "docs"))

	err := store.Save(context.Background(), &docugen.Page{Content: "x"})

	require.Error(t, err)
	assert.Equal(t, docugen.EINVALID, docugen.ErrorCode(err))
}
