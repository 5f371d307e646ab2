package generate_test

import (
	"testing"

	"github.com/hulla/docugen/generate"
	"github.com/stretchr/testify/assert"
)

func TestComputeHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, generate.ComputeHash("a"), generate.ComputeHash("a"))
	assert.NotEqual(t, generate.ComputeHash("a"), generate.ComputeHash("b"))
	assert.Len(t, generate.ComputeHash("a"), 16)
}

func TestTruncatePath(t *testing.T) {
	t.Parallel()

	t.Run("returns path unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "src/a.ts", generate.TruncatePath("src/a.ts", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		path := "packages/core/src/very/long/path/to/strings.ts"
		result := generate.TruncatePath(path, 20)
		assert.Equal(t, "...ath/to/strings.ts", result)
		assert.Len(t, result, 20)
	})

	t.Run("returns empty string when maxLen is not positive", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, generate.TruncatePath("src/a.ts", 0))
		assert.Empty(t, generate.TruncatePath("src/a.ts", -1))
	})

	t.Run("returns prefix when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "src", generate.TruncatePath("src/a.ts", 3))
		assert.Equal(t, "a", generate.TruncatePath("a", 2))
	})
}
