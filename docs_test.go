package docugen_test

import (
	"testing"

	"github.com/hulla/docugen"
	"github.com/stretchr/testify/assert"
)

func TestParseDocs(t *testing.T) {
	t.Parallel()

	t.Run("splits description and tags", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"/**",
			"* Adds two numbers",
			"* @param a first operand",
			"* @returns the sum",
		}

		docs, dropped := docugen.ParseDocs(lines)

		assert.Equal(t, "Adds two numbers", docs.Description)
		assert.Equal(t, []string{"@param a first operand", "@returns the sum"}, docs.Tags)
		assert.Empty(t, dropped)
	})

	t.Run("description only block has no tags", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"  /**",
			"   * Parses the contents",
			"   *",
			"   * of the specified files.",
		}

		docs, _ := docugen.ParseDocs(lines)

		assert.Equal(t, "Parses the contents\nof the specified files.", docs.Description)
		assert.Empty(t, docs.Tags)
	})

	t.Run("merges continuation lines into the open tag", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"/**",
			" * @example",
			" * ```ts",
			" * add(1, 2)",
			" * ```",
			" * @see subtract",
		}

		docs, _ := docugen.ParseDocs(lines)

		assert.Empty(t, docs.Description)
		assert.Equal(t, []string{"@example\n```ts\nadd(1, 2)\n```", "@see subtract"}, docs.Tags)
	})

	t.Run("continuation after unresolved tag extends the last resolved tag", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"/**",
			" * Does things",
			" * @param x the input",
			" * @foo unknown",
			" * continues foo",
			" * @returns nothing",
		}

		docs, dropped := docugen.ParseDocs(lines)

		assert.Equal(t, "Does things", docs.Description)
		assert.Equal(t, []string{"@param x the input\ncontinues foo", "@returns nothing"}, docs.Tags)
		assert.Equal(t, []string{"@foo unknown"}, dropped)
	})

	t.Run("description after unresolved leading tag is dropped", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"/**",
			" * Summary",
			" * @foo unknown",
			" * more foo",
			" * @returns nothing",
		}

		docs, dropped := docugen.ParseDocs(lines)

		assert.Equal(t, "Summary", docs.Description)
		assert.Equal(t, []string{"@returns nothing"}, docs.Tags)
		assert.Equal(t, []string{"@foo unknown"}, dropped)
	})

	t.Run("text after unresolved leading tag is dropped", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"/**",
			" * @foo unknown",
			" * more foo",
		}

		docs, dropped := docugen.ParseDocs(lines)

		assert.True(t, docs.IsEmpty())
		assert.Len(t, dropped, 1)
	})

	t.Run("description is closed once a tag opens", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"/** Summary",
			" * @deprecated",
			" * use other instead",
		}

		docs, _ := docugen.ParseDocs(lines)

		assert.Equal(t, "Summary", docs.Description)
		assert.Equal(t, []string{"@deprecated\nuse other instead"}, docs.Tags)
	})

	t.Run("empty block yields empty docs", func(t *testing.T) {
		t.Parallel()

		docs, dropped := docugen.ParseDocs([]string{"/**", " *", ""})

		assert.True(t, docs.IsEmpty())
		assert.Empty(t, dropped)
	})
}

func TestStripDelimiters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", docugen.StripDelimiters("/**"))
	assert.Equal(t, "Short", docugen.StripDelimiters("/** Short */"))
	assert.Equal(t, "@returns a * b", docugen.StripDelimiters("   * @returns a * b"))
	assert.Equal(t, "", docugen.StripDelimiters(" */"))
}

func TestDocsBuilder(t *testing.T) {
	t.Parallel()

	var b docugen.DocsBuilder
	b.AppendToLastTag("ignored without a tag")
	b.AppendDescription("first")
	b.AppendDescription("second")
	b.OpenTag("@param a")
	b.AppendToLastTag("more")

	docs := b.Docs()

	assert.Equal(t, "first\nsecond", docs.Description)
	assert.Equal(t, []string{"@param a\nmore"}, docs.Tags)
}
