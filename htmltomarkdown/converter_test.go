package htmltomarkdown_test

import (
	"testing"

	"github.com/hulla/docugen"
	"github.com/hulla/docugen/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts inline code", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`Use <code>add</code> instead.`)

		require.NoError(t, err)
		assert.Equal(t, "Use `add` instead.", md)
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`See <a href="https://example.com">Example</a> for more info.`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`This is <strong>bold</strong> and <em>italic</em>.`)

		require.NoError(t, err)
		assert.Contains(t, md, "**bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>First</li><li>Second</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
	})

	t.Run("keeps comment lines apart", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("First <b>line</b>\nSecond line")

		require.NoError(t, err)
		assert.Contains(t, md, "**line**")
		assert.Contains(t, md, "\n")
		assert.Contains(t, md, "Second line")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, docugen.EINVALID, docugen.ErrorCode(err))
	})
}
