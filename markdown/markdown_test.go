package markdown_test

import (
	"testing"

	"github.com/hulla/docugen/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderHTML(t *testing.T) {
	t.Parallel()

	t.Run("renders headings", func(t *testing.T) {
		t.Parallel()

		html, err := markdown.NewRenderer().RenderHTML("## add\n")

		require.NoError(t, err)
		assert.Contains(t, html, "<h2")
		assert.Contains(t, html, "add</h2>")
	})

	t.Run("renders blockquotes", func(t *testing.T) {
		t.Parallel()

		html, err := markdown.NewRenderer().RenderHTML("> Adds two numbers.\n")

		require.NoError(t, err)
		assert.Contains(t, html, "<blockquote>")
		assert.Contains(t, html, "Adds two numbers.")
	})

	t.Run("gives headings section anchors", func(t *testing.T) {
		t.Parallel()

		md := "# strings\n\n## add *(`function`)*\n\n## add *(`const`)*\n"
		html, err := markdown.NewRenderer().RenderHTML(md)

		require.NoError(t, err)
		assert.Contains(t, html, `id="strings"`)
		assert.Contains(t, html, `id="add-function"`)
		assert.Contains(t, html, `id="add-const"`)
	})

	t.Run("renders inline code", func(t *testing.T) {
		t.Parallel()

		html, err := markdown.NewRenderer().RenderHTML("Use `add`.\n")

		require.NoError(t, err)
		assert.Contains(t, html, "<code>add</code>")
	})
}
