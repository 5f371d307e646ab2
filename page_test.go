package docugen_test

import (
	"testing"

	"github.com/hulla/docugen"
	"github.com/stretchr/testify/assert"
)

func TestPagePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source string
		format docugen.Format
		want   string
	}{
		{"./src/parser.ts", docugen.FormatMarkdown, "src/parser.md"},
		{"src/util/strings.test.ts", docugen.FormatMarkdown, "src/util/strings.md"},
		{"index.tsx", docugen.FormatHTML, "index.html"},
		{"../outside/a.ts", docugen.FormatMarkdown, "outside/a.md"},
		{"/abs/path/b.js", docugen.FormatMarkdown, "abs/path/b.md"},
		{"src/.hidden.ts", docugen.FormatMarkdown, "src/index.md"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docugen.PagePath(tt.source, tt.format))
		})
	}
}

func TestPageTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "parser", docugen.PageTitle("./src/parser.ts"))
	assert.Equal(t, "strings", docugen.PageTitle("src/util/strings.test.ts"))
	assert.Equal(t, "README", docugen.PageTitle("README"))
}
