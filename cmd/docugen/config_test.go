package main_test

import (
	"strings"
	"testing"

	"github.com/hulla/docugen"
	main "github.com/hulla/docugen/cmd/docugen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("accepts yaml", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(strings.NewReader("outDir: ./site\nincludes: [./src, ./lib]\n"))

		require.NoError(t, err)
	})

	t.Run("accepts json", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(strings.NewReader(`{"outDir": "./site", "meta": false}`))

		require.NoError(t, err)
	})

	t.Run("accepts toml", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(strings.NewReader("outDir = \"./site\"\nfiles = [\".ts\"]\n"))

		require.NoError(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(strings.NewReader("outDir = [unclosed\n"))

		require.Error(t, err)
		assert.Equal(t, docugen.EINVALID, docugen.ErrorCode(err))
	})
}

func TestGenerateCmd_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *main.GenerateCmd {
		return &main.GenerateCmd{
			OutDir:      "./docs",
			Includes:    []string{"."},
			Adapter:     "starlight",
			Format:      ".md",
			Files:       []string{".ts"},
			Concurrency: 8,
			Timeout:     1,
		}
	}

	t.Run("accepts defaults", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, valid().Validate())
	})

	t.Run("requires output directory", func(t *testing.T) {
		t.Parallel()

		cmd := valid()
		cmd.OutDir = ""

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, "--outDir is required", docugen.ErrorMessage(err))
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		cmd := valid()
		cmd.Format = ".pdf"

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, "--format must be one of: .md .html", docugen.ErrorMessage(err))
	})

	t.Run("rejects zero concurrency", func(t *testing.T) {
		t.Parallel()

		cmd := valid()
		cmd.Concurrency = 0

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, "--concurrency must be at least 1", docugen.ErrorMessage(err))
	})

	t.Run("rejects extension without dot", func(t *testing.T) {
		t.Parallel()

		cmd := valid()
		cmd.Files = []string{"ts"}

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, `--files entries must start with "."`, docugen.ErrorMessage(err))
	})
}
