package mock_test

import (
	"context"
	"testing"

	"github.com/hulla/docugen"
	"github.com/hulla/docugen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *docugen.Page
		s := &mock.PageStore{
			SaveFn: func(_ context.Context, page *docugen.Page) error {
				calledWith = page
				return nil
			},
		}

		page := &docugen.Page{Path: "src/a.md"}
		err := s.Save(context.Background(), page)

		require.NoError(t, err)
		assert.Same(t, page, calledWith)
	})

	t.Run("returns error from SaveFn", func(t *testing.T) {
		t.Parallel()

		s := &mock.PageStore{
			SaveFn: func(_ context.Context, _ *docugen.Page) error {
				return docugen.Errorf(docugen.EINTERNAL, "disk full")
			},
		}

		err := s.Save(context.Background(), &docugen.Page{})

		require.Error(t, err)
		assert.Equal(t, docugen.EINTERNAL, docugen.ErrorCode(err))
	})
}

func TestWarningReporter_Report(t *testing.T) {
	t.Parallel()

	var got []docugen.Warning
	r := &mock.WarningReporter{
		ReportFn: func(warnings []docugen.Warning) { got = warnings },
	}

	r.Report([]docugen.Warning{{Code: docugen.EUNRESOLVEDTAG, Path: "a.ts"}})

	require.Len(t, got, 1)
	assert.Equal(t, "a.ts", got[0].Path)
}
