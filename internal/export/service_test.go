package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
	"github.com/joseph-ayodele/scriptsense/internal/repository"
)

type fakeHistory struct {
	results []entity.StoredResult
	pages   []int
	err     error
}

func (f *fakeHistory) List(_ context.Context, filter repository.ResultFilter) (repository.ResultPage, error) {
	if f.err != nil {
		return repository.ResultPage{}, f.err
	}
	f.pages = append(f.pages, filter.Page)
	// two results per page to exercise the paging loop
	const per = 2
	from := (filter.Page - 1) * per
	to := min(from+per, len(f.results))
	pages := (len(f.results) + per - 1) / per
	return repository.ResultPage{Results: f.results[from:to], Total: len(f.results), Page: filter.Page, Pages: pages}, nil
}

func (f *fakeHistory) Stats(context.Context) (repository.Stats, error) {
	return repository.Stats{
		Total:             len(f.results),
		ByLanguage:        map[string]int{"Tamil": 1, "English": 2},
		BySource:          map[string]int{"pdf": 1, "image": 2},
		AverageConfidence: 0.5,
	}, nil
}

func stored(name, lang string, src constants.SourceKind) entity.StoredResult {
	return entity.StoredResult{
		FileName:  name,
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		DocumentOCRResult: entity.DocumentOCRResult{
			ExtractedText:   "text of " + name,
			LanguageName:    lang,
			LanguageCode:    "en",
			ConfidenceScore: 0.5,
			PageCount:       1,
			SourceType:      src,
		},
	}
}

func TestExportHistoryXLSX(t *testing.T) {
	h := &fakeHistory{results: []entity.StoredResult{
		stored("a.png", "English", constants.SourceImage),
		stored("b.pdf", "Tamil", constants.SourcePDF),
		stored("c.png", "English", constants.SourceImage),
	}}
	svc := NewService(h, slog.New(slog.NewTextHandler(io.Discard, nil)))

	data, err := svc.ExportHistoryXLSX(context.Background(), repository.ResultFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, h.pages)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(historySheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Created At", rows[0][0])
	assert.Equal(t, "a.png", rows[1][1])
	assert.Equal(t, "pdf", rows[2][2])
	assert.Equal(t, "c.png", rows[3][1])
	assert.Equal(t, "text of c.png", rows[3][9])

	total, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "3", total)
	lang, err := f.GetCellValue(summarySheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Language: English", lang)
}

func TestExportHistoryXLSX_ListError(t *testing.T) {
	svc := NewService(&fakeHistory{err: errors.New("boom")}, nil)
	_, err := svc.ExportHistoryXLSX(context.Background(), repository.ResultFilter{})
	assert.Error(t, err)
}

func TestTruncate_Runes(t *testing.T) {
	assert.Equal(t, "தமிழ்", truncate("தமிழ்", 10))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
}
