package repository

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/gen/ent"
	"github.com/joseph-ayodele/scriptsense/gen/ent/ocrresult"
	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stepClock struct {
	t time.Time
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "results.db")
	db, err := Open(context.Background(), Config{DSN: dsn}, quietLogger())
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func newTestRepo(t *testing.T) ResultRepository {
	t.Helper()
	clock := &stepClock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	return NewResultRepository(openTestDB(t), quietLogger(), WithClock(clock.now))
}

func scannedResult(text, langName, langCode string, conf float64) entity.DocumentOCRResult {
	scanned := constants.PDFScanned
	return entity.DocumentOCRResult{
		ExtractedText:      text,
		LanguageName:       langName,
		LanguageCode:       langCode,
		LanguageConfidence: 0.8,
		ConfidenceScore:    conf,
		BoundingBoxes: []entity.BoundingBox{
			{Text: "a", Polygon: []entity.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, Confidence: 0.9},
		},
		PageCount:        2,
		SourceType:       constants.SourcePDF,
		ProcessingTimeMs: 420,
		PDFType:          &scanned,
	}
}

func imageResult(text, langName, langCode string, conf float64) entity.DocumentOCRResult {
	return entity.DocumentOCRResult{
		ExtractedText:      text,
		LanguageName:       langName,
		LanguageCode:       langCode,
		LanguageConfidence: 0.8,
		ConfidenceScore:    conf,
		PageCount:          1,
		SourceType:         constants.SourceImage,
		ProcessingTimeMs:   100,
	}
}

func TestOpen_DialectFromDSN(t *testing.T) {
	db := openTestDB(t)
	assert.Equal(t, "sqlite3", db.Dialect())
	assert.NoError(t, db.HealthCheck(context.Background(), time.Second))
	assert.True(t, isPostgres("postgres://u:p@localhost/db"))
	assert.False(t, isPostgres("file:x.db"))
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, db.Migrate(context.Background()))

	n, err := db.Client().OcrResult.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLiteDSN_EnablesForeignKeys(t *testing.T) {
	assert.Equal(t, "file:x.db?_pragma=foreign_keys(1)", sqliteDSN("file:x.db"))
	assert.Equal(t,
		"file:x.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		sqliteDSN("file:x.db?_pragma=busy_timeout(5000)"))
	assert.Equal(t,
		"file:x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		sqliteDSN("file:x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"))
}

func TestSave_SchemaValidatorsRejectBadRows(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, imageResult("x", "English", "en", 1.5), entity.DocumentMeta{FileName: "a.png"})
	require.Error(t, err)
	assert.True(t, ent.IsValidationError(err))

	bad := imageResult("x", "English", "en", 0.5)
	bad.SourceType = "fax"
	_, err = repo.Save(ctx, bad, entity.DocumentMeta{FileName: "a.png"})
	require.Error(t, err)
	assert.True(t, ent.IsValidationError(err))

	page, err := repo.List(ctx, ResultFilter{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestSave_RowReadableThroughEntClient(t *testing.T) {
	db := openTestDB(t)
	repo := NewResultRepository(db, quietLogger())
	ctx := context.Background()

	saved, err := repo.Save(ctx, scannedResult("hello", "English", "en", 0.7), entity.DocumentMeta{FileName: "scan.pdf"})
	require.NoError(t, err)

	row, err := db.Client().OcrResult.Query().
		Where(ocrresult.PdfType(string(constants.PDFScanned))).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, row.ID)
	assert.Len(t, row.BoundingBoxes, 1)
}

func TestSaveAndGet_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	in := scannedResult("page one\n\n--- Page Break ---\n\npage two", "English", "en", 0.9)
	saved, err := repo.Save(ctx, in, entity.DocumentMeta{FileName: "scan.pdf", FileSize: 2048})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, time.UTC, saved.CreatedAt.Location())

	got, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "scan.pdf", got.FileName)
	assert.Equal(t, int64(2048), got.FileSize)
	assert.Equal(t, in.ExtractedText, got.ExtractedText)
	assert.Equal(t, "English", got.LanguageName)
	assert.Equal(t, "en", got.LanguageCode)
	assert.InDelta(t, 0.9, got.ConfidenceScore, 1e-9)
	assert.Equal(t, 2, got.PageCount)
	assert.Equal(t, constants.SourcePDF, got.SourceType)
	require.NotNil(t, got.PDFType)
	assert.Equal(t, constants.PDFScanned, *got.PDFType)
	assert.Equal(t, in.BoundingBoxes, got.BoundingBoxes)
	assert.True(t, saved.CreatedAt.Equal(got.CreatedAt))
}

func TestSave_ImageHasNoPDFTypeAndEmptyBoxes(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, imageResult("hello world", "English", "en", 0), entity.DocumentMeta{FileName: "a.png"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PDFType)
	assert.NotNil(t, got.BoundingBoxes)
	assert.Empty(t, got.BoundingBoxes)
}

func TestGet_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestList_NewestFirstWithFiltersAndPaging(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for i, r := range []entity.DocumentOCRResult{
		imageResult("one", "English", "en", 0.5),
		scannedResult("two", "Tamil", "ta", 0.7),
		imageResult("three", "English", "en", 0.9),
		scannedResult("four", "English", "en", 0.6),
	} {
		s, err := repo.Save(ctx, r, entity.DocumentMeta{FileName: string(rune('a' + i))})
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}

	page, err := repo.List(ctx, ResultFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, DefaultPageSize, page.Limit)
	assert.Equal(t, 1, page.Pages)
	require.Len(t, page.Results, 4)
	assert.Equal(t, ids[3], page.Results[0].ID)
	assert.Equal(t, ids[0], page.Results[3].ID)

	page, err = repo.List(ctx, ResultFilter{LanguageCode: "en"})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)

	page, err = repo.List(ctx, ResultFilter{LanguageCode: "en", SourceType: constants.SourceImage})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "three", page.Results[0].ExtractedText)

	page, err = repo.List(ctx, ResultFilter{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.Pages)
	require.Len(t, page.Results, 1)
	assert.Equal(t, ids[0], page.Results[0].ID)
}

func TestList_Empty(t *testing.T) {
	repo := newTestRepo(t)
	page, err := repo.List(context.Background(), ResultFilter{Page: -1, Limit: 10000})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.Pages)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, MaxPageSize, page.Limit)
	assert.Empty(t, page.Results)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	s, err := repo.Save(ctx, imageResult("bye", "English", "en", 0), entity.DocumentMeta{FileName: "x.png"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, s.ID))
	_, err = repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, s.ID), common.ErrNotFound)
}

func TestStats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	empty, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
	assert.Zero(t, empty.AverageConfidence)
	assert.Empty(t, empty.ByLanguage)

	for _, r := range []entity.DocumentOCRResult{
		imageResult("one", "English", "en", 0.4),
		scannedResult("two", "Tamil", "ta", 0.8),
		imageResult("three", "English", "en", 0.6),
	} {
		_, err := repo.Save(ctx, r, entity.DocumentMeta{FileName: "f"})
		require.NoError(t, err)
	}

	st, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, map[string]int{"English": 2, "Tamil": 1}, st.ByLanguage)
	assert.Equal(t, map[string]int{"image": 2, "pdf": 1}, st.BySource)
	assert.InDelta(t, 0.6, st.AverageConfidence, 1e-9)
}

func TestDeleteOlderThan(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	var saved []entity.StoredResult
	for i := 0; i < 3; i++ {
		s, err := repo.Save(ctx, imageResult("x", "English", "en", 0), entity.DocumentMeta{FileName: "f"})
		require.NoError(t, err)
		saved = append(saved, s)
	}

	n, err := repo.DeleteOlderThan(ctx, saved[2].CreatedAt)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	page, err := repo.List(ctx, ResultFilter{})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, saved[2].ID, page.Results[0].ID)
}
