package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
	repo "github.com/joseph-ayodele/scriptsense/internal/repository"
)

func TestExportHistory_WritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &common.Config{}
	cfg.Database.DSN = "file:" + filepath.Join(dir, "history.db")

	ctx := context.Background()
	db, err := repo.Open(ctx, repo.Config{DSN: cfg.Database.DSN}, logger)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))
	_, err = repo.NewResultRepository(db, logger).Save(ctx, entity.DocumentOCRResult{
		ExtractedText: "வணக்கம்", LanguageName: "Tamil", LanguageCode: "ta",
		PageCount: 1, SourceType: constants.SourceImage,
	}, entity.DocumentMeta{FileName: "tamil.png"})
	require.NoError(t, err)
	db.Close()

	out := filepath.Join(dir, "out.xlsx")
	require.NoError(t, exportHistory(ctx, cfg, repo.ResultFilter{}, out, logger))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("History")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "tamil.png", rows[1][1])
	assert.Equal(t, "வணக்கம்", rows[1][9])
}

func TestRootCmd_RejectsUnknownSource(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--source", "fax"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}
