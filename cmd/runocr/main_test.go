package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
	"github.com/joseph-ayodele/scriptsense/internal/queue"
	repo "github.com/joseph-ayodele/scriptsense/internal/repository"
)

func TestStatsTable_SortedGroups(t *testing.T) {
	data := statsTable(repo.Stats{
		Total:             3,
		ByLanguage:        map[string]int{"Tamil": 1, "English": 2},
		BySource:          map[string]int{"pdf": 3},
		AverageConfidence: 0.5,
	})
	require.Len(t, data.Rows, 5)
	assert.Equal(t, []string{"total", "3"}, data.Rows[0])
	assert.Equal(t, []string{"language: English", "2"}, data.Rows[2])
	assert.Equal(t, []string{"source: pdf", "3"}, data.Rows[4])
}

func TestBatchTable(t *testing.T) {
	data := batchTable([]queue.JobResult{
		{Job: queue.Job{Doc: entity.SubmittedDocument{FileName: "b.png"}}, StoredID: "id-b", Result: &entity.DocumentOCRResult{PageCount: 1, LanguageName: "Tamil", ConfidenceScore: 0.9, ProcessingTimeMs: 1500}},
		{Job: queue.Job{Doc: entity.SubmittedDocument{FileName: "a.pdf"}}, Err: errors.New("boom")},
	})
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "a.pdf", data.Rows[0][0])
	assert.Equal(t, "boom", data.Rows[0][6])
	assert.Equal(t, []string{"b.png", "id-b", "1", "Tamil", "0.90", "1.5s", ""}, data.Rows[1])
}

func TestBatchTable_SameBaseNameKeepsEachID(t *testing.T) {
	res := &entity.DocumentOCRResult{PageCount: 1, LanguageName: "English"}
	data := batchTable([]queue.JobResult{
		{Job: queue.Job{Doc: entity.SubmittedDocument{FileName: "scan.png"}}, StoredID: "id-2", Result: res},
		{Job: queue.Job{Doc: entity.SubmittedDocument{FileName: "scan.png"}}, StoredID: "id-1", Result: res},
	})
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "id-1", data.Rows[0][1])
	assert.Equal(t, "id-2", data.Rows[1][1])
}

func TestHistoryTable(t *testing.T) {
	id := uuid.New()
	data := historyTable(repo.ResultPage{Results: []entity.StoredResult{{
		ID:        id,
		FileName:  "x.png",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		DocumentOCRResult: entity.DocumentOCRResult{
			SourceType: constants.SourceCamera, PageCount: 1, LanguageName: "Hindi", ConfidenceScore: 0.25,
		},
	}}})
	require.Len(t, data.Rows, 1)
	assert.Equal(t, []string{id.String(), "2025-01-01T00:00:00Z", "x.png", "camera", "1", "Hindi", "0.25"}, data.Rows[0])
}

func TestParseID(t *testing.T) {
	_, err := parseID("nope")
	assert.ErrorIs(t, err, common.ErrValidation)
	id := uuid.New()
	got, err := parseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestMarkCamera(t *testing.T) {
	img := entity.SubmittedDocument{Source: constants.SourceImage}
	markCamera(&img, true)
	assert.Equal(t, constants.SourceCamera, img.Source)

	pdf := entity.SubmittedDocument{Source: constants.SourcePDF}
	markCamera(&pdf, true)
	assert.Equal(t, constants.SourcePDF, pdf.Source)
}

func TestRootCmd_MigrateOnSQLite(t *testing.T) {
	t.Setenv("DB_URL", "file:"+t.TempDir()+"/cli.db")
	a := &app{}
	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--env-file", "", "migrate"})
	require.NoError(t, root.Execute())
	a.close()
	assert.Contains(t, out.String(), "DB health: OK (sqlite3)")
}
