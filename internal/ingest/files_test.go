package ingest

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "scan.PDF"), "%PDF-1.4")
	writeFile(t, filepath.Join(dir, "photo.jpg"), "jpegbytes")
	writeFile(t, filepath.Join(dir, "notes.txt"), "hello")
	writeFile(t, filepath.Join(dir, "empty.png"), "")

	doc, err := LoadFile(filepath.Join(dir, "scan.PDF"), 1<<20)
	require.NoError(t, err)
	assert.Equal(t, constants.SourcePDF, doc.Source)
	assert.Equal(t, constants.MimePDF, doc.MimeType)
	assert.Equal(t, "scan.PDF", doc.FileName)
	assert.Equal(t, int64(8), doc.Size)

	doc, err = LoadFile(filepath.Join(dir, "photo.jpg"), 1<<20)
	require.NoError(t, err)
	assert.Equal(t, constants.SourceImage, doc.Source)
	assert.Equal(t, constants.MimeJPEG, doc.MimeType)

	_, err = LoadFile(filepath.Join(dir, "notes.txt"), 1<<20)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = LoadFile(filepath.Join(dir, "empty.png"), 1<<20)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = LoadFile(filepath.Join(dir, "photo.jpg"), 4)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestWalkDocuments(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.png"), "png")
	writeFile(t, filepath.Join(root, "sub", "b.pdf"), "%PDF")
	writeFile(t, filepath.Join(root, "sub", "readme.md"), "skip")
	writeFile(t, filepath.Join(root, ".hidden", "c.png"), "png")
	writeFile(t, filepath.Join(root, "empty.jpg"), "")

	var names []string
	stats, failed, err := WalkDocuments(context.Background(), root, 1<<20, true, func(d entity.SubmittedDocument) error {
		names = append(names, d.FileName)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(names)
	assert.Equal(t, []string{"a.png", "b.pdf"}, names)
	assert.Equal(t, uint32(3), stats.Matched)
	assert.Equal(t, uint32(2), stats.Loaded)
	assert.Equal(t, uint32(1), stats.Failed)
	require.Len(t, failed, 1)
	assert.Equal(t, "empty.jpg", filepath.Base(failed[0].Path))
}

func TestWalkDocuments_RequiresRoot(t *testing.T) {
	_, _, err := WalkDocuments(context.Background(), " ", 0, true, func(entity.SubmittedDocument) error { return nil })
	assert.Error(t, err)
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/x/.git"))
	assert.False(t, IsHidden("/x/a.png"))
	assert.False(t, IsHidden("."))
}
