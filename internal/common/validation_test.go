package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

func TestValidateDocument(t *testing.T) {
	ok := entity.SubmittedDocument{
		Data:     []byte("%PDF-1.7"),
		MimeType: "application/pdf",
		Source:   constants.SourcePDF,
		FileName: "letter.pdf",
	}
	require.NoError(t, ValidateDocument(ok, 1<<20))

	tests := []struct {
		name   string
		mutate func(d *entity.SubmittedDocument)
		field  string
	}{
		{"missing name", func(d *entity.SubmittedDocument) { d.FileName = "  " }, "file_name"},
		{"empty data", func(d *entity.SubmittedDocument) { d.Data = nil }, "data"},
		{"bad mime", func(d *entity.SubmittedDocument) { d.MimeType = "text/plain"; d.Source = constants.SourceImage }, "mime_type"},
		{"bad source", func(d *entity.SubmittedDocument) { d.Source = "fax" }, "source"},
		{"pdf source with image mime", func(d *entity.SubmittedDocument) { d.MimeType = "image/png" }, "mime_type"},
		{"too large", func(d *entity.SubmittedDocument) { d.Data = make([]byte, 2<<20) }, "size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ok
			tt.mutate(&doc)
			err := ValidateDocument(doc, 1<<20)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateDocumentNoSizeLimit(t *testing.T) {
	doc := entity.SubmittedDocument{
		Data:     make([]byte, 4<<20),
		MimeType: "image/jpeg; charset=binary",
		Source:   constants.SourceCamera,
		FileName: "photo.jpg",
	}
	assert.NoError(t, ValidateDocument(doc, 0))
}

func TestUUIDRule(t *testing.T) {
	assert.Nil(t, UUID("id", "8f14e45f-ceea-4e7a-9b1d-2f1c3f0e6f0a"))
	assert.NotNil(t, UUID("id", "nope"))
	assert.NotNil(t, UUID("id", 42))
}
