package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/scriptsense/constants"
)

// SelectableConfidence is reported for PDFs read from their text layer.
const SelectableConfidence = 0.95

// DocumentOCRResult is the immutable output of a completed run.
type DocumentOCRResult struct {
	ExtractedText      string
	LanguageName       string
	LanguageCode       string
	LanguageConfidence float64
	ConfidenceScore    float64
	BoundingBoxes      []BoundingBox
	PageCount          int
	SourceType         constants.SourceKind
	ProcessingTimeMs   int64
	PDFType            *constants.PDFType
}

// DocumentMeta is what the persistence side needs beyond the result itself.
type DocumentMeta struct {
	FileName string
	FileSize int64
}

// StoredResult is a persisted DocumentOCRResult with identity and timestamp.
type StoredResult struct {
	ID        uuid.UUID
	FileName  string
	FileSize  int64
	CreatedAt time.Time
	DocumentOCRResult
}

// ResultView is the caller-visible response shape.
type ResultView struct {
	ID               string        `json:"id,omitempty" yaml:"id,omitempty"`
	Text             string        `json:"text" yaml:"text"`
	Language         string        `json:"language" yaml:"language"`
	LanguageCode     string        `json:"languageCode" yaml:"languageCode"`
	Confidence       float64       `json:"confidence" yaml:"confidence"`
	Boxes            []BoundingBox `json:"boxes" yaml:"boxes"`
	PageCount        *int          `json:"pageCount,omitempty" yaml:"pageCount,omitempty"`
	PDFType          *string       `json:"pdfType,omitempty" yaml:"pdfType,omitempty"`
	ProcessingTimeMs int64         `json:"processingTime" yaml:"processingTime"`
}

// View renders the caller-visible shape. pageCount is only reported for PDFs.
func (r DocumentOCRResult) View() ResultView {
	boxes := r.BoundingBoxes
	if boxes == nil {
		boxes = []BoundingBox{}
	}
	v := ResultView{
		Text:             r.ExtractedText,
		Language:         r.LanguageName,
		LanguageCode:     r.LanguageCode,
		Confidence:       r.ConfidenceScore,
		Boxes:            boxes,
		ProcessingTimeMs: r.ProcessingTimeMs,
	}
	if r.SourceType == constants.SourcePDF {
		n := r.PageCount
		v.PageCount = &n
	}
	if r.PDFType != nil {
		t := string(*r.PDFType)
		v.PDFType = &t
	}
	return v
}

// View adds the stored identity to the response shape.
func (s StoredResult) View() ResultView {
	v := s.DocumentOCRResult.View()
	v.ID = s.ID.String()
	return v
}
