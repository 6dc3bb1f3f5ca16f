package entity

import (
	"github.com/joseph-ayodele/scriptsense/constants"
)

// SubmittedDocument is the caller-owned input of one pipeline run.
type SubmittedDocument struct {
	Data     []byte
	MimeType string
	Source   constants.SourceKind
	FileName string
	Size     int64
}

// IsPDF reports whether the document takes the PDF branch.
func (d SubmittedDocument) IsPDF() bool {
	return d.Source == constants.SourcePDF || constants.IsPDF(d.MimeType)
}

// ClassificationKind is the outcome of inspecting a PDF text layer.
type ClassificationKind int

const (
	ScannedPages ClassificationKind = iota
	Selectable
)

func (k ClassificationKind) String() string {
	if k == Selectable {
		return string(constants.PDFSelectable)
	}
	return string(constants.PDFScanned)
}

// Classification is decided once per PDF submission.
// Text and PageCount are only meaningful for Selectable.
type Classification struct {
	Kind      ClassificationKind
	Text      string
	PageCount int
}

// PageImage is one rasterized page, 0-based Index.
type PageImage struct {
	Index    int
	Data     []byte
	MimeType string
	Width    int // 0 when unknown
	Height   int
}
