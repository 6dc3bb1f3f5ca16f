package constants

import "strings"

// SourceKind tells how a document reached the pipeline.
type SourceKind string

const (
	SourceImage  SourceKind = "image"
	SourceCamera SourceKind = "camera"
	SourcePDF    SourceKind = "pdf"
)

// SourceKinds holds the allowed values for the source_type column.
var SourceKinds = []string{string(SourceImage), string(SourceCamera), string(SourcePDF)}

// PDFType records which branch a PDF took through the pipeline.
type PDFType string

const (
	PDFSelectable PDFType = "selectable"
	PDFScanned    PDFType = "scanned"
)

// PDFTypes holds the allowed values for the pdf_type column.
var PDFTypes = []string{string(PDFSelectable), string(PDFScanned)}

const (
	MimePDF  = "application/pdf"
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
	MimeWebP = "image/webp"
	MimeGIF  = "image/gif"
	MimeBMP  = "image/bmp"
	MimeTIFF = "image/tiff"
)

// AllowedMimeTypes holds the MIME types accepted at intake.
var AllowedMimeTypes = map[string]struct{}{
	MimePDF:  {},
	MimePNG:  {},
	MimeJPEG: {},
	MimeWebP: {},
	MimeGIF:  {},
	MimeBMP:  {},
	MimeTIFF: {},
}

var extToMime = map[string]string{
	"pdf":  MimePDF,
	"png":  MimePNG,
	"jpg":  MimeJPEG,
	"jpeg": MimeJPEG,
	"webp": MimeWebP,
	"gif":  MimeGIF,
	"bmp":  MimeBMP,
	"tif":  MimeTIFF,
	"tiff": MimeTIFF,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MimeForExt maps a file extension to its MIME type, "" when unsupported.
func MimeForExt(ext string) string {
	return extToMime[NormalizeExt(ext)]
}

// NormalizeMime strips parameters and lowercases a MIME type.
func NormalizeMime(mime string) string {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return strings.ToLower(strings.TrimSpace(mime))
}

// IsPDF reports whether the MIME type denotes a PDF.
func IsPDF(mime string) bool {
	return NormalizeMime(mime) == MimePDF
}
