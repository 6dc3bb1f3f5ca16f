package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// MinSelectableChars is the trimmed text length a PDF must exceed to skip OCR.
const MinSelectableChars = 50

// TextLayer is the embedded text of a PDF plus its structural page count.
type TextLayer struct {
	Text  string
	Pages int
}

// TextLayerReader extracts the embedded text layer of a PDF.
type TextLayerReader interface {
	ReadTextLayer(ctx context.Context, data []byte) (TextLayer, error)
}

// PlainTextReader reads text layers with ledongthuc/pdf.
type PlainTextReader struct{}

func (PlainTextReader) ReadTextLayer(ctx context.Context, data []byte) (TextLayer, error) {
	r, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return TextLayer{}, fmt.Errorf("failed to read PDF: %w", err)
	}

	var text strings.Builder
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return TextLayer{}, err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text.WriteString(content)
	}
	return TextLayer{Text: text.String(), Pages: numPages}, nil
}

// Classifier decides whether a PDF already carries usable text.
type Classifier struct {
	reader TextLayerReader
	logger *slog.Logger
}

// NewClassifier builds a classifier; a nil reader uses PlainTextReader.
func NewClassifier(reader TextLayerReader, logger *slog.Logger) *Classifier {
	if reader == nil {
		reader = PlainTextReader{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{reader: reader, logger: logger}
}

var errEmptyPDF = errors.New("empty PDF payload")

// Classify returns Selectable when the trimmed text layer is longer than
// MinSelectableChars runes. Unreadable PDFs fall through to ScannedPages.
// The only errors are an empty payload or a finished context.
func (c *Classifier) Classify(ctx context.Context, data []byte) (entity.Classification, error) {
	if len(data) == 0 {
		return entity.Classification{}, common.NewClassificationError(errEmptyPDF)
	}
	if err := ctx.Err(); err != nil {
		return entity.Classification{}, common.NewClassificationError(err)
	}

	layer, err := c.read(ctx, data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return entity.Classification{}, common.NewClassificationError(ctxErr)
		}
		c.logger.Warn("pdf text layer unreadable, treating as scanned", "error", err)
		return entity.Classification{Kind: entity.ScannedPages}, nil
	}

	trimmed := strings.TrimSpace(layer.Text)
	n := utf8.RuneCountInString(trimmed)
	if n > MinSelectableChars {
		c.logger.Debug("pdf classified", "kind", entity.Selectable, "chars", n, "pages", layer.Pages)
		return entity.Classification{Kind: entity.Selectable, Text: layer.Text, PageCount: layer.Pages}, nil
	}
	c.logger.Debug("pdf classified", "kind", entity.ScannedPages, "chars", n)
	return entity.Classification{Kind: entity.ScannedPages}, nil
}

// read shields the caller from parser panics on malformed input.
func (c *Classifier) read(ctx context.Context, data []byte) (layer TextLayer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()
	return c.reader.ReadTextLayer(ctx, data)
}
