//go:build cgo && ocr

package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// TesseractProvider recognizes text locally through libtesseract.
type TesseractProvider struct {
	languages   []string
	tessdataDir string
	logger      *slog.Logger
}

func NewTesseractProvider(cfg ProviderConfig, logger *slog.Logger) (*TesseractProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}
	langs := strings.FieldsFunc(cfg.TesseractLang, func(r rune) bool { return r == '+' || r == ',' })
	if len(langs) == 0 {
		langs = []string{"eng"}
	}
	return &TesseractProvider{languages: langs, tessdataDir: cfg.TessdataDir, logger: logger}, nil
}

func (p *TesseractProvider) Name() string { return ProviderTesseract }

// Extract runs one gosseract client per call; clients are not goroutine safe.
func (p *TesseractProvider) Extract(ctx context.Context, image []byte, _ string) (Extraction, error) {
	if err := ctx.Err(); err != nil {
		return Extraction{}, transportError(p.Name(), err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if p.tessdataDir != "" {
		if err := client.SetTessdataPrefix(p.tessdataDir); err != nil {
			return Extraction{}, newProviderError(p.Name(), KindUnavailable, fmt.Errorf("failed to set tessdata prefix: %w", err))
		}
	}
	if err := client.SetLanguage(p.languages...); err != nil {
		return Extraction{}, newProviderError(p.Name(), KindUnavailable, fmt.Errorf("failed to set language: %w", err))
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return Extraction{}, newProviderError(p.Name(), KindMalformed, fmt.Errorf("failed to set image: %w", err))
	}

	text, err := client.Text()
	if err != nil {
		return Extraction{}, newProviderError(p.Name(), KindUnavailable, fmt.Errorf("OCR failed: %w", err))
	}

	out := Extraction{Text: strings.TrimSpace(text)}
	words, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		p.logger.Warn("tesseract word boxes unavailable", "error", err)
		return out, nil
	}

	var sum float64
	for _, w := range words {
		r := w.Box
		out.Boxes = append(out.Boxes, entity.BoundingBox{
			Text: w.Word,
			Polygon: []entity.Point{
				{X: float64(r.Min.X), Y: float64(r.Min.Y)},
				{X: float64(r.Max.X), Y: float64(r.Min.Y)},
				{X: float64(r.Max.X), Y: float64(r.Max.Y)},
				{X: float64(r.Min.X), Y: float64(r.Max.Y)},
			},
			Confidence: w.Confidence / 100,
		})
		sum += w.Confidence
	}
	if len(words) > 0 {
		out.Confidence = entity.ProvidedConfidence(sum / float64(len(words)) / 100)
	}
	return out, nil
}
