//go:build !cgo || !ocr

package ocr

import (
	"context"
	"errors"
	"log/slog"
)

// TesseractProvider is a stub for builds without cgo or the ocr tag.
type TesseractProvider struct{}

func NewTesseractProvider(ProviderConfig, *slog.Logger) (*TesseractProvider, error) {
	return &TesseractProvider{}, nil
}

func (p *TesseractProvider) Name() string { return ProviderTesseract }

func (p *TesseractProvider) Extract(context.Context, []byte, string) (Extraction, error) {
	return Extraction{}, newProviderError(p.Name(), KindUnavailable, errors.New("built without Tesseract support"))
}
