// Package ocr turns page images into text through pluggable recognition
// providers and a primary/fallback chain.
package ocr

import (
	"context"
	"time"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// Provider names accepted by OCR_PRIMARY / OCR_FALLBACK.
const (
	ProviderHFChat        = "hf-chat"
	ProviderHFImageToText = "hf-image-to-text"
	ProviderGemini        = "gemini"
	ProviderService       = "ocr-service"
	ProviderTesseract     = "tesseract"
)

// ProviderNone disables the fallback link.
const ProviderNone = "none"

// Extraction is a provider response parsed into one shape at the boundary.
type Extraction struct {
	Text       string
	Boxes      []entity.BoundingBox
	Confidence entity.Confidence
}

// Capability recognizes text in a single image.
type Capability interface {
	Name() string
	Extract(ctx context.Context, image []byte, mimeType string) (Extraction, error)
}

// ProviderConfig carries every provider's settings. Nothing is read from the
// environment after construction.
type ProviderConfig struct {
	HFToken            string
	HFBaseURL          string
	HFChatModel        string
	HFProvider         string
	HFImageToTextURL   string
	HFImageToTextModel string
	GeminiAPIKey       string
	GeminiModel        string
	GeminiBaseURL      string
	ServiceURL         string
	TesseractLang      string
	TessdataDir        string
	Timeout            time.Duration
}

// NewProviderConfig copies the OCR section of the process config.
func NewProviderConfig(c common.OCRConfig) ProviderConfig {
	return ProviderConfig{
		HFToken:            c.HFToken,
		HFBaseURL:          c.HFBaseURL,
		HFChatModel:        c.HFChatModel,
		HFProvider:         c.HFProvider,
		HFImageToTextURL:   c.HFImageToTextURL,
		HFImageToTextModel: c.HFImageToTextModel,
		GeminiAPIKey:       c.GeminiAPIKey,
		GeminiModel:        c.GeminiModel,
		GeminiBaseURL:      c.GeminiBaseURL,
		ServiceURL:         c.ServiceURL,
		TesseractLang:      c.TesseractLang,
		TessdataDir:        c.TessdataDir,
		Timeout:            c.ProviderTimeout,
	}
}

const extractPrompt = "Extract all visible text from this image. Preserve natural reading order and spacing. Return only plain text with no extra commentary."
