package common

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "hf-chat", cfg.OCR.Primary)
	assert.Equal(t, "hf-image-to-text", cfg.OCR.Fallback)
	assert.Equal(t, 300, cfg.PDF.DPI)
	assert.Equal(t, 30*time.Second, cfg.OCR.ProviderTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OCR_PRIMARY", "ocr-service")
	t.Setenv("OCR_FALLBACK", "tesseract")
	t.Setenv("PDF_DPI", "150")
	t.Setenv("OCR_PROVIDER_TIMEOUT", "5s")
	t.Setenv("WORKER_CONCURRENCY", "not-a-number")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := LoadConfig()
	assert.Equal(t, "ocr-service", cfg.OCR.Primary)
	assert.Equal(t, "tesseract", cfg.OCR.Fallback)
	assert.Equal(t, 150, cfg.PDF.DPI)
	assert.Equal(t, 5*time.Second, cfg.OCR.ProviderTimeout)
	assert.Equal(t, 4, cfg.Queue.Concurrency)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestConfigValidate(t *testing.T) {
	cfg := LoadConfig()
	cfg.PDF.DPI = 10
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDF_DPI")

	cfg = LoadConfig()
	cfg.OCR.Fallback = cfg.OCR.Primary
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Database.DSN = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidInput)
}
