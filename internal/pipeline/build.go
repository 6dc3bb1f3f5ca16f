package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/language"
	"github.com/joseph-ayodele/scriptsense/internal/metrics"
	"github.com/joseph-ayodele/scriptsense/internal/ocr"
	"github.com/joseph-ayodele/scriptsense/internal/pdf"
)

// Build wires the production collaborators from cfg: ledongthuc/pdf
// classification, pdftoppm rasterization, the configured provider chain
// and whatlanggo detection.
func Build(cfg *common.Config, m *metrics.Metrics, logger *slog.Logger, opts ...Option) (*Processor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	chain, err := ocr.NewChainFromNames(
		cfg.OCR.Primary,
		cfg.OCR.Fallback,
		ocr.NewProviderConfig(cfg.OCR),
		cfg.OCR.ProviderTimeout,
		logger,
	)
	if err != nil {
		return nil, common.NewAppError(common.CodeConfig, fmt.Sprintf("build OCR chain: %v", err), common.ErrInvalidInput)
	}

	classifier := pdf.NewClassifier(pdf.PlainTextReader{}, logger)
	rasterizer := pdf.NewRasterizer(pdf.RasterizerConfig{
		Pdftoppm: cfg.PDF.Pdftoppm,
		DPI:      cfg.PDF.DPI,
		MaxPages: cfg.PDF.MaxPages,
		TempDir:  cfg.PDF.TempDir,
	}, pdf.ExecRunner{Logger: logger}, logger)
	dispatcher := NewDispatcher(chain, cfg.OCR.MaxConcurrentPages, m, logger)
	identifier := language.NewIdentifier(language.WhatlangDetector{}, logger)

	primary, fallback := chain.Names()
	logger.Info("pipeline ready",
		"primary", primary,
		"fallback", fallback,
		"dpi", cfg.PDF.DPI,
		"max_concurrent_pages", cfg.OCR.MaxConcurrentPages,
	)
	return NewProcessor(classifier, rasterizer, dispatcher, identifier, logger, append([]Option{WithMetrics(m)}, opts...)...), nil
}
