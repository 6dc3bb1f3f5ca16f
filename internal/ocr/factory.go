package ocr

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// IsKnownProvider reports whether name selects a provider.
func IsKnownProvider(name string) bool {
	switch name {
	case ProviderHFChat, ProviderHFImageToText, ProviderGemini, ProviderService, ProviderTesseract:
		return true
	}
	return false
}

// NewCapability builds the named provider.
func NewCapability(name string, cfg ProviderConfig, logger *slog.Logger) (Capability, error) {
	switch name {
	case ProviderHFChat:
		return NewHFChatProvider(cfg, logger)
	case ProviderHFImageToText:
		return NewHFImageToTextProvider(cfg, logger)
	case ProviderGemini:
		return NewGeminiProvider(cfg, logger)
	case ProviderService:
		return NewServiceProvider(cfg, logger)
	case ProviderTesseract:
		return NewTesseractProvider(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown OCR provider %q", name)
	}
}

// NewChainFromNames builds a chain; fallback "" or "none" disables the
// second link.
func NewChainFromNames(primary, fallback string, cfg ProviderConfig, attemptTimeout time.Duration, logger *slog.Logger) (*Chain, error) {
	p, err := NewCapability(strings.TrimSpace(primary), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}
	var f Capability
	if fb := strings.TrimSpace(fallback); fb != "" && fb != ProviderNone {
		if f, err = NewCapability(fb, cfg, logger); err != nil {
			return nil, fmt.Errorf("fallback: %w", err)
		}
	}
	return NewChain(p, f, attemptTimeout, logger), nil
}
