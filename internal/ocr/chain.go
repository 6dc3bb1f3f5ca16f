package ocr

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// Chain tries Primary once and, when it errors or returns blank text,
// Fallback once. There are no retries and no caching.
type Chain struct {
	primary        Capability
	fallback       Capability // may be nil
	attemptTimeout time.Duration
	logger         *slog.Logger
}

func NewChain(primary, fallback Capability, attemptTimeout time.Duration, logger *slog.Logger) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{primary: primary, fallback: fallback, attemptTimeout: attemptTimeout, logger: logger}
}

// Extract returns the extraction and which link produced it.
func (c *Chain) Extract(ctx context.Context, image []byte, mimeType string) (Extraction, entity.ProviderRole, error) {
	out, primaryErr := c.attempt(ctx, c.primary, image, mimeType)
	if primaryErr == nil && strings.TrimSpace(out.Text) == "" {
		primaryErr = newProviderError(c.primary.Name(), KindEmpty, errBlankText)
	}
	if primaryErr == nil {
		return out, entity.ProviderPrimary, nil
	}
	if c.fallback == nil {
		return Extraction{}, entity.ProviderNone, primaryErr
	}

	c.logger.Warn("ocr.primary.failed, trying fallback",
		"primary", c.primary.Name(),
		"fallback", c.fallback.Name(),
		"error", primaryErr,
	)
	out, fallbackErr := c.attempt(ctx, c.fallback, image, mimeType)
	if fallbackErr != nil {
		return Extraction{}, entity.ProviderNone, &FallbackExhaustedError{Primary: primaryErr, Fallback: fallbackErr}
	}
	return out, entity.ProviderFallback, nil
}

// Names returns the configured provider names, fallback "" when absent.
func (c *Chain) Names() (primary, fallback string) {
	primary = c.primary.Name()
	if c.fallback != nil {
		fallback = c.fallback.Name()
	}
	return primary, fallback
}

func (c *Chain) attempt(ctx context.Context, capability Capability, image []byte, mimeType string) (Extraction, error) {
	ctx, cancel := common.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	start := time.Now()
	out, err := capability.Extract(ctx, image, mimeType)
	c.logger.Debug("ocr attempt",
		"provider", capability.Name(),
		"duration_ms", time.Since(start).Milliseconds(),
		"ok", err == nil,
	)
	return out, err
}
