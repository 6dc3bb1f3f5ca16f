package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/joseph-ayodele/scriptsense/internal/entity"
	"github.com/joseph-ayodele/scriptsense/internal/metrics"
	"github.com/joseph-ayodele/scriptsense/internal/ocr"
)

// PageRecognizer runs the provider chain for one page. *ocr.Chain satisfies it.
type PageRecognizer interface {
	Extract(ctx context.Context, image []byte, mimeType string) (ocr.Extraction, entity.ProviderRole, error)
	Names() (primary, fallback string)
}

// Dispatcher fans pages out to the recognizer and collects one outcome per page.
type Dispatcher struct {
	recognizer PageRecognizer
	limit      int // 0 = one goroutine per page
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewDispatcher(recognizer PageRecognizer, limit int, m *metrics.Metrics, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{recognizer: recognizer, limit: limit, metrics: m, logger: logger}
}

// DispatchAll returns outcomes indexed like pages. A failing page never
// cancels the others; its outcome carries the error.
func (d *Dispatcher) DispatchAll(ctx context.Context, pages []entity.PageImage) []entity.PageOCROutcome {
	outcomes := make([]entity.PageOCROutcome, len(pages))

	var g errgroup.Group
	if d.limit > 0 {
		g.SetLimit(d.limit)
	}
	for i, page := range pages {
		g.Go(func() error {
			outcomes[i] = d.dispatchOne(ctx, page)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (d *Dispatcher) dispatchOne(ctx context.Context, page entity.PageImage) (out entity.PageOCROutcome) {
	out.PageIndex = page.Index
	defer func() {
		if r := recover(); r != nil {
			out = failedOutcome(page.Index, fmt.Errorf("recognizer panic: %v", r))
		}
		d.metrics.RecordPage(string(out.Provider), out.Err)
		if out.Provider == entity.ProviderFallback {
			d.metrics.RecordFallback(d.recognizer.Names())
		}
	}()

	ext, role, err := d.recognizer.Extract(ctx, page.Data, page.MimeType)
	if err != nil {
		d.logger.Warn("pipeline.page.failed", "page", page.Index, "error", err)
		return failedOutcome(page.Index, err)
	}
	return entity.PageOCROutcome{
		PageIndex:  page.Index,
		Text:       ext.Text,
		Boxes:      ext.Boxes,
		Confidence: ext.Confidence,
		Provider:   role,
	}
}

func failedOutcome(index int, err error) entity.PageOCROutcome {
	return entity.PageOCROutcome{
		PageIndex:  index,
		Confidence: entity.Confidence{State: entity.ConfidenceFailed},
		Provider:   entity.ProviderNone,
		Err:        &PageError{PageIndex: index, Err: err},
	}
}
