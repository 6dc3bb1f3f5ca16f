package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
	"github.com/joseph-ayodele/scriptsense/internal/metrics"
)

// DocumentProcessor is satisfied by *pipeline.Processor.
type DocumentProcessor interface {
	ProcessAndStore(ctx context.Context, doc entity.SubmittedDocument) (entity.StoredResult, error)
}

// Handler executes process tasks. Storage and page-scoped failures are
// retried; failures fatal to the run are a property of the document.
type Handler struct {
	stager     Stager
	processor  DocumentProcessor
	metrics    *metrics.Metrics
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewHandler(stager Stager, proc DocumentProcessor, m *metrics.Metrics, runTimeout time.Duration, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{stager: stager, processor: proc, metrics: m, runTimeout: runTimeout, logger: logger}
}

var _ asynq.Handler = (*Handler)(nil)

// ProcessTask implements asynq.Handler.
func (h *Handler) ProcessTask(ctx context.Context, t *asynq.Task) (err error) {
	defer func() { h.metrics.RecordTask(t.Type(), err) }()

	p, err := DecodeProcessPayload(t)
	if err != nil {
		h.logger.Error("queue.task.malformed", "task", t.Type(), "error", err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	log := h.logger.With("request_id", p.RequestID, "file_name", p.FileName)

	data, err := h.stager.Get(ctx, p.StagingKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			log.Error("queue.task.staging_missing", "key", p.StagingKey)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		log.Warn("queue.task.staging_unavailable", "error", err)
		return err
	}

	runCtx, cancel := common.WithTimeout(common.WithRequestID(ctx, p.RequestID.String()), h.runTimeout)
	defer cancel()

	stored, err := h.processor.ProcessAndStore(runCtx, entity.SubmittedDocument{
		Data:     data,
		MimeType: p.MimeType,
		Source:   p.Source,
		FileName: p.FileName,
		Size:     p.Size,
	})
	if err != nil {
		if retryable(err) {
			log.Warn("queue.task.retry", "error", err)
			return err
		}
		h.unstage(ctx, log, p.StagingKey)
		log.Error("queue.task.failed", "error", err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	h.unstage(ctx, log, p.StagingKey)
	log.Info("queue.task.ok", "result_id", stored.ID, "pages", stored.PageCount, "language", stored.LanguageCode)
	return nil
}

// retryable keeps storage outages and page-scoped failures on the queue
// with their staged bytes; anything fatal to the run is dropped.
func retryable(err error) bool {
	return errors.Is(err, common.ErrStorage) || !common.IsFatal(err)
}

func (h *Handler) unstage(ctx context.Context, log *slog.Logger, key string) {
	if err := h.stager.Delete(ctx, key); err != nil {
		log.Warn("queue.unstage.failed", "key", key, "error", err)
	}
}
