package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// Enqueuer is the part of *asynq.Client the submitter needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Submission identifies an accepted upload.
type Submission struct {
	RequestID uuid.UUID
	TaskID    string
	Queue     string
}

// Client validates uploads, stages their bytes and enqueues a process task.
type Client struct {
	enqueuer   Enqueuer
	stager     Stager
	queue      string
	stagingTTL time.Duration
	maxBytes   int64
	maxRetry   int
	runTimeout time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

type ClientOption func(*Client)

func WithMaxRetry(n int) ClientOption {
	return func(c *Client) {
		if n >= 0 {
			c.maxRetry = n
		}
	}
}

func WithClientClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

func NewClient(enq Enqueuer, stager Stager, cfg common.Config, logger *slog.Logger, opts ...ClientOption) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		enqueuer:   enq,
		stager:     stager,
		queue:      cfg.Queue.Name,
		stagingTTL: cfg.Redis.StagingTTL,
		maxBytes:   cfg.OCR.MaxUploadBytes,
		maxRetry:   3,
		runTimeout: cfg.Queue.RunTimeout,
		now:        time.Now,
		logger:     logger,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Submit validates doc, stages its bytes and enqueues it. Invalid input
// returns a VALIDATION_ERROR before anything touches Redis.
func (c *Client) Submit(ctx context.Context, doc entity.SubmittedDocument) (Submission, error) {
	if err := common.ValidateDocument(doc, c.maxBytes); err != nil {
		c.logger.Warn("queue.submit.rejected", "file_name", doc.FileName, "error", err)
		return Submission{}, err
	}

	id := uuid.New()
	key := StagingKey(id.String())
	if err := c.stager.Put(ctx, key, doc.Data, c.stagingTTL); err != nil {
		c.logger.Error("queue.stage.failed", "request_id", id, "error", err)
		return Submission{}, err
	}

	size := doc.Size
	if size == 0 {
		size = int64(len(doc.Data))
	}
	opts := []asynq.Option{asynq.Queue(c.queue), asynq.MaxRetry(c.maxRetry), asynq.TaskID(id.String())}
	if c.runTimeout > 0 {
		opts = append(opts, asynq.Timeout(c.runTimeout))
	}
	if c.stagingTTL > 0 {
		opts = append(opts, asynq.Deadline(c.now().Add(c.stagingTTL)))
	}
	task, err := NewProcessTask(ProcessPayload{
		RequestID:   id,
		FileName:    doc.FileName,
		MimeType:    doc.MimeType,
		Source:      doc.Source,
		Size:        size,
		StagingKey:  key,
		SubmittedAt: c.now().UTC(),
	}, opts...)
	if err != nil {
		_ = c.stager.Delete(ctx, key)
		return Submission{}, err
	}

	info, err := c.enqueuer.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error("queue.enqueue.failed", "request_id", id, "error", err)
		if derr := c.stager.Delete(ctx, key); derr != nil {
			c.logger.Warn("queue.unstage.failed", "request_id", id, "error", derr)
		}
		return Submission{}, fmt.Errorf("enqueue %s: %w", TaskProcessDocument, err)
	}

	c.logger.Info("queue.submit.ok", "request_id", id, "task_id", info.ID, "queue", info.Queue, "file_name", doc.FileName, "bytes", size)
	return Submission{RequestID: id, TaskID: info.ID, Queue: info.Queue}, nil
}
