package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// DocumentRunner runs one document; *pipeline.Processor satisfies it.
type DocumentRunner interface {
	Process(ctx context.Context, doc entity.SubmittedDocument) (*entity.DocumentOCRResult, error)
}

// Job is one local document for the in-process pool.
type Job struct {
	Doc         entity.SubmittedDocument
	SubmittedAt time.Time
}

// JobResult is delivered to the pool's result callback. StoredID is set
// when the pool persists results and the run succeeded.
type JobResult struct {
	Job      Job
	Result   *entity.DocumentOCRResult
	StoredID string
	Err      error
}

// Pool runs documents on a fixed set of in-process workers without Redis.
// The batch CLI uses it for many local files.
type Pool struct {
	runner  DocumentRunner
	store   DocumentProcessor
	onDone  func(JobResult)
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type PoolOption func(*Pool)

func WithWorkers(n int) PoolOption {
	return func(q *Pool) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) PoolOption {
	return func(q *Pool) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

// WithStore makes workers persist each result through p instead of
// calling the runner, and report the stored id.
func WithStore(p DocumentProcessor) PoolOption {
	return func(q *Pool) {
		q.store = p
	}
}

func WithProcessTimeout(d time.Duration) PoolOption {
	return func(q *Pool) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// NewPool starts the workers. onDone is called from worker goroutines.
func NewPool(runner DocumentRunner, onDone func(JobResult), logger *slog.Logger, opts ...PoolOption) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	if onDone == nil {
		onDone = func(JobResult) {}
	}
	q := &Pool{
		runner:  runner,
		onDone:  onDone,
		logger:  logger,
		workers: 4,
		timeout: 5 * time.Minute,
		ch:      make(chan Job, 64),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Pool) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Debug("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := common.WithTimeout(context.Background(), q.timeout)
					out := q.run(ctx, job)
					cancel()

					if out.Err != nil {
						q.logger.Error("processing failed", "worker_id", workerID, "file_name", job.Doc.FileName, "error", out.Err)
					} else {
						q.logger.Info("processed file successfully", "worker_id", workerID, "file_name", job.Doc.FileName, "stored_id", out.StoredID)
					}
					q.onDone(out)
				}

				q.logger.Debug("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *Pool) run(ctx context.Context, job Job) JobResult {
	if q.store == nil {
		res, err := q.runner.Process(ctx, job.Doc)
		return JobResult{Job: job, Result: res, Err: err}
	}
	stored, err := q.store.ProcessAndStore(ctx, job.Doc)
	if err != nil {
		return JobResult{Job: job, Err: err}
	}
	return JobResult{Job: job, Result: &stored.DocumentOCRResult, StoredID: stored.ID.String()}
}

// Enqueue blocks while the buffer is full. It returns false once Shutdown began.
func (q *Pool) Enqueue(job Job) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: pool is shutting down", "file_name", job.Doc.FileName)
		return false
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	select {
	case q.ch <- job:
	default:
		q.logger.Warn("pool full, applying backpressure", "file_name", job.Doc.FileName)
		q.ch <- job
	}
	return true
}

// Shutdown stops intake and waits for queued jobs to drain or ctx to end.
func (q *Pool) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Debug("pool drained")
	}
}
