package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
	"github.com/joseph-ayodele/scriptsense/internal/metrics"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memoryStager struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
	err  error
}

func newMemoryStager() *memoryStager {
	return &memoryStager{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStager) Put(_ context.Context, key string, data []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data[key] = data
	m.ttls[key] = ttl
	return nil
}

func (m *memoryStager) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	d, ok := m.data[key]
	if !ok {
		return nil, common.NewNotFoundError("staged upload " + key)
	}
	return d, nil
}

func (m *memoryStager) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryStager) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, t *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, t)
	return &asynq.TaskInfo{ID: "task-1", Queue: "ocr"}, nil
}

type fakeProcessor struct {
	mu   sync.Mutex
	docs []entity.SubmittedDocument
	err  error
}

func (f *fakeProcessor) ProcessAndStore(ctx context.Context, doc entity.SubmittedDocument) (entity.StoredResult, error) {
	f.mu.Lock()
	f.docs = append(f.docs, doc)
	f.mu.Unlock()
	if f.err != nil {
		return entity.StoredResult{}, f.err
	}
	return entity.StoredResult{ID: uuid.New(), FileName: doc.FileName, DocumentOCRResult: entity.DocumentOCRResult{PageCount: 1, LanguageCode: "en"}}, nil
}

func (f *fakeProcessor) Process(_ context.Context, doc entity.SubmittedDocument) (*entity.DocumentOCRResult, error) {
	f.mu.Lock()
	f.docs = append(f.docs, doc)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &entity.DocumentOCRResult{ExtractedText: doc.FileName}, nil
}

func testConfig() common.Config {
	cfg := common.Config{}
	cfg.Queue.Name = "ocr"
	cfg.Queue.RunTimeout = time.Minute
	cfg.Redis.StagingTTL = 30 * time.Minute
	cfg.OCR.MaxUploadBytes = 1 << 20
	return cfg
}

func pngDoc() entity.SubmittedDocument {
	return entity.SubmittedDocument{
		Data:     []byte("\x89PNG fake"),
		MimeType: constants.MimePNG,
		Source:   constants.SourceCamera,
		FileName: "receipt.png",
	}
}

func TestSubmit_StagesAndEnqueues(t *testing.T) {
	stager := newMemoryStager()
	enq := &fakeEnqueuer{}
	submitted := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	c := NewClient(enq, stager, testConfig(), quietLogger(),
		WithClientClock(func() time.Time { return submitted }), WithMaxRetry(1))

	sub, err := c.Submit(context.Background(), pngDoc())
	require.NoError(t, err)
	assert.Equal(t, "task-1", sub.TaskID)

	key := StagingKey(sub.RequestID.String())
	assert.True(t, stager.has(key))
	assert.Equal(t, 30*time.Minute, stager.ttls[key])

	require.Len(t, enq.tasks, 1)
	assert.Equal(t, TaskProcessDocument, enq.tasks[0].Type())
	p, err := DecodeProcessPayload(enq.tasks[0])
	require.NoError(t, err)
	assert.Equal(t, sub.RequestID, p.RequestID)
	assert.Equal(t, key, p.StagingKey)
	assert.Equal(t, "receipt.png", p.FileName)
	assert.Equal(t, constants.SourceCamera, p.Source)
	assert.Equal(t, int64(len(pngDoc().Data)), p.Size)
	assert.True(t, submitted.Equal(p.SubmittedAt))
}

func TestSubmit_RejectsInvalidBeforeStaging(t *testing.T) {
	stager := newMemoryStager()
	enq := &fakeEnqueuer{}
	c := NewClient(enq, stager, testConfig(), quietLogger())

	doc := pngDoc()
	doc.MimeType = "text/plain"
	_, err := c.Submit(context.Background(), doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, stager.data)
	assert.Empty(t, enq.tasks)
}

func TestSubmit_EnqueueFailureUnstages(t *testing.T) {
	stager := newMemoryStager()
	enq := &fakeEnqueuer{err: errors.New("redis down")}
	c := NewClient(enq, stager, testConfig(), quietLogger())

	_, err := c.Submit(context.Background(), pngDoc())
	require.Error(t, err)
	assert.Empty(t, stager.data)
}

func stagedTask(t *testing.T, stager *memoryStager) (*asynq.Task, string) {
	t.Helper()
	stager.data[StagingKey("req-1")] = []byte("bytes")
	task, err := NewProcessTask(ProcessPayload{
		FileName:   "a.png",
		MimeType:   constants.MimePNG,
		Source:     constants.SourceImage,
		Size:       5,
		StagingKey: StagingKey("req-1"),
	})
	require.NoError(t, err)
	return task, StagingKey("req-1")
}

func TestHandler_ProcessesAndUnstages(t *testing.T) {
	stager := newMemoryStager()
	proc := &fakeProcessor{}
	h := NewHandler(stager, proc, metrics.New(), time.Minute, quietLogger())
	task, key := stagedTask(t, stager)

	require.NoError(t, h.ProcessTask(context.Background(), task))
	require.Len(t, proc.docs, 1)
	assert.Equal(t, []byte("bytes"), proc.docs[0].Data)
	assert.Equal(t, "a.png", proc.docs[0].FileName)
	assert.False(t, stager.has(key))
}

func TestHandler_FatalFailureSkipsRetry(t *testing.T) {
	stager := newMemoryStager()
	proc := &fakeProcessor{err: common.NewRasterizationError(errors.New("no pages"))}
	h := NewHandler(stager, proc, nil, time.Minute, quietLogger())
	task, key := stagedTask(t, stager)

	err := h.ProcessTask(context.Background(), task)
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.False(t, stager.has(key))
}

func TestHandler_StorageFailureRetriesWithStagedBytes(t *testing.T) {
	stager := newMemoryStager()
	proc := &fakeProcessor{err: common.NewStorageError(errors.New("db down"))}
	h := NewHandler(stager, proc, nil, time.Minute, quietLogger())
	task, key := stagedTask(t, stager)

	err := h.ProcessTask(context.Background(), task)
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
	assert.True(t, stager.has(key))
}

func TestHandler_PageScopedFailureRetries(t *testing.T) {
	stager := newMemoryStager()
	proc := &fakeProcessor{err: common.NewAppError(common.CodePageOCR, "page 1", errors.New("engine busy"))}
	h := NewHandler(stager, proc, nil, time.Minute, quietLogger())
	task, key := stagedTask(t, stager)

	err := h.ProcessTask(context.Background(), task)
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
	assert.True(t, stager.has(key))
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(common.NewStorageError(errors.New("db down"))))
	assert.True(t, retryable(common.NewAppError(common.CodeLanguageIdentification, "lid", nil)))
	assert.False(t, retryable(common.NewClassificationError(errors.New("bad pdf"))))
	assert.False(t, retryable(common.NewProcessingTimeoutError("dispatching", nil)))
}

func TestHandler_MissingStagingSkipsRetry(t *testing.T) {
	stager := newMemoryStager()
	proc := &fakeProcessor{}
	h := NewHandler(stager, proc, nil, time.Minute, quietLogger())
	task, key := stagedTask(t, stager)
	delete(stager.data, key)

	err := h.ProcessTask(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, proc.docs)
}

func TestHandler_MalformedPayloadSkipsRetry(t *testing.T) {
	h := NewHandler(newMemoryStager(), &fakeProcessor{}, nil, time.Minute, quietLogger())
	err := h.ProcessTask(context.Background(), asynq.NewTask(TaskProcessDocument, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestPool_RunsEveryJob(t *testing.T) {
	proc := &fakeProcessor{}
	var (
		mu   sync.Mutex
		seen []string
	)
	pool := NewPool(proc, func(r JobResult) {
		mu.Lock()
		defer mu.Unlock()
		assert.NoError(t, r.Err)
		if r.Result != nil {
			seen = append(seen, r.Result.ExtractedText)
		}
	}, quietLogger(), WithWorkers(3), WithQueueSize(1))

	names := []string{"a.png", "b.png", "c.png", "d.png", "e.png"}
	for _, n := range names {
		doc := pngDoc()
		doc.FileName = n
		assert.True(t, pool.Enqueue(Job{Doc: doc}))
	}
	pool.Shutdown(context.Background())

	sort.Strings(seen)
	assert.Equal(t, names, seen)
	assert.False(t, pool.Enqueue(Job{Doc: pngDoc()}))
}

func TestPool_WithStoreReportsIDPerDocument(t *testing.T) {
	proc := &fakeProcessor{}
	var (
		mu  sync.Mutex
		ids []string
	)
	pool := NewPool(proc, func(r JobResult) {
		mu.Lock()
		defer mu.Unlock()
		assert.NoError(t, r.Err)
		assert.NotNil(t, r.Result)
		ids = append(ids, r.StoredID)
	}, quietLogger(), WithWorkers(2), WithStore(proc))

	// Same base name from two directories.
	for i := 0; i < 2; i++ {
		assert.True(t, pool.Enqueue(Job{Doc: pngDoc()}))
	}
	pool.Shutdown(context.Background())

	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestPool_WithStoreFailureHasNoID(t *testing.T) {
	proc := &fakeProcessor{err: common.NewStorageError(errors.New("db down"))}
	var got JobResult
	pool := NewPool(proc, func(r JobResult) { got = r }, quietLogger(), WithWorkers(1), WithStore(proc))
	assert.True(t, pool.Enqueue(Job{Doc: pngDoc()}))
	pool.Shutdown(context.Background())

	assert.ErrorIs(t, got.Err, common.ErrStorage)
	assert.Nil(t, got.Result)
	assert.Empty(t, got.StoredID)
}
