package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/joseph-ayodele/scriptsense/internal/entity"
	"github.com/joseph-ayodele/scriptsense/internal/ocr"
)

// scriptedCapability answers by image payload; unknown payloads fail.
type scriptedCapability struct {
	name    string
	answers map[string]ocr.Extraction
	calls   atomic.Int32
}

func (s *scriptedCapability) Name() string { return s.name }

func (s *scriptedCapability) Extract(ctx context.Context, image []byte, _ string) (ocr.Extraction, error) {
	s.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return ocr.Extraction{}, err
	}
	if out, ok := s.answers[string(image)]; ok {
		return out, nil
	}
	return ocr.Extraction{}, errors.New(s.name + ": upstream 503")
}

type fakeClassifier struct {
	result entity.Classification
	err    error
	calls  int
}

func (f *fakeClassifier) Classify(context.Context, []byte) (entity.Classification, error) {
	f.calls++
	return f.result, f.err
}

// fakeRasterizer lends fixed pages and records whether they were released.
type fakeRasterizer struct {
	pages    []entity.PageImage
	err      error
	calls    int
	released bool
}

func (f *fakeRasterizer) Rasterize(_ context.Context, _ []byte, fn func([]entity.PageImage) error) error {
	f.calls++
	defer func() { f.released = true }()
	if f.err != nil {
		return f.err
	}
	return fn(f.pages)
}

type memorySink struct {
	mu    sync.Mutex
	saved []entity.DocumentOCRResult
	metas []entity.DocumentMeta
	err   error
}

func (m *memorySink) Save(_ context.Context, r entity.DocumentOCRResult, meta entity.DocumentMeta) (entity.StoredResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return entity.StoredResult{}, m.err
	}
	m.saved = append(m.saved, r)
	m.metas = append(m.metas, meta)
	return entity.StoredResult{FileName: meta.FileName, FileSize: meta.FileSize, DocumentOCRResult: r}, nil
}

type fixedDetector struct{ code string }

func (f fixedDetector) Detect(string) (string, error) { return f.code, nil }
