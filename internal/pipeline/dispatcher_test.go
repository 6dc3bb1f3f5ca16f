package pipeline

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
	"github.com/joseph-ayodele/scriptsense/internal/metrics"
	"github.com/joseph-ayodele/scriptsense/internal/ocr"
)

func pages(payloads ...string) []entity.PageImage {
	out := make([]entity.PageImage, len(payloads))
	for i, p := range payloads {
		out[i] = entity.PageImage{Index: i, Data: []byte(p), MimeType: "image/png"}
	}
	return out
}

func TestDispatchAllFallbackAndFailure(t *testing.T) {
	primary := &scriptedCapability{name: "primary", answers: map[string]ocr.Extraction{
		"p0": {Text: "zero", Confidence: entity.ProvidedConfidence(0.8)},
	}}
	fallback := &scriptedCapability{name: "fallback", answers: map[string]ocr.Extraction{
		"p1": {Text: "one"},
	}}
	chain := ocr.NewChain(primary, fallback, 0, nil)
	d := NewDispatcher(chain, 0, metrics.New(), nil)

	out := d.DispatchAll(context.Background(), pages("p0", "p1", "p2"))
	require.Len(t, out, 3)

	assert.Equal(t, entity.ProviderPrimary, out[0].Provider)
	assert.Equal(t, "zero", out[0].Text)
	assert.NoError(t, out[0].Err)

	assert.Equal(t, entity.ProviderFallback, out[1].Provider)
	assert.Equal(t, "one", out[1].Text)
	assert.NoError(t, out[1].Err)

	assert.Equal(t, 2, out[2].PageIndex)
	assert.Equal(t, entity.ProviderNone, out[2].Provider)
	assert.Empty(t, out[2].Text)
	assert.Equal(t, entity.ConfidenceFailed, out[2].Confidence.State)
	assert.ErrorIs(t, out[2].Err, common.ErrPageOCR)
	assert.ErrorIs(t, out[2].Err, common.ErrProviderFallbackExhausted)

	var pe *PageError
	require.ErrorAs(t, out[2].Err, &pe)
	assert.Equal(t, 2, pe.PageIndex)
}

// slowRecognizer tracks peak concurrency.
type slowRecognizer struct {
	active, peak atomic.Int32
}

func (s *slowRecognizer) Extract(context.Context, []byte, string) (ocr.Extraction, entity.ProviderRole, error) {
	n := s.active.Add(1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)
	s.active.Add(-1)
	return ocr.Extraction{Text: "x"}, entity.ProviderPrimary, nil
}

func (s *slowRecognizer) Names() (string, string) { return "slow", "" }

func TestDispatchAllRespectsLimit(t *testing.T) {
	rec := &slowRecognizer{}
	d := NewDispatcher(rec, 2, nil, nil)

	out := d.DispatchAll(context.Background(), pages("a", "b", "c", "d", "e", "f"))
	require.Len(t, out, 6)
	for i, o := range out {
		assert.Equal(t, i, o.PageIndex)
	}
	assert.LessOrEqual(t, rec.peak.Load(), int32(2))
}

type panickyRecognizer struct{}

func (panickyRecognizer) Extract(context.Context, []byte, string) (ocr.Extraction, entity.ProviderRole, error) {
	panic("nil map")
}

func (panickyRecognizer) Names() (string, string) { return "panicky", "" }

func TestDispatchAllRecoversPanics(t *testing.T) {
	out := NewDispatcher(panickyRecognizer{}, 0, nil, nil).DispatchAll(context.Background(), pages("a"))
	require.Len(t, out, 1)
	assert.ErrorIs(t, out[0].Err, common.ErrPageOCR)
}
