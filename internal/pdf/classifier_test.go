package pdf

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

type fakeTextLayer struct {
	layer TextLayer
	err   error
	panic bool
}

func (f fakeTextLayer) ReadTextLayer(context.Context, []byte) (TextLayer, error) {
	if f.panic {
		panic("malformed xref")
	}
	return f.layer, f.err
}

func classify(t *testing.T, reader TextLayerReader) entity.Classification {
	t.Helper()
	c, err := NewClassifier(reader, nil).Classify(context.Background(), []byte("%PDF-1.7"))
	require.NoError(t, err)
	return c
}

func TestClassifyBoundary(t *testing.T) {
	fifty := "  " + strings.Repeat("a", 50) + "\n"
	got := classify(t, fakeTextLayer{layer: TextLayer{Text: fifty, Pages: 1}})
	assert.Equal(t, entity.ScannedPages, got.Kind)
	assert.Empty(t, got.Text)

	fiftyOne := strings.Repeat("b", 51)
	got = classify(t, fakeTextLayer{layer: TextLayer{Text: fiftyOne, Pages: 3}})
	assert.Equal(t, entity.Selectable, got.Kind)
	assert.Equal(t, fiftyOne, got.Text)
	assert.Equal(t, 3, got.PageCount)
}

func TestClassifyCountsCharactersNotBytes(t *testing.T) {
	// 26 Tamil runes are well over 50 bytes.
	tamil := strings.Repeat("த", 26)
	got := classify(t, fakeTextLayer{layer: TextLayer{Text: tamil, Pages: 1}})
	assert.Equal(t, entity.ScannedPages, got.Kind)
}

func TestClassifyFailsOpen(t *testing.T) {
	got := classify(t, fakeTextLayer{err: errors.New("not a pdf")})
	assert.Equal(t, entity.ScannedPages, got.Kind)

	got = classify(t, fakeTextLayer{panic: true})
	assert.Equal(t, entity.ScannedPages, got.Kind)

	got = classify(t, PlainTextReader{})
	assert.Equal(t, entity.ScannedPages, got.Kind)
}

func TestClassifyErrors(t *testing.T) {
	c := NewClassifier(fakeTextLayer{}, nil)
	_, err := c.Classify(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrClassification)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Classify(ctx, []byte("%PDF"))
	assert.ErrorIs(t, err, common.ErrClassification)
	assert.ErrorIs(t, err, context.Canceled)
}
