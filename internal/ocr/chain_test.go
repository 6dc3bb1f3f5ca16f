package ocr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

type fakeCapability struct {
	name  string
	out   Extraction
	err   error
	calls int
	wait  bool
}

func (f *fakeCapability) Name() string { return f.name }

func (f *fakeCapability) Extract(ctx context.Context, _ []byte, _ string) (Extraction, error) {
	f.calls++
	if f.wait {
		<-ctx.Done()
		return Extraction{}, transportError(f.name, ctx.Err())
	}
	return f.out, f.err
}

func TestChainPrimarySucceeds(t *testing.T) {
	primary := &fakeCapability{name: "p", out: Extraction{Text: "hello"}}
	fallback := &fakeCapability{name: "f", out: Extraction{Text: "unused"}}

	out, role, err := NewChain(primary, fallback, 0, nil).Extract(context.Background(), []byte{1}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "hello", out.Text)
	assert.Equal(t, entity.ProviderPrimary, role)
	assert.Equal(t, 0, fallback.calls)
}

func TestChainFallbackOnError(t *testing.T) {
	primary := &fakeCapability{name: "p", err: errors.New("503")}
	fallback := &fakeCapability{name: "f", out: Extraction{Text: "from fallback"}}

	out, role, err := NewChain(primary, fallback, 0, nil).Extract(context.Background(), []byte{1}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "from fallback", out.Text)
	assert.Equal(t, entity.ProviderFallback, role)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestChainFallbackOnBlankText(t *testing.T) {
	primary := &fakeCapability{name: "p", out: Extraction{Text: "  \n"}}
	fallback := &fakeCapability{name: "f", out: Extraction{Text: ""}}

	out, role, err := NewChain(primary, fallback, 0, nil).Extract(context.Background(), []byte{1}, "image/png")
	require.NoError(t, err, "a blank fallback result is accepted as-is")
	assert.Empty(t, out.Text)
	assert.Equal(t, entity.ProviderFallback, role)
}

func TestChainBothFail(t *testing.T) {
	pErr := errors.New("chat down")
	fErr := errors.New("trocr down")
	primary := &fakeCapability{name: "p", err: pErr}
	fallback := &fakeCapability{name: "f", err: fErr}

	_, role, err := NewChain(primary, fallback, 0, nil).Extract(context.Background(), []byte{1}, "image/png")
	require.Error(t, err)
	assert.Equal(t, entity.ProviderNone, role)
	assert.ErrorIs(t, err, pErr)
	assert.ErrorIs(t, err, fErr)
	assert.ErrorIs(t, err, common.ErrProviderFallbackExhausted)

	var exhausted *FallbackExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Contains(t, err.Error(), "chat down")
	assert.Contains(t, err.Error(), "trocr down")
}

func TestChainWithoutFallback(t *testing.T) {
	primary := &fakeCapability{name: "p", out: Extraction{}}
	_, role, err := NewChain(primary, nil, 0, nil).Extract(context.Background(), []byte{1}, "image/png")

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindEmpty, pe.Kind)
	assert.Equal(t, entity.ProviderNone, role)
	assert.NotErrorIs(t, err, common.ErrProviderFallbackExhausted)
}

func TestChainAttemptTimeout(t *testing.T) {
	primary := &fakeCapability{name: "p", wait: true}
	fallback := &fakeCapability{name: "f", out: Extraction{Text: "ok"}}

	out, role, err := NewChain(primary, fallback, 20*time.Millisecond, nil).Extract(context.Background(), []byte{1}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Text)
	assert.Equal(t, entity.ProviderFallback, role)
}

func TestNewChainFromNames(t *testing.T) {
	cfg := ProviderConfig{ServiceURL: "http://localhost:8000"}

	c, err := NewChainFromNames(ProviderService, ProviderNone, cfg, 0, nil)
	require.NoError(t, err)
	p, f := c.Names()
	assert.Equal(t, ProviderService, p)
	assert.Empty(t, f)

	_, err = NewChainFromNames("bogus", "", cfg, 0, nil)
	assert.Error(t, err)

	_, err = NewChainFromNames(ProviderHFChat, "", cfg, 0, nil)
	assert.ErrorContains(t, err, "HF_TOKEN")

	assert.True(t, IsKnownProvider(ProviderTesseract))
	assert.False(t, IsKnownProvider(ProviderNone))
}
