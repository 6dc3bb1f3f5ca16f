package pdf

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// fakePdftoppm writes one PNG per entry of widths using the output prefix
// passed as the last argument, mimicking pdftoppm's page-N.png naming.
type fakePdftoppm struct {
	widths  []int
	err     error
	lastDir string
	args    []string
}

func (f *fakePdftoppm) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	f.args = args
	prefix := args[len(args)-1]
	f.lastDir = filepath.Dir(prefix)
	if f.err != nil {
		return nil, []byte("Syntax Error: Couldn't read xref table"), f.err
	}
	for i, w := range f.widths {
		img := image.NewGray(image.Rect(0, 0, w, 10))
		img.Set(0, 0, color.White)
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, nil, err
		}
		name := prefix + "-" + strconv.Itoa(i+1) + ".png"
		if err := os.WriteFile(name, buf.Bytes(), 0o600); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func newTestRasterizer(t *testing.T, runner Runner, maxPages int) *Rasterizer {
	t.Helper()
	return NewRasterizer(RasterizerConfig{TempDir: t.TempDir(), MaxPages: maxPages, DPI: 150}, runner, nil)
}

func TestRasterizeOrdersPagesNumerically(t *testing.T) {
	widths := make([]int, 12)
	for i := range widths {
		widths[i] = 20 + i
	}
	runner := &fakePdftoppm{widths: widths}
	r := newTestRasterizer(t, runner, 0)

	var got []entity.PageImage
	err := r.Rasterize(context.Background(), []byte("%PDF-1.4"), func(pages []entity.PageImage) error {
		got = pages
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 12)
	for i, p := range got {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, 20+i, p.Width, "page %d out of order", i)
		assert.Equal(t, 10, p.Height)
		assert.Equal(t, "image/png", p.MimeType)
	}
	assert.Contains(t, runner.args, "150")
	assert.NoDirExists(t, runner.lastDir)
}

func TestRasterizeMaxPages(t *testing.T) {
	runner := &fakePdftoppm{widths: []int{5, 6, 7}}
	r := newTestRasterizer(t, runner, 2)

	var n int
	require.NoError(t, r.Rasterize(context.Background(), []byte("%PDF"), func(pages []entity.PageImage) error {
		n = len(pages)
		return nil
	}))
	assert.Equal(t, 2, n)
}

func TestRasterizeFailuresReleaseWorkspace(t *testing.T) {
	t.Run("converter error", func(t *testing.T) {
		runner := &fakePdftoppm{err: errors.New("exit status 1")}
		r := newTestRasterizer(t, runner, 0)
		called := false
		err := r.Rasterize(context.Background(), []byte("%PDF"), func([]entity.PageImage) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, common.ErrRasterization)
		assert.Contains(t, err.Error(), "xref")
		assert.False(t, called)
		assert.NoDirExists(t, runner.lastDir)
	})

	t.Run("zero pages", func(t *testing.T) {
		runner := &fakePdftoppm{}
		r := newTestRasterizer(t, runner, 0)
		err := r.Rasterize(context.Background(), []byte("%PDF"), func([]entity.PageImage) error { return nil })
		assert.ErrorIs(t, err, common.ErrRasterization)
		assert.NoDirExists(t, runner.lastDir)
	})

	t.Run("callback error", func(t *testing.T) {
		runner := &fakePdftoppm{widths: []int{4}}
		r := newTestRasterizer(t, runner, 0)
		boom := errors.New("dispatch failed")
		err := r.Rasterize(context.Background(), []byte("%PDF"), func([]entity.PageImage) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, common.ErrRasterization)
		assert.NoDirExists(t, runner.lastDir)
	})

	t.Run("callback panic", func(t *testing.T) {
		runner := &fakePdftoppm{widths: []int{4}}
		r := newTestRasterizer(t, runner, 0)
		assert.Panics(t, func() {
			_ = r.Rasterize(context.Background(), []byte("%PDF"), func([]entity.PageImage) error { panic("boom") })
		})
		assert.NoDirExists(t, runner.lastDir)
	})
}

func TestWorkspaceReleaseIsIdempotent(t *testing.T) {
	ws, err := NewWorkspace(t.TempDir(), nil)
	require.NoError(t, err)
	_, err = ws.WriteFile("a.bin", []byte{1})
	require.NoError(t, err)

	ws.Release()
	ws.Release()
	assert.NoDirExists(t, ws.Dir)
}
