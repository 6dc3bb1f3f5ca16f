package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

type RasterizerConfig struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
	DPI      int    // default 300
	MaxPages int    // 0 = no limit
	TempDir  string // parent of per-run workspaces; "" = os.TempDir()
}

// Rasterizer renders scanned PDFs into PNG pages with pdftoppm.
type Rasterizer struct {
	cfg    RasterizerConfig
	runner Runner
	logger *slog.Logger
}

func NewRasterizer(cfg RasterizerConfig, runner Runner, logger *slog.Logger) *Rasterizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if runner == nil {
		runner = ExecRunner{Logger: logger}
	}
	return &Rasterizer{cfg: cfg, runner: runner, logger: logger}
}

const pagePrefix = "page"

var errNoPages = errors.New("pdftoppm produced no images")

// Rasterize renders every page and hands them to fn in page order. The pages
// and their workspace live only for the duration of fn; the workspace is
// removed on every return path, panics included.
func (r *Rasterizer) Rasterize(ctx context.Context, data []byte, fn func([]entity.PageImage) error) error {
	ws, err := NewWorkspace(r.cfg.TempDir, r.logger)
	if err != nil {
		return common.NewRasterizationError(err)
	}
	defer ws.Release()

	pages, err := r.render(ctx, ws, data)
	if err != nil {
		return common.NewRasterizationError(err)
	}
	r.logger.Debug("pdf rasterized", "pages", len(pages), "dpi", r.cfg.DPI)
	return fn(pages)
}

func (r *Rasterizer) render(ctx context.Context, ws *Workspace, data []byte) ([]entity.PageImage, error) {
	in, err := ws.WriteFile("input.pdf", data)
	if err != nil {
		return nil, err
	}

	prefix := ws.Path(pagePrefix)
	// pdftoppm -r 300 -png <in.pdf> <ws/page>
	_, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm, "-r", strconv.Itoa(r.cfg.DPI), "-png", in, prefix)
	if err != nil {
		return nil, fmt.Errorf("pdftoppm: %w: %s", err, truncate(strings.TrimSpace(string(errb)), 512))
	}

	files, err := pageFiles(ws.Dir)
	if err != nil {
		return nil, err
	}
	if r.cfg.MaxPages > 0 && len(files) > r.cfg.MaxPages {
		r.logger.Warn("page cap reached, dropping trailing pages", "rendered", len(files), "max_pages", r.cfg.MaxPages)
		files = files[:r.cfg.MaxPages]
	}
	if len(files) == 0 {
		return nil, errNoPages
	}

	pages := make([]entity.PageImage, 0, len(files))
	for i, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read page %d: %w", i+1, err)
		}
		page := entity.PageImage{Index: i, Data: b, MimeType: constants.MimePNG}
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(b)); err == nil {
			page.Width, page.Height = cfg.Width, cfg.Height
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// pageFiles lists page-N.png files ordered by N. pdftoppm zero-pads N only
// up to the width of the page count, so a lexical sort is not enough.
func pageFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pagePrefix+"-*.png"))
	if err != nil {
		return nil, err
	}
	type numbered struct {
		path string
		n    int
	}
	list := make([]numbered, 0, len(matches))
	for _, m := range matches {
		base := strings.TrimSuffix(filepath.Base(m), ".png")
		n, err := strconv.Atoi(strings.TrimPrefix(base, pagePrefix+"-"))
		if err != nil {
			continue
		}
		list = append(list, numbered{path: m, n: n})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].n < list[j].n })

	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.path
	}
	return out, nil
}
