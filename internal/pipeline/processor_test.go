package pipeline

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
	"github.com/joseph-ayodele/scriptsense/internal/language"
	"github.com/joseph-ayodele/scriptsense/internal/metrics"
	"github.com/joseph-ayodele/scriptsense/internal/ocr"
)

type harness struct {
	classifier *fakeClassifier
	rasterizer *fakeRasterizer
	primary    *scriptedCapability
	fallback   *scriptedCapability
	sink       *memorySink
	logs       *bytes.Buffer
	proc       *Processor
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		classifier: &fakeClassifier{},
		rasterizer: &fakeRasterizer{},
		primary:    &scriptedCapability{name: "primary", answers: map[string]ocr.Extraction{}},
		fallback:   &scriptedCapability{name: "fallback", answers: map[string]ocr.Extraction{}},
		sink:       &memorySink{},
		logs:       &bytes.Buffer{},
	}
	chain := ocr.NewChain(h.primary, h.fallback, 0, nil)
	tick := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		tick = tick.Add(25 * time.Millisecond)
		return tick
	}
	h.proc = NewProcessor(
		h.classifier,
		h.rasterizer,
		NewDispatcher(chain, 0, nil, nil),
		language.NewIdentifier(fixedDetector{code: "eng"}, nil),
		slog.New(slog.NewJSONHandler(h.logs, nil)),
		WithSink(h.sink),
		WithMetrics(metrics.New()),
		WithClock(clock),
	)
	return h
}

// logEvent returns the first JSON log record with the given message.
func (h *harness) logEvent(t *testing.T, msg string) map[string]any {
	t.Helper()
	sc := bufio.NewScanner(bytes.NewReader(h.logs.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		if rec["msg"] == msg {
			return rec
		}
	}
	t.Fatalf("no %q log record", msg)
	return nil
}

func pdfDoc() entity.SubmittedDocument {
	return entity.SubmittedDocument{
		Data:     []byte("%PDF-1.7 ..."),
		MimeType: constants.MimePDF,
		Source:   constants.SourcePDF,
		FileName: "scan.pdf",
	}
}

func TestScannedPDFWithOneFailedPage(t *testing.T) {
	h := newHarness(t)
	h.classifier.result = entity.Classification{Kind: entity.ScannedPages}
	h.rasterizer.pages = pages("page-1", "page-2")
	boxes := []entity.BoundingBox{{Text: "Invoice", Polygon: []entity.Point{{X: 1, Y: 1}}, Confidence: 0.9}}
	h.primary.answers["page-1"] = ocr.Extraction{Text: "Invoice 42", Boxes: boxes, Confidence: entity.ProvidedConfidence(0.9)}

	res, err := h.proc.Process(context.Background(), pdfDoc())
	require.NoError(t, err)

	assert.Equal(t, 2, res.PageCount)
	assert.Equal(t, boxes, res.BoundingBoxes)
	assert.InDelta(t, 0.9, res.ConfidenceScore, 1e-9)
	assert.Equal(t, "Invoice 42\n\n--- Page Break ---\n\n", res.ExtractedText)
	require.NotNil(t, res.PDFType)
	assert.Equal(t, constants.PDFScanned, *res.PDFType)
	assert.Equal(t, constants.SourcePDF, res.SourceType)
	assert.Equal(t, "English", res.LanguageName)
	assert.Equal(t, "en", res.LanguageCode)
	assert.Positive(t, res.ProcessingTimeMs)
	assert.True(t, h.rasterizer.released)
	assert.Equal(t, int32(1), h.fallback.calls.Load(), "only the failed page falls back")
}

func TestSelectablePDFSkipsRasterization(t *testing.T) {
	h := newHarness(t)
	text := "Hello World, this is a long test document with enough characters."
	h.classifier.result = entity.Classification{Kind: entity.Selectable, Text: text, PageCount: 1}

	res, err := h.proc.Process(context.Background(), pdfDoc())
	require.NoError(t, err)

	assert.Zero(t, h.rasterizer.calls)
	assert.Zero(t, h.primary.calls.Load())
	assert.Equal(t, 0.95, res.ConfidenceScore)
	require.NotNil(t, res.PDFType)
	assert.Equal(t, constants.PDFSelectable, *res.PDFType)
	assert.Equal(t, text, res.ExtractedText)
	assert.Equal(t, 1, res.PageCount)
	assert.Empty(t, res.BoundingBoxes)

	view := res.View()
	require.NotNil(t, view.PDFType)
	assert.Equal(t, "selectable", *view.PDFType)
}

func TestImageIsSinglePage(t *testing.T) {
	h := newHarness(t)
	h.fallback.answers["jpeg-bytes"] = ocr.Extraction{Text: "Camera text"}

	res, err := h.proc.Process(context.Background(), entity.SubmittedDocument{
		Data:     []byte("jpeg-bytes"),
		MimeType: "image/jpeg",
		Source:   constants.SourceCamera,
		FileName: "capture.jpg",
	})
	require.NoError(t, err)

	assert.Zero(t, h.classifier.calls)
	assert.Equal(t, "Camera text", res.ExtractedText)
	assert.Equal(t, 1, res.PageCount)
	assert.Nil(t, res.PDFType)
	assert.Zero(t, res.ConfidenceScore, "fallback provides no confidence")
	assert.Equal(t, constants.SourceCamera, res.SourceType)
	assert.Nil(t, res.View().PageCount)
}

func TestRasterizationFailureIsFatal(t *testing.T) {
	h := newHarness(t)
	h.classifier.result = entity.Classification{Kind: entity.ScannedPages}
	h.rasterizer.err = common.NewRasterizationError(errors.New("pdftoppm produced no images"))

	_, err := h.proc.ProcessAndStore(context.Background(), pdfDoc())
	assert.ErrorIs(t, err, common.ErrRasterization)
	assert.True(t, h.rasterizer.released)
	assert.Empty(t, h.sink.saved)
}

func TestClassificationFailureIsFatal(t *testing.T) {
	h := newHarness(t)
	h.classifier.err = common.NewClassificationError(errors.New("empty"))

	res, err := h.proc.Process(context.Background(), pdfDoc())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, common.ErrClassification)
	assert.Zero(t, h.rasterizer.calls)
}

func TestCallerTimeoutReleasesWorkspace(t *testing.T) {
	h := newHarness(t)
	h.classifier.result = entity.Classification{Kind: entity.ScannedPages}
	h.rasterizer.pages = pages("page-1")
	h.primary.answers["page-1"] = ocr.Extraction{Text: "late"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.proc.ProcessAndStore(ctx, pdfDoc())
	assert.ErrorIs(t, err, common.ErrProcessingTimeout)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, h.rasterizer.released)
	assert.Empty(t, h.sink.saved)
}

func TestProcessAndStore(t *testing.T) {
	h := newHarness(t)
	h.classifier.result = entity.Classification{Kind: entity.Selectable, Text: "Some long enough selectable text for the classifier to accept it", PageCount: 3}

	doc := pdfDoc()
	stored, err := h.proc.ProcessAndStore(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, "scan.pdf", stored.FileName)
	assert.Equal(t, int64(len(doc.Data)), stored.FileSize)
	require.Len(t, h.sink.saved, 1)
	assert.Equal(t, 3, h.sink.saved[0].PageCount)
}

func TestProcessAndStoreSinkFailure(t *testing.T) {
	h := newHarness(t)
	h.classifier.result = entity.Classification{Kind: entity.Selectable, Text: "x", PageCount: 1}
	h.sink.err = errors.New("connection refused")

	_, err := h.proc.ProcessAndStore(context.Background(), pdfDoc())
	assert.ErrorIs(t, err, common.ErrStorage)
}

func TestAllPagesFailedStillCompletes(t *testing.T) {
	h := newHarness(t)
	h.classifier.result = entity.Classification{Kind: entity.ScannedPages}
	h.rasterizer.pages = pages("a", "b")

	res, err := h.proc.Process(context.Background(), pdfDoc())
	require.NoError(t, err)
	assert.Equal(t, PageBreak, res.ExtractedText)
	assert.Zero(t, res.ConfidenceScore)
	assert.Empty(t, res.BoundingBoxes)
	assert.Equal(t, 2, res.PageCount)
}

func TestBuild_WiresConfiguredChain(t *testing.T) {
	cfg := common.LoadConfig()
	cfg.OCR.Primary = "ocr-service"
	cfg.OCR.Fallback = "none"
	p, err := Build(cfg, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, p)

	cfg.OCR.Primary = "carrier-pigeon"
	_, err = Build(cfg, nil, nil)
	assert.Error(t, err)
}

func TestAggregationLogsConfidenceNotProvided(t *testing.T) {
	h := newHarness(t)
	h.classifier.result = entity.Classification{Kind: entity.ScannedPages}
	h.rasterizer.pages = pages("page-1", "page-2", "page-3")
	h.primary.answers["page-1"] = ocr.Extraction{Text: "scored", Confidence: entity.ProvidedConfidence(0.8)}
	h.fallback.answers["page-2"] = ocr.Extraction{Text: "unscored"}

	_, err := h.proc.Process(context.Background(), pdfDoc())
	require.NoError(t, err)

	rec := h.logEvent(t, "pipeline.pages.aggregated")
	assert.EqualValues(t, 2, rec["succeeded"])
	assert.EqualValues(t, 1, rec["failed"])
	assert.EqualValues(t, 1, rec["confidence_not_provided"])
}
