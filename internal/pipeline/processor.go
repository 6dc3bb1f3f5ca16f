package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
	"github.com/joseph-ayodele/scriptsense/internal/language"
	"github.com/joseph-ayodele/scriptsense/internal/metrics"
)

// Classifier decides how a PDF is read. *pdf.Classifier satisfies it.
type Classifier interface {
	Classify(ctx context.Context, data []byte) (entity.Classification, error)
}

// Rasterizer renders a PDF and lends the pages to fn. *pdf.Rasterizer satisfies it.
type Rasterizer interface {
	Rasterize(ctx context.Context, data []byte, fn func([]entity.PageImage) error) error
}

// LanguageIdentifier labels the final text. *language.Identifier satisfies it.
type LanguageIdentifier interface {
	Identify(text string) language.Result
}

// ResultSink persists completed results. repository.ResultRepository satisfies it.
type ResultSink interface {
	Save(ctx context.Context, result entity.DocumentOCRResult, meta entity.DocumentMeta) (entity.StoredResult, error)
}

// Processor runs one document through classification, recognition,
// aggregation and language identification. It keeps no state between runs.
type Processor struct {
	classifier Classifier
	rasterizer Rasterizer
	dispatcher *Dispatcher
	identifier LanguageIdentifier
	sink       ResultSink
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time
}

type Option func(*Processor)

func WithSink(s ResultSink) Option {
	return func(p *Processor) { p.sink = s }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Processor) { p.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		if now != nil {
			p.now = now
		}
	}
}

func NewProcessor(c Classifier, r Rasterizer, d *Dispatcher, id LanguageIdentifier, logger *slog.Logger, opts ...Option) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Processor{
		classifier: c,
		rasterizer: r,
		dispatcher: d,
		identifier: id,
		logger:     logger,
		now:        time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// run carries the per-document state of a single Process call.
type run struct {
	logger *slog.Logger
	stage  constants.Stage
}

func (r *run) enter(stage constants.Stage, args ...any) {
	r.stage = stage
	r.logger.Info("pipeline.stage", append([]any{"stage", stage}, args...)...)
}

// Process runs the pipeline. It returns either a complete result or a fatal
// error; per-page recognition failures only degrade the result.
func (p *Processor) Process(ctx context.Context, doc entity.SubmittedDocument) (*entity.DocumentOCRResult, error) {
	start := p.now()
	done := p.metrics.RunStarted()
	defer done()

	r := &run{logger: p.logger.With(
		"request_id", common.RequestIDFromContext(ctx),
		"file_name", doc.FileName,
		"source", doc.Source,
	)}
	r.enter(constants.StageReceived, "bytes", len(doc.Data), "mime_type", doc.MimeType)

	var (
		res *entity.DocumentOCRResult
		err error
	)
	if doc.IsPDF() {
		res, err = p.processPDF(ctx, r, doc.Data)
	} else {
		res, err = p.processImage(ctx, r, doc)
	}

	pdfType := ""
	if res != nil && res.PDFType != nil {
		pdfType = string(*res.PDFType)
	}
	if err != nil {
		err = p.fatal(ctx, r.stage, err)
		r.logger.Error("pipeline.run.failed", "stage", constants.StageFailed, "failed_stage", r.stage, "error", err)
		p.metrics.RecordRun(string(doc.Source), pdfType, p.now().Sub(start), err)
		return nil, err
	}

	r.enter(constants.StageIdentifying)
	lang := p.identifier.Identify(res.ExtractedText)
	res.LanguageName = lang.Name
	res.LanguageCode = lang.Code
	res.LanguageConfidence = lang.Confidence
	res.SourceType = doc.Source
	if doc.IsPDF() {
		res.SourceType = constants.SourcePDF
	}
	res.ProcessingTimeMs = p.now().Sub(start).Milliseconds()

	r.enter(constants.StageCompleted,
		"pages", res.PageCount,
		"confidence", res.ConfidenceScore,
		"language", res.LanguageCode,
		"duration_ms", res.ProcessingTimeMs,
	)
	p.metrics.RecordRun(string(res.SourceType), pdfType, p.now().Sub(start), nil)
	return res, nil
}

// ProcessAndStore runs Process and hands a completed result to the sink.
// Failed runs store nothing.
func (p *Processor) ProcessAndStore(ctx context.Context, doc entity.SubmittedDocument) (entity.StoredResult, error) {
	if p.sink == nil {
		return entity.StoredResult{}, common.NewStorageError(errors.New("no result sink configured"))
	}
	res, err := p.Process(ctx, doc)
	if err != nil {
		return entity.StoredResult{}, err
	}
	size := doc.Size
	if size == 0 {
		size = int64(len(doc.Data))
	}
	stored, err := p.sink.Save(ctx, *res, entity.DocumentMeta{FileName: doc.FileName, FileSize: size})
	if err != nil {
		p.logger.Error("pipeline.store.failed", "file_name", doc.FileName, "error", err)
		return entity.StoredResult{}, common.NewStorageError(err)
	}
	p.logger.Info("pipeline.store.ok", "id", stored.ID, "file_name", doc.FileName)
	return stored, nil
}

func (p *Processor) processPDF(ctx context.Context, r *run, data []byte) (*entity.DocumentOCRResult, error) {
	r.enter(constants.StageClassifying)
	cls, err := p.classifier.Classify(ctx, data)
	if err != nil {
		return nil, err
	}

	if cls.Kind == entity.Selectable {
		r.enter(constants.StageExtracting, "pages", cls.PageCount)
		t := constants.PDFSelectable
		return &entity.DocumentOCRResult{
			ExtractedText:   cls.Text,
			ConfidenceScore: entity.SelectableConfidence,
			BoundingBoxes:   []entity.BoundingBox{},
			PageCount:       cls.PageCount,
			PDFType:         &t,
		}, nil
	}

	r.enter(constants.StageRasterizing)
	var res *entity.DocumentOCRResult
	err = p.rasterizer.Rasterize(ctx, data, func(pages []entity.PageImage) error {
		var err error
		res, err = p.recognize(ctx, r, pages)
		return err
	})
	if err != nil {
		return nil, err
	}
	t := constants.PDFScanned
	res.PDFType = &t
	return res, nil
}

func (p *Processor) processImage(ctx context.Context, r *run, doc entity.SubmittedDocument) (*entity.DocumentOCRResult, error) {
	page := entity.PageImage{Index: 0, Data: doc.Data, MimeType: constants.NormalizeMime(doc.MimeType)}
	return p.recognize(ctx, r, []entity.PageImage{page})
}

// recognize dispatches pages and aggregates their outcomes.
func (p *Processor) recognize(ctx context.Context, r *run, pages []entity.PageImage) (*entity.DocumentOCRResult, error) {
	r.enter(constants.StageDispatching, "pages", len(pages))
	outcomes := p.dispatcher.DispatchAll(ctx, pages)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.enter(constants.StageAggregating)
	agg, err := AggregateOutcomes(outcomes)
	if err != nil {
		return nil, err
	}
	r.logger.Info("pipeline.pages.aggregated",
		"succeeded", agg.Succeeded,
		"failed", agg.Failed,
		"confidence_not_provided", agg.NotProvided,
	)
	if agg.Failed > 0 {
		r.logger.Warn("pipeline.pages.degraded", "failed", agg.Failed, "succeeded", agg.Succeeded)
	}
	return &entity.DocumentOCRResult{
		ExtractedText:   agg.Text,
		ConfidenceScore: agg.Confidence,
		BoundingBoxes:   agg.Boxes,
		PageCount:       len(pages),
	}, nil
}

// fatal maps an aborted context to PROCESSING_TIMEOUT; other errors pass through.
func (p *Processor) fatal(ctx context.Context, stage constants.Stage, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) && appErr.Code == common.CodeProcessingTimeout {
			return err
		}
		return common.NewProcessingTimeoutError(string(stage), ctxErr)
	}
	return err
}
