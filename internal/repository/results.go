package repository

import (
	"context"
	"log/slog"
	"math"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/gen/ent"
	"github.com/joseph-ayodele/scriptsense/gen/ent/ocrresult"
	"github.com/joseph-ayodele/scriptsense/gen/ent/predicate"
	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// ResultFilter narrows a history listing. Zero values mean "no filter"
// for strings, page 1 and DefaultPageSize for paging.
type ResultFilter struct {
	LanguageCode string
	SourceType   constants.SourceKind
	Page         int
	Limit        int
}

func (f ResultFilter) normalized() ResultFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	return f
}

func (f ResultFilter) predicates() []predicate.OcrResult {
	var preds []predicate.OcrResult
	if f.LanguageCode != "" {
		preds = append(preds, ocrresult.LanguageCode(f.LanguageCode))
	}
	if f.SourceType != "" {
		preds = append(preds, ocrresult.SourceType(string(f.SourceType)))
	}
	return preds
}

// ResultPage is one page of history, newest first.
type ResultPage struct {
	Results []entity.StoredResult
	Total   int
	Page    int
	Limit   int
	Pages   int
}

// Stats summarizes the stored history.
type Stats struct {
	Total             int
	ByLanguage        map[string]int
	BySource          map[string]int
	AverageConfidence float64
}

// ResultRepository provides access to stored OCR results
type ResultRepository interface {
	Save(ctx context.Context, result entity.DocumentOCRResult, meta entity.DocumentMeta) (entity.StoredResult, error)
	Get(ctx context.Context, id uuid.UUID) (entity.StoredResult, error)
	List(ctx context.Context, filter ResultFilter) (ResultPage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	Stats(ctx context.Context) (Stats, error)
}

// ResultOption configures a ResultRepository.
type ResultOption func(*resultRepository)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) ResultOption {
	return func(r *resultRepository) {
		if now != nil {
			r.now = now
		}
	}
}

type resultRepository struct {
	client *ent.Client
	now    func() time.Time
	logger *slog.Logger
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *DB, logger *slog.Logger, opts ...ResultOption) ResultRepository {
	if logger == nil {
		logger = slog.Default()
	}
	r := &resultRepository{client: db.Client(), now: time.Now, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save assigns an id and timestamp and inserts the result.
func (r *resultRepository) Save(ctx context.Context, result entity.DocumentOCRResult, meta entity.DocumentMeta) (entity.StoredResult, error) {
	boxes := result.BoundingBoxes
	if boxes == nil {
		boxes = []entity.BoundingBox{}
	}
	var pdfType *string
	if result.PDFType != nil {
		t := string(*result.PDFType)
		pdfType = &t
	}

	row, err := r.client.OcrResult.Create().
		SetID(uuid.New()).
		SetFileName(meta.FileName).
		SetFileSize(meta.FileSize).
		SetExtractedText(result.ExtractedText).
		SetLanguageName(result.LanguageName).
		SetLanguageCode(result.LanguageCode).
		SetLanguageConfidence(result.LanguageConfidence).
		SetConfidenceScore(result.ConfidenceScore).
		SetSourceType(string(result.SourceType)).
		SetNillablePdfType(pdfType).
		SetPageCount(result.PageCount).
		SetProcessingTimeMs(result.ProcessingTimeMs).
		SetBoundingBoxes(boxes).
		SetCreatedAt(r.now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save ocr result", "file_name", meta.FileName, "error", err)
		return entity.StoredResult{}, common.WrapError(err, "insert ocr result")
	}
	r.logger.Debug("ocr result saved", "id", row.ID, "file_name", row.FileName)
	return toStoredResult(row), nil
}

// Get retrieves a stored result by id.
func (r *resultRepository) Get(ctx context.Context, id uuid.UUID) (entity.StoredResult, error) {
	row, err := r.client.OcrResult.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return entity.StoredResult{}, common.NewNotFoundError("result " + id.String())
		}
		r.logger.Error("failed to get ocr result", "id", id, "error", err)
		return entity.StoredResult{}, common.WrapError(err, "query ocr result")
	}
	return toStoredResult(row), nil
}

// List returns one page of results, newest first, with the total count
// across all pages for the same filter.
func (r *resultRepository) List(ctx context.Context, filter ResultFilter) (ResultPage, error) {
	f := filter.normalized()

	total, err := r.client.OcrResult.Query().
		Where(f.predicates()...).
		Count(ctx)
	if err != nil {
		r.logger.Error("failed to count ocr results", "error", err)
		return ResultPage{}, common.WrapError(err, "count ocr results")
	}

	rows, err := r.client.OcrResult.Query().
		Where(f.predicates()...).
		Order(ocrresult.ByCreatedAt(sql.OrderDesc()), ocrresult.ByID(sql.OrderDesc())).
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list ocr results", "error", err)
		return ResultPage{}, common.WrapError(err, "list ocr results")
	}

	results := make([]entity.StoredResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, toStoredResult(row))
	}

	return ResultPage{
		Results: results,
		Total:   total,
		Page:    f.Page,
		Limit:   f.Limit,
		Pages:   int(math.Ceil(float64(total) / float64(f.Limit))),
	}, nil
}

// Delete removes a stored result; ErrNotFound when nothing matched.
func (r *resultRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.OcrResult.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NewNotFoundError("result " + id.String())
		}
		r.logger.Error("failed to delete ocr result", "id", id, "error", err)
		return common.WrapError(err, "delete ocr result")
	}
	r.logger.Info("ocr result deleted", "id", id)
	return nil
}

// DeleteOlderThan removes results created before cutoff and reports how many went.
func (r *resultRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := r.client.OcrResult.Delete().
		Where(ocrresult.CreatedAtLT(cutoff.UTC())).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to prune ocr results", "cutoff", cutoff, "error", err)
		return 0, common.WrapError(err, "prune ocr results")
	}
	r.logger.Info("ocr results pruned", "cutoff", cutoff, "deleted", n)
	return int64(n), nil
}

// Stats counts results overall, per language name and per source type.
func (r *resultRepository) Stats(ctx context.Context) (Stats, error) {
	st := Stats{ByLanguage: map[string]int{}, BySource: map[string]int{}}

	total, err := r.client.OcrResult.Query().Count(ctx)
	if err != nil {
		r.logger.Error("failed to compute ocr stats", "error", err)
		return Stats{}, common.WrapError(err, "ocr stats")
	}
	st.Total = total
	if total == 0 {
		return st, nil
	}

	avg, err := r.client.OcrResult.Query().
		Aggregate(ent.Mean(ocrresult.FieldConfidenceScore)).
		Float64(ctx)
	if err != nil {
		r.logger.Error("failed to compute ocr stats", "error", err)
		return Stats{}, common.WrapError(err, "ocr stats")
	}
	st.AverageConfidence = avg

	if err := r.countBy(ctx, ocrresult.FieldLanguageName, st.ByLanguage); err != nil {
		return Stats{}, err
	}
	if err := r.countBy(ctx, ocrresult.FieldSourceType, st.BySource); err != nil {
		return Stats{}, err
	}
	return st, nil
}

// groupCount receives one GROUP BY row; only the grouped column is populated.
type groupCount struct {
	LanguageName string `json:"language_name"`
	SourceType   string `json:"source_type"`
	Count        int    `json:"count"`
}

func (r *resultRepository) countBy(ctx context.Context, column string, into map[string]int) error {
	var groups []groupCount
	err := r.client.OcrResult.Query().
		GroupBy(column).
		Aggregate(ent.As(ent.Count(), "count")).
		Scan(ctx, &groups)
	if err != nil {
		r.logger.Error("failed to group ocr results", "column", column, "error", err)
		return common.WrapError(err, "group ocr results")
	}
	for _, g := range groups {
		key := g.LanguageName
		if column == ocrresult.FieldSourceType {
			key = g.SourceType
		}
		into[key] = g.Count
	}
	return nil
}

func toStoredResult(row *ent.OcrResult) entity.StoredResult {
	s := entity.StoredResult{
		ID:        row.ID,
		FileName:  row.FileName,
		FileSize:  row.FileSize,
		CreatedAt: row.CreatedAt.UTC(),
		DocumentOCRResult: entity.DocumentOCRResult{
			ExtractedText:      row.ExtractedText,
			LanguageName:       row.LanguageName,
			LanguageCode:       row.LanguageCode,
			LanguageConfidence: row.LanguageConfidence,
			ConfidenceScore:    row.ConfidenceScore,
			BoundingBoxes:      row.BoundingBoxes,
			PageCount:          row.PageCount,
			SourceType:         constants.SourceKind(row.SourceType),
			ProcessingTimeMs:   row.ProcessingTimeMs,
		},
	}
	if row.PdfType != nil {
		t := constants.PDFType(*row.PdfType)
		s.PDFType = &t
	}
	if s.BoundingBoxes == nil {
		s.BoundingBoxes = []entity.BoundingBox{}
	}
	return s
}
