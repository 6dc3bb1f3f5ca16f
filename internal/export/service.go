package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/scriptsense/internal/repository"
)

const (
	historySheet = "History"
	summarySheet = "Summary"
	textPreview  = 140
)

// HistoryReader is the read side of the result repository.
type HistoryReader interface {
	List(ctx context.Context, filter repository.ResultFilter) (repository.ResultPage, error)
	Stats(ctx context.Context) (repository.Stats, error)
}

// Service produces XLSX bytes for history exports.
type Service struct {
	results HistoryReader
	logger  *slog.Logger
}

func NewService(results HistoryReader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{results: results, logger: logger}
}

// ExportHistoryXLSX returns a workbook with every stored result matching
// filter (newest first) plus a summary sheet. Paging fields of filter are ignored.
func (s *Service) ExportHistoryXLSX(ctx context.Context, filter repository.ResultFilter) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// Rename the default sheet rather than leaving an empty "Sheet1".
	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return nil, err
	}
	headers := []string{
		"Created At",
		"File Name",
		"Source",
		"PDF Type",
		"Pages",
		"Language",
		"Language Code",
		"Confidence",
		"Processing Time (ms)",
		"Text",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(historySheet, cell, h)
	}

	filter.Limit = repository.MaxPageSize
	row := 2
	for page := 1; ; page++ {
		filter.Page = page
		res, err := s.results.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("query history: %w", err)
		}
		for _, r := range res.Results {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(historySheet, cell, v)
			}
			pdfType := ""
			if r.PDFType != nil {
				pdfType = string(*r.PDFType)
			}
			write(1, r.CreatedAt.UTC().Format(time.RFC3339))
			write(2, r.FileName)
			write(3, string(r.SourceType))
			write(4, pdfType)
			write(5, r.PageCount)
			write(6, r.LanguageName)
			write(7, r.LanguageCode)
			write(8, r.ConfidenceScore)
			write(9, r.ProcessingTimeMs)
			write(10, truncate(r.ExtractedText, textPreview))
			row++
		}
		if page >= res.Pages {
			break
		}
	}

	_ = f.SetColWidth(historySheet, "A", "A", 22) // timestamp
	_ = f.SetColWidth(historySheet, "B", "B", 28) // file
	_ = f.SetColWidth(historySheet, "C", "I", 14)
	_ = f.SetColWidth(historySheet, "J", "J", 60) // text

	if err := s.writeSummary(ctx, f); err != nil {
		return nil, err
	}
	idx, _ := f.GetSheetIndex(historySheet)
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", row-2,
		"language_code", filter.LanguageCode,
		"source_type", filter.SourceType,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeSummary(ctx context.Context, f *excelize.File) error {
	st, err := s.results.Stats(ctx)
	if err != nil {
		return fmt.Errorf("query stats: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	set := func(row int, k string, v any) {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), k)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), v)
	}
	set(1, "Total", st.Total)
	set(2, "Average Confidence", st.AverageConfidence)
	row := 4
	for _, k := range sortedKeys(st.ByLanguage) {
		set(row, "Language: "+k, st.ByLanguage[k])
		row++
	}
	for _, k := range sortedKeys(st.BySource) {
		set(row, "Source: "+k, st.BySource[k])
		row++
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 28)
	return nil
}
