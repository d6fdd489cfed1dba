// Package service builds downloadable artifacts from stored analyses.
package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/logger"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/metrics"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ErrExportFailed is returned when an artifact cannot be built.
var ErrExportFailed = errors.New("export failed")

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"

	headerFill = "5CB85C"
	colWidth   = 15
)

// ExportServiceImpl implements ports.Exporter.
type ExportServiceImpl struct {
	metrics *metrics.Metrics
}

// NewExportService creates a new ExportServiceImpl.
func NewExportService(m *metrics.Metrics) *ExportServiceImpl {
	return &ExportServiceImpl{metrics: m}
}

// Workbook renders the analysis as an .xlsx file: a Summary sheet, the
// canonical Raw Data table, then one sheet per analytical view.
func (s *ExportServiceImpl) Workbook(ctx context.Context, a *domain.Analysis) (out []byte, err error) {
	defer func() { s.record(FormatXLSX, a, err) }()

	if a == nil || a.Report == nil {
		return nil, fmt.Errorf("%w: analysis has no report", ErrExportFailed)
	}

	summary := append(headline(a), statuses(a.Report.Results)...)
	sheets := []sheet{metricSheet("Summary", summary), rawDataSheet(a)}
	sheets = append(sheets, viewSheets(a.Report.Results)...)

	f := excelize.NewFile()
	defer f.Close()

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	for i, sh := range sheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), sh.name)
		} else {
			_, err = f.NewSheet(sh.name)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", ErrExportFailed, sh.name, err)
		}
		if err := writeSheet(f, sh, style); err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", ErrExportFailed, sh.name, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}

// SummaryCSV renders the headline metrics as a Metric,Value CSV.
func (s *ExportServiceImpl) SummaryCSV(ctx context.Context, a *domain.Analysis) (out []byte, err error) {
	defer func() { s.record(FormatCSV, a, err) }()

	if a == nil || a.Report == nil {
		return nil, fmt.Errorf("%w: analysis has no report", ErrExportFailed)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Metric", "Value"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	for _, m := range headline(a) {
		if err := w.Write([]string{m.name, m.value}); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sh sheet, style int) error {
	if len(sh.headers) == 0 {
		return nil
	}

	headers := make([]any, len(sh.headers))
	for i, h := range sh.headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(sh.name, "A1", &headers); err != nil {
		return err
	}

	last, err := excelize.ColumnNumberToName(len(sh.headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sh.name, "A1", last+"1", style); err != nil {
		return err
	}
	if err := f.SetColWidth(sh.name, "A", last, colWidth); err != nil {
		return err
	}

	for i, row := range sh.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportServiceImpl) record(format string, a *domain.Analysis, err error) {
	s.metrics.ExportBuilt(format, err)
	if err == nil {
		return
	}
	id := ""
	if a != nil && a.Report != nil {
		id = a.Report.ID
	}
	logger.Named("reports").Error("Export failed",
		zap.String("format", format),
		zap.String("id", id),
		zap.Error(err),
	)
}
