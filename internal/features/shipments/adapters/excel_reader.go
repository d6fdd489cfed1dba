package adapters

import (
	"context"
	"fmt"
	"io"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"

	"github.com/xuri/excelize/v2"
)

// ExcelReader parses spreadsheet exports.
// Cells are read raw, so date cells arrive as Excel serial numbers.
type ExcelReader struct{}

// NewExcelReader creates a new ExcelReader.
func NewExcelReader() *ExcelReader {
	return &ExcelReader{}
}

// Read parses the first sheet that has at least one non-empty row.
// The first non-empty row of that sheet is the header row.
func (e *ExcelReader) Read(ctx context.Context, r io.Reader) (*domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}

		table := &domain.Table{}
		for _, row := range rows {
			if isEmptyRecord(row) {
				continue
			}
			if table.Headers == nil {
				table.Headers = row
				continue
			}
			table.Rows = append(table.Rows, row)
		}
		if table.Headers != nil {
			return table, nil
		}
	}

	return &domain.Table{}, nil
}
