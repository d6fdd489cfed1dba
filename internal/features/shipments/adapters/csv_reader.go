package adapters

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"

	"golang.org/x/text/encoding/charmap"
)

const utf8BOM = "\ufeff"

// CSVReader parses delimited text exports.
// Input that is not valid UTF-8 is decoded as Windows-1252.
type CSVReader struct{}

// NewCSVReader creates a new CSVReader.
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// Read parses r into a raw table. The first non-empty record is the header row.
func (c *CSVReader) Read(ctx context.Context, r io.Reader) (*domain.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if !utf8.Valid(data) {
		data, err = charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode csv as windows-1252: %w", err)
		}
	}
	text := strings.TrimPrefix(string(data), utf8BOM)

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	table := &domain.Table{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}
		if isEmptyRecord(record) {
			continue
		}
		if table.Headers == nil {
			table.Headers = record
			continue
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// sniffDelimiter picks the most frequent of comma, semicolon and tab in the first line.
func sniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		line = text[:i]
	}

	best, bestCount := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func isEmptyRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
