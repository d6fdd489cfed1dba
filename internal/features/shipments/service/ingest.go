package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/logger"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/metrics"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/ports"

	"go.uber.org/zap"
)

var (
	// ErrUnsupportedFormat is returned when the file extension has no reader.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrUnreadableTable is returned when a reader cannot parse the file as a table.
	ErrUnreadableTable = errors.New("file is not a readable table")
	// ErrEmptyTable is returned when the file has no header row or no data rows.
	ErrEmptyTable = errors.New("table has no data")
	// ErrRemoteFetch is returned when a remote export cannot be downloaded.
	ErrRemoteFetch = errors.New("failed to fetch remote export")
	// ErrRemoteForbidden is returned when a remote URL points at a host that may not be contacted.
	ErrRemoteForbidden = errors.New("remote export location not allowed")
)

// IngestService turns uploaded or remote export files into canonical record sets.
type IngestService struct {
	readers    map[string]ports.TableReader
	fetcher    ports.RemoteFetcher
	normalizer *Normalizer
	metrics    *metrics.Metrics
}

// NewIngestService creates a new IngestService.
func NewIngestService(csv, excel ports.TableReader, fetcher ports.RemoteFetcher, normalizer *Normalizer, m *metrics.Metrics) *IngestService {
	return &IngestService{
		readers: map[string]ports.TableReader{
			".csv":  csv,
			".txt":  csv,
			".tsv":  csv,
			".xlsx": excel,
			".xlsm": excel,
			".xltx": excel,
		},
		fetcher:    fetcher,
		normalizer: normalizer,
		metrics:    m,
	}
}

// Ingest reads filename's content from r and normalizes it.
func (s *IngestService) Ingest(ctx context.Context, filename string, r io.Reader) (*domain.RecordSet, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	reader, ok := s.readers[ext]
	if !ok {
		s.metrics.IngestFailed("unsupported_format")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	table, err := reader.Read(ctx, r)
	if err != nil {
		s.metrics.IngestFailed("unreadable_table")
		return nil, fmt.Errorf("%w: %v", ErrUnreadableTable, err)
	}
	if len(table.Headers) == 0 || len(table.Rows) == 0 {
		s.metrics.IngestFailed("empty_table")
		return nil, ErrEmptyTable
	}

	logger.Named("ingest").Info("Table read",
		zap.String("filename", filename),
		zap.Int("columns", len(table.Headers)),
		zap.Int("rows", len(table.Rows)),
	)

	return s.normalizer.Normalize(table), nil
}

// IngestRemote downloads an export and ingests it. It also returns the resolved filename.
func (s *IngestService) IngestRemote(ctx context.Context, url string) (*domain.RecordSet, string, error) {
	dl, err := s.fetcher.Fetch(ctx, url)
	if errors.Is(err, ports.ErrDestinationNotAllowed) {
		s.metrics.IngestFailed("remote_forbidden")
		return nil, "", fmt.Errorf("%w: %v", ErrRemoteForbidden, err)
	}
	if err != nil {
		s.metrics.IngestFailed("remote_fetch")
		return nil, "", fmt.Errorf("%w: %v", ErrRemoteFetch, err)
	}

	rs, err := s.Ingest(ctx, dl.Filename, bytes.NewReader(dl.Body))
	if err != nil {
		return nil, dl.Filename, err
	}
	return rs, dl.Filename, nil
}
