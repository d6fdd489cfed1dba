package ports

import (
	"context"
	"io"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
	shipdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"
)

// AnalysisService defines the primary port for running and retrieving analyses.
type AnalysisService interface {
	AnalyzeUpload(ctx context.Context, filename string, r io.Reader) (*domain.Analysis, error)
	AnalyzeRemote(ctx context.Context, url string) (*domain.Analysis, error)
	AnalyzeDemo(ctx context.Context, dataset string) (*domain.Analysis, error)
	Get(ctx context.Context, id string) (*domain.Analysis, error)
}

// ResultStore defines the secondary port for analysis storage.
type ResultStore interface {
	Save(ctx context.Context, analysis *domain.Analysis) error
	Get(ctx context.Context, id string) (*domain.Analysis, error)
}

// Ingester turns uploaded or remote exports into normalized record sets.
type Ingester interface {
	Ingest(ctx context.Context, filename string, r io.Reader) (*shipdomain.RecordSet, error)
	IngestRemote(ctx context.Context, url string) (*shipdomain.RecordSet, string, error)
}

// DemoSource produces named synthetic record sets.
type DemoSource interface {
	Dataset(name string) (*shipdomain.RecordSet, error)
}

// Exporter builds downloadable artifacts from a stored analysis.
type Exporter interface {
	Workbook(ctx context.Context, analysis *domain.Analysis) ([]byte, error)
	SummaryCSV(ctx context.Context, analysis *domain.Analysis) ([]byte, error)
}
