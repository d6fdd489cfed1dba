package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/logger"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/metrics"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/ports"
	shipdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"

	"go.uber.org/zap"
)

// AnalysisServiceImpl implements ports.AnalysisService.
type AnalysisServiceImpl struct {
	ingest  ports.Ingester
	demo    ports.DemoSource
	engine  *Engine
	store   ports.ResultStore
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewAnalysisService creates a new AnalysisServiceImpl.
func NewAnalysisService(ingest ports.Ingester, demo ports.DemoSource, engine *Engine, store ports.ResultStore, m *metrics.Metrics) *AnalysisServiceImpl {
	return &AnalysisServiceImpl{
		ingest:  ingest,
		demo:    demo,
		engine:  engine,
		store:   store,
		metrics: m,
		now:     time.Now,
	}
}

// AnalyzeUpload ingests an uploaded export and analyzes it.
func (s *AnalysisServiceImpl) AnalyzeUpload(ctx context.Context, filename string, r io.Reader) (*domain.Analysis, error) {
	start := s.now()
	rs, err := s.ingest.Ingest(ctx, filename, r)
	if err != nil {
		return nil, err
	}
	return s.analyze(ctx, domain.SourceUpload, filename, rs, start)
}

// AnalyzeRemote downloads an export and analyzes it.
func (s *AnalysisServiceImpl) AnalyzeRemote(ctx context.Context, url string) (*domain.Analysis, error) {
	start := s.now()
	rs, filename, err := s.ingest.IngestRemote(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.analyze(ctx, domain.SourceRemote, filename, rs, start)
}

// AnalyzeDemo generates a named demo dataset and analyzes it.
func (s *AnalysisServiceImpl) AnalyzeDemo(ctx context.Context, dataset string) (*domain.Analysis, error) {
	start := s.now()
	rs, err := s.demo.Dataset(dataset)
	if err != nil {
		return nil, err
	}
	return s.analyze(ctx, domain.SourceDemo, dataset, rs, start)
}

// Get retrieves a stored analysis.
func (s *AnalysisServiceImpl) Get(ctx context.Context, id string) (*domain.Analysis, error) {
	analysis, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get analysis: %w", err)
	}
	return analysis, nil
}

// analyze runs the engine and stores the result. A store failure is logged
// and the analysis is still returned.
func (s *AnalysisServiceImpl) analyze(ctx context.Context, source domain.Source, filename string, rs *shipdomain.RecordSet, start time.Time) (*domain.Analysis, error) {
	results, err := s.engine.Run(ctx, rs)
	if err != nil {
		return nil, fmt.Errorf("service: failed to analyze: %w", err)
	}

	report := domain.NewReport(source, filename, rs, results, s.now())
	analysis := &domain.Analysis{Report: report, RecordSet: rs}

	log := logger.Named("analytics")
	if err := s.store.Save(ctx, analysis); err != nil {
		log.Warn("Failed to store analysis", zap.String("id", report.ID), zap.Error(err))
	}

	took := s.now().Sub(start)
	s.metrics.ObserveAnalysis(string(source), took)
	log.Info("Analysis complete",
		zap.String("id", report.ID),
		zap.String("source", string(source)),
		zap.String("filename", filename),
		zap.Int("shipments", report.TotalShipments),
		zap.Duration("took", took),
	)

	return analysis, nil
}
