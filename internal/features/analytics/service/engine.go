package service

import (
	"context"
	"fmt"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/logger"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/metrics"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
	refdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"
	shipdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine runs every analyzer over a record set.
type Engine struct {
	ref     *refdomain.Reference
	metrics *metrics.Metrics
}

// NewEngine creates an Engine bound to the reference tables.
func NewEngine(ref *refdomain.Reference, m *metrics.Metrics) *Engine {
	return &Engine{
		ref:     ref,
		metrics: m,
	}
}

// Run fans the analyzers out concurrently, then evaluates the routing rules
// over their results. A failing analyzer degrades to its placeholder; Run
// only returns an error when ctx is done.
func (e *Engine) Run(ctx context.Context, rs *shipdomain.RecordSet) (domain.Results, error) {
	var res domain.Results
	in := analysisInput{rs: rs, ref: e.ref}

	if err := ctx.Err(); err != nil {
		return domain.Results{}, fmt.Errorf("analysis cancelled: %w", err)
	}

	var g errgroup.Group
	g.Go(func() error {
		res.TierPerformance = guard(e, domain.AnalyzerTierPerformance, emptyTierPerformance,
			func() domain.Outcome[[]domain.TierRow] { return tierPerformance(in) })
		return nil
	})
	g.Go(func() error {
		res.ServiceMix = guard(e, domain.AnalyzerServiceMix, emptyServiceMix,
			func() domain.Outcome[[]domain.ServiceMixRow] { return serviceMix(in) })
		return nil
	})
	g.Go(func() error {
		res.ZoneDistribution = guard(e, domain.AnalyzerZoneDistribution,
			func() []domain.ZoneShareRow { return emptyZoneDistribution(e.ref) },
			func() domain.Outcome[[]domain.ZoneShareRow] { return zoneDistribution(in) })
		return nil
	})
	g.Go(func() error {
		res.ZoneTransit = guard(e, domain.AnalyzerZoneTransit,
			func() []domain.ZoneTransitRow { return emptyZoneTransit(e.ref) },
			func() domain.Outcome[[]domain.ZoneTransitRow] { return zoneTransit(in) })
		return nil
	})
	g.Go(func() error {
		res.ExceptionHotspots = guard(e, domain.AnalyzerExceptionHotspots, emptyExceptionHotspots,
			func() domain.Outcome[[]domain.HotspotRow] { return exceptionHotspots(in) })
		return nil
	})
	g.Go(func() error {
		res.ExceptionSummary = guard(e, domain.AnalyzerExceptionSummary, emptyExceptionSummary,
			func() domain.Outcome[domain.ExceptionSummary] { return exceptionSummary(in) })
		return nil
	})
	g.Go(func() error {
		res.RegionalPerformance = guard(e, domain.AnalyzerRegionalPerformance, emptyRegionalPerformance,
			func() domain.Outcome[[]domain.RegionRow] { return regionalPerformance(in) })
		return nil
	})
	g.Go(func() error {
		res.DayOfWeek = guard(e, domain.AnalyzerDayOfWeek, emptyDayOfWeek,
			func() domain.Outcome[[]domain.DayRow] { return dayOfWeek(in) })
		return nil
	})
	g.Go(func() error {
		res.WeightImpact = guard(e, domain.AnalyzerWeightImpact, emptyWeightImpact,
			func() domain.Outcome[[]domain.WeightRow] { return weightImpact(in) })
		return nil
	})
	g.Go(func() error {
		res.CarrierPerformance = guard(e, domain.AnalyzerCarrierPerformance, emptyCarrierPerformance,
			func() domain.Outcome[[]domain.CarrierRow] { return carrierPerformance(in) })
		return nil
	})
	g.Go(func() error {
		res.CostAnalysis = guard(e, domain.AnalyzerCostAnalysis, emptyCostAnalysis,
			func() domain.Outcome[domain.CostAnalysis] { return costAnalysis(in) })
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Results{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Results{}, fmt.Errorf("analysis cancelled: %w", err)
	}

	res.RoutingOptimization = guard(e, domain.AnalyzerRoutingOptimization, emptyRoutingOptimization,
		func() domain.Outcome[domain.RoutingOptimization] { return routingOptimization(in, &res) })

	return res, nil
}

// guard runs one analyzer, turning a panic into its degraded placeholder.
func guard[T any](e *Engine, name string, placeholder func() T, analyze func() domain.Outcome[T]) (out domain.Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = domain.Degraded(placeholder(), fmt.Sprintf("analyzer failed: %v", r))
		}
		if out.IsDegraded() {
			logger.Named("analytics").Warn("Analyzer degraded",
				zap.String("analyzer", name),
				zap.String("reason", out.Reason),
			)
			e.metrics.AnalyzerDegraded(name)
		}
	}()
	return analyze()
}
