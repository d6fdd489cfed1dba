package service

import (
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
	refdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"
)

// Typed placeholders returned by degraded analyzers. Each has the shape of the
// computed view with zero or sentinel values.

func emptyTierPerformance() []domain.TierRow {
	rows := make([]domain.TierRow, 0, 3)
	for _, t := range []refdomain.Tier{refdomain.TierGround, refdomain.TierExpedited, refdomain.TierPriority} {
		rows = append(rows, domain.TierRow{Tier: string(t)})
	}
	return rows
}

func emptyServiceMix() []domain.ServiceMixRow {
	rows := make([]domain.ServiceMixRow, 0, 3)
	for _, t := range []refdomain.Tier{refdomain.TierGround, refdomain.TierExpedited, refdomain.TierPriority} {
		rows = append(rows, domain.ServiceMixRow{Service: string(t)})
	}
	return rows
}

func emptyZoneDistribution(ref *refdomain.Reference) []domain.ZoneShareRow {
	zones := ref.Zones()
	rows := make([]domain.ZoneShareRow, len(zones))
	for i, z := range zones {
		rows[i] = domain.ZoneShareRow{Zone: z.Key}
	}
	return rows
}

// emptyZoneTransit falls back to each zone's typical transit days.
func emptyZoneTransit(ref *refdomain.Reference) []domain.ZoneTransitRow {
	zones := ref.Zones()
	rows := make([]domain.ZoneTransitRow, len(zones))
	for i, z := range zones {
		rows[i] = domain.ZoneTransitRow{Zone: z.Key, AvgTransitDays: float64(z.TypicalTransitDays)}
	}
	return rows
}

func emptyExceptionHotspots() []domain.HotspotRow {
	return []domain.HotspotRow{{Zip: domain.NoData}}
}

func emptyExceptionSummary() domain.ExceptionSummary {
	return domain.ExceptionSummary{}
}

func emptyRegionalPerformance() []domain.RegionRow {
	return []domain.RegionRow{{State: domain.NoData}}
}

func emptyDayOfWeek() []domain.DayRow {
	rows := make([]domain.DayRow, len(weekdays))
	for i, d := range weekdays {
		rows[i] = domain.DayRow{Day: d.String()}
	}
	return rows
}

func emptyWeightImpact() []domain.WeightRow {
	rows := make([]domain.WeightRow, len(weightBuckets))
	for i, b := range weightBuckets {
		rows[i] = domain.WeightRow{Bucket: b.label}
	}
	return rows
}

func emptyCarrierPerformance() []domain.CarrierRow {
	return []domain.CarrierRow{{Carrier: domain.NoData}}
}

func emptyCostAnalysis() domain.CostAnalysis {
	return domain.CostAnalysis{
		AvgCostByService: map[string]float64{},
		CostPerZone:      map[string]float64{},
	}
}

func emptyRoutingOptimization() domain.RoutingOptimization {
	return domain.RoutingOptimization{Recommendations: []domain.Recommendation{}}
}
