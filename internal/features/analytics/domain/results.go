package domain

// Analyzer names, used as result keys, log fields, metric labels and export sheet names.
const (
	AnalyzerTierPerformance     = "tier_performance"
	AnalyzerServiceMix          = "service_mix"
	AnalyzerZoneDistribution    = "zone_distribution"
	AnalyzerZoneTransit         = "zone_transit"
	AnalyzerExceptionHotspots   = "exception_hotspots"
	AnalyzerExceptionSummary    = "exception_summary"
	AnalyzerRegionalPerformance = "regional_performance"
	AnalyzerDayOfWeek           = "day_of_week"
	AnalyzerWeightImpact        = "weight_impact"
	AnalyzerCarrierPerformance  = "carrier_performance"
	AnalyzerCostAnalysis        = "cost_analysis"
	AnalyzerRoutingOptimization = "routing_optimization"
)

// Placeholder keys used in single-row empty views.
const (
	NoData       = "No Data"
	NoExceptions = "No Exceptions"
)

// TierRow is one service tier's transit performance.
type TierRow struct {
	// Tier is the service tier name.
	Tier string `json:"xparcel_type"`
	// Shipments counts the tier's records that carry a transit time.
	Shipments int `json:"shipments"`
	// AvgDays is the mean transit time in days.
	AvgDays float64 `json:"avg_days"`
	// Median is the median transit time in days.
	Median float64 `json:"median"`
	// P95 is the 95th percentile transit time in days.
	P95 float64 `json:"p95"`
	// OnTimePct is the share of the tier's records that met SLA.
	OnTimePct float64 `json:"on_time_pct"`
}

// ServiceMixRow is one tier's share of volume.
type ServiceMixRow struct {
	// Service is the tier name.
	Service string `json:"service"`
	// Shipments is the tier's record count.
	Shipments int `json:"shipments"`
	// Percentage is the tier's share of all records.
	Percentage float64 `json:"percentage"`
}

// ZoneShareRow is one zone's share of volume.
type ZoneShareRow struct {
	// Zone is the zone key, "1" through "8".
	Zone string `json:"zone"`
	// Shipments is the zone's record count.
	Shipments int `json:"shipments"`
	// Percentage is the zone's share of all records.
	Percentage float64 `json:"percentage"`
}

// ZoneTransitRow is the mean transit time for a zone.
type ZoneTransitRow struct {
	// Zone is the zone key.
	Zone string `json:"zone"`
	// AvgTransitDays is the mean transit time in days.
	AvgTransitDays float64 `json:"avg_transit_days"`
}

// HotspotRow counts SLA misses for one destination ZIP.
type HotspotRow struct {
	// Zip is the five-digit destination ZIP.
	Zip string `json:"zip"`
	// SLAMisses is the number of late shipments to the ZIP.
	SLAMisses int `json:"sla_misses"`
}

// ExceptionSummary aggregates SLA misses across the record set.
type ExceptionSummary struct {
	// TotalExceptions is the number of SLA misses.
	TotalExceptions int `json:"total_exceptions"`
	// ExceptionRate is the share of records that missed SLA.
	ExceptionRate float64 `json:"exception_rate"`
	// AvgDelay is the mean transit time of the misses.
	AvgDelay float64 `json:"avg_delay"`
}

// RegionRow is one destination state's performance.
type RegionRow struct {
	// State is the destination state.
	State string `json:"state"`
	// Volume is the state's record count.
	Volume int `json:"volume"`
	// AvgTransit is the mean transit time in days.
	AvgTransit float64 `json:"avg_transit"`
	// OnTimePct is the share of the state's records that met SLA.
	OnTimePct float64 `json:"on_time_pct"`
}

// DayRow is one request weekday's performance.
type DayRow struct {
	// Day is the weekday name.
	Day string `json:"day_of_week"`
	// Volume is the number of records requested on the weekday.
	Volume int `json:"volume"`
	// AvgTransit is the mean transit time in days.
	AvgTransit float64 `json:"avg_transit"`
	// OnTimePct is the share of the weekday's records that met SLA.
	OnTimePct float64 `json:"on_time_pct"`
	// VolumePct is the weekday's share of dated records.
	VolumePct float64 `json:"volume_pct"`
}

// WeightRow is one weight bucket's performance.
type WeightRow struct {
	// Bucket is the weight range label, e.g. "5-8 oz".
	Bucket string `json:"weight_bucket"`
	// Volume is the bucket's record count.
	Volume int `json:"volume"`
	// AvgTransit is the mean transit time in days.
	AvgTransit float64 `json:"avg_transit"`
	// OnTimePct is the share of the bucket's records that met SLA.
	OnTimePct float64 `json:"on_time_pct"`
}

// CarrierRow is one carrier's scorecard.
type CarrierRow struct {
	// Carrier is the carrier name.
	Carrier string `json:"carrier"`
	// Volume is the carrier's record count.
	Volume int `json:"volume"`
	// OnTimePct is the share of the carrier's records that met SLA.
	OnTimePct float64 `json:"on_time_pct"`
	// AvgCost is the mean shipping cost in dollars.
	AvgCost float64 `json:"avg_cost"`
}

// CostAnalysis holds mean costs and the flat savings estimate.
type CostAnalysis struct {
	// AvgCostByService is the mean cost per tier.
	AvgCostByService map[string]float64 `json:"avg_cost_by_service"`
	// CostPerZone is the mean cost per zone key.
	CostPerZone map[string]float64 `json:"cost_per_zone"`
	// PotentialSavings is the flat share of total spend considered recoverable.
	PotentialSavings float64 `json:"potential_savings"`
}

// Recommendation is one routing suggestion. SavingsUSD is set only for
// dollar-valued savings; Savings is the display text.
type Recommendation struct {
	// Issue names the problem found.
	Issue string `json:"issue"`
	// Impact describes who or what it affects.
	Impact string `json:"impact"`
	// Recommendation is the suggested change.
	Recommendation string `json:"recommendation"`
	// Savings is the human-readable estimate.
	Savings string `json:"savings"`
	// SavingsUSD is the estimate in dollars, when it has one.
	SavingsUSD *float64 `json:"savings_usd,omitempty"`
}

// RoutingOptimization is the recommendation list and its dollar total.
type RoutingOptimization struct {
	// Recommendations is the ordered suggestion list.
	Recommendations []Recommendation `json:"recommendations"`
	// PotentialImprovement sums SavingsUSD over the recommendations.
	PotentialImprovement float64 `json:"potential_improvement"`
}

// Results is the combined output of every analyzer.
type Results struct {
	TierPerformance     Outcome[[]TierRow]           `json:"tier_performance"`
	ServiceMix          Outcome[[]ServiceMixRow]     `json:"service_mix"`
	ZoneDistribution    Outcome[[]ZoneShareRow]      `json:"zone_distribution"`
	ZoneTransit         Outcome[[]ZoneTransitRow]    `json:"zone_transit"`
	ExceptionHotspots   Outcome[[]HotspotRow]        `json:"exception_hotspots"`
	ExceptionSummary    Outcome[ExceptionSummary]    `json:"exception_summary"`
	RegionalPerformance Outcome[[]RegionRow]         `json:"regional_performance"`
	DayOfWeek           Outcome[[]DayRow]            `json:"day_of_week"`
	WeightImpact        Outcome[[]WeightRow]         `json:"weight_impact"`
	CarrierPerformance  Outcome[[]CarrierRow]        `json:"carrier_performance"`
	CostAnalysis        Outcome[CostAnalysis]        `json:"cost_analysis"`
	RoutingOptimization Outcome[RoutingOptimization] `json:"routing_optimization"`
}

// Statuses returns every analyzer's status keyed by analyzer name.
func (r *Results) Statuses() map[string]Status {
	return map[string]Status{
		AnalyzerTierPerformance:     r.TierPerformance.Status,
		AnalyzerServiceMix:          r.ServiceMix.Status,
		AnalyzerZoneDistribution:    r.ZoneDistribution.Status,
		AnalyzerZoneTransit:         r.ZoneTransit.Status,
		AnalyzerExceptionHotspots:   r.ExceptionHotspots.Status,
		AnalyzerExceptionSummary:    r.ExceptionSummary.Status,
		AnalyzerRegionalPerformance: r.RegionalPerformance.Status,
		AnalyzerDayOfWeek:           r.DayOfWeek.Status,
		AnalyzerWeightImpact:        r.WeightImpact.Status,
		AnalyzerCarrierPerformance:  r.CarrierPerformance.Status,
		AnalyzerCostAnalysis:        r.CostAnalysis.Status,
		AnalyzerRoutingOptimization: r.RoutingOptimization.Status,
	}
}
