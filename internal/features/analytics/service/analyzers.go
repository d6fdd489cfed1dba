package service

import (
	"math"
	"sort"
	"time"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
	refdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"
	shipdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"
)

const (
	hotspotLimit         = 10
	regionLimit          = 10
	potentialSavingsRate = 0.15
)

var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Weight buckets in pounds, each including its upper bound.
var weightBuckets = []struct {
	label string
	upper float64
}{
	{"1-4 oz", 0.25},
	{"5-8 oz", 0.5},
	{"9-15 oz", 1},
	{"16-32 oz", 2},
	{">32 oz", math.Inf(1)},
}

// Illustrative scorecard reported when the source has no carrier column.
var fallbackCarriers = []domain.CarrierRow{
	{Carrier: "UPS", Volume: 100, OnTimePct: 96.5, AvgCost: 12.50},
	{Carrier: "FedEx", Volume: 80, OnTimePct: 97.2, AvgCost: 13.25},
	{Carrier: "USPS", Volume: 120, OnTimePct: 94.8, AvgCost: 9.75},
	{Carrier: "OnTrac", Volume: 60, OnTimePct: 98.1, AvgCost: 8.90},
	{Carrier: "LaserShip", Volume: 40, OnTimePct: 97.5, AvgCost: 9.10},
}

// analysisInput is the read-only view every analyzer receives.
type analysisInput struct {
	rs  *shipdomain.RecordSet
	ref *refdomain.Reference
}

// missing returns why an analyzer cannot run, or "" when every field is present.
func (in analysisInput) missing(fields ...shipdomain.Field) string {
	if in.rs.Len() == 0 {
		return "no records"
	}
	for _, f := range fields {
		if !in.rs.Has(f) {
			return "missing field " + string(f)
		}
	}
	return ""
}

// observed reports whether a field came from the source data rather than a static default.
func (in analysisInput) observed(f shipdomain.Field) bool {
	switch in.rs.Origin(f) {
	case shipdomain.OriginMapped, shipdomain.OriginDerived:
		return true
	}
	return false
}

// group accumulates one grouping key's records.
type group struct {
	key    string
	volume int
	met    int
	days   []float64
	costs  []float64
}

func (g *group) add(s *shipdomain.Shipment) {
	g.volume++
	if s.SLAStatus.MetSLA() {
		g.met++
	}
	if s.DaysInTransit != nil {
		g.days = append(g.days, float64(*s.DaysInTransit))
	}
	g.costs = append(g.costs, s.Cost)
}

func (g *group) onTimePct() float64 {
	return domain.SafePercentage(float64(g.met), float64(g.volume))
}

func (g *group) avgTransit() float64 {
	return domain.Round(mean(g.days), 2)
}

// groupBy groups records in first-appearance order. Records whose key
// function reports false are skipped.
func groupBy(records []shipdomain.Shipment, key func(*shipdomain.Shipment) (string, bool)) []*group {
	index := make(map[string]*group)
	var groups []*group
	for i := range records {
		k, ok := key(&records[i])
		if !ok {
			continue
		}
		g, seen := index[k]
		if !seen {
			g = &group{key: k}
			index[k] = g
			groups = append(groups, g)
		}
		g.add(&records[i])
	}
	return groups
}

func totalVolume(groups []*group) int {
	total := 0
	for _, g := range groups {
		total += g.volume
	}
	return total
}

func byTier(s *shipdomain.Shipment) (string, bool) { return string(s.Tier), s.Tier != "" }
func byZone(s *shipdomain.Shipment) (string, bool) { return s.Zone, s.Zone != "" }
func byState(s *shipdomain.Shipment) (string, bool) { return s.State, s.State != "" }
func byZip(s *shipdomain.Shipment) (string, bool) { return s.Zip, s.Zip != "" }

func byCarrier(s *shipdomain.Shipment) (string, bool) {
	return s.Carrier, s.Carrier != ""
}

func byWeekday(s *shipdomain.Shipment) (string, bool) {
	if s.RequestDate == nil {
		return "", false
	}
	return s.RequestDate.Weekday().String(), true
}

func byWeightBucket(s *shipdomain.Shipment) (string, bool) {
	if math.IsNaN(s.Weight) || s.Weight <= 0 {
		return "", false
	}
	for _, b := range weightBuckets {
		if s.Weight <= b.upper {
			return b.label, true
		}
	}
	return "", false
}

// sortByTier orders Priority, Expedited, Ground, then unknown tiers by name.
func sortByTier(groups []*group) {
	sort.SliceStable(groups, func(i, j int) bool {
		ri, rj := refdomain.Tier(groups[i].key).Rank(), refdomain.Tier(groups[j].key).Rank()
		if ri != rj {
			return ri < rj
		}
		return groups[i].key < groups[j].key
	})
}

// sortByZone orders zones numerically.
func sortByZone(groups []*group) {
	sort.SliceStable(groups, func(i, j int) bool {
		zi, zj := refdomain.Zone{Key: groups[i].key}.Number(), refdomain.Zone{Key: groups[j].key}.Number()
		if zi != zj {
			return zi < zj
		}
		return groups[i].key < groups[j].key
	})
}

func tierPerformance(in analysisInput) domain.Outcome[[]domain.TierRow] {
	if reason := in.missing(shipdomain.FieldTier, shipdomain.FieldDaysInTransit); reason != "" {
		return domain.Degraded(emptyTierPerformance(), reason)
	}

	groups := groupBy(in.rs.Records, byTier)
	sortByTier(groups)

	rows := make([]domain.TierRow, len(groups))
	for i, g := range groups {
		rows[i] = domain.TierRow{
			Tier:      g.key,
			Shipments: len(g.days),
			AvgDays:   g.avgTransit(),
			Median:    domain.Round(percentile(g.days, 50), 2),
			P95:       domain.Round(percentile(g.days, 95), 2),
			OnTimePct: g.onTimePct(),
		}
	}
	return domain.Computed(rows)
}

func serviceMix(in analysisInput) domain.Outcome[[]domain.ServiceMixRow] {
	if reason := in.missing(shipdomain.FieldTier); reason != "" {
		return domain.Degraded(emptyServiceMix(), reason)
	}

	groups := groupBy(in.rs.Records, byTier)
	sortByTier(groups)
	total := float64(totalVolume(groups))

	rows := make([]domain.ServiceMixRow, len(groups))
	for i, g := range groups {
		rows[i] = domain.ServiceMixRow{
			Service:    g.key,
			Shipments:  g.volume,
			Percentage: domain.SafePercentage(float64(g.volume), total),
		}
	}
	return domain.Computed(rows)
}

func zoneDistribution(in analysisInput) domain.Outcome[[]domain.ZoneShareRow] {
	if reason := in.missing(shipdomain.FieldZone); reason != "" {
		return domain.Degraded(emptyZoneDistribution(in.ref), reason)
	}

	groups := groupBy(in.rs.Records, byZone)
	sortByZone(groups)
	total := float64(totalVolume(groups))

	rows := make([]domain.ZoneShareRow, len(groups))
	for i, g := range groups {
		rows[i] = domain.ZoneShareRow{
			Zone:       g.key,
			Shipments:  g.volume,
			Percentage: domain.SafePercentage(float64(g.volume), total),
		}
	}
	return domain.Computed(rows)
}

func zoneTransit(in analysisInput) domain.Outcome[[]domain.ZoneTransitRow] {
	if reason := in.missing(shipdomain.FieldZone, shipdomain.FieldDaysInTransit); reason != "" {
		return domain.Degraded(emptyZoneTransit(in.ref), reason)
	}

	groups := groupBy(in.rs.Records, byZone)
	sortByZone(groups)

	rows := make([]domain.ZoneTransitRow, len(groups))
	for i, g := range groups {
		rows[i] = domain.ZoneTransitRow{Zone: g.key, AvgTransitDays: g.avgTransit()}
	}
	return domain.Computed(rows)
}

func slaMisses(records []shipdomain.Shipment) []shipdomain.Shipment {
	var misses []shipdomain.Shipment
	for _, r := range records {
		if r.SLAStatus == shipdomain.SLAMiss {
			misses = append(misses, r)
		}
	}
	return misses
}

// exceptionHotspots ranks destination ZIPs by SLA misses. Ties keep first appearance.
func exceptionHotspots(in analysisInput) domain.Outcome[[]domain.HotspotRow] {
	if reason := in.missing(shipdomain.FieldSLAStatus); reason != "" {
		return domain.Degraded(emptyExceptionHotspots(), reason)
	}

	misses := slaMisses(in.rs.Records)
	if len(misses) == 0 {
		return domain.Computed([]domain.HotspotRow{{Zip: domain.NoExceptions}})
	}
	if reason := in.missing(shipdomain.FieldZip); reason != "" {
		return domain.Degraded(emptyExceptionHotspots(), reason)
	}

	groups := groupBy(misses, byZip)
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].volume > groups[j].volume
	})
	if len(groups) > hotspotLimit {
		groups = groups[:hotspotLimit]
	}

	rows := make([]domain.HotspotRow, len(groups))
	for i, g := range groups {
		rows[i] = domain.HotspotRow{Zip: g.key, SLAMisses: g.volume}
	}
	return domain.Computed(rows)
}

// exceptionSummary averages only positive overages past the tier's SLA window.
func exceptionSummary(in analysisInput) domain.Outcome[domain.ExceptionSummary] {
	if reason := in.missing(shipdomain.FieldSLAStatus); reason != "" {
		return domain.Degraded(emptyExceptionSummary(), reason)
	}

	misses := slaMisses(in.rs.Records)
	summary := domain.ExceptionSummary{
		TotalExceptions: len(misses),
		ExceptionRate:   domain.SafePercentage(float64(len(misses)), float64(in.rs.Len())),
	}

	if in.rs.Has(shipdomain.FieldDaysInTransit) && in.rs.Has(shipdomain.FieldTier) {
		var delays []float64
		for _, m := range misses {
			if m.DaysInTransit == nil {
				continue
			}
			if d := *m.DaysInTransit - in.ref.SLAWindow(m.Tier); d > 0 {
				delays = append(delays, float64(d))
			}
		}
		summary.AvgDelay = domain.Round(mean(delays), 1)
	}
	return domain.Computed(summary)
}

// regionalPerformance keeps the ten busiest states, ties broken by state name.
func regionalPerformance(in analysisInput) domain.Outcome[[]domain.RegionRow] {
	if reason := in.missing(shipdomain.FieldState, shipdomain.FieldDaysInTransit); reason != "" {
		return domain.Degraded(emptyRegionalPerformance(), reason)
	}

	groups := groupBy(in.rs.Records, byState)
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].volume != groups[j].volume {
			return groups[i].volume > groups[j].volume
		}
		return groups[i].key < groups[j].key
	})
	if len(groups) > regionLimit {
		groups = groups[:regionLimit]
	}

	rows := make([]domain.RegionRow, len(groups))
	for i, g := range groups {
		rows[i] = domain.RegionRow{
			State:      g.key,
			Volume:     g.volume,
			AvgTransit: g.avgTransit(),
			OnTimePct:  g.onTimePct(),
		}
	}
	return domain.Computed(rows)
}

// dayOfWeek always reports Monday through Sunday; days without volume are zero.
func dayOfWeek(in analysisInput) domain.Outcome[[]domain.DayRow] {
	if reason := in.missing(shipdomain.FieldRequestDate, shipdomain.FieldDaysInTransit); reason != "" {
		return domain.Degraded(emptyDayOfWeek(), reason)
	}

	groups := groupBy(in.rs.Records, byWeekday)
	total := float64(totalVolume(groups))
	byDay := make(map[string]*group, len(groups))
	for _, g := range groups {
		byDay[g.key] = g
	}

	rows := emptyDayOfWeek()
	for i := range rows {
		g, ok := byDay[rows[i].Day]
		if !ok {
			continue
		}
		rows[i].Volume = g.volume
		rows[i].AvgTransit = g.avgTransit()
		rows[i].OnTimePct = g.onTimePct()
		rows[i].VolumePct = domain.SafePercentage(float64(g.volume), total)
	}
	return domain.Computed(rows)
}

// weightImpact always reports the five buckets in ascending order.
func weightImpact(in analysisInput) domain.Outcome[[]domain.WeightRow] {
	if reason := in.missing(shipdomain.FieldWeight, shipdomain.FieldDaysInTransit); reason != "" {
		return domain.Degraded(emptyWeightImpact(), reason)
	}

	groups := groupBy(in.rs.Records, byWeightBucket)
	byBucket := make(map[string]*group, len(groups))
	for _, g := range groups {
		byBucket[g.key] = g
	}

	rows := emptyWeightImpact()
	for i := range rows {
		g, ok := byBucket[rows[i].Bucket]
		if !ok {
			continue
		}
		rows[i].Volume = g.volume
		rows[i].AvgTransit = g.avgTransit()
		rows[i].OnTimePct = g.onTimePct()
	}
	return domain.Computed(rows)
}

// carrierPerformance reports a fixed illustrative scorecard when the source had no carrier column.
func carrierPerformance(in analysisInput) domain.Outcome[[]domain.CarrierRow] {
	if reason := in.missing(); reason != "" {
		return domain.Degraded(emptyCarrierPerformance(), reason)
	}
	if !in.observed(shipdomain.FieldCarrier) {
		rows := append([]domain.CarrierRow(nil), fallbackCarriers...)
		return domain.Fallback(rows, "carrier column not present in source")
	}

	groups := groupBy(in.rs.Records, byCarrier)
	sort.Slice(groups, func(i, j int) bool { return groups[i].key < groups[j].key })

	rows := make([]domain.CarrierRow, len(groups))
	for i, g := range groups {
		rows[i] = domain.CarrierRow{
			Carrier:   g.key,
			Volume:    g.volume,
			OnTimePct: g.onTimePct(),
			AvgCost:   domain.Round(mean(g.costs), 2),
		}
	}
	return domain.Computed(rows)
}

func fallbackCostAnalysis() domain.CostAnalysis {
	perZone := make(map[string]float64, 8)
	for i := 1; i <= 8; i++ {
		perZone[refdomain.ZoneKey(i)] = float64(5 + 2*i)
	}
	return domain.CostAnalysis{
		AvgCostByService: map[string]float64{
			string(refdomain.TierGround):    8.50,
			string(refdomain.TierExpedited): 12.75,
			string(refdomain.TierPriority):  18.25,
		},
		CostPerZone:      perZone,
		PotentialSavings: 1250,
	}
}

// costAnalysis estimates savings as a flat share of total spend.
func costAnalysis(in analysisInput) domain.Outcome[domain.CostAnalysis] {
	if reason := in.missing(); reason != "" {
		return domain.Degraded(emptyCostAnalysis(), reason)
	}
	if !in.observed(shipdomain.FieldCost) {
		return domain.Fallback(fallbackCostAnalysis(), "cost column not present in source")
	}

	out := emptyCostAnalysis()
	if in.rs.Has(shipdomain.FieldTier) {
		for _, g := range groupBy(in.rs.Records, byTier) {
			out.AvgCostByService[g.key] = domain.Round(mean(g.costs), 2)
		}
	}
	if in.rs.Has(shipdomain.FieldZone) {
		for _, g := range groupBy(in.rs.Records, byZone) {
			out.CostPerZone[g.key] = domain.Round(mean(g.costs), 2)
		}
	}

	total := 0.0
	for _, r := range in.rs.Records {
		total += r.Cost
	}
	out.PotentialSavings = domain.Round(total*potentialSavingsRate, 2)
	return domain.Computed(out)
}
