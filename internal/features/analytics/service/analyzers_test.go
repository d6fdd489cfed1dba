package service

import (
	"fmt"
	"testing"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
	refdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"
	shipdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tier(t refdomain.Tier) func(*shipdomain.Shipment) {
	return func(s *shipdomain.Shipment) { s.Tier = t }
}

func days(d int) func(*shipdomain.Shipment) {
	return func(s *shipdomain.Shipment) { s.DaysInTransit = intp(d) }
}

func status(st shipdomain.SLAStatus) func(*shipdomain.Shipment) {
	return func(s *shipdomain.Shipment) { s.SLAStatus = st }
}

func zone(z string) func(*shipdomain.Shipment) {
	return func(s *shipdomain.Shipment) { s.Zone = z }
}

func state(st string) func(*shipdomain.Shipment) {
	return func(s *shipdomain.Shipment) { s.State = st }
}

func zip(z string) func(*shipdomain.Shipment) {
	return func(s *shipdomain.Shipment) { s.Zip = z }
}

// TestTierPerformance_Computed verifies grouping, statistics and tier ordering.
func TestTierPerformance_Computed(t *testing.T) {
	rs := recordSet(
		shipment(tier(refdomain.TierGround), days(10), status(shipdomain.SLAMiss)),
		shipment(tier(refdomain.TierPriority), days(1)),
		shipment(tier(refdomain.TierPriority), days(3)),
		shipment(tier(refdomain.TierGround), days(4)),
		shipment(tier(refdomain.TierExpedited), days(5), status(shipdomain.SLAEarly)),
		shipment(tier(refdomain.TierPriority), days(2)),
	)

	out := tierPerformance(newInput(rs))
	require.Equal(t, domain.StatusComputed, out.Status)
	require.Len(t, out.Data, 3)

	assert.Equal(t, "Priority", out.Data[0].Tier)
	assert.Equal(t, 3, out.Data[0].Shipments)
	assert.Equal(t, 2.0, out.Data[0].AvgDays)
	assert.Equal(t, 2.0, out.Data[0].Median)
	assert.Equal(t, 2.9, out.Data[0].P95)
	assert.Equal(t, 100.0, out.Data[0].OnTimePct)

	assert.Equal(t, "Expedited", out.Data[1].Tier)
	assert.Equal(t, 100.0, out.Data[1].OnTimePct)

	assert.Equal(t, "Ground", out.Data[2].Tier)
	assert.Equal(t, 2, out.Data[2].Shipments)
	assert.Equal(t, 7.0, out.Data[2].AvgDays)
	assert.Equal(t, 9.7, out.Data[2].P95)
	assert.Equal(t, 50.0, out.Data[2].OnTimePct)
}

// TestTierPerformance_CountsTimedShipments verifies the shipment count only
// includes records with a transit time, matching the statistics beside it.
func TestTierPerformance_CountsTimedShipments(t *testing.T) {
	rs := recordSet(
		shipment(tier(refdomain.TierGround), days(2)),
		shipment(tier(refdomain.TierGround), days(4)),
		shipment(tier(refdomain.TierGround), func(s *shipdomain.Shipment) { s.DaysInTransit = nil }),
	)

	out := tierPerformance(newInput(rs))
	require.Equal(t, domain.StatusComputed, out.Status)
	require.Len(t, out.Data, 1)
	assert.Equal(t, 2, out.Data[0].Shipments)
	assert.Equal(t, 3.0, out.Data[0].AvgDays)
}

// TestTierPerformance_MissingDays verifies the typed placeholder when days are absent.
func TestTierPerformance_MissingDays(t *testing.T) {
	rs := withOrigin(recordSet(shipment()), shipdomain.OriginAbsent, shipdomain.FieldDaysInTransit)

	out := tierPerformance(newInput(rs))
	assert.Equal(t, domain.StatusDegraded, out.Status)
	assert.Equal(t, "missing field days_in_transit", out.Reason)
	assert.Len(t, out.Data, 3)
	assert.Zero(t, out.Data[0].Shipments)
}

// TestServiceMix_SumsToHundred verifies percentages add up within rounding.
func TestServiceMix_SumsToHundred(t *testing.T) {
	rs := recordSet(
		shipment(tier(refdomain.TierGround)),
		shipment(tier(refdomain.TierExpedited)),
		shipment(tier(refdomain.TierPriority)),
	)

	out := serviceMix(newInput(rs))
	require.Equal(t, domain.StatusComputed, out.Status)
	require.Len(t, out.Data, 3)

	sum := 0.0
	for _, row := range out.Data {
		sum += row.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.1*float64(len(out.Data)))
	assert.Equal(t, "Priority", out.Data[0].Service)
	assert.Equal(t, 33.3, out.Data[0].Percentage)
}

// TestServiceMix_OnlyPresentTiers verifies no synthetic zero rows are added.
func TestServiceMix_OnlyPresentTiers(t *testing.T) {
	rs := recordSet(shipment(), shipment())

	out := serviceMix(newInput(rs))
	require.Len(t, out.Data, 1)
	assert.Equal(t, domain.ServiceMixRow{Service: "Ground", Shipments: 2, Percentage: 100}, out.Data[0])
}

// TestZoneDistribution verifies counts and shares per zone.
func TestZoneDistribution(t *testing.T) {
	rs := recordSet(shipment(zone("1")), shipment(zone("2")), shipment(zone("1")))

	out := zoneDistribution(newInput(rs))
	require.Equal(t, domain.StatusComputed, out.Status)
	assert.Equal(t, []domain.ZoneShareRow{
		{Zone: "1", Shipments: 2, Percentage: 66.7},
		{Zone: "2", Shipments: 1, Percentage: 33.3},
	}, out.Data)
}

// TestZoneTransit verifies numeric zone order and mean transit.
func TestZoneTransit(t *testing.T) {
	rs := recordSet(
		shipment(zone("8"), days(7)),
		shipment(zone("2"), days(1)),
		shipment(zone("2"), days(2)),
	)

	out := zoneTransit(newInput(rs))
	assert.Equal(t, []domain.ZoneTransitRow{
		{Zone: "2", AvgTransitDays: 1.5},
		{Zone: "8", AvgTransitDays: 7},
	}, out.Data)
}

// TestZoneTransit_Placeholder verifies the placeholder carries typical transit days.
func TestZoneTransit_Placeholder(t *testing.T) {
	rs := withOrigin(recordSet(shipment()), shipdomain.OriginAbsent, shipdomain.FieldDaysInTransit)

	out := zoneTransit(newInput(rs))
	assert.True(t, out.IsDegraded())
	require.Len(t, out.Data, 8)
	assert.Equal(t, domain.ZoneTransitRow{Zone: "8", AvgTransitDays: 7}, out.Data[7])
}

// TestExceptionHotspots verifies ranking, first-appearance ties and the limit.
func TestExceptionHotspots(t *testing.T) {
	var records []shipdomain.Shipment
	records = append(records, shipment(zip("11111"), status(shipdomain.SLAMiss)))
	records = append(records, repeat(3, shipment(zip("22222"), status(shipdomain.SLAMiss)))...)
	records = append(records, shipment(zip("33333"), status(shipdomain.SLAMiss)))
	records = append(records, repeat(5, shipment(zip("44444")))...)
	for i := range 12 {
		records = append(records, shipment(zip(fmt.Sprintf("9%04d", i)), status(shipdomain.SLAMiss)))
	}

	out := exceptionHotspots(newInput(recordSet(records...)))
	require.Equal(t, domain.StatusComputed, out.Status)
	require.Len(t, out.Data, 10)
	assert.Equal(t, domain.HotspotRow{Zip: "22222", SLAMisses: 3}, out.Data[0])
	assert.Equal(t, domain.HotspotRow{Zip: "11111", SLAMisses: 1}, out.Data[1])
	assert.Equal(t, domain.HotspotRow{Zip: "33333", SLAMisses: 1}, out.Data[2])
	assert.Equal(t, "90000", out.Data[3].Zip)
}

// TestExceptionHotspots_NoMisses verifies the no-exceptions sentinel row.
func TestExceptionHotspots_NoMisses(t *testing.T) {
	out := exceptionHotspots(newInput(recordSet(shipment(), shipment())))

	assert.Equal(t, domain.StatusComputed, out.Status)
	assert.Equal(t, []domain.HotspotRow{{Zip: domain.NoExceptions}}, out.Data)
}

// TestExceptionSummary verifies the rate and the positive-overage mean.
func TestExceptionSummary(t *testing.T) {
	records := repeat(7, shipment())
	records = append(records,
		shipment(days(10), status(shipdomain.SLAMiss)),
		shipment(days(12), status(shipdomain.SLAMiss)),
		shipment(tier(refdomain.TierPriority), days(2), status(shipdomain.SLAEarly)),
	)

	out := exceptionSummary(newInput(recordSet(records...)))
	require.Equal(t, domain.StatusComputed, out.Status)
	assert.Equal(t, domain.ExceptionSummary{TotalExceptions: 2, ExceptionRate: 20.0, AvgDelay: 3.0}, out.Data)
}

// TestExceptionSummary_NegativeOverageIgnored verifies misses inside the window add no delay.
func TestExceptionSummary_NegativeOverageIgnored(t *testing.T) {
	rs := recordSet(shipment(tier(refdomain.TierPriority), days(2), status(shipdomain.SLAMiss)))

	out := exceptionSummary(newInput(rs))
	assert.Equal(t, 100.0, out.Data.ExceptionRate)
	assert.Equal(t, 0.0, out.Data.AvgDelay)
}

// TestRegionalPerformance verifies volume order, state tie-break and the top-ten cut.
func TestRegionalPerformance(t *testing.T) {
	var records []shipdomain.Shipment
	records = append(records, repeat(3, shipment(state("TX"), days(4)))...)
	records = append(records, repeat(3, shipment(state("CA"), days(2), status(shipdomain.SLAMiss)))...)
	for _, st := range []string{"AZ", "CO", "GA", "MA", "MI", "NJ", "NY", "OH", "WA", "WI"} {
		records = append(records, shipment(state(st)))
	}

	out := regionalPerformance(newInput(recordSet(records...)))
	require.Equal(t, domain.StatusComputed, out.Status)
	require.Len(t, out.Data, 10)
	assert.Equal(t, domain.RegionRow{State: "CA", Volume: 3, AvgTransit: 2, OnTimePct: 0}, out.Data[0])
	assert.Equal(t, domain.RegionRow{State: "TX", Volume: 3, AvgTransit: 4, OnTimePct: 100}, out.Data[1])
	assert.Equal(t, "AZ", out.Data[2].State)
	assert.Equal(t, "OH", out.Data[9].State)
}

// TestDayOfWeek verifies the fixed Monday-first order and zero rows.
func TestDayOfWeek(t *testing.T) {
	rs := recordSet(
		shipment(func(s *shipdomain.Shipment) { s.RequestDate = date("2024-01-05") }),
		shipment(func(s *shipdomain.Shipment) { s.RequestDate = date("2024-01-01") }),
		shipment(func(s *shipdomain.Shipment) { s.RequestDate = date("2024-01-05") }, days(5)),
		shipment(func(s *shipdomain.Shipment) { s.RequestDate = nil }),
	)

	out := dayOfWeek(newInput(rs))
	require.Equal(t, domain.StatusComputed, out.Status)
	require.Len(t, out.Data, 7)

	assert.Equal(t, domain.DayRow{Day: "Monday", Volume: 1, AvgTransit: 3, OnTimePct: 100, VolumePct: 33.3}, out.Data[0])
	assert.Equal(t, domain.DayRow{Day: "Tuesday"}, out.Data[1])
	assert.Equal(t, domain.DayRow{Day: "Friday", Volume: 2, AvgTransit: 4, OnTimePct: 100, VolumePct: 66.7}, out.Data[4])
	assert.Equal(t, "Sunday", out.Data[6].Day)
}

// TestDayOfWeek_MissingRequestDate verifies the placeholder without request dates.
func TestDayOfWeek_MissingRequestDate(t *testing.T) {
	rs := withOrigin(recordSet(shipment()), shipdomain.OriginAbsent, shipdomain.FieldRequestDate)

	out := dayOfWeek(newInput(rs))
	assert.True(t, out.IsDegraded())
	assert.Len(t, out.Data, 7)
}

// TestWeightImpact verifies right-inclusive buckets.
func TestWeightImpact(t *testing.T) {
	weight := func(w float64) func(*shipdomain.Shipment) {
		return func(s *shipdomain.Shipment) { s.Weight = w }
	}
	rs := recordSet(
		shipment(weight(0.25)),
		shipment(weight(0.3)),
		shipment(weight(1)),
		shipment(weight(1.5), status(shipdomain.SLAMiss)),
		shipment(weight(5)),
		shipment(weight(0)),
	)

	out := weightImpact(newInput(rs))
	require.Equal(t, domain.StatusComputed, out.Status)

	volumes := map[string]int{}
	for _, row := range out.Data {
		volumes[row.Bucket] = row.Volume
	}
	assert.Equal(t, map[string]int{"1-4 oz": 1, "5-8 oz": 1, "9-15 oz": 1, "16-32 oz": 1, ">32 oz": 1}, volumes)
	assert.Equal(t, "1-4 oz", out.Data[0].Bucket)
	assert.Equal(t, 0.0, out.Data[3].OnTimePct)
}

// TestCarrierPerformance_Computed verifies per-carrier scorecards sorted by name.
func TestCarrierPerformance_Computed(t *testing.T) {
	carrier := func(c string, cost float64) func(*shipdomain.Shipment) {
		return func(s *shipdomain.Shipment) { s.Carrier, s.Cost = c, cost }
	}
	rs := recordSet(
		shipment(carrier("UPS", 12)),
		shipment(carrier("FedEx", 14), status(shipdomain.SLAMiss)),
		shipment(carrier("UPS", 13)),
	)

	out := carrierPerformance(newInput(rs))
	require.Equal(t, domain.StatusComputed, out.Status)
	assert.Equal(t, []domain.CarrierRow{
		{Carrier: "FedEx", Volume: 1, OnTimePct: 0, AvgCost: 14},
		{Carrier: "UPS", Volume: 2, OnTimePct: 100, AvgCost: 12.5},
	}, out.Data)
}

// TestCarrierPerformance_Fallback verifies the illustrative scorecard when carrier was never observed.
func TestCarrierPerformance_Fallback(t *testing.T) {
	for _, origin := range []shipdomain.Origin{shipdomain.OriginDefaulted, shipdomain.OriginAbsent} {
		rs := withOrigin(recordSet(shipment()), origin, shipdomain.FieldCarrier)

		out := carrierPerformance(newInput(rs))
		assert.Equal(t, domain.StatusFallback, out.Status, origin)
		require.Len(t, out.Data, 5)
		assert.Equal(t, domain.CarrierRow{Carrier: "USPS", Volume: 120, OnTimePct: 94.8, AvgCost: 9.75}, out.Data[2])
	}
}

// TestCostAnalysis_Computed verifies mean costs and the flat savings share.
func TestCostAnalysis_Computed(t *testing.T) {
	cost := func(c float64) func(*shipdomain.Shipment) {
		return func(s *shipdomain.Shipment) { s.Cost = c }
	}
	rs := recordSet(
		shipment(cost(10), zone("1")),
		shipment(cost(20), zone("1")),
		shipment(cost(30), zone("5"), tier(refdomain.TierPriority)),
	)

	out := costAnalysis(newInput(rs))
	require.Equal(t, domain.StatusComputed, out.Status)
	assert.Equal(t, map[string]float64{"Ground": 15, "Priority": 30}, out.Data.AvgCostByService)
	assert.Equal(t, map[string]float64{"1": 15, "5": 30}, out.Data.CostPerZone)
	assert.Equal(t, 9.0, out.Data.PotentialSavings)
}

// TestCostAnalysis_Fallback verifies the flat figures when cost was never observed.
func TestCostAnalysis_Fallback(t *testing.T) {
	rs := withOrigin(recordSet(shipment()), shipdomain.OriginDefaulted, shipdomain.FieldCost)

	out := costAnalysis(newInput(rs))
	require.Equal(t, domain.StatusFallback, out.Status)
	assert.Equal(t, 1250.0, out.Data.PotentialSavings)
	assert.Equal(t, 18.25, out.Data.AvgCostByService["Priority"])
	assert.Equal(t, 7.0, out.Data.CostPerZone["1"])
	assert.Equal(t, 21.0, out.Data.CostPerZone["8"])
}

// TestAnalyzers_EmptyRecordSet verifies every analyzer degrades on an empty set.
func TestAnalyzers_EmptyRecordSet(t *testing.T) {
	in := newInput(recordSet())

	assert.True(t, tierPerformance(in).IsDegraded())
	assert.True(t, serviceMix(in).IsDegraded())
	assert.True(t, zoneDistribution(in).IsDegraded())
	assert.True(t, zoneTransit(in).IsDegraded())
	assert.True(t, exceptionHotspots(in).IsDegraded())
	assert.True(t, exceptionSummary(in).IsDegraded())
	assert.True(t, regionalPerformance(in).IsDegraded())
	assert.True(t, dayOfWeek(in).IsDegraded())
	assert.True(t, weightImpact(in).IsDegraded())
	assert.True(t, carrierPerformance(in).IsDegraded())
	assert.True(t, costAnalysis(in).IsDegraded())

	assert.Equal(t, []domain.HotspotRow{{Zip: domain.NoData}}, exceptionHotspots(in).Data)
	assert.Equal(t, 0.0, exceptionSummary(in).Data.ExceptionRate)
}
