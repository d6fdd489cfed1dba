package service

import (
	"testing"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
	refdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"
	shipdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requested(d string) func(*shipdomain.Shipment) {
	return func(s *shipdomain.Shipment) { s.RequestDate = date(d) }
}

func routeOnly(rs *shipdomain.RecordSet) domain.Outcome[domain.RoutingOptimization] {
	return routingOptimization(newInput(rs), &domain.Results{})
}

// TestRouting_OverServicing verifies the premium short-zone rule and its savings.
func TestRouting_OverServicing(t *testing.T) {
	records := repeat(6, shipment())
	records = append(records, repeat(4, shipment(zone("2"), tier(refdomain.TierPriority)))...)

	out := routeOnly(recordSet(records...))
	require.Equal(t, domain.StatusComputed, out.Status)
	require.Len(t, out.Data.Recommendations, 1)

	rec := out.Data.Recommendations[0]
	assert.Equal(t, "Over-servicing detected", rec.Issue)
	assert.Equal(t, "40.0% of short-zone shipments using premium service", rec.Impact)
	assert.Equal(t, "Downgrade zones 1-3 to Ground service where SLA permits", rec.Recommendation)
	assert.Equal(t, "$14.00", rec.Savings)
	require.NotNil(t, rec.SavingsUSD)
	assert.Equal(t, 14.0, *rec.SavingsUSD)
	assert.Equal(t, 14.0, out.Data.PotentialImprovement)
}

// TestRouting_HighVolumeState verifies the watch-list threshold and regional carrier naming.
func TestRouting_HighVolumeState(t *testing.T) {
	records := repeat(51, shipment(state("CA"), zone("4")))
	records = append(records, repeat(50, shipment(state("TX")))...)
	records = append(records, repeat(60, shipment(state("IL")))...)

	out := routeOnly(recordSet(records...))
	require.Len(t, out.Data.Recommendations, 1)

	rec := out.Data.Recommendations[0]
	assert.Equal(t, "High volume to CA", rec.Issue)
	assert.Equal(t, "51 shipments", rec.Impact)
	assert.Equal(t, "Consider regional carrier for CA deliveries (OnTrac)", rec.Recommendation)
	assert.Equal(t, "$63.75", rec.Savings)
	assert.Equal(t, 63.75, out.Data.PotentialImprovement)
}

// TestRouting_HighVolumeState_NoRegional verifies the text when no regional carrier serves the zone.
func TestRouting_HighVolumeState_NoRegional(t *testing.T) {
	out := routeOnly(recordSet(repeat(55, shipment(state("FL"), zone("7")))...))

	require.Len(t, out.Data.Recommendations, 1)
	assert.Equal(t, "Consider regional carrier for FL deliveries", out.Data.Recommendations[0].Recommendation)
}

// TestRouting_FridayCutoff verifies the share threshold is exclusive.
func TestRouting_FridayCutoff(t *testing.T) {
	build := func(fridays int) *shipdomain.RecordSet {
		records := repeat(20-fridays, shipment(requested("2024-01-02")))
		records = append(records, repeat(fridays, shipment(requested("2024-01-05")))...)
		return recordSet(records...)
	}

	out := routeOnly(build(3))
	assert.Equal(t, noIssues, out.Data.Recommendations[0])

	out = routeOnly(build(4))
	require.Len(t, out.Data.Recommendations, 1)
	rec := out.Data.Recommendations[0]
	assert.Equal(t, "High Friday volume", rec.Issue)
	assert.Equal(t, "4 Friday shipments", rec.Impact)
	assert.Equal(t, "Implement 2 PM Friday cutoff with auto-upgrade for zones 7-8", rec.Recommendation)
	assert.Equal(t, "Reduced SLA misses", rec.Savings)
	assert.Nil(t, rec.SavingsUSD)
	assert.Equal(t, 0.0, out.Data.PotentialImprovement)
}

// TestRouting_FridayCutoff_UsesDayOfWeekView verifies the computed weekday view is read.
func TestRouting_FridayCutoff_UsesDayOfWeekView(t *testing.T) {
	rs := recordSet(repeat(10, shipment())...)
	results := &domain.Results{
		DayOfWeek: domain.Computed([]domain.DayRow{{Day: "Friday", Volume: 2}}),
	}

	out := routingOptimization(newInput(rs), results)
	assert.Equal(t, "2 Friday shipments", out.Data.Recommendations[0].Impact)
}

// TestRouting_TotalSumsDollarSavings verifies non-dollar savings are excluded from the total.
func TestRouting_TotalSumsDollarSavings(t *testing.T) {
	var records []shipdomain.Shipment
	records = append(records, repeat(10, shipment(zone("1"), tier(refdomain.TierExpedited), requested("2024-01-05")))...)
	records = append(records, repeat(60, shipment(state("NY"), zone("2")))...)

	out := routeOnly(recordSet(records...))
	require.Len(t, out.Data.Recommendations, 2)
	assert.Equal(t, "Over-servicing detected", out.Data.Recommendations[0].Issue)
	assert.Equal(t, "Consider regional carrier for NY deliveries (LaserShip)", out.Data.Recommendations[1].Recommendation)
	assert.Equal(t, 35.0+75.0, out.Data.PotentialImprovement)
}

// TestRouting_NoIssues verifies the single placeholder recommendation.
func TestRouting_NoIssues(t *testing.T) {
	out := routeOnly(recordSet(shipment(), shipment()))

	require.Equal(t, domain.StatusComputed, out.Status)
	assert.Equal(t, []domain.Recommendation{noIssues}, out.Data.Recommendations)
	assert.Equal(t, 0.0, out.Data.PotentialImprovement)
}

// TestCommonZone verifies the most frequent zone wins and ties pick the lowest.
func TestCommonZone(t *testing.T) {
	assert.Equal(t, 3, commonZone(map[string]int{"3": 4, "5": 2}))
	assert.Equal(t, 2, commonZone(map[string]int{"6": 3, "2": 3}))
	assert.Equal(t, 4, commonZone(map[string]int{"Unknown": 9}))
	assert.Equal(t, 4, commonZone(nil))
}
