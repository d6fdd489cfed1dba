package service

import (
	"sort"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
)

// sheet is a header row plus data rows ready to be written to a worksheet.
type sheet struct {
	name    string
	headers []string
	rows    [][]any
}

func metricSheet(name string, metrics []metric) sheet {
	s := sheet{name: name, headers: []string{"Metric", "Value"}}
	for _, m := range metrics {
		s.rows = append(s.rows, []any{m.name, m.value})
	}
	return s
}

func rawDataSheet(a *domain.Analysis) sheet {
	s := sheet{name: "Raw Data"}
	if a.RecordSet == nil {
		return s
	}
	table := a.RecordSet.Table()
	s.headers = table.Headers
	s.rows = make([][]any, len(table.Rows))
	for i, row := range table.Rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		s.rows[i] = cells
	}
	return s
}

// viewSheets renders one sheet per analytical view. Scalar views are
// flattened to Metric,Value rows.
func viewSheets(res domain.Results) []sheet {
	tiers := sheet{name: "Tier Performance", headers: []string{"Xparcel Type", "Shipments", "Avg Days", "Median", "P95", "On-Time %"}}
	for _, r := range res.TierPerformance.Data {
		tiers.rows = append(tiers.rows, []any{r.Tier, r.Shipments, r.AvgDays, r.Median, r.P95, r.OnTimePct})
	}

	mix := sheet{name: "Service Mix", headers: []string{"Service", "Shipments", "Percentage"}}
	for _, r := range res.ServiceMix.Data {
		mix.rows = append(mix.rows, []any{r.Service, r.Shipments, r.Percentage})
	}

	zones := sheet{name: "Zone Distribution", headers: []string{"Zone", "Shipments", "Percentage"}}
	for _, r := range res.ZoneDistribution.Data {
		zones.rows = append(zones.rows, []any{r.Zone, r.Shipments, r.Percentage})
	}

	transit := sheet{name: "Zone Transit", headers: []string{"Zone", "Avg Transit Days"}}
	for _, r := range res.ZoneTransit.Data {
		transit.rows = append(transit.rows, []any{r.Zone, r.AvgTransitDays})
	}

	hotspots := sheet{name: "Exception Hotspots", headers: []string{"ZIP", "SLA Misses"}}
	for _, r := range res.ExceptionHotspots.Data {
		hotspots.rows = append(hotspots.rows, []any{r.Zip, r.SLAMisses})
	}

	ex := res.ExceptionSummary.Data
	exceptions := sheet{name: "Exception Summary", headers: []string{"Metric", "Value"}, rows: [][]any{
		{"Total Exceptions", ex.TotalExceptions},
		{"Exception Rate", ex.ExceptionRate},
		{"Avg Delay", ex.AvgDelay},
	}}

	regions := sheet{name: "Regional Performance", headers: []string{"State", "Volume", "Avg Transit", "On-Time %"}}
	for _, r := range res.RegionalPerformance.Data {
		regions.rows = append(regions.rows, []any{r.State, r.Volume, r.AvgTransit, r.OnTimePct})
	}

	days := sheet{name: "Day of Week", headers: []string{"Day", "Volume", "Avg Transit", "On-Time %", "Volume %"}}
	for _, r := range res.DayOfWeek.Data {
		days.rows = append(days.rows, []any{r.Day, r.Volume, r.AvgTransit, r.OnTimePct, r.VolumePct})
	}

	weights := sheet{name: "Weight Impact", headers: []string{"Weight Bucket", "Volume", "Avg Transit", "On-Time %"}}
	for _, r := range res.WeightImpact.Data {
		weights.rows = append(weights.rows, []any{r.Bucket, r.Volume, r.AvgTransit, r.OnTimePct})
	}

	carriers := sheet{name: "Carrier Performance", headers: []string{"Carrier", "Volume", "On-Time %", "Avg Cost"}}
	for _, r := range res.CarrierPerformance.Data {
		carriers.rows = append(carriers.rows, []any{r.Carrier, r.Volume, r.OnTimePct, r.AvgCost})
	}

	cost := res.CostAnalysis.Data
	costs := sheet{name: "Cost Analysis", headers: []string{"Metric", "Value"}}
	for _, k := range sortedKeys(cost.AvgCostByService) {
		costs.rows = append(costs.rows, []any{"Avg Cost " + k, cost.AvgCostByService[k]})
	}
	for _, k := range sortedKeys(cost.CostPerZone) {
		costs.rows = append(costs.rows, []any{"Cost per Zone " + k, cost.CostPerZone[k]})
	}
	costs.rows = append(costs.rows, []any{"Potential Savings", cost.PotentialSavings})

	routing := sheet{name: "Routing", headers: []string{"Issue", "Impact", "Recommendation", "Savings"}}
	for _, r := range res.RoutingOptimization.Data.Recommendations {
		routing.rows = append(routing.rows, []any{r.Issue, r.Impact, r.Recommendation, r.Savings})
	}

	return []sheet{tiers, mix, zones, transit, hotspots, exceptions, regions, days, weights, carriers, costs, routing}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
