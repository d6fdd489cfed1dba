package service

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
)

// metric is one Metric,Value pair of the report summary.
type metric struct {
	name  string
	value string
}

// headline returns the summary metrics shared by the workbook and the CSV.
// On-time and transit figures are taken over the records, so they stay
// meaningful when the tier view is degraded.
func headline(a *domain.Analysis) []metric {
	res := a.Report.Results

	var total, met, days, withDays int
	if a.RecordSet != nil {
		total = a.RecordSet.Len()
		for i := range a.RecordSet.Records {
			s := &a.RecordSet.Records[i]
			if s.SLAStatus.MetSLA() {
				met++
			}
			if s.DaysInTransit != nil {
				days += *s.DaysInTransit
				withDays++
			}
		}
	}

	return []metric{
		{"Total Shipments", strconv.Itoa(a.Report.TotalShipments)},
		{"On-Time %", fmt.Sprintf("%.1f", domain.SafePercentage(float64(met), float64(total)))},
		{"Exception Rate", fmt.Sprintf("%.1f", res.ExceptionSummary.Data.ExceptionRate)},
		{"Avg Transit Days", fmt.Sprintf("%.1f", domain.SafeRatio(float64(days), float64(withDays)))},
		{"Potential Savings", fmt.Sprintf("%.2f", res.CostAnalysis.Data.PotentialSavings)},
		{"Routing Savings", fmt.Sprintf("%.2f", res.RoutingOptimization.Data.PotentialImprovement)},
	}
}

// statuses lists each analyzer's outcome status in name order.
func statuses(res domain.Results) []metric {
	all := res.Statuses()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]metric, len(names))
	for i, name := range names {
		out[i] = metric{name + " status", string(all[name])}
	}
	return out
}
