package service

import (
	"fmt"
	"time"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
	refdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"
	shipdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"
)

const (
	overServiceSavingsPerShipment = 3.50
	regionalSavingsPerShipment    = 1.25
	highVolumeThreshold           = 50
	fridayShareThreshold          = 0.15
)

// States watched by the high-volume rule, in reporting order.
var watchedStates = []string{"CA", "TX", "NY", "FL"}

var noIssues = domain.Recommendation{
	Issue:          "No major issues detected",
	Impact:         "System operating efficiently",
	Recommendation: "Continue monitoring for optimization opportunities",
	Savings:        "N/A",
}

func dollars(amount float64) (string, *float64) {
	amount = domain.Round(amount, 2)
	return fmt.Sprintf("$%.2f", amount), &amount
}

// routingOptimization evaluates the routing rules against the record set and
// the analyzer results. It emits a single placeholder when no rule fires.
func routingOptimization(in analysisInput, results *domain.Results) domain.Outcome[domain.RoutingOptimization] {
	if reason := in.missing(); reason != "" {
		return domain.Degraded(emptyRoutingOptimization(), reason)
	}

	var recs []domain.Recommendation
	if rec, ok := overServicing(in); ok {
		recs = append(recs, rec)
	}
	recs = append(recs, highVolumeStates(in)...)
	if rec, ok := fridayCutoff(in, results.DayOfWeek); ok {
		recs = append(recs, rec)
	}
	if len(recs) == 0 {
		recs = append(recs, noIssues)
	}

	total := 0.0
	for _, r := range recs {
		if r.SavingsUSD != nil {
			total += *r.SavingsUSD
		}
	}

	return domain.Computed(domain.RoutingOptimization{
		Recommendations:      recs,
		PotentialImprovement: domain.Round(total, 2),
	})
}

// overServicing flags zone 1-3 shipments sent on a premium tier.
func overServicing(in analysisInput) (domain.Recommendation, bool) {
	if in.missing(shipdomain.FieldZone, shipdomain.FieldTier) != "" {
		return domain.Recommendation{}, false
	}

	count := 0
	for _, r := range in.rs.Records {
		short := r.Zone == "1" || r.Zone == "2" || r.Zone == "3"
		premium := r.Tier == refdomain.TierExpedited || r.Tier == refdomain.TierPriority
		if short && premium {
			count++
		}
	}
	if count == 0 {
		return domain.Recommendation{}, false
	}

	pct := domain.SafePercentage(float64(count), float64(in.rs.Len()))
	text, amount := dollars(float64(count) * overServiceSavingsPerShipment)
	return domain.Recommendation{
		Issue:          "Over-servicing detected",
		Impact:         fmt.Sprintf("%.1f%% of short-zone shipments using premium service", pct),
		Recommendation: "Downgrade zones 1-3 to Ground service where SLA permits",
		Savings:        text,
		SavingsUSD:     amount,
	}, true
}

// highVolumeStates suggests a regional carrier for each watched state with
// more than highVolumeThreshold shipments.
func highVolumeStates(in analysisInput) []domain.Recommendation {
	if in.missing(shipdomain.FieldState) != "" {
		return nil
	}

	counts := make(map[string]int)
	zones := make(map[string]map[string]int)
	for _, r := range in.rs.Records {
		counts[r.State]++
		if zones[r.State] == nil {
			zones[r.State] = make(map[string]int)
		}
		zones[r.State][r.Zone]++
	}

	var recs []domain.Recommendation
	for _, state := range watchedStates {
		n := counts[state]
		if n <= highVolumeThreshold {
			continue
		}

		text := fmt.Sprintf("Consider regional carrier for %s deliveries", state)
		if carrier := regionalCarrier(in.ref, state, commonZone(zones[state])); carrier != "" {
			text += fmt.Sprintf(" (%s)", carrier)
		}
		savings, amount := dollars(float64(n) * regionalSavingsPerShipment)
		recs = append(recs, domain.Recommendation{
			Issue:          fmt.Sprintf("High volume to %s", state),
			Impact:         fmt.Sprintf("%d shipments", n),
			Recommendation: text,
			Savings:        savings,
			SavingsUSD:     amount,
		})
	}
	return recs
}

// commonZone returns the most frequent valid zone, the lowest on ties, or the default zone.
func commonZone(counts map[string]int) int {
	best, bestCount := 0, 0
	for key, n := range counts {
		if !refdomain.IsZoneKey(key) {
			continue
		}
		z := refdomain.Zone{Key: key}.Number()
		if n > bestCount || (n == bestCount && z < best) {
			best, bestCount = z, n
		}
	}
	if best == 0 {
		return refdomain.Zone{Key: refdomain.DefaultZone}.Number()
	}
	return best
}

// regionalCarrier names the best-ranked regional carrier for Ground service, or "".
func regionalCarrier(ref *refdomain.Reference, state string, zone int) string {
	for _, opt := range ref.SelectCarriers(state, zone, refdomain.TierGround) {
		if opt.Kind == refdomain.CarrierRegional {
			return opt.Name
		}
	}
	return ""
}

// fridayCutoff fires when Friday requests exceed fridayShareThreshold of all records.
// It reads the day-of-week view when computed and counts request dates otherwise.
func fridayCutoff(in analysisInput, dow domain.Outcome[[]domain.DayRow]) (domain.Recommendation, bool) {
	if in.missing(shipdomain.FieldRequestDate) != "" {
		return domain.Recommendation{}, false
	}

	fridays := 0
	if dow.Status == domain.StatusComputed {
		for _, row := range dow.Data {
			if row.Day == time.Friday.String() {
				fridays = row.Volume
			}
		}
	} else {
		for _, r := range in.rs.Records {
			if r.RequestDate != nil && r.RequestDate.Weekday() == time.Friday {
				fridays++
			}
		}
	}

	if float64(fridays) <= fridayShareThreshold*float64(in.rs.Len()) {
		return domain.Recommendation{}, false
	}
	return domain.Recommendation{
		Issue:          "High Friday volume",
		Impact:         fmt.Sprintf("%d Friday shipments", fridays),
		Recommendation: "Implement 2 PM Friday cutoff with auto-upgrade for zones 7-8",
		Savings:        "Reduced SLA misses",
	}, true
}
