package domain

// Tier is the service speed class (xparcel type) of a shipment.
type Tier string

const (
	TierPriority  Tier = "Priority"
	TierExpedited Tier = "Expedited"
	TierGround    Tier = "Ground"
)

// DefaultSLAWindow applies when a record's tier has no policy.
const DefaultSLAWindow = 8

// Tiers returns the tiers in display order.
func Tiers() []Tier {
	return []Tier{TierPriority, TierExpedited, TierGround}
}

// ParseTier reports whether s is exactly one of the three tier names.
func ParseTier(s string) (Tier, bool) {
	switch t := Tier(s); t {
	case TierPriority, TierExpedited, TierGround:
		return t, true
	}
	return "", false
}

// Rank orders tiers Priority, Expedited, Ground; anything else sorts last.
func (t Tier) Rank() int {
	switch t {
	case TierPriority:
		return 0
	case TierExpedited:
		return 1
	case TierGround:
		return 2
	}
	return 3
}

// TierPolicy is the service-level contract of one tier.
type TierPolicy struct {
	// Tier is the tier this policy describes.
	Tier Tier `json:"tier"`
	// SLADays is the maximum transit days before a shipment counts as a miss.
	SLADays int `json:"sla_days"`
	// Zones lists the eligible zone numbers.
	Zones []int `json:"zones"`
	// CarrierPriority is the preference order used to rank carrier candidates.
	CarrierPriority []string `json:"carrier_priority"`
	// CostPremium multiplies the base shipping cost.
	CostPremium float64 `json:"cost_premium"`
	// Features is the marketing feature list of the tier.
	Features []string `json:"features"`
}

// ServesZone reports whether zone is eligible for the tier.
func (p TierPolicy) ServesZone(zone int) bool {
	return containsInt(p.Zones, zone)
}

// priorityIndex returns the carrier's rank within the preference order, or unranked.
func (p TierPolicy) priorityIndex(carrier string) int {
	for i, name := range p.CarrierPriority {
		if name == carrier {
			return i
		}
	}
	return unranked
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
