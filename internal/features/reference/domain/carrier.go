package domain

import "strings"

// CarrierKind distinguishes broad-coverage from regional carriers.
type CarrierKind string

const (
	// CarrierNational serves every zone in every state.
	CarrierNational CarrierKind = "national"
	// CarrierRegional serves a subset of zones in a subset of states.
	CarrierRegional CarrierKind = "regional"
)

// RegionalCostIndex is the discounted multiplier applied to every regional carrier.
const RegionalCostIndex = 0.9

// Carrier is one entry of the carrier directory.
type Carrier struct {
	// Name is the carrier's display name.
	Name string `json:"name"`
	// Kind is national or regional.
	Kind CarrierKind `json:"kind"`
	// Zones lists the zone numbers the carrier serves.
	Zones []int `json:"zones"`
	// States lists the served states; empty means all states.
	States []string `json:"states,omitempty"`
	// Strength is the carrier's positioning tag.
	Strength string `json:"strength"`
	// CostIndex is the carrier's cost multiplier.
	CostIndex float64 `json:"cost_index"`
}

// Serves reports whether the carrier covers the state and zone.
func (c Carrier) Serves(state string, zone int) bool {
	if !containsInt(c.Zones, zone) {
		return false
	}
	if len(c.States) == 0 {
		return true
	}
	state = strings.ToUpper(strings.TrimSpace(state))
	for _, s := range c.States {
		if s == state {
			return true
		}
	}
	return false
}

// CarrierOption is one ranked candidate returned by carrier selection.
type CarrierOption struct {
	// Name is the carrier's display name.
	Name string `json:"name"`
	// Kind is national or regional.
	Kind CarrierKind `json:"kind"`
	// Strength is the carrier's positioning tag.
	Strength string `json:"strength"`
	// CostIndex is the effective multiplier after the regional discount.
	CostIndex float64 `json:"cost_index"`
	// Rank is the position in the tier's preference order, or -1 when unranked.
	Rank int `json:"rank"`
}
