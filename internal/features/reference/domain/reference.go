// Package domain holds the static shipping reference data: the zone table,
// the carrier directory and the service tier policy.
package domain

import (
	"slices"
	"sort"
)

// unranked is the sort index of carriers missing from a tier's preference order.
const unranked = 999

// Reference is the read-only reference data set.
// All accessors return copies so callers cannot mutate the shared tables.
type Reference struct {
	zones    []Zone
	carriers []Carrier
	tiers    map[Tier]TierPolicy
}

// Default builds the reference tables used by the service.
func Default() *Reference {
	return &Reference{
		zones: []Zone{
			{Key: "1", Distance: "0-50 miles", TypicalTransitDays: 1, CostIndex: 1.0},
			{Key: "2", Distance: "51-150 miles", TypicalTransitDays: 2, CostIndex: 1.15},
			{Key: "3", Distance: "151-300 miles", TypicalTransitDays: 2, CostIndex: 1.25},
			{Key: "4", Distance: "301-600 miles", TypicalTransitDays: 3, CostIndex: 1.35},
			{Key: "5", Distance: "601-1000 miles", TypicalTransitDays: 4, CostIndex: 1.5},
			{Key: "6", Distance: "1001-1400 miles", TypicalTransitDays: 5, CostIndex: 1.65},
			{Key: "7", Distance: "1401-1800 miles", TypicalTransitDays: 6, CostIndex: 1.8},
			{Key: "8", Distance: "1801+ miles", TypicalTransitDays: 7, CostIndex: 2.0},
		},
		carriers: []Carrier{
			{Name: "UPS", Kind: CarrierNational, Zones: allZones(), Strength: "reliability", CostIndex: 1.2},
			{Name: "FedEx", Kind: CarrierNational, Zones: allZones(), Strength: "speed", CostIndex: 1.25},
			{Name: "USPS", Kind: CarrierNational, Zones: allZones(), Strength: "cost", CostIndex: 0.85},
			{
				Name: "OnTrac", Kind: CarrierRegional, Zones: []int{1, 2, 3, 4},
				States:   []string{"CA", "NV", "AZ", "OR", "WA", "UT", "CO", "ID"},
				Strength: "regional speed", CostIndex: RegionalCostIndex,
			},
			{
				Name: "LaserShip", Kind: CarrierRegional, Zones: []int{1, 2, 3, 4},
				States:   []string{"NY", "NJ", "PA", "MD", "VA", "DC", "DE", "CT", "MA", "RI"},
				Strength: "last-mile density", CostIndex: RegionalCostIndex,
			},
			{
				Name: "LSO", Kind: CarrierRegional, Zones: []int{1, 2, 3, 4, 5},
				States:   []string{"TX", "OK", "LA", "AR", "NM"},
				Strength: "Texas coverage", CostIndex: RegionalCostIndex,
			},
			{
				Name: "CDL", Kind: CarrierRegional, Zones: []int{1, 2, 3},
				States:   []string{"IL", "WI", "IN", "MI", "OH"},
				Strength: "midwest efficiency", CostIndex: RegionalCostIndex,
			},
		},
		tiers: map[Tier]TierPolicy{
			TierPriority: {
				Tier:            TierPriority,
				SLADays:         3,
				Zones:           []int{1, 2, 3, 4, 5},
				CarrierPriority: []string{"FedEx", "UPS", "OnTrac", "LaserShip"},
				CostPremium:     1.5,
				Features:        []string{"Signature required", "Real-time tracking", "Money-back guarantee"},
			},
			TierExpedited: {
				Tier:            TierExpedited,
				SLADays:         5,
				Zones:           []int{1, 2, 3, 4, 5, 6, 7},
				CarrierPriority: []string{"UPS", "FedEx", "LSO", "CDL", "USPS"},
				CostPremium:     1.2,
				Features:        []string{"Standard tracking", "Residential delivery", "Insurance included"},
			},
			TierGround: {
				Tier:            TierGround,
				SLADays:         8,
				Zones:           allZones(),
				CarrierPriority: []string{"USPS", "OnTrac", "LaserShip", "CDL", "LSO", "UPS"},
				CostPremium:     1.0,
				Features:        []string{"Economy service", "Basic tracking", "Best value"},
			},
		},
	}
}

func allZones() []int {
	return []int{1, 2, 3, 4, 5, 6, 7, 8}
}

// Zones returns the zone table ordered by zone number.
func (r *Reference) Zones() []Zone {
	return slices.Clone(r.zones)
}

// Zone looks up a zone by key.
func (r *Reference) Zone(key string) (Zone, bool) {
	for _, z := range r.zones {
		if z.Key == key {
			return z, true
		}
	}
	return Zone{}, false
}

// ZoneCostIndex returns the zone's cost multiplier, or 1.0 for an unknown zone.
func (r *Reference) ZoneCostIndex(key string) float64 {
	if z, ok := r.Zone(key); ok {
		return z.CostIndex
	}
	return 1.0
}

// Carriers returns the carrier directory, national carriers first.
func (r *Reference) Carriers() []Carrier {
	out := make([]Carrier, len(r.carriers))
	for i, c := range r.carriers {
		c.Zones = slices.Clone(c.Zones)
		c.States = slices.Clone(c.States)
		out[i] = c
	}
	return out
}

// TierPolicy looks up the policy of a tier.
func (r *Reference) TierPolicy(t Tier) (TierPolicy, bool) {
	p, ok := r.tiers[t]
	if !ok {
		return TierPolicy{}, false
	}
	p.Zones = slices.Clone(p.Zones)
	p.CarrierPriority = slices.Clone(p.CarrierPriority)
	p.Features = slices.Clone(p.Features)
	return p, true
}

// TierPolicies returns every tier policy in display order.
func (r *Reference) TierPolicies() []TierPolicy {
	out := make([]TierPolicy, 0, len(r.tiers))
	for _, t := range Tiers() {
		if p, ok := r.TierPolicy(t); ok {
			out = append(out, p)
		}
	}
	return out
}

// SLAWindow returns the SLA window of a tier, or DefaultSLAWindow when it has no policy.
func (r *Reference) SLAWindow(t Tier) int {
	if p, ok := r.tiers[t]; ok {
		return p.SLADays
	}
	return DefaultSLAWindow
}

// CostPremium returns the tier's cost premium, or 1.0 when it has no policy.
func (r *Reference) CostPremium(t Tier) float64 {
	if p, ok := r.tiers[t]; ok {
		return p.CostPremium
	}
	return 1.0
}

// SelectCarriers ranks the carriers able to serve a destination at the given tier.
//
// National carriers covering the zone are collected first, then regional carriers
// covering both zone and state. Candidates are stable-sorted by their index in the
// tier's preference order; carriers not in that order keep discovery order after
// every ranked carrier.
func (r *Reference) SelectCarriers(state string, zone int, tier Tier) []CarrierOption {
	policy := r.tiers[tier]

	var candidates []CarrierOption
	for _, kind := range []CarrierKind{CarrierNational, CarrierRegional} {
		for _, c := range r.carriers {
			if c.Kind != kind || !c.Serves(state, zone) {
				continue
			}
			cost := c.CostIndex
			if kind == CarrierRegional {
				cost = RegionalCostIndex
			}
			rank := policy.priorityIndex(c.Name)
			candidates = append(candidates, CarrierOption{
				Name:      c.Name,
				Kind:      c.Kind,
				Strength:  c.Strength,
				CostIndex: cost,
				Rank:      rank,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rank < candidates[j].Rank
	})

	for i := range candidates {
		if candidates[i].Rank == unranked {
			candidates[i].Rank = -1
		}
	}
	return candidates
}
