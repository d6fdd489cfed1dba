package domain

import "strconv"

// DefaultZone is assigned when a record's zone is missing or out of range.
const DefaultZone = "4"

// Zone is one distance band of the zone reference table.
type Zone struct {
	// Key is the zone identifier, "1" through "8".
	Key string `json:"key"`
	// Distance is the mileage range label.
	Distance string `json:"distance"`
	// TypicalTransitDays is the base transit time for the zone.
	TypicalTransitDays int `json:"typical_transit_days"`
	// CostIndex multiplies the base shipping cost.
	CostIndex float64 `json:"cost_index"`
}

// Number returns the zone key as an integer.
func (z Zone) Number() int {
	n, _ := strconv.Atoi(z.Key)
	return n
}

// ZoneKey formats a zone number as a table key.
func ZoneKey(n int) string {
	return strconv.Itoa(n)
}

// IsZoneKey reports whether key names one of the eight zones.
func IsZoneKey(key string) bool {
	n, err := strconv.Atoi(key)
	return err == nil && n >= 1 && n <= 8 && strconv.Itoa(n) == key
}
