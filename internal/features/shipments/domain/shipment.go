package domain

import (
	"time"

	refdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"
)

// SLAStatus is the delivery outcome against the tier's SLA window.
type SLAStatus string

const (
	SLAOnTime  SLAStatus = "On-Time"
	SLAEarly   SLAStatus = "Early"
	SLAMiss    SLAStatus = "SLA Miss"
	SLAUnknown SLAStatus = "Unknown"
)

// MetSLA reports whether the status counts toward on-time performance.
func (s SLAStatus) MetSLA() bool {
	return s == SLAOnTime || s == SLAEarly
}

// MaxTransitDays caps days in transit after normalization.
const MaxTransitDays = 30

// Static defaults applied to missing canonical values.
const (
	DefaultCustomer = "Unknown Customer"
	DefaultTracking = "N/A"
	DefaultState    = "Unknown"
	DefaultCity     = "Unknown"
	DefaultZip      = "00000"
	DefaultCarrier  = "Unknown"
	DefaultWeight   = 1.0
	DefaultCost     = 0.0
	DefaultTier     = refdomain.TierGround
)

// Shipment is one canonical shipment record.
type Shipment struct {
	// TrackingNumber is an opaque identifier; duplicates are allowed.
	TrackingNumber string `json:"tracking_number"`
	// CustomerName is the shipper's customer.
	CustomerName string `json:"customer_name"`
	// RequestDate is when the shipment originated.
	RequestDate *time.Time `json:"request_date,omitempty"`
	// DeliveryDate is the actual delivery time, if delivered.
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	// DaysInTransit is in [0, MaxTransitDays] when known.
	DaysInTransit *int `json:"days_in_transit,omitempty"`
	// Zone is a zone key "1" through "8".
	Zone string `json:"calculated_zone"`
	// State is the destination state.
	State string `json:"destination_state"`
	// Zip is a five-character destination ZIP.
	Zip string `json:"destination_zip"`
	// City is the destination city.
	City string `json:"destination_city"`
	// Weight is in pounds.
	Weight float64 `json:"weight"`
	// Cost is the shipping charge, never negative.
	Cost float64 `json:"cost"`
	// Tier is always Priority, Expedited or Ground.
	Tier refdomain.Tier `json:"xparcel_type"`
	// SLAStatus is the delivery outcome.
	SLAStatus SLAStatus `json:"sla_status"`
	// Carrier is the delivering carrier.
	Carrier string `json:"carrier"`
}

// ClampDays bounds a transit day count to [0, MaxTransitDays].
func ClampDays(d int) int {
	if d < 0 {
		return 0
	}
	if d > MaxTransitDays {
		return MaxTransitDays
	}
	return d
}
