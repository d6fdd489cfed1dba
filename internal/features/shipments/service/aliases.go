package service

import (
	"strings"
	"unicode"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"
)

// fieldAliases is the header alias table. Resolution scans it in declaration
// order, so both the field order and the alias order within a field decide
// which field an ambiguous header resolves to.
var fieldAliases = []struct {
	field   domain.Field
	aliases []string
}{
	{domain.FieldTier, []string{
		"service", "service_type", "xparcel_type", "service_level", "shipment_service",
		"carrier_service", "shipping_service", "shipping_method", "method", "xparcel",
	}},
	{domain.FieldWeight, []string{
		"weight", "weight_oz", "weight_in_ounces", "weight_lbs", "package_weight",
		"shipment_weight", "actual_weight",
	}},
	{domain.FieldZip, []string{
		"dest_zip", "destination_zip", "to_zip", "ship_to_zip", "recipient_zip",
		"consignee_zip", "delivery_zip", "zip", "postal_code", "zip_code",
	}},
	{domain.FieldState, []string{
		"dest_state", "destination_state", "to_state", "ship_to_state", "recipient_state",
		"consignee_state", "delivery_state", "state",
	}},
	{domain.FieldCity, []string{
		"dest_city", "destination_city", "to_city", "ship_to_city", "recipient_city",
		"delivery_city", "city",
	}},
	{domain.FieldZone, []string{
		"zone", "shipping_zone", "delivery_zone", "calculated_zone",
	}},
	{domain.FieldDaysInTransit, []string{
		"transit_days", "days_in_transit", "delivery_days", "actual_transit_days",
		"business_days", "transit_time",
	}},
	{domain.FieldCost, []string{
		"cost", "shipping_cost", "total_cost", "price", "charge", "rate", "amount",
	}},
	{domain.FieldRequestDate, []string{
		"ship_date", "shipped_date", "date_shipped", "pickup_date", "manifest_date",
		"request_date",
	}},
	{domain.FieldDeliveryDate, []string{
		"delivery_date", "delivered_date", "actual_delivery_date", "date_delivered",
	}},
	{domain.FieldSLAStatus, []string{
		"status", "delivery_status", "sla_status", "performance", "on_time_status",
	}},
	{domain.FieldCustomerName, []string{
		"customer", "customer_name", "client", "client_name", "account", "account_name",
	}},
	{domain.FieldTrackingNumber, []string{
		"tracking", "tracking_number", "tracking_id", "package_id", "barcode",
	}},
	{domain.FieldCarrier, []string{
		"carrier", "carrier_name", "delivery_carrier", "final_mile_carrier", "shipping_carrier",
	}},
}

// resolveHeader maps a match key to a canonical field: exact alias first,
// then substring containment in either direction. First match wins.
func resolveHeader(key string) (domain.Field, bool) {
	if key == "" {
		return "", false
	}
	for _, entry := range fieldAliases {
		for _, alias := range entry.aliases {
			if key == alias {
				return entry.field, true
			}
		}
	}
	for _, entry := range fieldAliases {
		for _, alias := range entry.aliases {
			if strings.Contains(key, alias) || strings.Contains(alias, key) {
				return entry.field, true
			}
		}
	}
	return "", false
}

// sanitizeHeader replaces whitespace variants (NBSP, narrow NBSP, tabs) with a
// plain space, removes invisible format characters (zero-width space, BOM),
// collapses repeated spaces and trims.
func sanitizeHeader(h string) string {
	var b strings.Builder
	b.Grow(len(h))
	for _, r := range h {
		switch {
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case unicode.Is(unicode.Cf, r):
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// matchKey turns a sanitized header into the form compared against aliases.
func matchKey(sanitized string) string {
	return strings.ReplaceAll(strings.ToLower(sanitized), " ", "_")
}

// isPlaceholderHeader reports headers that name no real column.
func isPlaceholderHeader(sanitized string) bool {
	return sanitized == "" || strings.HasPrefix(strings.ToLower(sanitized), "unnamed")
}

type weightUnit int

const (
	unitUnknown weightUnit = iota
	unitPounds
	unitOunces
)

// headerWeightUnit reads a unit hint from the tokens of a weight header.
func headerWeightUnit(key string) weightUnit {
	tokens := strings.FieldsFunc(key, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		switch tok {
		case "oz", "ounce", "ounces":
			return unitOunces
		case "lb", "lbs", "pound", "pounds":
			return unitPounds
		}
	}
	return unitUnknown
}
