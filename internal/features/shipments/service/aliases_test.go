package service

import (
	"testing"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"

	"github.com/stretchr/testify/assert"
)

// TestResolveHeader pins the resolution order of the alias table.
func TestResolveHeader(t *testing.T) {
	tests := []struct {
		key   string
		field domain.Field
		ok    bool
	}{
		{"xparcel_type", domain.FieldTier, true},
		{"weight_lbs", domain.FieldWeight, true},
		{"destination_zip", domain.FieldZip, true},
		{"calculated_zone", domain.FieldZone, true},
		{"days_in_transit", domain.FieldDaysInTransit, true},
		{"request_date", domain.FieldRequestDate, true},
		{"delivery_date", domain.FieldDeliveryDate, true},
		{"sla_status", domain.FieldSLAStatus, true},
		{"customer_name", domain.FieldCustomerName, true},
		{"tracking_number", domain.FieldTrackingNumber, true},
		{"carrier", domain.FieldCarrier, true},
		// Substring fallbacks.
		{"carrier_service_code", domain.FieldTier, true},
		{"gross_weight_kg", domain.FieldWeight, true},
		{"zone_number", domain.FieldZone, true},
		{"ship", domain.FieldTier, true}, // inside "shipment_service"
		// Exact matches beat earlier substring candidates.
		{"delivery_status", domain.FieldSLAStatus, true},
		{"notes", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			f, ok := resolveHeader(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.field, f)
		})
	}
}

// TestSanitizeHeader verifies invisible characters and repeated spaces are removed.
func TestSanitizeHeader(t *testing.T) {
	assert.Equal(t, "Ship Date", sanitizeHeader("\ufeff Ship\u00a0 Date\u200b "))
	assert.Equal(t, "Zone", sanitizeHeader("Zo\u200bne"))
	assert.Equal(t, "Dest City", sanitizeHeader("Dest\u202fCity\t"))
	assert.Equal(t, "", sanitizeHeader("\u200b "))
}

// TestMatchKey verifies lower-casing and underscore joining.
func TestMatchKey(t *testing.T) {
	assert.Equal(t, "ship_to_zip", matchKey("Ship To ZIP"))
}

// TestHeaderWeightUnit verifies unit tokens in weight headers.
func TestHeaderWeightUnit(t *testing.T) {
	assert.Equal(t, unitOunces, headerWeightUnit("weight_oz"))
	assert.Equal(t, unitOunces, headerWeightUnit("weight_in_ounces"))
	assert.Equal(t, unitOunces, headerWeightUnit("package_weight_(oz)"))
	assert.Equal(t, unitPounds, headerWeightUnit("weight_lbs"))
	assert.Equal(t, unitPounds, headerWeightUnit("weight_(pounds)"))
	assert.Equal(t, unitUnknown, headerWeightUnit("weight"))
	assert.Equal(t, unitUnknown, headerWeightUnit("dozen_weight"))
}
