package domain

// Field names a canonical shipment column.
type Field string

const (
	FieldTrackingNumber Field = "tracking_number"
	FieldCustomerName   Field = "customer_name"
	FieldRequestDate    Field = "request_date"
	FieldDeliveryDate   Field = "delivery_date"
	FieldDaysInTransit  Field = "days_in_transit"
	FieldZone           Field = "calculated_zone"
	FieldState          Field = "destination_state"
	FieldZip            Field = "destination_zip"
	FieldCity           Field = "destination_city"
	FieldWeight         Field = "weight"
	FieldCost           Field = "cost"
	FieldTier           Field = "xparcel_type"
	FieldSLAStatus      Field = "sla_status"
	FieldCarrier        Field = "carrier"
)

// Fields returns every canonical field in canonical table order.
func Fields() []Field {
	return []Field{
		FieldTrackingNumber,
		FieldCustomerName,
		FieldRequestDate,
		FieldDeliveryDate,
		FieldDaysInTransit,
		FieldZone,
		FieldState,
		FieldZip,
		FieldCity,
		FieldWeight,
		FieldCost,
		FieldTier,
		FieldSLAStatus,
		FieldCarrier,
	}
}

// Header is the column name a field is written under in a canonical table.
// Weight carries its unit so a canonical table is never re-converted.
func (f Field) Header() string {
	if f == FieldWeight {
		return "weight_lbs"
	}
	return string(f)
}

// Origin records how a field's values came to exist in a record set.
type Origin string

const (
	// OriginMapped means a source column was matched to the field.
	OriginMapped Origin = "mapped"
	// OriginDerived means values were computed from other fields.
	OriginDerived Origin = "derived"
	// OriginDefaulted means every record holds the field's static default.
	OriginDefaulted Origin = "defaulted"
	// OriginAbsent means the field has no values at all.
	OriginAbsent Origin = "absent"
)

// Present reports whether the field carries values an analyzer may read.
func (o Origin) Present() bool {
	return o == OriginMapped || o == OriginDerived || o == OriginDefaulted
}
