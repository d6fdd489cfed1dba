package domain

import (
	"strconv"
	"time"
)

// NormalizationSummary describes how a raw table was reconciled to the canonical schema.
type NormalizationSummary struct {
	// SourceColumns is the number of columns in the raw table.
	SourceColumns int `json:"source_columns"`
	// Mapped maps each matched field to the sanitized source header that claimed it.
	Mapped map[Field]string `json:"mapped"`
	// Derived lists fields computed from other fields.
	Derived []Field `json:"derived,omitempty"`
	// Defaulted lists fields filled entirely from static defaults.
	Defaulted []Field `json:"defaulted,omitempty"`
	// Unmapped lists source headers that matched no field or a field already claimed.
	Unmapped []string `json:"unmapped,omitempty"`
	// Dropped lists source headers removed as empty or placeholder columns.
	Dropped []string `json:"dropped,omitempty"`
	// WeightConverted is true when weights were divided by 16 (ounces to pounds).
	WeightConverted bool `json:"weight_converted"`
	// InvalidCells counts non-empty cells that could not be parsed, per field.
	InvalidCells map[Field]int `json:"invalid_cells,omitempty"`
}

// RecordSet is the canonical, cleaned shipment table every analyzer reads.
type RecordSet struct {
	// Records holds one entry per source row.
	Records []Shipment `json:"records"`
	// Origins records how each canonical field was populated.
	Origins map[Field]Origin `json:"origins"`
	// Summary describes the normalization pass.
	Summary NormalizationSummary `json:"summary"`
}

// Len returns the number of records.
func (rs *RecordSet) Len() int {
	return len(rs.Records)
}

// Origin returns how a field was populated; unknown fields are absent.
func (rs *RecordSet) Origin(f Field) Origin {
	if o, ok := rs.Origins[f]; ok {
		return o
	}
	return OriginAbsent
}

// Has reports whether a field carries values.
func (rs *RecordSet) Has(f Field) bool {
	return rs.Origin(f).Present()
}

// Table renders the record set as a canonical raw table: canonical headers,
// RFC 3339 dates and weights in pounds. Only mapped fields are written;
// derived and defaulted fields are recomputed when the table is normalized
// again, so the round trip keeps every field's origin.
func (rs *RecordSet) Table() *Table {
	var fields []Field
	for _, f := range Fields() {
		if rs.Origin(f) == OriginMapped {
			fields = append(fields, f)
		}
	}

	t := &Table{
		Headers: make([]string, len(fields)),
		Rows:    make([][]string, len(rs.Records)),
	}
	for i, f := range fields {
		t.Headers[i] = f.Header()
	}
	for r := range rs.Records {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = rs.Records[r].Value(f)
		}
		t.Rows[r] = row
	}
	return t
}

// Value formats one field of the shipment as canonical cell text.
func (s *Shipment) Value(f Field) string {
	switch f {
	case FieldTrackingNumber:
		return s.TrackingNumber
	case FieldCustomerName:
		return s.CustomerName
	case FieldRequestDate:
		return formatTime(s.RequestDate)
	case FieldDeliveryDate:
		return formatTime(s.DeliveryDate)
	case FieldDaysInTransit:
		if s.DaysInTransit == nil {
			return ""
		}
		return strconv.Itoa(*s.DaysInTransit)
	case FieldZone:
		return s.Zone
	case FieldState:
		return s.State
	case FieldZip:
		return s.Zip
	case FieldCity:
		return s.City
	case FieldWeight:
		return strconv.FormatFloat(s.Weight, 'f', -1, 64)
	case FieldCost:
		return strconv.FormatFloat(s.Cost, 'f', -1, 64)
	case FieldTier:
		return string(s.Tier)
	case FieldSLAStatus:
		return string(s.SLAStatus)
	case FieldCarrier:
		return s.Carrier
	}
	return ""
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
