package service

import (
	"time"

	refdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"
	shipdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"
)

func intp(v int) *int { return &v }

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// shipment returns a Ground, zone 4, on-time record that tests override field by field.
func shipment(mutate ...func(*shipdomain.Shipment)) shipdomain.Shipment {
	s := shipdomain.Shipment{
		TrackingNumber: "FM1",
		CustomerName:   "Acme",
		RequestDate:    date("2024-01-02"),
		DaysInTransit:  intp(3),
		Zone:           "4",
		State:          "IL",
		Zip:            "60601",
		City:           "Chicago",
		Weight:         1.5,
		Cost:           10,
		Tier:           refdomain.TierGround,
		SLAStatus:      shipdomain.SLAOnTime,
		Carrier:        "USPS",
	}
	for _, m := range mutate {
		m(&s)
	}
	return s
}

// recordSet marks every field mapped.
func recordSet(records ...shipdomain.Shipment) *shipdomain.RecordSet {
	origins := make(map[shipdomain.Field]shipdomain.Origin)
	for _, f := range shipdomain.Fields() {
		origins[f] = shipdomain.OriginMapped
	}
	return &shipdomain.RecordSet{Records: records, Origins: origins}
}

func withOrigin(rs *shipdomain.RecordSet, o shipdomain.Origin, fields ...shipdomain.Field) *shipdomain.RecordSet {
	for _, f := range fields {
		rs.Origins[f] = o
	}
	return rs
}

func newInput(rs *shipdomain.RecordSet) analysisInput {
	return analysisInput{rs: rs, ref: refdomain.Default()}
}

func repeat(n int, s shipdomain.Shipment) []shipdomain.Shipment {
	out := make([]shipdomain.Shipment, n)
	for i := range out {
		out[i] = s
	}
	return out
}
