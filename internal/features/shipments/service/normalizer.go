package service

import (
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/logger"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/metrics"
	refdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// ounceThreshold is the mean weight above which a column without a unit hint is read as ounces.
const ounceThreshold = 16.0

// Normalizer reconciles arbitrary shipment tables to the canonical schema.
// It never fails: unmatched or malformed input degrades to defaults.
type Normalizer struct {
	ref     *refdomain.Reference
	metrics *metrics.Metrics
}

// NewNormalizer creates a Normalizer over the given reference data.
func NewNormalizer(ref *refdomain.Reference, m *metrics.Metrics) *Normalizer {
	return &Normalizer{
		ref:     ref,
		metrics: m,
	}
}

// column is a source column that survived cleanup.
type column struct {
	index     int
	sanitized string
	key       string
}

// Normalize produces a canonical record set from a raw table.
func (n *Normalizer) Normalize(t *domain.Table) *domain.RecordSet {
	log := logger.Named("normalizer")

	summary := domain.NormalizationSummary{
		SourceColumns: len(t.Headers),
		Mapped:        map[domain.Field]string{},
		InvalidCells:  map[domain.Field]int{},
	}

	kept := n.cleanup(t, &summary)
	mapped := n.match(kept, &summary)

	rs := &domain.RecordSet{
		Records: make([]domain.Shipment, len(t.Rows)),
		Origins: map[domain.Field]domain.Origin{},
	}
	for _, f := range domain.Fields() {
		rs.Origins[f] = domain.OriginAbsent
	}
	for f := range mapped {
		rs.Origins[f] = domain.OriginMapped
	}

	invalid := func(f domain.Field, ok bool) {
		if !ok {
			summary.InvalidCells[f]++
		}
	}

	for r := range t.Rows {
		rec := &rs.Records[r]
		cell := func(f domain.Field) string {
			col, ok := mapped[f]
			if !ok {
				return ""
			}
			return t.Cell(r, col.index)
		}

		var ok bool
		rec.TrackingNumber = parseText(cell(domain.FieldTrackingNumber), domain.DefaultTracking)
		rec.CustomerName = parseText(cell(domain.FieldCustomerName), domain.DefaultCustomer)
		rec.City = parseText(cell(domain.FieldCity), domain.DefaultCity)
		rec.Carrier = parseText(cell(domain.FieldCarrier), domain.DefaultCarrier)
		rec.State = parseState(cell(domain.FieldState))
		rec.Zip = parseZip(cell(domain.FieldZip))

		rec.Zone, ok = parseZone(cell(domain.FieldZone))
		invalid(domain.FieldZone, ok)
		rec.Tier, ok = parseTier(cell(domain.FieldTier))
		invalid(domain.FieldTier, ok)
		rec.Cost, ok = parseCost(cell(domain.FieldCost))
		invalid(domain.FieldCost, ok)
		rec.RequestDate, ok = parseDate(cell(domain.FieldRequestDate))
		invalid(domain.FieldRequestDate, ok)
		rec.DeliveryDate, ok = parseDate(cell(domain.FieldDeliveryDate))
		invalid(domain.FieldDeliveryDate, ok)
		rec.DaysInTransit, ok = parseDays(cell(domain.FieldDaysInTransit))
		invalid(domain.FieldDaysInTransit, ok)
	}

	n.normalizeWeights(t, rs, mapped, &summary)
	n.deriveTransit(rs)
	n.resolveSLA(t, rs, mapped)

	for _, f := range domain.Fields() {
		switch rs.Origins[f] {
		case domain.OriginDerived:
			summary.Derived = append(summary.Derived, f)
		case domain.OriginAbsent:
			if hasDefault(f) {
				rs.Origins[f] = domain.OriginDefaulted
				summary.Defaulted = append(summary.Defaulted, f)
				n.metrics.FieldDefaulted(string(f))
			}
		}
	}

	for f, count := range summary.InvalidCells {
		log.Debug("Unparseable cells replaced", zap.String("field", string(f)), zap.Int("count", count))
	}
	log.Debug("Normalization complete",
		zap.Int("rows", len(rs.Records)),
		zap.Int("mapped", len(summary.Mapped)),
		zap.Strings("unmapped", summary.Unmapped),
		zap.Strings("dropped", summary.Dropped),
		zap.Any("defaulted", summary.Defaulted),
		zap.Any("derived", summary.Derived),
		zap.Bool("weight_converted", summary.WeightConverted),
	)

	rs.Summary = summary
	return rs
}

// cleanup drops placeholder-header and entirely empty columns before matching.
func (n *Normalizer) cleanup(t *domain.Table, summary *domain.NormalizationSummary) []column {
	var kept []column
	for i, raw := range t.Headers {
		sanitized := sanitizeHeader(raw)
		if isPlaceholderHeader(sanitized) || isBlank(t.Column(i)) {
			summary.Dropped = append(summary.Dropped, sanitized)
			continue
		}
		kept = append(kept, column{index: i, sanitized: sanitized, key: matchKey(sanitized)})
	}
	return kept
}

// match assigns each column to a field; the first column to resolve to a field claims it.
func (n *Normalizer) match(cols []column, summary *domain.NormalizationSummary) map[domain.Field]column {
	mapped := map[domain.Field]column{}
	for _, col := range cols {
		f, ok := resolveHeader(col.key)
		if !ok {
			summary.Unmapped = append(summary.Unmapped, col.sanitized)
			continue
		}
		if _, claimed := mapped[f]; claimed {
			summary.Unmapped = append(summary.Unmapped, col.sanitized)
			continue
		}
		mapped[f] = col
		summary.Mapped[f] = col.sanitized
	}
	return mapped
}

// normalizeWeights parses the weight column and converts ounces to pounds.
// A unit in the header decides; otherwise a mean above 16 means ounces.
func (n *Normalizer) normalizeWeights(t *domain.Table, rs *domain.RecordSet, mapped map[domain.Field]column, summary *domain.NormalizationSummary) {
	col, ok := mapped[domain.FieldWeight]
	if !ok {
		for i := range rs.Records {
			rs.Records[i].Weight = domain.DefaultWeight
		}
		return
	}

	parsed := make([]float64, len(rs.Records))
	valid := make([]bool, len(rs.Records))
	var observed []float64
	for r := range rs.Records {
		raw := t.Cell(r, col.index)
		if v, ok := parseNumber(raw); ok && v >= 0 {
			parsed[r], valid[r] = v, true
			observed = append(observed, v)
		} else if raw != "" {
			summary.InvalidCells[domain.FieldWeight]++
		}
	}

	convert := false
	switch headerWeightUnit(col.key) {
	case unitOunces:
		convert = true
	case unitUnknown:
		convert = len(observed) > 0 && stat.Mean(observed, nil) > ounceThreshold
	}
	summary.WeightConverted = convert

	for r := range rs.Records {
		switch {
		case !valid[r]:
			rs.Records[r].Weight = domain.DefaultWeight
		case convert:
			rs.Records[r].Weight = parsed[r] / 16
		default:
			rs.Records[r].Weight = parsed[r]
		}
	}
}

// deriveTransit computes days in transit from the two dates when no column supplied them.
func (n *Normalizer) deriveTransit(rs *domain.RecordSet) {
	if rs.Has(domain.FieldDaysInTransit) {
		return
	}
	if !rs.Has(domain.FieldRequestDate) || !rs.Has(domain.FieldDeliveryDate) {
		return
	}
	for i := range rs.Records {
		rec := &rs.Records[i]
		if rec.RequestDate == nil || rec.DeliveryDate == nil {
			continue
		}
		d := daysBetween(*rec.RequestDate, *rec.DeliveryDate)
		rec.DaysInTransit = &d
	}
	rs.Origins[domain.FieldDaysInTransit] = domain.OriginDerived
}

// resolveSLA keeps recognised status values and derives the rest from transit days.
func (n *Normalizer) resolveSLA(t *domain.Table, rs *domain.RecordSet, mapped map[domain.Field]column) {
	col, ok := mapped[domain.FieldSLAStatus]
	if !ok {
		rs.Origins[domain.FieldSLAStatus] = domain.OriginDerived
	}
	for r := range rs.Records {
		rec := &rs.Records[r]
		if ok {
			raw := t.Cell(r, col.index)
			if status, recognised := parseSLAStatus(raw); recognised {
				rec.SLAStatus = status
				continue
			}
		}
		rec.SLAStatus = deriveSLAStatus(n.ref, rec.Tier, rec.DaysInTransit)
	}
}

// hasDefault reports whether a field gets a static default when absent.
// Dates and days in transit stay absent.
func hasDefault(f domain.Field) bool {
	switch f {
	case domain.FieldRequestDate, domain.FieldDeliveryDate, domain.FieldDaysInTransit:
		return false
	}
	return true
}

