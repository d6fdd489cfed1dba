package service

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/config"
	refdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrUnknownDataset is returned for a demo dataset name other than complete or sample.
var ErrUnknownDataset = errors.New("unknown demo dataset")

// Demo dataset names.
const (
	DatasetComplete = "complete"
	DatasetSample   = "sample"
)

// slaMissRate is the share of demo records forced to SLA Miss.
const slaMissRate = 0.09

// demoWindow is the span of request dates, ending at generation time.
const demoWindow = 30 * 24 * time.Hour

var (
	demoZoneWeights = []float64{0.05, 0.10, 0.15, 0.20, 0.20, 0.15, 0.10, 0.05}
	demoStates      = []string{
		"CA", "TX", "NY", "FL", "IL", "PA", "OH", "GA", "NC", "MI",
		"NJ", "VA", "WA", "AZ", "MA", "TN", "IN", "MO", "MD", "WI",
	}
	demoCities = []string{
		"Los Angeles", "Houston", "New York", "Miami", "Chicago",
		"Philadelphia", "Columbus", "Atlanta", "Charlotte", "Detroit",
	}
	transitMultiplier = map[refdomain.Tier]float64{
		refdomain.TierPriority:  0.6,
		refdomain.TierExpedited: 0.8,
		refdomain.TierGround:    1.0,
	}
)

// DemoGenerator produces reproducible synthetic record sets.
type DemoGenerator struct {
	ref *refdomain.Reference
	cfg config.DemoConfig
	now func() time.Time
}

// NewDemoGenerator creates a generator. now anchors the request-date window.
func NewDemoGenerator(ref *refdomain.Reference, cfg config.DemoConfig, now func() time.Time) *DemoGenerator {
	if now == nil {
		now = time.Now
	}
	return &DemoGenerator{
		ref: ref,
		cfg: cfg,
		now: now,
	}
}

// Dataset generates a named demo dataset.
func (g *DemoGenerator) Dataset(name string) (*domain.RecordSet, error) {
	switch name {
	case DatasetComplete:
		return g.Generate(g.cfg.CompleteRows), nil
	case DatasetSample:
		return g.Generate(g.cfg.SampleRows), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
}

// Generate builds n synthetic shipments. The same seed, n and clock always
// produce the same records.
func (g *DemoGenerator) Generate(n int) *domain.RecordSet {
	if n < 0 {
		n = 0
	}

	src := rand.NewPCG(uint64(g.cfg.Seed), 0)
	rng := rand.New(src)
	zones := distuv.NewCategorical(demoZoneWeights, src)
	weights := distuv.Gamma{Alpha: 2, Beta: 0.5, Src: src}
	noise := distuv.Normal{Mu: 0, Sigma: 0.5, Src: src}

	end := g.now().UTC().Truncate(time.Second)
	start := end.Add(-demoWindow)
	var step time.Duration
	if n > 1 {
		step = demoWindow / time.Duration(n-1)
	}

	records := make([]domain.Shipment, n)
	for i := range records {
		rec := &records[i]
		zone := int(zones.Rand()) + 1
		request := start.Add(time.Duration(i) * step).Truncate(time.Second)

		rec.TrackingNumber = fmt.Sprintf("FM%08d", i+1)
		rec.CustomerName = "Demo Customer"
		rec.RequestDate = &request
		rec.Zone = refdomain.ZoneKey(zone)
		rec.Weight = math.Round(weights.Rand()*100) / 100
		rec.State = demoStates[rng.IntN(len(demoStates))]
		rec.City = demoCities[rng.IntN(len(demoCities))]
		rec.Zip = strconv.Itoa(10000 + rng.IntN(90000))

		AssignTier(rec)

		base := float64(g.typicalTransit(rec.Zone))
		days := int(base*transitMultiplier[rec.Tier] + noise.Rand())
		days = domain.ClampDays(max(1, days))
		delivery := request.Add(time.Duration(days) * 24 * time.Hour)
		rec.DaysInTransit = &days
		rec.DeliveryDate = &delivery

		rec.Carrier = "USPS"
		if opts := g.ref.SelectCarriers(rec.State, zone, rec.Tier); len(opts) > 0 {
			rec.Carrier = opts[0].Name
		}

		cost := (5 + rec.Weight*0.5) * g.ref.ZoneCostIndex(rec.Zone) * g.ref.CostPremium(rec.Tier)
		rec.Cost = math.Round(cost*100) / 100

		rec.SLAStatus = demoStatus(days, g.ref.SLAWindow(rec.Tier))
	}

	misses := int(float64(n) * slaMissRate)
	for _, i := range rng.Perm(n)[:misses] {
		records[i].SLAStatus = domain.SLAMiss
	}

	origins := make(map[domain.Field]domain.Origin, len(domain.Fields()))
	for _, f := range domain.Fields() {
		origins[f] = domain.OriginDerived
	}

	return &domain.RecordSet{
		Records: records,
		Origins: origins,
		Summary: domain.NormalizationSummary{
			Mapped:  map[domain.Field]string{},
			Derived: domain.Fields(),
		},
	}
}

func (g *DemoGenerator) typicalTransit(zone string) int {
	if z, ok := g.ref.Zone(zone); ok {
		return z.TypicalTransitDays
	}
	return 1
}

// AssignTier sets the service tier from zone and weight when the record has none:
// zone ≤5 and under 5 lb is Priority, zone ≤7 and under 20 lb is Expedited,
// everything else Ground. An existing tier is never overwritten.
func AssignTier(rec *domain.Shipment) {
	if rec.Tier != "" {
		return
	}
	zone, err := strconv.Atoi(rec.Zone)
	if err != nil {
		zone = 8
	}
	switch {
	case zone <= 5 && rec.Weight < 5:
		rec.Tier = refdomain.TierPriority
	case zone <= 7 && rec.Weight < 20:
		rec.Tier = refdomain.TierExpedited
	default:
		rec.Tier = refdomain.TierGround
	}
}

// demoStatus is On-Time within a day of the window, Early below that, SLA Miss above it.
func demoStatus(days, window int) domain.SLAStatus {
	switch {
	case days > window:
		return domain.SLAMiss
	case days >= window-1:
		return domain.SLAOnTime
	default:
		return domain.SLAEarly
	}
}
