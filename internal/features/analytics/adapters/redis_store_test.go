package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/cache"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
	shipdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisResultStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://"+mr.Addr(), "transitiq")
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisResultStore(adapter, ttl), mr
}

func sampleAnalysis() *domain.Analysis {
	days := 3
	rs := &shipdomain.RecordSet{
		Records: []shipdomain.Shipment{{
			TrackingNumber: "FM00000001",
			Zone:           "4",
			DaysInTransit:  &days,
			Tier:           "Ground",
			SLAStatus:      shipdomain.SLAOnTime,
		}},
		Origins: map[shipdomain.Field]shipdomain.Origin{
			shipdomain.FieldZone: shipdomain.OriginMapped,
		},
	}
	results := domain.Results{
		ExceptionSummary: domain.Computed(domain.ExceptionSummary{TotalExceptions: 1, ExceptionRate: 10}),
	}
	report := domain.NewReport(domain.SourceDemo, "sample", rs, results, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return &domain.Analysis{Report: report, RecordSet: rs}
}

// TestRedisResultStore_SaveGet verifies a stored analysis round-trips under its id.
func TestRedisResultStore_SaveGet(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()
	analysis := sampleAnalysis()

	require.NoError(t, store.Save(ctx, analysis))
	assert.True(t, mr.Exists("transitiq:analysis:"+analysis.Report.ID))

	got, err := store.Get(ctx, analysis.Report.ID)
	require.NoError(t, err)
	assert.Equal(t, analysis.Report.ID, got.Report.ID)
	assert.Equal(t, domain.SourceDemo, got.Report.Source)
	assert.Equal(t, domain.StatusComputed, got.Report.Results.ExceptionSummary.Status)
	assert.Equal(t, 10.0, got.Report.Results.ExceptionSummary.Data.ExceptionRate)
	require.Len(t, got.RecordSet.Records, 1)
	assert.Equal(t, 3, *got.RecordSet.Records[0].DaysInTransit)
	assert.True(t, got.RecordSet.Has(shipdomain.FieldZone))
}

// TestRedisResultStore_Get_NotFound verifies that a missing id maps to ErrReportNotFound.
func TestRedisResultStore_Get_NotFound(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

// TestRedisResultStore_TTL verifies stored analyses expire.
func TestRedisResultStore_TTL(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()
	analysis := sampleAnalysis()

	require.NoError(t, store.Save(ctx, analysis))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, analysis.Report.ID)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

// TestRedisResultStore_Get_Corrupt verifies undecodable payloads are reported.
func TestRedisResultStore_Get_Corrupt(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	require.NoError(t, mr.Set("transitiq:analysis:bad", "{not json"))

	_, err := store.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrReportNotFound))
}

// TestRedisResultStore_Save_Unavailable verifies cache errors surface from Save.
func TestRedisResultStore_Save_Unavailable(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	mr.Close()

	err := store.Save(context.Background(), sampleAnalysis())
	assert.Error(t, err)
}
