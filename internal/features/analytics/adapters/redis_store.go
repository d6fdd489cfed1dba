package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/cache"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
)

const analysisKeyPrefix = "analysis:"

// RedisResultStore implements ports.ResultStore using the cache adaptation.
type RedisResultStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisResultStore creates a new RedisResultStore. A zero ttl keeps analyses forever.
func NewRedisResultStore(c cache.Cache, ttl time.Duration) *RedisResultStore {
	return &RedisResultStore{
		cache: c,
		ttl:   ttl,
	}
}

// Save stores the analysis under its report id.
func (s *RedisResultStore) Save(ctx context.Context, analysis *domain.Analysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	if err := s.cache.Set(ctx, analysisKeyPrefix+analysis.Report.ID, data, s.ttl); err != nil {
		return fmt.Errorf("failed to save analysis to cache: %w", err)
	}

	return nil
}

// Get retrieves an analysis by report id.
func (s *RedisResultStore) Get(ctx context.Context, id string) (*domain.Analysis, error) {
	data, err := s.cache.Get(ctx, analysisKeyPrefix+id)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, fmt.Errorf("analysis %s: %w", id, domain.ErrReportNotFound)
		}
		return nil, fmt.Errorf("failed to get analysis from cache: %w", err)
	}

	var analysis domain.Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}

	return &analysis, nil
}
