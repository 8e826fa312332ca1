package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carrier-intel/internal/core/cache"
	"carrier-intel/internal/features/analytics/ports"
)

// RedisReportCache implements ports.ReportCache over the core cache port.
// Reports are stored as JSON snapshots with a TTL; a stale report simply
// expires and the next request recomputes.
type RedisReportCache struct {
	cache cache.Cache
}

// NewRedisReportCache creates a new RedisReportCache.
func NewRedisReportCache(c cache.Cache) *RedisReportCache {
	return &RedisReportCache{cache: c}
}

// Get retrieves a cached report, or nil when the key is absent.
func (r *RedisReportCache) Get(ctx context.Context, key string) (*ports.PerformanceReport, error) {
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var report ports.PerformanceReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

// Save stores a report snapshot under the key with the given TTL.
func (r *RedisReportCache) Save(ctx context.Context, key string, report *ports.PerformanceReport, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := r.cache.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to save report to cache: %w", err)
	}
	return nil
}
