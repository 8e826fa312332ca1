package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carrier-intel/internal/core/logger"
	"carrier-intel/internal/features/analytics/domain"
	"carrier-intel/internal/features/analytics/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrTenantRequired is returned when the tenant id is empty.
var ErrTenantRequired = errors.New("tenant id is required")

// AnalyticsServiceImpl implements ports.AnalyticsService. It orchestrates
// one fetch of the shipment snapshot, runs the pure pipeline over it, and
// caches the resulting report. All computation is deterministic for an
// unchanged snapshot; only ReportID and GeneratedAt differ between runs.
type AnalyticsServiceImpl struct {
	source  ports.ShipmentSource
	reports ports.ReportCache
	scoring domain.ScoringConfig
	ttl     time.Duration
}

// NewAnalyticsService creates a new AnalyticsServiceImpl. reports may be nil
// to disable snapshot caching.
func NewAnalyticsService(source ports.ShipmentSource, reports ports.ReportCache, scoring domain.ScoringConfig, ttl time.Duration) *AnalyticsServiceImpl {
	return &AnalyticsServiceImpl{
		source:  source,
		reports: reports,
		scoring: scoring,
		ttl:     ttl,
	}
}

// CarrierReport computes (or returns the cached) full performance report
// for a tenant window: metrics, scores, insights and routing.
func (s *AnalyticsServiceImpl) CarrierReport(ctx context.Context, tenantID string, from, to *time.Time) (*ports.PerformanceReport, error) {
	if tenantID == "" {
		return nil, ErrTenantRequired
	}

	key := reportKey(tenantID, from, to)
	if s.reports != nil {
		cached, err := s.reports.Get(ctx, key)
		if err != nil {
			logger.Get().Warn("Report cache lookup failed", zap.String("key", key), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	shipments, err := s.source.FetchShipments(ctx, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch shipments: %w", err)
	}

	carriers, err := s.source.ListCarriers(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list carriers: %w", err)
	}

	metrics := domain.ComputeCarrierMetrics(shipments, carriers...)
	scores := s.scoring.ScoreAll(metrics)

	report := &ports.PerformanceReport{
		ReportID:    uuid.NewString(),
		TenantID:    tenantID,
		GeneratedAt: time.Now().UTC(),
		Metrics:     metrics,
		Scores:      scores,
		Insights:    domain.DetectInsights(metrics),
		Routing:     domain.RecommendRouting(scores),
	}

	if s.reports != nil {
		if err := s.reports.Save(ctx, key, report, s.ttl); err != nil {
			logger.Get().Warn("Report cache save failed", zap.String("key", key), zap.Error(err))
		}
	}

	logger.Get().Debug("Carrier report computed",
		zap.String("tenant_id", tenantID),
		zap.Int("shipments", len(shipments)),
		zap.Int("carriers", len(metrics)),
	)

	return report, nil
}

// Dashboard computes the fleet summary over the tenant's full current
// snapshot. now is threaded through to keep the at-risk predicate
// deterministic.
func (s *AnalyticsServiceImpl) Dashboard(ctx context.Context, tenantID string, now time.Time) (*domain.DashboardSummary, error) {
	if tenantID == "" {
		return nil, ErrTenantRequired
	}

	shipments, err := s.source.FetchShipments(ctx, tenantID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch shipments: %w", err)
	}

	summary := domain.SummarizeDashboard(shipments, now)
	return &summary, nil
}

// reportKey builds a cache key unique per tenant and window.
func reportKey(tenantID string, from, to *time.Time) string {
	f, t := "-", "-"
	if from != nil {
		f = from.UTC().Format(time.RFC3339)
	}
	if to != nil {
		t = to.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("carrier_report:%s:%s:%s", tenantID, f, t)
}
