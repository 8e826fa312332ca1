package ports

import (
	"context"
	"time"

	"carrier-intel/internal/features/analytics/domain"
)

// ShipmentSource defines the secondary port for fetching the shipment
// snapshot the engine computes over. The engine never writes through it.
type ShipmentSource interface {
	// FetchShipments returns the tenant's shipments with their ordered
	// tracking events, optionally bounded by assignment time.
	FetchShipments(ctx context.Context, tenantID string, from, to *time.Time) ([]domain.Shipment, error)
	// ListCarriers returns every carrier known to the tenant, including
	// those with no shipments in any window.
	ListCarriers(ctx context.Context, tenantID string) ([]string, error)
}

// PerformanceReport is one full pipeline output for a tenant window.
type PerformanceReport struct {
	// ReportID uniquely identifies this computed snapshot.
	ReportID string `json:"report_id"`
	// TenantID is the tenant the report was computed for.
	TenantID string `json:"tenant_id"`
	// GeneratedAt is when the report was computed.
	GeneratedAt time.Time `json:"generated_at"`
	// Metrics holds per-carrier aggregates.
	Metrics map[string]domain.CarrierMetrics `json:"metrics"`
	// Scores holds per-carrier scores.
	Scores map[string]domain.CarrierScore `json:"scores"`
	// Insights lists fleet-relative strengths, weaknesses and warnings.
	Insights []domain.Insight `json:"insights"`
	// Routing holds the recommendation per objective.
	Routing map[domain.Objective]domain.Recommendation `json:"routing"`
}

// ReportCache defines the secondary port for report snapshot storage.
type ReportCache interface {
	// Get returns the cached report for a key, or nil when absent.
	Get(ctx context.Context, key string) (*PerformanceReport, error)
	// Save stores a report under a key with a TTL.
	Save(ctx context.Context, key string, report *PerformanceReport, ttl time.Duration) error
}

// AnalyticsService defines the primary port exposed to HTTP and reporting
// collaborators.
type AnalyticsService interface {
	CarrierReport(ctx context.Context, tenantID string, from, to *time.Time) (*PerformanceReport, error)
	Dashboard(ctx context.Context, tenantID string, now time.Time) (*domain.DashboardSummary, error)
}
