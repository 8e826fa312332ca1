package handler

import (
	"errors"
	"time"

	"carrier-intel/internal/features/analytics/ports"
	"carrier-intel/internal/features/analytics/service"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles HTTP requests for carrier performance analytics.
type AnalyticsHandler struct {
	analytics ports.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analytics ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// GetCarrierReport godoc
// @Summary Get the full carrier performance report
// @Description Computes per-carrier metrics, scores, insights and routing recommendations over the tenant's shipment window
// @Tags analytics
// @Produce json
// @Param tenant path string true "Tenant ID"
// @Param date_from query string false "Window start (RFC3339)"
// @Param date_to query string false "Window end (RFC3339)"
// @Success 200 {object} ports.PerformanceReport
// @Failure 400 {object} ErrorResponse
// @Router /analytics/{tenant}/report [get]
func (h *AnalyticsHandler) GetCarrierReport(c *fiber.Ctx) error {
	tenantID := c.Params("tenant")

	from, err := parseWindowParam(c.Query("date_from"))
	if err != nil {
		return badRequest(c, "invalid date_from, expected RFC3339")
	}
	to, err := parseWindowParam(c.Query("date_to"))
	if err != nil {
		return badRequest(c, "invalid date_to, expected RFC3339")
	}

	report, err := h.analytics.CarrierReport(c.Context(), tenantID, from, to)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(report)
}

// GetInsights godoc
// @Summary Get fleet-relative carrier insights
// @Tags analytics
// @Produce json
// @Param tenant path string true "Tenant ID"
// @Success 200 {array} domain.Insight
// @Failure 400 {object} ErrorResponse
// @Router /analytics/{tenant}/insights [get]
func (h *AnalyticsHandler) GetInsights(c *fiber.Ctx) error {
	report, err := h.analytics.CarrierReport(c.Context(), c.Params("tenant"), nil, nil)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(report.Insights)
}

// GetRouting godoc
// @Summary Get routing recommendations per objective
// @Tags analytics
// @Produce json
// @Param tenant path string true "Tenant ID"
// @Success 200 {object} map[string]domain.Recommendation
// @Failure 400 {object} ErrorResponse
// @Router /analytics/{tenant}/routing [get]
func (h *AnalyticsHandler) GetRouting(c *fiber.Ctx) error {
	report, err := h.analytics.CarrierReport(c.Context(), c.Params("tenant"), nil, nil)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(report.Routing)
}

// GetDashboard godoc
// @Summary Get the fleet dashboard summary
// @Description Returns shipment counts, carrier counts and at-risk shipment ids
// @Tags analytics
// @Produce json
// @Param tenant path string true "Tenant ID"
// @Success 200 {object} domain.DashboardSummary
// @Failure 400 {object} ErrorResponse
// @Router /analytics/{tenant}/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	summary, err := h.analytics.Dashboard(c.Context(), c.Params("tenant"), time.Now().UTC())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(summary)
}

func (h *AnalyticsHandler) mapError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrTenantRequired) {
		return badRequest(c, "tenant id is required")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   rayID(c),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}

// parseWindowParam parses an optional RFC3339 query parameter.
func parseWindowParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
