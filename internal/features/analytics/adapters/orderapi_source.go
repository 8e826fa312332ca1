package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"carrier-intel/internal/core/config"
	"carrier-intel/internal/core/httpclient"
	"carrier-intel/internal/features/analytics/domain"
)

// OrderAPIShipmentSource implements ports.ShipmentSource against the order
// management service's REST API, for deployments where the engine has no
// direct database access.
type OrderAPIShipmentSource struct {
	client *http.Client
	config config.OrderAPIConfig
}

// NewOrderAPIShipmentSource creates a new OrderAPIShipmentSource.
func NewOrderAPIShipmentSource(cfg config.OrderAPIConfig) *OrderAPIShipmentSource {
	return &OrderAPIShipmentSource{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// FetchShipments retrieves the tenant's shipments with nested tracking
// events from the order API.
func (a *OrderAPIShipmentSource) FetchShipments(ctx context.Context, tenantID string, from, to *time.Time) ([]domain.Shipment, error) {
	q := url.Values{}
	if from != nil {
		q.Set("date_from", from.UTC().Format(time.RFC3339))
	}
	if to != nil {
		q.Set("date_to", to.UTC().Format(time.RFC3339))
	}

	endpoint := fmt.Sprintf("%s/api/v1/tenants/%s/shipments", a.config.URL, url.PathEscape(tenantID))
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var payload shipmentsResponse
	if err := a.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	shipments := make([]domain.Shipment, 0, len(payload.Shipments))
	for _, raw := range payload.Shipments {
		shipments = append(shipments, raw.toDomain())
	}
	return shipments, nil
}

// ListCarriers retrieves every carrier registered for the tenant.
func (a *OrderAPIShipmentSource) ListCarriers(ctx context.Context, tenantID string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/api/v1/tenants/%s/carriers", a.config.URL, url.PathEscape(tenantID))

	var payload carriersResponse
	if err := a.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Carriers, nil
}

// HealthCheck verifies the order API is reachable and credentials are valid.
func (a *OrderAPIShipmentSource) HealthCheck(ctx context.Context) error {
	var payload struct{}
	return a.getJSON(ctx, a.config.URL+"/api/v1/health", &payload)
}

func (a *OrderAPIShipmentSource) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(a.config.APIKey + ":" + a.config.APISecret))
	req.Header.Add("Authorization", "Basic "+credentials)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("order API returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// wire structs for the order API payloads

type shipmentsResponse struct {
	Shipments []apiShipment `json:"shipments"`
}

type carriersResponse struct {
	Carriers []string `json:"carriers"`
}

type apiShipment struct {
	ID          string     `json:"id"`
	Carrier     string     `json:"carrier"`
	AssignedAt  time.Time  `json:"assigned_at"`
	PaymentMode string     `json:"payment_mode"`
	Events      []apiEvent `json:"events"`
}

type apiEvent struct {
	Status     string    `json:"normalized_status"`
	OccurredAt time.Time `json:"occurred_at"`
	Reason     string    `json:"reason"`
}

func (s apiShipment) toDomain() domain.Shipment {
	events := make([]domain.TrackingEvent, 0, len(s.Events))
	for _, ev := range s.Events {
		events = append(events, domain.TrackingEvent{
			Status:     domain.NormalizedStatus(ev.Status),
			OccurredAt: ev.OccurredAt,
			Reason:     ev.Reason,
		})
	}
	return domain.Shipment{
		ID:          s.ID,
		Carrier:     s.Carrier,
		AssignedAt:  s.AssignedAt,
		PaymentMode: domain.PaymentMode(s.PaymentMode),
		Events:      events,
	}
}
