package adapters

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"carrier-intel/internal/features/analytics/domain"
)

// PostgresShipmentSource implements ports.ShipmentSource over the order
// management schema. It is strictly read-only: the engine never mutates
// shipment or tracking rows.
type PostgresShipmentSource struct {
	db *sql.DB
}

// NewPostgresShipmentSource creates a new PostgresShipmentSource.
func NewPostgresShipmentSource(db *sql.DB) *PostgresShipmentSource {
	return &PostgresShipmentSource{db: db}
}

// FetchShipments loads the tenant's shipments in the window together with
// their tracking events, ordered by occurrence.
func (s *PostgresShipmentSource) FetchShipments(ctx context.Context, tenantID string, from, to *time.Time) ([]domain.Shipment, error) {
	query := `
SELECT id, carrier, assigned_at, payment_mode
FROM shipments
WHERE tenant_id = $1`
	args := []any{tenantID}

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND assigned_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND assigned_at <= $%d", len(args))
	}
	query += " ORDER BY assigned_at"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shipments: %w", err)
	}
	defer rows.Close()

	var shipments []domain.Shipment
	index := make(map[string]int)
	for rows.Next() {
		var sh domain.Shipment
		var mode string
		if err := rows.Scan(&sh.ID, &sh.Carrier, &sh.AssignedAt, &mode); err != nil {
			return nil, fmt.Errorf("failed to scan shipment: %w", err)
		}
		sh.PaymentMode = domain.PaymentMode(mode)
		index[sh.ID] = len(shipments)
		shipments = append(shipments, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("shipment rows: %w", err)
	}
	if len(shipments) == 0 {
		return nil, nil
	}

	if err := s.attachEvents(ctx, shipments, index); err != nil {
		return nil, err
	}
	return shipments, nil
}

// attachEvents loads the tracking events for the given shipments in one
// query and appends them in occurrence order.
func (s *PostgresShipmentSource) attachEvents(ctx context.Context, shipments []domain.Shipment, index map[string]int) error {
	placeholders := make([]string, 0, len(shipments))
	args := make([]any, 0, len(shipments))
	for i, sh := range shipments {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, sh.ID)
	}

	query := fmt.Sprintf(`
SELECT shipment_id, normalized_status, occurred_at, COALESCE(reason, '')
FROM tracking_events
WHERE shipment_id IN (%s)
ORDER BY shipment_id, occurred_at`, strings.Join(placeholders, ","))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query tracking events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var shipmentID, status string
		var ev domain.TrackingEvent
		if err := rows.Scan(&shipmentID, &status, &ev.OccurredAt, &ev.Reason); err != nil {
			return fmt.Errorf("failed to scan tracking event: %w", err)
		}
		ev.Status = domain.NormalizedStatus(status)
		if i, ok := index[shipmentID]; ok {
			shipments[i].Events = append(shipments[i].Events, ev)
		}
	}
	return rows.Err()
}

// ListCarriers returns every carrier registered for the tenant, shipments
// or not, so zero-volume carriers still appear in metrics and ranking.
func (s *PostgresShipmentSource) ListCarriers(ctx context.Context, tenantID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT name FROM carriers WHERE tenant_id = $1 ORDER BY name`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query carriers: %w", err)
	}
	defer rows.Close()

	var carriers []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan carrier: %w", err)
		}
		carriers = append(carriers, name)
	}
	return carriers, rows.Err()
}
