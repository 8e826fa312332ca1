package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deliveredShipment(id, carrier string, deliveryHours float64) Shipment {
	return Shipment{
		ID:         id,
		Carrier:    carrier,
		AssignedAt: base,
		Events: []TrackingEvent{
			eventAt(StatusPickedUp, deliveryHours/2),
			eventAt(StatusDelivered, deliveryHours),
		},
	}
}

func returnedShipment(id, carrier string) Shipment {
	return Shipment{
		ID:         id,
		Carrier:    carrier,
		AssignedAt: base,
		Events:     []TrackingEvent{eventAt(StatusPickedUp, 5), eventAt(StatusReturned, 80)},
	}
}

func failedShipment(id, carrier, reason string) Shipment {
	ev := eventAt(StatusFailed, 24)
	ev.Reason = reason
	return Shipment{ID: id, Carrier: carrier, AssignedAt: base, Events: []TrackingEvent{ev}}
}

func inProgressShipment(id, carrier string) Shipment {
	return Shipment{
		ID:         id,
		Carrier:    carrier,
		AssignedAt: base,
		Events:     []TrackingEvent{eventAt(StatusInTransit, 10)},
	}
}

// TestComputeCarrierMetrics_Rates verifies the delivered/returned/failed rates.
func TestComputeCarrierMetrics_Rates(t *testing.T) {
	shipments := []Shipment{
		deliveredShipment("s1", "aramex", 40),
		deliveredShipment("s2", "aramex", 50),
		returnedShipment("s3", "aramex"),
		failedShipment("s4", "aramex", "address not found"),
		inProgressShipment("s5", "aramex"),
	}

	metrics := ComputeCarrierMetrics(shipments)

	require.Contains(t, metrics, "aramex")
	m := metrics["aramex"]
	assert.Equal(t, 5, m.TotalShipments)
	assert.InDelta(t, 40, m.DeliverySuccessRate, 1e-9)
	assert.InDelta(t, 20, m.ReturnRate, 1e-9)
	assert.InDelta(t, 20, m.FailureRate, 1e-9)
}

// TestComputeCarrierMetrics_AveragesSkipAbsent verifies the absence rule:
// shipments without a duration are excluded from the mean, never counted as 0.
func TestComputeCarrierMetrics_AveragesSkipAbsent(t *testing.T) {
	// Durations 48, absent, 52, absent, 44 must average to 48, not 28.8.
	shipments := []Shipment{
		deliveredShipment("s1", "smsa", 48),
		inProgressShipment("s2", "smsa"),
		deliveredShipment("s3", "smsa", 52),
		inProgressShipment("s4", "smsa"),
		deliveredShipment("s5", "smsa", 44),
	}

	metrics := ComputeCarrierMetrics(shipments)

	m := metrics["smsa"]
	require.NotNil(t, m.AvgDeliveryTimeHours)
	assert.InDelta(t, 48, *m.AvgDeliveryTimeHours, 1e-9)
}

// TestComputeCarrierMetrics_NoDurations verifies averages stay nil when no
// shipment produced a value.
func TestComputeCarrierMetrics_NoDurations(t *testing.T) {
	metrics := ComputeCarrierMetrics([]Shipment{inProgressShipment("s1", "dhl")})

	m := metrics["dhl"]
	assert.Equal(t, 1, m.TotalShipments)
	assert.Nil(t, m.AvgPickupTimeHours)
	assert.Nil(t, m.AvgDeliveryTimeHours)
}

// TestComputeCarrierMetrics_KnownCarrierWithoutShipments verifies a known
// carrier missing from the window still gets a zero record.
func TestComputeCarrierMetrics_KnownCarrierWithoutShipments(t *testing.T) {
	metrics := ComputeCarrierMetrics(
		[]Shipment{deliveredShipment("s1", "aramex", 40)},
		"aramex", "smsa",
	)

	require.Contains(t, metrics, "smsa")
	m := metrics["smsa"]
	assert.Equal(t, 0, m.TotalShipments)
	assert.Zero(t, m.DeliverySuccessRate)
	assert.Zero(t, m.ReturnRate)
	assert.Zero(t, m.FailureRate)
	assert.Nil(t, m.AvgPickupTimeHours)
	assert.Nil(t, m.AvgDeliveryTimeHours)
}

// TestComputeCarrierMetrics_EmptyInput verifies the steady state for a new
// tenant: no shipments, no carriers, no panic.
func TestComputeCarrierMetrics_EmptyInput(t *testing.T) {
	metrics := ComputeCarrierMetrics(nil)
	assert.Empty(t, metrics)
}

// TestComputeCarrierMetrics_FailureReasons verifies the reason tally.
func TestComputeCarrierMetrics_FailureReasons(t *testing.T) {
	shipments := []Shipment{
		failedShipment("s1", "dhl", "address not found"),
		failedShipment("s2", "dhl", "address not found"),
		failedShipment("s3", "dhl", "customer refused"),
		failedShipment("s4", "dhl", ""),
	}

	metrics := ComputeCarrierMetrics(shipments)

	m := metrics["dhl"]
	assert.Equal(t, map[string]int{
		"address not found": 2,
		"customer refused":  1,
		"unknown":           1,
	}, m.FailureReasonCounts)
}

// TestComputeCarrierMetrics_NegativeDurationFlagged verifies a malformed
// shipment is isolated: its negative duration is excluded from the average
// and surfaced as a warning, while the rest of the group aggregates normally.
func TestComputeCarrierMetrics_NegativeDurationFlagged(t *testing.T) {
	skewed := Shipment{
		ID:         "s_skew",
		Carrier:    "aramex",
		AssignedAt: base,
		Events:     []TrackingEvent{{Status: StatusDelivered, OccurredAt: base.Add(-3 * time.Hour)}},
	}
	shipments := []Shipment{skewed, deliveredShipment("s_ok", "aramex", 40)}

	metrics := ComputeCarrierMetrics(shipments)

	m := metrics["aramex"]
	assert.Equal(t, 2, m.TotalShipments)
	assert.InDelta(t, 100, m.DeliverySuccessRate, 1e-9)
	require.NotNil(t, m.AvgDeliveryTimeHours)
	assert.InDelta(t, 40, *m.AvgDeliveryTimeHours, 1e-9)
	require.NotEmpty(t, m.DataQualityWarnings)
	assert.Contains(t, m.DataQualityWarnings[0], "s_skew")
}

// TestComputeCarrierMetrics_GroupsByCarrier verifies shipments split into
// independent per-carrier groups.
func TestComputeCarrierMetrics_GroupsByCarrier(t *testing.T) {
	shipments := []Shipment{
		deliveredShipment("s1", "aramex", 40),
		returnedShipment("s2", "smsa"),
	}

	metrics := ComputeCarrierMetrics(shipments)

	require.Len(t, metrics, 2)
	assert.InDelta(t, 100, metrics["aramex"].DeliverySuccessRate, 1e-9)
	assert.InDelta(t, 100, metrics["smsa"].ReturnRate, 1e-9)
}
