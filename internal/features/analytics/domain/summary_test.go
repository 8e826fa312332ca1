package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAtRisk verifies the 72h at-risk predicate over an explicit clock.
func TestAtRisk(t *testing.T) {
	now := base.Add(200 * time.Hour)

	cases := []struct {
		name     string
		assigned time.Time
		events   []TrackingEvent
		expected bool
	}{
		{"stale_without_terminal", now.Add(-80 * time.Hour), []TrackingEvent{eventAt(StatusInTransit, 0)}, true},
		{"fresh_without_terminal", now.Add(-24 * time.Hour), nil, false},
		{"stale_but_delivered", now.Add(-100 * time.Hour), []TrackingEvent{eventAt(StatusDelivered, 0)}, false},
		{"stale_but_returned", now.Add(-100 * time.Hour), []TrackingEvent{eventAt(StatusReturned, 0)}, false},
		{"stale_but_failed", now.Add(-100 * time.Hour), []TrackingEvent{eventAt(StatusFailed, 0)}, false},
		{"exactly_at_threshold", now.Add(-72 * time.Hour), nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Shipment{ID: "s1", Carrier: "aramex", AssignedAt: tc.assigned, Events: tc.events}
			assert.Equal(t, tc.expected, AtRisk(s, now))
		})
	}
}

// TestSummarizeDashboard verifies fleet counts and the at-risk list.
func TestSummarizeDashboard(t *testing.T) {
	now := base.Add(100 * time.Hour)
	shipments := []Shipment{
		{ID: "s1", Carrier: "aramex", AssignedAt: base, Events: []TrackingEvent{eventAt(StatusDelivered, 40)}},
		{ID: "s2", Carrier: "aramex", AssignedAt: base, Events: []TrackingEvent{eventAt(StatusInTransit, 10)}},
		{ID: "s3", Carrier: "smsa", AssignedAt: base.Add(50 * time.Hour), Events: nil},
		{ID: "s4", Carrier: "dhl", AssignedAt: base, Events: nil},
	}

	summary := SummarizeDashboard(shipments, now)

	assert.Equal(t, 4, summary.TotalShipments)
	assert.Equal(t, 3, summary.UniqueCarriers)
	// s2 and s4 are 100h old without a terminal event; s3 is only 50h old.
	assert.Equal(t, []string{"s2", "s4"}, summary.AtRiskShipments)
}

// TestSummarizeDashboard_Empty verifies the new-tenant steady state.
func TestSummarizeDashboard_Empty(t *testing.T) {
	summary := SummarizeDashboard(nil, base)

	assert.Zero(t, summary.TotalShipments)
	assert.Zero(t, summary.UniqueCarriers)
	require.NotNil(t, summary.AtRiskShipments)
	assert.Empty(t, summary.AtRiskShipments)
}
