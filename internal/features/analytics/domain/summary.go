package domain

import "time"

// AtRiskThresholdHours is how long a shipment may sit without a terminal
// event before it is considered at risk.
const AtRiskThresholdHours = 72

// DashboardSummary holds fleet-wide counts for operational monitoring.
type DashboardSummary struct {
	// TotalShipments is the count of shipments in the window.
	TotalShipments int `json:"total_shipments"`
	// UniqueCarriers is the number of distinct carriers in the window.
	UniqueCarriers int `json:"unique_carriers"`
	// AtRiskShipments lists ids of shipments past the at-risk threshold
	// with no terminal event, in input order.
	AtRiskShipments []string `json:"at_risk_shipments"`
}

// SummarizeDashboard computes the fleet summary over a shipment window.
// now is passed by the caller so the at-risk predicate is deterministic;
// nothing in here reads the wall clock.
func SummarizeDashboard(shipments []Shipment, now time.Time) DashboardSummary {
	summary := DashboardSummary{
		TotalShipments:  len(shipments),
		AtRiskShipments: []string{},
	}

	carriers := make(map[string]struct{})
	for _, s := range shipments {
		carriers[s.Carrier] = struct{}{}
		if AtRisk(s, now) {
			summary.AtRiskShipments = append(summary.AtRiskShipments, s.ID)
		}
	}
	summary.UniqueCarriers = len(carriers)

	return summary
}

// AtRisk reports whether a shipment has no terminal event and has been with
// the carrier longer than the at-risk threshold.
func AtRisk(s Shipment, now time.Time) bool {
	if hasTerminalEvent(s.Events) {
		return false
	}
	return now.Sub(s.AssignedAt).Hours() > AtRiskThresholdHours
}
