package domain

// CarrierMetrics holds aggregated rate and duration statistics for one
// carrier over a shipment window. It is rebuilt in full on every
// computation, never patched incrementally.
type CarrierMetrics struct {
	// Carrier is the carrier identifier.
	Carrier string `json:"carrier"`
	// TotalShipments is the number of shipments in the window.
	TotalShipments int `json:"total_shipments"`
	// DeliverySuccessRate is the percentage of shipments delivered (0-100).
	DeliverySuccessRate float64 `json:"delivery_success_rate"`
	// ReturnRate is the percentage of shipments returned (0-100).
	ReturnRate float64 `json:"return_rate"`
	// FailureRate is the percentage of shipments failed (0-100).
	FailureRate float64 `json:"failure_rate"`
	// AvgPickupTimeHours is the mean pickup delay over shipments that have
	// one; nil when no shipment produced a usable value.
	AvgPickupTimeHours *float64 `json:"avg_pickup_time_hours,omitempty"`
	// AvgDeliveryTimeHours is the mean assignment-to-delivery duration,
	// same absence rule.
	AvgDeliveryTimeHours *float64 `json:"avg_delivery_time_hours,omitempty"`
	// FailureReasonCounts tallies the reason field of FAILED events.
	FailureReasonCounts map[string]int `json:"failure_reason_counts,omitempty"`
	// DataQualityWarnings carries per-shipment anomalies (negative
	// durations and the like) surfaced during aggregation. The offending
	// values are excluded from the averages but the shipment still counts
	// toward the rates.
	DataQualityWarnings []string `json:"data_quality_warnings,omitempty"`
}

// ComputeCarrierMetrics folds a shipment window into per-carrier metrics.
// knownCarriers may name carriers beyond those present in the window; each
// one gets a zero-shipment record so downstream ranking sees every carrier.
func ComputeCarrierMetrics(shipments []Shipment, knownCarriers ...string) map[string]CarrierMetrics {
	grouped := make(map[string][]Shipment)
	for _, s := range shipments {
		grouped[s.Carrier] = append(grouped[s.Carrier], s)
	}
	for _, carrier := range knownCarriers {
		if _, ok := grouped[carrier]; !ok {
			grouped[carrier] = nil
		}
	}

	out := make(map[string]CarrierMetrics, len(grouped))
	for carrier, group := range grouped {
		out[carrier] = aggregateCarrier(carrier, group)
	}
	return out
}

func aggregateCarrier(carrier string, shipments []Shipment) CarrierMetrics {
	m := CarrierMetrics{Carrier: carrier, TotalShipments: len(shipments)}

	var delivered, returned, failed int
	var pickups, deliveries []float64

	for _, s := range shipments {
		tl := BuildTimeline(s)
		m.DataQualityWarnings = append(m.DataQualityWarnings, tl.Warnings...)

		switch tl.Outcome {
		case OutcomeDelivered:
			delivered++
		case OutcomeReturned:
			returned++
		case OutcomeFailed:
			failed++
		}

		if v := usable(tl.PickupDelayHours); v != nil {
			pickups = append(pickups, *v)
		}
		if v := usable(tl.DeliveryDurationHours); v != nil {
			deliveries = append(deliveries, *v)
		}

		for _, ev := range s.Events {
			if ev.Status == StatusFailed {
				if m.FailureReasonCounts == nil {
					m.FailureReasonCounts = make(map[string]int)
				}
				reason := ev.Reason
				if reason == "" {
					reason = "unknown"
				}
				m.FailureReasonCounts[reason]++
			}
		}
	}

	if total := len(shipments); total > 0 {
		m.DeliverySuccessRate = 100 * float64(delivered) / float64(total)
		m.ReturnRate = 100 * float64(returned) / float64(total)
		m.FailureRate = 100 * float64(failed) / float64(total)
	}

	m.AvgPickupTimeHours = mean(pickups)
	m.AvgDeliveryTimeHours = mean(deliveries)

	return m
}

// usable filters out absent and negative durations for averaging. Negative
// values were already flagged as warnings when the timeline was built.
func usable(v *float64) *float64 {
	if v == nil || *v < 0 {
		return nil
	}
	return v
}

// mean returns the arithmetic mean of vs, or nil when vs is empty.
func mean(vs []float64) *float64 {
	if len(vs) == 0 {
		return nil
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	avg := sum / float64(len(vs))
	return &avg
}
