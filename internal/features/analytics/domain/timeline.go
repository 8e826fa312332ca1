package domain

import "fmt"

// Outcome is the terminal (or still-open) state of a shipment.
type Outcome string

const (
	OutcomeDelivered  Outcome = "DELIVERED"
	OutcomeReturned   Outcome = "RETURNED"
	OutcomeFailed     Outcome = "FAILED"
	OutcomeInProgress Outcome = "IN_PROGRESS"
)

// ShipmentTimeline holds the derived durations for one shipment.
// A nil duration means the defining events are missing; it must never be
// read as zero when averaging.
type ShipmentTimeline struct {
	// PickupDelayHours is PICKED_UP minus assignment, in fractional hours.
	PickupDelayHours *float64 `json:"pickup_delay_hours,omitempty"`
	// TransitTimeHours is DELIVERED minus PICKED_UP.
	TransitTimeHours *float64 `json:"transit_time_hours,omitempty"`
	// DeliveryDurationHours is DELIVERED minus assignment.
	DeliveryDurationHours *float64 `json:"delivery_duration_hours,omitempty"`
	// ReturnCycleTimeHours is RETURNED minus assignment.
	ReturnCycleTimeHours *float64 `json:"return_cycle_time_hours,omitempty"`
	// Outcome is the shipment's terminal state, or IN_PROGRESS.
	Outcome Outcome `json:"outcome"`
	// Warnings lists data-quality conditions found while deriving durations,
	// such as a negative duration caused by out-of-order events.
	Warnings []string `json:"warnings,omitempty"`
}

// BuildTimeline derives the timeline for one shipment from its ordered
// tracking events. For each transition the first matching event wins.
// Negative durations are kept on the timeline and flagged as warnings;
// they are never clamped here.
func BuildTimeline(s Shipment) ShipmentTimeline {
	var tl ShipmentTimeline

	pickedUp, hasPickup := firstEvent(s.Events, StatusPickedUp)
	delivered, hasDelivery := firstEvent(s.Events, StatusDelivered)
	returned, hasReturn := firstEvent(s.Events, StatusReturned)
	_, hasFailure := firstEvent(s.Events, StatusFailed)

	if hasPickup {
		tl.PickupDelayHours = durationHours(&tl, s.ID, "pickup_delay_hours",
			pickedUp.OccurredAt.Sub(s.AssignedAt).Hours())
	}
	if hasDelivery {
		if hasPickup {
			tl.TransitTimeHours = durationHours(&tl, s.ID, "transit_time_hours",
				delivered.OccurredAt.Sub(pickedUp.OccurredAt).Hours())
		}
		tl.DeliveryDurationHours = durationHours(&tl, s.ID, "delivery_duration_hours",
			delivered.OccurredAt.Sub(s.AssignedAt).Hours())
	}
	if hasReturn {
		tl.ReturnCycleTimeHours = durationHours(&tl, s.ID, "return_cycle_time_hours",
			returned.OccurredAt.Sub(s.AssignedAt).Hours())
	}

	switch {
	case hasDelivery:
		tl.Outcome = OutcomeDelivered
	case hasReturn:
		tl.Outcome = OutcomeReturned
	case hasFailure:
		tl.Outcome = OutcomeFailed
	default:
		tl.Outcome = OutcomeInProgress
	}

	return tl
}

// durationHours stores a derived duration, flagging negative values.
func durationHours(tl *ShipmentTimeline, shipmentID, field string, hours float64) *float64 {
	if hours < 0 {
		tl.Warnings = append(tl.Warnings,
			fmt.Sprintf("shipment %s: negative %s (%.2fh), events out of order", shipmentID, field, hours))
	}
	return &hours
}
