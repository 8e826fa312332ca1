package domain

import "time"

// NormalizedStatus is a canonical tracking-event classification, abstracted
// away from carrier-specific status strings.
type NormalizedStatus string

const (
	// StatusCreated indicates the shipment record was created with the carrier.
	StatusCreated NormalizedStatus = "CREATED"
	// StatusPickedUp indicates the carrier collected the parcel.
	StatusPickedUp NormalizedStatus = "PICKED_UP"
	// StatusInTransit indicates the parcel is moving through the carrier network.
	StatusInTransit NormalizedStatus = "IN_TRANSIT"
	// StatusOutForDelivery indicates the parcel is on the last-mile vehicle.
	StatusOutForDelivery NormalizedStatus = "OUT_FOR_DELIVERY"
	// StatusDelivered indicates the parcel reached the customer.
	StatusDelivered NormalizedStatus = "DELIVERED"
	// StatusReturned indicates the parcel went back to the sender.
	StatusReturned NormalizedStatus = "RETURNED"
	// StatusFailed indicates the carrier gave up on the shipment.
	StatusFailed NormalizedStatus = "FAILED"
)

// PaymentMode is how the customer pays for the order behind a shipment.
type PaymentMode string

const (
	// PaymentCOD is cash on delivery.
	PaymentCOD PaymentMode = "COD"
	// PaymentPrepaid is paid online before dispatch.
	PaymentPrepaid PaymentMode = "PREPAID"
)

// TrackingEvent is a single normalized event in a shipment's history.
// Events are immutable and owned by the tracking collaborator.
type TrackingEvent struct {
	// Status is the normalized classification of the event.
	Status NormalizedStatus `json:"normalized_status"`
	// OccurredAt is when the event happened at the carrier.
	OccurredAt time.Time `json:"occurred_at"`
	// Reason carries the carrier's failure reason on FAILED events, empty otherwise.
	Reason string `json:"reason,omitempty"`
}

// Shipment is a read-only snapshot of one shipment with its ordered events.
type Shipment struct {
	// ID is the unique shipment identifier.
	ID string `json:"id"`
	// Carrier is the carrier this shipment was assigned to.
	Carrier string `json:"carrier"`
	// AssignedAt is when the shipment was handed to the carrier.
	AssignedAt time.Time `json:"assigned_at"`
	// PaymentMode is COD or PREPAID.
	PaymentMode PaymentMode `json:"payment_mode"`
	// Events is the chronological tracking history.
	Events []TrackingEvent `json:"events"`
}

// firstEvent returns the first event with the given status, in occurrence order.
func firstEvent(events []TrackingEvent, status NormalizedStatus) (TrackingEvent, bool) {
	for _, ev := range events {
		if ev.Status == status {
			return ev, true
		}
	}
	return TrackingEvent{}, false
}

// hasTerminalEvent reports whether the shipment has reached a terminal outcome.
func hasTerminalEvent(events []TrackingEvent) bool {
	for _, ev := range events {
		switch ev.Status {
		case StatusDelivered, StatusReturned, StatusFailed:
			return true
		}
	}
	return false
}
