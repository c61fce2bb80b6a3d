package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType identifies a booking lifecycle event
type EventType string

const (
	EventBookingConfirmed EventType = "booking.confirmed"
	EventPartialFailure   EventType = "booking.partial_failure"

	// Emitted when an issuance was treated as success only because the
	// provider response had no error field. Consumed by monitoring.
	EventFallbackSuccess EventType = "issuance.fallback_success"
)

// BookingEvent is the message published for every booking outcome
type BookingEvent struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	SessionID  string    `json:"session_id"`
	BookingRef string    `json:"booking_ref"`
	TripType   string    `json:"trip_type"`
	PNR        string    `json:"pnr,omitempty"`
	TotalLegs  int       `json:"total_legs"`
	LegsIssued int       `json:"legs_issued"`

	// Set for partial failures
	FailedAtIndex *int   `json:"failed_at_index,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`

	// Set for fallback successes
	LegIndex *int `json:"leg_index,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NewBookingEvent creates an event with id and timestamp filled in
func NewBookingEvent(eventType EventType, sessionID, bookingRef string) *BookingEvent {
	return &BookingEvent{
		ID:         uuid.New(),
		Type:       eventType,
		SessionID:  sessionID,
		BookingRef: bookingRef,
		CreatedAt:  time.Now(),
	}
}

// ToJSON serializes the event for the wire
func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events for one session to the same partition
func (e *BookingEvent) PartitionKey() string {
	return e.SessionID
}
