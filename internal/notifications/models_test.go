package notifications

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingEvent(t *testing.T) {
	event := NewBookingEvent(EventBookingConfirmed, "sess-1", "FLY-20260914-ABCDEF")

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, EventBookingConfirmed, event.Type)
	assert.Equal(t, "sess-1", event.SessionID)
	assert.Equal(t, "FLY-20260914-ABCDEF", event.BookingRef)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestBookingEventPartitionKey(t *testing.T) {
	// All events for one session must land on the same partition so
	// consumers see them in order
	a := NewBookingEvent(EventBookingConfirmed, "sess-1", "ref-a")
	b := NewBookingEvent(EventPartialFailure, "sess-1", "ref-b")

	assert.Equal(t, a.PartitionKey(), b.PartitionKey())
}

func TestBookingEventToJSON(t *testing.T) {
	failedAt := 1
	event := NewBookingEvent(EventPartialFailure, "sess-1", "FLY-20260914-ABCDEF")
	event.TripType = "MULTI_CITY"
	event.TotalLegs = 3
	event.LegsIssued = 1
	event.FailedAtIndex = &failedAt
	event.FailureReason = "seats no longer available"

	raw, err := event.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "booking.partial_failure", decoded["type"])
	assert.Equal(t, float64(1), decoded["failed_at_index"])

	// Omitted for non-fallback events
	_, hasLegIndex := decoded["leg_index"]
	assert.False(t, hasLegIndex)
}
