package booking

import (
	"encoding/json"

	"aerobook/internal/trips"
)

// State is the orchestrator's position in the booking flow
type State string

const (
	StateIdle            State = "IDLE"
	StateValidating      State = "VALIDATING"
	StateIssuing         State = "ISSUING"
	StateSucceeded       State = "SUCCEEDED"
	StatePartiallyFailed State = "PARTIALLY_FAILED"
	StateAborted         State = "ABORTED"
)

// OutcomeStatus classifies a finished booking attempt
type OutcomeStatus string

const (
	OutcomeAllSucceeded    OutcomeStatus = "ALL_SUCCEEDED"
	OutcomePartiallyFailed OutcomeStatus = "PARTIALLY_FAILED"
)

// TicketResult is one leg's successful issuance. The raw provider payload
// is retained for audit and support diagnostics.
type TicketResult struct {
	LegIndex          int                 `json:"leg_index"`
	PNR               string              `json:"pnr"`
	ProviderBookingID string              `json:"provider_booking_id"`
	Fare              trips.FareBreakdown `json:"fare"`
	FallbackSuccess   bool                `json:"fallback_success,omitempty"`
	Raw               json.RawMessage     `json:"-"`
}

// Outcome is the append-only ledger of per-leg results for one booking
// attempt. Results only ever grows; a failed attempt keeps every leg that
// ticketed before the failure.
type Outcome struct {
	Status  OutcomeStatus  `json:"status"`
	Results []TicketResult `json:"results"`

	// Set when Status is PARTIALLY_FAILED
	FailedAtIndex int             `json:"failed_at_index"`
	FailureReason string          `json:"failure_reason,omitempty"`
	FailureRaw    json.RawMessage `json:"-"`
}

// TripPNR returns the first leg's PNR: multi-city legs are issued as
// independent bookings sharing one user-facing confirmation.
func (o *Outcome) TripPNR() string {
	if len(o.Results) == 0 {
		return ""
	}
	return o.Results[0].PNR
}

// TripBookingID returns the first leg's provider booking id
func (o *Outcome) TripBookingID() string {
	if len(o.Results) == 0 {
		return ""
	}
	return o.Results[0].ProviderBookingID
}
