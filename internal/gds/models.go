package gds

import (
	"encoding/json"

	"aerobook/internal/trips"
)

// FreshQuote is the result of a fare revalidation. The new result
// reference replaces the original for every subsequent call; the provider
// invalidates old references on re-quote.
type FreshQuote struct {
	ResultReference string              `json:"result_reference"`
	Fare            trips.FareBreakdown `json:"fare"`
	Raw             json.RawMessage     `json:"-"`
}

// PassengerPayload is the single-passenger ticketing payload. Fare fields
// come from the just-obtained fresh quote, never the search-time price.
type PassengerPayload struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`

	BaseFare   float64 `json:"base_fare"`
	Tax        float64 `json:"tax"`
	Surcharges float64 `json:"surcharges"`
}

// IssuanceResult is the single canonical outcome of a ticket purchase.
// Provider responses arrive in more than one shape; they are normalized
// here, at the adapter boundary, so the orchestrator only ever sees this.
type IssuanceResult struct {
	Success   bool   `json:"success"`
	PNR       string `json:"pnr,omitempty"`
	BookingID string `json:"booking_id,omitempty"`

	// True when success was inferred only from the absence of an error
	// field rather than an explicit status flag. Flagged for monitoring.
	FallbackSuccess bool `json:"fallback_success,omitempty"`

	FailureReason string          `json:"failure_reason,omitempty"`
	Raw           json.RawMessage `json:"-"`
}

// Wire shapes

type revalidateRequest struct {
	ResultReference string `json:"result_reference"`
	TokenID         string `json:"token_id"`
	TraceID         string `json:"trace_id"`
}

type revalidateResponse struct {
	ResultReference string   `json:"result_reference"`
	BaseFare        float64  `json:"base_fare"`
	Tax             float64  `json:"tax"`
	Surcharges      float64  `json:"surcharges"`
	Error           *payloadError `json:"error,omitempty"`
}

type ancillaryRequest struct {
	ResultReference string `json:"result_reference"`
	TokenID         string `json:"token_id"`
	TraceID         string `json:"trace_id"`
}

// lccAncillaryResponse is the priced catalog returned for online-eligible
// (LCC) legs
type lccAncillaryResponse struct {
	Baggage []wireOption `json:"baggage_options"`
	Meals   []wireOption `json:"meal_options"`
	SeatMap []wireSeat   `json:"seat_map"`
	Error   *payloadError `json:"error,omitempty"`
}

// advisoryAncillaryResponse is the unpriced preference list returned for
// carriers that only take ancillary requests on the day of departure
type advisoryAncillaryResponse struct {
	BaggagePreferences []wireAdvisory `json:"baggage_preferences"`
	MealPreferences    []wireAdvisory `json:"meal_preferences"`
	Error              *payloadError  `json:"error,omitempty"`
}

type wireOption struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type wireSeat struct {
	Code  string  `json:"code"`
	Row   string  `json:"row"`
	Seat  string  `json:"seat"`
	Price float64 `json:"price"`
}

type wireAdvisory struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type issueRequest struct {
	ResultReference string           `json:"result_reference"`
	Passenger       PassengerPayload `json:"passenger"`
	TokenID         string           `json:"token_id"`
	TraceID         string           `json:"trace_id"`
}

// payloadError is the provider's explicit error envelope
type payloadError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e *payloadError) reason() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}
