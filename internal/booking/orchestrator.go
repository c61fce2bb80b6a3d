package booking

import (
	"context"
	"strings"
	"time"

	"aerobook/internal/gds"
	"aerobook/internal/trips"
	"aerobook/pkg/logger"
)

// PassengerForm is the lead adult passenger for the booking. The flow
// supports exactly one passenger per submission.
type PassengerForm struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
}

// SubmitInput is everything the orchestrator needs for one attempt
type SubmitInput struct {
	Trip      *trips.Trip
	Passenger PassengerForm
	Session   gds.Session
}

// Orchestrator drives the booking flow: validate, then revalidate and
// issue one leg at a time, strictly in order. Providers require ordered,
// rate-limited calls per session, and partial-failure semantics depend on
// a later leg never ticketing after an earlier one failed. The machine is
// not resumable; a failed attempt restarts from idle.
type Orchestrator struct {
	revalidator   gds.Revalidator
	issuer        gds.Issuer
	interLegDelay time.Duration
	log           *logger.Logger

	// replaceable in tests
	sleep func(time.Duration)

	state State
}

// NewOrchestrator creates a booking orchestrator
func NewOrchestrator(revalidator gds.Revalidator, issuer gds.Issuer, interLegDelay time.Duration, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		revalidator:   revalidator,
		issuer:        issuer,
		interLegDelay: interLegDelay,
		log:           log,
		sleep:         time.Sleep,
		state:         StateIdle,
	}
}

// State returns the machine's current state
func (o *Orchestrator) State() State {
	return o.state
}

// Run executes one booking attempt. Guards reject bad input before any
// network call; after that, legs are processed in order and the first
// failure halts the sequence. Already-ticketed legs are never rolled back;
// they are reported in the outcome so a partial purchase can be reconciled.
func (o *Orchestrator) Run(ctx context.Context, input SubmitInput) (*Outcome, error) {
	o.state = StateValidating

	if err := o.validate(input); err != nil {
		o.state = StateAborted
		return nil, err
	}

	// Return-leg ticketing is unimplemented upstream; refuse the whole
	// submission rather than silently booking only the outbound.
	if input.Trip.Kind == trips.KindRoundTrip {
		o.state = StateAborted
		return nil, ErrRoundTripNotImplemented
	}

	o.state = StateIssuing
	outcome := &Outcome{FailedAtIndex: -1}

	for i, leg := range input.Trip.Legs {
		quote, err := o.revalidator.Revalidate(ctx, input.Session, leg.ResultReference)
		if err != nil {
			o.log.LogQuoteRefused(ctx, i, err.Error())
			return o.fail(ctx, outcome, i, err)
		}

		// Payload fares come from the quote just obtained, never the
		// search-time price.
		payload := buildPassengerPayload(input.Passenger, quote.Fare)

		result, err := o.issuer.Issue(ctx, input.Session, quote.ResultReference, payload)
		if err != nil {
			return o.fail(ctx, outcome, i, err)
		}
		if !result.Success {
			issErr := &gds.IssuanceError{Reason: result.FailureReason, Raw: result.Raw}
			outcome.FailureRaw = result.Raw
			return o.fail(ctx, outcome, i, issErr)
		}

		if result.FallbackSuccess {
			o.log.LogFallbackSuccess(ctx, i)
		}
		o.log.LogLegTicketed(ctx, i, result.PNR, result.BookingID)

		outcome.Results = append(outcome.Results, TicketResult{
			LegIndex:          i,
			PNR:               result.PNR,
			ProviderBookingID: result.BookingID,
			Fare:              quote.Fare,
			FallbackSuccess:   result.FallbackSuccess,
			Raw:               result.Raw,
		})

		// Provider rate limit: pause between leg issuances
		if i < len(input.Trip.Legs)-1 {
			o.sleep(o.interLegDelay)
		}
	}

	o.state = StateSucceeded
	outcome.Status = OutcomeAllSucceeded
	return outcome, nil
}

// fail records where the sequence stopped. With no legs ticketed the
// attempt simply aborts with the causal error; with earlier legs ticketed
// the caller gets a PartialTripFailure carrying the preserved ledger.
func (o *Orchestrator) fail(ctx context.Context, outcome *Outcome, legIndex int, cause error) (*Outcome, error) {
	outcome.FailedAtIndex = legIndex
	outcome.FailureReason = cause.Error()

	if len(outcome.Results) == 0 {
		o.state = StateAborted
		return nil, cause
	}

	o.state = StatePartiallyFailed
	outcome.Status = OutcomePartiallyFailed
	o.log.LogPartialFailure(ctx, legIndex, len(outcome.Results), cause.Error())
	return outcome, &PartialTripFailure{Outcome: outcome}
}

// validate enforces the entry guards. Violations abort with an error that
// names the missing or inconsistent field, before any network contact.
func (o *Orchestrator) validate(input SubmitInput) error {
	if input.Trip == nil {
		return &ValidationError{Field: "trip", Message: "no trip selected"}
	}
	if err := input.Trip.Validate(); err != nil {
		return &ValidationError{Field: "trip", Message: err.Error()}
	}
	if !input.Session.Valid() {
		return &ValidationError{Field: "session", Message: "provider session tokens missing"}
	}

	p := input.Passenger
	required := []struct {
		field string
		value string
	}{
		{"first_name", p.FirstName},
		{"last_name", p.LastName},
		{"gender", p.Gender},
		{"date_of_birth", p.DateOfBirth},
		{"email", p.Email},
		{"phone", p.Phone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: "is required"}
		}
	}

	return nil
}

func buildPassengerPayload(p PassengerForm, fare trips.FareBreakdown) gds.PassengerPayload {
	return gds.PassengerPayload{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Gender:      p.Gender,
		DateOfBirth: p.DateOfBirth,
		Email:       p.Email,
		Phone:       p.Phone,
		Nationality: p.Nationality,
		Address:     p.Address,
		BaseFare:    fare.BaseFare,
		Tax:         fare.Tax,
		Surcharges:  fare.Surcharges,
	}
}
