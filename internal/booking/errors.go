package booking

import (
	"errors"
	"fmt"
)

// ErrRoundTripNotImplemented is surfaced when a round-trip submission is
// attempted. Return-leg ticketing is unimplemented upstream; refusing
// explicitly beats silently issuing only the outbound leg.
var ErrRoundTripNotImplemented = errors.New("round-trip ticketing is not implemented")

// ValidationError is a client-side input problem caught before any network
// call is made. It names the offending field so the message is actionable.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// PartialTripFailure means some legs ticketed before a later leg failed.
// The succeeded legs are preserved in the outcome; no automatic void or
// compensation is performed, reconciliation is manual.
type PartialTripFailure struct {
	Outcome *Outcome
}

func (e *PartialTripFailure) Error() string {
	return fmt.Sprintf("booking failed at leg %d after %d leg(s) ticketed: %s",
		e.Outcome.FailedAtIndex, len(e.Outcome.Results), e.Outcome.FailureReason)
}
