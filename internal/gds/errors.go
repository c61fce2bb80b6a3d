package gds

import "encoding/json"

// QuoteError means fare revalidation was rejected or returned no usable
// reference. The caller must not proceed to ancillary purchase or ticketing.
type QuoteError struct {
	Reason string
	Raw    json.RawMessage
}

func (e *QuoteError) Error() string {
	return "unable to validate fare for this segment: " + e.Reason
}

// AncillaryError means the ancillary lookup failed. Non-fatal: booking may
// proceed without ancillaries.
type AncillaryError struct {
	Reason string
	Raw    json.RawMessage
}

func (e *AncillaryError) Error() string {
	return "ancillary lookup failed: " + e.Reason
}

// IssuanceError means the ticket purchase was rejected by the provider
type IssuanceError struct {
	Reason string
	Raw    json.RawMessage
}

func (e *IssuanceError) Error() string {
	return "ticket issuance failed: " + e.Reason
}
