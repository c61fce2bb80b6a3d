package gds

import (
	"context"
	"encoding/json"
)

// Issuer performs the actual purchase/ticketing call for one leg. Issuance
// is not idempotent and must never be retried; a failure is surfaced once
// and requires explicit user-initiated resubmission.
type Issuer interface {
	Issue(ctx context.Context, session Session, freshReference string, passenger PassengerPayload) (*IssuanceResult, error)
}

// Issue buys the ticket for one leg against a freshly revalidated
// reference and normalizes the provider's response into an IssuanceResult.
func (c *Client) Issue(ctx context.Context, session Session, freshReference string, passenger PassengerPayload) (*IssuanceResult, error) {
	raw, err := c.post(ctx, "/api/v1/issue", issueRequest{
		ResultReference: freshReference,
		Passenger:       passenger,
		TokenID:         session.TokenID,
		TraceID:         session.TraceID,
	})
	if err != nil {
		return nil, &IssuanceError{Reason: err.Error(), Raw: raw}
	}

	result := DecodeIssuanceResponse(raw)
	return &result, nil
}

// issuanceShapeA is the documented response: an explicit status flag
type issuanceShapeA struct {
	Status    string `json:"status"`
	PNR       string `json:"pnr"`
	BookingID string `json:"booking_id"`
}

// issuanceShapeB is the older nested shape still returned by some carriers
type issuanceShapeB struct {
	Ticket *struct {
		Issued    bool   `json:"issued"`
		PNR       string `json:"pnr"`
		BookingID string `json:"id"`
	} `json:"ticket"`
}

// DecodeIssuanceResponse collapses the provider's inconsistent success
// shapes into the one canonical result. Order of checks:
//  1. explicit error field -> failure
//  2. shape A status flag  -> success/failure
//  3. shape B issued flag  -> success/failure
//  4. a response object present with no error field -> success, flagged
//     for monitoring (the upstream success shape is not consistent; this
//     fallback is deliberate, not a bug)
func DecodeIssuanceResponse(raw []byte) IssuanceResult {
	var envelope struct {
		Error *payloadError `json:"error,omitempty"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return IssuanceResult{
			Success:       false,
			FailureReason: "malformed issuance response",
			Raw:           raw,
		}
	}
	if envelope.Error != nil {
		return IssuanceResult{
			Success:       false,
			FailureReason: envelope.Error.reason(),
			Raw:           raw,
		}
	}

	var shapeA issuanceShapeA
	if json.Unmarshal(raw, &shapeA) == nil && shapeA.Status != "" {
		if shapeA.Status == "CONFIRMED" || shapeA.Status == "SUCCESS" {
			return IssuanceResult{
				Success:   true,
				PNR:       shapeA.PNR,
				BookingID: shapeA.BookingID,
				Raw:       raw,
			}
		}
		return IssuanceResult{
			Success:       false,
			FailureReason: "provider status " + shapeA.Status,
			Raw:           raw,
		}
	}

	var shapeB issuanceShapeB
	if json.Unmarshal(raw, &shapeB) == nil && shapeB.Ticket != nil {
		if shapeB.Ticket.Issued {
			return IssuanceResult{
				Success:   true,
				PNR:       shapeB.Ticket.PNR,
				BookingID: shapeB.Ticket.BookingID,
				Raw:       raw,
			}
		}
		return IssuanceResult{
			Success:       false,
			FailureReason: "ticket not issued",
			Raw:           raw,
		}
	}

	// No error field and no recognized status: treat as success, flagged
	return IssuanceResult{
		Success:         true,
		FallbackSuccess: true,
		Raw:             raw,
	}
}
