package gds

import (
	"context"
	"encoding/json"

	"aerobook/internal/trips"
)

// Revalidator re-quotes a stale search result immediately before any
// purchase action. GDS prices expire the instant time passes, so a
// revalidation is mandatory once per leg before both ancillary lookup and
// ticket issuance.
type Revalidator interface {
	Revalidate(ctx context.Context, session Session, resultReference string) (*FreshQuote, error)
}

// Revalidate asks the provider for a current price and a fresh result
// reference. Only the fresh reference may be used for subsequent calls.
func (c *Client) Revalidate(ctx context.Context, session Session, resultReference string) (*FreshQuote, error) {
	if resultReference == "" {
		return nil, &QuoteError{Reason: "empty result reference"}
	}

	raw, err := c.post(ctx, "/api/v1/revalidate", revalidateRequest{
		ResultReference: resultReference,
		TokenID:         session.TokenID,
		TraceID:         session.TraceID,
	})
	if err != nil {
		return nil, &QuoteError{Reason: err.Error(), Raw: raw}
	}

	var resp revalidateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &QuoteError{Reason: "malformed revalidation response", Raw: raw}
	}
	if resp.Error != nil {
		return nil, &QuoteError{Reason: resp.Error.reason(), Raw: raw}
	}
	if resp.ResultReference == "" {
		return nil, &QuoteError{Reason: "provider returned no result", Raw: raw}
	}

	return &FreshQuote{
		ResultReference: resp.ResultReference,
		Fare: trips.FareBreakdown{
			BaseFare:   resp.BaseFare,
			Tax:        resp.Tax,
			Surcharges: resp.Surcharges,
		},
		Raw: raw,
	}, nil
}
