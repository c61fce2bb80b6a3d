package gds

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aerobook/pkg/retry"
)

// RefundQuoter prices the optional refundable-fare upgrade. The quote is
// an opaque lookup by the refund-insurance provider, keyed on the payable
// base and the trip start date.
type RefundQuoter interface {
	Lookup(ctx context.Context, baseTotal float64, tripStart time.Time) (float64, error)
}

type refundRequest struct {
	BaseTotal float64 `json:"base_total"`
	TripStart string  `json:"trip_start"`
}

type refundResponse struct {
	Price float64       `json:"price"`
	Error *payloadError `json:"error,omitempty"`
}

// Lookup fetches the refundable upgrade price. Idempotent read, retried.
func (c *Client) Lookup(ctx context.Context, baseTotal float64, tripStart time.Time) (float64, error) {
	var raw []byte
	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
		var callErr error
		raw, callErr = c.post(ctx, "/api/v1/refund-quote", refundRequest{
			BaseTotal: baseTotal,
			TripStart: tripStart.Format("2006-01-02"),
		})
		return callErr
	})
	if err != nil {
		return 0, fmt.Errorf("refund quote lookup failed: %w", err)
	}

	var resp refundResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return 0, fmt.Errorf("malformed refund quote response: %w", err)
	}
	if resp.Error != nil {
		return 0, fmt.Errorf("refund quote rejected: %s", resp.Error.reason())
	}

	return resp.Price, nil
}
