package pricing

import (
	"context"
	"fmt"

	"aerobook/internal/ancillaries"
	"aerobook/internal/gds"
	"aerobook/internal/shared/config"
	"aerobook/internal/trips"
)

// Service produces the payable quote for the session's current trip
type Service interface {
	Quote(ctx context.Context, sessionID string, refundableUpgrade bool) (*Snapshot, error)
}

type service struct {
	tripSvc      trips.Service
	ancillarySvc ancillaries.Service
	refundQuoter gds.RefundQuoter
	fees         config.PricingConfig
}

// NewService creates a pricing service
func NewService(tripSvc trips.Service, ancillarySvc ancillaries.Service, refundQuoter gds.RefundQuoter, fees config.PricingConfig) Service {
	return &service{
		tripSvc:      tripSvc,
		ancillarySvc: ancillarySvc,
		refundQuoter: refundQuoter,
		fees:         fees,
	}
}

// Quote reads trip and ancillary state fresh and recomputes the snapshot.
// Nothing here is cached, so a leg price update from revalidation or an
// ancillary toggle is reflected on the next call.
func (s *service) Quote(ctx context.Context, sessionID string, refundableUpgrade bool) (*Snapshot, error) {
	trip, err := s.tripSvc.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ancillaryTotal, err := s.ancillarySvc.Total(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to total ancillaries: %w", err)
	}

	var refundablePrice float64
	if refundableUpgrade {
		refundablePrice, err = s.refundQuoter.Lookup(ctx, trip.BaseTotal(), trip.StartDate())
		if err != nil {
			return nil, fmt.Errorf("failed to price refundable upgrade: %w", err)
		}
	}

	snapshot := ComputeTotal(trip, ancillaryTotal, refundableUpgrade, refundablePrice, s.fees.ConvenienceFee)
	snapshot.Currency = s.fees.Currency
	return &snapshot, nil
}
