package trips

import (
	"context"
	"errors"
	"fmt"

	"aerobook/internal/session"
	"aerobook/internal/shared/constants"
)

// ErrNoTrip is returned when the session holds no usable trip. An
// inconsistent trip (declared type disagrees with stored leg data) is
// reported the same way: booking must be blocked, not guessed at.
var ErrNoTrip = errors.New("no trip selected for this session")

// descriptor is what the UI persists when the user picks a trip type
type descriptor struct {
	Kind     Kind `json:"kind"`
	LegCount int  `json:"leg_count"`
}

// Service owns the per-session trip selection. Legs are captured one at a
// time as the user picks search results; the assembled trip is rebuilt from
// the session store on every read so a page reload keeps the booking.
type Service interface {
	SetTripType(ctx context.Context, sessionID string, kind Kind, legCount int) error
	SelectFlight(ctx context.Context, sessionID string, legIndex int, leg Leg) error
	Current(ctx context.Context, sessionID string) (*Trip, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	sessions session.Store
}

// NewService creates a trip selection service
func NewService(sessions session.Store) Service {
	return &service{sessions: sessions}
}

func (s *service) SetTripType(ctx context.Context, sessionID string, kind Kind, legCount int) error {
	if !kind.IsValid() {
		return fmt.Errorf("unknown trip type %q", kind)
	}
	switch kind {
	case KindOneWay:
		legCount = 1
	case KindRoundTrip:
		legCount = 2
	case KindMultiCity:
		if legCount < 1 || legCount > MaxMultiCityLegs {
			return fmt.Errorf("multi-city leg count must be between 1 and %d, got %d", MaxMultiCityLegs, legCount)
		}
	}
	return s.sessions.Set(ctx, sessionID, constants.KeyTripDescriptor, descriptor{Kind: kind, LegCount: legCount})
}

func (s *service) SelectFlight(ctx context.Context, sessionID string, legIndex int, leg Leg) error {
	var desc descriptor
	if err := s.sessions.Get(ctx, sessionID, constants.KeyTripDescriptor, &desc); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return ErrNoTrip
		}
		return fmt.Errorf("failed to load trip descriptor: %w", err)
	}
	if legIndex < 0 || legIndex >= desc.LegCount {
		return fmt.Errorf("leg index %d out of range for %d-leg trip", legIndex, desc.LegCount)
	}
	if leg.ResultReference == "" {
		return fmt.Errorf("selected flight carries no result reference")
	}
	key := constants.LegKey(constants.KeySelectedFlight, legIndex)
	return s.sessions.Set(ctx, sessionID, key, leg)
}

// Current rebuilds the trip from session state. Returns ErrNoTrip when the
// descriptor is missing, any leg slot is empty, or the assembled trip fails
// validation.
func (s *service) Current(ctx context.Context, sessionID string) (*Trip, error) {
	var desc descriptor
	if err := s.sessions.Get(ctx, sessionID, constants.KeyTripDescriptor, &desc); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrNoTrip
		}
		return nil, fmt.Errorf("failed to load trip descriptor: %w", err)
	}

	legs := make([]Leg, 0, desc.LegCount)
	for i := 0; i < desc.LegCount; i++ {
		var leg Leg
		key := constants.LegKey(constants.KeySelectedFlight, i)
		if err := s.sessions.Get(ctx, sessionID, key, &leg); err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return nil, ErrNoTrip
			}
			return nil, fmt.Errorf("failed to load leg %d: %w", i, err)
		}
		legs = append(legs, leg)
	}

	trip := &Trip{Kind: desc.Kind, Legs: legs}
	if err := trip.Validate(); err != nil {
		return nil, ErrNoTrip
	}
	return trip, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	var desc descriptor
	err := s.sessions.Get(ctx, sessionID, constants.KeyTripDescriptor, &desc)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		return err
	}
	for i := 0; i < desc.LegCount; i++ {
		key := constants.LegKey(constants.KeySelectedFlight, i)
		if err := s.sessions.Clear(ctx, sessionID, key); err != nil {
			return err
		}
	}
	return s.sessions.Clear(ctx, sessionID, constants.KeyTripDescriptor)
}
