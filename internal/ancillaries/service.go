package ancillaries

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"aerobook/internal/gds"
	"aerobook/internal/session"
	"aerobook/internal/shared/constants"
	"aerobook/internal/trips"
)

// Service owns ancillary selection state for every active session. Every
// mutation recomputes the affected leg's subtotal; pricing reads totals
// fresh from here, never from a stored snapshot.
type Service interface {
	// Catalog revalidates the leg and fetches its ancillary offering.
	// Ancillary prices are only valid against a just-quoted reference.
	Catalog(ctx context.Context, sessionID string, providerSession gds.Session, legIndex int) (*gds.AncillaryCatalog, error)

	// Toggle flips one selection on or off and returns the leg summary
	Toggle(ctx context.Context, sessionID string, legIndex int, item Item) (*LegSummary, error)

	// Summaries returns every leg's selections and the overall total
	Summaries(ctx context.Context, sessionID string) ([]LegSummary, float64, error)

	// Total is the sum of all legs' subtotals
	Total(ctx context.Context, sessionID string) (float64, error)
}

type service struct {
	tripSvc     trips.Service
	revalidator gds.Revalidator
	catalogs    gds.CatalogFetcher
	sessions    session.Store

	mu     sync.Mutex
	stores map[string]*SelectionStore
}

// NewService creates the ancillary selection service
func NewService(tripSvc trips.Service, revalidator gds.Revalidator, catalogs gds.CatalogFetcher, sessions session.Store) Service {
	return &service{
		tripSvc:     tripSvc,
		revalidator: revalidator,
		catalogs:    catalogs,
		sessions:    sessions,
		stores:      make(map[string]*SelectionStore),
	}
}

// storeFor returns the session's in-memory store, hydrating it from the
// session cache after a process restart or page reload.
func (s *service) storeFor(ctx context.Context, sessionID string, trip *trips.Trip) *SelectionStore {
	s.mu.Lock()
	store, ok := s.stores[sessionID]
	if !ok {
		store = NewSelectionStore()
		s.stores[sessionID] = store
		s.mu.Unlock()

		for i, leg := range trip.Legs {
			var items []Item
			key := constants.LegKey(constants.KeySelections, i)
			if err := s.sessions.Get(ctx, sessionID, key, &items); err == nil {
				store.Replace(i, leg.OnlineAncillaryEligible, items)
			} else {
				store.SetLegEligibility(i, leg.OnlineAncillaryEligible)
			}
		}
		return store
	}
	s.mu.Unlock()

	for i, leg := range trip.Legs {
		store.SetLegEligibility(i, leg.OnlineAncillaryEligible)
	}
	return store
}

func (s *service) Catalog(ctx context.Context, sessionID string, providerSession gds.Session, legIndex int) (*gds.AncillaryCatalog, error) {
	trip, err := s.tripSvc.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if legIndex < 0 || legIndex >= len(trip.Legs) {
		return nil, fmt.Errorf("leg index %d out of range for %d-leg trip", legIndex, len(trip.Legs))
	}

	leg := trip.Legs[legIndex]

	// Mandatory re-quote before the lookup; the fresh reference replaces
	// the stale one for the rest of the session.
	quote, err := s.revalidator.Revalidate(ctx, providerSession, leg.ResultReference)
	if err != nil {
		return nil, err
	}

	leg.ResultReference = quote.ResultReference
	leg.Fare = quote.Fare
	if err := s.tripSvc.SelectFlight(ctx, sessionID, legIndex, leg); err != nil {
		return nil, fmt.Errorf("failed to store fresh reference for leg %d: %w", legIndex, err)
	}

	return s.catalogs.FetchCatalog(ctx, providerSession, quote.ResultReference, leg.OnlineAncillaryEligible)
}

func (s *service) Toggle(ctx context.Context, sessionID string, legIndex int, item Item) (*LegSummary, error) {
	if !item.Category.IsValid() {
		return nil, fmt.Errorf("unknown ancillary category %q", item.Category)
	}
	if item.Code == "" {
		return nil, errors.New("ancillary code is required")
	}

	trip, err := s.tripSvc.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if legIndex < 0 || legIndex >= len(trip.Legs) {
		return nil, fmt.Errorf("leg index %d out of range for %d-leg trip", legIndex, len(trip.Legs))
	}

	store := s.storeFor(ctx, sessionID, trip)
	store.Toggle(legIndex, item)

	items := store.SelectionsFor(legIndex)
	key := constants.LegKey(constants.KeySelections, legIndex)
	if err := s.sessions.Set(ctx, sessionID, key, items); err != nil {
		return nil, fmt.Errorf("failed to persist selections for leg %d: %w", legIndex, err)
	}

	return &LegSummary{
		LegIndex: legIndex,
		Items:    items,
		Subtotal: store.Subtotal(legIndex),
	}, nil
}

func (s *service) Summaries(ctx context.Context, sessionID string) ([]LegSummary, float64, error) {
	trip, err := s.tripSvc.Current(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}

	store := s.storeFor(ctx, sessionID, trip)
	summaries := make([]LegSummary, 0, len(trip.Legs))
	var total float64
	for i := range trip.Legs {
		subtotal := store.Subtotal(i)
		total += subtotal
		summaries = append(summaries, LegSummary{
			LegIndex: i,
			Items:    store.SelectionsFor(i),
			Subtotal: subtotal,
		})
	}
	return summaries, total, nil
}

func (s *service) Total(ctx context.Context, sessionID string) (float64, error) {
	trip, err := s.tripSvc.Current(ctx, sessionID)
	if err != nil {
		if errors.Is(err, trips.ErrNoTrip) {
			return 0, nil
		}
		return 0, err
	}

	store := s.storeFor(ctx, sessionID, trip)
	var total float64
	for i := range trip.Legs {
		total += store.Subtotal(i)
	}
	return total, nil
}
