package booking

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"aerobook/internal/gds"
	"aerobook/internal/notifications"
	"aerobook/internal/pricing"
	"aerobook/internal/trips"
	"aerobook/pkg/logger"
)

// Service is the entry point for booking submissions
type Service interface {
	Submit(ctx context.Context, sessionID string, providerSession gds.Session, req BookingSubmissionRequest) (*BookingSubmissionResponse, error)
	GetBooking(ctx context.Context, bookingRef string) (*Booking, error)
	GetSessionBookings(ctx context.Context, sessionID string, limit, offset int) ([]Booking, int64, error)
}

type service struct {
	tripSvc       trips.Service
	pricingSvc    pricing.Service
	revalidator   gds.Revalidator
	issuer        gds.Issuer
	repo          Repository
	producer      notifications.Producer
	interLegDelay time.Duration
	log           *logger.Logger
}

// NewService creates a booking service. producer may be nil when Kafka is
// disabled.
func NewService(
	tripSvc trips.Service,
	pricingSvc pricing.Service,
	revalidator gds.Revalidator,
	issuer gds.Issuer,
	repo Repository,
	producer notifications.Producer,
	interLegDelay time.Duration,
	log *logger.Logger,
) Service {
	return &service{
		tripSvc:       tripSvc,
		pricingSvc:    pricingSvc,
		revalidator:   revalidator,
		issuer:        issuer,
		repo:          repo,
		producer:      producer,
		interLegDelay: interLegDelay,
		log:           log,
	}
}

// Submit runs one booking attempt end to end: load the session's trip,
// drive the orchestrator, persist whatever ticketed, and report. The flow
// is not resumable; a failed attempt must be re-initiated by the user.
func (s *service) Submit(ctx context.Context, sessionID string, providerSession gds.Session, req BookingSubmissionRequest) (*BookingSubmissionResponse, error) {
	trip, err := s.tripSvc.Current(ctx, sessionID)
	if err != nil {
		if errors.Is(err, trips.ErrNoTrip) {
			return nil, &ValidationError{Field: "trip", Message: "no complete trip selected for this session"}
		}
		return nil, fmt.Errorf("failed to load trip: %w", err)
	}

	s.log.LogBookingSubmitted(ctx, trip.Kind.String(), len(trip.Legs))

	// Price the attempt before issuing so the recorded total reflects what
	// the user saw. Recomputed fresh, never read from a stored snapshot.
	snapshot, err := s.pricingSvc.Quote(ctx, sessionID, req.RefundableUpgrade)
	if err != nil {
		return nil, fmt.Errorf("failed to price booking: %w", err)
	}

	// One orchestrator per attempt: the machine starts from idle each time
	orch := NewOrchestrator(s.revalidator, s.issuer, s.interLegDelay, s.log)
	outcome, runErr := orch.Run(ctx, SubmitInput{
		Trip:      trip,
		Passenger: req.Passenger,
		Session:   providerSession,
	})

	if runErr != nil {
		var partial *PartialTripFailure
		if errors.As(runErr, &partial) {
			// Some legs purchased: record them so the partial purchase
			// can be reconciled, then report distinctly from a clean
			// failure.
			record := s.buildRecord(sessionID, trip, req.Passenger, snapshot, partial.Outcome)
			if err := s.repo.Create(ctx, record); err != nil {
				s.log.ErrorWithContext(ctx, "failed to persist partial booking", err, map[string]interface{}{
					"session_id": sessionID,
				})
			}
			s.publishOutcome(ctx, sessionID, record, partial.Outcome)
			return buildSubmissionResponse(record, partial.Outcome), runErr
		}
		return nil, runErr
	}

	record := s.buildRecord(sessionID, trip, req.Passenger, snapshot, outcome)
	if err := s.repo.Create(ctx, record); err != nil {
		// The tickets are issued; a ledger write failure must not be
		// reported as a booking failure
		s.log.ErrorWithContext(ctx, "failed to persist booking", err, map[string]interface{}{
			"session_id": sessionID,
			"pnr":        outcome.TripPNR(),
		})
	}
	s.publishOutcome(ctx, sessionID, record, outcome)

	return buildSubmissionResponse(record, outcome), nil
}

func (s *service) GetBooking(ctx context.Context, bookingRef string) (*Booking, error) {
	return s.repo.GetByRef(ctx, bookingRef)
}

func (s *service) GetSessionBookings(ctx context.Context, sessionID string, limit, offset int) ([]Booking, int64, error) {
	return s.repo.ListBySession(ctx, sessionID, limit, offset)
}

// buildRecord maps an outcome ledger onto the persisted booking row
func (s *service) buildRecord(sessionID string, trip *trips.Trip, passenger PassengerForm, snapshot *pricing.Snapshot, outcome *Outcome) *Booking {
	ref, err := generateBookingReference()
	if err != nil {
		ref = "FLY-" + time.Now().Format("20060102150405")
	}

	record := &Booking{
		SessionID:         sessionID,
		TripType:          trip.Kind.String(),
		TotalLegs:         len(trip.Legs),
		TotalPrice:        snapshot.Total,
		Currency:          snapshot.Currency,
		Status:            string(outcome.Status),
		BookingRef:        ref,
		PNR:               outcome.TripPNR(),
		ProviderBookingID: outcome.TripBookingID(),
		Passenger: &Passenger{
			FirstName:   passenger.FirstName,
			LastName:    passenger.LastName,
			Gender:      passenger.Gender,
			DateOfBirth: passenger.DateOfBirth,
			Email:       passenger.Email,
			Phone:       passenger.Phone,
			Nationality: passenger.Nationality,
			Address:     passenger.Address,
		},
	}

	for _, result := range outcome.Results {
		leg := trip.Legs[result.LegIndex]
		record.LegTickets = append(record.LegTickets, LegTicket{
			LegIndex:          result.LegIndex,
			Origin:            leg.Origin,
			Destination:       leg.Destination,
			Carrier:           leg.Carrier,
			Status:            "ISSUED",
			PNR:               result.PNR,
			ProviderBookingID: result.ProviderBookingID,
			BaseFare:          result.Fare.BaseFare,
			Tax:               result.Fare.Tax,
			Surcharges:        result.Fare.Surcharges,
			FallbackSuccess:   result.FallbackSuccess,
			RawResponse:       string(result.Raw),
		})
	}

	if outcome.Status == OutcomePartiallyFailed {
		failedAt := outcome.FailedAtIndex
		record.FailedAtIndex = &failedAt
		record.FailureReason = outcome.FailureReason

		leg := trip.Legs[failedAt]
		record.LegTickets = append(record.LegTickets, LegTicket{
			LegIndex:      failedAt,
			Origin:        leg.Origin,
			Destination:   leg.Destination,
			Carrier:       leg.Carrier,
			Status:        "FAILED",
			FailureReason: outcome.FailureReason,
			RawResponse:   string(outcome.FailureRaw),
		})
	}

	return record
}

// publishOutcome emits lifecycle events for monitoring and downstream
// consumers; failures here never affect the booking result
func (s *service) publishOutcome(ctx context.Context, sessionID string, record *Booking, outcome *Outcome) {
	if s.producer == nil {
		return
	}

	eventType := notifications.EventBookingConfirmed
	if outcome.Status == OutcomePartiallyFailed {
		eventType = notifications.EventPartialFailure
	}

	event := notifications.NewBookingEvent(eventType, sessionID, record.BookingRef)
	event.TripType = record.TripType
	event.PNR = record.PNR
	event.TotalLegs = record.TotalLegs
	event.LegsIssued = len(outcome.Results)
	if outcome.Status == OutcomePartiallyFailed {
		failedAt := outcome.FailedAtIndex
		event.FailedAtIndex = &failedAt
		event.FailureReason = outcome.FailureReason
	}
	if err := s.producer.PublishBookingEvent(ctx, event); err != nil {
		s.log.ErrorWithContext(ctx, "failed to publish booking event", err, map[string]interface{}{
			"booking_ref": record.BookingRef,
		})
	}

	for _, result := range outcome.Results {
		if !result.FallbackSuccess {
			continue
		}
		legIndex := result.LegIndex
		fallbackEvent := notifications.NewBookingEvent(notifications.EventFallbackSuccess, sessionID, record.BookingRef)
		fallbackEvent.LegIndex = &legIndex
		if err := s.producer.PublishBookingEvent(ctx, fallbackEvent); err != nil {
			s.log.ErrorWithContext(ctx, "failed to publish fallback event", err, map[string]interface{}{
				"booking_ref": record.BookingRef,
			})
		}
	}
}

// generateBookingReference generates a unique user-facing reference
func generateBookingReference() (string, error) {
	timestamp := time.Now().Format("20060102")

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 6)
	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("FLY-%s-%s", timestamp, string(randomPart)), nil
}
