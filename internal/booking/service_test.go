package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"aerobook/internal/gds"
	"aerobook/internal/notifications"
	"aerobook/internal/pricing"
	"aerobook/internal/session"
	"aerobook/internal/trips"
	"aerobook/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepository struct {
	created []*Booking
}

func (r *memRepository) Create(_ context.Context, b *Booking) error {
	r.created = append(r.created, b)
	return nil
}

func (r *memRepository) GetByRef(_ context.Context, ref string) (*Booking, error) {
	for _, b := range r.created {
		if b.BookingRef == ref {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (r *memRepository) ListBySession(_ context.Context, sessionID string, _, _ int) ([]Booking, int64, error) {
	var out []Booking
	for _, b := range r.created {
		if b.SessionID == sessionID {
			out = append(out, *b)
		}
	}
	return out, int64(len(out)), nil
}

type stubPricing struct {
	snapshot pricing.Snapshot
}

func (s *stubPricing) Quote(context.Context, string, bool) (*pricing.Snapshot, error) {
	snap := s.snapshot
	return &snap, nil
}

type memProducer struct {
	events []*notifications.BookingEvent
}

func (p *memProducer) PublishBookingEvent(_ context.Context, e *notifications.BookingEvent) error {
	p.events = append(p.events, e)
	return nil
}

func (p *memProducer) Close() error { return nil }

type serviceFixture struct {
	svc      Service
	tripSvc  trips.Service
	repo     *memRepository
	producer *memProducer
	rev      *fakeRevalidator
	iss      *fakeIssuer
}

func newServiceFixture(t *testing.T, rev *fakeRevalidator, iss *fakeIssuer, legCount int) *serviceFixture {
	t.Helper()
	store := session.NewMemoryStore()
	tripSvc := trips.NewService(store)

	ctx := context.Background()
	require.NoError(t, tripSvc.SetTripType(ctx, "sess-1", trips.KindMultiCity, legCount))
	for i := 0; i < legCount; i++ {
		require.NoError(t, tripSvc.SelectFlight(ctx, "sess-1", i, testLeg(i)))
	}

	repo := &memRepository{}
	producer := &memProducer{}
	svc := NewService(
		tripSvc,
		&stubPricing{snapshot: pricing.Snapshot{Total: 5649, Currency: "INR"}},
		rev,
		iss,
		repo,
		producer,
		0,
		logger.GetDefault(),
	)
	return &serviceFixture{svc: svc, tripSvc: tripSvc, repo: repo, producer: producer, rev: rev, iss: iss}
}

func submissionRequest() BookingSubmissionRequest {
	return BookingSubmissionRequest{Passenger: testPassenger()}
}

func TestSubmitPersistsAndPublishesConfirmedBooking(t *testing.T) {
	f := newServiceFixture(t, &fakeRevalidator{}, &fakeIssuer{}, 2)

	resp, err := f.svc.Submit(context.Background(), "sess-1", testSession(), submissionRequest())

	require.NoError(t, err)
	assert.Equal(t, string(OutcomeAllSucceeded), resp.Status)
	assert.Equal(t, "PNR1", resp.PNR)
	assert.Equal(t, 5649.0, resp.TotalPrice)
	assert.Equal(t, "INR", resp.Currency)
	require.Len(t, resp.Legs, 2)
	assert.True(t, strings.HasPrefix(resp.BookingRef, "FLY-"))

	require.Len(t, f.repo.created, 1)
	record := f.repo.created[0]
	assert.Equal(t, "sess-1", record.SessionID)
	assert.Equal(t, 2, record.TotalLegs)
	require.NotNil(t, record.Passenger)
	assert.Equal(t, "Asha", record.Passenger.FirstName)
	require.Len(t, record.LegTickets, 2)
	assert.Equal(t, "ISSUED", record.LegTickets[0].Status)

	require.Len(t, f.producer.events, 1)
	assert.Equal(t, notifications.EventBookingConfirmed, f.producer.events[0].Type)
}

func TestSubmitPartialFailureIsRecordedAndReported(t *testing.T) {
	rev := &fakeRevalidator{failRef: "ref-1"}
	f := newServiceFixture(t, rev, &fakeIssuer{}, 3)

	resp, err := f.svc.Submit(context.Background(), "sess-1", testSession(), submissionRequest())

	var partial *PartialTripFailure
	require.ErrorAs(t, err, &partial)

	// The partial purchase is reported, not swallowed
	require.NotNil(t, resp)
	assert.Equal(t, string(OutcomePartiallyFailed), resp.Status)
	require.NotNil(t, resp.FailedAtIndex)
	assert.Equal(t, 1, *resp.FailedAtIndex)
	require.Len(t, resp.Legs, 2, "one issued leg plus the failed leg")
	assert.Equal(t, "ISSUED", resp.Legs[0].Status)
	assert.Equal(t, "FAILED", resp.Legs[1].Status)

	require.Len(t, f.repo.created, 1)
	record := f.repo.created[0]
	require.NotNil(t, record.FailedAtIndex)
	assert.Equal(t, 1, *record.FailedAtIndex)
	assert.NotEmpty(t, record.FailureReason)

	require.Len(t, f.producer.events, 1)
	assert.Equal(t, notifications.EventPartialFailure, f.producer.events[0].Type)
}

func TestSubmitCleanFailurePersistsNothing(t *testing.T) {
	rev := &fakeRevalidator{failRef: "ref-0"}
	f := newServiceFixture(t, rev, &fakeIssuer{}, 2)

	resp, err := f.svc.Submit(context.Background(), "sess-1", testSession(), submissionRequest())

	var quoteErr *gds.QuoteError
	require.ErrorAs(t, err, &quoteErr)
	assert.Nil(t, resp)
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.producer.events)
}

func TestSubmitWithoutTrip(t *testing.T) {
	store := session.NewMemoryStore()
	svc := NewService(
		trips.NewService(store),
		&stubPricing{},
		&fakeRevalidator{},
		&fakeIssuer{},
		&memRepository{},
		nil,
		0,
		logger.GetDefault(),
	)

	_, err := svc.Submit(context.Background(), "sess-1", testSession(), submissionRequest())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "trip", validationErr.Field)
}

func TestSubmitPublishesFallbackEvents(t *testing.T) {
	iss := &fakeIssuer{results: map[string]*gds.IssuanceResult{
		"fresh-ref-0": {Success: true, PNR: "PNR1", FallbackSuccess: true},
	}}
	f := newServiceFixture(t, &fakeRevalidator{}, iss, 1)

	_, err := f.svc.Submit(context.Background(), "sess-1", testSession(), submissionRequest())
	require.NoError(t, err)

	require.Len(t, f.producer.events, 2)
	assert.Equal(t, notifications.EventBookingConfirmed, f.producer.events[0].Type)
	assert.Equal(t, notifications.EventFallbackSuccess, f.producer.events[1].Type)
	require.NotNil(t, f.producer.events[1].LegIndex)
	assert.Equal(t, 0, *f.producer.events[1].LegIndex)
}

func TestSubmitWithNilProducer(t *testing.T) {
	store := session.NewMemoryStore()
	tripSvc := trips.NewService(store)
	ctx := context.Background()
	require.NoError(t, tripSvc.SetTripType(ctx, "sess-1", trips.KindOneWay, 1))
	require.NoError(t, tripSvc.SelectFlight(ctx, "sess-1", 0, testLeg(0)))

	svc := NewService(
		tripSvc,
		&stubPricing{snapshot: pricing.Snapshot{Total: 5000, Currency: "INR"}},
		&fakeRevalidator{},
		&fakeIssuer{},
		&memRepository{},
		nil,
		0,
		logger.GetDefault(),
	)

	resp, err := svc.Submit(ctx, "sess-1", testSession(), submissionRequest())
	require.NoError(t, err)
	assert.Equal(t, string(OutcomeAllSucceeded), resp.Status)
}

func TestGenerateBookingReferenceFormat(t *testing.T) {
	ref, err := generateBookingReference()
	require.NoError(t, err)

	parts := strings.Split(ref, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "FLY", parts[0])
	assert.Equal(t, time.Now().Format("20060102"), parts[1])
	assert.Len(t, parts[2], 6)
	for _, c := range parts[2] {
		assert.True(t, c >= 'A' && c <= 'Z')
	}
}
