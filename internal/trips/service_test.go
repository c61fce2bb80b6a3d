package trips

import (
	"context"
	"testing"

	"aerobook/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceSelectAndRebuild(t *testing.T) {
	ctx := context.Background()
	svc := NewService(session.NewMemoryStore())
	const sid = "sess-1"

	require.NoError(t, svc.SetTripType(ctx, sid, KindMultiCity, 2))
	require.NoError(t, svc.SelectFlight(ctx, sid, 0, sampleLeg("r1")))
	require.NoError(t, svc.SelectFlight(ctx, sid, 1, sampleLeg("r2")))

	trip, err := svc.Current(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, KindMultiCity, trip.Kind)
	require.Len(t, trip.Legs, 2)
	assert.Equal(t, "r1", trip.Legs[0].ResultReference)
	assert.Equal(t, "r2", trip.Legs[1].ResultReference)
}

func TestServiceCurrentWithoutDescriptor(t *testing.T) {
	svc := NewService(session.NewMemoryStore())

	_, err := svc.Current(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrNoTrip)
}

func TestServiceCurrentWithMissingLeg(t *testing.T) {
	ctx := context.Background()
	svc := NewService(session.NewMemoryStore())
	const sid = "sess-1"

	// Round-trip declared but only the outbound leg selected: the trip is
	// unusable and must read as absent.
	require.NoError(t, svc.SetTripType(ctx, sid, KindRoundTrip, 2))
	require.NoError(t, svc.SelectFlight(ctx, sid, 0, sampleLeg("r1")))

	_, err := svc.Current(ctx, sid)
	assert.ErrorIs(t, err, ErrNoTrip)
}

func TestServiceReSelectOverwritesLeg(t *testing.T) {
	ctx := context.Background()
	svc := NewService(session.NewMemoryStore())
	const sid = "sess-1"

	require.NoError(t, svc.SetTripType(ctx, sid, KindOneWay, 1))
	require.NoError(t, svc.SelectFlight(ctx, sid, 0, sampleLeg("stale")))
	require.NoError(t, svc.SelectFlight(ctx, sid, 0, sampleLeg("fresh")))

	trip, err := svc.Current(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "fresh", trip.Legs[0].ResultReference)
}

func TestServiceSelectFlightGuards(t *testing.T) {
	ctx := context.Background()
	svc := NewService(session.NewMemoryStore())
	const sid = "sess-1"

	err := svc.SelectFlight(ctx, sid, 0, sampleLeg("r1"))
	assert.ErrorIs(t, err, ErrNoTrip, "selecting before a trip type is set")

	require.NoError(t, svc.SetTripType(ctx, sid, KindOneWay, 1))

	err = svc.SelectFlight(ctx, sid, 3, sampleLeg("r1"))
	assert.ErrorContains(t, err, "out of range")

	err = svc.SelectFlight(ctx, sid, 0, sampleLeg(""))
	assert.ErrorContains(t, err, "no result reference")
}

func TestServiceSetTripTypeNormalizesLegCount(t *testing.T) {
	ctx := context.Background()
	svc := NewService(session.NewMemoryStore())
	const sid = "sess-1"

	// One-way ignores whatever leg count the caller passes
	require.NoError(t, svc.SetTripType(ctx, sid, KindOneWay, 7))
	require.NoError(t, svc.SelectFlight(ctx, sid, 0, sampleLeg("r1")))
	trip, err := svc.Current(ctx, sid)
	require.NoError(t, err)
	assert.Len(t, trip.Legs, 1)

	assert.Error(t, svc.SetTripType(ctx, sid, KindMultiCity, 0))
	assert.Error(t, svc.SetTripType(ctx, sid, KindMultiCity, 6))
	assert.Error(t, svc.SetTripType(ctx, sid, Kind("CHARTER"), 1))
}

func TestServiceClear(t *testing.T) {
	ctx := context.Background()
	svc := NewService(session.NewMemoryStore())
	const sid = "sess-1"

	require.NoError(t, svc.SetTripType(ctx, sid, KindOneWay, 1))
	require.NoError(t, svc.SelectFlight(ctx, sid, 0, sampleLeg("r1")))
	require.NoError(t, svc.Clear(ctx, sid))

	_, err := svc.Current(ctx, sid)
	assert.ErrorIs(t, err, ErrNoTrip)
}
