package pricing

import (
	"testing"
	"time"

	"aerobook/internal/trips"

	"github.com/stretchr/testify/assert"
)

func legWithFare(base, tax, surcharges float64) trips.Leg {
	return trips.Leg{
		Origin:          "DEL",
		Destination:     "BOM",
		DepartureTime:   time.Date(2026, 9, 20, 8, 0, 0, 0, time.UTC),
		ResultReference: "r1",
		Fare:            trips.FareBreakdown{BaseFare: base, Tax: tax, Surcharges: surcharges},
	}
}

func TestComputeTotalOneWay(t *testing.T) {
	// 5000 base + 500 ancillaries + 149 fee = 5649
	trip := trips.OneWay(legWithFare(4200, 630, 170))

	got := ComputeTotal(trip, 500, false, 0, 149)

	assert.Equal(t, "ONE_WAY", got.TripType)
	assert.Equal(t, 5000.0, got.BaseTotal)
	assert.Equal(t, 500.0, got.AncillaryTotal)
	assert.Equal(t, 149.0, got.ConvenienceFee)
	assert.False(t, got.RefundableUpgrade)
	assert.Equal(t, 0.0, got.RefundablePrice)
	assert.Equal(t, 5649.0, got.Total)
}

func TestComputeTotalFeeChangeOnly(t *testing.T) {
	// Same inputs with the fee dropped to 0 shift the total by exactly
	// the fee delta.
	trip := trips.OneWay(legWithFare(4200, 630, 170))

	got := ComputeTotal(trip, 500, false, 0, 0)

	assert.Equal(t, 5500.0, got.Total)
}

func TestComputeTotalRoundTripSumsBothLegs(t *testing.T) {
	trip := trips.RoundTrip(legWithFare(3000, 400, 100), legWithFare(3500, 450, 50))

	got := ComputeTotal(trip, 0, false, 0, 149)

	assert.Equal(t, 7500.0, got.BaseTotal)
	assert.Equal(t, 7649.0, got.Total)
}

func TestComputeTotalMultiCitySumsAllLegs(t *testing.T) {
	trip := trips.MultiCity([]trips.Leg{
		legWithFare(2000, 300, 0),
		legWithFare(2500, 350, 50),
		legWithFare(1800, 200, 100),
	})

	got := ComputeTotal(trip, 250, false, 0, 149)

	assert.Equal(t, 7300.0, got.BaseTotal)
	assert.Equal(t, 7699.0, got.Total)
}

func TestComputeTotalRefundableUpgrade(t *testing.T) {
	trip := trips.OneWay(legWithFare(4200, 630, 170))

	got := ComputeTotal(trip, 0, true, 399, 149)

	assert.True(t, got.RefundableUpgrade)
	assert.Equal(t, 399.0, got.RefundablePrice)
	assert.Equal(t, 5548.0, got.Total)

	// Declined upgrade never charges, whatever price was quoted
	declined := ComputeTotal(trip, 0, false, 399, 149)
	assert.False(t, declined.RefundableUpgrade)
	assert.Equal(t, 0.0, declined.RefundablePrice)
	assert.Equal(t, 5149.0, declined.Total)
}

func TestComputeTotalIsDeterministic(t *testing.T) {
	trip := trips.MultiCity([]trips.Leg{legWithFare(2000, 300, 0), legWithFare(2500, 350, 50)})

	a := ComputeTotal(trip, 250, true, 399, 149)
	b := ComputeTotal(trip, 250, true, 399, 149)

	assert.Equal(t, a, b)
}
