package pricing

import (
	"aerobook/internal/trips"
)

// ComputeTotal combines leg base prices, the ancillary total across all
// legs, the optional refundable upcharge, and the convenience fee into one
// payable snapshot. Pure function: same inputs, same snapshot.
func ComputeTotal(trip *trips.Trip, ancillaryTotal float64, refundableUpgrade bool, refundablePrice float64, convenienceFee float64) Snapshot {
	var base float64

	switch trip.Kind {
	case trips.KindOneWay:
		base = trip.Legs[0].Fare.Total()
	case trips.KindRoundTrip:
		base = trip.Legs[0].Fare.Total() + trip.Legs[1].Fare.Total()
	case trips.KindMultiCity:
		for _, leg := range trip.Legs {
			base += leg.Fare.Total()
		}
	}

	snapshot := Snapshot{
		TripType:       trip.Kind.String(),
		BaseTotal:      base,
		AncillaryTotal: ancillaryTotal,
		ConvenienceFee: convenienceFee,
	}

	if refundableUpgrade {
		snapshot.RefundableUpgrade = true
		snapshot.RefundablePrice = refundablePrice
	}

	snapshot.Total = snapshot.BaseTotal + snapshot.AncillaryTotal + snapshot.RefundablePrice + snapshot.ConvenienceFee
	return snapshot
}
