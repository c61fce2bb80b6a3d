package trips

import (
	"fmt"
	"time"
)

// Kind identifies the trip shape
type Kind string

const (
	KindOneWay    Kind = "ONE_WAY"
	KindRoundTrip Kind = "ROUND_TRIP"
	KindMultiCity Kind = "MULTI_CITY"
)

// MaxMultiCityLegs is the most legs a multi-city trip may carry
const MaxMultiCityLegs = 5

func (k Kind) IsValid() bool {
	switch k {
	case KindOneWay, KindRoundTrip, KindMultiCity:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// FareBreakdown is the priced components of one leg
type FareBreakdown struct {
	BaseFare   float64 `json:"base_fare"`
	Tax        float64 `json:"tax"`
	Surcharges float64 `json:"surcharges"`
}

// Total returns the payable amount for this fare
func (f FareBreakdown) Total() float64 {
	return f.BaseFare + f.Tax + f.Surcharges
}

// Leg is one directional flight segment-group within a trip.
// ResultReference identifies a priced, bookable option at the provider; it
// goes stale the instant time passes and must be revalidated immediately
// before ticketing.
type Leg struct {
	Origin          string        `json:"origin"`
	Destination     string        `json:"destination"`
	DepartureTime   time.Time     `json:"departure_time"`
	ArrivalTime     time.Time     `json:"arrival_time"`
	Carrier         string        `json:"carrier"`
	FlightNumbers   []string      `json:"flight_numbers"`
	ResultReference string        `json:"result_reference"`
	Fare            FareBreakdown `json:"fare"`

	// True for carriers whose ancillaries are purchasable online (LCC).
	// Other carriers only expose advisory preference lists, priced at 0.
	OnlineAncillaryEligible bool `json:"online_ancillary_eligible"`
}

// Trip is the selected itinerary: exactly one shape at a time
type Trip struct {
	Kind Kind  `json:"kind"`
	Legs []Leg `json:"legs"`
}

// OneWay builds a single-leg trip
func OneWay(leg Leg) *Trip {
	return &Trip{Kind: KindOneWay, Legs: []Leg{leg}}
}

// RoundTrip builds an outbound+return trip
func RoundTrip(outbound, ret Leg) *Trip {
	return &Trip{Kind: KindRoundTrip, Legs: []Leg{outbound, ret}}
}

// MultiCity builds an ordered multi-leg trip
func MultiCity(legs []Leg) *Trip {
	return &Trip{Kind: KindMultiCity, Legs: legs}
}

// Validate checks that the declared kind and the leg data agree. A trip
// that fails validation is treated as absent and booking is blocked.
func (t *Trip) Validate() error {
	if t == nil {
		return fmt.Errorf("no trip selected")
	}
	if !t.Kind.IsValid() {
		return fmt.Errorf("unknown trip type %q", t.Kind)
	}

	switch t.Kind {
	case KindOneWay:
		if len(t.Legs) != 1 {
			return fmt.Errorf("one-way trip requires exactly 1 leg, got %d", len(t.Legs))
		}
	case KindRoundTrip:
		if len(t.Legs) != 2 {
			return fmt.Errorf("round-trip requires outbound and return legs, got %d", len(t.Legs))
		}
	case KindMultiCity:
		if len(t.Legs) < 1 {
			return fmt.Errorf("multi-city trip requires at least 1 leg")
		}
		if len(t.Legs) > MaxMultiCityLegs {
			return fmt.Errorf("multi-city trip supports at most %d legs, got %d", MaxMultiCityLegs, len(t.Legs))
		}
	}

	for i, leg := range t.Legs {
		if leg.ResultReference == "" {
			return fmt.Errorf("leg %d has no result reference", i)
		}
		if leg.Origin == "" || leg.Destination == "" {
			return fmt.Errorf("leg %d is missing origin or destination", i)
		}
	}

	return nil
}

// StartDate returns the first leg's departure time
func (t *Trip) StartDate() time.Time {
	if t == nil || len(t.Legs) == 0 {
		return time.Time{}
	}
	return t.Legs[0].DepartureTime
}

// BaseTotal sums the fare totals of all legs in order
func (t *Trip) BaseTotal() float64 {
	if t == nil {
		return 0
	}
	var total float64
	for _, leg := range t.Legs {
		total += leg.Fare.Total()
	}
	return total
}
