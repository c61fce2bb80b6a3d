package pricing

// Snapshot is the derived payable breakdown. It is recomputed from the
// trip, the ancillary store, and the fee policy on every read and never
// persisted as a source of truth, so it cannot drift or mix stale leg
// prices with fresh ones.
type Snapshot struct {
	TripType          string  `json:"trip_type"`
	BaseTotal         float64 `json:"base_total"`
	AncillaryTotal    float64 `json:"ancillary_total"`
	RefundableUpgrade bool    `json:"refundable_upgrade"`
	RefundablePrice   float64 `json:"refundable_price"`
	ConvenienceFee    float64 `json:"convenience_fee"`
	Total             float64 `json:"total"`
	Currency          string  `json:"currency,omitempty"`
}
