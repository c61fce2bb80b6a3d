package trips

// SetTripTypeRequest declares the trip shape for the session
type SetTripTypeRequest struct {
	TripType string `json:"trip_type" binding:"required"`
	LegCount int    `json:"leg_count"`
}

// SelectFlightRequest captures a search result as one leg of the trip
type SelectFlightRequest struct {
	LegIndex int `json:"leg_index"`
	Leg      Leg `json:"leg" binding:"required"`
}
