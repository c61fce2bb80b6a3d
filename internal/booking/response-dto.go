package booking

// LegTicketInfo is one leg's result in the submission response
type LegTicketInfo struct {
	LegIndex          int    `json:"leg_index"`
	Status            string `json:"status"`
	PNR               string `json:"pnr,omitempty"`
	ProviderBookingID string `json:"provider_booking_id,omitempty"`
	FailureReason     string `json:"failure_reason,omitempty"`
}

// BookingSubmissionResponse reports the attempt's outcome to the caller
type BookingSubmissionResponse struct {
	BookingRef        string          `json:"booking_ref"`
	Status            string          `json:"status"`
	PNR               string          `json:"pnr,omitempty"`
	ProviderBookingID string          `json:"provider_booking_id,omitempty"`
	TotalPrice        float64         `json:"total_price"`
	Currency          string          `json:"currency,omitempty"`
	Legs              []LegTicketInfo `json:"legs"`
	FailedAtIndex     *int            `json:"failed_at_index,omitempty"`
	FailureReason     string          `json:"failure_reason,omitempty"`
}

// buildSubmissionResponse maps the persisted record and outcome ledger to
// the API response
func buildSubmissionResponse(record *Booking, outcome *Outcome) *BookingSubmissionResponse {
	resp := &BookingSubmissionResponse{
		BookingRef:        record.BookingRef,
		Status:            record.Status,
		PNR:               record.PNR,
		ProviderBookingID: record.ProviderBookingID,
		TotalPrice:        record.TotalPrice,
		Currency:          record.Currency,
		FailedAtIndex:     record.FailedAtIndex,
		FailureReason:     record.FailureReason,
	}

	for _, ticket := range record.LegTickets {
		resp.Legs = append(resp.Legs, LegTicketInfo{
			LegIndex:          ticket.LegIndex,
			Status:            ticket.Status,
			PNR:               ticket.PNR,
			ProviderBookingID: ticket.ProviderBookingID,
			FailureReason:     ticket.FailureReason,
		})
	}

	return resp
}
