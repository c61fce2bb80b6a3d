package booking

// BookingSubmissionRequest is the booking form posted on submit
type BookingSubmissionRequest struct {
	Passenger         PassengerForm `json:"passenger" binding:"required"`
	RefundableUpgrade bool          `json:"refundable_upgrade"`
}
