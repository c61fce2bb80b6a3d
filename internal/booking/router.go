package booking

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures booking routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("/submit", controller.SubmitBooking)  // POST /api/v1/bookings/submit
		bookings.GET("/:ref", controller.GetBooking)        // GET  /api/v1/bookings/:ref
		bookings.GET("", controller.GetSessionBookings)     // GET  /api/v1/bookings
	}
}

// Route flow:
// 1. User sets trip type and selects one flight per leg (trips routes)
// 2. User optionally toggles ancillaries per leg (ancillaries routes)
// 3. User reviews the quote (pricing routes)
// 4. User submits the booking: every leg is revalidated and issued in
//    order; a failed leg halts the sequence and already-ticketed legs are
//    reported in the partial outcome
