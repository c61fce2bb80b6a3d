package trips

import (
	"github.com/gin-gonic/gin"
)

// SetupTripRoutes configures trip selection routes
func SetupTripRoutes(rg *gin.RouterGroup, controller *Controller) {
	tripsGroup := rg.Group("/trips")
	{
		tripsGroup.POST("/type", controller.SetTripType)     // POST /api/v1/trips/type
		tripsGroup.POST("/legs", controller.SelectFlight)    // POST /api/v1/trips/legs
		tripsGroup.GET("/current", controller.GetCurrent)    // GET /api/v1/trips/current
		tripsGroup.DELETE("/current", controller.ClearTrip)  // DELETE /api/v1/trips/current
	}
}
