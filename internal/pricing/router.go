package pricing

import (
	"github.com/gin-gonic/gin"
)

// SetupPricingRoutes configures pricing routes
func SetupPricingRoutes(rg *gin.RouterGroup, controller *Controller) {
	group := rg.Group("/pricing")
	{
		group.GET("/quote", controller.GetQuote) // GET /api/v1/pricing/quote
	}
}
