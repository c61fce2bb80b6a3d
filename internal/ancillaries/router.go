package ancillaries

import (
	"github.com/gin-gonic/gin"
)

// SetupAncillaryRoutes configures ancillary selection routes
func SetupAncillaryRoutes(rg *gin.RouterGroup, controller *Controller) {
	group := rg.Group("/ancillaries")
	{
		group.GET("", controller.GetSelections)          // GET  /api/v1/ancillaries
		group.GET("/:legIndex", controller.GetCatalog)   // GET  /api/v1/ancillaries/:legIndex
		group.POST("/toggle", controller.ToggleSelection) // POST /api/v1/ancillaries/toggle
	}
}
