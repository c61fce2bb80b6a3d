package pricing

import (
	"errors"
	"net/http"

	"aerobook/internal/shared/middleware"
	"aerobook/internal/shared/utils/response"
	"aerobook/internal/trips"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetQuote handles GET /api/v1/pricing/quote?refundable=true
func (c *Controller) GetQuote(ctx *gin.Context) {
	sessionID := ctx.GetString(middleware.CtxSessionID)
	refundable := ctx.Query("refundable") == "true"

	snapshot, err := c.service.Quote(ctx.Request.Context(), sessionID, refundable)
	if err != nil {
		if errors.Is(err, trips.ErrNoTrip) {
			response.Error(ctx, http.StatusNotFound, "No complete trip for this session", nil)
			return
		}
		response.Error(ctx, http.StatusBadGateway, "Failed to compute quote", err.Error())
		return
	}

	response.OK(ctx, "Pricing quote", snapshot)
}
