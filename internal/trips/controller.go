package trips

import (
	"errors"
	"net/http"

	"aerobook/internal/shared/middleware"
	"aerobook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// SetTripType handles POST /api/v1/trips/type
func (c *Controller) SetTripType(ctx *gin.Context) {
	sessionID := ctx.GetString(middleware.CtxSessionID)

	var req SetTripTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.service.SetTripType(ctx.Request.Context(), sessionID, Kind(req.TripType), req.LegCount); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Failed to set trip type", err.Error())
		return
	}

	response.OK(ctx, "Trip type set", gin.H{"trip_type": req.TripType})
}

// SelectFlight handles POST /api/v1/trips/legs
func (c *Controller) SelectFlight(ctx *gin.Context) {
	sessionID := ctx.GetString(middleware.CtxSessionID)

	var req SelectFlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.service.SelectFlight(ctx.Request.Context(), sessionID, req.LegIndex, req.Leg); err != nil {
		if errors.Is(err, ErrNoTrip) {
			response.Error(ctx, http.StatusConflict, "No trip type selected yet", err.Error())
			return
		}
		response.Error(ctx, http.StatusBadRequest, "Failed to select flight", err.Error())
		return
	}

	response.OK(ctx, "Flight selected", gin.H{"leg_index": req.LegIndex})
}

// GetCurrent handles GET /api/v1/trips/current
func (c *Controller) GetCurrent(ctx *gin.Context) {
	sessionID := ctx.GetString(middleware.CtxSessionID)

	trip, err := c.service.Current(ctx.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrNoTrip) {
			response.Error(ctx, http.StatusNotFound, "No complete trip for this session", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to load trip", err.Error())
		return
	}

	response.OK(ctx, "Current trip", trip)
}

// ClearTrip handles DELETE /api/v1/trips/current
func (c *Controller) ClearTrip(ctx *gin.Context) {
	sessionID := ctx.GetString(middleware.CtxSessionID)

	if err := c.service.Clear(ctx.Request.Context(), sessionID); err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to clear trip", err.Error())
		return
	}

	response.OK(ctx, "Trip cleared", nil)
}
