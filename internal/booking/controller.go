package booking

import (
	"errors"
	"net/http"
	"strconv"

	"aerobook/internal/gds"
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

// SubmitBooking handles POST /api/v1/bookings/submit
func (c *Controller) SubmitBooking(ctx *gin.Context) {
	sessionID := ctx.GetString(middleware.CtxSessionID)
	providerSession := gds.Session{
		TokenID: ctx.GetString(middleware.CtxTokenID),
		TraceID: ctx.GetString(middleware.CtxTraceID),
	}

	var req BookingSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := c.service.Submit(ctx.Request.Context(), sessionID, providerSession, req)
	if err != nil {
		var validationErr *ValidationError
		var quoteErr *gds.QuoteError
		var issuanceErr *gds.IssuanceError
		var partial *PartialTripFailure

		switch {
		case errors.As(err, &validationErr):
			response.Error(ctx, http.StatusBadRequest, validationErr.Error(), gin.H{"field": validationErr.Field})
		case errors.Is(err, ErrRoundTripNotImplemented):
			response.Error(ctx, http.StatusNotImplemented, err.Error(), nil)
		case errors.As(err, &partial):
			// Distinct from a clean failure: some legs purchased, the
			// caller must know a partial purchase occurred
			response.RespondJSON(ctx, "partial_failure", http.StatusConflict,
				"Some legs were ticketed before the booking failed", result, err.Error())
		case errors.As(err, &quoteErr):
			response.Error(ctx, http.StatusBadGateway, quoteErr.Error(), nil)
		case errors.As(err, &issuanceErr):
			response.Error(ctx, http.StatusBadGateway, issuanceErr.Error(), nil)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Booking failed", err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking confirmed", result, nil)
}

// GetBooking handles GET /api/v1/bookings/:ref
func (c *Controller) GetBooking(ctx *gin.Context) {
	bookingRef := ctx.Param("ref")
	if bookingRef == "" {
		response.Error(ctx, http.StatusBadRequest, "Booking reference is required", nil)
		return
	}

	result, err := c.service.GetBooking(ctx.Request.Context(), bookingRef)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(ctx, http.StatusNotFound, "Booking not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to get booking", err.Error())
		return
	}

	response.OK(ctx, "Booking", result)
}

// GetSessionBookings handles GET /api/v1/bookings?limit=10&offset=0
func (c *Controller) GetSessionBookings(ctx *gin.Context) {
	sessionID := ctx.GetString(middleware.CtxSessionID)

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	bookings, total, err := c.service.GetSessionBookings(ctx.Request.Context(), sessionID, limit, offset)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}

	response.OK(ctx, "Bookings", gin.H{
		"bookings": bookings,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}
