package ancillaries

import (
	"errors"
	"net/http"
	"strconv"

	"aerobook/internal/gds"
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

func providerSession(ctx *gin.Context) gds.Session {
	return gds.Session{
		TokenID: ctx.GetString(middleware.CtxTokenID),
		TraceID: ctx.GetString(middleware.CtxTraceID),
	}
}

// GetCatalog handles GET /api/v1/ancillaries/:legIndex
func (c *Controller) GetCatalog(ctx *gin.Context) {
	sessionID := ctx.GetString(middleware.CtxSessionID)

	legIndex, err := strconv.Atoi(ctx.Param("legIndex"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid leg index", err.Error())
		return
	}

	catalog, err := c.service.Catalog(ctx.Request.Context(), sessionID, providerSession(ctx), legIndex)
	if err != nil {
		var quoteErr *gds.QuoteError
		var ancErr *gds.AncillaryError
		switch {
		case errors.Is(err, trips.ErrNoTrip):
			response.Error(ctx, http.StatusNotFound, "No complete trip for this session", nil)
		case errors.As(err, &quoteErr):
			response.Error(ctx, http.StatusBadGateway, quoteErr.Error(), nil)
		case errors.As(err, &ancErr):
			// Non-fatal for the booking: the client shows a retry
			// affordance and may proceed without ancillaries
			response.Error(ctx, http.StatusBadGateway, ancErr.Error(), gin.H{"retryable": true})
		default:
			response.Error(ctx, http.StatusBadRequest, "Failed to load ancillaries", err.Error())
		}
		return
	}

	response.OK(ctx, "Ancillary catalog", catalog)
}

// ToggleSelection handles POST /api/v1/ancillaries/toggle
func (c *Controller) ToggleSelection(ctx *gin.Context) {
	sessionID := ctx.GetString(middleware.CtxSessionID)

	var req ToggleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	summary, err := c.service.Toggle(ctx.Request.Context(), sessionID, req.LegIndex, Item{
		Category:    Category(req.Category),
		Code:        req.Code,
		Description: req.Description,
		Price:       req.Price,
		Row:         req.Row,
		Seat:        req.Seat,
	})
	if err != nil {
		if errors.Is(err, trips.ErrNoTrip) {
			response.Error(ctx, http.StatusNotFound, "No complete trip for this session", nil)
			return
		}
		response.Error(ctx, http.StatusBadRequest, "Failed to toggle selection", err.Error())
		return
	}

	response.OK(ctx, "Selection updated", summary)
}

// GetSelections handles GET /api/v1/ancillaries
func (c *Controller) GetSelections(ctx *gin.Context) {
	sessionID := ctx.GetString(middleware.CtxSessionID)

	summaries, total, err := c.service.Summaries(ctx.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, trips.ErrNoTrip) {
			response.Error(ctx, http.StatusNotFound, "No complete trip for this session", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to load selections", err.Error())
		return
	}

	response.OK(ctx, "Ancillary selections", gin.H{
		"legs":  summaries,
		"total": total,
	})
}
