package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"swipehire/internal/errors"
	"swipehire/internal/service"
)

// SwipeHandler handles swipe ledger endpoints.
type SwipeHandler struct {
	swipeService service.SwipeService
}

// NewSwipeHandler creates a new swipe handler.
func NewSwipeHandler(swipeService service.SwipeService) *SwipeHandler {
	return &SwipeHandler{swipeService: swipeService}
}

// CreateSwipeRequest represents a swipe creation request. Liked is a pointer
// so that an explicit false passes the required check.
type CreateSwipeRequest struct {
	JobID uint  `json:"job_id" validate:"required"`
	Liked *bool `json:"liked" validate:"required"`
}

// CreateSwipe godoc
// @Summary Record a swipe on a job
// @Tags swipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSwipeRequest true "Swipe payload"
// @Success 201 {object} model.Swipe
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /swipes [post]
func (h *SwipeHandler) CreateSwipe(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req CreateSwipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	swipe, err := h.swipeService.Record(c.Request().Context(), ident.UserID, req.JobID, *req.Liked)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, swipe)
}

// SwipeStats godoc
// @Summary Swipe statistics for the caller
// @Tags swipes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.SwipeStats
// @Router /swipes/stats [get]
func (h *SwipeHandler) SwipeStats(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}

	stats, err := h.swipeService.Stats(c.Request().Context(), ident.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}
