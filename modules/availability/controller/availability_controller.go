package controller

import (
	"team-scheduler/core/controller"
	"team-scheduler/core/errors"
	"team-scheduler/modules/availability/dto"
	"team-scheduler/modules/availability/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AvailabilityController handles availability HTTP requests
type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

// NewAvailabilityController creates a new controller
func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

// SubmitAvailability handles POST /availability
// @Summary Submit availability windows
// @Description Stores a team member's availability, identified by invite token
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.SubmitAvailabilityRequest true "Availability windows"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /availability [post]
func (c *AvailabilityController) SubmitAvailability(ctx echo.Context) error {
	var req dto.SubmitAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.Token == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Token is required")
	}

	if appErr := c.AvailabilityService.SubmitAvailability(ctx.Request().Context(), &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Availability submitted successfully")
}

// GetAvailability handles GET /availability
// @Summary List availability for a series
// @Tags Availability
// @Produce json
// @Param seriesId query string true "Series ID"
// @Success 200 {array} dto.AvailabilityResponse
// @Router /availability [get]
func (c *AvailabilityController) GetAvailability(ctx echo.Context) error {
	seriesID, err := uuid.Parse(ctx.QueryParam("seriesId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid seriesId")
	}

	result, appErr := c.AvailabilityService.GetBySeriesID(ctx.Request().Context(), seriesID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
