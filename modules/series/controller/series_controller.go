package controller

import (
	"team-scheduler/core/controller"
	"team-scheduler/core/errors"
	"team-scheduler/modules/series/dto"
	"team-scheduler/modules/series/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SeriesController handles meeting series HTTP requests
type SeriesController struct {
	controller.BaseController
	SeriesService service.SeriesServiceInterface
}

// NewSeriesController creates a new controller
func NewSeriesController(svc service.SeriesServiceInterface) *SeriesController {
	return &SeriesController{
		BaseController: controller.NewBaseController(),
		SeriesService:  svc,
	}
}

// CreateSeries handles POST /meeting-series
// @Summary Create a meeting series
// @Description Creates a series, invites team members and emails availability requests
// @Tags MeetingSeries
// @Accept json
// @Produce json
// @Param request body dto.CreateSeriesRequest true "Series details"
// @Success 200 {object} dto.SeriesResponse
// @Failure 400 {object} errors.AppError
// @Router /meeting-series [post]
func (c *SeriesController) CreateSeries(ctx echo.Context) error {
	var req dto.CreateSeriesRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.Title == "" || req.AdminEmail == "" || req.AdminName == "" {
		return c.BadRequest(errors.ErrInvalidInput, "title, admin_name and admin_email are required")
	}

	result, appErr := c.SeriesService.CreateSeries(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meeting series created successfully")
}

// ListSeries handles GET /meeting-series
// @Summary List meeting series
// @Description Lists series, optionally filtered by admin email
// @Tags MeetingSeries
// @Produce json
// @Param adminEmail query string false "Admin email filter"
// @Success 200 {array} dto.SeriesResponse
// @Router /meeting-series [get]
func (c *SeriesController) ListSeries(ctx echo.Context) error {
	adminEmail := ctx.QueryParam("adminEmail")

	result, appErr := c.SeriesService.ListSeries(ctx.Request().Context(), adminEmail)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetSeries handles GET /meeting-series/:id
// @Summary Get a meeting series
// @Tags MeetingSeries
// @Produce json
// @Param id path string true "Series ID"
// @Success 200 {object} dto.SeriesResponse
// @Failure 404 {object} errors.AppError
// @Router /meeting-series/{id} [get]
func (c *SeriesController) GetSeries(ctx echo.Context) error {
	seriesID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid series ID")
	}

	result, appErr := c.SeriesService.GetSeriesByID(ctx.Request().Context(), seriesID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetMemberByToken handles GET /team-members/:token
// @Summary Resolve an invite token
// @Description Returns the team member and series context for a token
// @Tags MeetingSeries
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} dto.MemberContextResponse
// @Failure 404 {object} errors.AppError
// @Router /team-members/{token} [get]
func (c *SeriesController) GetMemberByToken(ctx echo.Context) error {
	token := ctx.Param("token")
	if token == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Token is required")
	}

	result, appErr := c.SeriesService.GetMemberContext(ctx.Request().Context(), token)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetMeetings handles GET /meetings
// @Summary List finalized meetings of a series
// @Tags MeetingSeries
// @Produce json
// @Param seriesId query string true "Series ID"
// @Success 200 {array} dto.MeetingResponse
// @Failure 404 {object} errors.AppError
// @Router /meetings [get]
func (c *SeriesController) GetMeetings(ctx echo.Context) error {
	seriesID, err := uuid.Parse(ctx.QueryParam("seriesId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid seriesId")
	}

	result, appErr := c.SeriesService.GetMeetings(ctx.Request().Context(), seriesID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
