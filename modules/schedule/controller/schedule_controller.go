package controller

import (
	"team-scheduler/core/controller"
	"team-scheduler/core/errors"
	"team-scheduler/modules/schedule/dto"
	"team-scheduler/modules/schedule/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ScheduleController handles schedule generation, voting and finalization
type ScheduleController struct {
	controller.BaseController
	ScheduleService service.ScheduleServiceInterface
}

// NewScheduleController creates a new controller
func NewScheduleController(svc service.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		BaseController:  controller.NewBaseController(),
		ScheduleService: svc,
	}
}

// GenerateSchedules handles POST /meeting-schedules
// @Summary Generate schedule options
// @Description Runs the slot finder over submitted availability and publishes three options for voting
// @Tags MeetingSchedules
// @Accept json
// @Produce json
// @Param request body dto.GenerateSchedulesRequest true "Series reference"
// @Success 200 {object} dto.SchedulesResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /meeting-schedules [post]
func (c *ScheduleController) GenerateSchedules(ctx echo.Context) error {
	var req dto.GenerateSchedulesRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	seriesID, err := uuid.Parse(req.MeetingSeriesID)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting_series_id")
	}

	result, appErr := c.ScheduleService.GenerateSchedules(ctx.Request().Context(), seriesID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Schedules generated successfully")
}

// GetSchedules handles GET /meeting-schedules
// @Summary Get schedule options by invite token
// @Tags MeetingSchedules
// @Produce json
// @Param token query string true "Invite token"
// @Success 200 {object} dto.SchedulesResponse
// @Failure 404 {object} errors.AppError
// @Router /meeting-schedules [get]
func (c *ScheduleController) GetSchedules(ctx echo.Context) error {
	token := ctx.QueryParam("token")
	if token == "" {
		return c.BadRequest(errors.ErrInvalidInput, "token query parameter is required")
	}

	result, appErr := c.ScheduleService.GetSchedulesByToken(ctx.Request().Context(), token)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// SubmitVote handles POST /votes
// @Summary Submit a ranked vote
// @Description Records one member's ranked choice over the three options
// @Tags Votes
// @Accept json
// @Produce json
// @Param request body dto.SubmitVoteRequest true "Ranked vote"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /votes [post]
func (c *ScheduleController) SubmitVote(ctx echo.Context) error {
	var req dto.SubmitVoteRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.Token == "" {
		return c.BadRequest(errors.ErrInvalidInput, "token is required")
	}

	if appErr := c.ScheduleService.SubmitVote(ctx.Request().Context(), &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Vote submitted successfully")
}

// Finalize handles POST /meetings
// @Summary Finalize the vote
// @Description Tallies votes, creates calendar events and meeting records, and notifies the team
// @Tags Meetings
// @Accept json
// @Produce json
// @Param request body dto.FinalizeRequest true "Schedules reference"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} errors.AppError
// @Failure 422 {object} errors.AppError
// @Router /meetings [post]
func (c *ScheduleController) Finalize(ctx echo.Context) error {
	var req dto.FinalizeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	schedulesID, err := uuid.Parse(req.MeetingSchedulesID)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting_schedules_id")
	}

	result, appErr := c.ScheduleService.Finalize(ctx.Request().Context(), schedulesID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meetings scheduled successfully")
}
