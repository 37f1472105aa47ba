package controller

import (
	"team-scheduler/core/controller"
	"team-scheduler/core/errors"
	"team-scheduler/core/params"
	"team-scheduler/modules/notification/service"

	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	service *service.NotificationService
	controller.BaseController
}

func NewNotificationController(service *service.NotificationService) *NotificationController {
	return &NotificationController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// GetEmailLog lists outbound emails for a recipient
// @Summary List email log
// @Description Returns outbound emails sent to a recipient, newest first
// @Tags Notification
// @Produce json
// @Param recipient query string true "Recipient email address"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Router /email-logs [get]
func (c *NotificationController) GetEmailLog(ctx echo.Context) error {
	recipient := ctx.QueryParam("recipient")
	if recipient == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "recipient query parameter is required", nil)
	}

	queryParams := params.FromContext(ctx)
	result, err := c.service.GetEmailLog(ctx.Request().Context(), recipient, queryParams)
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to get email log", err)
	}

	return c.SuccessResponse(ctx, result, "Email log retrieved successfully")
}
