package router

import (
	"team-scheduler/core/middleware"
	"team-scheduler/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

// NotificationRouter handles email log routes
type NotificationRouter struct {
	NotificationController *controller.NotificationController
}

// NewNotificationRouter creates a new router
func NewNotificationRouter(notificationController *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{
		NotificationController: notificationController,
	}
}

// Setup registers email log routes
func (r *NotificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	v1.GET("/email-logs", r.NotificationController.GetEmailLog)
}
