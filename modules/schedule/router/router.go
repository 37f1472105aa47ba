package router

import (
	"team-scheduler/core/middleware"
	"team-scheduler/modules/schedule/controller"

	"github.com/labstack/echo/v4"
)

// ScheduleRouter handles schedule and vote routes
type ScheduleRouter struct {
	ScheduleController *controller.ScheduleController
}

// NewScheduleRouter creates a new router
func NewScheduleRouter(scheduleController *controller.ScheduleController) *ScheduleRouter {
	return &ScheduleRouter{
		ScheduleController: scheduleController,
	}
}

// Setup registers schedule, vote and finalize routes
func (r *ScheduleRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	scheduleRoutes := v1.Group("/meeting-schedules")
	scheduleRoutes.POST("", r.ScheduleController.GenerateSchedules)
	scheduleRoutes.GET("", r.ScheduleController.GetSchedules)

	v1.POST("/votes", r.ScheduleController.SubmitVote)
	v1.POST("/meetings", r.ScheduleController.Finalize)
}
