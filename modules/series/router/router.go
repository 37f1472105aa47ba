package router

import (
	"team-scheduler/core/middleware"
	"team-scheduler/modules/series/controller"

	"github.com/labstack/echo/v4"
)

// SeriesRouter handles meeting series routes
type SeriesRouter struct {
	SeriesController *controller.SeriesController
}

// NewSeriesRouter creates a new router
func NewSeriesRouter(seriesController *controller.SeriesController) *SeriesRouter {
	return &SeriesRouter{
		SeriesController: seriesController,
	}
}

// Setup registers meeting series routes
func (r *SeriesRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	seriesRoutes := v1.Group("/meeting-series")
	seriesRoutes.POST("", r.SeriesController.CreateSeries)
	seriesRoutes.GET("", r.SeriesController.ListSeries)
	seriesRoutes.GET("/:id", r.SeriesController.GetSeries)

	v1.GET("/team-members/:token", r.SeriesController.GetMemberByToken)
	v1.GET("/meetings", r.SeriesController.GetMeetings)
}
