package series

import (
	"team-scheduler/core/database"
	"team-scheduler/core/middleware"
	availRepo "team-scheduler/modules/availability/repository"
	notifService "team-scheduler/modules/notification/service"
	"team-scheduler/modules/series/controller"
	"team-scheduler/modules/series/repository"
	"team-scheduler/modules/series/router"
	"team-scheduler/modules/series/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the series module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, notif *notifService.NotificationService, baseURL string) {
	repo := repository.NewSeriesRepository(db)
	availabilityRepo := availRepo.NewAvailabilityRepository(db)
	svc := service.NewSeriesService(repo, availabilityRepo, notif, baseURL)
	ctrl := controller.NewSeriesController(svc)
	rtr := router.NewSeriesRouter(ctrl)

	rtr.Setup(e, mw)
}
