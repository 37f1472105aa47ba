package availability

import (
	"team-scheduler/core/database"
	"team-scheduler/core/middleware"
	"team-scheduler/modules/availability/controller"
	"team-scheduler/modules/availability/repository"
	"team-scheduler/modules/availability/router"
	"team-scheduler/modules/availability/service"
	seriesRepo "team-scheduler/modules/series/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewAvailabilityRepository(db)
	sr := seriesRepo.NewSeriesRepository(db)
	svc := service.NewAvailabilityService(repo, sr)
	ctrl := controller.NewAvailabilityController(svc)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e, mw)
}
