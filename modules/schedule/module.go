package schedule

import (
	"team-scheduler/core/database"
	"team-scheduler/core/middleware"
	availRepo "team-scheduler/modules/availability/repository"
	calendarService "team-scheduler/modules/calendar/service"
	notifService "team-scheduler/modules/notification/service"
	"team-scheduler/modules/schedule/controller"
	"team-scheduler/modules/schedule/repository"
	"team-scheduler/modules/schedule/router"
	"team-scheduler/modules/schedule/service"
	seriesRepo "team-scheduler/modules/series/repository"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Init initializes the schedule module and registers routes
func Init(
	e *echo.Echo,
	db database.Database,
	mw *middleware.Middleware,
	notif *notifService.NotificationService,
	publisher calendarService.Publisher,
	redisClient *redis.Client,
	baseURL string,
) {
	repo := repository.NewScheduleRepository(db)
	seriesRepository := seriesRepo.NewSeriesRepository(db)
	availabilityRepo := availRepo.NewAvailabilityRepository(db)

	svc := service.NewScheduleService(repo, seriesRepository, availabilityRepo, notif, publisher, redisClient, baseURL)
	ctrl := controller.NewScheduleController(svc)
	rtr := router.NewScheduleRouter(ctrl)

	rtr.Setup(e, mw)
}
