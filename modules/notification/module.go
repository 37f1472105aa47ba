package notification

import (
	"team-scheduler/core/database"
	"team-scheduler/core/middleware"
	"team-scheduler/modules/notification/controller"
	"team-scheduler/modules/notification/repository"
	"team-scheduler/modules/notification/router"
	"team-scheduler/modules/notification/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init initializes the notification module and returns its service so other
// modules can send emails through it. The asynq client may be nil, in which
// case emails are sent inline.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, mailer service.Mailer, client *asynq.Client) *service.NotificationService {
	repo := repository.NewEmailLogRepository(db)
	svc := service.NewNotificationService(repo, mailer, client)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Setup(e, mw)

	return svc
}
