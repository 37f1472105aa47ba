package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"team-scheduler/core/cache"
	"team-scheduler/core/config"
	"team-scheduler/core/database"
	"team-scheduler/core/logger"
	"team-scheduler/core/middleware"
	"team-scheduler/modules/availability"
	calendarService "team-scheduler/modules/calendar/service"
	"team-scheduler/modules/notification"
	notifService "team-scheduler/modules/notification/service"
	"team-scheduler/modules/schedule"
	"team-scheduler/modules/series"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Run wires every module together and serves until interrupted.
func Run() error {
	cfg := config.Get()
	logger.Init(cfg.LogLevel)
	defer logger.Sync()

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	// Redis and asynq are optional: without them the generation lock is
	// skipped and email goes out inline.
	var redisClient *redis.Client
	var asynqClient *asynq.Client
	var worker *asynq.Server

	redisClient, err = cache.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Warn("Server: Redis unavailable, queue and lock features disabled")
		redisClient = nil
	}

	mailer := notifService.NewMailer(cfg.SendgridAPIKey, cfg.SendgridFromEmail, cfg.SendgridFromName)

	if redisClient != nil {
		redisOpts := asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}
		asynqClient = asynq.NewClient(redisOpts)
		defer asynqClient.Close()
	}

	e := echo.New()
	e.HideBanner = true

	mw := middleware.NewMiddleware()
	mw.Setup(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	notifSvc := notification.Init(e, db, mw, mailer, asynqClient)
	publisher := calendarService.NewPublisher(cfg)

	series.Init(e, db, mw, notifSvc, cfg.BaseURL)
	availability.Init(e, db, mw)
	schedule.Init(e, db, mw, notifSvc, publisher, redisClient, cfg.BaseURL)

	if redisClient != nil {
		worker = notifService.StartWorker(notifSvc, asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server: start failed", err)
		}
	}()
	logger.Info("Server started", "port", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server: shutting down")

	if worker != nil {
		worker.Shutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
