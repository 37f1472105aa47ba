package service

import (
	"context"
	"encoding/json"

	"team-scheduler/core/constants"
	"team-scheduler/core/logger"

	"github.com/hibiken/asynq"
)

// StartWorker runs the email delivery worker in the background. Tasks that
// fail delivery are retried by asynq with its default backoff.
func StartWorker(svc *NotificationService, redisOpts asynq.RedisClientOpt) *asynq.Server {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				constants.QueueEmail:   3,
				constants.QueueDefault: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeEmailSend, handleEmailTask(svc))

	go func() {
		logger.Info("EmailWorker: starting")
		if err := srv.Run(mux); err != nil {
			logger.Error("EmailWorker: stopped", err)
		}
	}()

	return srv
}

func handleEmailTask(svc *NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload EmailPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			logger.Error("EmailWorker: invalid payload", err)
			return err
		}

		if err := svc.Deliver(ctx, payload); err != nil {
			logger.Error("EmailWorker: delivery failed", "error", err, "to", payload.To)
			return err
		}

		logger.Info("EmailWorker: delivered", "to", payload.To, "subject", payload.Subject)
		return nil
	}
}
