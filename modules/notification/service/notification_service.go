package service

import (
	"context"
	"encoding/json"
	"fmt"

	"team-scheduler/core/constants"
	"team-scheduler/core/logger"
	"team-scheduler/core/params"
	"team-scheduler/modules/notification/entity"
	"team-scheduler/modules/notification/repository"

	"github.com/hibiken/asynq"
)

// NotificationService renders, logs, and dispatches outbound emails.
// Delivery goes through the asynq queue when a client is configured and
// falls back to inline sending otherwise.
type NotificationService struct {
	repo   repository.EmailLogRepositoryInterface
	mailer Mailer
	client *asynq.Client
}

func NewNotificationService(repo repository.EmailLogRepositoryInterface, mailer Mailer, client *asynq.Client) *NotificationService {
	return &NotificationService{
		repo:   repo,
		mailer: mailer,
		client: client,
	}
}

// SendAvailabilityRequest emails one team member their availability link.
func (s *NotificationService) SendAvailabilityRequest(ctx context.Context, toEmail, toName string, data AvailabilityRequestData) error {
	html, err := renderAvailabilityRequest(toName, data)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Availability Request: %s", data.MeetingTitle)
	return s.dispatch(ctx, toEmail, toName, subject, html, entity.EmailKindAvailabilityRequest, data)
}

// SendVoteRequest emails one team member their voting link.
func (s *NotificationService) SendVoteRequest(ctx context.Context, toEmail, toName string, data VoteRequestData) error {
	html, err := renderVoteRequest(toName, data)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Vote on Schedule Options: %s", data.MeetingTitle)
	return s.dispatch(ctx, toEmail, toName, subject, html, entity.EmailKindVoteRequest, data)
}

// SendMeetingsScheduled emails one team member the finalized meeting list.
func (s *NotificationService) SendMeetingsScheduled(ctx context.Context, toEmail, toName string, data MeetingsScheduledData) error {
	html, err := renderMeetingsScheduled(toName, data)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Meetings Scheduled: %s", data.MeetingTitle)
	return s.dispatch(ctx, toEmail, toName, subject, html, entity.EmailKindMeetingsScheduled, data)
}

// GetEmailLog lists sent emails for one recipient, newest first.
func (s *NotificationService) GetEmailLog(ctx context.Context, recipientEmail string, queryParams params.QueryParams) (*entity.PaginatedEmailLogEntity, error) {
	return s.repo.GetByRecipient(ctx, recipientEmail, queryParams)
}

// Deliver sends a queued email and records the outcome on its log row.
// Called by the worker; returning an error lets asynq retry.
func (s *NotificationService) Deliver(ctx context.Context, payload EmailPayload) error {
	if err := s.mailer.Send(ctx, payload.To, payload.ToName, payload.Subject, payload.HTML); err != nil {
		if updateErr := s.repo.UpdateStatus(ctx, payload.LogID, entity.EmailStatusFailed); updateErr != nil {
			logger.Error("NotificationService:Deliver:UpdateStatus", updateErr)
		}
		return err
	}
	return s.repo.UpdateStatus(ctx, payload.LogID, entity.EmailStatusSent)
}

func (s *NotificationService) dispatch(ctx context.Context, toEmail, toName, subject, html string, kind entity.EmailKind, data interface{}) error {
	log := &entity.EmailLog{
		RecipientEmail: toEmail,
		RecipientName:  toName,
		Subject:        subject,
		Kind:           kind,
		Status:         entity.EmailStatusPending,
		Data:           toJSONB(data),
	}
	if err := s.repo.Create(ctx, log); err != nil {
		return err
	}

	payload := EmailPayload{
		LogID:   log.ID,
		To:      toEmail,
		ToName:  toName,
		Subject: subject,
		HTML:    html,
	}

	if s.client != nil {
		task, err := NewEmailTask(payload)
		if err != nil {
			return err
		}
		if _, err := s.client.EnqueueContext(ctx, task, asynq.Queue(constants.QueueEmail)); err == nil {
			return nil
		}
		// Queue unavailable, send inline rather than dropping the email
		logger.Warn("NotificationService:dispatch: enqueue failed, sending inline")
	}

	return s.Deliver(ctx, payload)
}

func toJSONB(v interface{}) entity.JSONB {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m entity.JSONB
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	return m
}
