package service

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TypeEmailSend is the asynq task type for outbound email delivery.
const TypeEmailSend = "email:send"

// EmailPayload is the queued form of one email: fully rendered, tied back
// to its email_logs row so the worker can record the delivery outcome.
type EmailPayload struct {
	LogID   uuid.UUID `json:"log_id"`
	To      string    `json:"to"`
	ToName  string    `json:"to_name"`
	Subject string    `json:"subject"`
	HTML    string    `json:"html"`
}

// NewEmailTask wraps an email payload as an asynq task.
func NewEmailTask(payload EmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEmailSend, b), nil
}
