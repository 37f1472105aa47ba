package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"team-scheduler/core/entity"
)

// EmailKind identifies which template an email was rendered from
type EmailKind string

const (
	EmailKindAvailabilityRequest EmailKind = "availability_request"
	EmailKindVoteRequest         EmailKind = "vote_request"
	EmailKindMeetingsScheduled   EmailKind = "meetings_scheduled"
)

// EmailStatus tracks delivery state of a logged email
type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

// EmailLog records every outbound email: who it went to, which template,
// and whether delivery succeeded. Delivery is best-effort, so the log is
// the only place failures are visible.
type EmailLog struct {
	RecipientEmail string      `db:"recipient_email" json:"recipient_email"`
	RecipientName  string      `db:"recipient_name" json:"recipient_name"`
	Subject        string      `db:"subject" json:"subject"`
	Kind           EmailKind   `db:"kind" json:"kind"`
	Status         EmailStatus `db:"status" json:"status"`
	Data           JSONB       `db:"data" json:"data"`
	entity.BaseEntity
}

type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

type PaginatedEmailLogEntity = entity.Pagination[EmailLog]
