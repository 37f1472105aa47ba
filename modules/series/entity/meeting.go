package entity

import (
	"time"

	"github.com/google/uuid"
)

// Meeting represents one finalized meeting of a series, created when the
// winning schedule option is published.
type Meeting struct {
	ID              uuid.UUID `db:"id" json:"id"`
	MeetingSeriesID uuid.UUID `db:"meeting_series_id" json:"meeting_series_id"`
	Title           string    `db:"title" json:"title"`
	StartTime       time.Time `db:"start_time" json:"start_time"`
	EndTime         time.Time `db:"end_time" json:"end_time"`
	Sequence        int       `db:"sequence" json:"sequence"`
	CalendarEventID *string   `db:"calendar_event_id" json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
