package entity

import (
	"time"

	"github.com/google/uuid"
)

// Availability represents one contiguous interval a user declared as
// available. Captured in the user's local timezone, stored as UTC instants.
// Immutable once submitted.
type Availability struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"user_id"`
	MeetingSeriesID uuid.UUID `db:"meeting_series_id" json:"meeting_series_id"`
	StartTime       time.Time `db:"start_time" json:"start_time"`
	EndTime         time.Time `db:"end_time" json:"end_time"`
	Timezone        string    `db:"timezone" json:"timezone"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
