package entity

import (
	"time"

	"github.com/google/uuid"
)

// SeriesStatus represents the lifecycle state of a meeting series
type SeriesStatus string

const (
	// SeriesStatusCollecting - availability submissions are open
	SeriesStatusCollecting SeriesStatus = "collecting"
	// SeriesStatusVoting - schedule options generated, votes are open
	SeriesStatusVoting SeriesStatus = "voting"
	// SeriesStatusScheduled - winning schedule finalized and published
	SeriesStatusScheduled SeriesStatus = "scheduled"
)

// MeetingSeries represents one scheduling effort: a group of people, a date
// range to search, and the shape of the meetings to place in it.
type MeetingSeries struct {
	ID               uuid.UUID    `db:"id" json:"id"`
	Title            string       `db:"title" json:"title"`
	Slug             string       `db:"slug" json:"slug"`
	Description      *string      `db:"description" json:"description,omitempty"`
	AdminID          uuid.UUID    `db:"admin_id" json:"admin_id"`
	DateRangeStart   time.Time    `db:"date_range_start" json:"date_range_start"`
	DateRangeEnd     time.Time    `db:"date_range_end" json:"date_range_end"`
	MeetingDuration  int          `db:"meeting_duration" json:"meeting_duration"` // minutes
	NumberOfMeetings int          `db:"number_of_meetings" json:"number_of_meetings"`
	ConsecutiveDays  bool         `db:"consecutive_days" json:"consecutive_days"`
	Status           SeriesStatus `db:"status" json:"status"`
	CreatedAt        time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at" json:"updated_at"`
}
