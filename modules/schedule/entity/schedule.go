package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ScheduleStatus represents the lifecycle of a schedules record
type ScheduleStatus string

const (
	// ScheduleStatusVoting - options published, votes being collected
	ScheduleStatusVoting ScheduleStatus = "voting"
	// ScheduleStatusCompleted - votes tallied, winner recorded (terminal)
	ScheduleStatusCompleted ScheduleStatus = "completed"
)

// ScheduleMeeting is one meeting inside a schedule option.
type ScheduleMeeting struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// ScheduleOption is one alternative full schedule presented for voting:
// an ordered meeting list, a rationale, and a 0-10 suitability score.
// Meetings within one option never overlap; options may overlap each other.
type ScheduleOption struct {
	Meetings  []ScheduleMeeting `json:"meetings"`
	Reasoning string            `json:"reasoning"`
	Score     float64           `json:"score"`
}

// IsPlaceholder reports whether the option holds no real schedule.
func (o ScheduleOption) IsPlaceholder() bool {
	return len(o.Meetings) == 0
}

func (o ScheduleOption) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *ScheduleOption) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, o)
}

// FinalScores maps option index ("1".."3") to accumulated Borda points.
type FinalScores map[string]int

func (f FinalScores) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(f)
}

func (f *FinalScores) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, f)
}

// MeetingSchedules owns the three schedule options of one meeting series.
// Created once when the admin triggers generation; immutable until the
// tally sets the winner and completes it.
type MeetingSchedules struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	MeetingSeriesID uuid.UUID      `db:"meeting_series_id" json:"meeting_series_id"`
	Option1         ScheduleOption `db:"option1" json:"option1"`
	Option2         ScheduleOption `db:"option2" json:"option2"`
	Option3         ScheduleOption `db:"option3" json:"option3"`
	Status          ScheduleStatus `db:"status" json:"status"`
	WinningOption   *int           `db:"winning_option" json:"winning_option,omitempty"`
	FinalScores     FinalScores    `db:"final_scores" json:"final_scores,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// Option returns the option at index 1..3. Indexing past the options
// returns an empty option rather than panicking.
func (m *MeetingSchedules) Option(index int) ScheduleOption {
	switch index {
	case 1:
		return m.Option1
	case 2:
		return m.Option2
	case 3:
		return m.Option3
	}
	return ScheduleOption{}
}

// Options returns the three options in index order.
func (m *MeetingSchedules) Options() [3]ScheduleOption {
	return [3]ScheduleOption{m.Option1, m.Option2, m.Option3}
}
