package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleVote is one team member's ranked preference across the three
// options. Choices are option indexes 1..3 and must be pairwise distinct;
// one vote per member per schedules record.
type ScheduleVote struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	TeamMemberID       uuid.UUID `db:"team_member_id" json:"team_member_id"`
	MeetingSchedulesID uuid.UUID `db:"meeting_schedules_id" json:"meeting_schedules_id"`
	FirstChoice        int       `db:"first_choice" json:"first_choice"`
	SecondChoice       int       `db:"second_choice" json:"second_choice"`
	ThirdChoice        int       `db:"third_choice" json:"third_choice"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// TallyResult is the outcome of a Borda tally over all votes.
type TallyResult struct {
	WinningOption int         `json:"winning_option"`
	Scores        FinalScores `json:"scores"`
}
