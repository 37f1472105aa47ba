package dto

import (
	"time"

	"team-scheduler/modules/schedule/entity"
)

// GenerateSchedulesRequest triggers option generation for a series
type GenerateSchedulesRequest struct {
	MeetingSeriesID string `json:"meeting_series_id"`
}

// SubmitVoteRequest is one member's ranked vote, identified by invite token
type SubmitVoteRequest struct {
	Token        string `json:"token"`
	FirstChoice  int    `json:"first_choice"`
	SecondChoice int    `json:"second_choice"`
	ThirdChoice  int    `json:"third_choice"`
}

// FinalizeRequest closes voting for a schedules record
type FinalizeRequest struct {
	MeetingSchedulesID string `json:"meeting_schedules_id"`
}

// ScheduleMeetingResponse is one meeting inside an option
type ScheduleMeetingResponse struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// ScheduleOptionResponse is one alternative schedule presented for voting
type ScheduleOptionResponse struct {
	Meetings  []ScheduleMeetingResponse `json:"meetings"`
	Reasoning string                    `json:"reasoning"`
	Score     float64                   `json:"score"`
}

// SchedulesResponse carries the three options and the voting state
type SchedulesResponse struct {
	ID              string                 `json:"id"`
	MeetingSeriesID string                 `json:"meeting_series_id"`
	Option1         ScheduleOptionResponse `json:"option1"`
	Option2         ScheduleOptionResponse `json:"option2"`
	Option3         ScheduleOptionResponse `json:"option3"`
	Status          string                 `json:"status"`
	WinningOption   *int                   `json:"winning_option,omitempty"`
	FinalScores     map[string]int         `json:"final_scores,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// ===================== Mapper Functions =====================

// ToSchedulesResponse maps entity to DTO
func ToSchedulesResponse(s *entity.MeetingSchedules) *SchedulesResponse {
	return &SchedulesResponse{
		ID:              s.ID.String(),
		MeetingSeriesID: s.MeetingSeriesID.String(),
		Option1:         toOptionResponse(s.Option1),
		Option2:         toOptionResponse(s.Option2),
		Option3:         toOptionResponse(s.Option3),
		Status:          string(s.Status),
		WinningOption:   s.WinningOption,
		FinalScores:     s.FinalScores,
		CreatedAt:       s.CreatedAt,
	}
}

func toOptionResponse(o entity.ScheduleOption) ScheduleOptionResponse {
	meetings := make([]ScheduleMeetingResponse, 0, len(o.Meetings))
	for _, m := range o.Meetings {
		meetings = append(meetings, ScheduleMeetingResponse{
			Title:     m.Title,
			StartTime: m.StartTime,
			EndTime:   m.EndTime,
		})
	}
	return ScheduleOptionResponse{
		Meetings:  meetings,
		Reasoning: o.Reasoning,
		Score:     o.Score,
	}
}
