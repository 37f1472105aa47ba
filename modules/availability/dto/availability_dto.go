package dto

import (
	"time"

	"team-scheduler/modules/availability/entity"
)

// ===================== Request DTOs =====================

// SubmitAvailabilityRequest for submitting availability windows by token
type SubmitAvailabilityRequest struct {
	Token     string         `json:"token" validate:"required"`
	TimeSlots []TimeSlotItem `json:"time_slots" validate:"required"`
}

// TimeSlotItem is one declared window: a day plus a local time range.
type TimeSlotItem struct {
	Day  string `json:"day"`  // YYYY-MM-DD
	Time string `json:"time"` // "09:00-12:30", in the member's timezone
}

// ===================== Response DTOs =====================

// AvailabilityResponse for a stored availability window
type AvailabilityResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	MeetingSeriesID string    `json:"meeting_series_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Timezone        string    `json:"timezone"`
}

// ===================== Mapper Functions =====================

// ToAvailabilityResponse maps entity to DTO
func ToAvailabilityResponse(a *entity.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		ID:              a.ID.String(),
		UserID:          a.UserID.String(),
		MeetingSeriesID: a.MeetingSeriesID.String(),
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		Timezone:        a.Timezone,
	}
}
