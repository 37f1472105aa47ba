package dto

import (
	"time"

	"team-scheduler/modules/series/entity"
)

// ===================== Request DTOs =====================

// CreateSeriesRequest for creating a new meeting series
type CreateSeriesRequest struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description"`
	AdminName        string `json:"admin_name" validate:"required"`
	AdminEmail       string `json:"admin_email" validate:"required,email"`
	AdminTimezone    string `json:"admin_timezone" validate:"required"`
	DateRangeStart   string `json:"date_range_start" validate:"required"` // YYYY-MM-DD
	DateRangeEnd     string `json:"date_range_end" validate:"required"`   // YYYY-MM-DD
	TeamEmails       string `json:"team_emails"`                          // newline separated
	MeetingDuration  int    `json:"meeting_duration"`                     // minutes, defaults to 210
	NumberOfMeetings int    `json:"number_of_meetings"`                   // defaults to 3
	ConsecutiveDays  *bool  `json:"consecutive_days"`                     // defaults to true
}

// ===================== Response DTOs =====================

// SeriesResponse for meeting series details
type SeriesResponse struct {
	ID                 string                `json:"id"`
	Title              string                `json:"title"`
	Slug               string                `json:"slug"`
	Description        string                `json:"description,omitempty"`
	AdminID            string                `json:"admin_id"`
	DateRangeStart     time.Time             `json:"date_range_start"`
	DateRangeEnd       time.Time             `json:"date_range_end"`
	MeetingDuration    int                   `json:"meeting_duration"`
	NumberOfMeetings   int                   `json:"number_of_meetings"`
	ConsecutiveDays    bool                  `json:"consecutive_days"`
	Status             string                `json:"status"`
	TeamMembers        []TeamMemberResponse  `json:"team_members,omitempty"`
	AvailabilityCount  int                   `json:"availability_count"`
	CreatedAt          time.Time             `json:"created_at"`
}

// TeamMemberResponse for team member details
type TeamMemberResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Timezone     string `json:"timezone"`
	Role         string `json:"role"`
	InviteToken  string `json:"invite_token,omitempty"`
	HasResponded bool   `json:"has_responded"`
}

// MemberContextResponse for the availability/vote pages: the member plus
// its series context, resolved from an invite token.
type MemberContextResponse struct {
	Member TeamMemberResponse `json:"member"`
	Series SeriesResponse     `json:"series"`
}

// MeetingResponse for a finalized meeting
type MeetingResponse struct {
	ID              string    `json:"id"`
	MeetingSeriesID string    `json:"meeting_series_id"`
	Title           string    `json:"title"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Sequence        int       `json:"sequence"`
	CalendarEventID string    `json:"calendar_event_id,omitempty"`
}

// ===================== Mapper Functions =====================

// ToSeriesResponse maps entity to DTO
func ToSeriesResponse(s *entity.MeetingSeries, members []entity.TeamMemberWithUser, availabilityCount int) *SeriesResponse {
	resp := &SeriesResponse{
		ID:                s.ID.String(),
		Title:             s.Title,
		Slug:              s.Slug,
		AdminID:           s.AdminID.String(),
		DateRangeStart:    s.DateRangeStart,
		DateRangeEnd:      s.DateRangeEnd,
		MeetingDuration:   s.MeetingDuration,
		NumberOfMeetings:  s.NumberOfMeetings,
		ConsecutiveDays:   s.ConsecutiveDays,
		Status:            string(s.Status),
		AvailabilityCount: availabilityCount,
		CreatedAt:         s.CreatedAt,
	}

	if s.Description != nil {
		resp.Description = *s.Description
	}

	for _, m := range members {
		resp.TeamMembers = append(resp.TeamMembers, ToTeamMemberResponse(&m))
	}

	return resp
}

// ToTeamMemberResponse maps entity to DTO
func ToTeamMemberResponse(m *entity.TeamMemberWithUser) TeamMemberResponse {
	resp := TeamMemberResponse{
		ID:           m.ID.String(),
		UserID:       m.UserID.String(),
		Email:        m.UserEmail,
		Name:         m.UserName,
		Timezone:     m.UserTimezone,
		Role:         string(m.Role),
		HasResponded: m.HasResponded,
	}
	if m.InviteToken != nil {
		resp.InviteToken = *m.InviteToken
	}
	return resp
}

// ToMeetingResponse maps entity to DTO
func ToMeetingResponse(m *entity.Meeting) MeetingResponse {
	resp := MeetingResponse{
		ID:              m.ID.String(),
		MeetingSeriesID: m.MeetingSeriesID.String(),
		Title:           m.Title,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		Sequence:        m.Sequence,
	}
	if m.CalendarEventID != nil {
		resp.CalendarEventID = *m.CalendarEventID
	}
	return resp
}
