package entity

import (
	"time"

	"github.com/google/uuid"
)

// MemberRole represents the role of a team member within a series
type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
)

// TeamMember links a user to a meeting series. Non-admin members carry an
// invite token that identifies them in availability and voting links.
type TeamMember struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	UserID          uuid.UUID  `db:"user_id" json:"user_id"`
	MeetingSeriesID uuid.UUID  `db:"meeting_series_id" json:"meeting_series_id"`
	Role            MemberRole `db:"role" json:"role"`
	InviteToken     *string    `db:"invite_token" json:"invite_token,omitempty"`
	HasResponded    bool       `db:"has_responded" json:"has_responded"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// TeamMemberWithUser is a team member row joined with its user record.
type TeamMemberWithUser struct {
	TeamMember
	UserEmail    string `db:"user_email" json:"user_email"`
	UserName     string `db:"user_name" json:"user_name"`
	UserTimezone string `db:"user_timezone" json:"user_timezone"`
}
