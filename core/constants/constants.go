package constants

import "time"

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// DefaultTimeout bounds outbound calls and request-scoped work
const DefaultTimeout = 15 * time.Second

// Scheduling defaults (mirrors the meeting series creation defaults)
const (
	DefaultMeetingDurationMinutes = 210 // 3.5 hours
	DefaultNumberOfMeetings       = 3
	ScheduleOptionCount           = 3
)

// InviteTokenLength is the nanoid length for team member invite tokens
const InviteTokenLength = 26

// Asynq queue names
const (
	QueueDefault = "default"
	QueueEmail   = "email"
)
