package repository

import (
	"context"
	"database/sql"

	"team-scheduler/core/database"
	"team-scheduler/core/logger"
	"team-scheduler/modules/series/entity"

	"github.com/google/uuid"
)

// SeriesRepository handles meeting series database operations
type SeriesRepository struct {
	DB database.Database
}

// NewSeriesRepository creates a new repository instance
func NewSeriesRepository(db database.Database) *SeriesRepository {
	return &SeriesRepository{DB: db}
}

// SeriesRepositoryInterface defines the repository contract
type SeriesRepositoryInterface interface {
	// Users
	UpsertUser(ctx context.Context, email, name, timezone string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Series
	CreateSeries(ctx context.Context, series *entity.MeetingSeries) (*entity.MeetingSeries, error)
	GetSeriesByID(ctx context.Context, id uuid.UUID) (*entity.MeetingSeries, error)
	ListSeries(ctx context.Context, adminEmail string) ([]entity.MeetingSeries, error)
	UpdateSeriesStatus(ctx context.Context, id uuid.UUID, status entity.SeriesStatus) error

	// Team members
	CreateTeamMember(ctx context.Context, member *entity.TeamMember) (*entity.TeamMember, error)
	GetTeamMembersBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]entity.TeamMemberWithUser, error)
	GetTeamMemberByToken(ctx context.Context, token string) (*entity.TeamMemberWithUser, error)
	MarkMemberResponded(ctx context.Context, memberID uuid.UUID) error

	// Finalized meetings
	CreateMeeting(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error)
	GetMeetingsBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]entity.Meeting, error)
}

// ===================== Users =====================

func (r *SeriesRepository) UpsertUser(ctx context.Context, email, name, timezone string) (*entity.User, error) {
	query := `
		INSERT INTO users (email, name, timezone)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET
			name = CASE WHEN EXCLUDED.name <> '' THEN EXCLUDED.name ELSE users.name END,
			timezone = CASE WHEN EXCLUDED.timezone <> '' THEN EXCLUDED.timezone ELSE users.timezone END,
			updated_at = NOW()
		RETURNING id, email, name, timezone, created_at, updated_at
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email, name, timezone)
	if err != nil {
		logger.Error("SeriesRepository:UpsertUser", err)
		return nil, err
	}

	return &user, nil
}

func (r *SeriesRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT id, email, name, timezone, created_at, updated_at FROM users WHERE id = $1`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SeriesRepository:GetUserByID", err)
		return nil, err
	}

	return &user, nil
}

// ===================== Series =====================

func (r *SeriesRepository) CreateSeries(ctx context.Context, series *entity.MeetingSeries) (*entity.MeetingSeries, error) {
	query := `
		INSERT INTO meeting_series (title, slug, description, admin_id, date_range_start, date_range_end,
		                            meeting_duration, number_of_meetings, consecutive_days, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, title, slug, description, admin_id, date_range_start, date_range_end,
		          meeting_duration, number_of_meetings, consecutive_days, status, created_at, updated_at
	`

	var created entity.MeetingSeries
	err := r.DB.GetContext(ctx, &created, query,
		series.Title, series.Slug, series.Description, series.AdminID,
		series.DateRangeStart, series.DateRangeEnd,
		series.MeetingDuration, series.NumberOfMeetings, series.ConsecutiveDays, series.Status)

	if err != nil {
		logger.Error("SeriesRepository:CreateSeries", err)
		return nil, err
	}

	return &created, nil
}

func (r *SeriesRepository) GetSeriesByID(ctx context.Context, id uuid.UUID) (*entity.MeetingSeries, error) {
	query := `
		SELECT id, title, slug, description, admin_id, date_range_start, date_range_end,
		       meeting_duration, number_of_meetings, consecutive_days, status, created_at, updated_at
		FROM meeting_series WHERE id = $1
	`

	var series entity.MeetingSeries
	err := r.DB.GetContext(ctx, &series, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SeriesRepository:GetSeriesByID", err)
		return nil, err
	}

	return &series, nil
}

func (r *SeriesRepository) ListSeries(ctx context.Context, adminEmail string) ([]entity.MeetingSeries, error) {
	query := `
		SELECT ms.id, ms.title, ms.slug, ms.description, ms.admin_id, ms.date_range_start, ms.date_range_end,
		       ms.meeting_duration, ms.number_of_meetings, ms.consecutive_days, ms.status, ms.created_at, ms.updated_at
		FROM meeting_series ms
	`
	args := []any{}
	if adminEmail != "" {
		query += ` JOIN users u ON u.id = ms.admin_id WHERE u.email = $1`
		args = append(args, adminEmail)
	}
	query += ` ORDER BY ms.created_at DESC`

	var series []entity.MeetingSeries
	err := r.DB.SelectContext(ctx, &series, query, args...)
	if err != nil {
		logger.Error("SeriesRepository:ListSeries", err)
		return nil, err
	}

	return series, nil
}

func (r *SeriesRepository) UpdateSeriesStatus(ctx context.Context, id uuid.UUID, status entity.SeriesStatus) error {
	query := `UPDATE meeting_series SET status = $2, updated_at = NOW() WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id, status)
	if err != nil {
		logger.Error("SeriesRepository:UpdateSeriesStatus", err)
		return err
	}
	return nil
}

// ===================== Team members =====================

func (r *SeriesRepository) CreateTeamMember(ctx context.Context, member *entity.TeamMember) (*entity.TeamMember, error) {
	query := `
		INSERT INTO team_members (user_id, meeting_series_id, role, invite_token, has_responded)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, meeting_series_id, role, invite_token, has_responded, created_at
	`

	var created entity.TeamMember
	err := r.DB.GetContext(ctx, &created, query,
		member.UserID, member.MeetingSeriesID, member.Role, member.InviteToken, member.HasResponded)

	if err != nil {
		logger.Error("SeriesRepository:CreateTeamMember", err)
		return nil, err
	}

	return &created, nil
}

func (r *SeriesRepository) GetTeamMembersBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]entity.TeamMemberWithUser, error) {
	query := `
		SELECT tm.id, tm.user_id, tm.meeting_series_id, tm.role, tm.invite_token, tm.has_responded, tm.created_at,
		       u.email AS user_email, u.name AS user_name, u.timezone AS user_timezone
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.meeting_series_id = $1
		ORDER BY tm.created_at
	`

	var members []entity.TeamMemberWithUser
	err := r.DB.SelectContext(ctx, &members, query, seriesID)
	if err != nil {
		logger.Error("SeriesRepository:GetTeamMembersBySeriesID", err)
		return nil, err
	}

	return members, nil
}

func (r *SeriesRepository) GetTeamMemberByToken(ctx context.Context, token string) (*entity.TeamMemberWithUser, error) {
	query := `
		SELECT tm.id, tm.user_id, tm.meeting_series_id, tm.role, tm.invite_token, tm.has_responded, tm.created_at,
		       u.email AS user_email, u.name AS user_name, u.timezone AS user_timezone
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.invite_token = $1
	`

	var member entity.TeamMemberWithUser
	err := r.DB.GetContext(ctx, &member, query, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SeriesRepository:GetTeamMemberByToken", err)
		return nil, err
	}

	return &member, nil
}

func (r *SeriesRepository) MarkMemberResponded(ctx context.Context, memberID uuid.UUID) error {
	query := `UPDATE team_members SET has_responded = true WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, memberID)
	if err != nil {
		logger.Error("SeriesRepository:MarkMemberResponded", err)
		return err
	}
	return nil
}

// ===================== Finalized meetings =====================

func (r *SeriesRepository) CreateMeeting(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error) {
	query := `
		INSERT INTO meetings (meeting_series_id, title, start_time, end_time, sequence, calendar_event_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, meeting_series_id, title, start_time, end_time, sequence, calendar_event_id, created_at
	`

	var created entity.Meeting
	err := r.DB.GetContext(ctx, &created, query,
		meeting.MeetingSeriesID, meeting.Title, meeting.StartTime, meeting.EndTime,
		meeting.Sequence, meeting.CalendarEventID)

	if err != nil {
		logger.Error("SeriesRepository:CreateMeeting", err)
		return nil, err
	}

	return &created, nil
}

func (r *SeriesRepository) GetMeetingsBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]entity.Meeting, error) {
	query := `
		SELECT id, meeting_series_id, title, start_time, end_time, sequence, calendar_event_id, created_at
		FROM meetings
		WHERE meeting_series_id = $1
		ORDER BY sequence
	`

	var meetings []entity.Meeting
	err := r.DB.SelectContext(ctx, &meetings, query, seriesID)
	if err != nil {
		logger.Error("SeriesRepository:GetMeetingsBySeriesID", err)
		return nil, err
	}

	return meetings, nil
}
