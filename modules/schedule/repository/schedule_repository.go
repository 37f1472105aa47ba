package repository

import (
	"context"
	"database/sql"

	"team-scheduler/core/database"
	"team-scheduler/core/logger"
	"team-scheduler/modules/schedule/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ScheduleRepository handles meeting schedules and vote database operations
type ScheduleRepository struct {
	DB database.Database
}

// NewScheduleRepository creates a new repository instance
func NewScheduleRepository(db database.Database) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

// ScheduleRepositoryInterface defines the repository contract
type ScheduleRepositoryInterface interface {
	CreateSchedules(ctx context.Context, schedules *entity.MeetingSchedules) (*entity.MeetingSchedules, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MeetingSchedules, error)
	GetBySeriesID(ctx context.Context, seriesID uuid.UUID) (*entity.MeetingSchedules, error)
	CompleteSchedules(ctx context.Context, id uuid.UUID, winningOption int, scores entity.FinalScores) (bool, error)

	CreateVote(ctx context.Context, vote *entity.ScheduleVote) (*entity.ScheduleVote, error)
	GetVotesBySchedulesID(ctx context.Context, schedulesID uuid.UUID) ([]entity.ScheduleVote, error)
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation. The schema keeps one schedules row per series and one vote per
// member, so concurrent writers surface here instead of racing.
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

// ===================== Meeting schedules =====================

func (r *ScheduleRepository) CreateSchedules(ctx context.Context, schedules *entity.MeetingSchedules) (*entity.MeetingSchedules, error) {
	query := `
		INSERT INTO meeting_schedules (meeting_series_id, option1, option2, option3, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, meeting_series_id, option1, option2, option3, status,
		          winning_option, final_scores, created_at, updated_at
	`

	var created entity.MeetingSchedules
	err := r.DB.GetContext(ctx, &created, query,
		schedules.MeetingSeriesID, schedules.Option1, schedules.Option2, schedules.Option3, schedules.Status)

	if err != nil {
		if !IsUniqueViolation(err) {
			logger.Error("ScheduleRepository:CreateSchedules", err)
		}
		return nil, err
	}

	return &created, nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MeetingSchedules, error) {
	query := `
		SELECT id, meeting_series_id, option1, option2, option3, status,
		       winning_option, final_scores, created_at, updated_at
		FROM meeting_schedules WHERE id = $1
	`

	var schedules entity.MeetingSchedules
	err := r.DB.GetContext(ctx, &schedules, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ScheduleRepository:GetByID", err)
		return nil, err
	}

	return &schedules, nil
}

func (r *ScheduleRepository) GetBySeriesID(ctx context.Context, seriesID uuid.UUID) (*entity.MeetingSchedules, error) {
	query := `
		SELECT id, meeting_series_id, option1, option2, option3, status,
		       winning_option, final_scores, created_at, updated_at
		FROM meeting_schedules WHERE meeting_series_id = $1
	`

	var schedules entity.MeetingSchedules
	err := r.DB.GetContext(ctx, &schedules, query, seriesID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ScheduleRepository:GetBySeriesID", err)
		return nil, err
	}

	return &schedules, nil
}

// CompleteSchedules records the tally outcome and moves the record to
// completed. The update is conditional on the voting status, so exactly one
// of any concurrent finalize calls wins; the rest see false.
func (r *ScheduleRepository) CompleteSchedules(ctx context.Context, id uuid.UUID, winningOption int, scores entity.FinalScores) (bool, error) {
	query := `
		UPDATE meeting_schedules
		SET winning_option = $2, final_scores = $3, status = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
		RETURNING id
	`

	var updatedID uuid.UUID
	err := r.DB.GetContext(ctx, &updatedID, query,
		id, winningOption, scores, entity.ScheduleStatusCompleted, entity.ScheduleStatusVoting)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		logger.Error("ScheduleRepository:CompleteSchedules", err)
		return false, err
	}

	return true, nil
}

// ===================== Votes =====================

func (r *ScheduleRepository) CreateVote(ctx context.Context, vote *entity.ScheduleVote) (*entity.ScheduleVote, error) {
	query := `
		INSERT INTO schedule_votes (team_member_id, meeting_schedules_id, first_choice, second_choice, third_choice)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, team_member_id, meeting_schedules_id, first_choice, second_choice, third_choice, created_at
	`

	var created entity.ScheduleVote
	err := r.DB.GetContext(ctx, &created, query,
		vote.TeamMemberID, vote.MeetingSchedulesID, vote.FirstChoice, vote.SecondChoice, vote.ThirdChoice)

	if err != nil {
		if !IsUniqueViolation(err) {
			logger.Error("ScheduleRepository:CreateVote", err)
		}
		return nil, err
	}

	return &created, nil
}

func (r *ScheduleRepository) GetVotesBySchedulesID(ctx context.Context, schedulesID uuid.UUID) ([]entity.ScheduleVote, error) {
	query := `
		SELECT id, team_member_id, meeting_schedules_id, first_choice, second_choice, third_choice, created_at
		FROM schedule_votes
		WHERE meeting_schedules_id = $1
		ORDER BY created_at
	`

	var votes []entity.ScheduleVote
	err := r.DB.SelectContext(ctx, &votes, query, schedulesID)
	if err != nil {
		logger.Error("ScheduleRepository:GetVotesBySchedulesID", err)
		return nil, err
	}

	return votes, nil
}
