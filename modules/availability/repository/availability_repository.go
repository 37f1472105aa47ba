package repository

import (
	"context"

	"team-scheduler/core/database"
	"team-scheduler/core/logger"
	"team-scheduler/modules/availability/entity"

	"github.com/google/uuid"
)

// AvailabilityRepository handles availability database operations
type AvailabilityRepository struct {
	DB database.Database
}

// NewAvailabilityRepository creates a new repository instance
func NewAvailabilityRepository(db database.Database) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

// AvailabilityRepositoryInterface defines the repository contract
type AvailabilityRepositoryInterface interface {
	CreateMany(ctx context.Context, availabilities []entity.Availability) error
	GetBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]entity.Availability, error)
	CountBySeriesID(ctx context.Context, seriesID uuid.UUID) (int, error)
}

func (r *AvailabilityRepository) CreateMany(ctx context.Context, availabilities []entity.Availability) error {
	query := `
		INSERT INTO availabilities (user_id, meeting_series_id, start_time, end_time, timezone)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, a := range availabilities {
		err := r.DB.ExecContext(ctx, query,
			a.UserID, a.MeetingSeriesID, a.StartTime, a.EndTime, a.Timezone)
		if err != nil {
			logger.Error("AvailabilityRepository:CreateMany", err)
			return err
		}
	}

	return nil
}

func (r *AvailabilityRepository) GetBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]entity.Availability, error) {
	query := `
		SELECT id, user_id, meeting_series_id, start_time, end_time, timezone, created_at
		FROM availabilities
		WHERE meeting_series_id = $1
		ORDER BY start_time
	`

	var availabilities []entity.Availability
	err := r.DB.SelectContext(ctx, &availabilities, query, seriesID)
	if err != nil {
		logger.Error("AvailabilityRepository:GetBySeriesID", err)
		return nil, err
	}

	return availabilities, nil
}

func (r *AvailabilityRepository) CountBySeriesID(ctx context.Context, seriesID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM availabilities WHERE meeting_series_id = $1`
	err := r.DB.GetContext(ctx, &count, query, seriesID)
	if err != nil {
		logger.Error("AvailabilityRepository:CountBySeriesID", err)
		return 0, err
	}
	return count, nil
}
