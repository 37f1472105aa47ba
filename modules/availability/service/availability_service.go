package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"team-scheduler/core/errors"
	"team-scheduler/modules/availability/dto"
	"team-scheduler/modules/availability/entity"
	"team-scheduler/modules/availability/repository"
	seriesRepo "team-scheduler/modules/series/repository"

	"github.com/google/uuid"
)

// AvailabilityService handles availability submission and lookup
type AvailabilityService struct {
	repo       repository.AvailabilityRepositoryInterface
	seriesRepo seriesRepo.SeriesRepositoryInterface
}

// AvailabilityServiceInterface defines the service contract
type AvailabilityServiceInterface interface {
	SubmitAvailability(ctx context.Context, req *dto.SubmitAvailabilityRequest) *errors.AppError
	GetBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]dto.AvailabilityResponse, *errors.AppError)
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(repo repository.AvailabilityRepositoryInterface, sr seriesRepo.SeriesRepositoryInterface) AvailabilityServiceInterface {
	return &AvailabilityService{repo: repo, seriesRepo: sr}
}

// SubmitAvailability stores the member's windows, normalized to UTC, and
// marks the member as responded. Windows are interpreted in the member's
// own timezone.
func (s *AvailabilityService) SubmitAvailability(ctx context.Context, req *dto.SubmitAvailabilityRequest) *errors.AppError {
	member, err := s.seriesRepo.GetTeamMemberByToken(ctx, req.Token)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to look up invite token", err)
	}
	if member == nil {
		return errors.NewAppError(errors.ErrNotFound, "Invalid invite token", nil)
	}

	if len(req.TimeSlots) == 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "At least one time slot is required", nil)
	}

	loc, err := time.LoadLocation(member.UserTimezone)
	if err != nil {
		loc = time.UTC
	}

	availabilities := make([]entity.Availability, 0, len(req.TimeSlots))
	for _, slot := range req.TimeSlots {
		start, end, err := parseWindow(slot.Day, slot.Time, loc)
		if err != nil {
			return errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("Invalid time slot %q on %q", slot.Time, slot.Day), err)
		}

		availabilities = append(availabilities, entity.Availability{
			UserID:          member.UserID,
			MeetingSeriesID: member.MeetingSeriesID,
			StartTime:       start,
			EndTime:         end,
			Timezone:        member.UserTimezone,
		})
	}

	if err := s.repo.CreateMany(ctx, availabilities); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to save availability", err)
	}

	if err := s.seriesRepo.MarkMemberResponded(ctx, member.ID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to update member status", err)
	}

	return nil
}

// GetBySeriesID lists the stored availability windows of a series
func (s *AvailabilityService) GetBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]dto.AvailabilityResponse, *errors.AppError) {
	availabilities, err := s.repo.GetBySeriesID(ctx, seriesID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get availability", err)
	}

	result := make([]dto.AvailabilityResponse, 0, len(availabilities))
	for _, a := range availabilities {
		result = append(result, dto.ToAvailabilityResponse(&a))
	}
	return result, nil
}

// parseWindow turns a day ("2025-03-10") and a local range ("09:00-12:30")
// into UTC instants. The end must be after the start; overnight windows are
// not supported.
func parseWindow(day, window string, loc *time.Location) (time.Time, time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	parts := strings.Split(window, "-")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("time range must be HH:MM-HH:MM")
	}

	start, err := atTime(date, strings.TrimSpace(parts[0]), loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := atTime(date, strings.TrimSpace(parts[1]), loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end time must be after start time")
	}

	return start.UTC(), end.UTC(), nil
}

func atTime(date time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
