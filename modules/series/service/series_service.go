package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"team-scheduler/core/constants"
	"team-scheduler/core/errors"
	"team-scheduler/core/logger"
	"team-scheduler/core/utils"
	availRepo "team-scheduler/modules/availability/repository"
	notifService "team-scheduler/modules/notification/service"
	"team-scheduler/modules/series/dto"
	"team-scheduler/modules/series/entity"
	"team-scheduler/modules/series/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// SeriesService handles meeting series business logic
type SeriesService struct {
	repo      repository.SeriesRepositoryInterface
	availRepo availRepo.AvailabilityRepositoryInterface
	notif     *notifService.NotificationService
	baseURL   string
}

// SeriesServiceInterface defines the service contract
type SeriesServiceInterface interface {
	CreateSeries(ctx context.Context, req *dto.CreateSeriesRequest) (*dto.SeriesResponse, *errors.AppError)
	GetSeriesByID(ctx context.Context, id uuid.UUID) (*dto.SeriesResponse, *errors.AppError)
	ListSeries(ctx context.Context, adminEmail string) ([]dto.SeriesResponse, *errors.AppError)
	GetMemberContext(ctx context.Context, token string) (*dto.MemberContextResponse, *errors.AppError)
	GetMeetings(ctx context.Context, seriesID uuid.UUID) ([]dto.MeetingResponse, *errors.AppError)
}

// NewSeriesService creates a new series service
func NewSeriesService(
	repo repository.SeriesRepositoryInterface,
	availabilityRepo availRepo.AvailabilityRepositoryInterface,
	notif *notifService.NotificationService,
	baseURL string,
) SeriesServiceInterface {
	return &SeriesService{
		repo:      repo,
		availRepo: availabilityRepo,
		notif:     notif,
		baseURL:   baseURL,
	}
}

// CreateSeries creates a series, its team members with invite tokens, and
// sends each member an availability-request email.
func (s *SeriesService) CreateSeries(ctx context.Context, req *dto.CreateSeriesRequest) (*dto.SeriesResponse, *errors.AppError) {
	rangeStart, err := parseDate(req.DateRangeStart)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date_range_start", err)
	}
	rangeEnd, err := parseDate(req.DateRangeEnd)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date_range_end", err)
	}
	if !rangeEnd.After(rangeStart) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date_range_end must be after date_range_start", nil)
	}

	duration := req.MeetingDuration
	if duration == 0 {
		duration = constants.DefaultMeetingDurationMinutes
	}
	if duration < 30 || duration%30 != 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "meeting_duration must be a multiple of 30 minutes", nil)
	}

	numberOfMeetings := req.NumberOfMeetings
	if numberOfMeetings == 0 {
		numberOfMeetings = constants.DefaultNumberOfMeetings
	}
	if numberOfMeetings < 1 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "number_of_meetings must be at least 1", nil)
	}

	consecutiveDays := true
	if req.ConsecutiveDays != nil {
		consecutiveDays = *req.ConsecutiveDays
	}

	// Admin user is created or refreshed from the request
	admin, err := s.repo.UpsertUser(ctx, req.AdminEmail, req.AdminName, req.AdminTimezone)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create admin user", err)
	}

	series := &entity.MeetingSeries{
		Title:            req.Title,
		Slug:             slug.Make(req.Title),
		AdminID:          admin.ID,
		DateRangeStart:   rangeStart,
		DateRangeEnd:     rangeEnd,
		MeetingDuration:  duration,
		NumberOfMeetings: numberOfMeetings,
		ConsecutiveDays:  consecutiveDays,
		Status:           entity.SeriesStatusCollecting,
	}
	if req.Description != "" {
		series.Description = &req.Description
	}

	created, err := s.repo.CreateSeries(ctx, series)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create meeting series", err)
	}

	// The admin counts as a responded member and votes without a token
	adminMember := &entity.TeamMember{
		UserID:          admin.ID,
		MeetingSeriesID: created.ID,
		Role:            entity.MemberRoleAdmin,
		HasResponded:    true,
	}
	if _, err := s.repo.CreateTeamMember(ctx, adminMember); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to add admin team member", err)
	}

	for _, email := range parseTeamEmails(req.TeamEmails, req.AdminEmail) {
		user, err := s.repo.UpsertUser(ctx, email, emailLocalPart(email), "UTC")
		if err != nil {
			logger.Error("SeriesService:CreateSeries:UpsertUser", "error", err, "email", email)
			continue
		}

		token := utils.GenerateInviteToken()
		member := &entity.TeamMember{
			UserID:          user.ID,
			MeetingSeriesID: created.ID,
			Role:            entity.MemberRoleMember,
			InviteToken:     &token,
			HasResponded:    false,
		}
		if _, err := s.repo.CreateTeamMember(ctx, member); err != nil {
			logger.Error("SeriesService:CreateSeries:CreateTeamMember", "error", err, "email", email)
			continue
		}

		// Best-effort: a failed email never fails series creation
		availabilityURL := fmt.Sprintf("%s/availability/%s", s.baseURL, token)
		if err := s.notif.SendAvailabilityRequest(ctx, user.Email, user.Name, notifService.AvailabilityRequestData{
			MeetingTitle:     created.Title,
			DateRangeStart:   rangeStart.Format("Jan 2, 2006"),
			DateRangeEnd:     rangeEnd.Format("Jan 2, 2006"),
			NumberOfMeetings: numberOfMeetings,
			DurationMinutes:  duration,
			ConsecutiveDays:  consecutiveDays,
			AvailabilityURL:  availabilityURL,
		}); err != nil {
			logger.Error("SeriesService:CreateSeries:SendAvailabilityRequest", "error", err, "email", user.Email)
		}
	}

	return s.buildSeriesResponse(ctx, created)
}

// GetSeriesByID retrieves a series with its team members
func (s *SeriesService) GetSeriesByID(ctx context.Context, id uuid.UUID) (*dto.SeriesResponse, *errors.AppError) {
	series, err := s.repo.GetSeriesByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting series", err)
	}
	if series == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting series not found", nil)
	}

	return s.buildSeriesResponse(ctx, series)
}

// ListSeries retrieves all series, optionally filtered by admin email
func (s *SeriesService) ListSeries(ctx context.Context, adminEmail string) ([]dto.SeriesResponse, *errors.AppError) {
	seriesList, err := s.repo.ListSeries(ctx, adminEmail)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list meeting series", err)
	}

	result := make([]dto.SeriesResponse, 0, len(seriesList))
	for _, series := range seriesList {
		resp, appErr := s.buildSeriesResponse(ctx, &series)
		if appErr != nil {
			return nil, appErr
		}
		result = append(result, *resp)
	}

	return result, nil
}

// GetMemberContext resolves an invite token to its member and series
func (s *SeriesService) GetMemberContext(ctx context.Context, token string) (*dto.MemberContextResponse, *errors.AppError) {
	member, err := s.repo.GetTeamMemberByToken(ctx, token)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up invite token", err)
	}
	if member == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Invalid invite token", nil)
	}

	series, err := s.repo.GetSeriesByID(ctx, member.MeetingSeriesID)
	if err != nil || series == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting series not found", err)
	}

	seriesResp, appErr := s.buildSeriesResponse(ctx, series)
	if appErr != nil {
		return nil, appErr
	}

	return &dto.MemberContextResponse{
		Member: dto.ToTeamMemberResponse(member),
		Series: *seriesResp,
	}, nil
}

// GetMeetings lists the finalized meetings of a series
func (s *SeriesService) GetMeetings(ctx context.Context, seriesID uuid.UUID) ([]dto.MeetingResponse, *errors.AppError) {
	series, err := s.repo.GetSeriesByID(ctx, seriesID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting series", err)
	}
	if series == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting series not found", nil)
	}

	meetings, err := s.repo.GetMeetingsBySeriesID(ctx, seriesID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meetings", err)
	}

	result := make([]dto.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		result = append(result, dto.ToMeetingResponse(&m))
	}
	return result, nil
}

func (s *SeriesService) buildSeriesResponse(ctx context.Context, series *entity.MeetingSeries) (*dto.SeriesResponse, *errors.AppError) {
	members, err := s.repo.GetTeamMembersBySeriesID(ctx, series.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get team members", err)
	}

	count, err := s.availRepo.CountBySeriesID(ctx, series.ID)
	if err != nil {
		logger.Error("SeriesService:buildSeriesResponse:CountAvailabilities", err)
		count = 0
	}

	return dto.ToSeriesResponse(series, members, count), nil
}

// parseDate accepts YYYY-MM-DD or RFC3339
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// parseTeamEmails splits the newline-separated email list, dropping blanks
// and the admin's own address.
func parseTeamEmails(raw, adminEmail string) []string {
	var emails []string
	seen := map[string]bool{adminEmail: true}
	for _, line := range strings.Split(raw, "\n") {
		email := strings.TrimSpace(line)
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
	}
	return emails
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
