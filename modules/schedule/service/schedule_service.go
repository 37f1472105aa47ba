package service

import (
	"context"
	"fmt"
	"time"

	"team-scheduler/core/errors"
	"team-scheduler/core/logger"
	availEntity "team-scheduler/modules/availability/entity"
	availRepo "team-scheduler/modules/availability/repository"
	calendarService "team-scheduler/modules/calendar/service"
	notifService "team-scheduler/modules/notification/service"
	"team-scheduler/modules/schedule/dto"
	"team-scheduler/modules/schedule/entity"
	"team-scheduler/modules/schedule/repository"
	seriesDto "team-scheduler/modules/series/dto"
	seriesEntity "team-scheduler/modules/series/entity"
	seriesRepo "team-scheduler/modules/series/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// generateLockTTL bounds how long a crashed generation can hold its lock.
const generateLockTTL = 30 * time.Second

// ScheduleService owns the full option lifecycle: generation, voting, and
// finalization into calendar events and meeting rows.
type ScheduleService struct {
	repo       repository.ScheduleRepositoryInterface
	seriesRepo seriesRepo.SeriesRepositoryInterface
	availRepo  availRepo.AvailabilityRepositoryInterface
	notif      *notifService.NotificationService
	publisher  calendarService.Publisher
	redis      *redis.Client
	slotFinder *SlotFinder
	selector   *Selector
	baseURL    string
}

// ScheduleServiceInterface defines the service contract
type ScheduleServiceInterface interface {
	GenerateSchedules(ctx context.Context, seriesID uuid.UUID) (*dto.SchedulesResponse, *errors.AppError)
	GetSchedulesByToken(ctx context.Context, token string) (*dto.SchedulesResponse, *errors.AppError)
	SubmitVote(ctx context.Context, req *dto.SubmitVoteRequest) *errors.AppError
	Finalize(ctx context.Context, schedulesID uuid.UUID) ([]seriesDto.MeetingResponse, *errors.AppError)
}

// NewScheduleService creates a new schedule service. The Redis client may
// be nil, which disables the generation lock but not generation itself.
func NewScheduleService(
	repo repository.ScheduleRepositoryInterface,
	seriesRepository seriesRepo.SeriesRepositoryInterface,
	availabilityRepo availRepo.AvailabilityRepositoryInterface,
	notif *notifService.NotificationService,
	publisher calendarService.Publisher,
	redisClient *redis.Client,
	baseURL string,
) ScheduleServiceInterface {
	return &ScheduleService{
		repo:       repo,
		seriesRepo: seriesRepository,
		availRepo:  availabilityRepo,
		notif:      notif,
		publisher:  publisher,
		redis:      redisClient,
		slotFinder: NewSlotFinder(),
		selector:   NewSelector(),
		baseURL:    baseURL,
	}
}

// GenerateSchedules runs the slot finder over all submitted availability and
// publishes exactly three options for voting. A series gets one schedules
// record ever: the unique index on meeting_series_id plus a short Redis lock
// make concurrent triggers collapse into one winner.
func (s *ScheduleService) GenerateSchedules(ctx context.Context, seriesID uuid.UUID) (*dto.SchedulesResponse, *errors.AppError) {
	series, err := s.seriesRepo.GetSeriesByID(ctx, seriesID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting series", err)
	}
	if series == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting series not found", nil)
	}

	if existing, err := s.repo.GetBySeriesID(ctx, seriesID); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing schedules", err)
	} else if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Schedules already generated for this series", nil)
	}

	unlock, locked := s.acquireGenerateLock(ctx, seriesID)
	if !locked {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Schedule generation already in progress", nil)
	}
	defer unlock()

	members, err := s.seriesRepo.GetTeamMembersBySeriesID(ctx, seriesID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get team members", err)
	}

	availabilities, err := s.availRepo.GetBySeriesID(ctx, seriesID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get availability", err)
	}

	options := s.buildOptions(series, members, availabilities)

	schedules := &entity.MeetingSchedules{
		MeetingSeriesID: seriesID,
		Option1:         options[0],
		Option2:         options[1],
		Option3:         options[2],
		Status:          entity.ScheduleStatusVoting,
	}

	created, err := s.repo.CreateSchedules(ctx, schedules)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "Schedules already generated for this series", err)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create schedules", err)
	}

	if err := s.seriesRepo.UpdateSeriesStatus(ctx, seriesID, seriesEntity.SeriesStatusVoting); err != nil {
		logger.Error("ScheduleService:GenerateSchedules:UpdateSeriesStatus", err)
	}

	s.sendVoteRequests(ctx, series, members)

	return dto.ToSchedulesResponse(created), nil
}

// GetSchedulesByToken resolves a member's invite token to the schedules of
// their series.
func (s *ScheduleService) GetSchedulesByToken(ctx context.Context, token string) (*dto.SchedulesResponse, *errors.AppError) {
	member, err := s.seriesRepo.GetTeamMemberByToken(ctx, token)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up invite token", err)
	}
	if member == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Invalid invite token", nil)
	}

	schedules, err := s.repo.GetBySeriesID(ctx, member.MeetingSeriesID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get schedules", err)
	}
	if schedules == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "No schedules generated for this series yet", nil)
	}

	return dto.ToSchedulesResponse(schedules), nil
}

// SubmitVote records one member's ranked vote.
func (s *ScheduleService) SubmitVote(ctx context.Context, req *dto.SubmitVoteRequest) *errors.AppError {
	if appErr := validateChoices(req.FirstChoice, req.SecondChoice, req.ThirdChoice); appErr != nil {
		return appErr
	}

	member, err := s.seriesRepo.GetTeamMemberByToken(ctx, req.Token)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to look up invite token", err)
	}
	if member == nil {
		return errors.NewAppError(errors.ErrNotFound, "Invalid invite token", nil)
	}

	schedules, err := s.repo.GetBySeriesID(ctx, member.MeetingSeriesID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get schedules", err)
	}
	if schedules == nil {
		return errors.NewAppError(errors.ErrNotFound, "No schedules found for this series", nil)
	}
	if schedules.Status != entity.ScheduleStatusVoting {
		return errors.NewAppError(errors.ErrPreconditionNotMet, "Voting is closed for this series", nil)
	}

	vote := &entity.ScheduleVote{
		TeamMemberID:       member.ID,
		MeetingSchedulesID: schedules.ID,
		FirstChoice:        req.FirstChoice,
		SecondChoice:       req.SecondChoice,
		ThirdChoice:        req.ThirdChoice,
	}

	if _, err := s.repo.CreateVote(ctx, vote); err != nil {
		if repository.IsUniqueViolation(err) {
			return errors.NewAppError(errors.ErrAlreadyExists, "This member has already voted", err)
		}
		return errors.NewAppError(errors.ErrInternalServer, "Failed to submit vote", err)
	}

	return nil
}

// Finalize tallies the votes, publishes the winning meetings to the
// calendar, and notifies the team. The status transition is conditional so
// concurrent finalize calls cannot double-publish.
func (s *ScheduleService) Finalize(ctx context.Context, schedulesID uuid.UUID) ([]seriesDto.MeetingResponse, *errors.AppError) {
	schedules, err := s.repo.GetByID(ctx, schedulesID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get schedules", err)
	}
	if schedules == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting schedules not found", nil)
	}
	if schedules.Status != entity.ScheduleStatusVoting {
		return nil, errors.NewAppError(errors.ErrPreconditionNotMet, "Schedules already finalized", nil)
	}

	votes, err := s.repo.GetVotesBySchedulesID(ctx, schedulesID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get votes", err)
	}

	result := TallyVotes(votes)
	if result == nil {
		return nil, errors.NewAppError(errors.ErrPreconditionNotMet, "No votes submitted yet", nil)
	}

	winning := schedules.Option(result.WinningOption)
	if winning.IsPlaceholder() {
		return nil, errors.NewAppError(errors.ErrPreconditionNotMet, "Winning option has no meetings", nil)
	}

	completed, err := s.repo.CompleteSchedules(ctx, schedulesID, result.WinningOption, result.Scores)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to complete schedules", err)
	}
	if !completed {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Schedules already finalized", nil)
	}

	series, err := s.seriesRepo.GetSeriesByID(ctx, schedules.MeetingSeriesID)
	if err != nil || series == nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting series", err)
	}

	members, err := s.seriesRepo.GetTeamMembersBySeriesID(ctx, schedules.MeetingSeriesID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get team members", err)
	}

	meetings, appErr := s.publishMeetings(ctx, series, members, winning)
	if appErr != nil {
		return nil, appErr
	}

	if err := s.seriesRepo.UpdateSeriesStatus(ctx, series.ID, seriesEntity.SeriesStatusScheduled); err != nil {
		logger.Error("ScheduleService:Finalize:UpdateSeriesStatus", err)
	}

	s.sendMeetingsScheduled(ctx, series, members, meetings)

	responses := make([]seriesDto.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		responses = append(responses, seriesDto.ToMeetingResponse(&m))
	}
	return responses, nil
}

// buildOptions runs the full engine pipeline for one series. Zero submitted
// availability short-circuits to placeholders rather than an error.
func (s *ScheduleService) buildOptions(
	series *seriesEntity.MeetingSeries,
	members []seriesEntity.TeamMemberWithUser,
	availabilities []availEntity.Availability,
) [3]entity.ScheduleOption {
	if len(availabilities) == 0 {
		return s.selector.PlaceholderOptions()
	}

	windows := make([]AvailabilityWindow, 0, len(availabilities))
	for _, a := range availabilities {
		windows = append(windows, AvailabilityWindow{
			UserID: a.UserID.String(),
			Start:  a.StartTime,
			End:    a.EndTime,
		})
	}

	startTimes := s.slotFinder.FindMeetingStartTimes(windows, len(members), series.MeetingDuration)
	return s.selector.SelectOptions(startTimes, SelectionParams{
		Title:            series.Title,
		NumberOfMeetings: series.NumberOfMeetings,
		ConsecutiveDays:  series.ConsecutiveDays,
		DurationMinutes:  series.MeetingDuration,
	})
}

func (s *ScheduleService) acquireGenerateLock(ctx context.Context, seriesID uuid.UUID) (func(), bool) {
	if s.redis == nil {
		return func() {}, true
	}

	key := fmt.Sprintf("schedule:generate:%s", seriesID)
	ok, err := s.redis.SetNX(ctx, key, "1", generateLockTTL).Result()
	if err != nil {
		// Redis being down should not block generation; the unique index
		// still guarantees a single schedules row.
		logger.Error("ScheduleService:acquireGenerateLock", err)
		return func() {}, true
	}
	if !ok {
		return nil, false
	}

	return func() {
		if err := s.redis.Del(context.Background(), key).Err(); err != nil {
			logger.Error("ScheduleService:releaseGenerateLock", err)
		}
	}, true
}

func (s *ScheduleService) publishMeetings(
	ctx context.Context,
	series *seriesEntity.MeetingSeries,
	members []seriesEntity.TeamMemberWithUser,
	winning entity.ScheduleOption,
) ([]seriesEntity.Meeting, *errors.AppError) {
	attendees := make([]calendarService.Attendee, 0, len(members))
	for _, m := range members {
		attendees = append(attendees, calendarService.Attendee{
			Email: m.UserEmail,
			Name:  m.UserName,
		})
	}

	description := ""
	if series.Description != nil {
		description = *series.Description
	}

	created := make([]seriesEntity.Meeting, 0, len(winning.Meetings))
	for i, m := range winning.Meetings {
		// A calendar failure never blocks finalization; the meeting row
		// simply has no event id.
		eventID, err := s.publisher.CreateEvent(ctx, calendarService.EventRequest{
			Title:       m.Title,
			Description: description,
			Start:       m.StartTime,
			End:         m.EndTime,
			Timezone:    "UTC",
			Attendees:   attendees,
		})
		if err != nil {
			logger.Error("ScheduleService:publishMeetings:CreateEvent", "error", err, "title", m.Title)
			eventID = ""
		}

		meeting := &seriesEntity.Meeting{
			MeetingSeriesID: series.ID,
			Title:           m.Title,
			StartTime:       m.StartTime,
			EndTime:         m.EndTime,
			Sequence:        i + 1,
		}
		if eventID != "" {
			meeting.CalendarEventID = &eventID
		}

		saved, err := s.seriesRepo.CreateMeeting(ctx, meeting)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create meeting", err)
		}
		created = append(created, *saved)
	}

	return created, nil
}

func (s *ScheduleService) sendVoteRequests(ctx context.Context, series *seriesEntity.MeetingSeries, members []seriesEntity.TeamMemberWithUser) {
	for _, m := range members {
		if m.InviteToken == nil {
			continue
		}
		voteURL := fmt.Sprintf("%s/vote/%s", s.baseURL, *m.InviteToken)
		if err := s.notif.SendVoteRequest(ctx, m.UserEmail, m.UserName, notifService.VoteRequestData{
			MeetingTitle: series.Title,
			OptionCount:  3,
			VoteURL:      voteURL,
		}); err != nil {
			logger.Error("ScheduleService:sendVoteRequests", "error", err, "email", m.UserEmail)
		}
	}
}

func (s *ScheduleService) sendMeetingsScheduled(ctx context.Context, series *seriesEntity.MeetingSeries, members []seriesEntity.TeamMemberWithUser, meetings []seriesEntity.Meeting) {
	for _, m := range members {
		lines := make([]notifService.ScheduledMeetingLine, 0, len(meetings))
		loc, err := time.LoadLocation(m.UserTimezone)
		if err != nil {
			loc = time.UTC
		}
		for _, meeting := range meetings {
			lines = append(lines, notifService.ScheduledMeetingLine{
				Title:     meeting.Title,
				StartTime: meeting.StartTime.In(loc).Format("Mon, Jan 2 2006 15:04"),
				EndTime:   meeting.EndTime.In(loc).Format("15:04"),
				Timezone:  loc.String(),
			})
		}

		if err := s.notif.SendMeetingsScheduled(ctx, m.UserEmail, m.UserName, notifService.MeetingsScheduledData{
			MeetingTitle: series.Title,
			Meetings:     lines,
		}); err != nil {
			logger.Error("ScheduleService:sendMeetingsScheduled", "error", err, "email", m.UserEmail)
		}
	}
}

// validateChoices ensures the three ranked choices are option indexes 1..3
// and pairwise distinct.
func validateChoices(first, second, third int) *errors.AppError {
	for _, c := range []int{first, second, third} {
		if c < 1 || c > 3 {
			return errors.NewAppError(errors.ErrInvalidInput, "Choices must be option indexes between 1 and 3", nil)
		}
	}
	if first == second || first == third || second == third {
		return errors.NewAppError(errors.ErrInvalidInput, "Choices must be distinct", nil)
	}
	return nil
}
