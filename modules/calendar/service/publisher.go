package service

import (
	"context"
	"fmt"
	"time"

	"team-scheduler/core/config"
	"team-scheduler/core/logger"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Attendee is one calendar event guest.
type Attendee struct {
	Email string
	Name  string
}

// EventRequest describes one calendar event to publish.
type EventRequest struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Timezone    string
	Attendees   []Attendee
}

// Publisher pushes finalized meetings to an external calendar.
type Publisher interface {
	CreateEvent(ctx context.Context, req EventRequest) (string, error)
}

// NewPublisher returns a Google Calendar publisher when OAuth credentials
// are configured, and a mock publisher otherwise so the rest of the flow
// works without a Google account.
func NewPublisher(cfg *config.Config) Publisher {
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRefreshToken == "" {
		logger.Warn("CalendarPublisher: Google credentials not set, using mock publisher")
		return &mockPublisher{}
	}
	return &googlePublisher{
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		refreshToken: cfg.GoogleRefreshToken,
		calendarID:   cfg.GoogleCalendarID,
	}
}

type googlePublisher struct {
	clientID     string
	clientSecret string
	refreshToken string
	calendarID   string
}

// Reminder offsets in minutes: 24h, 3h, 1h, and 10min before each meeting.
var reminderOffsets = []int64{1440, 180, 60, 10}

func (p *googlePublisher) CreateEvent(ctx context.Context, req EventRequest) (string, error) {
	svc, err := p.service(ctx)
	if err != nil {
		return "", err
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	attendees := make([]*calendar.EventAttendee, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		attendees = append(attendees, &calendar.EventAttendee{
			Email:       a.Email,
			DisplayName: a.Name,
		})
	}

	overrides := make([]*calendar.EventReminder, 0, len(reminderOffsets))
	for _, minutes := range reminderOffsets {
		overrides = append(overrides, &calendar.EventReminder{
			Method:  "email",
			Minutes: minutes,
		})
	}

	event := &calendar.Event{
		Summary:     req.Title,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.Start.Format(time.RFC3339),
			TimeZone: timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.End.Format(time.RFC3339),
			TimeZone: timezone,
		},
		Attendees: attendees,
		Reminders: &calendar.EventReminders{
			UseDefault:      false,
			Overrides:       overrides,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := svc.Events.Insert(p.calendarID, event).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		logger.Error("CalendarPublisher:CreateEvent", err)
		return "", err
	}

	logger.Info("CalendarPublisher: event created", "event_id", created.Id, "title", req.Title)
	return created.Id, nil
}

func (p *googlePublisher) service(ctx context.Context) (*calendar.Service, error) {
	conf := &oauth2.Config{
		ClientID:     p.clientID,
		ClientSecret: p.clientSecret,
		Endpoint:     googleoauth.Endpoint,
		Scopes:       []string{calendar.CalendarEventsScope},
	}
	source := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: p.refreshToken})

	svc, err := calendar.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return svc, nil
}

// mockPublisher fabricates event IDs so local environments can exercise the
// full finalize flow without touching Google.
type mockPublisher struct{}

func (p *mockPublisher) CreateEvent(_ context.Context, req EventRequest) (string, error) {
	eventID := fmt.Sprintf("mock-event-id-%d", time.Now().UnixMilli())
	logger.Info("CalendarPublisher: mock event created", "event_id", eventID, "title", req.Title)
	return eventID, nil
}
