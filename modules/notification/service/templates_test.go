package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAvailabilityRequest(t *testing.T) {
	html, err := renderAvailabilityRequest("Alice", AvailabilityRequestData{
		MeetingTitle:     "Q2 Planning",
		DateRangeStart:   "Apr 1, 2026",
		DateRangeEnd:     "Apr 14, 2026",
		NumberOfMeetings: 3,
		DurationMinutes:  210,
		ConsecutiveDays:  true,
		AvailabilityURL:  "https://scheduler.example.com/availability/tok123",
	})

	require.NoError(t, err)
	assert.Contains(t, html, "Hi Alice,")
	assert.Contains(t, html, "Q2 Planning")
	assert.Contains(t, html, "3 sessions")
	assert.Contains(t, html, "3.5 hours each")
	assert.Contains(t, html, "Apr 1, 2026 to Apr 14, 2026")
	assert.Contains(t, html, "consecutive days")
	assert.Contains(t, html, "https://scheduler.example.com/availability/tok123")
}

func TestRenderAvailabilityRequest_NonConsecutive(t *testing.T) {
	html, err := renderAvailabilityRequest("Bob", AvailabilityRequestData{
		MeetingTitle:    "Standup",
		DurationMinutes: 60,
		AvailabilityURL: "https://example.com/a/t",
	})

	require.NoError(t, err)
	assert.NotContains(t, html, "consecutive days")
	assert.Contains(t, html, "1 hour each")
}

func TestRenderVoteRequest(t *testing.T) {
	html, err := renderVoteRequest("Carol", VoteRequestData{
		MeetingTitle: "Q2 Planning",
		OptionCount:  3,
		VoteURL:      "https://scheduler.example.com/vote/tok456",
	})

	require.NoError(t, err)
	assert.Contains(t, html, "Hi Carol,")
	assert.Contains(t, html, "3 schedule options")
	assert.Contains(t, html, "https://scheduler.example.com/vote/tok456")
}

func TestRenderMeetingsScheduled(t *testing.T) {
	html, err := renderMeetingsScheduled("Dave", MeetingsScheduledData{
		MeetingTitle: "Q2 Planning",
		Meetings: []ScheduledMeetingLine{
			{Title: "Q2 Planning - Meeting 1", StartTime: "Mon, Apr 6 2026 09:00", EndTime: "12:30", Timezone: "Europe/Berlin"},
			{Title: "Q2 Planning - Meeting 2", StartTime: "Tue, Apr 7 2026 09:00", EndTime: "12:30", Timezone: "Europe/Berlin"},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, html, "Hi Dave,")
	assert.Contains(t, html, "Q2 Planning - Meeting 1")
	assert.Contains(t, html, "Q2 Planning - Meeting 2")
	assert.Contains(t, html, "(Europe/Berlin)")
	assert.Equal(t, 2, strings.Count(html, "Europe/Berlin"))
}

func TestDurationLabel(t *testing.T) {
	assert.Equal(t, "45 minutes", durationLabel(45))
	assert.Equal(t, "1 hour", durationLabel(60))
	assert.Equal(t, "2 hours", durationLabel(120))
	assert.Equal(t, "3.5 hours", durationLabel(210))
}
