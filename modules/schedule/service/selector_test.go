package service

import (
	"testing"
	"time"

	"team-scheduler/modules/schedule/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, d, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, 3, d, hour, min, 0, 0, time.UTC)
}

func params(meetings int, consecutive bool) SelectionParams {
	return SelectionParams{
		Title:            "Sprint Planning",
		NumberOfMeetings: meetings,
		ConsecutiveDays:  consecutive,
		DurationMinutes:  60,
	}
}

func TestSelectOptions_ThreeMateriallyDifferentOptions(t *testing.T) {
	s := NewSelector()

	// Candidates on three days: a rich first day, then the 3rd and 5th.
	startTimes := []time.Time{
		day(t, 2, 9, 0),
		day(t, 2, 9, 30),
		day(t, 2, 10, 0),
		day(t, 3, 9, 0),
		day(t, 5, 14, 0),
	}

	options := s.SelectOptions(startTimes, params(2, true))

	// Pass 1: earliest-first greedy packs the first day.
	require.Len(t, options[0].Meetings, 2)
	assert.Equal(t, day(t, 2, 9, 0), options[0].Meetings[0].StartTime)
	assert.Equal(t, day(t, 2, 10, 0), options[0].Meetings[1].StartTime)

	// Pass 2: latest-first greedy, re-sorted chronologically.
	require.Len(t, options[1].Meetings, 2)
	assert.Equal(t, day(t, 3, 9, 0), options[1].Meetings[0].StartTime)
	assert.Equal(t, day(t, 5, 14, 0), options[1].Meetings[1].StartTime)

	// Pass 3: one meeting per day, preferring the consecutive 2nd-3rd run.
	require.Len(t, options[2].Meetings, 2)
	assert.Equal(t, day(t, 2, 9, 0), options[2].Meetings[0].StartTime)
	assert.Equal(t, day(t, 3, 9, 0), options[2].Meetings[1].StartTime)

	for _, opt := range options {
		assert.NotEmpty(t, opt.Reasoning)
		assert.Greater(t, opt.Score, 0.0)
		assert.LessOrEqual(t, opt.Score, 10.0)
	}

	// Titles are numbered in chronological order.
	assert.Equal(t, "Sprint Planning - Meeting 1", options[1].Meetings[0].Title)
	assert.Equal(t, "Sprint Planning - Meeting 2", options[1].Meetings[1].Title)
}

func TestSelectOptions_NoMeetingOverlapsWithinAnOption(t *testing.T) {
	s := NewSelector()

	// Dense half-hourly candidates: greedy must skip overlapping starts.
	var startTimes []time.Time
	for i := 0; i < 12; i++ {
		startTimes = append(startTimes, day(t, 2, 9, 0).Add(time.Duration(i)*30*time.Minute))
	}

	options := s.SelectOptions(startTimes, params(3, false))

	for _, opt := range options {
		for i := 0; i < len(opt.Meetings); i++ {
			for j := i + 1; j < len(opt.Meetings); j++ {
				a, b := opt.Meetings[i], opt.Meetings[j]
				overlap := a.StartTime.Before(b.EndTime) && a.EndTime.After(b.StartTime)
				assert.False(t, overlap, "meetings %d and %d overlap", i, j)
			}
		}
	}
}

func TestSelectOptions_TooFewCandidatesYieldsPlaceholders(t *testing.T) {
	s := NewSelector()

	options := s.SelectOptions([]time.Time{day(t, 2, 9, 0)}, params(2, true))

	assert.Equal(t, ReasonNoSchedule, options[0].Reasoning)
	for i, opt := range options {
		assert.True(t, opt.IsPlaceholder(), "option %d should be a placeholder", i+1)
		assert.Zero(t, opt.Score)
	}
}

func TestSelectOptions_EmptyCandidatesYieldPlaceholders(t *testing.T) {
	s := NewSelector()

	options := s.SelectOptions(nil, params(3, true))

	assert.Equal(t, ReasonNoSchedule, options[0].Reasoning)
	for _, opt := range options {
		assert.Empty(t, opt.Meetings)
	}
}

func TestSelectOptions_DuplicatePassesCollapse(t *testing.T) {
	s := NewSelector()

	// One candidate, one meeting: all three passes would pick the same
	// start, so only the first option stays real.
	options := s.SelectOptions([]time.Time{day(t, 2, 9, 0)}, params(1, false))

	require.Len(t, options[0].Meetings, 1)
	assert.True(t, options[1].IsPlaceholder())
	assert.True(t, options[2].IsPlaceholder())
}

func TestPlaceholderOptions(t *testing.T) {
	s := NewSelector()

	options := s.PlaceholderOptions()

	assert.Equal(t, ReasonNoAvailability, options[0].Reasoning)
	for _, opt := range options {
		assert.True(t, opt.IsPlaceholder())
		assert.NotNil(t, opt.Meetings)
	}
}

func TestSelectOptions_Deterministic(t *testing.T) {
	s := NewSelector()

	startTimes := []time.Time{
		day(t, 2, 9, 0), day(t, 2, 13, 0),
		day(t, 3, 9, 0), day(t, 4, 9, 0),
	}

	first := s.SelectOptions(startTimes, params(3, true))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.SelectOptions(startTimes, params(3, true)))
	}
}

func TestSelectOptions_ScoreRewardsConsecutiveDays(t *testing.T) {
	s := NewSelector()

	// One candidate per day on three consecutive business-hour mornings.
	startTimes := []time.Time{
		day(t, 2, 9, 0), day(t, 3, 9, 0), day(t, 4, 9, 0),
	}

	options := s.SelectOptions(startTimes, params(3, true))

	require.Len(t, options[0].Meetings, 3)
	// Base 5 + distinct days + consecutive + business hours = 9;
	// candidate supply is too thin for the abundance point.
	assert.Equal(t, 9.0, options[0].Score)
}

// The scenario from the slot finder tests carried through the selector:
// an intersection too short for the meeting must yield placeholders, never
// a fabricated schedule.
func TestEndToEnd_ShortIntersectionProducesPlaceholders(t *testing.T) {
	sf := NewSlotFinder()
	s := NewSelector()

	windows := []AvailabilityWindow{
		{UserID: "a", Start: day(t, 2, 9, 0), End: day(t, 2, 12, 0)},
		{UserID: "b", Start: day(t, 2, 9, 0), End: day(t, 2, 11, 0)},
		{UserID: "c", Start: day(t, 2, 10, 0), End: day(t, 2, 13, 0)},
	}

	startTimes := sf.FindMeetingStartTimes(windows, 3, 90)
	require.Empty(t, startTimes)

	options := s.SelectOptions(startTimes, SelectionParams{
		Title:            "Quarterly Sync",
		NumberOfMeetings: 3,
		ConsecutiveDays:  true,
		DurationMinutes:  90,
	})

	assert.Equal(t, ReasonNoSchedule, options[0].Reasoning)
	for _, opt := range options {
		assert.True(t, opt.IsPlaceholder())
	}
}

func TestScheduleOptionRoundTripsThroughJSONB(t *testing.T) {
	original := entity.ScheduleOption{
		Meetings: []entity.ScheduleMeeting{
			{Title: "Sync - Meeting 1", StartTime: day(t, 2, 9, 0), EndTime: day(t, 2, 10, 0)},
		},
		Reasoning: "morning fit",
		Score:     7,
	}

	value, err := original.Value()
	require.NoError(t, err)

	var restored entity.ScheduleOption
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, original.Reasoning, restored.Reasoning)
	assert.Equal(t, original.Score, restored.Score)
	require.Len(t, restored.Meetings, 1)
	assert.True(t, original.Meetings[0].StartTime.Equal(restored.Meetings[0].StartTime))
}
