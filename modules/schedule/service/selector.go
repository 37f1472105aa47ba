package service

import (
	"fmt"
	"sort"
	"time"

	"team-scheduler/modules/schedule/entity"
)

// Placeholder reasonings, surfaced to voters when an option holds no schedule
const (
	ReasonNoAvailability = "No availability data submitted yet."
	ReasonNoSchedule     = "Could not find a suitable schedule."
)

// SelectionParams carries the series settings the selector needs.
type SelectionParams struct {
	Title            string
	NumberOfMeetings int
	ConsecutiveDays  bool
	DurationMinutes  int
}

// Selector assembles exactly three alternative schedules from candidate
// meeting start times. The three passes are materially different:
// earliest-first, latest-first, and one-meeting-per-day (preferring
// consecutive calendar days when the series asks for them). A pass that
// cannot place the full number of meetings yields a placeholder option.
type Selector struct{}

// NewSelector creates a new selector
func NewSelector() *Selector {
	return &Selector{}
}

// SelectOptions returns the three options, indexed 1..3 by position.
// Candidate start times must be ascending, as produced by the slot finder.
func (s *Selector) SelectOptions(startTimes []time.Time, p SelectionParams) [3]entity.ScheduleOption {
	duration := time.Duration(p.DurationMinutes) * time.Minute

	passes := []struct {
		meetings  []entity.ScheduleMeeting
		reasoning string
	}{
		{
			meetings: s.greedyEarliest(startTimes, p.NumberOfMeetings, duration, p.Title),
			reasoning: fmt.Sprintf("Found a set of %d meetings that fit everyone's schedule, starting as early as possible.",
				p.NumberOfMeetings),
		},
		{
			meetings:  s.greedyLatest(startTimes, p.NumberOfMeetings, duration, p.Title),
			reasoning: "Latest workable times in the window, leaving the most preparation room before each meeting.",
		},
		{
			meetings:  s.daySpread(startTimes, p, duration),
			reasoning: s.daySpreadReasoning(p),
		},
	}

	var options [3]entity.ScheduleOption
	for i, pass := range passes {
		if pass.meetings == nil || s.duplicatesEarlier(passes[:i], pass.meetings) {
			options[i] = placeholderOption(i)
			continue
		}
		options[i] = entity.ScheduleOption{
			Meetings:  pass.meetings,
			Reasoning: pass.reasoning,
			Score:     s.score(pass.meetings, startTimes, p),
		}
	}

	return options
}

// PlaceholderOptions returns three empty options for a series without any
// availability data.
func (s *Selector) PlaceholderOptions() [3]entity.ScheduleOption {
	return [3]entity.ScheduleOption{
		{Meetings: []entity.ScheduleMeeting{}, Reasoning: ReasonNoAvailability},
		{Meetings: []entity.ScheduleMeeting{}},
		{Meetings: []entity.ScheduleMeeting{}},
	}
}

func placeholderOption(index int) entity.ScheduleOption {
	opt := entity.ScheduleOption{Meetings: []entity.ScheduleMeeting{}}
	if index == 0 {
		opt.Reasoning = ReasonNoSchedule
	}
	return opt
}

// greedyEarliest accepts candidates in ascending order, skipping any that
// would overlap an accepted meeting.
func (s *Selector) greedyEarliest(startTimes []time.Time, count int, duration time.Duration, title string) []entity.ScheduleMeeting {
	return s.greedy(startTimes, count, duration, title)
}

// greedyLatest accepts candidates in descending order, then re-sorts the
// accepted meetings chronologically.
func (s *Selector) greedyLatest(startTimes []time.Time, count int, duration time.Duration, title string) []entity.ScheduleMeeting {
	reversed := make([]time.Time, len(startTimes))
	for i, t := range startTimes {
		reversed[len(startTimes)-1-i] = t
	}

	meetings := s.greedy(reversed, count, duration, title)
	if meetings == nil {
		return nil
	}

	sort.Slice(meetings, func(i, j int) bool { return meetings[i].StartTime.Before(meetings[j].StartTime) })
	for i := range meetings {
		meetings[i].Title = fmt.Sprintf("%s - Meeting %d", title, i+1)
	}
	return meetings
}

func (s *Selector) greedy(startTimes []time.Time, count int, duration time.Duration, title string) []entity.ScheduleMeeting {
	var accepted []entity.ScheduleMeeting

	for _, start := range startTimes {
		if len(accepted) >= count {
			break
		}
		end := start.Add(duration)
		if overlapsAny(accepted, start, end) {
			continue
		}
		accepted = append(accepted, entity.ScheduleMeeting{
			Title:     fmt.Sprintf("%s - Meeting %d", title, len(accepted)+1),
			StartTime: start,
			EndTime:   end,
		})
	}

	if len(accepted) != count {
		return nil
	}
	return accepted
}

// daySpread places at most one meeting per calendar day. With the
// consecutive-days preference it looks for the first run of sequential
// dates that each offer a candidate; otherwise it takes the earliest
// candidate of each of the first distinct days.
func (s *Selector) daySpread(startTimes []time.Time, p SelectionParams, duration time.Duration) []entity.ScheduleMeeting {
	byDay := make(map[string][]time.Time)
	var days []string
	for _, t := range startTimes {
		day := t.UTC().Format("2006-01-02")
		if _, seen := byDay[day]; !seen {
			days = append(days, day)
		}
		byDay[day] = append(byDay[day], t)
	}
	sort.Strings(days)

	if len(days) < p.NumberOfMeetings {
		return nil
	}

	pick := days[:p.NumberOfMeetings]
	if p.ConsecutiveDays {
		if run := firstConsecutiveRun(days, p.NumberOfMeetings); run != nil {
			pick = run
		}
	}

	var meetings []entity.ScheduleMeeting
	for _, day := range pick {
		start := byDay[day][0]
		end := start.Add(duration)
		if overlapsAny(meetings, start, end) {
			return nil
		}
		meetings = append(meetings, entity.ScheduleMeeting{
			Title:     fmt.Sprintf("%s - Meeting %d", p.Title, len(meetings)+1),
			StartTime: start,
			EndTime:   end,
		})
	}
	return meetings
}

func (s *Selector) daySpreadReasoning(p SelectionParams) string {
	if p.ConsecutiveDays {
		return "One meeting per day, on consecutive days where the whole team is free."
	}
	return "Meetings spread across separate days to reduce fatigue."
}

// firstConsecutiveRun returns the first window of length n in the sorted
// date list whose dates are sequential calendar days, or nil.
func firstConsecutiveRun(days []string, n int) []string {
	for i := 0; i+n <= len(days); i++ {
		consecutive := true
		for j := 1; j < n; j++ {
			prev, _ := time.Parse("2006-01-02", days[i+j-1])
			curr, _ := time.Parse("2006-01-02", days[i+j])
			if !prev.AddDate(0, 0, 1).Equal(curr) {
				consecutive = false
				break
			}
		}
		if consecutive {
			return days[i : i+n]
		}
	}
	return nil
}

func overlapsAny(meetings []entity.ScheduleMeeting, start, end time.Time) bool {
	for _, m := range meetings {
		if start.Before(m.EndTime) && end.After(m.StartTime) {
			return true
		}
	}
	return false
}

// duplicatesEarlier reports whether an earlier pass already produced the
// same meeting start times; duplicate passes collapse into placeholders so
// voters only see materially different options.
func (s *Selector) duplicatesEarlier(earlier []struct {
	meetings  []entity.ScheduleMeeting
	reasoning string
}, meetings []entity.ScheduleMeeting) bool {
	for _, prev := range earlier {
		if sameStartTimes(prev.meetings, meetings) {
			return true
		}
	}
	return false
}

func sameStartTimes(a, b []entity.ScheduleMeeting) bool {
	if len(a) != len(b) || a == nil || b == nil {
		return false
	}
	for i := range a {
		if !a[i].StartTime.Equal(b[i].StartTime) {
			return false
		}
	}
	return true
}

// score rates a schedule 0-10 with a deterministic heuristic: a base of 5,
// +2 when the meetings land on consecutive calendar days and the series
// asked for that, +1 when every meeting sits on its own day, +1 when every
// meeting starts within 08:00-18:00 UTC, +1 when the candidate supply is
// ample (at least three candidates per meeting needed).
func (s *Selector) score(meetings []entity.ScheduleMeeting, startTimes []time.Time, p SelectionParams) float64 {
	score := 5.0

	days := make(map[string]bool)
	businessHours := true
	for _, m := range meetings {
		days[m.StartTime.UTC().Format("2006-01-02")] = true
		hour := m.StartTime.UTC().Hour()
		if hour < 8 || hour >= 18 {
			businessHours = false
		}
	}

	if len(days) == len(meetings) {
		score += 1
		if p.ConsecutiveDays && onConsecutiveDays(meetings) {
			score += 2
		}
	}
	if businessHours {
		score += 1
	}
	if len(startTimes) >= 3*p.NumberOfMeetings {
		score += 1
	}

	if score > 10 {
		score = 10
	}
	return score
}

func onConsecutiveDays(meetings []entity.ScheduleMeeting) bool {
	if len(meetings) < 2 {
		return true
	}
	for i := 1; i < len(meetings); i++ {
		prev := meetings[i-1].StartTime.UTC().Truncate(24 * time.Hour)
		curr := meetings[i].StartTime.UTC().Truncate(24 * time.Hour)
		if !prev.AddDate(0, 0, 1).Equal(curr) {
			return false
		}
	}
	return true
}
