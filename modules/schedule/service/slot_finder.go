package service

import (
	"sort"
	"time"
)

// SlotDurationMinutes is the tick width used to discretize availability
const SlotDurationMinutes = 30

// AvailabilityWindow is one user's contiguous availability interval in UTC.
type AvailabilityWindow struct {
	UserID string
	Start  time.Time
	End    time.Time
}

// SlotFinder quantizes availability windows into 30-minute ticks and finds
// contiguous runs covered by enough participants to host a meeting.
type SlotFinder struct {
	slotDuration time.Duration
}

// NewSlotFinder creates a slot finder on the standard 30-minute grid
func NewSlotFinder() *SlotFinder {
	return &SlotFinder{
		slotDuration: SlotDurationMinutes * time.Minute,
	}
}

// FindMeetingStartTimes returns every UTC instant at which a meeting of the
// given duration could start with all totalTeamMembers available, ascending.
// A member with no windows at all makes full coverage impossible; that
// gating is intentional and owned by the caller.
func (sf *SlotFinder) FindMeetingStartTimes(windows []AvailabilityWindow, totalTeamMembers int, durationMinutes int) []time.Time {
	return sf.findStartTimes(windows, durationMinutes, func(covering int) bool {
		return covering == totalTeamMembers
	})
}

// FindOverlapStartTimes is the threshold variant: a tick counts when at
// least requiredParticipants cover it. Used for overlap search where full
// coverage is not mandatory.
func (sf *SlotFinder) FindOverlapStartTimes(windows []AvailabilityWindow, durationMinutes int, requiredParticipants int) []time.Time {
	return sf.findStartTimes(windows, durationMinutes, func(covering int) bool {
		return covering >= requiredParticipants
	})
}

func (sf *SlotFinder) findStartTimes(windows []AvailabilityWindow, durationMinutes int, qualifies func(covering int) bool) []time.Time {
	if len(windows) == 0 || durationMinutes <= 0 {
		return nil
	}

	// 1. Quantize each window into ticks anchored at its own start;
	// the covering set is a set, so same-user overlaps never double count.
	coverage := make(map[int64]map[string]struct{})
	for _, w := range windows {
		for t := w.Start.UTC(); t.Before(w.End); t = t.Add(sf.slotDuration) {
			key := t.Unix()
			if coverage[key] == nil {
				coverage[key] = make(map[string]struct{})
			}
			coverage[key][w.UserID] = struct{}{}
		}
	}

	// 2. Keep ticks with qualifying coverage, sorted ascending
	covered := make([]int64, 0, len(coverage))
	for key, users := range coverage {
		if qualifies(len(users)) {
			covered = append(covered, key)
		}
	}
	sort.Slice(covered, func(i, j int) bool { return covered[i] < covered[j] })

	// 3. Slide a window of slotsNeeded ticks; it qualifies only when every
	// adjacent pair is exactly one tick apart - present but gapped runs
	// must not produce a block.
	slotsNeeded := (durationMinutes + SlotDurationMinutes - 1) / SlotDurationMinutes
	step := int64(sf.slotDuration / time.Second)

	var startTimes []time.Time
	for i := 0; i+slotsNeeded <= len(covered); i++ {
		contiguous := true
		for j := 0; j < slotsNeeded-1; j++ {
			if covered[i+j+1]-covered[i+j] != step {
				contiguous = false
				break
			}
		}
		if contiguous {
			startTimes = append(startTimes, time.Unix(covered[i], 0).UTC())
		}
	}

	return startTimes
}
