package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func window(t *testing.T, user string, fromHour, fromMin, toHour, toMin int) AvailabilityWindow {
	t.Helper()
	return AvailabilityWindow{
		UserID: user,
		Start:  at(t, fromHour, fromMin),
		End:    at(t, toHour, toMin),
	}
}

func TestFindMeetingStartTimes_FullCoverage(t *testing.T) {
	sf := NewSlotFinder()

	windows := []AvailabilityWindow{
		window(t, "alice", 9, 0, 11, 0),
		window(t, "bob", 9, 0, 11, 0),
	}

	starts := sf.FindMeetingStartTimes(windows, 2, 60)

	require.Len(t, starts, 3)
	assert.Equal(t, at(t, 9, 0), starts[0])
	assert.Equal(t, at(t, 9, 30), starts[1])
	assert.Equal(t, at(t, 10, 0), starts[2])
}

func TestFindMeetingStartTimes_RemovingOneUserRemovesTicks(t *testing.T) {
	sf := NewSlotFinder()

	// Bob leaves at 10:00, so ticks past 09:30 lose full coverage.
	windows := []AvailabilityWindow{
		window(t, "alice", 9, 0, 11, 0),
		window(t, "bob", 9, 0, 10, 0),
	}

	starts := sf.FindMeetingStartTimes(windows, 2, 60)

	require.Len(t, starts, 1)
	assert.Equal(t, at(t, 9, 0), starts[0])
}

func TestFindMeetingStartTimes_GapBreaksContiguity(t *testing.T) {
	sf := NewSlotFinder()

	// Both users free 09:00-10:00 and 10:30-11:30 with a shared 10:00 gap.
	windows := []AvailabilityWindow{
		window(t, "alice", 9, 0, 10, 0),
		window(t, "alice", 10, 30, 11, 30),
		window(t, "bob", 9, 0, 10, 0),
		window(t, "bob", 10, 30, 11, 30),
	}

	starts := sf.FindMeetingStartTimes(windows, 2, 60)
	require.Len(t, starts, 2)
	assert.Equal(t, at(t, 9, 0), starts[0])
	assert.Equal(t, at(t, 10, 30), starts[1])

	// 90 minutes needs three consecutive ticks and no run survives the gap.
	assert.Empty(t, sf.FindMeetingStartTimes(windows, 2, 90))
}

func TestFindMeetingStartTimes_SameUserOverlapDoesNotDoubleCount(t *testing.T) {
	sf := NewSlotFinder()

	// Alice submits overlapping windows; she still counts as one participant.
	windows := []AvailabilityWindow{
		window(t, "alice", 9, 0, 11, 0),
		window(t, "alice", 9, 30, 10, 30),
	}

	assert.Empty(t, sf.FindMeetingStartTimes(windows, 2, 30))
}

func TestFindMeetingStartTimes_MisalignedWindowsShareNoTicks(t *testing.T) {
	sf := NewSlotFinder()

	// Ticks are anchored at each window's own start, so a 09:15 window
	// never lands on the same grid as a 09:00 one.
	windows := []AvailabilityWindow{
		window(t, "alice", 9, 0, 11, 0),
		window(t, "bob", 9, 15, 11, 15),
	}

	assert.Empty(t, sf.FindMeetingStartTimes(windows, 2, 30))
}

func TestFindMeetingStartTimes_EmptyInput(t *testing.T) {
	sf := NewSlotFinder()

	assert.Empty(t, sf.FindMeetingStartTimes(nil, 3, 60))
	assert.Empty(t, sf.FindMeetingStartTimes([]AvailabilityWindow{}, 3, 60))
}

func TestFindMeetingStartTimes_Deterministic(t *testing.T) {
	sf := NewSlotFinder()

	windows := []AvailabilityWindow{
		window(t, "alice", 8, 0, 12, 0),
		window(t, "bob", 9, 0, 13, 0),
		window(t, "carol", 8, 30, 11, 30),
	}

	first := sf.FindMeetingStartTimes(windows, 3, 90)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, sf.FindMeetingStartTimes(windows, 3, 90))
	}
}

func TestFindOverlapStartTimes_Threshold(t *testing.T) {
	sf := NewSlotFinder()

	windows := []AvailabilityWindow{
		window(t, "alice", 9, 0, 11, 0),
		window(t, "bob", 9, 0, 10, 0),
		window(t, "carol", 9, 30, 11, 0),
	}

	// 09:30 is the only tick covered by all three.
	all := sf.FindOverlapStartTimes(windows, 30, 3)
	require.Len(t, all, 1)
	assert.Equal(t, at(t, 9, 30), all[0])

	// At least two participants: 09:00 through 10:30.
	two := sf.FindOverlapStartTimes(windows, 30, 2)
	require.Len(t, two, 4)
	assert.Equal(t, at(t, 9, 0), two[0])
	assert.Equal(t, at(t, 10, 30), two[3])
}

// Three users, 90-minute meetings: the shared availability is only one hour
// (10:00-11:00), which is two ticks, one short of the three a meeting needs.
func TestFindMeetingStartTimes_IntersectionTooShort(t *testing.T) {
	sf := NewSlotFinder()

	windows := []AvailabilityWindow{
		window(t, "a", 9, 0, 12, 0),
		window(t, "b", 9, 0, 11, 0),
		window(t, "c", 10, 0, 13, 0),
	}

	// The fully covered ticks exist
	ticks := sf.FindMeetingStartTimes(windows, 3, 30)
	require.Len(t, ticks, 2)
	assert.Equal(t, at(t, 10, 0), ticks[0])
	assert.Equal(t, at(t, 10, 30), ticks[1])

	// but cannot host a 90-minute meeting.
	assert.Empty(t, sf.FindMeetingStartTimes(windows, 3, 90))
}
