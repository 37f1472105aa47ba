package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow_UTC(t *testing.T) {
	start, end, err := parseWindow("2026-03-02", "09:00-12:30", time.UTC)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 2, 12, 30, 0, 0, time.UTC), end)
}

func TestParseWindow_ConvertsMemberTimezoneToUTC(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 09:00 JST is midnight UTC.
	start, end, err := parseWindow("2026-03-02", "09:00-11:00", tokyo)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 2, 2, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.UTC, start.Location())
}

func TestParseWindow_TrimsSpaces(t *testing.T) {
	start, end, err := parseWindow("2026-03-02", "09:00 - 10:00", time.UTC)

	require.NoError(t, err)
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, 10, end.Hour())
}

func TestParseWindow_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		day    string
		window string
	}{
		{"bad day", "03/02/2026", "09:00-10:00"},
		{"missing dash", "2026-03-02", "09:00 10:00"},
		{"bad time", "2026-03-02", "9am-10am"},
		{"end before start", "2026-03-02", "12:00-09:00"},
		{"zero length", "2026-03-02", "09:00-09:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parseWindow(tc.day, tc.window, time.UTC)
			assert.Error(t, err)
		})
	}
}
