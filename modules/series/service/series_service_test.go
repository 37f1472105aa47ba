package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate("2026-04-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = parseDate("2026-04-01T09:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 1, 7, 30, 0, 0, time.UTC), d)

	_, err = parseDate("01/04/2026")
	assert.Error(t, err)
}

func TestParseTeamEmails(t *testing.T) {
	raw := "alice@example.com\n\n  bob@example.com  \nalice@example.com\nadmin@example.com\n"

	emails := parseTeamEmails(raw, "admin@example.com")

	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, emails)
}

func TestParseTeamEmails_Empty(t *testing.T) {
	assert.Empty(t, parseTeamEmails("", "admin@example.com"))
	assert.Empty(t, parseTeamEmails("admin@example.com", "admin@example.com"))
}

func TestEmailLocalPart(t *testing.T) {
	assert.Equal(t, "carol", emailLocalPart("carol@example.com"))
	assert.Equal(t, "no-at-sign", emailLocalPart("no-at-sign"))
}
