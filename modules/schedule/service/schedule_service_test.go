package service

import (
	"testing"

	"team-scheduler/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateChoices(t *testing.T) {
	assert.Nil(t, validateChoices(1, 2, 3))
	assert.Nil(t, validateChoices(3, 1, 2))

	cases := []struct {
		name                 string
		first, second, third int
		code                 errors.ErrorCode
	}{
		{"zero choice", 0, 1, 2, errors.ErrInvalidInput},
		{"choice above range", 1, 2, 4, errors.ErrInvalidInput},
		{"negative choice", -1, 2, 3, errors.ErrInvalidInput},
		{"first equals second", 1, 1, 2, errors.ErrInvalidInput},
		{"first equals third", 2, 1, 2, errors.ErrInvalidInput},
		{"second equals third", 1, 3, 3, errors.ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := validateChoices(tc.first, tc.second, tc.third)
			require.NotNil(t, appErr)
			assert.Equal(t, tc.code, appErr.Code)
		})
	}
}
