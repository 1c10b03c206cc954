package validator

import (
	"testing"
	"time"

	domainerrors "shaka/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name" validate:"required"`
	Level *int    `json:"level" validate:"omitempty,min=1,max=5"`
	When  *string `json:"when" validate:"omitempty,isodate"`
	Link  *string `json:"link" validate:"omitempty,url"`
}

func TestRequestValidator_Valid(t *testing.T) {
	level := 3
	when := "2025-11-01"
	link := "https://magicseaweed.com/x"

	err := New().Validate(&sample{Name: "Pipeline", Level: &level, When: &when, Link: &link})
	assert.NoError(t, err)
}

func TestRequestValidator_CollectsFieldViolations(t *testing.T) {
	level := 6
	when := "next week"
	link := "not a link"

	err := New().Validate(&sample{Level: &level, When: &when, Link: &link})
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []domainerrors.FieldViolation{
		{Field: "name", Message: "is required"},
		{Field: "level", Message: "must not be greater than 5"},
		{Field: "when", Message: "must be a valid ISO 8601 date string"},
		{Field: "link", Message: "must be a URL address"},
	}, verr.Fields)
}

func TestRequestValidator_ZeroLevelRejected(t *testing.T) {
	level := 0

	err := New().Validate(&sample{Name: "x", Level: &level})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "level", verr.Fields[0].Field)
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{in: "2025-11-01", want: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "2025-07-01T10:00:00.000Z", want: time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC), ok: true},
		{in: "2025-07-01T10:00:00", want: time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC), ok: true},
		{in: "2025-13-01"},
		{in: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseISODate(tt.in)
			if !tt.ok {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}
