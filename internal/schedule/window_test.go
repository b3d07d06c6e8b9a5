package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/noah-isme/lectio-cli/pkg/errors"
)

func TestResolveNow(t *testing.T) {
	anchor := time.Date(2024, 6, 12, 11, 30, 15, 0, time.UTC)

	win := Resolve(SpanNow, anchor)

	assert.Equal(t, anchor, win.Start)
	assert.Equal(t, anchor.Add(time.Second), win.End)
	assert.False(t, win.Truncate)
}

func TestResolveDay(t *testing.T) {
	anchor := time.Date(2024, 6, 12, 11, 30, 15, 0, time.UTC)

	win := Resolve(SpanDay, anchor)

	day := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, day, win.Start)
	assert.Equal(t, day, win.End)
	assert.True(t, win.Truncate)
}

func TestResolveWeek(t *testing.T) {
	cases := []struct {
		name   string
		anchor time.Time
		monday time.Time
	}{
		{
			name:   "wednesday anchor",
			anchor: time.Date(2024, 6, 12, 15, 45, 0, 0, time.UTC),
			monday: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "monday anchor",
			anchor: time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC),
			monday: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "sunday anchor",
			anchor: time.Date(2024, 6, 16, 23, 59, 0, 0, time.UTC),
			monday: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			win := Resolve(SpanWeek, tc.anchor)

			assert.Equal(t, tc.monday, win.Start)
			assert.Equal(t, tc.monday.AddDate(0, 0, 6), win.End)
			assert.True(t, win.Truncate)
		})
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-06-12")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 12, parsed.Day())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, raw := range []string{"12-06-2024", "2024/06/12", "yesterday", ""} {
		_, err := ParseDate(raw)
		require.Error(t, err, raw)
		assert.Equal(t, apperrors.ErrInvalidDate.Code, apperrors.FromError(err).Code)
	}
}

func TestParseInstant(t *testing.T) {
	parsed, err := ParseInstant("2024-06-12-14-30")
	require.NoError(t, err)
	assert.Equal(t, 14, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())

	_, err = ParseInstant("2024-06-12 14:30")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrInvalidDate.Code, apperrors.FromError(err).Code)
}
