package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	assert.NoError(t, err)

	testCases := []struct {
		name     string
		now      time.Time
		expected time.Time
	}{
		{
			name:     "MidWeek",
			now:      time.Date(2025, 3, 19, 15, 30, 0, 0, time.UTC), // wednesday
			expected: time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "SundayMidnightStartsNewWeek",
			now:      time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), // sunday 00:00:00
			expected: time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "SundayEvening",
			now:      time.Date(2025, 3, 16, 22, 45, 12, 0, time.UTC),
			expected: time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "SaturdayLateNightBelongsToPreviousWeek",
			now:      time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC), // saturday
			expected: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "KeepsLocation",
			now:      time.Date(2025, 3, 19, 15, 30, 0, 0, berlin),
			expected: time.Date(2025, 3, 16, 0, 0, 0, 0, berlin),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeekStart(tc.now)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
			assert.Equal(t, time.Sunday, got.Weekday())
		})
	}
}

func TestWeekStart_Boundary(t *testing.T) {
	weekStart := WeekStart(time.Date(2025, 3, 19, 12, 0, 0, 0, time.UTC))

	sundayMidnight := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	saturdayNight := time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC)

	// date >= weekStart is the weekly stats condition
	assert.False(t, sundayMidnight.Before(weekStart))
	assert.True(t, saturdayNight.Before(weekStart))
}
