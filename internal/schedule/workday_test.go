package schedule

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingHoursValidate(t *testing.T) {
	tests := []struct {
		name    string
		hours   WorkingHours
		wantErr error
	}{
		{"standard day", WorkingHours{9, 17}, nil},
		{"full day", WorkingHours{0, 23}, nil},
		{"start after end", WorkingHours{17, 9}, ErrInvalidWorkingHours},
		{"start equals end", WorkingHours{9, 9}, ErrInvalidWorkingHours},
		{"negative start", WorkingHours{-1, 17}, ErrInvalidWorkingHours},
		{"end past 23", WorkingHours{9, 24}, ErrInvalidWorkingHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hours.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestWorkingWindowFutureDate(t *testing.T) {
	date := civil.Date{Year: 2026, Month: time.September, Day: 2}
	now := utc(1, 12, 0)

	window, ok := workingWindow(date, WorkingHours{9, 17}, time.UTC, now, 30*time.Minute)

	require.True(t, ok)
	assert.Equal(t, win(2, 9, 0, 17, 0), window)
}

func TestWorkingWindowTodayBeforeStart(t *testing.T) {
	date := civil.Date{Year: 2026, Month: time.September, Day: 1}
	now := utc(1, 7, 30)

	window, ok := workingWindow(date, WorkingHours{9, 17}, time.UTC, now, 30*time.Minute)

	require.True(t, ok)
	assert.Equal(t, win(1, 9, 0, 17, 0), window)
}

func TestWorkingWindowTodayMidMorning(t *testing.T) {
	// now between slot boundaries: the start advances to the next
	// boundary on the grid anchored at the nominal start hour.
	date := civil.Date{Year: 2026, Month: time.September, Day: 1}
	now := utc(1, 9, 45)

	window, ok := workingWindow(date, WorkingHours{9, 17}, time.UTC, now, 30*time.Minute)

	require.True(t, ok)
	assert.Equal(t, win(1, 10, 0, 17, 0), window)
}

func TestWorkingWindowTodayOnBoundary(t *testing.T) {
	date := civil.Date{Year: 2026, Month: time.September, Day: 1}
	now := utc(1, 10, 30)

	window, ok := workingWindow(date, WorkingHours{9, 17}, time.UTC, now, 30*time.Minute)

	require.True(t, ok)
	assert.Equal(t, Window{Start: utc(1, 10, 30), End: utc(1, 17, 0)}, window)
}

func TestWorkingWindowDayElapsed(t *testing.T) {
	date := civil.Date{Year: 2026, Month: time.September, Day: 1}

	_, ok := workingWindow(date, WorkingHours{9, 17}, time.UTC, utc(1, 17, 0), 30*time.Minute)
	assert.False(t, ok, "now at end hour means the day is gone")

	_, ok = workingWindow(date, WorkingHours{9, 17}, time.UTC, utc(1, 21, 0), 30*time.Minute)
	assert.False(t, ok)
}

func TestWorkingWindowAlmostElapsed(t *testing.T) {
	// 10 minutes left: the day is live but the rounded start hits the
	// end, leaving an empty window and therefore zero slots.
	date := civil.Date{Year: 2026, Month: time.September, Day: 1}
	now := utc(1, 16, 50)

	window, ok := workingWindow(date, WorkingHours{9, 17}, time.UTC, now, 30*time.Minute)

	require.True(t, ok)
	assert.True(t, window.IsEmpty())
}

func TestWorkingWindowHonorsTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	date := civil.Date{Year: 2026, Month: time.September, Day: 1}
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	window, ok := workingWindow(date, WorkingHours{9, 17}, loc, now, 30*time.Minute)

	require.True(t, ok)
	// 09:00 EDT is 13:00 UTC.
	assert.True(t, window.Start.Equal(utc(1, 13, 0)))
	assert.True(t, window.End.Equal(utc(1, 21, 0)))
}

func TestWorkingWindowDSTSpringForward(t *testing.T) {
	// 2026-03-08 in New York skips 02:00-03:00; the 01:00-04:00 wall
	// clock window is only two absolute hours.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	date := civil.Date{Year: 2026, Month: time.March, Day: 8}
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	window, ok := workingWindow(date, WorkingHours{1, 4}, loc, now, 30*time.Minute)

	require.True(t, ok)
	assert.Equal(t, 2*time.Hour, window.Duration())
	assert.Len(t, slotsInWindow(window, nil, 30*time.Minute), 4)
}
