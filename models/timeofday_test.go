package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeToMinute(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:30", want: 570},
		{name: "single digit hour", input: "9:30", want: 570},
		{name: "last minute of day", input: "23:59", want: 1439},
		{name: "whitespace tolerated", input: " 12:00 ", want: 720},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "single digit minute", input: "9:5", wantErr: true},
		{name: "missing colon", input: "0930", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimeToMinute(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatMinute(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinute(0))
	assert.Equal(t, "09:30", FormatMinute(570))
	assert.Equal(t, "23:59", FormatMinute(1439))
	assert.Equal(t, "24:00", FormatMinute(1440))
}

func TestFormatMinuteRoundTrips(t *testing.T) {
	for minute := 0; minute < 1440; minute += 7 {
		got, err := ParseTimeToMinute(FormatMinute(minute))
		require.NoError(t, err)
		assert.Equal(t, minute, got)
	}
}

func TestParseDayOfWeek(t *testing.T) {
	day, err := ParseDayOfWeek("monday")
	require.NoError(t, err)
	assert.Equal(t, Monday, day)

	day, err = ParseDayOfWeek(" Sunday ")
	require.NoError(t, err)
	assert.Equal(t, Sunday, day)

	_, err = ParseDayOfWeek("funday")
	require.Error(t, err)
	_, err = ParseDayOfWeek("")
	require.Error(t, err)
}

func TestDayOrderIsCalendarOrder(t *testing.T) {
	require.Len(t, AllDays, 7)
	for i := 1; i < len(AllDays); i++ {
		assert.Less(t, DayOrder[AllDays[i-1]], DayOrder[AllDays[i]])
	}
	assert.Equal(t, 0, DayOrder[Monday])
	assert.Equal(t, 6, DayOrder[Sunday])
}

func TestDayOfWeekAt(t *testing.T) {
	// 2026-09-01 is a Tuesday.
	ts := time.Date(2026, 9, 1, 10, 15, 0, 0, time.UTC)
	assert.Equal(t, Tuesday, DayOfWeekAt(ts))
	assert.Equal(t, Sunday, DayOfWeekAt(ts.AddDate(0, 0, 5)))
	assert.Equal(t, 10*60+15, MinuteOfDayAt(ts))
}
