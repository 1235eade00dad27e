package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{name: "disjoint", aStart: 540, aEnd: 600, bStart: 660, bEnd: 720, want: false},
		{name: "touching boundaries", aStart: 540, aEnd: 600, bStart: 600, bEnd: 660, want: false},
		{name: "partial overlap", aStart: 540, aEnd: 600, bStart: 590, bEnd: 650, want: true},
		{name: "containment", aStart: 540, aEnd: 720, bStart: 560, bEnd: 580, want: true},
		{name: "identical", aStart: 540, aEnd: 600, bStart: 540, bEnd: 600, want: true},
		{name: "one minute shared", aStart: 540, aEnd: 600, bStart: 599, bEnd: 660, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestOverlapsSelf(t *testing.T) {
	for start := 0; start < 1440; start += 97 {
		end := start + 30
		assert.True(t, Overlaps(start, end, start, end))
	}
}

func TestSortSlots(t *testing.T) {
	slots := []AvailabilitySlot{
		{ID: "c", DayOfWeek: Wednesday, StartMinute: 480, EndMinute: 720},
		{ID: "a", DayOfWeek: Monday, StartMinute: 600, EndMinute: 660},
		{ID: "d", DayOfWeek: Sunday, StartMinute: 0, EndMinute: 60},
		{ID: "b", DayOfWeek: Monday, StartMinute: 480, EndMinute: 540},
	}

	SortSlots(slots)

	ids := make([]string, len(slots))
	for i, s := range slots {
		ids[i] = s.ID
	}
	require.Equal(t, []string{"b", "a", "c", "d"}, ids)
}

func TestSortSlotsNotAlphabetical(t *testing.T) {
	// Alphabetically FRIDAY sorts before TUESDAY; calendar order must win.
	slots := []AvailabilitySlot{
		{ID: "fri", DayOfWeek: Friday, StartMinute: 480, EndMinute: 540},
		{ID: "tue", DayOfWeek: Tuesday, StartMinute: 480, EndMinute: 540},
	}
	SortSlots(slots)
	assert.Equal(t, "tue", slots[0].ID)
	assert.Equal(t, "fri", slots[1].ID)
}
