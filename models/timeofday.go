package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DayOfWeek names a recurring weekday, stored in its canonical upper-case form.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// AllDays lists the seven days in calendar order, Monday first. Slot listings
// are ordered by this sequence, not alphabetically.
var AllDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayOrder maps each day to its position in AllDays.
var DayOrder = make(map[DayOfWeek]int, len(AllDays))

var weekdayToDay = map[time.Weekday]DayOfWeek{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

func init() {
	for i, day := range AllDays {
		DayOrder[day] = i
	}
	if len(DayOrder) != 7 || len(weekdayToDay) != 7 {
		panic("models: day-of-week tables must cover all seven days")
	}
}

var timeOfDayPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseTimeToMinute converts an "HH:MM" string into minutes from midnight.
// Minutes must be two digits; hours may omit the leading zero.
func ParseTimeToMinute(value string) (int, error) {
	match := timeOfDayPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return 0, fmt.Errorf("time must be in HH:MM format")
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	if hours > 23 {
		return 0, fmt.Errorf("time hours must be 0-23")
	}
	if minutes > 59 {
		return 0, fmt.Errorf("time minutes must be 0-59")
	}
	return hours*60 + minutes, nil
}

// FormatMinute renders minutes from midnight as a zero-padded "HH:MM" string.
func FormatMinute(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// ParseDayOfWeek validates a day name case-insensitively.
func ParseDayOfWeek(value string) (DayOfWeek, error) {
	day := DayOfWeek(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := DayOrder[day]; !ok {
		names := make([]string, len(AllDays))
		for i, d := range AllDays {
			names[i] = string(d)
		}
		return "", fmt.Errorf("dayOfWeek must be one of: %s", strings.Join(names, ", "))
	}
	return day, nil
}

// DayOfWeekAt returns the schedule day a timestamp falls on.
func DayOfWeekAt(t time.Time) DayOfWeek {
	return weekdayToDay[t.Weekday()]
}

// MinuteOfDayAt returns the minute offset from midnight for a timestamp.
func MinuteOfDayAt(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
