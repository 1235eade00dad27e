package models

import (
	"sort"
	"time"
)

// Slot minute bounds. A slot is the half-open interval
// [StartMinute, EndMinute) of minutes from midnight.
const (
	MinStartMinute = 0
	MaxStartMinute = 1439
	MinEndMinute   = 1
	MaxEndMinute   = 1440
)

// AvailabilitySlot is a recurring weekly window during which a garage accepts
// bookings. Slots for the same garage and day never overlap.
type AvailabilitySlot struct {
	ID          string    `bson:"id" json:"id"`
	GarageID    string    `bson:"garage_id" json:"garage_id"`
	DayOfWeek   DayOfWeek `bson:"day_of_week" json:"day_of_week"`
	StartMinute int       `bson:"start_minute" json:"start_minute"`
	EndMinute   int       `bson:"end_minute" json:"end_minute"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Overlaps reports whether the half-open minute intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching boundaries do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// SortSlots orders slots by day of week (Monday first), then by ascending
// start minute. Mongo stores the day as a string, so the calendar ordering is
// applied here rather than in the query.
func SortSlots(slots []AvailabilitySlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].DayOfWeek != slots[j].DayOfWeek {
			return DayOrder[slots[i].DayOfWeek] < DayOrder[slots[j].DayOfWeek]
		}
		return slots[i].StartMinute < slots[j].StartMinute
	})
}

// SlotUpdate carries a partial slot edit; nil fields keep the current value.
type SlotUpdate struct {
	DayOfWeek   *DayOfWeek
	StartMinute *int
	EndMinute   *int
}

// AvailabilitySlotResponse is the wire snapshot of one slot. Minute offsets
// are rendered both raw and as "HH:MM".
type AvailabilitySlotResponse struct {
	ID          string `json:"id"`
	GarageID    string `json:"garageId"`
	DayOfWeek   string `json:"dayOfWeek"`
	StartMinute int    `json:"startMinute"`
	EndMinute   int    `json:"endMinute"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// NewAvailabilitySlotResponse builds the response snapshot for one slot.
func NewAvailabilitySlotResponse(s AvailabilitySlot) AvailabilitySlotResponse {
	return AvailabilitySlotResponse{
		ID:          s.ID,
		GarageID:    s.GarageID,
		DayOfWeek:   string(s.DayOfWeek),
		StartMinute: s.StartMinute,
		EndMinute:   s.EndMinute,
		StartTime:   FormatMinute(s.StartMinute),
		EndTime:     FormatMinute(s.EndMinute),
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// NewAvailabilitySlotResponses builds response snapshots for a listing.
func NewAvailabilitySlotResponses(slots []AvailabilitySlot) []AvailabilitySlotResponse {
	out := make([]AvailabilitySlotResponse, len(slots))
	for i, s := range slots {
		out[i] = NewAvailabilitySlotResponse(s)
	}
	return out
}

// CreateSlotRequest is the garage-side slot creation payload. Start and end
// may be given either as raw minute offsets or as "HH:MM" strings.
type CreateSlotRequest struct {
	DayOfWeek   string `json:"dayOfWeek"`
	StartMinute *int   `json:"startMinute"`
	EndMinute   *int   `json:"endMinute"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// UpdateSlotRequest is the partial slot edit payload; absent fields keep the
// current values.
type UpdateSlotRequest struct {
	DayOfWeek   *string `json:"dayOfWeek"`
	StartMinute *int    `json:"startMinute"`
	EndMinute   *int    `json:"endMinute"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
}
