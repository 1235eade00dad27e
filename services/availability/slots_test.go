package availability

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	availabilityRepo "garagehub/database/repository/availability"
	"garagehub/models"
)

// fakeSlotRepo is an in-memory AvailabilityRepository enforcing the same
// overlap and ownership rules as the Mongo implementation.
type fakeSlotRepo struct {
	slots  map[string]models.AvailabilitySlot
	nextID int
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]models.AvailabilitySlot)}
}

func (r *fakeSlotRepo) overlapExists(candidate *models.AvailabilitySlot, excludeID string) bool {
	for _, s := range r.slots {
		if s.ID == excludeID || s.GarageID != candidate.GarageID || s.DayOfWeek != candidate.DayOfWeek {
			continue
		}
		if models.Overlaps(candidate.StartMinute, candidate.EndMinute, s.StartMinute, s.EndMinute) {
			return true
		}
	}
	return false
}

func (r *fakeSlotRepo) ListSlots(ctx context.Context, garageID string, day *models.DayOfWeek) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	for _, s := range r.slots {
		if s.GarageID != garageID {
			continue
		}
		if day != nil && s.DayOfWeek != *day {
			continue
		}
		out = append(out, s)
	}
	models.SortSlots(out)
	return out, nil
}

func (r *fakeSlotRepo) FindSlotByID(ctx context.Context, slotID, garageID string) (*models.AvailabilitySlot, error) {
	s, ok := r.slots[slotID]
	if !ok || s.GarageID != garageID {
		return nil, availabilityRepo.ErrNotFound
	}
	return &s, nil
}

func (r *fakeSlotRepo) CreateSlot(ctx context.Context, slot *models.AvailabilitySlot) (*models.AvailabilitySlot, error) {
	if r.overlapExists(slot, "") {
		return nil, availabilityRepo.ErrOverlap
	}
	r.nextID++
	created := *slot
	created.ID = fmt.Sprintf("slot-%d", r.nextID)
	r.slots[created.ID] = created
	return &created, nil
}

func (r *fakeSlotRepo) UpdateSlot(ctx context.Context, candidate *models.AvailabilitySlot) (*models.AvailabilitySlot, error) {
	current, ok := r.slots[candidate.ID]
	if !ok || current.GarageID != candidate.GarageID {
		return nil, availabilityRepo.ErrNotFound
	}
	if r.overlapExists(candidate, candidate.ID) {
		return nil, availabilityRepo.ErrOverlap
	}
	r.slots[candidate.ID] = *candidate
	updated := *candidate
	return &updated, nil
}

func (r *fakeSlotRepo) DeleteSlot(ctx context.Context, slotID, garageID string) error {
	s, ok := r.slots[slotID]
	if !ok || s.GarageID != garageID {
		return availabilityRepo.ErrNotFound
	}
	delete(r.slots, slotID)
	return nil
}

func (r *fakeSlotRepo) IsTimeWithinAnySlot(ctx context.Context, garageID string, day models.DayOfWeek, minuteOfDay int) (bool, error) {
	for _, s := range r.slots {
		if s.GarageID == garageID && s.DayOfWeek == day && s.StartMinute <= minuteOfDay && minuteOfDay < s.EndMinute {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSlotRepo) EnsureIndexes() error { return nil }

func newTestService() (*DefaultAvailabilityService, *fakeSlotRepo) {
	repo := newFakeSlotRepo()
	return &DefaultAvailabilityService{Repo: repo}, repo
}

func TestCreateSlot(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	garageID := gofakeit.UUID()

	slot, err := svc.CreateSlot(ctx, garageID, models.Monday, 540, 600)
	require.NoError(t, err)
	assert.NotEmpty(t, slot.ID)
	assert.Equal(t, garageID, slot.GarageID)
	assert.Equal(t, models.Monday, slot.DayOfWeek)
	assert.Equal(t, 540, slot.StartMinute)
	assert.Equal(t, 600, slot.EndMinute)
}

func TestCreateSlotRejectsOverlap(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	garageID := gofakeit.UUID()

	_, err := svc.CreateSlot(ctx, garageID, models.Monday, 540, 600)
	require.NoError(t, err)

	// [590, 650) intersects [540, 600).
	_, err = svc.CreateSlot(ctx, garageID, models.Monday, 590, 650)
	require.ErrorIs(t, err, ErrSlotOverlap)

	// [600, 660) only touches the boundary.
	_, err = svc.CreateSlot(ctx, garageID, models.Monday, 600, 660)
	require.NoError(t, err)

	// The same interval on another day is fine.
	_, err = svc.CreateSlot(ctx, garageID, models.Tuesday, 590, 650)
	require.NoError(t, err)

	// So is the same interval for another garage.
	_, err = svc.CreateSlot(ctx, gofakeit.UUID(), models.Monday, 590, 650)
	require.NoError(t, err)
}

func TestCreateSlotValidatesBounds(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	garageID := gofakeit.UUID()

	tests := []struct {
		name       string
		start, end int
	}{
		{name: "negative start", start: -1, end: 60},
		{name: "start past last minute", start: 1440, end: 1440},
		{name: "end past midnight", start: 540, end: 1441},
		{name: "zero end", start: 0, end: 0},
		{name: "inverted", start: 600, end: 540},
		{name: "empty interval", start: 600, end: 600},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateSlot(ctx, garageID, models.Monday, tc.start, tc.end)
			var validationErr ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}

	// The extremes themselves are allowed.
	_, err := svc.CreateSlot(ctx, garageID, models.Monday, 0, 1440)
	require.NoError(t, err)
}

func TestListSlotsOrdering(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	garageID := gofakeit.UUID()

	_, err := svc.CreateSlot(ctx, garageID, models.Friday, 480, 540)
	require.NoError(t, err)
	_, err = svc.CreateSlot(ctx, garageID, models.Monday, 600, 660)
	require.NoError(t, err)
	_, err = svc.CreateSlot(ctx, garageID, models.Monday, 480, 540)
	require.NoError(t, err)

	slots, err := svc.ListSlots(ctx, garageID, nil)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, models.Monday, slots[0].DayOfWeek)
	assert.Equal(t, 480, slots[0].StartMinute)
	assert.Equal(t, models.Monday, slots[1].DayOfWeek)
	assert.Equal(t, 600, slots[1].StartMinute)
	assert.Equal(t, models.Friday, slots[2].DayOfWeek)

	day := models.Monday
	monday, err := svc.ListSlots(ctx, garageID, &day)
	require.NoError(t, err)
	require.Len(t, monday, 2)
}

func TestUpdateSlotMergesPartialEdits(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	garageID := gofakeit.UUID()

	slot, err := svc.CreateSlot(ctx, garageID, models.Monday, 540, 600)
	require.NoError(t, err)

	newEnd := 630
	updated, err := svc.UpdateSlot(ctx, garageID, slot.ID, models.SlotUpdate{EndMinute: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, models.Monday, updated.DayOfWeek)
	assert.Equal(t, 540, updated.StartMinute)
	assert.Equal(t, 630, updated.EndMinute)
}

func TestUpdateSlotMovesOverlapCheckWithDay(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	garageID := gofakeit.UUID()

	_, err := svc.CreateSlot(ctx, garageID, models.Tuesday, 540, 600)
	require.NoError(t, err)
	slot, err := svc.CreateSlot(ctx, garageID, models.Monday, 540, 600)
	require.NoError(t, err)

	// Moving the Monday slot onto Tuesday collides with the Tuesday slot.
	tuesday := models.Tuesday
	_, err = svc.UpdateSlot(ctx, garageID, slot.ID, models.SlotUpdate{DayOfWeek: &tuesday})
	require.ErrorIs(t, err, ErrSlotOverlap)

	// Moving it to a free day is fine.
	wednesday := models.Wednesday
	updated, err := svc.UpdateSlot(ctx, garageID, slot.ID, models.SlotUpdate{DayOfWeek: &wednesday})
	require.NoError(t, err)
	assert.Equal(t, models.Wednesday, updated.DayOfWeek)
}

func TestUpdateSlotIgnoresItself(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	garageID := gofakeit.UUID()

	slot, err := svc.CreateSlot(ctx, garageID, models.Monday, 540, 600)
	require.NoError(t, err)

	// Widening a slot over its own current interval must not self-collide.
	newEnd := 660
	_, err = svc.UpdateSlot(ctx, garageID, slot.ID, models.SlotUpdate{EndMinute: &newEnd})
	require.NoError(t, err)
}

func TestUpdateSlotRequiresChanges(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	garageID := gofakeit.UUID()

	slot, err := svc.CreateSlot(ctx, garageID, models.Monday, 540, 600)
	require.NoError(t, err)

	_, err = svc.UpdateSlot(ctx, garageID, slot.ID, models.SlotUpdate{})
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestSlotOwnershipScoping(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	owner := gofakeit.UUID()
	other := gofakeit.UUID()

	slot, err := svc.CreateSlot(ctx, owner, models.Monday, 540, 600)
	require.NoError(t, err)

	_, err = svc.GetSlot(ctx, other, slot.ID)
	require.ErrorIs(t, err, ErrSlotNotFound)

	newEnd := 630
	_, err = svc.UpdateSlot(ctx, other, slot.ID, models.SlotUpdate{EndMinute: &newEnd})
	require.ErrorIs(t, err, ErrSlotNotFound)

	err = svc.DeleteSlot(ctx, other, slot.ID)
	require.ErrorIs(t, err, ErrSlotNotFound)

	// The owner still sees it untouched.
	got, err := svc.GetSlot(ctx, owner, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 600, got.EndMinute)
}

func TestDeleteSlot(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	garageID := gofakeit.UUID()

	slot, err := svc.CreateSlot(ctx, garageID, models.Monday, 540, 600)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSlot(ctx, garageID, slot.ID))
	err = svc.DeleteSlot(ctx, garageID, slot.ID)
	require.ErrorIs(t, err, ErrSlotNotFound)

	// The freed interval is bookable again.
	_, err = svc.CreateSlot(ctx, garageID, models.Monday, 540, 600)
	require.NoError(t, err)
}

func TestIsTimeWithinAnySlot(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	garageID := gofakeit.UUID()

	_, err := svc.CreateSlot(ctx, garageID, models.Monday, 540, 600)
	require.NoError(t, err)

	within, err := svc.IsTimeWithinAnySlot(ctx, garageID, models.Monday, 540)
	require.NoError(t, err)
	assert.True(t, within)

	within, err = svc.IsTimeWithinAnySlot(ctx, garageID, models.Monday, 599)
	require.NoError(t, err)
	assert.True(t, within)

	// The end minute is exclusive.
	within, err = svc.IsTimeWithinAnySlot(ctx, garageID, models.Monday, 600)
	require.NoError(t, err)
	assert.False(t, within)

	within, err = svc.IsTimeWithinAnySlot(ctx, garageID, models.Tuesday, 540)
	require.NoError(t, err)
	assert.False(t, within)
}
