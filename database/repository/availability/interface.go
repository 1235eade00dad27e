// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"garagehub/database"
	"garagehub/models"
)

var (
	// ErrNotFound is returned when no slot matches the owner-scoped lookup.
	ErrNotFound = errors.New("availability slot not found")

	// ErrOverlap is returned when a candidate window intersects an existing
	// slot for the same garage and day.
	ErrOverlap = errors.New("time slot overlaps with an existing slot")
)

// AvailabilityRepository persists per-garage recurring weekly windows. The
// overlap invariant for a (garage, day) pair is enforced inside a session
// transaction, so two concurrent writers cannot both pass the check against
// a stale read.
type AvailabilityRepository interface {
	ListSlots(ctx context.Context, garageID string, day *models.DayOfWeek) ([]models.AvailabilitySlot, error)
	FindSlotByID(ctx context.Context, slotID, garageID string) (*models.AvailabilitySlot, error)
	CreateSlot(ctx context.Context, slot *models.AvailabilitySlot) (*models.AvailabilitySlot, error)
	UpdateSlot(ctx context.Context, candidate *models.AvailabilitySlot) (*models.AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, slotID, garageID string) error
	IsTimeWithinAnySlot(ctx context.Context, garageID string, day models.DayOfWeek, minuteOfDay int) (bool, error)

	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability_slots"),
	}
}
