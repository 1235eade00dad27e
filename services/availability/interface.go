// File: services/availability/interface.go
package availability

import (
	"context"

	"github.com/go-redis/redis/v8"

	availabilityRepo "garagehub/database/repository/availability"
	"garagehub/models"
)

// AvailabilityService maintains a garage's recurring weekly windows and
// answers whether a given instant falls inside one.
type AvailabilityService interface {
	ListSlots(ctx context.Context, garageID string, day *models.DayOfWeek) ([]models.AvailabilitySlot, error)
	GetSlot(ctx context.Context, garageID, slotID string) (*models.AvailabilitySlot, error)
	CreateSlot(ctx context.Context, garageID string, day models.DayOfWeek, startMinute, endMinute int) (*models.AvailabilitySlot, error)
	UpdateSlot(ctx context.Context, garageID, slotID string, update models.SlotUpdate) (*models.AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, garageID, slotID string) error
	IsTimeWithinAnySlot(ctx context.Context, garageID string, day models.DayOfWeek, minuteOfDay int) (bool, error)
}

// DefaultAvailabilityService is the canonical AvailabilityService. Listings
// are cached per garage and day when a cache client is configured.
type DefaultAvailabilityService struct {
	Repo  availabilityRepo.AvailabilityRepository
	Cache *redis.Client
}
