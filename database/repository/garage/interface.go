// File: database/repository/garage/interface.go
package garageRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"garagehub/database"
	"garagehub/models"
)

// ErrNotFound is returned when no garage matches the given id.
var ErrNotFound = errors.New("garage not found")

// GarageRepository is the read-only view of garages consumed by the booking
// flow. Garage registration and vetting live with the garage-management side.
type GarageRepository interface {
	GetByID(ctx context.Context, garageID string) (*models.Garage, error)
}

type mongoGarageRepo struct {
	coll *mongo.Collection
}

// NewMongoGarageRepo constructs a new MongoDB GarageRepository.
func NewMongoGarageRepo() GarageRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoGarageRepo{
		coll: db.Collection("garages"),
	}
}
