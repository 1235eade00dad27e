// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"garagehub/database"
	"garagehub/models"
)

var (
	// ErrNotFound is returned when no appointment matches the owner-scoped
	// lookup. Ownership failures are indistinguishable from absence.
	ErrNotFound = errors.New("appointment not found")

	// ErrNoMatch is returned by conditional updates whose filter matched no
	// document at write time. The caller decides whether the appointment is
	// gone or the transition is no longer valid.
	ErrNoMatch = errors.New("no appointment matched the expected state")
)

// AppointmentRepository persists appointments. Every lookup and mutation is
// scoped to the acting driver or garage, and every status mutation is
// conditioned on the expected pre-state at write time so two concurrent
// callers cannot both succeed.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)

	// Driver side.
	FindByDriver(ctx context.Context, driverID string, status *models.AppointmentStatus) ([]models.Appointment, error)
	FindByIDForDriver(ctx context.Context, id, driverID string) (*models.Appointment, error)
	RescheduleForDriver(ctx context.Context, id, driverID string, expectedAt, newAt time.Time) (*models.Appointment, error)
	CancelForDriver(ctx context.Context, id, driverID string) (*models.Appointment, error)

	// Garage side.
	FindByGarage(ctx context.Context, garageID string, status *models.AppointmentStatus) ([]models.Appointment, error)
	FindByIDForGarage(ctx context.Context, id, garageID string) (*models.Appointment, error)
	UpdateStatusForGarage(ctx context.Context, id, garageID string, from []models.AppointmentStatus, to models.AppointmentStatus) (*models.Appointment, error)

	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
