// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"garagehub/models"
)

func (r *mongoAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appointment, nil
}

// findOneScoped fetches an appointment by id together with the acting
// party's id, so unauthorized access surfaces as ErrNotFound.
func (r *mongoAppointmentRepo) findOneScoped(ctx context.Context, filter bson.M) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointment models.Appointment
	err := r.coll.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if _, err := models.AppointmentStatusFromStorage(string(appointment.Status)); err != nil {
		return nil, fmt.Errorf("corrupt appointment %s: %w", appointment.ID, err)
	}
	return &appointment, nil
}

func (r *mongoAppointmentRepo) FindByIDForDriver(ctx context.Context, id, driverID string) (*models.Appointment, error) {
	return r.findOneScoped(ctx, bson.M{"id": id, "driver_id": driverID})
}

func (r *mongoAppointmentRepo) FindByIDForGarage(ctx context.Context, id, garageID string) (*models.Appointment, error) {
	return r.findOneScoped(ctx, bson.M{"id": id, "garage_id": garageID})
}
