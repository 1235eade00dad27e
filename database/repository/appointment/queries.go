// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"garagehub/models"
)

func (r *mongoAppointmentRepo) findMany(ctx context.Context, filter bson.M, sort bson.D) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

// FindByDriver lists a driver's appointments, newest scheduled time first.
func (r *mongoAppointmentRepo) FindByDriver(ctx context.Context, driverID string, status *models.AppointmentStatus) ([]models.Appointment, error) {
	filter := bson.M{"driver_id": driverID}
	if status != nil {
		filter["status"] = status.Storage()
	}
	return r.findMany(ctx, filter, bson.D{{Key: "scheduled_at", Value: -1}})
}

// FindByGarage lists a garage's appointments, earliest scheduled time first.
func (r *mongoAppointmentRepo) FindByGarage(ctx context.Context, garageID string, status *models.AppointmentStatus) ([]models.Appointment, error) {
	filter := bson.M{"garage_id": garageID}
	if status != nil {
		filter["status"] = status.Storage()
	}
	return r.findMany(ctx, filter, bson.D{{Key: "scheduled_at", Value: 1}})
}
