// File: database/repository/appointment/transitions.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"garagehub/models"
)

// conditionalUpdate applies a single-document update whose filter pins both
// the owner and the expected pre-state, returning the post-update document.
// A filter that matches nothing yields ErrNoMatch; the write and the
// precondition check are one atomic operation.
func (r *mongoAppointmentRepo) conditionalUpdate(ctx context.Context, filter, set bson.M) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set["updated_at"] = time.Now().UTC()

	var updated models.Appointment
	err := r.coll.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return &updated, nil
}

// UpdateStatusForGarage moves an appointment owned by the garage from one of
// the expected statuses to the target status.
func (r *mongoAppointmentRepo) UpdateStatusForGarage(ctx context.Context, id, garageID string, from []models.AppointmentStatus, to models.AppointmentStatus) (*models.Appointment, error) {
	stored := make([]string, len(from))
	for i, s := range from {
		stored[i] = s.Storage()
	}
	filter := bson.M{
		"id":        id,
		"garage_id": garageID,
		"status":    bson.M{"$in": stored},
	}
	return r.conditionalUpdate(ctx, filter, bson.M{"status": to.Storage()})
}

// RescheduleForDriver moves a pending appointment to a new time. The filter
// also pins the currently scheduled time, so a concurrent reschedule or
// transition invalidates this write instead of silently racing it.
func (r *mongoAppointmentRepo) RescheduleForDriver(ctx context.Context, id, driverID string, expectedAt, newAt time.Time) (*models.Appointment, error) {
	filter := bson.M{
		"id":           id,
		"driver_id":    driverID,
		"status":       models.StatusPending.Storage(),
		"scheduled_at": expectedAt,
	}
	return r.conditionalUpdate(ctx, filter, bson.M{"scheduled_at": newAt.UTC()})
}

// CancelForDriver marks any not-yet-cancelled appointment owned by the
// driver as cancelled.
func (r *mongoAppointmentRepo) CancelForDriver(ctx context.Context, id, driverID string) (*models.Appointment, error) {
	filter := bson.M{
		"id":        id,
		"driver_id": driverID,
		"status":    bson.M{"$ne": models.StatusCancelled.Storage()},
	}
	return r.conditionalUpdate(ctx, filter, bson.M{"status": models.StatusCancelled.Storage()})
}
