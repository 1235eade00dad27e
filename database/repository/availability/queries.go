// File: database/repository/availability/queries.go
package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"garagehub/models"
)

// ListSlots returns a garage's slots, optionally filtered by day, ordered by
// day of week (Monday first) then ascending start minute.
func (r *mongoAvailabilityRepo) ListSlots(ctx context.Context, garageID string, day *models.DayOfWeek) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"garage_id": garageID}
	if day != nil {
		filter["day_of_week"] = *day
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}

	// The day is stored as a string, so calendar order is applied here.
	models.SortSlots(slots)
	return slots, nil
}

func (r *mongoAvailabilityRepo) FindSlotByID(ctx context.Context, slotID, garageID string) (*models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.AvailabilitySlot
	err := r.coll.FindOne(ctx, bson.M{"id": slotID, "garage_id": garageID}).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch slot %s: %w", slotID, err)
	}
	return &slot, nil
}

// IsTimeWithinAnySlot reports whether the minute falls inside any published
// window for the garage on that day.
func (r *mongoAvailabilityRepo) IsTimeWithinAnySlot(ctx context.Context, garageID string, day models.DayOfWeek, minuteOfDay int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"garage_id":    garageID,
		"day_of_week":  day,
		"start_minute": bson.M{"$lte": minuteOfDay},
		"end_minute":   bson.M{"$gt": minuteOfDay},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to count matching slots: %w", err)
	}
	return count > 0, nil
}
