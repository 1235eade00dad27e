// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"garagehub/models"
)

// overlapExists reports whether any slot for the garage/day, other than
// excludeID, intersects the candidate window. Runs inside the caller's
// session context when invoked from a transaction.
func (r *mongoAvailabilityRepo) overlapExists(ctx context.Context, garageID string, day models.DayOfWeek, startMinute, endMinute int, excludeID string) (bool, error) {
	filter := bson.M{
		"garage_id":   garageID,
		"day_of_week": day,
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to fetch slots for overlap check: %w", err)
	}
	defer cursor.Close(ctx)

	var existing []models.AvailabilitySlot
	if err := cursor.All(ctx, &existing); err != nil {
		return false, fmt.Errorf("failed to decode slots for overlap check: %w", err)
	}
	for _, s := range existing {
		if models.Overlaps(startMinute, endMinute, s.StartMinute, s.EndMinute) {
			return true, nil
		}
	}
	return false, nil
}

// withTransaction runs fn inside a Mongo session transaction so the
// read-check-write sequence commits or aborts as one unit.
func (r *mongoAvailabilityRepo) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// CreateSlot inserts a new slot unless its window intersects an existing
// slot for the same garage and day.
func (r *mongoAvailabilityRepo) CreateSlot(ctx context.Context, slot *models.AvailabilitySlot) (*models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		conflict, err := r.overlapExists(sc, slot.GarageID, slot.DayOfWeek, slot.StartMinute, slot.EndMinute, "")
		if err != nil {
			return err
		}
		if conflict {
			return ErrOverlap
		}
		if _, err := r.coll.InsertOne(sc, slot); err != nil {
			return fmt.Errorf("failed to create slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slot, nil
}

// UpdateSlot persists a fully merged candidate window, re-checking the
// overlap invariant against all other slots on the candidate's day.
func (r *mongoAvailabilityRepo) UpdateSlot(ctx context.Context, candidate *models.AvailabilitySlot) (*models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	candidate.UpdatedAt = time.Now().UTC()

	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		conflict, err := r.overlapExists(sc, candidate.GarageID, candidate.DayOfWeek, candidate.StartMinute, candidate.EndMinute, candidate.ID)
		if err != nil {
			return err
		}
		if conflict {
			return ErrOverlap
		}

		filter := bson.M{"id": candidate.ID, "garage_id": candidate.GarageID}
		update := bson.M{"$set": bson.M{
			"day_of_week":  candidate.DayOfWeek,
			"start_minute": candidate.StartMinute,
			"end_minute":   candidate.EndMinute,
			"updated_at":   candidate.UpdatedAt,
		}}
		res, err := r.coll.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("failed to update slot %s: %w", candidate.ID, err)
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

// DeleteSlot removes a slot owned by the garage. Removal is unconditional
// once ownership is established.
func (r *mongoAvailabilityRepo) DeleteSlot(ctx context.Context, slotID, garageID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": slotID, "garage_id": garageID})
	if err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", slotID, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
