// File: database/repository/availability/indexes.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the availability_slots collection.
func (r *mongoAvailabilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on slot ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query path: garage + day
		{
			Keys:    bson.D{{Key: "garage_id", Value: 1}, {Key: "day_of_week", Value: 1}, {Key: "start_minute", Value: 1}},
			Options: options.Index().SetName("garage_day_start_idx"),
		},
		// A full interval can only start at one minute per garage/day; this
		// backs the transactional overlap check with a hard constraint on
		// identical windows.
		{
			Keys:    bson.D{{Key: "garage_id", Value: 1}, {Key: "day_of_week", Value: 1}, {Key: "start_minute", Value: 1}, {Key: "end_minute", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("garage_day_interval_unique"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}
