// File: database/repository/garage/crud.go
package garageRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"garagehub/models"
)

func (r *mongoGarageRepo) GetByID(ctx context.Context, garageID string) (*models.Garage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var garage models.Garage
	err := r.coll.FindOne(ctx, bson.M{"id": garageID}).Decode(&garage)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch garage %s: %w", garageID, err)
	}
	return &garage, nil
}
