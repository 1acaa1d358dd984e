package database

import (
	"context"
	"fmt"

	"github.com/rampline-network/ramp-bridge-api/database/models"
	"github.com/rampline-network/ramp-bridge-api/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (db *Database) CreateOfframpRegistration(ctx context.Context, reg models.OfframpRegistration) error {
	_, err := db.collection("offramps").InsertOne(ctx, reg)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("offramp_id %s: %w", reg.OfframpID, types.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create offramp registration: %w", err)
	}

	return nil
}

func (db *Database) ListOfframpRegistrations(ctx context.Context) ([]models.OfframpRegistration, error) {
	cursor, err := db.collection("offramps").Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list offramp registrations: %w", err)
	}
	defer cursor.Close(ctx)

	registrations := []models.OfframpRegistration{}
	if err := cursor.All(ctx, &registrations); err != nil {
		return nil, fmt.Errorf("failed to decode offramp registrations: %w", err)
	}

	return registrations, nil
}
