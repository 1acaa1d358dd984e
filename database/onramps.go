package database

import (
	"context"
	"fmt"

	"github.com/rampline-network/ramp-bridge-api/database/models"
	"github.com/rampline-network/ramp-bridge-api/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (db *Database) CreateOnrampRequest(ctx context.Context, req models.OnrampRequest) error {
	_, err := db.collection("onramp_requests").InsertOne(ctx, req)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("onramp_id %s: %w", req.OnrampID, types.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create onramp request: %w", err)
	}

	return nil
}

func (db *Database) GetOnrampRequest(ctx context.Context, onrampID string) (models.OnrampRequest, error) {
	var req models.OnrampRequest
	err := db.collection("onramp_requests").FindOne(ctx, bson.D{{Key: "onramp_id", Value: onrampID}}).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.OnrampRequest{}, fmt.Errorf("onramp_id %s: %w", onrampID, types.ErrNotFound)
		}
		return models.OnrampRequest{}, fmt.Errorf("failed to get onramp request: %w", err)
	}

	return req, nil
}

func (db *Database) ListOnrampRequests(ctx context.Context) ([]models.OnrampRequest, error) {
	cursor, err := db.collection("onramp_requests").Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list onramp requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []models.OnrampRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode onramp requests: %w", err)
	}

	return requests, nil
}
