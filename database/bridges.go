package database

import (
	"context"
	"fmt"

	"github.com/rampline-network/ramp-bridge-api/database/models"
	"github.com/rampline-network/ramp-bridge-api/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BatchCreateBridges inserts the rows produced from one observer batch,
// tolerating duplicate keys the same way as withdrawals.
func (db *Database) BatchCreateBridges(ctx context.Context, bridges []models.Bridge) error {
	if len(bridges) == 0 {
		return nil
	}

	documents := make([]interface{}, len(bridges))
	for i, bridge := range bridges {
		documents[i] = bridge
	}

	_, err := db.collection("bridges").InsertMany(ctx, documents, options.InsertMany().SetOrdered(false))
	if err != nil {
		if writeErr, ok := err.(mongo.BulkWriteException); ok {
			successfulInserts := len(bridges) - len(writeErr.WriteErrors)
			if successfulInserts > 0 {
				db.logger.Info("partially inserted bridges",
					"successful", successfulInserts,
					"failed", len(writeErr.WriteErrors))
			}
			allDuplicates := true
			for _, writeErr := range writeErr.WriteErrors {
				if writeErr.Code != 11000 {
					allDuplicates = false
					break
				}
			}
			if allDuplicates {
				return nil
			}
		}
		return fmt.Errorf("failed to insert bridges: %w", err)
	}

	return nil
}

func (db *Database) MarkBridgeProcessed(ctx context.Context, id string) error {
	filter := bson.D{{Key: "id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "processed", Value: true}}}}

	result, err := db.collection("bridges").UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark bridge processed: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("bridge %s: %w", id, types.ErrNotFound)
	}

	return nil
}

func (db *Database) ListBridges(ctx context.Context) ([]models.Bridge, error) {
	cursor, err := db.collection("bridges").Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list bridges: %w", err)
	}
	defer cursor.Close(ctx)

	bridges := []models.Bridge{}
	if err := cursor.All(ctx, &bridges); err != nil {
		return nil, fmt.Errorf("failed to decode bridges: %w", err)
	}

	return bridges, nil
}
