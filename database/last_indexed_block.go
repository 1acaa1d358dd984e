package database

import (
	"context"
	"fmt"

	"github.com/rampline-network/ramp-bridge-api/database/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateLastIndexedBlock stores the observer's watermark for a chain,
// creating the row on first write.
func (db *Database) UpdateLastIndexedBlock(ctx context.Context, chain string, blockNumber uint64) error {
	filter := bson.D{{Key: "chain", Value: chain}}
	update := bson.D{{
		Key: "$set",
		Value: bson.D{{
			Key: "block_number", Value: blockNumber,
		}},
	}}

	_, err := db.collection("last_indexed_block").UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to update last indexed block: %w", err)
	}

	return nil
}

func (db *Database) GetLastIndexedBlock(ctx context.Context, chain string) (uint64, error) {
	var result models.LastIndexedBlock
	err := db.collection("last_indexed_block").FindOne(ctx, bson.D{{Key: "chain", Value: chain}}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// No document found - this chain hasn't been indexed yet
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get last indexed block: %w", err)
	}

	return result.BlockNumber, nil
}
