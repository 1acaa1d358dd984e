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

// BatchCreateWithdrawals inserts the rows produced from one observer batch.
// Duplicate keys are tolerated: re-scanning a block range after a restart
// redelivers the same events with the same derived ids.
func (db *Database) BatchCreateWithdrawals(ctx context.Context, withdrawals []models.Withdrawal) error {
	if len(withdrawals) == 0 {
		return nil
	}

	documents := make([]interface{}, len(withdrawals))
	for i, withdrawal := range withdrawals {
		documents[i] = withdrawal
	}

	_, err := db.collection("withdrawals").InsertMany(ctx, documents, options.InsertMany().SetOrdered(false))
	if err != nil {
		if writeErr, ok := err.(mongo.BulkWriteException); ok {
			successfulInserts := len(withdrawals) - len(writeErr.WriteErrors)
			if successfulInserts > 0 {
				db.logger.Info("partially inserted withdrawals",
					"successful", successfulInserts,
					"failed", len(writeErr.WriteErrors))
			}
			allDuplicates := true
			for _, writeErr := range writeErr.WriteErrors {
				if writeErr.Code != 11000 { // 11000 is MongoDB's duplicate key error code
					allDuplicates = false
					break
				}
			}
			if allDuplicates {
				return nil
			}
		}
		return fmt.Errorf("failed to insert withdrawals: %w", err)
	}

	return nil
}

// MarkWithdrawalProcessed flips the processed flag. Calling it again for an
// already-processed row is a no-op, not an error.
func (db *Database) MarkWithdrawalProcessed(ctx context.Context, id string) error {
	filter := bson.D{{Key: "id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "processed", Value: true}}}}

	result, err := db.collection("withdrawals").UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark withdrawal processed: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("withdrawal %s: %w", id, types.ErrNotFound)
	}

	return nil
}

func (db *Database) ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	cursor, err := db.collection("withdrawals").Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	defer cursor.Close(ctx)

	withdrawals := []models.Withdrawal{}
	if err := cursor.All(ctx, &withdrawals); err != nil {
		return nil, fmt.Errorf("failed to decode withdrawals: %w", err)
	}

	return withdrawals, nil
}
