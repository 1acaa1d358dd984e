package database

import (
	"context"
	"fmt"

	"github.com/rampline-network/ramp-bridge-api/database/models"
	"github.com/rampline-network/ramp-bridge-api/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (db *Database) CreateDeposit(ctx context.Context, deposit models.Deposit) error {
	_, err := db.collection("deposits").InsertOne(ctx, deposit)
	if err != nil {
		// Hits either the deposit_id index or the (bank_reference,
		// onramp_id) replay guard.
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("deposit %s/%s: %w", deposit.BankReference, deposit.OnrampID, types.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create deposit: %w", err)
	}

	return nil
}

// GetDepositByReference looks up a deposit by its webhook identity. Used to
// answer a replayed webhook with the originally recorded deposit.
func (db *Database) GetDepositByReference(ctx context.Context, bankReference, onrampID string) (models.Deposit, error) {
	filter := bson.D{
		{Key: "bank_reference", Value: bankReference},
		{Key: "onramp_id", Value: onrampID},
	}

	var deposit models.Deposit
	err := db.collection("deposits").FindOne(ctx, filter).Decode(&deposit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Deposit{}, fmt.Errorf("deposit %s/%s: %w", bankReference, onrampID, types.ErrNotFound)
		}
		return models.Deposit{}, fmt.Errorf("failed to get deposit: %w", err)
	}

	return deposit, nil
}

// UpdateDepositStatus records the settlement outcome on the deposit row.
// The row itself is never deleted, whatever the outcome.
func (db *Database) UpdateDepositStatus(ctx context.Context, depositID string, status types.OnrampStatus, settlementTx string) error {
	filter := bson.D{{Key: "deposit_id", Value: depositID}}
	update := bson.D{{
		Key: "$set",
		Value: bson.D{{
			Key:   "status",
			Value: string(status),
		}, {
			Key:   "settlement_tx",
			Value: settlementTx,
		}},
	}}

	result, err := db.collection("deposits").UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update deposit status: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("deposit_id %s: %w", depositID, types.ErrNotFound)
	}

	return nil
}

func (db *Database) ListDeposits(ctx context.Context) ([]models.Deposit, error) {
	cursor, err := db.collection("deposits").Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	defer cursor.Close(ctx)

	deposits := []models.Deposit{}
	if err := cursor.All(ctx, &deposits); err != nil {
		return nil, fmt.Errorf("failed to decode deposits: %w", err)
	}

	return deposits, nil
}

// ListUnsettledDeposits returns deposits whose lifecycle never reached
// Settled, for the startup recovery pass.
func (db *Database) ListUnsettledDeposits(ctx context.Context) ([]models.Deposit, error) {
	filter := bson.D{{Key: "status", Value: bson.D{{Key: "$ne", Value: string(types.Settled)}}}}

	cursor, err := db.collection("deposits").Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsettled deposits: %w", err)
	}
	defer cursor.Close(ctx)

	deposits := []models.Deposit{}
	if err := cursor.All(ctx, &deposits); err != nil {
		return nil, fmt.Errorf("failed to decode unsettled deposits: %w", err)
	}

	return deposits, nil
}
