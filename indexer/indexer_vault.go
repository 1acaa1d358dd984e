package indexer

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	RampVaultContract "github.com/rampline-network/ramp-bridge-api/contracts/rampvault"
	"github.com/rampline-network/ramp-bridge-api/database/models"
	"github.com/rampline-network/ramp-bridge-api/metrics"
)

func (i *Indexer) indexVault(ctx context.Context) error {
	minBatchSize := uint64(10)
	maxBatchSize := uint64(2000)
	start := i.startBlock

	// Resume from the persisted watermark so a restart never silently
	// drops events.
	lastIndexedBlock, err := i.store.GetLastIndexedBlock(ctx, "vault")
	if err == nil && lastIndexedBlock > 0 {
		start = lastIndexedBlock + 1
	}

	i.logger.Info("starting vault indexer",
		"startBlock", start,
		"confirmations", i.confirmations)

	for {
		select {
		case <-ctx.Done():
			i.logger.Info("shutting down vault indexer")
			return nil
		default:
			lastBlock, err := i.vault.BlockNumber()
			if err != nil {
				return fmt.Errorf("failed to get last block: %w", err)
			}

			// Trail the head: blocks shallower than the confirmation depth
			// are provisional under reorgs and are not read yet.
			if lastBlock < i.confirmations {
				time.Sleep(time.Second * 10)
				continue
			}
			safeHead := lastBlock - i.confirmations

			if safeHead < start+minBatchSize {
				i.logger.Info("waiting for more blocks",
					"chainHead", lastBlock,
					"safeHead", safeHead,
					"nextBatchStart", start)

				time.Sleep(time.Second * 10)
				continue
			}

			// Use larger batches when catching up
			batchSize := uint64(min(maxBatchSize, safeHead-start+1))
			end := start + batchSize - 1
			if end > safeHead {
				end = safeHead
			}

			i.logger.Info("processing vault blocks",
				"startBlock", start,
				"endBlock", end,
				"batchSize", end-start+1,
				"chainHead", lastBlock)

			if err := i.indexWithdrawals(ctx, start, end); err != nil {
				return fmt.Errorf("failed to index withdrawals: %w", err)
			}

			if err := i.indexBridges(ctx, start, end); err != nil {
				return fmt.Errorf("failed to index bridges: %w", err)
			}

			if err := i.store.UpdateLastIndexedBlock(ctx, "vault", end); err != nil {
				return fmt.Errorf("failed to update last indexed block: %w", err)
			}

			metrics.IndexerLastBlock.Set(float64(end))

			start = end + 1
		}
	}
}

func (i *Indexer) indexWithdrawals(ctx context.Context, startBlock, endBlock uint64) error {
	opts := bind.FilterOpts{
		Start: startBlock,
		End:   &endBlock,
	}

	iter, err := i.vault.FilterWithdrawal(&opts, []common.Address{})
	if err != nil {
		return fmt.Errorf("failed to filter Withdrawal: %w", err)
	}

	events := []*RampVaultContract.RampVaultWithdrawal{}
	for iter.Next() {
		events = append(events, iter.Event)
	}
	if err := iter.Error(); err != nil {
		return fmt.Errorf("withdrawal iterator failed: %w", err)
	}

	withdrawals := withdrawalRows(events)
	for _, w := range withdrawals {
		i.logger.Info("withdrawal observed", "tx_hash", w.TxHash, "offRampId", w.OfframpID)
	}

	if err := i.store.BatchCreateWithdrawals(ctx, withdrawals); err != nil {
		return fmt.Errorf("failed to batch create withdrawals: %w", err)
	}

	metrics.IndexedEventsTotal.WithLabelValues("withdrawal").Add(float64(len(withdrawals)))

	return nil
}

func (i *Indexer) indexBridges(ctx context.Context, startBlock, endBlock uint64) error {
	opts := bind.FilterOpts{
		Start: startBlock,
		End:   &endBlock,
	}

	iter, err := i.vault.FilterBridge(&opts, []common.Address{})
	if err != nil {
		return fmt.Errorf("failed to filter Bridge: %w", err)
	}

	events := []*RampVaultContract.RampVaultBridge{}
	for iter.Next() {
		events = append(events, iter.Event)
	}
	if err := iter.Error(); err != nil {
		return fmt.Errorf("bridge iterator failed: %w", err)
	}

	bridges := bridgeRows(events)
	for _, b := range bridges {
		i.logger.Info("bridge observed", "tx_hash", b.TxHash, "destinationChainId", b.DestinationChainID)
	}

	if err := i.store.BatchCreateBridges(ctx, bridges); err != nil {
		return fmt.Errorf("failed to batch create bridges: %w", err)
	}

	metrics.IndexedEventsTotal.WithLabelValues("bridge").Add(float64(len(bridges)))

	return nil
}

// withdrawalRows converts one filter batch into ledger rows, one per log,
// every row unprocessed. The batch may be empty.
func withdrawalRows(events []*RampVaultContract.RampVaultWithdrawal) []models.Withdrawal {
	withdrawals := make([]models.Withdrawal, 0, len(events))

	for _, event := range events {
		withdrawals = append(withdrawals, models.Withdrawal{
			ID:          recordID(event.Raw.TxHash, event.Raw.Index),
			UserAddress: event.User.Hex(),
			Amount:      event.Amount.String(),
			OfframpID:   common.BytesToHash(event.OffRampId[:]).Hex(),
			TxHash:      event.Raw.TxHash.Hex(),
			BlockNumber: event.Raw.BlockNumber,
			Processed:   false,
			CreatedAt:   time.Now().Unix(),
		})
	}

	return withdrawals
}

func bridgeRows(events []*RampVaultContract.RampVaultBridge) []models.Bridge {
	bridges := make([]models.Bridge, 0, len(events))

	for _, event := range events {
		bridges = append(bridges, models.Bridge{
			ID:                 recordID(event.Raw.TxHash, event.Raw.Index),
			UserAddress:        event.User.Hex(),
			Amount:             event.Amount.String(),
			DestinationChainID: event.DestinationChainId.String(),
			TxHash:             event.Raw.TxHash.Hex(),
			BlockNumber:        event.Raw.BlockNumber,
			Processed:          false,
			CreatedAt:          time.Now().Unix(),
		})
	}

	return bridges
}
