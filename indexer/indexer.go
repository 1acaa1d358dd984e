package indexer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/rampline-network/ramp-bridge-api/chain"
	"github.com/rampline-network/ramp-bridge-api/database/models"
)

// Store is the ledger surface the observer appends through.
type Store interface {
	BatchCreateWithdrawals(ctx context.Context, withdrawals []models.Withdrawal) error
	BatchCreateBridges(ctx context.Context, bridges []models.Bridge) error
	GetLastIndexedBlock(ctx context.Context, chain string) (uint64, error)
	UpdateLastIndexedBlock(ctx context.Context, chain string, blockNumber uint64) error
}

// Indexer is the on-chain to off-chain direction of reconciliation: it
// scans the vault contract's Withdrawal and Bridge events and appends a
// ledger row per log for the payout and relay collaborators to pick up.
type Indexer struct {
	vault         chain.RampVault
	store         Store
	startBlock    uint64
	confirmations uint64
	logger        *slog.Logger
}

type IndexerOpts struct {
	Vault         chain.RampVault
	Store         Store
	StartBlock    uint64
	Confirmations uint64
	Logger        *slog.Logger
}

func NewIndexer(opts IndexerOpts) (*Indexer, error) {
	if opts.Vault == nil || opts.Store == nil {
		return nil, fmt.Errorf("indexer requires a vault client and a store")
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Indexer{
		vault:         opts.Vault,
		store:         opts.Store,
		startBlock:    opts.StartBlock,
		confirmations: opts.Confirmations,
		logger:        opts.Logger,
	}, nil
}

func (i *Indexer) Run(ctx context.Context) error {
	return i.indexVault(ctx)
}

// recordID deterministically derives a ledger row id from the log's
// position on chain, so re-scanning a block range after a restart produces
// the same ids and the store's unique index absorbs the duplicates.
func recordID(txHash common.Hash, logIndex uint) string {
	var idx [8]byte
	for b := 0; b < 8; b++ {
		idx[7-b] = byte(logIndex >> (8 * b))
	}
	return crypto.Keccak256Hash(txHash.Bytes(), idx[:]).Hex()
}
