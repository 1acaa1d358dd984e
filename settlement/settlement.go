// Package settlement drives the off-chain to on-chain direction of
// reconciliation: given a confirmed fiat deposit it invokes the vault's
// deposit entry point and waits for the transaction to be mined.
//
// The executor holds the single administrative signing key, which is the
// sole minting authority. Its compromise is a total-loss event; key custody
// is outside this service's scope. Submissions are serialized so two
// settlements never race on the admin nonce.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/rampline-network/ramp-bridge-api/chain"
	"github.com/rampline-network/ramp-bridge-api/correlation"
	"github.com/rampline-network/ramp-bridge-api/metrics"
	ramperrors "github.com/rampline-network/ramp-bridge-api/types"
)

type Executor struct {
	chain          *chain.Client
	auth           *bind.TransactOpts
	confirmTimeout time.Duration
	logger         *slog.Logger

	mu sync.Mutex // one in-flight submission at a time
}

type ExecutorOpts struct {
	Chain          *chain.Client
	AdminKeyHex    string
	ConfirmTimeout time.Duration
	Logger         *slog.Logger
}

func NewExecutor(opts ExecutorOpts) (*Executor, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ConfirmTimeout == 0 {
		opts.ConfirmTimeout = 2 * time.Minute
	}

	key, err := crypto.HexToECDSA(opts.AdminKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin key: %w", err)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, opts.Chain.ChainID())
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	opts.Logger.Info("settlement executor ready",
		"admin", auth.From.Hex(),
		"confirmTimeout", opts.ConfirmTimeout)

	return &Executor{
		chain:          opts.Chain,
		auth:           auth,
		confirmTimeout: opts.ConfirmTimeout,
		logger:         opts.Logger,
	}, nil
}

// ScaleToBaseUnit converts a display-unit amount to the token's native base
// unit using the chain-read decimal count.
func ScaleToBaseUnit(amount int64, decimals uint8) *big.Int {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return new(big.Int).Mul(big.NewInt(amount), scale)
}

// Settle submits deposit(to, amount, onrampId) and blocks until the
// transaction is mined or the confirmation timeout elapses. It returns the
// transaction hash on success. On any failure the caller keeps the deposit
// row so the same onrampId can be resubmitted.
func (e *Executor) Settle(ctx context.Context, userAddress string, amount int64, onrampID string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	scaled := ScaleToBaseUnit(amount, e.chain.TokenDecimals())

	opts := *e.auth
	opts.Context = ctx

	start := time.Now()

	tx, err := e.chain.Vault().Deposit(&opts, common.HexToAddress(userAddress), scaled, correlation.ToBytes32(onrampID))
	if err != nil {
		metrics.SettlementsTotal.WithLabelValues("submit_failed").Inc()
		return "", fmt.Errorf("failed to submit settlement for %s: %v: %w", onrampID, err, ramperrors.ErrSettlementFailed)
	}

	e.logger.Info("settlement submitted",
		"onrampId", onrampID,
		"to", userAddress,
		"amount", scaled.String(),
		"tx", tx.Hash().Hex())

	waitCtx, cancel := context.WithTimeout(ctx, e.confirmTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, e.chain.Backend(), tx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			metrics.SettlementsTotal.WithLabelValues("timeout").Inc()
			return "", fmt.Errorf("settlement %s not confirmed after %s: %w", tx.Hash().Hex(), e.confirmTimeout, ramperrors.ErrSettlementTimeout)
		}
		metrics.SettlementsTotal.WithLabelValues("wait_failed").Inc()
		return "", fmt.Errorf("failed to wait for settlement %s: %v: %w", tx.Hash().Hex(), err, ramperrors.ErrSettlementFailed)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		metrics.SettlementsTotal.WithLabelValues("reverted").Inc()
		return "", fmt.Errorf("settlement %s reverted: %w", tx.Hash().Hex(), ramperrors.ErrSettlementFailed)
	}

	metrics.SettlementsTotal.WithLabelValues("confirmed").Inc()
	metrics.SettlementDuration.Observe(time.Since(start).Seconds())

	e.logger.Info("settlement confirmed",
		"onrampId", onrampID,
		"tx", tx.Hash().Hex(),
		"block", receipt.BlockNumber.Uint64())

	return tx.Hash().Hex(), nil
}
