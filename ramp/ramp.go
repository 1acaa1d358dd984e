// Package ramp is the reconciliation core: it issues correlation ids,
// records pending state, drives settlement and keeps completion idempotent
// per identifier. The deposit row is written before settlement is attempted,
// so within one onramp lifecycle DepositRecorded always precedes Settled or
// SettlementFailed, and no fiat receipt is ever lost to a chain failure.
package ramp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rampline-network/ramp-bridge-api/banking"
	"github.com/rampline-network/ramp-bridge-api/correlation"
	"github.com/rampline-network/ramp-bridge-api/database/models"
	"github.com/rampline-network/ramp-bridge-api/metrics"
	"github.com/rampline-network/ramp-bridge-api/settlement"
	"github.com/rampline-network/ramp-bridge-api/types"
)

// Store is the ledger surface the core writes through.
type Store interface {
	CreateOnrampRequest(ctx context.Context, req models.OnrampRequest) error
	GetOnrampRequest(ctx context.Context, onrampID string) (models.OnrampRequest, error)
	CreateOfframpRegistration(ctx context.Context, reg models.OfframpRegistration) error
	CreateDeposit(ctx context.Context, deposit models.Deposit) error
	GetDepositByReference(ctx context.Context, bankReference, onrampID string) (models.Deposit, error)
	UpdateDepositStatus(ctx context.Context, depositID string, status types.OnrampStatus, settlementTx string) error
	ListUnsettledDeposits(ctx context.Context) ([]models.Deposit, error)
}

// Settler submits the on-chain settlement for a confirmed fiat deposit and
// blocks until it is confirmed.
type Settler interface {
	Settle(ctx context.Context, userAddress string, amount int64, onrampID string) (string, error)
}

type Service struct {
	store    Store
	settler  Settler
	provider banking.Provider
	decimals uint8
	logger   *slog.Logger
}

type ServiceOpts struct {
	Store    Store
	Settler  Settler
	Provider banking.Provider
	Decimals uint8
	Logger   *slog.Logger
}

func NewService(opts ServiceOpts) *Service {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Service{
		store:    opts.Store,
		settler:  opts.Settler,
		provider: opts.Provider,
		decimals: opts.Decimals,
		logger:   opts.Logger,
	}
}

// InitiateResult is returned to the user who starts an onramp.
type InitiateResult struct {
	OnrampID       string
	VirtualAccount string
	BankName       string
}

// Initiate generates a fresh onrampId, obtains a virtual account from the
// banking provider and persists the request. The request row is immutable
// once created.
func (s *Service) Initiate(ctx context.Context, userAddress string) (InitiateResult, error) {
	if !common.IsHexAddress(userAddress) {
		return InitiateResult{}, fmt.Errorf("userAddress %q: %w", userAddress, types.ErrInvalidInput)
	}

	onrampID, err := correlation.NewID()
	if err != nil {
		return InitiateResult{}, fmt.Errorf("failed to generate onrampId: %w", err)
	}

	account, err := s.provider.ObtainVirtualAccount(ctx, userAddress)
	if err != nil {
		return InitiateResult{}, fmt.Errorf("banking provider: %v: %w", err, types.ErrUpstreamUnavailable)
	}

	req := models.OnrampRequest{
		OnrampID:       onrampID,
		UserAddress:    userAddress,
		VirtualAccount: account.AccountNumber,
		BankName:       account.BankName,
		AccountName:    account.AccountName,
		CreatedAt:      time.Now().Unix(),
	}

	if err := s.store.CreateOnrampRequest(ctx, req); err != nil {
		return InitiateResult{}, fmt.Errorf("failed to persist onramp request: %w", err)
	}

	metrics.OnrampRequestsTotal.Inc()

	s.logger.Info("onramp initiated",
		"onrampId", onrampID,
		"user", userAddress,
		"virtualAccount", account.AccountNumber)

	return InitiateResult{
		OnrampID:       onrampID,
		VirtualAccount: account.AccountNumber,
		BankName:       account.BankName,
	}, nil
}

// DepositResult reports a recorded deposit. SettlementTx is empty when the
// deposit was recorded but settlement did not (yet) succeed.
type DepositResult struct {
	DepositID    string
	SettlementTx string
}

// RecordDeposit handles a banking webhook reporting a confirmed fiat
// deposit. The deposit row is persisted before settlement is attempted and
// is kept whatever the settlement outcome. Replaying the same
// (bankReference, onrampId) pair returns the originally recorded deposit
// and never triggers a second settlement.
func (s *Service) RecordDeposit(ctx context.Context, bankReference, userAddress string, amount int64, onrampID string) (DepositResult, error) {
	if bankReference == "" || onrampID == "" {
		return DepositResult{}, fmt.Errorf("missing bankReference or onrampId: %w", types.ErrInvalidInput)
	}
	if !common.IsHexAddress(userAddress) {
		return DepositResult{}, fmt.Errorf("userAddress %q: %w", userAddress, types.ErrInvalidInput)
	}
	if amount <= 0 {
		return DepositResult{}, fmt.Errorf("amount must be positive: %w", types.ErrInvalidInput)
	}

	// The onrampId must resolve before anything touches the chain: settling
	// against an unknown id would mint into an attacker-chosen binding.
	onramp, err := s.store.GetOnrampRequest(ctx, onrampID)
	if err != nil {
		return DepositResult{}, fmt.Errorf("failed to resolve onramp request: %w", err)
	}
	if onramp.UserAddress != userAddress {
		return DepositResult{}, fmt.Errorf("userAddress does not match onramp request: %w", types.ErrInvalidInput)
	}

	// Replay guard, first line: a redelivered webhook is answered with the
	// already-recorded deposit.
	if existing, err := s.store.GetDepositByReference(ctx, bankReference, onrampID); err == nil {
		metrics.WebhookReplays.Inc()
		s.logger.Info("deposit webhook replayed",
			"bankReference", bankReference,
			"onrampId", onrampID,
			"depositId", existing.DepositID)
		return DepositResult{DepositID: existing.DepositID, SettlementTx: existing.SettlementTx}, nil
	} else if !errors.Is(err, types.ErrNotFound) {
		return DepositResult{}, err
	}

	depositID, err := correlation.NewID()
	if err != nil {
		return DepositResult{}, fmt.Errorf("failed to generate depositId: %w", err)
	}

	deposit := models.Deposit{
		DepositID:     depositID,
		BankReference: bankReference,
		UserAddress:   userAddress,
		Amount:        settlement.ScaleToBaseUnit(amount, s.decimals).String(),
		OnrampID:      onrampID,
		Status:        string(types.DepositRecorded),
		CreatedAt:     time.Now().Unix(),
	}

	if err := s.store.CreateDeposit(ctx, deposit); err != nil {
		// Second line of the replay guard: a concurrent redelivery lost the
		// insert race against the unique (bank_reference, onramp_id) index.
		if errors.Is(err, types.ErrDuplicateKey) {
			if existing, getErr := s.store.GetDepositByReference(ctx, bankReference, onrampID); getErr == nil {
				metrics.WebhookReplays.Inc()
				return DepositResult{DepositID: existing.DepositID, SettlementTx: existing.SettlementTx}, nil
			}
		}
		return DepositResult{}, fmt.Errorf("failed to persist deposit: %w", err)
	}

	txHash, err := s.settler.Settle(ctx, userAddress, amount, onrampID)
	if err != nil {
		// The row stays: it is the evidence of fiat receipt and the input
		// to a later resubmission under the same onrampId.
		if updateErr := s.store.UpdateDepositStatus(ctx, depositID, types.SettlementFailed, ""); updateErr != nil {
			s.logger.Error("failed to mark deposit settlement failed",
				"depositId", depositID, "error", updateErr)
		}
		return DepositResult{DepositID: depositID}, fmt.Errorf("deposit %s recorded but not settled: %w", depositID, err)
	}

	if err := s.store.UpdateDepositStatus(ctx, depositID, types.Settled, txHash); err != nil {
		return DepositResult{DepositID: depositID, SettlementTx: txHash}, fmt.Errorf("settled but failed to update deposit status: %w", err)
	}

	s.logger.Info("deposit settled",
		"depositId", depositID,
		"onrampId", onrampID,
		"tx", txHash)

	return DepositResult{DepositID: depositID, SettlementTx: txHash}, nil
}

// RegisterOfframp issues a fresh offRampId binding a user address to a fiat
// bank account. The id authorizes the contract's Withdrawal events to be
// paid out to that account.
func (s *Service) RegisterOfframp(ctx context.Context, userAddress, bankAccount string) (string, error) {
	if !common.IsHexAddress(userAddress) {
		return "", fmt.Errorf("userAddress %q: %w", userAddress, types.ErrInvalidInput)
	}
	if bankAccount == "" {
		return "", fmt.Errorf("missing bankAccount: %w", types.ErrInvalidInput)
	}

	offrampID, err := correlation.NewID()
	if err != nil {
		return "", fmt.Errorf("failed to generate offRampId: %w", err)
	}

	reg := models.OfframpRegistration{
		OfframpID:   offrampID,
		UserAddress: userAddress,
		BankAccount: bankAccount,
		CreatedAt:   time.Now().Unix(),
	}

	if err := s.store.CreateOfframpRegistration(ctx, reg); err != nil {
		return "", fmt.Errorf("failed to persist offramp registration: %w", err)
	}

	s.logger.Info("offramp registered", "offRampId", offrampID, "user", userAddress)

	return offrampID, nil
}

// RetryPendingSettlements re-submits every deposit whose lifecycle never
// reached Settled. A settlement in flight when the process died is safe to
// resume because the deposit row already exists; the vault enforces
// at-most-once minting per onrampId.
func (s *Service) RetryPendingSettlements(ctx context.Context) error {
	deposits, err := s.store.ListUnsettledDeposits(ctx)
	if err != nil {
		return fmt.Errorf("failed to list unsettled deposits: %w", err)
	}

	if len(deposits) == 0 {
		return nil
	}

	s.logger.Info("retrying pending settlements", "count", len(deposits))

	for _, deposit := range deposits {
		amount, err := s.displayAmount(deposit.Amount)
		if err != nil {
			s.logger.Error("skipping deposit with unparseable amount",
				"depositId", deposit.DepositID, "amount", deposit.Amount)
			continue
		}

		txHash, err := s.settler.Settle(ctx, deposit.UserAddress, amount, deposit.OnrampID)
		if err != nil {
			s.logger.Error("retry settlement failed",
				"depositId", deposit.DepositID, "error", err)
			if updateErr := s.store.UpdateDepositStatus(ctx, deposit.DepositID, types.SettlementFailed, ""); updateErr != nil {
				s.logger.Error("failed to mark deposit settlement failed",
					"depositId", deposit.DepositID, "error", updateErr)
			}
			continue
		}

		if err := s.store.UpdateDepositStatus(ctx, deposit.DepositID, types.Settled, txHash); err != nil {
			s.logger.Error("failed to mark deposit settled",
				"depositId", deposit.DepositID, "error", err)
			continue
		}

		s.logger.Info("pending settlement completed",
			"depositId", deposit.DepositID, "tx", txHash)
	}

	return nil
}

// displayAmount reverses the base-unit scaling applied at record time. The
// division is exact because the stored value was produced by multiplying a
// display amount by 10^decimals.
func (s *Service) displayAmount(baseUnits string) (int64, error) {
	value, ok := new(big.Int).SetString(baseUnits, 10)
	if !ok {
		return 0, fmt.Errorf("invalid base unit amount %q", baseUnits)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(s.decimals)), nil)
	display := new(big.Int).Quo(value, scale)
	if !display.IsInt64() {
		return 0, fmt.Errorf("amount %q out of range", baseUnits)
	}

	return display.Int64(), nil
}
