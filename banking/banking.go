// Package banking defines the provider capability the reconciliation core
// depends on. The simulated provider stands in for a real integration; a
// production provider implements the same interface without touching the
// core.
package banking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// VirtualAccount is a provider-issued account binding used to attribute an
// incoming fiat transfer to a user.
type VirtualAccount struct {
	AccountNumber string
	BankName      string
	AccountName   string
}

// Provider issues virtual accounts for onramp requests.
type Provider interface {
	ObtainVirtualAccount(ctx context.Context, userAddress string) (VirtualAccount, error)
}

// SimulatedProvider issues deterministic-bank, random-number virtual
// accounts without any external round trip.
type SimulatedProvider struct {
	BankName string
	Logger   *slog.Logger
}

var _ Provider = &SimulatedProvider{}

func NewSimulatedProvider(logger *slog.Logger) *SimulatedProvider {
	if logger == nil {
		logger = slog.Default()
	}

	return &SimulatedProvider{
		BankName: "Rampline Test Bank",
		Logger:   logger,
	}
}

func (p *SimulatedProvider) ObtainVirtualAccount(ctx context.Context, userAddress string) (VirtualAccount, error) {
	ref, err := uuid.NewRandom()
	if err != nil {
		return VirtualAccount{}, fmt.Errorf("failed to generate account reference: %w", err)
	}

	// A real provider returns a 10-digit NUBAN-style number; the simulator
	// derives one from the uuid so repeated calls stay distinct.
	accountNumber := fmt.Sprintf("9%09d", ref.ID()%1_000_000_000)

	p.Logger.Info("issued virtual account",
		"user", userAddress,
		"account", accountNumber)

	return VirtualAccount{
		AccountNumber: accountNumber,
		BankName:      p.BankName,
		AccountName:   "RAMPLINE / " + shortAddress(userAddress),
	}, nil
}

func shortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
