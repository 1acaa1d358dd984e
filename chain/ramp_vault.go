package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	RampVaultContract "github.com/rampline-network/ramp-bridge-api/contracts/rampvault"
)

// RampVault is the surface the observer needs from the chain client.
type RampVault interface {
	FilterWithdrawal(opts *bind.FilterOpts, user []common.Address) (*RampVaultContract.RampVaultWithdrawalIterator, error)
	FilterBridge(opts *bind.FilterOpts, user []common.Address) (*RampVaultContract.RampVaultBridgeIterator, error)
	BlockNumber() (uint64, error)
}

var _ RampVault = &Client{}

func (c *Client) FilterWithdrawal(opts *bind.FilterOpts, user []common.Address) (*RampVaultContract.RampVaultWithdrawalIterator, error) {
	maxRetries := 5
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if itr, err := c.rampVault.FilterWithdrawal(opts, user); err == nil {
			return itr, nil
		} else {
			lastErr = err
		}

		if attempt < maxRetries-1 {
			time.Sleep(time.Second * 2)
		}
	}

	return nil, fmt.Errorf("failed to filter Withdrawal after %d attempts: %w", maxRetries, lastErr)
}

func (c *Client) FilterBridge(opts *bind.FilterOpts, user []common.Address) (*RampVaultContract.RampVaultBridgeIterator, error) {
	maxRetries := 5
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if itr, err := c.rampVault.FilterBridge(opts, user); err == nil {
			return itr, nil
		} else {
			lastErr = err
		}

		if attempt < maxRetries-1 {
			time.Sleep(time.Second * 2)
		}
	}

	return nil, fmt.Errorf("failed to filter Bridge after %d attempts: %w", maxRetries, lastErr)
}

func (c *Client) BlockNumber() (uint64, error) {
	maxRetries := 5
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if num, err := c.client.BlockNumber(context.Background()); err == nil {
			return num, nil
		} else {
			lastErr = err
		}

		if attempt < maxRetries-1 {
			time.Sleep(time.Second * 2)
		}
	}

	return 0, fmt.Errorf("failed to get block number after %d attempts: %w", maxRetries, lastErr)
}
