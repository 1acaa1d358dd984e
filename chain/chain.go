package chain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	ERC20Contract "github.com/rampline-network/ramp-bridge-api/contracts/erc20"
	RampVaultContract "github.com/rampline-network/ramp-bridge-api/contracts/rampvault"
	"github.com/rampline-network/ramp-bridge-api/utils"
)

type Client struct {
	client    *ethclient.Client
	chainId   *big.Int
	rampVault *RampVaultContract.RampVault
	token     *ERC20Contract.ERC20
	decimals  uint8
	logger    *slog.Logger
	Opts      *ClientOpts
}

type ClientOpts struct {
	Endpoint         string
	RampVaultAddress common.Address
	TokenAddress     common.Address
	Logger           *slog.Logger
}

// NewClient dials the chain node and binds the vault and token contracts.
// The token's decimal count is read once here and cached for the process
// lifetime.
func NewClient(opts ClientOpts) (*Client, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	client, err := ethclient.Dial(opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain node: %w", err)
	}

	rampVault, err := RampVaultContract.NewRampVault(opts.RampVaultAddress, client)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RampVault: %w", err)
	}

	token, err := ERC20Contract.NewERC20(opts.TokenAddress, client)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to token: %w", err)
	}

	chainId, err := client.ChainID(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("failed to get chainId: %w", err)
	}

	opts.Logger.Info("Connected to chain", "chainId", chainId)

	// Warn user if the contracts are not found at the given addresses.
	if ok, _ := utils.IsContract(client, opts.RampVaultAddress); !ok {
		opts.Logger.Warn("contract not found for RampVault at given Address", "address", opts.RampVaultAddress.Hex(), "endpoint", opts.Endpoint)
	}
	if ok, _ := utils.IsContract(client, opts.TokenAddress); !ok {
		opts.Logger.Warn("contract not found for token at given Address", "address", opts.TokenAddress.Hex(), "endpoint", opts.Endpoint)
	}

	decimals, err := token.Decimals(&bind.CallOpts{})
	if err != nil {
		return nil, fmt.Errorf("failed to read token decimals: %w", err)
	}

	opts.Logger.Info("Cached token decimals", "decimals", decimals)

	return &Client{
		client:    client,
		chainId:   chainId,
		rampVault: rampVault,
		token:     token,
		decimals:  decimals,
		logger:    opts.Logger,
		Opts:      &opts,
	}, nil
}

// ChainID returns the connected chain's id, read at dial time.
func (c *Client) ChainID() *big.Int {
	return c.chainId
}

// TokenDecimals returns the cached token decimal count.
func (c *Client) TokenDecimals() uint8 {
	return c.decimals
}

// Vault exposes the bound contract for the settlement executor.
func (c *Client) Vault() *RampVaultContract.RampVault {
	return c.rampVault
}

// Backend exposes the underlying RPC client for transaction waits.
func (c *Client) Backend() *ethclient.Client {
	return c.client
}
