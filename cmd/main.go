package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rampline-network/ramp-bridge-api/api"
	"github.com/rampline-network/ramp-bridge-api/banking"
	"github.com/rampline-network/ramp-bridge-api/chain"
	"github.com/rampline-network/ramp-bridge-api/database"
	"github.com/rampline-network/ramp-bridge-api/indexer"
	"github.com/rampline-network/ramp-bridge-api/ramp"
	"github.com/rampline-network/ramp-bridge-api/settlement"
)

// Version will be set at build time
var Version = "development"

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	// create a new logger
	Logger := slog.New(tint.NewHandler(os.Stderr, nil))

	// set global logger with custom options
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		}),
	))

	Logger.Info("Starting ramp-bridge-api ("+Version+")",
		"Go Version", runtime.Version(),
		"Operating System", runtime.GOOS,
		"Architecture", runtime.GOARCH)

	// The admin key is the sole minting authority; without it the service
	// cannot settle anything, so its absence is fatal.
	adminKey := os.Getenv("ADMIN_PRIVATE_KEY")
	if adminKey == "" {
		log.Fatal("ADMIN_PRIVATE_KEY is required")
	}

	defaultStartBlock, err := strconv.ParseUint(os.Getenv("DEFAULT_START_BLOCK"), 10, 64)
	if err != nil {
		log.Fatalf("failed to parse DEFAULT_START_BLOCK: %v", err)
	}

	confirmationDepth, err := strconv.ParseUint(os.Getenv("CONFIRMATION_DEPTH"), 10, 64)
	if err != nil {
		log.Fatalf("failed to parse CONFIRMATION_DEPTH: %v", err)
	}

	confirmTimeout, err := strconv.ParseUint(os.Getenv("SETTLEMENT_CONFIRM_TIMEOUT"), 10, 64)
	if err != nil {
		log.Fatalf("failed to parse SETTLEMENT_CONFIRM_TIMEOUT: %v", err)
	}

	db, err := database.NewDatabase(database.DatabaseOpts{
		URI:          os.Getenv("DATABASE_URI"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		Logger:       Logger.With("component", "database"),
	})
	if err != nil {
		log.Fatalf("failed to create database: %v", err)
	}

	if err := db.CreateIndexes(context.Background()); err != nil {
		log.Fatalf("failed to create database indexes: %v", err)
	}

	chainClient, err := chain.NewClient(chain.ClientOpts{
		Endpoint:         os.Getenv("RPC_URL"),
		RampVaultAddress: common.HexToAddress(os.Getenv("RAMP_VAULT_ADDRESS")),
		TokenAddress:     common.HexToAddress(os.Getenv("TOKEN_ADDRESS")),
		Logger:           Logger.With("component", "chain"),
	})
	if err != nil {
		log.Fatalf("failed to create chain client: %v", err)
	}

	executor, err := settlement.NewExecutor(settlement.ExecutorOpts{
		Chain:          chainClient,
		AdminKeyHex:    adminKey,
		ConfirmTimeout: time.Duration(confirmTimeout) * time.Second,
		Logger:         Logger.With("component", "settlement"),
	})
	if err != nil {
		log.Fatalf("failed to create settlement executor: %v", err)
	}

	provider := banking.NewSimulatedProvider(Logger.With("component", "banking"))

	rampService := ramp.NewService(ramp.ServiceOpts{
		Store:    db,
		Settler:  executor,
		Provider: provider,
		Decimals: chainClient.TokenDecimals(),
		Logger:   Logger.With("component", "ramp"),
	})

	observer, err := indexer.NewIndexer(indexer.IndexerOpts{
		Vault:         chainClient,
		Store:         db,
		StartBlock:    defaultStartBlock,
		Confirmations: confirmationDepth,
		Logger:        Logger.With("component", "indexer"),
	})
	if err != nil {
		log.Fatalf("failed to create indexer: %v", err)
	}

	// start api server
	server, err := api.NewServer(api.ServerOpts{
		Logger: Logger.With("component", "api-server"),
		Ramp:   rampService,
		Store:  db,
		Port:   os.Getenv("API_PORT"),
	})
	if err != nil {
		log.Fatalf("failed to create api server: %v", err)
	}

	go server.StartServer()

	// Create context that will be canceled on SIGINT or SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Re-settle any deposit that was recorded but never confirmed before
	// the previous process died.
	go func() {
		if err := rampService.RetryPendingSettlements(ctx); err != nil {
			Logger.Error("pending settlement recovery failed", "error", err)
		}
	}()

	// Handle OS signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start indexer in a goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- observer.Run(ctx)
	}()

	// Wait for either error or signal
	select {
	case err := <-errChan:
		if err != nil {
			log.Printf("Indexer error: %v", err)
		}
	case sig := <-sigChan:
		fmt.Printf("\nReceived signal: %v\n", sig)
		fmt.Println("Shutting down gracefully...")
		cancel() // This will trigger shutdown via context

		// Wait for indexer to finish
		if err := <-errChan; err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}
}
