package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/rampline-network/ramp-bridge-api/database/models"
	"github.com/rampline-network/ramp-bridge-api/ramp"
	"github.com/rampline-network/ramp-bridge-api/types"
)

// RampService is the reconciliation core surface the HTTP layer drives.
type RampService interface {
	Initiate(ctx context.Context, userAddress string) (ramp.InitiateResult, error)
	RecordDeposit(ctx context.Context, bankReference, userAddress string, amount int64, onrampID string) (ramp.DepositResult, error)
	RegisterOfframp(ctx context.Context, userAddress, bankAccount string) (string, error)
}

// Store is the read/flip surface for the listing and collaborator routes.
type Store interface {
	ListOnrampRequests(ctx context.Context) ([]models.OnrampRequest, error)
	ListOfframpRegistrations(ctx context.Context) ([]models.OfframpRegistration, error)
	ListDeposits(ctx context.Context) ([]models.Deposit, error)
	ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	ListBridges(ctx context.Context) ([]models.Bridge, error)
	MarkWithdrawalProcessed(ctx context.Context, id string) error
	MarkBridgeProcessed(ctx context.Context, id string) error
}

// API server
type Server struct {
	r    chi.Router
	log  *slog.Logger
	ramp RampService
	db   Store
	opts ServerOpts
}

type ServerOpts struct {
	Logger *slog.Logger
	Ramp   RampService
	Store  Store
	Port   string
}

// Create API server
func NewServer(opts ServerOpts) (*Server, error) {
	if opts.Ramp == nil || opts.Store == nil {
		return nil, fmt.Errorf("api server requires a ramp service and a store")
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		r:    chi.NewRouter(),
		log:  opts.Logger,
		ramp: opts.Ramp,
		db:   opts.Store,
		opts: opts,
	}
	s.routes()

	return s, nil
}

// Load routes into server and
// starts HTTP server
func (s *Server) StartServer() {
	s.log.Info("📡 Server Started. API Server is now listening on http://localhost:" + s.opts.Port)
	if err := http.ListenAndServe(":"+s.opts.Port, s.r); err != nil {
		s.log.Error("server error", "error", err)
		os.Exit(1)
	}
}

// Turns server into http server
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.r.ServeHTTP(w, r)
}

// Returns JSON response to the API user. HTTP status code
// and data must be provided
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		fmt.Fprintf(w, "%s", err.Error())
	}
}

// Returns an error to the API user
func ERROR(w http.ResponseWriter, statusCode int, err error) {
	w.WriteHeader(statusCode)
	err = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": err.Error()})
	if err != nil {
		fmt.Fprintf(w, "%s", err.Error())
	}
}

// statusFromError maps the error taxonomy to HTTP status codes. Replay is
// never an error at this boundary: the core answers it with the original
// deposit, so only genuine collisions surface as 409.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidInput), errors.Is(err, types.ErrNotFound):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, types.ErrSettlementTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, types.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
