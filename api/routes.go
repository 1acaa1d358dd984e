package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sets up chi router, middlewares and defines all api endpoints
func (s *Server) routes() {
	// Inject routes
	s.r = chi.NewRouter()

	// Basic CORS
	s.r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// Inject chi middleware
	// Injects a request ID into the context of each request
	s.r.Use(middleware.RequestID)
	// Sets a http.Request's RemoteAddr to either X-Real-IP or X-Forwarded-For
	s.r.Use(middleware.RealIP)
	// Logs the start and end of each request with the elapsed processing time
	s.r.Use(middleware.Logger)
	// Gracefully absorb panics and prints the stack trace
	s.r.Use(middleware.Recoverer)

	// Settlement waits for on-chain confirmation, so the webhook route needs
	// headroom beyond a typical request timeout.
	s.r.Use(middleware.Timeout(5 * time.Minute))

	s.r.Get("/metrics", promhttp.Handler().ServeHTTP)

	s.r.Group(func(r chi.Router) {
		// Sets HTTP response headers as content type JSON
		r.Use(middleware.SetHeader("Content-Type", "application/json"))

		// health
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			JSON(w, 200, map[string]interface{}{"health_status": "online"})
		})

		// reconciliation core
		r.Post("/onramp/initiate", s.handleOnrampInitiate)
		r.Post("/webhook/deposit", s.handleDepositWebhook)
		r.Post("/register/offramp", s.handleOfframpRegister)

		// ledger listings
		r.Get("/onramp_requests", s.handleOnrampRequestsGet)
		r.Get("/offramps", s.handleOfframpsGet)
		r.Get("/deposits", s.handleDepositsGet)
		r.Get("/withdrawals", s.handleWithdrawalsGet)
		r.Get("/bridges", s.handleBridgesGet)

		// payout / relay collaborators
		r.Post("/withdrawals/{id}/processed", s.handleWithdrawalProcessed)
		r.Post("/bridges/{id}/processed", s.handleBridgeProcessed)
	})
}
