package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rampline-network/ramp-bridge-api/types"
)

func (s *Server) handleOnrampRequestsGet(w http.ResponseWriter, r *http.Request) {
	requests, err := s.db.ListOnrampRequests(r.Context())
	if err != nil {
		ERROR(w, http.StatusInternalServerError, err)
		return
	}

	JSON(w, http.StatusOK, requests)
}

func (s *Server) handleOfframpsGet(w http.ResponseWriter, r *http.Request) {
	registrations, err := s.db.ListOfframpRegistrations(r.Context())
	if err != nil {
		ERROR(w, http.StatusInternalServerError, err)
		return
	}

	JSON(w, http.StatusOK, registrations)
}

func (s *Server) handleDepositsGet(w http.ResponseWriter, r *http.Request) {
	deposits, err := s.db.ListDeposits(r.Context())
	if err != nil {
		ERROR(w, http.StatusInternalServerError, err)
		return
	}

	JSON(w, http.StatusOK, deposits)
}

func (s *Server) handleWithdrawalsGet(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := s.db.ListWithdrawals(r.Context())
	if err != nil {
		ERROR(w, http.StatusInternalServerError, err)
		return
	}

	JSON(w, http.StatusOK, withdrawals)
}

func (s *Server) handleBridgesGet(w http.ResponseWriter, r *http.Request) {
	bridges, err := s.db.ListBridges(r.Context())
	if err != nil {
		ERROR(w, http.StatusInternalServerError, err)
		return
	}

	JSON(w, http.StatusOK, bridges)
}

func (s *Server) handleWithdrawalProcessed(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.db.MarkWithdrawalProcessed(r.Context(), id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			ERROR(w, http.StatusNotFound, err)
			return
		}
		ERROR(w, http.StatusInternalServerError, err)
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (s *Server) handleBridgeProcessed(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.db.MarkBridgeProcessed(r.Context(), id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			ERROR(w, http.StatusNotFound, err)
			return
		}
		ERROR(w, http.StatusInternalServerError, err)
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
