package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rampline-network/ramp-bridge-api/types"
)

type initiateRequest struct {
	UserAddress string `json:"userAddress"`
}

func (s *Server) handleOnrampInitiate(w http.ResponseWriter, r *http.Request) {
	var req initiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ERROR(w, http.StatusBadRequest, fmt.Errorf("invalid payload: %w", err))
		return
	}

	result, err := s.ramp.Initiate(r.Context(), req.UserAddress)
	if err != nil {
		ERROR(w, statusFromError(err), err)
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"onrampId":       result.OnrampID,
		"virtualAccount": result.VirtualAccount,
		"bankName":       result.BankName,
	})
}

type depositWebhookRequest struct {
	BankReference string `json:"bankReference"`
	UserAddress   string `json:"userAddress"`
	Amount        int64  `json:"amount"`
	OnrampID      string `json:"onrampId"`
}

func (s *Server) handleDepositWebhook(w http.ResponseWriter, r *http.Request) {
	var req depositWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ERROR(w, http.StatusBadRequest, fmt.Errorf("invalid payload: %w", err))
		return
	}

	result, err := s.ramp.RecordDeposit(r.Context(), req.BankReference, req.UserAddress, req.Amount, req.OnrampID)
	if err != nil {
		// A settlement failure after the deposit row was written is
		// reported with the deposit id: the fiat receipt is preserved and
		// the id is the handle for resubmission.
		if result.DepositID != "" && (errors.Is(err, types.ErrSettlementFailed) || errors.Is(err, types.ErrSettlementTimeout)) {
			JSON(w, statusFromError(err), map[string]interface{}{
				"success":   false,
				"error":     err.Error(),
				"depositId": result.DepositID,
			})
			return
		}
		ERROR(w, statusFromError(err), err)
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"depositId":    result.DepositID,
		"settlementTx": result.SettlementTx,
	})
}

type offrampRegisterRequest struct {
	UserAddress string `json:"userAddress"`
	BankAccount string `json:"bankAccount"`
}

func (s *Server) handleOfframpRegister(w http.ResponseWriter, r *http.Request) {
	var req offrampRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ERROR(w, http.StatusBadRequest, fmt.Errorf("invalid payload: %w", err))
		return
	}

	offRampID, err := s.ramp.RegisterOfframp(r.Context(), req.UserAddress, req.BankAccount)
	if err != nil {
		ERROR(w, statusFromError(err), err)
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"offRampId": offRampID,
	})
}
