package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rampline-network/ramp-bridge-api/banking"
	"github.com/rampline-network/ramp-bridge-api/database/models"
	"github.com/rampline-network/ramp-bridge-api/ramp"
	"github.com/rampline-network/ramp-bridge-api/types"
)

const testUser = "0xAAA0000000000000000000000000000000000aaa"

// fakeLedger backs both the reconciliation core and the listing routes, so
// the tests exercise the full webhook path short of MongoDB and the chain.
type fakeLedger struct {
	onramps     []models.OnrampRequest
	offramps    []models.OfframpRegistration
	deposits    []models.Deposit
	withdrawals []models.Withdrawal
	bridges     []models.Bridge
}

func (l *fakeLedger) CreateOnrampRequest(ctx context.Context, req models.OnrampRequest) error {
	l.onramps = append(l.onramps, req)
	return nil
}

func (l *fakeLedger) GetOnrampRequest(ctx context.Context, onrampID string) (models.OnrampRequest, error) {
	for _, req := range l.onramps {
		if req.OnrampID == onrampID {
			return req, nil
		}
	}
	return models.OnrampRequest{}, fmt.Errorf("onramp_id %s: %w", onrampID, types.ErrNotFound)
}

func (l *fakeLedger) CreateOfframpRegistration(ctx context.Context, reg models.OfframpRegistration) error {
	l.offramps = append(l.offramps, reg)
	return nil
}

func (l *fakeLedger) CreateDeposit(ctx context.Context, deposit models.Deposit) error {
	for _, existing := range l.deposits {
		if existing.BankReference == deposit.BankReference && existing.OnrampID == deposit.OnrampID {
			return fmt.Errorf("deposit: %w", types.ErrDuplicateKey)
		}
	}
	l.deposits = append(l.deposits, deposit)
	return nil
}

func (l *fakeLedger) GetDepositByReference(ctx context.Context, bankReference, onrampID string) (models.Deposit, error) {
	for _, deposit := range l.deposits {
		if deposit.BankReference == bankReference && deposit.OnrampID == onrampID {
			return deposit, nil
		}
	}
	return models.Deposit{}, fmt.Errorf("deposit: %w", types.ErrNotFound)
}

func (l *fakeLedger) UpdateDepositStatus(ctx context.Context, depositID string, status types.OnrampStatus, settlementTx string) error {
	for i := range l.deposits {
		if l.deposits[i].DepositID == depositID {
			l.deposits[i].Status = string(status)
			l.deposits[i].SettlementTx = settlementTx
			return nil
		}
	}
	return fmt.Errorf("deposit_id %s: %w", depositID, types.ErrNotFound)
}

func (l *fakeLedger) ListUnsettledDeposits(ctx context.Context) ([]models.Deposit, error) {
	unsettled := []models.Deposit{}
	for _, deposit := range l.deposits {
		if deposit.Status != string(types.Settled) {
			unsettled = append(unsettled, deposit)
		}
	}
	return unsettled, nil
}

func (l *fakeLedger) ListOnrampRequests(ctx context.Context) ([]models.OnrampRequest, error) {
	return append([]models.OnrampRequest{}, l.onramps...), nil
}

func (l *fakeLedger) ListOfframpRegistrations(ctx context.Context) ([]models.OfframpRegistration, error) {
	return append([]models.OfframpRegistration{}, l.offramps...), nil
}

func (l *fakeLedger) ListDeposits(ctx context.Context) ([]models.Deposit, error) {
	return append([]models.Deposit{}, l.deposits...), nil
}

func (l *fakeLedger) ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	return append([]models.Withdrawal{}, l.withdrawals...), nil
}

func (l *fakeLedger) ListBridges(ctx context.Context) ([]models.Bridge, error) {
	return append([]models.Bridge{}, l.bridges...), nil
}

func (l *fakeLedger) MarkWithdrawalProcessed(ctx context.Context, id string) error {
	for i := range l.withdrawals {
		if l.withdrawals[i].ID == id {
			l.withdrawals[i].Processed = true
			return nil
		}
	}
	return fmt.Errorf("withdrawal %s: %w", id, types.ErrNotFound)
}

func (l *fakeLedger) MarkBridgeProcessed(ctx context.Context, id string) error {
	for i := range l.bridges {
		if l.bridges[i].ID == id {
			l.bridges[i].Processed = true
			return nil
		}
	}
	return fmt.Errorf("bridge %s: %w", id, types.ErrNotFound)
}

type fakeSettler struct {
	calls  int
	txHash string
	err    error
}

func (f *fakeSettler) Settle(ctx context.Context, userAddress string, amount int64, onrampID string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.txHash, nil
}

type fakeProvider struct{}

func (fakeProvider) ObtainVirtualAccount(ctx context.Context, userAddress string) (banking.VirtualAccount, error) {
	return banking.VirtualAccount{AccountNumber: "9000000001", BankName: "Test Bank"}, nil
}

func newTestServer(t *testing.T, ledger *fakeLedger, settler *fakeSettler) *Server {
	t.Helper()

	svc := ramp.NewService(ramp.ServiceOpts{
		Store:    ledger,
		Settler:  settler,
		Provider: fakeProvider{},
		Decimals: 6,
	})

	server, err := NewServer(ServerOpts{Ramp: svc, Store: ledger, Port: "0"})
	require.NoError(t, err)

	return server
}

func doJSON(t *testing.T, server *Server, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	decoded := map[string]interface{}{}
	if rec.Body.Len() > 0 && rec.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}

	return rec, decoded
}

func TestOnrampInitiate(t *testing.T) {
	server := newTestServer(t, &fakeLedger{}, &fakeSettler{})

	rec, body := doJSON(t, server, http.MethodPost, "/onramp/initiate", map[string]string{"userAddress": testUser})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, true, body["success"])
	assert.Regexp(t, `^0x[0-9a-f]{64}$`, body["onrampId"])
	assert.Equal(t, "9000000001", body["virtualAccount"])
	assert.Equal(t, "Test Bank", body["bankName"])
}

func TestOnrampInitiate_BadPayload(t *testing.T) {
	server := newTestServer(t, &fakeLedger{}, &fakeSettler{})

	rec, _ := doJSON(t, server, http.MethodPost, "/onramp/initiate", map[string]string{"userAddress": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/onramp/initiate", bytes.NewBufferString("{"))
	rec2 := httptest.NewRecorder()
	server.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestDepositWebhook_EndToEnd(t *testing.T) {
	ledger := &fakeLedger{}
	settler := &fakeSettler{txHash: "0xfeed"}
	server := newTestServer(t, ledger, settler)

	_, initiated := doJSON(t, server, http.MethodPost, "/onramp/initiate", map[string]string{"userAddress": testUser})
	onrampID := initiated["onrampId"].(string)

	rec, body := doJSON(t, server, http.MethodPost, "/webhook/deposit", map[string]interface{}{
		"bankReference": "B1",
		"userAddress":   testUser,
		"amount":        50,
		"onrampId":      onrampID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["depositId"])
	assert.Equal(t, "0xfeed", body["settlementTx"])
	assert.Equal(t, 1, settler.calls)

	// The deposit shows up in the ledger listing with the scaled amount.
	listRec := httptest.NewRecorder()
	server.ServeHTTP(listRec, httptest.NewRequest(http.MethodGet, "/deposits", nil))
	require.Equal(t, http.StatusOK, listRec.Code)

	deposits := []models.Deposit{}
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &deposits))
	require.Len(t, deposits, 1)
	assert.Equal(t, "50000000", deposits[0].Amount)
	assert.Equal(t, onrampID, deposits[0].OnrampID)
	assert.Equal(t, string(types.Settled), deposits[0].Status)
}

func TestDepositWebhook_ReplayReturnsOriginalDeposit(t *testing.T) {
	ledger := &fakeLedger{}
	settler := &fakeSettler{txHash: "0xfeed"}
	server := newTestServer(t, ledger, settler)

	_, initiated := doJSON(t, server, http.MethodPost, "/onramp/initiate", map[string]string{"userAddress": testUser})
	payload := map[string]interface{}{
		"bankReference": "B1",
		"userAddress":   testUser,
		"amount":        50,
		"onrampId":      initiated["onrampId"],
	}

	rec1, body1 := doJSON(t, server, http.MethodPost, "/webhook/deposit", payload)
	rec2, body2 := doJSON(t, server, http.MethodPost, "/webhook/deposit", payload)

	require.Equal(t, http.StatusOK, rec1.Code)
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.Equal(t, body1["depositId"], body2["depositId"])
	assert.Equal(t, 1, settler.calls, "replay must not settle twice")
	assert.Len(t, ledger.deposits, 1)
}

func TestDepositWebhook_SettlementFailurePreservesDeposit(t *testing.T) {
	ledger := &fakeLedger{}
	settler := &fakeSettler{err: fmt.Errorf("node down: %w", types.ErrSettlementFailed)}
	server := newTestServer(t, ledger, settler)

	_, initiated := doJSON(t, server, http.MethodPost, "/onramp/initiate", map[string]string{"userAddress": testUser})

	rec, body := doJSON(t, server, http.MethodPost, "/webhook/deposit", map[string]interface{}{
		"bankReference": "B1",
		"userAddress":   testUser,
		"amount":        50,
		"onrampId":      initiated["onrampId"],
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["depositId"], "caller gets the handle for resubmission")

	// Fiat-receipt evidence survives the settlement failure.
	listRec := httptest.NewRecorder()
	server.ServeHTTP(listRec, httptest.NewRequest(http.MethodGet, "/deposits", nil))

	deposits := []models.Deposit{}
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &deposits))
	require.Len(t, deposits, 1)
	assert.Equal(t, string(types.SettlementFailed), deposits[0].Status)
}

func TestDepositWebhook_UnknownOnramp(t *testing.T) {
	server := newTestServer(t, &fakeLedger{}, &fakeSettler{})

	rec, _ := doJSON(t, server, http.MethodPost, "/webhook/deposit", map[string]interface{}{
		"bankReference": "B1",
		"userAddress":   testUser,
		"amount":        50,
		"onrampId":      "0x1111111111111111111111111111111111111111111111111111111111111111",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterOfframp(t *testing.T) {
	server := newTestServer(t, &fakeLedger{}, &fakeSettler{})

	rec, body := doJSON(t, server, http.MethodPost, "/register/offramp", map[string]string{
		"userAddress": testUser,
		"bankAccount": "0123456789",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Regexp(t, `^0x[0-9a-f]{64}$`, body["offRampId"])

	rec, _ = doJSON(t, server, http.MethodPost, "/register/offramp", map[string]string{
		"userAddress": testUser,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkWithdrawalProcessed_Idempotent(t *testing.T) {
	ledger := &fakeLedger{
		withdrawals: []models.Withdrawal{{ID: "0xw1", UserAddress: testUser, Amount: "10"}},
	}
	server := newTestServer(t, ledger, &fakeSettler{})

	rec, body := doJSON(t, server, http.MethodPost, "/withdrawals/0xw1/processed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.True(t, ledger.withdrawals[0].Processed)

	// Second flip is a no-op, not an error.
	rec, _ = doJSON(t, server, http.MethodPost, "/withdrawals/0xw1/processed", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, server, http.MethodPost, "/withdrawals/0xmissing/processed", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListings_EmptyArrays(t *testing.T) {
	server := newTestServer(t, &fakeLedger{}, &fakeSettler{})

	for _, path := range []string{"/onramp_requests", "/offramps", "/deposits", "/withdrawals", "/bridges"} {
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, "[]", rec.Body.String(), path)
	}
}
