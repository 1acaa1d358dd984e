package ramp

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rampline-network/ramp-bridge-api/banking"
	"github.com/rampline-network/ramp-bridge-api/database/models"
	"github.com/rampline-network/ramp-bridge-api/types"
)

const testUser = "0xAAA0000000000000000000000000000000000aaa"

type fakeStore struct {
	onramps  map[string]models.OnrampRequest
	offramps map[string]models.OfframpRegistration
	deposits map[string]models.Deposit // keyed by deposit_id
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		onramps:  map[string]models.OnrampRequest{},
		offramps: map[string]models.OfframpRegistration{},
		deposits: map[string]models.Deposit{},
	}
}

func (s *fakeStore) CreateOnrampRequest(ctx context.Context, req models.OnrampRequest) error {
	if _, ok := s.onramps[req.OnrampID]; ok {
		return fmt.Errorf("onramp_id %s: %w", req.OnrampID, types.ErrDuplicateKey)
	}
	s.onramps[req.OnrampID] = req
	return nil
}

func (s *fakeStore) GetOnrampRequest(ctx context.Context, onrampID string) (models.OnrampRequest, error) {
	req, ok := s.onramps[onrampID]
	if !ok {
		return models.OnrampRequest{}, fmt.Errorf("onramp_id %s: %w", onrampID, types.ErrNotFound)
	}
	return req, nil
}

func (s *fakeStore) CreateOfframpRegistration(ctx context.Context, reg models.OfframpRegistration) error {
	if _, ok := s.offramps[reg.OfframpID]; ok {
		return fmt.Errorf("offramp_id %s: %w", reg.OfframpID, types.ErrDuplicateKey)
	}
	s.offramps[reg.OfframpID] = reg
	return nil
}

func (s *fakeStore) CreateDeposit(ctx context.Context, deposit models.Deposit) error {
	for _, existing := range s.deposits {
		if existing.BankReference == deposit.BankReference && existing.OnrampID == deposit.OnrampID {
			return fmt.Errorf("deposit %s/%s: %w", deposit.BankReference, deposit.OnrampID, types.ErrDuplicateKey)
		}
	}
	s.deposits[deposit.DepositID] = deposit
	return nil
}

func (s *fakeStore) GetDepositByReference(ctx context.Context, bankReference, onrampID string) (models.Deposit, error) {
	for _, deposit := range s.deposits {
		if deposit.BankReference == bankReference && deposit.OnrampID == onrampID {
			return deposit, nil
		}
	}
	return models.Deposit{}, fmt.Errorf("deposit %s/%s: %w", bankReference, onrampID, types.ErrNotFound)
}

func (s *fakeStore) UpdateDepositStatus(ctx context.Context, depositID string, status types.OnrampStatus, settlementTx string) error {
	deposit, ok := s.deposits[depositID]
	if !ok {
		return fmt.Errorf("deposit_id %s: %w", depositID, types.ErrNotFound)
	}
	deposit.Status = string(status)
	deposit.SettlementTx = settlementTx
	s.deposits[depositID] = deposit
	return nil
}

func (s *fakeStore) ListUnsettledDeposits(ctx context.Context) ([]models.Deposit, error) {
	unsettled := []models.Deposit{}
	for _, deposit := range s.deposits {
		if deposit.Status != string(types.Settled) {
			unsettled = append(unsettled, deposit)
		}
	}
	return unsettled, nil
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
	return banking.VirtualAccount{
		AccountNumber: "9000000001",
		BankName:      "Test Bank",
		AccountName:   "TEST / " + userAddress,
	}, nil
}

func newTestService(store *fakeStore, settler *fakeSettler) *Service {
	return NewService(ServiceOpts{
		Store:    store,
		Settler:  settler,
		Provider: fakeProvider{},
		Decimals: 6,
	})
}

func TestInitiate_GeneratesDistinctIDs(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettler{txHash: "0x1"})

	idPattern := regexp.MustCompile(`^0x[0-9a-f]{64}$`)
	seen := make(map[string]struct{}, 10000)

	for i := 0; i < 10000; i++ {
		result, err := svc.Initiate(context.Background(), testUser)
		require.NoError(t, err)
		require.Regexp(t, idPattern, result.OnrampID)

		_, dup := seen[result.OnrampID]
		require.False(t, dup, "onrampId %s repeated", result.OnrampID)
		seen[result.OnrampID] = struct{}{}
	}

	assert.Len(t, store.onramps, 10000)
}

func TestInitiate_ReturnsVirtualAccount(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeSettler{})

	result, err := svc.Initiate(context.Background(), testUser)
	require.NoError(t, err)

	assert.Equal(t, "9000000001", result.VirtualAccount)
	assert.Equal(t, "Test Bank", result.BankName)
}

func TestInitiate_RejectsInvalidAddress(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeSettler{})

	for _, addr := range []string{"", "not-an-address", "0x123"} {
		_, err := svc.Initiate(context.Background(), addr)
		assert.ErrorIs(t, err, types.ErrInvalidInput, "address %q", addr)
	}
}

func TestRecordDeposit_SettlesAndScalesAmount(t *testing.T) {
	store := newFakeStore()
	settler := &fakeSettler{txHash: "0xfeed"}
	svc := newTestService(store, settler)

	initiated, err := svc.Initiate(context.Background(), testUser)
	require.NoError(t, err)

	result, err := svc.RecordDeposit(context.Background(), "B1", testUser, 50, initiated.OnrampID)
	require.NoError(t, err)
	require.NotEmpty(t, result.DepositID)
	assert.NotEqual(t, initiated.OnrampID, result.DepositID)
	assert.Equal(t, "0xfeed", result.SettlementTx)
	assert.Equal(t, 1, settler.calls)

	deposit := store.deposits[result.DepositID]
	assert.Equal(t, "50000000", deposit.Amount, "50 display units at 6 decimals")
	assert.Equal(t, string(types.Settled), deposit.Status)
	assert.Equal(t, "0xfeed", deposit.SettlementTx)
}

func TestRecordDeposit_UnknownOnrampPerformsNoSettlement(t *testing.T) {
	settler := &fakeSettler{txHash: "0x1"}
	svc := newTestService(newFakeStore(), settler)

	_, err := svc.RecordDeposit(context.Background(), "B1", testUser, 50,
		"0x1111111111111111111111111111111111111111111111111111111111111111")

	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Zero(t, settler.calls, "settlement must not be attempted")
}

func TestRecordDeposit_RejectsAddressMismatch(t *testing.T) {
	store := newFakeStore()
	settler := &fakeSettler{txHash: "0x1"}
	svc := newTestService(store, settler)

	initiated, err := svc.Initiate(context.Background(), testUser)
	require.NoError(t, err)

	other := "0xBBB0000000000000000000000000000000000bbb"
	_, err = svc.RecordDeposit(context.Background(), "B1", other, 50, initiated.OnrampID)

	assert.ErrorIs(t, err, types.ErrInvalidInput)
	assert.Zero(t, settler.calls)
}

func TestRecordDeposit_RejectsInvalidInput(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettler{})

	initiated, err := svc.Initiate(context.Background(), testUser)
	require.NoError(t, err)

	cases := []struct {
		name          string
		bankReference string
		userAddress   string
		amount        int64
		onrampID      string
	}{
		{"missing bank reference", "", testUser, 50, initiated.OnrampID},
		{"missing onramp id", "B1", testUser, 50, ""},
		{"bad address", "B1", "oops", 50, initiated.OnrampID},
		{"zero amount", "B1", testUser, 0, initiated.OnrampID},
		{"negative amount", "B1", testUser, -5, initiated.OnrampID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordDeposit(context.Background(), tc.bankReference, tc.userAddress, tc.amount, tc.onrampID)
			assert.ErrorIs(t, err, types.ErrInvalidInput)
		})
	}
}

func TestRecordDeposit_ReplayedWebhookSettlesOnce(t *testing.T) {
	store := newFakeStore()
	settler := &fakeSettler{txHash: "0xfeed"}
	svc := newTestService(store, settler)

	initiated, err := svc.Initiate(context.Background(), testUser)
	require.NoError(t, err)

	first, err := svc.RecordDeposit(context.Background(), "B1", testUser, 50, initiated.OnrampID)
	require.NoError(t, err)

	replay, err := svc.RecordDeposit(context.Background(), "B1", testUser, 50, initiated.OnrampID)
	require.NoError(t, err)

	assert.Equal(t, first.DepositID, replay.DepositID)
	assert.Equal(t, 1, settler.calls, "replay must not trigger a second settlement")
	assert.Len(t, store.deposits, 1)
}

func TestRecordDeposit_SettlementFailurePreservesRow(t *testing.T) {
	store := newFakeStore()
	settler := &fakeSettler{err: fmt.Errorf("node down: %w", types.ErrSettlementFailed)}
	svc := newTestService(store, settler)

	initiated, err := svc.Initiate(context.Background(), testUser)
	require.NoError(t, err)

	result, err := svc.RecordDeposit(context.Background(), "B1", testUser, 50, initiated.OnrampID)
	require.ErrorIs(t, err, types.ErrSettlementFailed)
	require.NotEmpty(t, result.DepositID)

	deposit, ok := store.deposits[result.DepositID]
	require.True(t, ok, "deposit row is the evidence of fiat receipt and must survive")
	assert.Equal(t, string(types.SettlementFailed), deposit.Status)
	assert.Empty(t, deposit.SettlementTx)
}

func TestRegisterOfframp(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettler{})

	offRampID, err := svc.RegisterOfframp(context.Background(), testUser, "0123456789")
	require.NoError(t, err)
	assert.Regexp(t, `^0x[0-9a-f]{64}$`, offRampID)

	reg := store.offramps[offRampID]
	assert.Equal(t, testUser, reg.UserAddress)
	assert.Equal(t, "0123456789", reg.BankAccount)

	_, err = svc.RegisterOfframp(context.Background(), testUser, "")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestRetryPendingSettlements(t *testing.T) {
	store := newFakeStore()
	failing := &fakeSettler{err: fmt.Errorf("node down: %w", types.ErrSettlementFailed)}
	svc := newTestService(store, failing)

	initiated, err := svc.Initiate(context.Background(), testUser)
	require.NoError(t, err)

	result, err := svc.RecordDeposit(context.Background(), "B1", testUser, 50, initiated.OnrampID)
	require.ErrorIs(t, err, types.ErrSettlementFailed)

	// The node is back; the startup pass resubmits under the same onrampId.
	recovered := &fakeSettler{txHash: "0xabc"}
	svc = newTestService(store, recovered)

	require.NoError(t, svc.RetryPendingSettlements(context.Background()))

	assert.Equal(t, 1, recovered.calls)
	deposit := store.deposits[result.DepositID]
	assert.Equal(t, string(types.Settled), deposit.Status)
	assert.Equal(t, "0xabc", deposit.SettlementTx)

	// Nothing left to retry.
	idle := &fakeSettler{}
	svc = newTestService(store, idle)
	require.NoError(t, svc.RetryPendingSettlements(context.Background()))
	assert.Zero(t, idle.calls)
}

func TestRetryPendingSettlements_UsesDisplayAmount(t *testing.T) {
	store := newFakeStore()
	store.deposits["d1"] = models.Deposit{
		DepositID:     "d1",
		BankReference: "B9",
		UserAddress:   testUser,
		Amount:        "1000000000", // 1000 display units at 6 decimals
		OnrampID:      "0x2222222222222222222222222222222222222222222222222222222222222222",
		Status:        string(types.SettlementFailed),
		CreatedAt:     time.Now().Unix(),
	}

	var gotAmount int64
	settler := &recordingSettler{txHash: "0xabc", onSettle: func(amount int64) { gotAmount = amount }}
	svc := NewService(ServiceOpts{Store: store, Settler: settler, Provider: fakeProvider{}, Decimals: 6})

	require.NoError(t, svc.RetryPendingSettlements(context.Background()))
	assert.Equal(t, int64(1000), gotAmount)
}

type recordingSettler struct {
	txHash   string
	onSettle func(amount int64)
}

func (r *recordingSettler) Settle(ctx context.Context, userAddress string, amount int64, onrampID string) (string, error) {
	if r.onSettle != nil {
		r.onSettle(amount)
	}
	return r.txHash, nil
}
