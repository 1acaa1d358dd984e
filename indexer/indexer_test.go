package indexer

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	RampVaultContract "github.com/rampline-network/ramp-bridge-api/contracts/rampvault"
)

func withdrawalEvent(user string, amount int64, offRampID common.Hash, txHash common.Hash, index uint) *RampVaultContract.RampVaultWithdrawal {
	return &RampVaultContract.RampVaultWithdrawal{
		User:      common.HexToAddress(user),
		Amount:    big.NewInt(amount),
		OffRampId: offRampID,
		Raw: types.Log{
			TxHash:      txHash,
			Index:       index,
			BlockNumber: 100,
		},
	}
}

func TestWithdrawalRows_OneRowPerLog(t *testing.T) {
	offRampID := common.HexToHash("0x01")
	events := []*RampVaultContract.RampVaultWithdrawal{
		withdrawalEvent("0x0000000000000000000000000000000000000001", 10, offRampID, common.HexToHash("0xa1"), 0),
		withdrawalEvent("0x0000000000000000000000000000000000000002", 20, offRampID, common.HexToHash("0xa2"), 1),
		withdrawalEvent("0x0000000000000000000000000000000000000003", 30, offRampID, common.HexToHash("0xa3"), 2),
	}

	rows := withdrawalRows(events)
	require.Len(t, rows, 3)

	seen := map[string]struct{}{}
	for i, row := range rows {
		assert.False(t, row.Processed, "rows must start unprocessed")
		assert.Equal(t, events[i].User.Hex(), row.UserAddress)
		assert.Equal(t, events[i].Amount.String(), row.Amount)
		assert.Equal(t, offRampID.Hex(), row.OfframpID)
		assert.Equal(t, uint64(100), row.BlockNumber)

		_, dup := seen[row.ID]
		assert.False(t, dup, "row ids must be distinct")
		seen[row.ID] = struct{}{}
	}
}

func TestWithdrawalRows_EmptyBatch(t *testing.T) {
	rows := withdrawalRows(nil)
	assert.Empty(t, rows)
}

func TestBridgeRows(t *testing.T) {
	events := []*RampVaultContract.RampVaultBridge{
		{
			User:               common.HexToAddress("0x0000000000000000000000000000000000000004"),
			Amount:             big.NewInt(500),
			DestinationChainId: big.NewInt(8453),
			Raw: types.Log{
				TxHash:      common.HexToHash("0xb1"),
				Index:       0,
				BlockNumber: 7,
			},
		},
	}

	rows := bridgeRows(events)
	require.Len(t, rows, 1)

	assert.Equal(t, "8453", rows[0].DestinationChainID)
	assert.Equal(t, "500", rows[0].Amount)
	assert.False(t, rows[0].Processed)
}

func TestRecordID_Deterministic(t *testing.T) {
	txHash := common.HexToHash("0xc1")

	first := recordID(txHash, 3)
	second := recordID(txHash, 3)
	assert.Equal(t, first, second, "same log position must derive the same id")
	assert.Regexp(t, `^0x[0-9a-f]{64}$`, first)

	// Two logs in the same transaction get distinct ids.
	assert.NotEqual(t, first, recordID(txHash, 4))
	// Same index in a different transaction too.
	assert.NotEqual(t, first, recordID(common.HexToHash("0xc2"), 3))
}
