package correlation

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_Format(t *testing.T) {
	id, err := NewID()
	require.NoError(t, err)

	assert.Regexp(t, `^0x[0-9a-f]{64}$`, id)
}

func TestNewID_Distinct(t *testing.T) {
	seen := make(map[string]struct{}, 10000)

	for i := 0; i < 10000; i++ {
		id, err := NewID()
		require.NoError(t, err)

		_, dup := seen[id]
		require.False(t, dup, "id %s repeated after %d draws", id, i)
		seen[id] = struct{}{}
	}
}

func TestToBytes32_RoundTrip(t *testing.T) {
	id, err := NewID()
	require.NoError(t, err)

	raw := ToBytes32(id)

	// Re-rendering the bytes must reproduce the identifier exactly.
	assert.Equal(t, id, common.BytesToHash(raw[:]).Hex())
}
