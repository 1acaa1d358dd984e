// Package correlation generates the opaque identifiers that bind an
// off-chain banking action to an on-chain transaction argument. The vault
// contract treats them as authorization tags, so they are drawn from a
// cryptographically strong 256-bit space, never supplied by callers.
package correlation

import (
	"crypto/rand"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// NewID returns a fresh 256-bit identifier rendered as 0x-prefixed,
// fixed-width hex, matching the contract's bytes32 encoding. The store's
// unique index is the backstop against the negligible collision chance.
func NewID() (string, error) {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return common.BytesToHash(buf[:]).Hex(), nil
}

// ToBytes32 converts a stored identifier back to the contract's bytes32
// argument form.
func ToBytes32(id string) [32]byte {
	return common.HexToHash(id)
}
