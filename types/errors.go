package types

import "errors"

// Error taxonomy shared across the service. Components wrap these with
// fmt.Errorf("...: %w", err) so the API boundary can map them with errors.Is.
var (
	// ErrInvalidInput - malformed or missing request fields
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound - a referenced correlation id or record does not exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey - identifier collision or webhook replay. Surfaced
	// distinctly from ErrInvalidInput so callers can treat replay specially.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrSettlementFailed - on-chain submission or confirmation failed. The
	// deposit row is preserved for retry, never rolled back.
	ErrSettlementFailed = errors.New("settlement failed")

	// ErrSettlementTimeout - confirmation wait exceeded the configured bound
	ErrSettlementTimeout = errors.New("settlement timed out")

	// ErrUpstreamUnavailable - banking provider or chain node unreachable
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
