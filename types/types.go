package types

// OnrampStatus represents the different states an onramp lifecycle can be in
type OnrampStatus string

const (
	// Initiated - onramp request exists, no fiat deposit reported yet
	Initiated OnrampStatus = "INITIATED"

	// DepositRecorded - fiat deposit persisted, settlement not yet confirmed
	DepositRecorded OnrampStatus = "RECORDED"

	// Settled - the on-chain settlement transaction has been confirmed
	Settled OnrampStatus = "SETTLED"

	// SettlementFailed - settlement submission or confirmation failed; the
	// deposit row is kept as evidence of fiat receipt and is eligible for
	// resubmission under the same onrampId
	SettlementFailed OnrampStatus = "SETTLEMENT_FAILED"
)
