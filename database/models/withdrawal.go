package models

// Withdrawal is appended by the chain observer for every Withdrawal event
// emitted by the vault contract. Processed is flipped exactly once, by the
// fiat payout collaborator, never by the observer.
type Withdrawal struct {
	ID          string `json:"id" bson:"id"`
	UserAddress string `json:"user_address" bson:"user_address"`
	Amount      string `json:"amount" bson:"amount"` // token base units
	OfframpID   string `json:"offramp_id" bson:"offramp_id"`
	TxHash      string `json:"tx_hash" bson:"tx_hash"`
	BlockNumber uint64 `json:"block_number" bson:"block_number"`
	Processed   bool   `json:"processed" bson:"processed"`
	CreatedAt   int64  `json:"created_at" bson:"created_at"`
}
