package models

// Deposit records a confirmed fiat transfer reported by the banking
// provider. The row is written before settlement is attempted and is never
// deleted: it is the durable evidence of fiat receipt even when the
// on-chain settlement fails. Status and SettlementTx are the only fields
// that change after insertion.
type Deposit struct {
	DepositID     string `json:"deposit_id" bson:"deposit_id"`
	BankReference string `json:"bank_reference" bson:"bank_reference"`
	UserAddress   string `json:"user_address" bson:"user_address"`
	Amount        string `json:"amount" bson:"amount"` // token base units
	OnrampID      string `json:"onramp_id" bson:"onramp_id"`
	Status        string `json:"status" bson:"status"`
	SettlementTx  string `json:"settlement_tx,omitempty" bson:"settlement_tx,omitempty"`
	CreatedAt     int64  `json:"created_at" bson:"created_at"`
}
