package models

// OnrampRequest binds a user address to a banking-provider virtual account
// through a freshly generated onrampId. Immutable once created.
type OnrampRequest struct {
	OnrampID       string `json:"onramp_id" bson:"onramp_id"`
	UserAddress    string `json:"user_address" bson:"user_address"`
	VirtualAccount string `json:"virtual_account" bson:"virtual_account"`
	BankName       string `json:"bank_name" bson:"bank_name"`
	AccountName    string `json:"account_name" bson:"account_name"`
	CreatedAt      int64  `json:"created_at" bson:"created_at"`
}
