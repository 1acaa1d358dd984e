package models

type OfframpRegistration struct {
	OfframpID   string `json:"offramp_id" bson:"offramp_id"`
	UserAddress string `json:"user_address" bson:"user_address"`
	BankAccount string `json:"bank_account" bson:"bank_account"`
	CreatedAt   int64  `json:"created_at" bson:"created_at"`
}
