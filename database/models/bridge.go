package models

type Bridge struct {
	ID                 string `json:"id" bson:"id"`
	UserAddress        string `json:"user_address" bson:"user_address"`
	Amount             string `json:"amount" bson:"amount"` // token base units
	DestinationChainID string `json:"destination_chain_id" bson:"destination_chain_id"`
	TxHash             string `json:"tx_hash" bson:"tx_hash"`
	BlockNumber        uint64 `json:"block_number" bson:"block_number"`
	Processed          bool   `json:"processed" bson:"processed"`
	CreatedAt          int64  `json:"created_at" bson:"created_at"`
}
