package models

// LastIndexedBlock tracks the observer's watermark so a restart resumes
// from where the previous run stopped instead of re-scanning the chain.
type LastIndexedBlock struct {
	Chain       string `json:"chain" bson:"chain"`
	BlockNumber uint64 `json:"block_number" bson:"block_number"`
}
