package model

// Epoch is one batch of candidate transactions submitted together.
type Epoch struct {
	Number       uint64
	Transactions []*Transaction
}
