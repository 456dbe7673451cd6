package model

import "time"

// TransactionStatus is the outcome of a candidate transaction within an epoch.
type TransactionStatus string

var (
	// TransactionAccepted marks a transaction applied to the pool.
	TransactionAccepted TransactionStatus = "accepted"
	// TransactionRejected marks a transaction dropped without effect.
	TransactionRejected TransactionStatus = "rejected"
)

// TransactionResult is one row of the epoch audit trail.
type TransactionResult struct {
	Ledger      string
	Epoch       uint64
	Position    uint32
	TxID        string
	Status      TransactionStatus
	Reason      string
	InputCount  uint32
	OutputCount uint32
	OutputValue int64
	ProcessedAt time.Time
}

// EpochSummary aggregates the outcome of one HandleEpoch call.
type EpochSummary struct {
	Ledger            string
	Epoch             uint64
	Candidates        uint32
	Accepted          uint32
	Rejected          uint32
	PoolVersionBefore uint64
	PoolVersionAfter  uint64
	PoolSize          uint64
	PoolValue         int64
	ProcessedAt       time.Time
}

// EpochRecord groups a summary with its per-transaction results for batch insertion.
type EpochRecord struct {
	Summary EpochSummary
	Results []TransactionResult
}
