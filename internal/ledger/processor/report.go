package processor

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// Outcome is the verdict for the candidate at Position in the submitted batch.
// Err is nil for accepted transactions.
type Outcome struct {
	Position int
	Tx       *model.Transaction
	Err      error
}

// Accepted reports whether the candidate was applied.
func (o Outcome) Accepted() bool {
	return o.Err == nil
}

// EpochReport describes one HandleEpochReport call.
type EpochReport struct {
	// Accepted holds applied transactions in acceptance order.
	Accepted []*model.Transaction
	// Outcomes has one entry per candidate in batch order.
	Outcomes []Outcome

	PoolVersionBefore uint64
	PoolVersionAfter  uint64
	PoolSize          int

	// PoolValue is zero when the pool total does not fit in an int64.
	PoolValue btcutil.Amount
}

// Rejected returns the outcomes of candidates that were dropped.
func (r EpochReport) Rejected() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.Accepted() {
			out = append(out, o)
		}
	}
	return out
}
