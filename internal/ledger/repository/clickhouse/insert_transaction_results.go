package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

const insertTransactionResultsQuery = `
INSERT INTO ledger_transaction_results (
	ledger,
	epoch,
	position,
	txid,
	status,
	reason,
	input_count,
	output_count,
	output_value,
	processed_at
) VALUES`

// InsertTransactionResults stores per-candidate outcomes in ClickHouse.
func (r *Repository) InsertTransactionResults(ctx context.Context, results []model.TransactionResult) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction_results", firstResultLedger(results), len(results), err, start)
	}()

	if len(results) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionResultsQuery)
	if err != nil {
		return fmt.Errorf("prepare transaction results batch: %w", err)
	}
	defer func() {
		_ = batch.Close()
	}()

	for _, res := range results {
		if err = batch.Append(
			res.Ledger,
			res.Epoch,
			res.Position,
			res.TxID,
			string(res.Status),
			res.Reason,
			res.InputCount,
			res.OutputCount,
			res.OutputValue,
			res.ProcessedAt,
		); err != nil {
			return fmt.Errorf("append result %d/%d: %w", res.Epoch, res.Position, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction results: %w", err)
	}
	return nil
}

func firstResultLedger(results []model.TransactionResult) string {
	if len(results) == 0 {
		return ""
	}
	return results[0].Ledger
}
