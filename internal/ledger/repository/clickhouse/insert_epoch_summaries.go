package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

const insertEpochSummariesQuery = `
INSERT INTO ledger_epochs (
	ledger,
	epoch,
	candidates,
	accepted,
	rejected,
	pool_version_before,
	pool_version_after,
	pool_size,
	pool_value,
	processed_at
) VALUES`

// InsertEpochSummaries stores epoch summaries in ClickHouse.
func (r *Repository) InsertEpochSummaries(ctx context.Context, summaries []model.EpochSummary) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_epoch_summaries", firstSummaryLedger(summaries), len(summaries), err, start)
	}()

	if len(summaries) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertEpochSummariesQuery)
	if err != nil {
		return fmt.Errorf("prepare epoch summaries batch: %w", err)
	}
	defer func() {
		_ = batch.Close()
	}()

	for _, s := range summaries {
		if err = batch.Append(
			s.Ledger,
			s.Epoch,
			s.Candidates,
			s.Accepted,
			s.Rejected,
			s.PoolVersionBefore,
			s.PoolVersionAfter,
			s.PoolSize,
			s.PoolValue,
			s.ProcessedAt,
		); err != nil {
			return fmt.Errorf("append epoch summary %d: %w", s.Epoch, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert epoch summaries: %w", err)
	}
	return nil
}

func firstSummaryLedger(summaries []model.EpochSummary) string {
	if len(summaries) == 0 {
		return ""
	}
	return summaries[0].Ledger
}
