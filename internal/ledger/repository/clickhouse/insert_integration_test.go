package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

func (s *RepositorySuite) TestInsertEpochSummaries() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	summaries := []model.EpochSummary{
		{Ledger: "scrooge", Epoch: 0, Candidates: 3, Accepted: 2, Rejected: 1, PoolVersionBefore: 2, PoolVersionAfter: 7, PoolSize: 3, PoolValue: 14, ProcessedAt: now},
		{Ledger: "scrooge", Epoch: 1, Candidates: 1, Accepted: 0, Rejected: 1, PoolVersionBefore: 7, PoolVersionAfter: 7, PoolSize: 3, PoolValue: 14, ProcessedAt: now},
	}

	s.metrics.EXPECT().Observe("insert_epoch_summaries", "scrooge", 2, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertEpochSummaries(s.testCtx, summaries))
	s.Equal(uint64(len(summaries)), s.countRows("ledger_epochs"))
}

func (s *RepositorySuite) TestInsertTransactionResults() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	results := []model.TransactionResult{
		{Ledger: "scrooge", Epoch: 0, Position: 0, TxID: "aa", Status: model.TransactionAccepted, InputCount: 1, OutputCount: 2, OutputValue: 9, ProcessedAt: now},
		{Ledger: "scrooge", Epoch: 0, Position: 1, TxID: "bb", Status: model.TransactionRejected, Reason: "missing_input", InputCount: 1, OutputCount: 1, OutputValue: 10, ProcessedAt: now},
	}

	s.metrics.EXPECT().Observe("insert_transaction_results", "scrooge", 2, gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertTransactionResults(s.testCtx, results))
	// Re-inserting the same epoch collapses onto the existing rows.
	s.Require().NoError(s.repo.InsertTransactionResults(s.testCtx, results))
	s.Equal(uint64(len(results)), s.countRows("ledger_transaction_results"))
}
