package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/processor"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	EpochSource interface {
		Next(ctx context.Context) (model.Epoch, error)
	}
	EpochProcessor interface {
		HandleEpochReport(ctx context.Context, candidates []*model.Transaction) processor.EpochReport
	}
	ResultWriter interface {
		Start(ctx context.Context)
		Stop()
		Write(ctx context.Context, record model.EpochRecord) error
	}
	ResultRepository interface {
		InsertEpochSummaries(ctx context.Context, summaries []model.EpochSummary) error
		InsertTransactionResults(ctx context.Context, results []model.TransactionResult) error
	}
	LedgerServiceMetrics interface {
		ObserveEpoch(err error, started time.Time)
		ObserveWrite(err error)
	}
)
