package service

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/batcher"
	"go.uber.org/zap"
)

const (
	recordBatcherFlushSize     = 100
	recordBatcherFlushInterval = 5 * time.Second
	resultFlushThreshold       = 10_000
)

// FlushError is returned when a flush fails after some result chunks were
// already stored. Summaries of a failed flush are never stored.
type FlushError struct {
	StoredResults int
	Err           error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("flush failed after storing %d results: %v", e.StoredResults, e.Err)
}

func (e *FlushError) Unwrap() error {
	return e.Err
}

// BatchWriter buffers epoch records and stores them through a ResultRepository.
type BatchWriter struct {
	repo    ResultRepository
	logger  *zap.Logger
	batcher *batcher.Batcher[model.EpochRecord]
}

// NewBatchWriter returns a BatchWriter. onError is called for every flush the
// repository rejects, with the number of records in that flush; it may be nil.
// A flush can fail after earlier result chunks were inserted, in which case
// err is a *FlushError carrying the stored row count.
func NewBatchWriter(repo ResultRepository, logger *zap.Logger, onError func(err error, records int)) *BatchWriter {
	w := &BatchWriter{
		repo:   repo,
		logger: logger,
	}

	w.batcher = batcher.New[model.EpochRecord](
		logger.Named("recordBatcher"),
		w.flush,
		batcher.WithFlushSize(recordBatcherFlushSize),
		batcher.WithFlushInterval(recordBatcherFlushInterval),
		batcher.WithErrorHandler(onError),
	)
	return w
}

func (w *BatchWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes everything still buffered.
func (w *BatchWriter) Stop() {
	w.batcher.Stop()
}

func (w *BatchWriter) Write(ctx context.Context, record model.EpochRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.batcher.Add(ctx, record)
}

// flush stores results before summaries so a summary row implies its results
// are present.
func (w *BatchWriter) flush(ctx context.Context, records []model.EpochRecord) error {
	summaries := make([]model.EpochSummary, 0, len(records))
	results := make([]model.TransactionResult, 0, len(records))

	stored := 0
	fail := func(err error) error {
		if stored == 0 {
			return err
		}
		return &FlushError{StoredResults: stored, Err: err}
	}

	for _, record := range records {
		summaries = append(summaries, record.Summary)
		results = append(results, record.Results...)
		if len(results) >= resultFlushThreshold {
			if err := w.repo.InsertTransactionResults(ctx, results); err != nil {
				return fail(err)
			}
			w.logger.Debug("InsertTransactionResults", zap.Int("count", len(results)))
			stored += len(results)
			results = results[:0]
		}
	}

	if len(results) > 0 {
		if err := w.repo.InsertTransactionResults(ctx, results); err != nil {
			return fail(err)
		}
		stored += len(results)
	}

	if err := w.repo.InsertEpochSummaries(ctx, summaries); err != nil {
		return fail(err)
	}
	return nil
}
