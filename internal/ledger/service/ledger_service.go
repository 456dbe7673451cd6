// Package service drives an epoch processor from a source of epochs and
// records what happened to every candidate.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/clock"
	"go.uber.org/zap"
)

// ErrNoMoreEpochs is returned by an EpochSource that is exhausted.
var ErrNoMoreEpochs = errors.New("no more epochs")

// LedgerService feeds epochs to the processor one at a time.
type LedgerService struct {
	ledger    string
	logger    *zap.Logger
	source    EpochSource
	processor EpochProcessor
	writer    ResultWriter
	metrics   LedgerServiceMetrics
	clock     clock.Clock
	interval  time.Duration
}

// NewLedgerService builds a LedgerService. interval is the pause between
// epochs; zero runs them back to back.
func NewLedgerService(
	ledger string,
	source EpochSource,
	processor EpochProcessor,
	writer ResultWriter,
	metrics LedgerServiceMetrics,
	interval time.Duration,
	logger *zap.Logger,
) (*LedgerService, error) {
	if source == nil {
		return nil, errors.New("epoch source is required")
	}
	if processor == nil {
		return nil, errors.New("epoch processor is required")
	}
	if writer == nil {
		return nil, errors.New("result writer is required")
	}
	if metrics == nil {
		return nil, errors.New("ledger service metrics is required")
	}

	return &LedgerService{
		ledger:    ledger,
		logger:    logger.With(zap.String("ledger", ledger)),
		source:    source,
		processor: processor,
		writer:    writer,
		metrics:   metrics,
		clock:     clock.Real{},
		interval:  interval,
	}, nil
}

// Run processes epochs until the source is exhausted or ctx is canceled.
// Exhaustion is a clean stop and returns nil.
func (s *LedgerService) Run(ctx context.Context) error {
	s.writer.Start(ctx)
	defer s.writer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.run(ctx)
		if errors.Is(err, ErrNoMoreEpochs) {
			s.logger.Info("epoch source exhausted")
			return nil
		}
		if err != nil {
			return err
		}

		if err := s.clock.Sleep(ctx, s.interval); err != nil {
			return err
		}
	}
}

func (s *LedgerService) run(ctx context.Context) error {
	started := time.Now()
	epoch, err := s.source.Next(ctx)
	if errors.Is(err, ErrNoMoreEpochs) {
		return err
	}
	if err != nil {
		s.metrics.ObserveEpoch(err, started)
		return fmt.Errorf("next epoch: %w", err)
	}

	report := s.processor.HandleEpochReport(ctx, epoch.Transactions)

	record, err := newEpochRecord(s.ledger, epoch.Number, report, s.clock.Now())
	if err != nil {
		s.metrics.ObserveEpoch(err, started)
		return fmt.Errorf("epoch %d record: %w", epoch.Number, err)
	}

	// The pool has already moved on; a lost record is reported, not retried.
	err = s.writer.Write(ctx, record)
	s.metrics.ObserveWrite(err)
	if err != nil {
		s.logger.Error("epoch results not recorded", zap.Uint64("epoch", epoch.Number), zap.Error(err))
	}

	s.metrics.ObserveEpoch(nil, started)
	s.logger.Info("epoch processed",
		zap.Uint64("epoch", epoch.Number),
		zap.Uint32("candidates", record.Summary.Candidates),
		zap.Uint32("accepted", record.Summary.Accepted),
		zap.Uint64("pool_size", record.Summary.PoolSize),
	)
	return nil
}
