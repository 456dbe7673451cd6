package service

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/processor"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/validator"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/safe"
)

func newEpochRecord(ledger string, epoch uint64, report processor.EpochReport, now time.Time) (model.EpochRecord, error) {
	candidates, err := safe.Uint32(len(report.Outcomes))
	if err != nil {
		return model.EpochRecord{}, fmt.Errorf("candidates: %w", err)
	}
	accepted, err := safe.Uint32(len(report.Accepted))
	if err != nil {
		return model.EpochRecord{}, fmt.Errorf("accepted: %w", err)
	}
	poolSize, err := safe.Uint64(report.PoolSize)
	if err != nil {
		return model.EpochRecord{}, fmt.Errorf("pool size: %w", err)
	}

	results := make([]model.TransactionResult, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		result, err := newTransactionResult(ledger, epoch, o, now)
		if err != nil {
			return model.EpochRecord{}, err
		}
		results = append(results, result)
	}

	return model.EpochRecord{
		Summary: model.EpochSummary{
			Ledger:            ledger,
			Epoch:             epoch,
			Candidates:        candidates,
			Accepted:          accepted,
			Rejected:          candidates - accepted,
			PoolVersionBefore: report.PoolVersionBefore,
			PoolVersionAfter:  report.PoolVersionAfter,
			PoolSize:          poolSize,
			PoolValue:         int64(report.PoolValue),
			ProcessedAt:       now,
		},
		Results: results,
	}, nil
}

func newTransactionResult(ledger string, epoch uint64, o processor.Outcome, now time.Time) (model.TransactionResult, error) {
	position, err := safe.Uint32(o.Position)
	if err != nil {
		return model.TransactionResult{}, fmt.Errorf("position %d: %w", o.Position, err)
	}

	result := model.TransactionResult{
		Ledger:      ledger,
		Epoch:       epoch,
		Position:    position,
		Status:      model.TransactionAccepted,
		ProcessedAt: now,
	}
	if !o.Accepted() {
		result.Status = model.TransactionRejected
		result.Reason = validator.Reason(o.Err)
	}
	if o.Tx == nil {
		return result, nil
	}

	if result.InputCount, err = safe.Uint32(o.Tx.NumInputs()); err != nil {
		return model.TransactionResult{}, fmt.Errorf("tx %s inputs: %w", o.Tx.TxID(), err)
	}
	if result.OutputCount, err = safe.Uint32(o.Tx.NumOutputs()); err != nil {
		return model.TransactionResult{}, fmt.Errorf("tx %s outputs: %w", o.Tx.TxID(), err)
	}
	result.TxID = o.Tx.TxID()
	// Rejected candidates may declare outputs whose sum overflows; those rows keep 0.
	if value, err := o.Tx.OutputValue(); err == nil {
		result.OutputValue = int64(value)
	}
	return result, nil
}
