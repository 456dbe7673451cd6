package service

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"go.uber.org/zap"
)

// LogWriter is a ResultWriter that only logs. It is used when no database is
// configured.
type LogWriter struct {
	logger *zap.Logger
}

// NewLogWriter returns a LogWriter.
func NewLogWriter(logger *zap.Logger) *LogWriter {
	return &LogWriter{logger: logger}
}

func (w *LogWriter) Start(context.Context) {}

func (w *LogWriter) Stop() {}

// Write logs the summary at Info and every result at Debug.
func (w *LogWriter) Write(ctx context.Context, record model.EpochRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, r := range record.Results {
		w.logger.Debug("transaction result",
			zap.Uint64("epoch", r.Epoch),
			zap.Uint32("position", r.Position),
			zap.String("txid", r.TxID),
			zap.String("status", string(r.Status)),
			zap.String("reason", r.Reason),
		)
	}
	w.logger.Info("epoch summary",
		zap.Uint64("epoch", record.Summary.Epoch),
		zap.Uint32("accepted", record.Summary.Accepted),
		zap.Uint32("rejected", record.Summary.Rejected),
		zap.Uint64("pool_version", record.Summary.PoolVersionAfter),
		zap.Int64("pool_value", record.Summary.PoolValue),
	)
	return nil
}
