// Package processor advances a UTXO pool one epoch at a time by applying the
// valid transactions of each batch.
package processor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/crypto"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/pool"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/validator"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/workerpool"
	"go.uber.org/zap"
)

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Processor) { p.logger = logger }
}

// WithMetrics sets the metrics collector.
func WithMetrics(metrics Metrics) Option {
	return func(p *Processor) { p.metrics = metrics }
}

// WithPrecheckWorkers enables verifying signatures of every candidate in
// parallel before the sequential pass. It only pays off when the verifier
// caches results, and the verifier must be safe for concurrent use.
func WithPrecheckWorkers(n int) Option {
	return func(p *Processor) { p.precheckWorkers = n }
}

// Processor owns one UTXO pool and threads it through successive epochs.
type Processor struct {
	mu              sync.Mutex
	pool            *pool.Pool
	verifier        crypto.Verifier
	validator       *validator.Validator
	metrics         Metrics
	logger          *zap.Logger
	precheckWorkers int
}

// New returns a Processor whose pool is a copy of seed; later changes to seed
// are not observed.
func New(seed *pool.Pool, verifier crypto.Verifier, opts ...Option) (*Processor, error) {
	if seed == nil {
		return nil, errors.New("seed pool is required")
	}
	if verifier == nil {
		return nil, errors.New("signature verifier is required")
	}

	p := &Processor{
		pool:      seed.Copy(),
		verifier:  verifier,
		validator: validator.New(verifier),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// IsValidTx checks tx against the current pool without changing it.
func (p *Processor) IsValidTx(tx *model.Transaction) bool {
	return p.CheckTx(tx) == nil
}

// CheckTx is IsValidTx returning the violated rule.
func (p *Processor) CheckTx(tx *model.Transaction) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.validator.Check(tx, p.pool)
}

// HandleEpoch applies the valid subset of candidates and returns it in
// acceptance order.
func (p *Processor) HandleEpoch(ctx context.Context, candidates []*model.Transaction) []*model.Transaction {
	return p.HandleEpochReport(ctx, candidates).Accepted
}

// HandleEpochReport walks candidates once, left to right. Each candidate is
// validated against the pool as left by the candidates before it; a valid one
// is applied immediately, so a later candidate spending the same output fails
// and a later candidate spending a freshly created output can succeed.
// Rejections never stop the walk and leave the pool untouched.
func (p *Processor) HandleEpochReport(ctx context.Context, candidates []*model.Transaction) EpochReport {
	p.mu.Lock()
	defer p.mu.Unlock()

	started := time.Now()
	report := EpochReport{
		Outcomes:          make([]Outcome, 0, len(candidates)),
		PoolVersionBefore: p.pool.Version(),
	}

	p.precheck(ctx, candidates)

	for i, tx := range candidates {
		err := p.validator.Check(tx, p.pool)
		report.Outcomes = append(report.Outcomes, Outcome{Position: i, Tx: tx, Err: err})
		p.observeTransaction(err)
		if err != nil {
			p.logger.Debug("transaction rejected",
				zap.Int("position", i),
				zap.String("reason", validator.Reason(err)),
				zap.Error(err),
			)
			continue
		}

		p.apply(tx)
		report.Accepted = append(report.Accepted, tx)
	}

	report.PoolVersionAfter = p.pool.Version()
	report.PoolSize = p.pool.Len()
	if total, err := p.pool.Total(); err != nil {
		p.logger.Warn("pool value out of range", zap.Error(err))
	} else {
		report.PoolValue = total
	}

	p.logger.Info("epoch handled",
		zap.Int("candidates", len(candidates)),
		zap.Int("accepted", len(report.Accepted)),
		zap.Int("pool_size", report.PoolSize),
		zap.Stringer("pool_value", report.PoolValue),
	)
	if p.metrics != nil {
		p.metrics.ObserveEpoch(len(candidates), len(report.Accepted), report.PoolSize, started)
	}
	return report
}

// Snapshot returns a copy of the current pool.
func (p *Processor) Snapshot() *pool.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pool.Copy()
}

// apply consumes the inputs of an already validated tx and creates its outputs.
func (p *Processor) apply(tx *model.Transaction) {
	for i := 0; i < tx.NumInputs(); i++ {
		p.pool.Remove(tx.Input(i).UTXO())
	}
	for i := 0; i < tx.NumOutputs(); i++ {
		p.pool.Add(tx.OutputUTXO(i), tx.Output(i))
	}
}

type signatureCheck struct {
	address   model.Address
	message   []byte
	signature []byte
}

// precheck verifies, in parallel, every input whose output is already in the
// pool. Results are discarded here; a caching verifier keeps them for the
// sequential pass. Inputs spending outputs created within this epoch are left
// to the sequential pass.
func (p *Processor) precheck(ctx context.Context, candidates []*model.Transaction) {
	if p.precheckWorkers <= 0 || len(candidates) == 0 {
		return
	}

	var checks []signatureCheck
	for _, tx := range candidates {
		if tx == nil {
			continue
		}
		for i := 0; i < tx.NumInputs(); i++ {
			in := tx.Input(i)
			spent, err := p.pool.Get(in.UTXO())
			if err != nil {
				continue
			}
			msg, err := tx.SignableBytes(i)
			if err != nil {
				continue
			}
			checks = append(checks, signatureCheck{address: spent.Address, message: msg, signature: in.Signature})
		}
	}

	started := time.Now()
	err := workerpool.Process(ctx, p.precheckWorkers, checks, func(_ context.Context, c signatureCheck) error {
		p.verifier.Verify(c.address, c.message, c.signature)
		return nil
	})
	if err != nil {
		p.logger.Warn("signature precheck interrupted", zap.Error(err))
	}
	if p.metrics != nil {
		p.metrics.ObservePrecheck(err, len(checks), started)
	}
}

func (p *Processor) observeTransaction(err error) {
	if p.metrics == nil {
		return
	}
	p.metrics.ObserveTransaction(validator.Reason(err))
}
