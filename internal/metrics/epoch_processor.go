// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	epochTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "epoch_processor",
		Name:      "transactions_total",
		Help:      "Count of candidate transactions by outcome and rejection reason.",
	}, []string{"ledger", "outcome", "reason"})

	epochDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "epoch_processor",
		Name:      "epoch_duration_seconds",
		Help:      "Duration of handling one epoch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"ledger"})

	epochSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "epoch_processor",
		Name:      "epoch_size",
		Help:      "Number of candidate transactions per epoch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"ledger"})

	epochAccepted = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "epoch_processor",
		Name:      "epoch_accepted",
		Help:      "Number of accepted transactions per epoch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"ledger"})

	poolSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "epoch_processor",
		Name:      "pool_size",
		Help:      "Number of unspent outputs after the last epoch.",
	}, []string{"ledger"})

	precheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "epoch_processor",
		Name:      "precheck_duration_seconds",
		Help:      "Duration of the parallel signature precheck.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"ledger", "status"})

	precheckInputs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "epoch_processor",
		Name:      "precheck_inputs_total",
		Help:      "Count of inputs verified ahead of the sequential pass.",
	}, []string{"ledger"})
)

// EpochProcessor tracks metrics for the epoch processor.
type EpochProcessor struct {
	ledger string
}

// NewEpochProcessor constructs an EpochProcessor collector for one ledger.
func NewEpochProcessor(ledger string) *EpochProcessor {
	if ledger == "" {
		ledger = "unknown"
	}
	return &EpochProcessor{ledger: ledger}
}

// ObserveTransaction counts one candidate. An empty reason means accepted.
func (m EpochProcessor) ObserveTransaction(reason string) {
	outcome := "accepted"
	if reason != "" {
		outcome = "rejected"
	}
	epochTransactionsTotal.WithLabelValues(m.ledger, outcome, reason).Inc()
}

// ObserveEpoch records the size, acceptance and duration of one epoch.
func (m EpochProcessor) ObserveEpoch(candidates, accepted, pool int, started time.Time) {
	epochDuration.WithLabelValues(m.ledger).Observe(time.Since(started).Seconds())
	epochSize.WithLabelValues(m.ledger).Observe(float64(candidates))
	epochAccepted.WithLabelValues(m.ledger).Observe(float64(accepted))
	poolSize.WithLabelValues(m.ledger).Set(float64(pool))
}

// ObservePrecheck records one parallel precheck run.
func (m EpochProcessor) ObservePrecheck(err error, inputs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	precheckDuration.WithLabelValues(m.ledger, status).Observe(time.Since(started).Seconds())
	precheckInputs.WithLabelValues(m.ledger).Add(float64(inputs))
}
