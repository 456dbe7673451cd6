package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerEpochsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ledger_service",
		Name:      "epochs_total",
		Help:      "Count of epochs pulled from the source.",
	}, []string{"ledger", "status"})

	ledgerEpochDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ledger_service",
		Name:      "epoch_duration_seconds",
		Help:      "Duration of fetching, processing and recording one epoch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"ledger", "status"})

	ledgerWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ledger_service",
		Name:      "result_writes_total",
		Help:      "Count of epoch result writes handed to the sink.",
	}, []string{"ledger", "status"})
)

// LedgerService tracks metrics for the epoch driving loop.
type LedgerService struct {
	ledger string
}

// NewLedgerService constructs a LedgerService collector.
func NewLedgerService(ledger string) *LedgerService {
	if ledger == "" {
		ledger = "unknown"
	}
	return &LedgerService{ledger: ledger}
}

// ObserveEpoch records the outcome of one loop iteration.
func (m LedgerService) ObserveEpoch(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ledgerEpochsTotal.WithLabelValues(m.ledger, status).Inc()
	ledgerEpochDuration.WithLabelValues(m.ledger, status).Observe(time.Since(started).Seconds())
}

// ObserveWrite records handing an epoch record to the result writer.
func (m LedgerService) ObserveWrite(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ledgerWritesTotal.WithLabelValues(m.ledger, status).Inc()
}
