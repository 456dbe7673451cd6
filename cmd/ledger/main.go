// Command ledger replays a scenario file through the epoch processor and
// prints the resulting pool.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/crypto"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/pool"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/processor"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/scenario"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/service"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Scenario        string        `long:"scenario" env:"LEDGER_SCENARIO" description:"path to a YAML scenario" required:"true"`
	Ledger          string        `long:"ledger" env:"LEDGER_NAME" description:"ledger name used in logs, metrics and stored results" default:"scrooge"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"LEDGER_CLICKHOUSE_DSN" description:"ClickHouse DSN for epoch results; empty logs them instead"`
	MetricsAddr     string        `long:"metrics-addr" env:"LEDGER_METRICS_ADDR" description:"address for metrics server; empty disables it" default:":2112"`
	PrecheckWorkers int           `long:"precheck-workers" env:"LEDGER_PRECHECK_WORKERS" description:"goroutines verifying signatures ahead of each epoch; 0 disables" default:"0"`
	SigCacheSize    uint64        `long:"sig-cache-size" env:"LEDGER_SIG_CACHE_SIZE" description:"verified signature cache entries; 0 disables the cache" default:"10000"`
	EpochInterval   time.Duration `long:"epoch-interval" env:"LEDGER_EPOCH_INTERVAL" description:"pause between epochs" default:"0s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledger failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	sc, err := scenario.Load(cfg.Scenario)
	if err != nil {
		return err
	}
	logger.Info("scenario loaded",
		zap.String("scenario", sc.Name()),
		zap.Int("seed_outputs", sc.Seed().Len()),
		zap.Int("epochs", len(sc.Epochs())),
	)

	var verifier crypto.Verifier = crypto.NewECDSAVerifier()
	if cfg.SigCacheSize > 0 {
		verifier = crypto.NewCachingVerifier(verifier, cfg.SigCacheSize, 0)
	}

	proc, err := processor.New(sc.Seed(), verifier,
		processor.WithLogger(logger.Named("processor")),
		processor.WithMetrics(metrics.NewEpochProcessor(cfg.Ledger)),
		processor.WithPrecheckWorkers(cfg.PrecheckWorkers),
	)
	if err != nil {
		return fmt.Errorf("init processor: %w", err)
	}

	var failedFlushes atomic.Int64
	var writer service.ResultWriter = service.NewLogWriter(logger.Named("results"))
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close repository", zap.Error(err))
			}
		}()
		writer = service.NewBatchWriter(repo, logger.Named("batchWriter"), func(err error, records int) {
			failedFlushes.Add(1)
			var flushErr *service.FlushError
			if errors.As(err, &flushErr) {
				logger.Warn("partially stored epoch records",
					zap.Int("records", records),
					zap.Int("stored_results", flushErr.StoredResults),
				)
			}
		})
	}

	svc, err := service.NewLedgerService(
		cfg.Ledger,
		sc,
		proc,
		writer,
		metrics.NewLedgerService(cfg.Ledger),
		cfg.EpochInterval,
		logger,
	)
	if err != nil {
		return err
	}
	if err := svc.Run(ctx); err != nil {
		return err
	}

	if c, ok := verifier.(*crypto.CachingVerifier); ok {
		hits, misses := c.Stats()
		logger.Info("signature cache", zap.Uint64("hits", hits), zap.Uint64("misses", misses))
	}
	logPool(logger.Named("pool"), sc, proc.Snapshot())

	if n := failedFlushes.Load(); n > 0 {
		return fmt.Errorf("%d result batches were not stored", n)
	}
	return nil
}

func logPool(logger *zap.Logger, sc *scenario.Scenario, p *pool.Pool) {
	for _, id := range p.UTXOs() {
		out, err := p.Get(id)
		if err != nil {
			continue
		}
		name, ok := sc.TxName(id.TxHash)
		if !ok {
			name = id.TxHash.String()
		}
		logger.Info("unspent output",
			zap.String("tx", name),
			zap.Uint32("index", id.Index),
			zap.String("owner", out.Address.Short()),
			zap.Stringer("value", out.Value),
		)
	}
	total, err := p.Total()
	if err != nil {
		logger.Warn("final pool value out of range", zap.Error(err))
	}
	logger.Info("final pool", zap.Int("size", p.Len()), zap.Stringer("total", total), zap.Uint64("version", p.Version()))
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
