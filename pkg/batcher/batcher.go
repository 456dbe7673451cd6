// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once Stop has been called.
var ErrStopped = errors.New("batcher stopped")

const (
	defaultFlushSize     = 100
	defaultFlushInterval = time.Second
)

// Option configures a Batcher.
type Option func(*options)

type options struct {
	flushSize     int
	flushInterval time.Duration
	rps           int
	onError       func(err error, size int)
}

// WithFlushSize flushes as soon as size items are buffered.
func WithFlushSize(size int) Option {
	return func(o *options) { o.flushSize = size }
}

// WithFlushInterval flushes whatever is buffered every d.
func WithFlushInterval(d time.Duration) Option {
	return func(o *options) { o.flushInterval = d }
}

// WithRateLimit caps flushes per second. Zero or less means unlimited.
func WithRateLimit(rps int) Option {
	return func(o *options) { o.rps = rps }
}

// WithErrorHandler is called with the error and batch size of every failed flush.
func WithErrorHandler(fn func(err error, size int)) Option {
	return func(o *options) { o.onError = fn }
}

// Batcher buffers items and flushes them either by size or interval.
// Items still queued when the batcher stops are flushed before Stop returns.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	onError       func(err error, size int)
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, opts ...Option) *Batcher[T] {
	o := options{flushSize: defaultFlushSize, flushInterval: defaultFlushInterval}
	for _, opt := range opts {
		opt(&o)
	}
	if o.flushSize <= 0 {
		o.flushSize = defaultFlushSize
	}
	if o.flushInterval <= 0 {
		o.flushInterval = defaultFlushInterval
	}

	rl := ratelimit.NewUnlimited()
	if o.rps > 0 {
		rl = ratelimit.New(o.rps)
	}

	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		onError:       o.onError,
		itemsCh:       make(chan T, o.flushSize*2),
		flushSize:     o.flushSize,
		flushInterval: o.flushInterval,
		rl:            rl,
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop ends the loop after flushing queued items. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func(ctx context.Context) {
		for len(buf) > 0 {
			n := min(len(buf), b.flushSize)
			b.rl.Take()
			if err := b.flushCallback(ctx, buf[:n]); err != nil {
				b.logger.Error("batch not flushed", zap.Int("size", n), zap.Error(err))
				if b.onError != nil {
					b.onError(err, n)
				}
			} else {
				b.logger.Debug("batch flushed", zap.Int("size", n))
			}
			buf = append(buf[:0], buf[n:]...)
		}
	}

	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
			default:
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			flush(context.WithoutCancel(ctx))
			return

		case <-b.stop:
			drain()
			flush(ctx)
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
