// Package transitq provides a sharded work queue for visitor status
// transitions. It guarantees FIFO order per key (visitor ID) and admits at
// most one queued-or-running job per key at a time, so a rapid duplicate
// trigger cannot produce two transition requests for the same visitor.
//
// Jobs run exactly once; retry policy belongs to the caller, which knows
// whether the underlying request is idempotent.
package transitq

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Config sizes the executor. Zero values get sane defaults.
type Config struct {
	Shards         int
	QueueSize      int
	EnqueueTimeout time.Duration
	// ErrorHandler, when set, observes every job error. Must not panic.
	ErrorHandler func(error)
}

type queuedJob struct {
	ctx context.Context
	key string
	job Job
}

// Executor runs Jobs on worker goroutines partitioned by a stable hash of
// the key. FIFO ordering holds within a shard; different keys may proceed in
// parallel.
type Executor struct {
	cfg    Config
	queues []chan queuedJob

	mu       sync.Mutex
	inflight map[string]struct{}

	done   chan struct{}
	closed uint32

	wg sync.WaitGroup
}

// New constructs the executor and starts its shard workers.
func New(cfg Config) *Executor {
	if cfg.Shards <= 0 {
		cfg.Shards = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.EnqueueTimeout <= 0 {
		cfg.EnqueueTimeout = 100 * time.Millisecond
	}

	e := &Executor{
		cfg:      cfg,
		queues:   make([]chan queuedJob, cfg.Shards),
		inflight: make(map[string]struct{}),
		done:     make(chan struct{}),
	}
	for i := 0; i < cfg.Shards; i++ {
		ch := make(chan queuedJob, cfg.QueueSize)
		e.queues[i] = ch
		e.wg.Add(1)
		go e.runWorker(i, ch)
	}
	return e
}

// Submit enqueues job for the shard derived from key.
//
//   - Returns ErrInFlight if a job for key is already queued or running.
//   - Returns ErrClosed if the executor is stopped.
//   - Returns *QueueFullError if the shard stays full past EnqueueTimeout.
//   - Returns ctx.Err() if the caller's context is cancelled first.
func (e *Executor) Submit(ctx context.Context, key string, job Job) error {
	if atomic.LoadUint32(&e.closed) == 1 {
		return ErrClosed
	}
	select {
	case <-e.done:
		return ErrClosed
	default:
	}

	shard := e.shardFor(key)

	if !e.acquire(key) {
		duplicatesTotal.WithLabelValues(labelFor(shard)).Inc()
		return ErrInFlight
	}
	return e.enqueue(ctx, shard, key, job)
}

// enqueue places an already-acquired key's job on the shard's channel. On
// any failure the key is released so the caller sees a clean state.
func (e *Executor) enqueue(ctx context.Context, shard int, key string, job Job) error {
	qj := queuedJob{ctx: ctx, key: key, job: job}
	ch := e.queues[shard]

	timer := time.NewTimer(e.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case ch <- qj:
		submissionsTotal.WithLabelValues(labelFor(shard)).Inc()
		queueDepth.WithLabelValues(labelFor(shard)).Set(float64(len(ch)))
		return nil

	case <-e.done:
		e.release(key)
		return ErrClosed

	case <-ctx.Done():
		e.release(key)
		return ctx.Err()

	case <-timer.C:
		e.release(key)
		queueFullTotal.WithLabelValues(labelFor(shard)).Inc()
		return &QueueFullError{Shard: shard, Length: len(ch), Capacity: cap(ch)}
	}
}

// InFlight reports whether a job for key is currently queued or running.
func (e *Executor) InFlight(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.inflight[key]
	return ok
}

// Barrier enqueues a no-op job on key's shard and waits until it runs,
// guaranteeing every job submitted for that shard beforehand has completed.
// The barrier uses a synthetic in-flight key so it never collides with a
// pending job for key itself. Intended for tests and shutdown sequencing.
func (e *Executor) Barrier(ctx context.Context, key string) error {
	if atomic.LoadUint32(&e.closed) == 1 {
		return ErrClosed
	}

	done := make(chan struct{})
	j := JobFunc(func(context.Context) error {
		close(done)
		return nil
	})

	syntheticKey := fmt.Sprintf("\x00barrier:%p", &done)
	if !e.acquire(syntheticKey) {
		return ErrInFlight
	}
	if err := e.enqueue(ctx, e.shardFor(key), syntheticKey, j); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Stop signals every worker to finish draining its queue, waits for them,
// and returns. Idempotent and safe for concurrent use.
func (e *Executor) Stop() {
	if !atomic.CompareAndSwapUint32(&e.closed, 0, 1) {
		return
	}
	close(e.done)
	e.wg.Wait()
	log.Debug().Msg("transitq: executor stopped, queues drained")
}

// Close lets Executor satisfy io.Closer.
func (e *Executor) Close() error {
	e.Stop()
	return nil
}

func (e *Executor) acquire(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.inflight[key]; ok {
		return false
	}
	e.inflight[key] = struct{}{}
	return true
}

func (e *Executor) release(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inflight, key)
}

func (e *Executor) runWorker(idx int, ch <-chan queuedJob) {
	defer e.wg.Done()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Int("shard", idx).Msg("transitq: worker panic")
		}
	}()

	label := labelFor(idx)

	for {
		select {
		case qj := <-ch:
			e.runOne(qj, label)
			queueDepth.WithLabelValues(label).Set(float64(len(ch)))

		case <-e.done:
			// Drain remaining jobs, preserving FIFO, then exit.
			for {
				select {
				case qj := <-ch:
					e.runOne(qj, label)
				default:
					queueDepth.WithLabelValues(label).Set(0)
					return
				}
			}
		}
	}
}

func (e *Executor) runOne(qj queuedJob, label string) {
	defer e.release(qj.key)
	if qj.job == nil {
		return
	}

	// A cancelled job must not stall the shard or run at all.
	select {
	case <-qj.ctx.Done():
		e.safeHandleError(qj.ctx.Err())
		return
	default:
	}

	start := time.Now()
	err := qj.job.Run(qj.ctx)
	runDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	if err != nil {
		e.safeHandleError(err)
	}
}

func (e *Executor) safeHandleError(err error) {
	if err == nil || e.cfg.ErrorHandler == nil {
		return
	}
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("transitq: error handler panic")
			}
		}()
		e.cfg.ErrorHandler(err)
	}()
}

func (e *Executor) shardFor(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % e.cfg.Shards
}
