package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/prismatech/marketing-dashboard/internal/api/metrics"
	"github.com/prismatech/marketing-dashboard/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Sink receives notices from the dispatcher workers.
type Sink interface {
	Deliver(ctx context.Context, notice domain.Notice) error
}

// Dispatcher routes notices to a fixed set of workers using consistent
// hashing on the scope, so one client's notices arrive in order.
type Dispatcher struct {
	workers []chan domain.Notice
	sinks   []Sink
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger, sinks ...Sink) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Notice, numWorkers),
		sinks:   sinks,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Notice, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// Wait blocks until they have.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() { d.wg.Wait() }

// Notify enqueues a notice without blocking. When the worker's buffer is
// full the notice is dropped.
func (d *Dispatcher) Notify(notice domain.Notice) {
	idx := d.shardIndex(notice.Scope)
	select {
	case d.workers[idx] <- notice:
		metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("scope", notice.Scope).Str("title", notice.Title).Msg("notification queue full, dropping")
	}
}

// shardIndex maps a scope deterministically to a worker index.
func (d *Dispatcher) shardIndex(scope string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(scope))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Notice) {
	defer d.wg.Done()
	depth := metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(id))

	for {
		select {
		case <-ctx.Done():
			return
		case notice, ok := <-ch:
			if !ok {
				return
			}
			depth.Dec()
			d.deliver(ctx, id, notice)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, id int, notice domain.Notice) {
	result := "delivered"
	for _, sink := range d.sinks {
		if err := sink.Deliver(ctx, notice); err != nil {
			result = "failed"
			d.log.Error().Err(err).
				Str("scope", notice.Scope).
				Int("worker_id", id).
				Msg("notification delivery failed")
		}
	}
	metrics.NotificationsTotal.WithLabelValues(result).Inc()
}
