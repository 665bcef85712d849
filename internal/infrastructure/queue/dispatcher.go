package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/washline/laundry-system/internal/api/metrics"
	"github.com/washline/laundry-system/internal/core/domain"
	"github.com/washline/laundry-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes order audit events to a fixed set of workers using
// consistent hashing on the order id, guaranteeing per-order event ordering.
type Dispatcher struct {
	workers  []chan domain.OrderEvent
	recorder ports.EventRecorder
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder ports.EventRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan domain.OrderEvent, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.OrderEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// or when Stop closes their channels.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Stop closes the worker channels and blocks until every queued event has
// been handed to the recorder. Call it only once no producer can Enqueue
// anymore, i.e. after the HTTP server has finished its in-flight requests.
func (d *Dispatcher) Stop() {
	for _, ch := range d.workers {
		close(ch)
	}
	d.wg.Wait()
}

// Enqueue sends an event to the worker responsible for its order id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event domain.OrderEvent) {
	i := d.shardIndex(event.OrderID)
	d.workers[i] <- event
	metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps an order id deterministically to a worker index.
func (d *Dispatcher) shardIndex(orderID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(orderID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.OrderEvent) {
	defer d.wg.Done()

	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.recorder.Record(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("order_id", event.OrderID).
					Int("worker_id", id).
					Msg("audit event write failed")
			}
			metrics.EventsQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
