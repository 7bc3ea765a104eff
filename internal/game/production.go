package game

import (
	"time"

	"github.com/pixil98/go-rts/internal/storage"
)

// TrainingOrder is one queued unit-training job.
type TrainingOrder struct {
	Kind    storage.Identifier
	Elapsed time.Duration
	Total   time.Duration
}

// ProductionQueue is a FIFO of training orders. Only the head order
// accumulates time; later orders wait. When the head finishes, the
// queue holds it ready until a spawn consumes it.
type ProductionQueue struct {
	orders []*TrainingOrder
	ready  bool
}

func NewProductionQueue() *ProductionQueue {
	return &ProductionQueue{}
}

// Enqueue appends a training order for the given unit kind.
func (q *ProductionQueue) Enqueue(kind storage.Identifier, total time.Duration) {
	q.orders = append(q.orders, &TrainingOrder{Kind: kind, Total: total})
}

// Advance adds dt to the head order. While a finished order waits to be
// consumed, nothing progresses.
func (q *ProductionQueue) Advance(dt time.Duration) {
	if len(q.orders) == 0 || q.ready {
		return
	}

	head := q.orders[0]
	head.Elapsed += dt
	if head.Elapsed >= head.Total {
		q.ready = true
	}
}

// HasReady reports whether the head order has finished training.
func (q *ProductionQueue) HasReady() bool {
	return q.ready
}

// ConsumeReady pops the finished head order and returns its kind.
// Calling it when HasReady is false is a driver bug, not a game state;
// it panics rather than limping on.
func (q *ProductionQueue) ConsumeReady() storage.Identifier {
	if !q.ready {
		panic("ConsumeReady called with no finished order")
	}

	kind := q.orders[0].Kind
	q.orders = q.orders[1:]
	q.ready = false
	return kind
}

// ProgressFraction returns the head order's completion in [0, 1], or 0
// when the queue is empty. Display only.
func (q *ProductionQueue) ProgressFraction() float64 {
	if len(q.orders) == 0 {
		return 0
	}

	head := q.orders[0]
	if head.Total <= 0 {
		return 1
	}
	frac := float64(head.Elapsed) / float64(head.Total)
	if frac > 1 {
		return 1
	}
	return frac
}

// Len returns the number of queued orders, including a finished head.
func (q *ProductionQueue) Len() int {
	return len(q.orders)
}

// Orders returns a copy of the queue for display.
func (q *ProductionQueue) Orders() []TrainingOrder {
	out := make([]TrainingOrder, len(q.orders))
	for i, o := range q.orders {
		out[i] = *o
	}
	return out
}
