// ABOUTME: Unbounded FIFO event queue between the pump and Next callers.
// ABOUTME: Push never blocks; Pop suspends on a context until an event or close.

package session

import (
	"context"
	"errors"
	"sync"
)

// ErrQueueClosed is returned by Pop once the queue is closed and drained.
var ErrQueueClosed = errors.New("session: event queue closed")

// queue is an unbounded FIFO. The producing pump must never block on a
// slow consumer, so capacity grows as needed under a mutex and Pop waits
// on a notification channel.
type queue struct {
	mu     sync.Mutex
	items  []Event
	notify chan struct{}
	closed bool
}

func newQueue() *queue {
	return &queue{notify: make(chan struct{}, 1)}
}

// Push appends ev. It never blocks. Pushes after Close are dropped.
func (q *queue) Push(ev Event) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, ev)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Pop removes and returns the oldest event, waiting until one is
// available. Returns ctx.Err() on cancellation and ErrQueueClosed once
// the queue is closed and empty. Queued events drain before close is
// observed.
func (q *queue) Pop(ctx context.Context) (Event, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			ev := q.items[0]
			q.items = q.items[1:]
			more := len(q.items) > 0 || q.closed
			q.mu.Unlock()
			if more {
				// Forward the wakeup so other waiters are not starved.
				select {
				case q.notify <- struct{}{}:
				default:
				}
			}
			return ev, nil
		}
		if q.closed {
			q.mu.Unlock()
			select {
			case q.notify <- struct{}{}:
			default:
			}
			return nil, ErrQueueClosed
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-q.notify:
		}
	}
}

// Len returns the number of queued events.
func (q *queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close marks the queue closed. Queued events remain poppable.
func (q *queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}
