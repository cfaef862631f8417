package hid

import (
	"sync"

	"rocinante-hid/internal/abi"
)

// eventQueue is the multi-producer, single-consumer FIFO spec.md §5
// describes: callers push non-blockingly, and the ticker (or a
// flushing caller — the two are mutually exclusive through the Core's
// frame lock) drains the full current contents at once.
type eventQueue struct {
	mu    sync.Mutex
	items []abi.Event
}

func (q *eventQueue) push(ev abi.Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()
}

// drain removes and returns every event currently queued, in FIFO
// order. It never blocks on producers: it only ever sees what had
// already been pushed by the time it acquired the lock.
func (q *eventQueue) drain() []abi.Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil
	}

	drained := q.items
	q.items = nil
	return drained
}
