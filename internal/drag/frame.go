package drag

import "sync"

// Scheduler runs callbacks on the next frame. The returned cancel func
// prevents a callback that has not run yet from running at all.
type Scheduler interface {
	Request(fn func()) (cancel func())
}

type frameRequest struct {
	id int
	fn func()
}

// FrameQueue is a Scheduler flushed explicitly by the host's frame tick.
type FrameQueue struct {
	mu      sync.Mutex
	nextID  int
	pending []frameRequest
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) Request(fn func()) func() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	id := q.nextID
	q.pending = append(q.pending, frameRequest{id: id, fn: fn})
	return func() { q.cancel(id) }
}

func (q *FrameQueue) cancel(id int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending reports whether any callback is waiting for a frame.
func (q *FrameQueue) Pending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending) > 0
}

// Flush runs every callback queued before the call. Callbacks queued while
// flushing wait for the next frame. It returns the number of callbacks run.
func (q *FrameQueue) Flush() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, r := range batch {
		r.fn()
	}
	return len(batch)
}
