// Package events provides the typed FIFO queues systems use to talk to each other.
package events

// Queue is an unbounded FIFO of events of type T.
//
// Producers call Send at any point of the frame; the single consumer system calls
// Drain once per tick and handles the events in arrival order. Events are never
// reordered or coalesced.
type Queue[T any] struct {
	items []T
}

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Send appends an event.
func (q *Queue[T]) Send(event T) {
	q.items = append(q.items, event)
}

// Drain returns all pending events in FIFO order and empties the queue.
// Events sent while the caller iterates the result land in the next Drain.
func (q *Queue[T]) Drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	drained := q.items
	q.items = nil
	return drained
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Clear drops every pending event.
func (q *Queue[T]) Clear() {
	q.items = nil
}
