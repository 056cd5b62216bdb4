// Package pqueue implements a generic min-priority queue with amortized
// decrease-key via lazy invalidation: improving an item's priority pushes a
// fresh heap entry and the superseded one is skipped when popped.
package pqueue

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by Pop when no live entry remains.
var ErrEmptyQueue = errors.New("pqueue: pop from empty queue")

// entry is one physical heap record: an item snapshot at the priority it
// was pushed with, plus a tie counter for FIFO ordering among equals.
type entry[T comparable] struct {
	priority float64
	tie      uint64
	item     T
}

// entryHeap is a binary min-heap of entries ordered by (priority, tie).
type entryHeap[T comparable] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].tie < h[j].tie
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue over comparable items. The zero value is
// not usable; construct with New.
type Queue[T comparable] struct {
	heap entryHeap[T]
	best map[T]float64
	tie  uint64
}

// New returns an empty queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{best: make(map[T]float64)}
}

// Push records priority as item's best-known priority only if no strictly
// better (lower) one is known, and only then enqueues a physical entry.
// Pushing an equal or worse priority is a no-op, which keeps stale
// duplicates bounded and makes re-insertion after Pop idempotent.
func (q *Queue[T]) Push(item T, priority float64) {
	if known, ok := q.best[item]; ok && priority >= known {
		return
	}
	q.best[item] = priority
	heap.Push(&q.heap, entry[T]{priority: priority, tie: q.tie, item: item})
	q.tie++
}

// Pop removes and returns the minimum-priority live entry, discarding any
// stale entries on the way. Ties resolve in strict insertion order.
// Returns ErrEmptyQueue when only stale entries (or none) remain.
func (q *Queue[T]) Pop() (T, float64, error) {
	for q.heap.Len() > 0 {
		e := heap.Pop(&q.heap).(entry[T])
		if q.best[e.item] == e.priority {
			return e.item, e.priority, nil
		}
	}

	var zero T

	return zero, 0, ErrEmptyQueue
}

// Len returns the number of items with a live best-known priority — the
// logical size, not the physical entry count.
func (q *Queue[T]) Len() int { return len(q.best) }

// BestPriority returns item's best-known priority, if any.
func (q *Queue[T]) BestPriority(item T) (float64, bool) {
	p, ok := q.best[item]

	return p, ok
}
