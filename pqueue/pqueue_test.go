package pqueue_test

import (
	"testing"

	"github.com/katalvlaran/lvlmaze/pqueue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQueue_StaleEntryNeverSurfaces covers the contract scenario:
// push(x,5), push(x,3), push(y,4) must pop (x,3) then (y,4).
func TestQueue_StaleEntryNeverSurfaces(t *testing.T) {
	q := pqueue.New[string]()
	q.Push("x", 5)
	q.Push("x", 3)
	q.Push("y", 4)

	item, prio, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "x", item)
	assert.Equal(t, 3.0, prio)

	item, prio, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "y", item)
	assert.Equal(t, 4.0, prio)

	_, _, err = q.Pop()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue, "the stale (x,5) entry must not surface")
}

// TestQueue_PopEmpty verifies the empty-queue condition.
func TestQueue_PopEmpty(t *testing.T) {
	q := pqueue.New[int]()
	_, _, err := q.Pop()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)
}

// TestQueue_FIFOTieBreak requires equal priorities to pop in push order.
func TestQueue_FIFOTieBreak(t *testing.T) {
	q := pqueue.New[string]()
	for _, id := range []string{"a", "b", "c", "d"} {
		q.Push(id, 7)
	}

	for _, want := range []string{"a", "b", "c", "d"} {
		item, _, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, item)
	}
}

// TestQueue_WorsePushIgnored checks that equal-or-worse priorities are
// dropped without enqueueing, including after a pop.
func TestQueue_WorsePushIgnored(t *testing.T) {
	q := pqueue.New[string]()
	q.Push("a", 2)
	q.Push("a", 2) // equal: ignored
	q.Push("a", 9) // worse: ignored
	assert.Equal(t, 1, q.Len())

	item, prio, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", item)
	assert.Equal(t, 2.0, prio)

	// The popped item keeps its best-known priority, so a worse re-push
	// stays suppressed.
	q.Push("a", 5)
	_, _, err = q.Pop()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)
}

// TestQueue_LenCountsLiveItems verifies the logical-size semantics.
func TestQueue_LenCountsLiveItems(t *testing.T) {
	q := pqueue.New[int]()
	assert.Equal(t, 0, q.Len())

	q.Push(1, 10)
	q.Push(2, 20)
	q.Push(1, 5) // improvement adds a stale duplicate, not a new item
	assert.Equal(t, 2, q.Len())

	p, ok := q.BestPriority(1)
	require.True(t, ok)
	assert.Equal(t, 5.0, p)

	_, ok = q.BestPriority(3)
	assert.False(t, ok)
}

// TestQueue_OrderedDrain pops a shuffled batch and requires ascending
// priorities throughout.
func TestQueue_OrderedDrain(t *testing.T) {
	q := pqueue.New[int]()
	prios := []float64{9, 1, 8, 2, 7, 3, 6, 4, 5}
	for i, p := range prios {
		q.Push(i, p)
	}

	last := -1.0
	for i := 0; i < len(prios); i++ {
		_, p, err := q.Pop()
		require.NoError(t, err)
		assert.Greater(t, p, last)
		last = p
	}
}
