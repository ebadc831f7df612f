package squeue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestQueueEnqueueDequeueFIFOOrder(t *testing.T) {
	var q Queue[int]
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	assert.Equal(t, 3, q.Len())

	v, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestQueuePeekDoesNotRemove(t *testing.T) {
	var q Queue[string]
	_, ok := q.Peek()
	assert.False(t, ok)

	q.Enqueue("a")
	q.Enqueue("b")

	v, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 2, q.Len())

	v, ok = q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestQueueDrainVisitsInFIFOOrderAndEmpties(t *testing.T) {
	var q Queue[int]
	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}

	var got []int
	q.Drain(func(v int) { got = append(got, v) })

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.Equal(t, 0, q.Len())
	_, ok := q.Peek()
	assert.False(t, ok)
}

func TestQueueZeroValueIsUsableEmpty(t *testing.T) {
	var q Queue[*int]
	assert.Equal(t, 0, q.Len())
	_, ok := q.Dequeue()
	assert.False(t, ok)
}

// TestQueuePreservesOrderForArbitraryPushSequence is a property test:
// whatever sequence of values is enqueued, dequeuing the same count
// must reproduce it exactly, regardless of values chosen.
func TestQueuePreservesOrderForArbitraryPushSequence(t *testing.T) {
	rapid.Check(t, func(tt *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(-1000, 1000), 0, 50).Draw(tt, "values")

		var q Queue[int]
		for _, v := range values {
			q.Enqueue(v)
		}
		assert.Equal(tt, len(values), q.Len())

		var got []int
		q.Drain(func(v int) { got = append(got, v) })
		assert.Equal(tt, values, got)
	})
}
