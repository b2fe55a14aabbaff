package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueDrainsInArrivalOrder(t *testing.T) {
	q := NewQueue[int]()
	q.Send(3)
	q.Send(1)
	q.Send(2)

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []int{3, 1, 2}, q.Drain())
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain())
}

func TestQueueSendDuringIterationGoesToNextDrain(t *testing.T) {
	q := NewQueue[string]()
	q.Send("a")

	for _, ev := range q.Drain() {
		q.Send(ev + "-again")
	}

	assert.Equal(t, []string{"a-again"}, q.Drain())
}

func TestQueueClear(t *testing.T) {
	q := NewQueue[int]()
	q.Send(1)
	q.Clear()
	assert.Equal(t, 0, q.Len())
}
