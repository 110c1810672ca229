// Implements the ThreadQueue, the ordered container behind the ready,
// waiting and finished pools. Threads are enqueued in FIFO order; the
// scan-pop variants support the SJF and SRTCF dispatch policies.

package sim

import (
	"fmt"
	"strings"
)

// ThreadQueue represents an ordered queue of thread ownership handles.
// A given thread lives in at most one queue or core slot at any time;
// every pop is an ownership move, never a copy.
type ThreadQueue struct {
	queue []*Thread
}

// Push adds a thread to the back of the queue.
func (q *ThreadQueue) Push(t *Thread) {
	q.queue = append(q.queue, t)
}

// Pop removes and returns the thread at the front of the queue.
// Returns nil if the queue is empty.
func (q *ThreadQueue) Pop() *Thread {
	if len(q.queue) == 0 {
		return nil
	}
	t := q.queue[0]
	q.queue = q.queue[1:]
	return t
}

// PopMinBurst scans the queue and removes the thread with the smallest
// BurstTime. Ties break by first-encountered position. Returns nil if
// the queue is empty. O(n); used by the non-preemptive SJF policy.
func (q *ThreadQueue) PopMinBurst() *Thread {
	return q.popMinBy(func(t *Thread) int64 { return t.BurstTime })
}

// PopMinRemaining is PopMinBurst keyed on Remaining instead of BurstTime.
// Used only by the preemptive SRTCF policy.
func (q *ThreadQueue) PopMinRemaining() *Thread {
	return q.popMinBy(func(t *Thread) int64 { return t.Remaining })
}

func (q *ThreadQueue) popMinBy(key func(*Thread) int64) *Thread {
	if len(q.queue) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(q.queue); i++ {
		if key(q.queue[i]) < key(q.queue[best]) {
			best = i
		}
	}
	t := q.queue[best]
	q.queue = append(q.queue[:best], q.queue[best+1:]...)
	return t
}

// Len returns the number of threads in the queue.
func (q *ThreadQueue) Len() int {
	return len(q.queue)
}

// Peek returns the thread at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *ThreadQueue) Peek() *Thread {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
func (q *ThreadQueue) Items() []*Thread {
	return q.queue
}

// IDs returns the thread IDs in queue order. Used for snapshots and logging.
func (q *ThreadQueue) IDs() []int {
	ids := make([]int, len(q.queue))
	for i, t := range q.queue {
		ids[i] = t.ID
	}
	return ids
}

func (q *ThreadQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, t := range q.queue {
		sb.WriteString(fmt.Sprint(t.ID))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
