// Defines the Thread struct that models an individual thread of execution
// in the simulation. Tracks arrival time, CPU burst, remaining work, and
// timestamps for response/turnaround accounting.

package sim

import (
	"fmt"
)

// ThreadState represents the lifecycle state of a thread.
type ThreadState string

const (
	StateNew      ThreadState = "new"
	StateReady    ThreadState = "ready"
	StateRunning  ThreadState = "running"
	StateWaiting  ThreadState = "waiting"
	StateFinished ThreadState = "finished"
)

// TimeUnset marks a timestamp that has not been stamped yet. Valid
// simulation times are always >= 0.
const TimeUnset int64 = -1

// Thread models a single thread's lifecycle in the simulation.
// Each thread has:
// - an arrival time and a total CPU burst, fixed at creation
// - remaining work, decremented while bound to a core
// - state tracking
// - timestamps for first dispatch, completion and I/O unblock
type Thread struct {
	ID int // Unique identifier for the thread

	ArrivalTime int64 // Tick at which the thread enters the ready queue
	BurstTime   int64 // Total CPU ticks required, fixed at creation
	Remaining   int64 // CPU ticks still owed; 0 means the thread is done

	State ThreadState // new, ready, running, waiting, finished

	StartTime   int64 // Tick of first binding to a core; set once
	FinishTime  int64 // Tick at which remaining work reached zero
	WaitTime    int64 // Ticks spent ready but not running
	UnblockTime int64 // Tick at which a pending I/O wait resolves
}

// NewThread creates a thread in state New with its full burst outstanding
// and all timestamps unset.
func NewThread(id int, arrival, burst int64) *Thread {
	return &Thread{
		ID:          id,
		ArrivalTime: arrival,
		BurstTime:   burst,
		Remaining:   burst,
		State:       StateNew,
		StartTime:   TimeUnset,
		FinishTime:  TimeUnset,
		UnblockTime: TimeUnset,
	}
}

// Turnaround is the span from arrival to completion.
func (t *Thread) Turnaround() int64 {
	return t.FinishTime - t.ArrivalTime
}

// Response is the span from arrival to first dispatch.
func (t *Thread) Response() int64 {
	return t.StartTime - t.ArrivalTime
}

// This method returns a human-readable string representation of a Thread.
func (t *Thread) String() string {
	return fmt.Sprintf("Thread: (ID: %d, State: %s, Remaining: %d, ArrivalTime: %d)", t.ID, t.State, t.Remaining, t.ArrivalTime)
}
