// Implements the CoreArray, the fixed-size bank of execution slots.
// "Cores" are data, not execution contexts: stepping them is a sequential,
// deterministic operation driven by the simulation loop.

package sim

import "fmt"

// NoCore signals "no such core" from the scan helpers.
const NoCore = -1

// CoreArray is a fixed-length bank of optional thread slots. A slot is
// either empty (idle) or holds exactly one Running thread. The length is
// chosen once at simulation start and never changes.
type CoreArray struct {
	cores []*Thread

	// Clock mirrors the simulation clock. The simulator is its single
	// writer, advancing it at the top of each tick; Bind reads it to stamp
	// a thread's first-run time.
	Clock int64
}

// NewCoreArray creates a bank of n idle cores. Core count validation
// (n >= 1) happens in Config.Validate before the simulation starts.
func NewCoreArray(n int) *CoreArray {
	return &CoreArray{cores: make([]*Thread, n)}
}

// Len returns the number of cores.
func (ca *CoreArray) Len() int {
	return len(ca.cores)
}

// Occupant returns the thread bound to core i, or nil if the core is idle.
func (ca *CoreArray) Occupant(i int) *Thread {
	return ca.cores[i]
}

// Bind places a thread on an idle core, marks it Running, and records its
// StartTime on first binding. Binding onto an occupied core is a defect in
// the engine, not a recoverable error.
func (ca *CoreArray) Bind(i int, t *Thread) {
	if ca.cores[i] != nil {
		panic(fmt.Sprintf("Bind: core %d already occupied by thread %d", i, ca.cores[i].ID))
	}
	if t == nil {
		panic("Bind: t must not be nil")
	}
	t.State = StateRunning
	if t.StartTime == TimeUnset {
		t.StartTime = ca.Clock
	}
	ca.cores[i] = t
}

// Unbind clears core i and returns the prior occupant. Used only by
// completion collection and preemption.
func (ca *CoreArray) Unbind(i int) *Thread {
	t := ca.cores[i]
	ca.cores[i] = nil
	return t
}

// FirstIdle returns the lowest-index idle core, or NoCore.
func (ca *CoreArray) FirstIdle() int {
	for i, t := range ca.cores {
		if t == nil {
			return i
		}
	}
	return NoCore
}

// AnyIdle reports whether at least one core is idle.
func (ca *CoreArray) AnyIdle() bool {
	return ca.FirstIdle() != NoCore
}

// AllIdle reports whether every core is idle. Part of the termination check.
func (ca *CoreArray) AllIdle() bool {
	for _, t := range ca.cores {
		if t != nil {
			return false
		}
	}
	return true
}

// LargestRemainingAbove scans the bound cores and returns the index of the
// running thread with the greatest Remaining strictly above threshold, or
// NoCore if every running thread is at or below it. Ties break by lowest
// core index. This is the SRTCF victim scan.
func (ca *CoreArray) LargestRemainingAbove(threshold int64) int {
	best := NoCore
	bestRem := threshold
	for i, t := range ca.cores {
		if t == nil {
			continue
		}
		if t.Remaining > bestRem {
			bestRem = t.Remaining
			best = i
		}
	}
	return best
}

// Step advances every occupied core by one tick, decrementing the bound
// thread's Remaining (floor at 0). Completion detection and unbinding are
// the simulation loop's job.
func (ca *CoreArray) Step() {
	for _, t := range ca.cores {
		if t == nil {
			continue
		}
		if t.Remaining > 0 {
			t.Remaining--
		}
	}
}
