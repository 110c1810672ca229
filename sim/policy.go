package sim

import (
	"fmt"
)

// DispatchPolicy decides which ready threads run this tick. Called once per
// tick after admission and waiting resolution. Implementations read and
// mutate only the core bank and the ready queue; they never touch the
// waiting or finished pools.
type DispatchPolicy interface {
	Decide(cores *CoreArray, ready *ThreadQueue)
}

// FIFOPolicy binds ready threads to idle cores in arrival order.
// No preemption, no reordering. This is the default policy.
type FIFOPolicy struct{}

func (f *FIFOPolicy) Decide(cores *CoreArray, ready *ThreadQueue) {
	for cores.AnyIdle() {
		t := ready.Pop()
		if t == nil {
			break
		}
		cores.Bind(cores.FirstIdle(), t)
	}
}

// SJFPolicy picks the thread with the smallest BurstTime from the ready
// queue for each idle core. Ties break by first-encountered in the queue.
// Non-preemptive: once bound, a thread runs until it completes or an
// external interrupt removes it.
// Warning: SJF can starve long threads under sustained load.
type SJFPolicy struct{}

func (s *SJFPolicy) Decide(cores *CoreArray, ready *ThreadQueue) {
	for cores.AnyIdle() {
		t := ready.PopMinBurst()
		if t == nil {
			break
		}
		cores.Bind(cores.FirstIdle(), t)
	}
}

// SRTCFPolicy is preemptive shortest-remaining-time-to-completion. It first
// fills idle cores with the smallest-Remaining ready threads, then preempts
// any running thread whose Remaining is strictly worse than the best ready
// candidate's. Preemptions can chain within one invocation. On return no
// ready thread has strictly smaller Remaining than any running thread.
type SRTCFPolicy struct{}

func (s *SRTCFPolicy) Decide(cores *CoreArray, ready *ThreadQueue) {
	// Fill any idle cores with the smallest-remaining jobs.
	for cores.AnyIdle() {
		t := ready.PopMinRemaining()
		if t == nil {
			break
		}
		cores.Bind(cores.FirstIdle(), t)
	}

	// Preempt while the best ready job beats something running.
	for {
		best := ready.PopMinRemaining()
		if best == nil {
			break
		}

		// An idle core may have appeared through earlier I/O or completion.
		if idle := cores.FirstIdle(); idle != NoCore {
			cores.Bind(idle, best)
			continue
		}

		victim := cores.LargestRemainingAbove(best.Remaining)
		if victim != NoCore {
			// Preempt the victim back to Ready and run best in its place.
			// Remaining is untouched; wait accrual resumes in the queue.
			preempted := cores.Unbind(victim)
			preempted.State = StateReady
			ready.Push(preempted)
			cores.Bind(victim, best)
			// Another ready job might still beat another running job.
			continue
		}

		// Every running thread is at least as good as best. Put it back
		// unchanged and stop; this is the only exit with work left.
		ready.Push(best)
		break
	}
}

// validPolicies maps accepted policy names. Empty string defaults to FIFO
// (for CLI flag default compatibility).
var validPolicies = map[string]bool{
	"":      true,
	"fifo":  true,
	"sjf":   true,
	"srtcf": true,
}

// IsValidPolicy returns true if name is a recognized dispatch policy.
func IsValidPolicy(name string) bool {
	return validPolicies[name]
}

// NewPolicy creates a DispatchPolicy by name.
// Valid names: "fifo" (default), "sjf", "srtcf".
// Panics on unrecognized names.
func NewPolicy(name string) DispatchPolicy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown dispatch policy %q", name))
	}
	switch name {
	case "", "fifo":
		return &FIFOPolicy{}
	case "sjf":
		return &SJFPolicy{}
	case "srtcf":
		return &SRTCFPolicy{}
	default:
		panic(fmt.Sprintf("unhandled dispatch policy %q", name))
	}
}

// PolicyName returns a human-readable name for a policy instance.
func PolicyName(p DispatchPolicy) string {
	switch p.(type) {
	case *FIFOPolicy:
		return "FIFO"
	case *SJFPolicy:
		return "SJF (non-preemptive)"
	case *SRTCFPolicy:
		return "SRTCF (preemptive)"
	default:
		return "unknown"
	}
}
