package sim

import (
	"testing"
)

func readyWith(threads ...*Thread) *ThreadQueue {
	q := &ThreadQueue{}
	for _, t := range threads {
		t.State = StateReady
		q.Push(t)
	}
	return q
}

func boundIDs(ca *CoreArray) []int {
	ids := make([]int, ca.Len())
	for i := range ids {
		if t := ca.Occupant(i); t != nil {
			ids[i] = t.ID
		} else {
			ids[i] = NoCore
		}
	}
	return ids
}

func TestFIFOPolicy_BindsInArrivalOrder(t *testing.T) {
	// GIVEN two idle cores and ready threads [1, 2, 3]
	cores := NewCoreArray(2)
	ready := readyWith(NewThread(1, 0, 9), NewThread(2, 0, 1), NewThread(3, 0, 5))

	// WHEN FIFO decides
	(&FIFOPolicy{}).Decide(cores, ready)

	// THEN the queue head goes to the first idle core, no reordering
	got := boundIDs(cores)
	if got[0] != 1 || got[1] != 2 {
		t.Errorf("FIFO bindings: got %v, want [1 2]", got)
	}
	if ready.Len() != 1 || ready.Peek().ID != 3 {
		t.Errorf("FIFO leftover: got %v, want [3]", ready.IDs())
	}
}

func TestFIFOPolicy_EmptyReadyQueue_NoOp(t *testing.T) {
	cores := NewCoreArray(2)
	ready := &ThreadQueue{}

	(&FIFOPolicy{}).Decide(cores, ready)

	if !cores.AllIdle() {
		t.Errorf("FIFO on empty queue bound something: %v", boundIDs(cores))
	}
}

func TestSJFPolicy_PicksSmallestBurst(t *testing.T) {
	// GIVEN one idle core and ready threads with bursts [9, 1, 5]
	cores := NewCoreArray(1)
	ready := readyWith(NewThread(1, 0, 9), NewThread(2, 0, 1), NewThread(3, 0, 5))

	// WHEN SJF decides
	(&SJFPolicy{}).Decide(cores, ready)

	// THEN the smallest burst runs and the others keep queue order
	if got := cores.Occupant(0); got == nil || got.ID != 2 {
		t.Errorf("SJF binding: got %v, want thread 2", got)
	}
	rest := ready.IDs()
	if len(rest) != 2 || rest[0] != 1 || rest[1] != 3 {
		t.Errorf("SJF leftover: got %v, want [1 3]", rest)
	}
}

func TestSJFPolicy_NeverPreempts(t *testing.T) {
	// GIVEN a running long thread and a shorter ready one
	cores := NewCoreArray(1)
	running := NewThread(1, 0, 20)
	cores.Bind(0, running)
	ready := readyWith(NewThread(2, 0, 1))

	// WHEN SJF decides
	(&SJFPolicy{}).Decide(cores, ready)

	// THEN the running thread stays and the short one keeps waiting
	if cores.Occupant(0) != running {
		t.Errorf("SJF preempted: core holds %v, want thread 1", cores.Occupant(0))
	}
	if ready.Len() != 1 {
		t.Errorf("SJF consumed a ready thread it could not place")
	}
}

func TestSRTCFPolicy_FillsIdleCoresWithSmallestRemaining(t *testing.T) {
	// GIVEN two idle cores and ready threads with remaining [9, 1, 5]
	cores := NewCoreArray(2)
	ready := readyWith(NewThread(1, 0, 9), NewThread(2, 0, 1), NewThread(3, 0, 5))

	// WHEN SRTCF decides
	(&SRTCFPolicy{}).Decide(cores, ready)

	// THEN the two smallest-remaining threads run
	got := boundIDs(cores)
	if got[0] != 2 || got[1] != 3 {
		t.Errorf("SRTCF fill: got %v, want [2 3]", got)
	}
	if ready.Len() != 1 || ready.Peek().ID != 1 {
		t.Errorf("SRTCF leftover: got %v, want [1]", ready.IDs())
	}
}

func TestSRTCFPolicy_PreemptsWorstRunningThread(t *testing.T) {
	// GIVEN full cores running remaining [8, 3] and a better candidate (2)
	cores := NewCoreArray(2)
	worst := NewThread(1, 0, 8)
	mid := NewThread(2, 0, 3)
	cores.Bind(0, worst)
	cores.Bind(1, mid)
	ready := readyWith(NewThread(3, 0, 2))

	// WHEN SRTCF decides
	(&SRTCFPolicy{}).Decide(cores, ready)

	// THEN the candidate replaces the worst running thread, which re-enters
	// Ready with Remaining untouched
	got := boundIDs(cores)
	if got[0] != 3 || got[1] != 2 {
		t.Errorf("SRTCF preempt bindings: got %v, want [3 2]", got)
	}
	if worst.State != StateReady {
		t.Errorf("victim state: got %s, want %s", worst.State, StateReady)
	}
	if worst.Remaining != 8 {
		t.Errorf("victim remaining changed: got %d, want 8", worst.Remaining)
	}
	if ready.Len() != 1 || ready.Peek() != worst {
		t.Errorf("victim not back in ready queue: %v", ready.IDs())
	}
}

func TestSRTCFPolicy_NoBetterCandidate_LeavesRunningSet(t *testing.T) {
	// GIVEN a running thread at least as good as every ready candidate
	cores := NewCoreArray(1)
	running := NewThread(1, 0, 2)
	cores.Bind(0, running)
	ready := readyWith(NewThread(2, 0, 2), NewThread(3, 0, 7))

	// WHEN SRTCF decides
	(&SRTCFPolicy{}).Decide(cores, ready)

	// THEN nothing changes: equal remaining does not preempt
	if cores.Occupant(0) != running {
		t.Errorf("SRTCF preempted on a tie: core holds %v", cores.Occupant(0))
	}
	if ready.Len() != 2 {
		t.Errorf("SRTCF lost a ready thread: got %v", ready.IDs())
	}
}

func TestSRTCFPolicy_ChainedPreemptions(t *testing.T) {
	// GIVEN two running threads [9, 7] and two better candidates [1, 2]
	cores := NewCoreArray(2)
	cores.Bind(0, NewThread(1, 0, 9))
	cores.Bind(1, NewThread(2, 0, 7))
	ready := readyWith(NewThread(3, 0, 1), NewThread(4, 0, 2))

	// WHEN SRTCF decides
	(&SRTCFPolicy{}).Decide(cores, ready)

	// THEN both running threads are displaced in one invocation
	got := boundIDs(cores)
	if got[0] != 3 || got[1] != 4 {
		t.Errorf("SRTCF chain bindings: got %v, want [3 4]", got)
	}
	rest := ready.IDs()
	if len(rest) != 2 {
		t.Fatalf("SRTCF chain leftover: got %v, want two victims", rest)
	}
}

func TestSRTCFPolicy_PostCondition(t *testing.T) {
	// After a decide call, no ready thread has strictly smaller remaining
	// than any running thread.
	cores := NewCoreArray(3)
	cores.Bind(0, NewThread(1, 0, 12))
	cores.Bind(1, NewThread(2, 0, 4))
	cores.Bind(2, NewThread(3, 0, 6))
	ready := readyWith(
		NewThread(4, 0, 5),
		NewThread(5, 0, 3),
		NewThread(6, 0, 11),
		NewThread(7, 0, 2),
	)

	(&SRTCFPolicy{}).Decide(cores, ready)

	for _, r := range ready.Items() {
		for i := 0; i < cores.Len(); i++ {
			run := cores.Occupant(i)
			if run == nil {
				continue
			}
			if r.Remaining < run.Remaining {
				t.Errorf("post-condition violated: ready thread %d (rem %d) beats running thread %d (rem %d)",
					r.ID, r.Remaining, run.ID, run.Remaining)
			}
		}
	}
}

func TestNewPolicy_ValidNames_ReturnsCorrectType(t *testing.T) {
	// Empty string defaults to FIFO
	p1 := NewPolicy("")
	if _, ok := p1.(*FIFOPolicy); !ok {
		t.Errorf("NewPolicy(\"\"): expected *FIFOPolicy, got %T", p1)
	}

	p2 := NewPolicy("fifo")
	if _, ok := p2.(*FIFOPolicy); !ok {
		t.Errorf("NewPolicy(\"fifo\"): expected *FIFOPolicy, got %T", p2)
	}

	p3 := NewPolicy("sjf")
	if _, ok := p3.(*SJFPolicy); !ok {
		t.Errorf("NewPolicy(\"sjf\"): expected *SJFPolicy, got %T", p3)
	}

	p4 := NewPolicy("srtcf")
	if _, ok := p4.(*SRTCFPolicy); !ok {
		t.Errorf("NewPolicy(\"srtcf\"): expected *SRTCFPolicy, got %T", p4)
	}
}

func TestNewPolicy_UnknownName_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("NewPolicy(\"unknown\"): expected panic, got nil")
		}
	}()
	NewPolicy("unknown")
}

func TestPolicyName(t *testing.T) {
	cases := []struct {
		policy DispatchPolicy
		want   string
	}{
		{&FIFOPolicy{}, "FIFO"},
		{&SJFPolicy{}, "SJF (non-preemptive)"},
		{&SRTCFPolicy{}, "SRTCF (preemptive)"},
	}
	for _, tc := range cases {
		if got := PolicyName(tc.policy); got != tc.want {
			t.Errorf("PolicyName(%T): got %q, want %q", tc.policy, got, tc.want)
		}
	}
}
