// Package trace provides tick-trace recording for scheduling analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// IdleMark is the thread-id placeholder for an idle core in snapshots and
// the per-core run table.
const IdleMark = -1

// TickSnapshot captures queue contents and core bindings at one tick,
// taken after dispatch and before the execution step.
type TickSnapshot struct {
	Clock    int64
	Ready    []int // thread IDs in ready-queue order
	Waiting  []int // thread IDs in waiting-queue order
	Finished []int // thread IDs in finished order
	Cores    []int // per-core bound thread ID, IdleMark when idle
}

// InterruptRecord captures a single random I/O interrupt event.
type InterruptRecord struct {
	Clock       int64
	Core        int
	ThreadID    int
	Duration    int64
	UnblockTime int64
}

// ThreadResult captures a finished thread's final accounting, reported once
// at the end of the run.
type ThreadResult struct {
	ThreadID   int
	Arrival    int64
	Burst      int64
	Start      int64
	Finish     int64
	Wait       int64
	Response   int64
	Turnaround int64
}
