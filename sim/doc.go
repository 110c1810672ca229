// Package sim implements a discrete-time, multi-core CPU scheduling
// simulator.
//
// The engine models thread lifecycle (New -> Ready -> Running -> Waiting/
// Finished), a fixed bank of core slots, and three interchangeable dispatch
// policies: FIFO, non-preemptive shortest-job-first, and preemptive
// shortest-remaining-time-to-completion. Time advances in integer ticks;
// each tick runs a fixed sequence of phases (admission, I/O resolution,
// interrupt injection, dispatch, wait accrual, execution step, completion
// collection) with no suspension points, so runs are reproducible for a
// fixed seed.
//
// Cores are data, not execution contexts: there is exactly one logical
// thread of control advancing the whole simulation, and the queues plus the
// core bank are the only shared mutable structures.
//
// Workload construction and validation live in sim/workload; tick snapshots
// and the per-core run table live in sim/trace.
package sim
