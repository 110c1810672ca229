// Tracks simulation-wide and per-thread scheduling metrics.

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for comparing dispatch policies and debugging behavior over time.
type Metrics struct {
	FinishedThreads int   // Number of threads that ran to completion
	TotalWait       int64 // Sum of cumulative ready-but-not-running ticks
	TotalResponse   int64 // Sum of (start - arrival)
	TotalTurnaround int64 // Sum of (finish - arrival)
	Interrupts      int   // Number of random I/O interrupts taken

	Turnarounds map[int]int64 // map of thread ID -> turnaround
	Waits       map[int]int64 // map of thread ID -> cumulative wait
}

// NewMetrics creates an empty Metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		Turnarounds: make(map[int]int64),
		Waits:       make(map[int]int64),
	}
}

// RecordFinish folds a finished thread into the aggregates.
func (m *Metrics) RecordFinish(t *Thread) {
	m.FinishedThreads++
	m.TotalWait += t.WaitTime
	m.TotalResponse += t.Response()
	m.TotalTurnaround += t.Turnaround()
	m.Turnarounds[t.ID] = t.Turnaround()
	m.Waits[t.ID] = t.WaitTime
}

// AvgWait returns the mean cumulative wait over finished threads.
func (m *Metrics) AvgWait() float64 {
	if m.FinishedThreads == 0 {
		return 0
	}
	return float64(m.TotalWait) / float64(m.FinishedThreads)
}

// AvgResponse returns the mean response time over finished threads.
func (m *Metrics) AvgResponse() float64 {
	if m.FinishedThreads == 0 {
		return 0
	}
	return float64(m.TotalResponse) / float64(m.FinishedThreads)
}

// AvgTurnaround returns the mean turnaround over finished threads.
func (m *Metrics) AvgTurnaround() float64 {
	if m.FinishedThreads == 0 {
		return 0
	}
	return float64(m.TotalTurnaround) / float64(m.FinishedThreads)
}

// TurnaroundQuantile returns the q-quantile (0..1) of per-thread turnaround.
func (m *Metrics) TurnaroundQuantile(q float64) float64 {
	if len(m.Turnarounds) == 0 {
		return 0
	}
	vals := make([]float64, 0, len(m.Turnarounds))
	for _, v := range m.Turnarounds {
		vals = append(vals, float64(v))
	}
	sort.Float64s(vals)
	return stat.Quantile(q, stat.Empirical, vals, nil)
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(clock int64) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Finished Threads     : %d\n", m.FinishedThreads)
	fmt.Printf("Elapsed Ticks        : %d\n", clock)
	if m.FinishedThreads > 0 {
		fmt.Printf("Average Wait         : %.2f ticks\n", m.AvgWait())
		fmt.Printf("Average Response     : %.2f ticks\n", m.AvgResponse())
		fmt.Printf("Average Turnaround   : %.2f ticks\n", m.AvgTurnaround())
		fmt.Printf("Turnaround p50/p90/p99 : %.0f / %.0f / %.0f ticks\n",
			m.TurnaroundQuantile(0.50), m.TurnaroundQuantile(0.90), m.TurnaroundQuantile(0.99))
	}
	if m.Interrupts > 0 {
		fmt.Printf("I/O Interrupts       : %d\n", m.Interrupts)
	}
}
