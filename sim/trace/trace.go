package trace

import (
	"fmt"
	"io"
)

// TraceLevel controls the verbosity of tick tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTicks captures a snapshot of queues and core bindings
	// every tick, plus all interrupt events and final thread results.
	TraceLevelTicks TraceLevel = "ticks"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelTicks: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects tick records during a simulation run.
type SimulationTrace struct {
	Config     TraceConfig
	Snapshots  []TickSnapshot
	Interrupts []InterruptRecord
	Results    []ThreadResult
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:     config,
		Snapshots:  make([]TickSnapshot, 0),
		Interrupts: make([]InterruptRecord, 0),
		Results:    make([]ThreadResult, 0),
	}
}

// Enabled reports whether tick recording is active.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelTicks
}

// RecordTick appends a tick snapshot.
func (st *SimulationTrace) RecordTick(snapshot TickSnapshot) {
	st.Snapshots = append(st.Snapshots, snapshot)
}

// RecordInterrupt appends an interrupt event record.
func (st *SimulationTrace) RecordInterrupt(record InterruptRecord) {
	st.Interrupts = append(st.Interrupts, record)
}

// RecordResult appends a finished thread's final accounting.
func (st *SimulationTrace) RecordResult(result ThreadResult) {
	st.Results = append(st.Results, result)
}

// RunTable builds the per-core execution table from the collected
// snapshots: table[core][tick] is the bound thread ID or IdleMark.
// Returns nil if no snapshots were recorded.
func (st *SimulationTrace) RunTable() [][]int {
	if len(st.Snapshots) == 0 {
		return nil
	}
	ncores := len(st.Snapshots[0].Cores)
	table := make([][]int, ncores)
	for c := range table {
		table[c] = make([]int, len(st.Snapshots))
	}
	for tick, snap := range st.Snapshots {
		for c := 0; c < ncores; c++ {
			table[c][tick] = snap.Cores[c]
		}
	}
	return table
}

// WriteRunTable renders the per-core execution table, one row per core,
// "-" marking idle ticks. The caller owns the writer; the engine itself
// never touches durable storage.
func (st *SimulationTrace) WriteRunTable(w io.Writer) error {
	table := st.RunTable()
	for c, row := range table {
		if _, err := fmt.Fprintf(w, "core %d:", c); err != nil {
			return err
		}
		for _, id := range row {
			if id == IdleMark {
				if _, err := fmt.Fprint(w, " -"); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, " %d", id); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
