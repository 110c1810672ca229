package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTicks      int
	InterruptCount  int
	FinishedThreads int
	CoreBusyTicks   []int   // per-core count of non-idle ticks
	MeanUtilization float64 // busy ticks / (cores * ticks)
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	summary.TotalTicks = len(st.Snapshots)
	summary.InterruptCount = len(st.Interrupts)
	summary.FinishedThreads = len(st.Results)

	if len(st.Snapshots) == 0 {
		return summary
	}

	ncores := len(st.Snapshots[0].Cores)
	summary.CoreBusyTicks = make([]int, ncores)
	busy := 0
	for _, snap := range st.Snapshots {
		for c, id := range snap.Cores {
			if id != IdleMark {
				summary.CoreBusyTicks[c]++
				busy++
			}
		}
	}
	summary.MeanUtilization = float64(busy) / float64(ncores*len(st.Snapshots))

	return summary
}
