package cmd

import (
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/dispatch-sim/dispatch-sim/sim"
	"github.com/dispatch-sim/dispatch-sim/sim/trace"
	"github.com/dispatch-sim/dispatch-sim/sim/workload"
)

var (
	// CLI flags for the simulation engine
	seed     int64  // Master seed controlling workload generation and interrupt sampling
	cores    int    // Number of execution slots
	policy   string // Dispatch policy name (fifo, sjf, srtcf)
	horizon  int64  // Hard tick ceiling
	logLevel string // Log verbosity level

	// CLI flags for workload selection
	preset         string // Built-in workload preset name
	workloadFile   string // Path to a full YAML workload spec
	workloadConfig string // Path to a YAML file of named random-workload shapes
	workloadType   string // Name to select from the workload config file

	// CLI flags for random I/O interrupts
	interrupts   bool  // Enable random I/O interrupts
	interruptPct int   // Per-thread per-tick interrupt probability (percent)
	ioMin        int64 // Shortest I/O wait in ticks
	ioMax        int64 // Longest I/O wait in ticks

	// CLI flags for tracing
	traceLevel string // Trace verbosity ("none" or "ticks")
	traceFile  string // Path to write the per-core run table
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "dispatch-sim",
	Short: "Discrete-time multi-core CPU scheduling simulator",
}

// buildWorkload resolves the workload flags into a thread set.
// Precedence: explicit spec file, then named shape from a workload config
// file, then built-in preset.
func buildWorkload(rng *sim.PartitionedRNG) []*sim.Thread {
	wrng := rng.ForSubsystem(sim.SubsystemWorkload)

	if workloadFile != "" {
		spec, err := workload.LoadSpec(workloadFile)
		if err != nil {
			logrus.Fatalf("Invalid workload: %v", err)
		}
		if spec.Seed != 0 {
			// A spec carrying its own seed reproduces the same thread set
			// regardless of --seed.
			wrng = rand.New(rand.NewSource(spec.Seed))
		}
		return workload.Build(spec, wrng)
	}

	if workloadConfig != "" {
		spec := GetWorkloadSpec(workloadConfig, workloadType)
		if spec == nil {
			logrus.Fatalf("Workload type %q not found in %s", workloadType, workloadConfig)
		}
		if err := spec.Validate(); err != nil {
			logrus.Fatalf("Invalid workload: %v", err)
		}
		return workload.Build(spec, wrng)
	}

	threads, err := workload.BuildPreset(preset, wrng)
	if err != nil {
		logrus.Fatalf("Invalid workload: %v", err)
	}
	return threads
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.Config{
			Cores:   cores,
			Policy:  policy,
			Horizon: horizon,
			Interrupt: sim.InterruptConfig{
				Enabled:        interrupts,
				ProbabilityPct: interruptPct,
				MinDuration:    ioMin,
				MaxDuration:    ioMax,
			},
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}
		if traceFile != "" && trace.TraceLevel(traceLevel) != trace.TraceLevelTicks {
			logrus.Infof("Trace file requested; enabling tick tracing")
			traceLevel = string(trace.TraceLevelTicks)
		}
		tr := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(traceLevel)})

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
		threads := buildWorkload(rng)

		// Initialize and run the simulator
		s := sim.NewSimulator(cfg, threads, rng, tr)
		logrus.Infof("Starting simulation: %d threads, %d cores, policy=%s, seed=%d",
			len(threads), cores, sim.PolicyName(s.Policy), seed)
		s.Run()
		s.Metrics.Print(s.Clock)

		if tr.Enabled() {
			summary := trace.Summarize(tr)
			logrus.Infof("Core utilization: %.2f%% over %d ticks", 100*summary.MeanUtilization, summary.TotalTicks)
		}
		if traceFile != "" {
			f, err := os.Create(traceFile)
			if err != nil {
				logrus.Fatalf("Cannot open trace file: %v", err)
			}
			defer f.Close()
			if err := tr.WriteRunTable(f); err != nil {
				logrus.Fatalf("Cannot write trace file: %v", err)
			}
			logrus.Infof("Wrote per-core trace to %s", traceFile)
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for workload generation and interrupt sampling")
	runCmd.Flags().IntVar(&cores, "cores", 1, "Number of CPU cores (execution slots)")
	runCmd.Flags().StringVar(&policy, "policy", "fifo", "Dispatch policy (fifo, sjf, srtcf)")
	runCmd.Flags().Int64Var(&horizon, "horizon", 50000, "Total simulation horizon (in ticks)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Workload selection
	runCmd.Flags().StringVar(&preset, "preset", workload.PresetSmall, "Built-in workload preset (small, large-random)")
	runCmd.Flags().StringVar(&workloadFile, "workload-file", "", "Path to a YAML workload spec")
	runCmd.Flags().StringVar(&workloadConfig, "workload-config", "", "Path to a YAML file of named random workloads")
	runCmd.Flags().StringVar(&workloadType, "workload-type", "", "Named workload to select from --workload-config")

	// Random I/O interrupts
	runCmd.Flags().BoolVar(&interrupts, "interrupts", false, "Enable random I/O interrupts")
	runCmd.Flags().IntVar(&interruptPct, "interrupt-pct", 10, "Per-thread per-tick interrupt probability (percent)")
	runCmd.Flags().Int64Var(&ioMin, "io-min", 2, "Shortest I/O wait (ticks)")
	runCmd.Flags().Int64Var(&ioMax, "io-max", 6, "Longest I/O wait (ticks)")

	// Tracing
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trace level (none, ticks)")
	runCmd.Flags().StringVar(&traceFile, "trace-file", "", "Path to write the per-core run table")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
