// Implements the random I/O interrupt subsystem. Each tick, every running
// thread is independently sampled for an interrupt; a hit parks it in the
// waiting queue until a sampled unblock tick. Interruption changes placement
// only, never progress: Remaining is not read or written here.

package sim

import "fmt"

// InterruptConfig groups the random I/O interrupt parameters.
type InterruptConfig struct {
	Enabled        bool  // false disables sampling entirely
	ProbabilityPct int   // per-thread per-tick interrupt chance, 0..100
	MinDuration    int64 // shortest I/O wait in ticks (must be > 0 when enabled)
	MaxDuration    int64 // longest I/O wait in ticks (must be >= MinDuration)
}

// Validate rejects malformed interrupt bounds before the simulation starts.
func (c InterruptConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.ProbabilityPct < 0 || c.ProbabilityPct > 100 {
		return fmt.Errorf("interrupt probability must be in [0,100], got %d", c.ProbabilityPct)
	}
	if c.MinDuration <= 0 {
		return fmt.Errorf("interrupt min duration must be > 0, got %d", c.MinDuration)
	}
	if c.MaxDuration < c.MinDuration {
		return fmt.Errorf("interrupt max duration %d must be >= min duration %d", c.MaxDuration, c.MinDuration)
	}
	return nil
}

// IntSource is the slice of rand.Rand the injector needs. Injected rather
// than global so tests can supply a deterministic stub sequence.
type IntSource interface {
	Intn(n int) int
}

// Interrupt records one I/O interrupt taken this tick, for logging and
// trace collection.
type Interrupt struct {
	Core        int
	ThreadID    int
	Duration    int64
	UnblockTime int64
}

// InterruptInjector samples interrupts for running threads each tick.
type InterruptInjector struct {
	cfg InterruptConfig
	rng IntSource
}

// NewInterruptInjector creates an injector from a validated config and a
// random source (typically PartitionedRNG.ForSubsystem(SubsystemInterrupts)).
func NewInterruptInjector(cfg InterruptConfig, rng IntSource) *InterruptInjector {
	return &InterruptInjector{cfg: cfg, rng: rng}
}

// Inject samples every occupied core in ascending index order. Each hit
// moves the bound thread Running->Waiting with UnblockTime = clock + dur
// and appends to the waiting queue. Returns the interrupts taken, in core
// order, for the caller to log and trace.
func (inj *InterruptInjector) Inject(cores *CoreArray, waiting *ThreadQueue, clock int64) []Interrupt {
	if !inj.cfg.Enabled {
		return nil
	}

	var taken []Interrupt
	for c := 0; c < cores.Len(); c++ {
		t := cores.Occupant(c)
		if t == nil {
			continue
		}

		if inj.rng.Intn(100) >= inj.cfg.ProbabilityPct {
			continue
		}

		dur := inj.cfg.MinDuration
		if span := inj.cfg.MaxDuration - inj.cfg.MinDuration; span > 0 {
			dur += int64(inj.rng.Intn(int(span) + 1))
		}

		cores.Unbind(c)
		t.State = StateWaiting
		t.UnblockTime = clock + dur
		waiting.Push(t)

		taken = append(taken, Interrupt{
			Core:        c,
			ThreadID:    t.ID,
			Duration:    dur,
			UnblockTime: t.UnblockTime,
		})
	}
	return taken
}
