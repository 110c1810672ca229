package sim

import "fmt"

// Config groups the engine parameters chosen once at simulation start.
type Config struct {
	Cores     int             // number of execution slots (must be >= 1)
	Policy    string          // dispatch policy name: "fifo" (default), "sjf", "srtcf"
	Horizon   int64           // hard tick ceiling; the run stops here even with work left
	Interrupt InterruptConfig // random I/O interrupt parameters
}

// Validate rejects configuration errors before the simulation starts.
// These are fatal to start-up; the engine itself has no recoverable
// runtime errors.
func (c Config) Validate() error {
	if c.Cores < 1 {
		return fmt.Errorf("core count must be >= 1, got %d", c.Cores)
	}
	if !IsValidPolicy(c.Policy) {
		return fmt.Errorf("unknown dispatch policy %q", c.Policy)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("horizon must be > 0, got %d", c.Horizon)
	}
	if err := c.Interrupt.Validate(); err != nil {
		return err
	}
	return nil
}
