package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is the top-level workload configuration.
// Loaded from YAML via LoadSpec(path). A spec lists explicit thread
// entries, a random-generation section, or both; generated threads are
// appended after the explicit ones.
type Spec struct {
	Seed    int64       `yaml:"seed,omitempty"`
	Threads []Entry     `yaml:"threads,omitempty"`
	Random  *RandomSpec `yaml:"random,omitempty"`
}

// Entry defines a single explicit thread: when it arrives and how many
// execution ticks it needs.
type Entry struct {
	ID      int   `yaml:"id"`
	Arrival int64 `yaml:"arrival"`
	Burst   int64 `yaml:"burst"`
}

// RandomSpec parameterizes uniform random thread generation.
type RandomSpec struct {
	Count      int   `yaml:"count"`
	ArrivalMax int64 `yaml:"arrival_max"`
	BurstMin   int64 `yaml:"burst_min"`
	BurstMax   int64 `yaml:"burst_max"`
}

// LoadSpec reads and validates a workload spec from a YAML file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload spec: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse workload spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate rejects malformed workload entries at the boundary, before any
// Thread is constructed. Arrival must be >= 0 and burst strictly positive;
// a zero-burst thread is invalid input, not a no-op.
func (s *Spec) Validate() error {
	if len(s.Threads) == 0 && s.Random == nil {
		return fmt.Errorf("workload spec is empty: no threads and no random section")
	}
	seen := make(map[int]bool, len(s.Threads))
	for i, e := range s.Threads {
		if e.Arrival < 0 {
			return fmt.Errorf("thread %d (entry %d): arrival must be >= 0, got %d", e.ID, i, e.Arrival)
		}
		if e.Burst <= 0 {
			return fmt.Errorf("thread %d (entry %d): burst must be > 0, got %d", e.ID, i, e.Burst)
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate thread id %d (entry %d)", e.ID, i)
		}
		seen[e.ID] = true
	}
	if r := s.Random; r != nil {
		if r.Count <= 0 {
			return fmt.Errorf("random count must be > 0, got %d", r.Count)
		}
		if r.ArrivalMax < 0 {
			return fmt.Errorf("random arrival_max must be >= 0, got %d", r.ArrivalMax)
		}
		if r.BurstMin <= 0 {
			return fmt.Errorf("random burst_min must be > 0, got %d", r.BurstMin)
		}
		if r.BurstMax < r.BurstMin {
			return fmt.Errorf("random burst_max %d must be >= burst_min %d", r.BurstMax, r.BurstMin)
		}
	}
	return nil
}
