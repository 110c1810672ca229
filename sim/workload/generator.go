// Builds thread sets for the simulator: explicit spec entries, uniform
// random generation, and the two built-in presets.

package workload

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/dispatch-sim/dispatch-sim/sim"
)

// Preset names accepted by BuildPreset.
const (
	PresetSmall       = "small"
	PresetLargeRandom = "large-random"
)

// largeRandomCount and friends parameterize the large randomized preset:
// 2000 threads, arrivals uniform in [0,300], bursts uniform in [1,30].
// Meant to be run on several cores.
const (
	largeRandomCount      = 2000
	largeRandomArrivalMax = 300
	largeRandomBurstMin   = 1
	largeRandomBurstMax   = 30
)

// Build constructs the thread set from a validated Spec. Explicit entries
// come first in spec order; random threads follow, with IDs continuing
// after the highest explicit ID.
func Build(spec *Spec, rng *rand.Rand) []*sim.Thread {
	threads := make([]*sim.Thread, 0, len(spec.Threads))
	maxID := 0
	for _, e := range spec.Threads {
		threads = append(threads, sim.NewThread(e.ID, e.Arrival, e.Burst))
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	if r := spec.Random; r != nil {
		threads = append(threads, generate(rng, maxID+1, r.Count, r.ArrivalMax, r.BurstMin, r.BurstMax)...)
	}
	logrus.Infof("Built workload with %d threads", len(threads))
	return threads
}

// BuildPreset constructs one of the built-in workloads.
// "small" is the four-thread hand example; "large-random" draws 2000
// threads from the preset uniform ranges using rng.
func BuildPreset(name string, rng *rand.Rand) ([]*sim.Thread, error) {
	switch name {
	case PresetSmall:
		return SmallPreset(), nil
	case PresetLargeRandom:
		return LargeRandomPreset(rng), nil
	default:
		return nil, fmt.Errorf("unknown workload preset %q", name)
	}
}

// SmallPreset returns the four-thread hand example:
// threads (1: arrival 0, burst 5), (2: 0, 3), (3: 2, 6), (4: 4, 4).
func SmallPreset() []*sim.Thread {
	return []*sim.Thread{
		sim.NewThread(1, 0, 5),
		sim.NewThread(2, 0, 3),
		sim.NewThread(3, 2, 6),
		sim.NewThread(4, 4, 4),
	}
}

// LargeRandomPreset returns the large randomized workload drawn from rng.
func LargeRandomPreset(rng *rand.Rand) []*sim.Thread {
	return generate(rng, 1, largeRandomCount, largeRandomArrivalMax, largeRandomBurstMin, largeRandomBurstMax)
}

// generate draws count threads with IDs firstID..firstID+count-1, arrivals
// uniform in [0, arrivalMax] and bursts uniform in [burstMin, burstMax].
func generate(rng *rand.Rand, firstID, count int, arrivalMax, burstMin, burstMax int64) []*sim.Thread {
	threads := make([]*sim.Thread, 0, count)
	for i := 0; i < count; i++ {
		arrival := rng.Int63n(arrivalMax + 1)
		burst := burstMin + rng.Int63n(burstMax-burstMin+1)
		threads = append(threads, sim.NewThread(firstID+i, arrival, burst))
	}
	return threads
}
