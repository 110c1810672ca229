// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/dispatch-sim/dispatch-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, system state,
// and the tick loop. Single-threaded and tick-stepped: each of the eight
// loop phases runs to completion before the next begins, so every mutation
// of the shared queues and core bank happens inside exactly one phase.
type Simulator struct {
	Clock   int64
	Horizon int64

	Cores    *CoreArray
	Policy   DispatchPolicy
	Injector *InterruptInjector

	// NewQ holds admitted-but-not-yet-arrived threads in submission order.
	NewQ *ThreadQueue
	// ReadyQ holds threads contending for a core.
	ReadyQ *ThreadQueue
	// WaitingQ holds threads parked by a random I/O interrupt.
	WaitingQ *ThreadQueue
	// FinishedQ accumulates completed threads; threads never leave it.
	FinishedQ *ThreadQueue

	Metrics *Metrics
	Trace   *trace.SimulationTrace

	// TickCount is the number of loop iterations executed. Differs from
	// Clock only when the run stops at the horizon.
	TickCount int
}

// NewSimulator builds a simulator from a validated Config and a workload.
// Threads must be in state New; they are admitted as the clock reaches
// their arrival times. The interrupt RNG stream comes from rng so a fixed
// master seed replays bit-for-bit.
func NewSimulator(cfg Config, threads []*Thread, rng *PartitionedRNG, tr *trace.SimulationTrace) *Simulator {
	s := &Simulator{
		Clock:     0,
		Horizon:   cfg.Horizon,
		Cores:     NewCoreArray(cfg.Cores),
		Policy:    NewPolicy(cfg.Policy),
		Injector:  NewInterruptInjector(cfg.Interrupt, rng.ForSubsystem(SubsystemInterrupts)),
		NewQ:      &ThreadQueue{},
		ReadyQ:    &ThreadQueue{},
		WaitingQ:  &ThreadQueue{},
		FinishedQ: &ThreadQueue{},
		Metrics:   NewMetrics(),
		Trace:     tr,
	}
	for _, t := range threads {
		s.NewQ.Push(t)
	}
	return s
}

// Run drives the tick loop until the natural fixed point (no thread left in
// New, Ready or Waiting and every core idle) or the horizon ceiling.
// The phase order within a tick is load-bearing: admission and I/O
// resolution must precede interrupt injection and dispatch, wait accrual
// must see the post-dispatch ready queue, and completion collection must
// see the post-step remaining values.
func (s *Simulator) Run() {
	for {
		if s.Clock > s.Horizon {
			logrus.Warnf("[tick %07d] Horizon reached with work left", s.Clock)
			break
		}

		s.Cores.Clock = s.Clock
		logrus.Debugf("[tick %07d] ready=%s waiting=%s", s.Clock, s.ReadyQ, s.WaitingQ)

		s.admit()
		s.resolveWaiting()
		s.injectInterrupts()
		s.Policy.Decide(s.Cores, s.ReadyQ)
		s.accrueWait()
		s.snapshot()
		s.Cores.Step()
		// The clock value threads observe as their finish time is the
		// post-step one: a thread stepping from 1 to 0 during tick T
		// finishes at T+1.
		s.collectCompletions(s.Clock + 1)

		s.TickCount++
		if s.done() {
			break
		}
		s.Clock++
	}
	logrus.Infof("[tick %07d] Simulation ended: %d finished", s.Clock, s.Metrics.FinishedThreads)
}

// admit moves every New thread whose arrival time equals the clock into
// Ready. The workload may be unsorted, so the whole queue is rotated once;
// non-arrivals keep their original order.
func (s *Simulator) admit() {
	n := s.NewQ.Len()
	for i := 0; i < n; i++ {
		t := s.NewQ.Pop()
		if t.ArrivalTime == s.Clock {
			logrus.Infof("<< Arrival: thread %d at %d ticks", t.ID, s.Clock)
			t.State = StateReady
			s.ReadyQ.Push(t)
		} else {
			s.NewQ.Push(t)
		}
	}
}

// resolveWaiting returns every Waiting thread whose unblock time equals the
// clock to Ready. Runs before dispatch so a just-unblocked thread contends
// this same tick.
func (s *Simulator) resolveWaiting() {
	n := s.WaitingQ.Len()
	for i := 0; i < n; i++ {
		t := s.WaitingQ.Pop()
		if t.UnblockTime == s.Clock {
			logrus.Infof("<< I/O done: thread %d at %d ticks", t.ID, s.Clock)
			t.State = StateReady
			t.UnblockTime = TimeUnset
			s.ReadyQ.Push(t)
		} else {
			s.WaitingQ.Push(t)
		}
	}
}

// injectInterrupts samples random I/O interrupts on currently running
// threads and reports each to the log and trace sinks.
func (s *Simulator) injectInterrupts() {
	taken := s.Injector.Inject(s.Cores, s.WaitingQ, s.Clock)
	for _, intr := range taken {
		logrus.Infof("<< I/O interrupt: thread %d on core %d for %d ticks (unblocks at %d)",
			intr.ThreadID, intr.Core, intr.Duration, intr.UnblockTime)
		s.Metrics.Interrupts++
		if s.Trace.Enabled() {
			s.Trace.RecordInterrupt(trace.InterruptRecord{
				Clock:       s.Clock,
				Core:        intr.Core,
				ThreadID:    intr.ThreadID,
				Duration:    intr.Duration,
				UnblockTime: intr.UnblockTime,
			})
		}
	}
}

// accrueWait charges one tick of wait to every thread still sitting in
// Ready after dispatch.
func (s *Simulator) accrueWait() {
	for _, t := range s.ReadyQ.Items() {
		t.WaitTime++
	}
}

// snapshot records this tick's queue contents and core bindings, taken
// after dispatch so the bindings reflect who runs this tick.
func (s *Simulator) snapshot() {
	if !s.Trace.Enabled() {
		return
	}
	cores := make([]int, s.Cores.Len())
	for i := range cores {
		if t := s.Cores.Occupant(i); t != nil {
			cores[i] = t.ID
		} else {
			cores[i] = trace.IdleMark
		}
	}
	s.Trace.RecordTick(trace.TickSnapshot{
		Clock:    s.Clock,
		Ready:    s.ReadyQ.IDs(),
		Waiting:  s.WaitingQ.IDs(),
		Finished: s.FinishedQ.IDs(),
		Cores:    cores,
	})
}

// collectCompletions unbinds every core whose occupant has no ticks left,
// stamps the finish time once, and moves the thread to Finished.
func (s *Simulator) collectCompletions(finishClock int64) {
	for i := 0; i < s.Cores.Len(); i++ {
		t := s.Cores.Occupant(i)
		if t == nil || t.Remaining != 0 {
			continue
		}
		s.Cores.Unbind(i)
		t.State = StateFinished
		if t.FinishTime == TimeUnset {
			t.FinishTime = finishClock
		}
		s.FinishedQ.Push(t)
		s.Metrics.RecordFinish(t)
		logrus.Infof("Finished thread %d at tick %d (turnaround %d, wait %d)",
			t.ID, t.FinishTime, t.Turnaround(), t.WaitTime)
		if s.Trace.Enabled() {
			s.Trace.RecordResult(trace.ThreadResult{
				ThreadID:   t.ID,
				Arrival:    t.ArrivalTime,
				Burst:      t.BurstTime,
				Start:      t.StartTime,
				Finish:     t.FinishTime,
				Wait:       t.WaitTime,
				Response:   t.Response(),
				Turnaround: t.Turnaround(),
			})
		}
	}
}

// done reports whether the simulation has reached its fixed point: nothing
// left to admit, nothing ready or waiting, and every core idle.
func (s *Simulator) done() bool {
	return s.NewQ.Len() == 0 && s.ReadyQ.Len() == 0 && s.WaitingQ.Len() == 0 && s.Cores.AllIdle()
}
