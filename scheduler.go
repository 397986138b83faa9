package fsched

import (
	"os"
	"sync"
	"time"
)

// osExit is called by abort for truly fatal conditions (log and abort).
// It is a package variable, following the same override-for-tests
// pattern as logiface's OsExit, so that FatalScheduleError paths can be
// exercised by tests without killing the test binary.
var osExit = os.Exit

// Scheduler is the façade (C7) consumed by the outer runtime: lifecycle
// (Init/InitStructures/BindStartTime/Free) plus the three worker-facing
// operations (GetReadyReaction, DoneWithReaction, TriggerReaction).
//
// All cross-worker coordination lives in its sub-objects: counters (C2),
// reaction status cells (C3, embedded in Reaction), reactor tags (C4),
// and the idle barrier (C5). Scheduler itself only owns the per-worker
// program counters/iteration counts and the single global mutex that
// serializes the "locked" ADV/INC discipline.
type Scheduler struct {
	initMu      sync.Mutex
	mu          sync.Mutex // the global scheduler mutex serializing ADV/INC
	initialized bool

	programs  []Program
	reactions []*Reaction
	reactors  []*Reactor
	counters  *CounterSet
	barrier   *idleBarrier

	pc        []int64
	iteration []uint32

	physicalStartTime    time.Time
	physicalStartTimeSet bool

	logger    *Logger
	hooks     *TraceHooks
	workerIDs []int
}

// NewScheduler constructs an uninitialized Scheduler; call Init before
// using it.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = getDefaultLogger()
	}
	return s
}

func (s *Scheduler) workerID(w int) int {
	if s.workerIDs != nil && w >= 0 && w < len(s.workerIDs) {
		return s.workerIDs[w]
	}
	return w
}

// Init initializes the scheduler. If called a second time, it is
// idempotent: it does not rebuild the structures, it only re-initializes
// per-reactor tags from params.StartTime (the outer runtime is expected to
// have set StartTime between the two calls). Returns true if the
// scheduler was already initialized.
func (s *Scheduler) Init(nWorkers int, params *Params) (alreadyInitialized bool) {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.initialized {
		s.bindStartTimeLocked(params.StartTime)
		return true
	}
	s.initStructuresLocked(nWorkers, params)
	s.bindStartTimeLocked(params.StartTime)
	s.initialized = true
	return false
}

// InitStructures performs the first phase of Init unconditionally: it
// allocates the per-worker program counters and hyperperiod-iteration
// counters, and binds the generator's Programs/Reactions/Reactors/counter
// count. It does not touch reactor tags - call BindStartTime once
// params.StartTime is known.
//
// This split exists so that, rather than silently special-casing a second
// Init call, the two phases are separate entry points, with Init kept as a
// one-call convenience wrapper.
func (s *Scheduler) InitStructures(nWorkers int, params *Params) {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	s.initStructuresLocked(nWorkers, params)
	s.initialized = true
}

func (s *Scheduler) initStructuresLocked(nWorkers int, params *Params) {
	s.programs = params.Programs
	s.reactions = params.Reactions
	s.reactors = params.Reactors
	s.counters = NewCounterSet(params.NumCounters)
	s.barrier = newIdleBarrier(nWorkers, s.counters)
	s.pc = make([]int64, nWorkers)
	s.iteration = make([]uint32, nWorkers)

	switch {
	case !params.PhysicalStartTime.IsZero():
		s.physicalStartTime = params.PhysicalStartTime
	case !s.physicalStartTimeSet:
		s.physicalStartTime = time.Now()
	}
	s.physicalStartTimeSet = true
}

// BindStartTime performs the second phase of Init: it (re-)initializes
// every reactor's tag to (startTime, 0), recomputing reached-stop. Safe to
// call repeatedly; it is the only thing a second Init call does.
func (s *Scheduler) BindStartTime(startTime int64) {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	s.bindStartTimeLocked(startTime)
}

func (s *Scheduler) bindStartTimeLocked(startTime int64) {
	for _, r := range s.reactors {
		r.reset(startTime)
	}
}

// Free releases the per-worker storage and the scheduler's references into
// params-owned arrays. The caller must ensure no worker is inside
// GetReadyReaction when this is called.
func (s *Scheduler) Free() {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	s.pc = nil
	s.iteration = nil
	s.reactions = nil
	s.reactors = nil
	s.programs = nil
	s.counters = nil
	s.barrier = nil
	s.initialized = false
}

// DoneWithReaction informs the scheduler that worker w has finished
// executing doneReaction: the queued->inactive CAS. A CAS failure (the
// reaction was not queued, e.g. it was yielded by EXE while inactive) is
// silently ignored; this is intentional, not an oversight.
func (s *Scheduler) DoneWithReaction(w int, doneReaction *Reaction) {
	doneReaction.done()
}

// TriggerReaction marks reaction r as queued for the current tag: the
// inactive->queued CAS. w=-1 is permitted for anonymous (non-worker)
// callers. A CAS failure (r already queued or running) is silently
// ignored - this is the documented double-trigger idempotence, not an
// error.
func (s *Scheduler) TriggerReaction(r *Reaction, w int) {
	r.trigger()
}
