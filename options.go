package fsched

import "time"

// Params carries the generator's read-only inputs to Init/InitStructures:
// the per-worker schedule, the reaction and reactor arrays, and the counter
// count. This is the Go equivalent of the C ABI's sched_params_t, reaction
// array, reactor array, and num_counters - all handed in together because
// they are only ever produced as one bundle by the (out of scope) compiler.
type Params struct {
	// Programs holds one schedule per worker; len(Programs) is the number
	// of workers.
	Programs []Program
	// Reactions is the global reaction array, indexed by EIT/EXE operands.
	Reactions []*Reaction
	// Reactors is the global reactor array, indexed by ADV/ADV2 operands.
	Reactors []*Reactor
	// NumCounters is the length of the shared counter array, indexed by
	// INC/INC2/WU operands.
	NumCounters int
	// StartTime is the logical time assigned to every reactor's tag. The
	// two-phase Init contract exists because the outer runtime often only
	// knows this once Init has already been called once.
	StartTime int64
	// PhysicalStartTime anchors DU's wall-clock deadlines. It must be fixed
	// before any worker executes a DU; if left zero, InitStructures keeps
	// the time given by WithPhysicalStartTime, or else stamps it with
	// time.Now().
	PhysicalStartTime time.Time
}

// Option configures a Scheduler at construction time, following the
// functional-options idiom used throughout the example corpus (e.g.
// logiface's Option[E], eventloop's Option).
type Option func(*Scheduler)

// WithLogger overrides the package-default logiface logger for this
// Scheduler.
func WithLogger(l *Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// WithTraceHooks installs the C8 trace hooks (wait-starts/wait-ends around
// SAC).
func WithTraceHooks(hooks TraceHooks) Option {
	return func(s *Scheduler) { s.hooks = &hooks }
}

// WithPhysicalStartTime fixes DU's wall-clock origin explicitly, instead of
// leaving InitStructures to default it to time.Now().
func WithPhysicalStartTime(t time.Time) Option {
	return func(s *Scheduler) { s.physicalStartTime = t; s.physicalStartTimeSet = true }
}

// WithWorkerIDs overrides the worker identifiers used in trace/log output
// (defaults to 0..n_workers-1). It has no effect on scheduling semantics.
func WithWorkerIDs(ids []int) Option {
	return func(s *Scheduler) { s.workerIDs = ids }
}
