package fsched

import "sync/atomic"

// ReactionStatus is the tri-state lifecycle of a reaction within a single
// logical tag: Inactive -> Queued -> (Running, implicit) -> Inactive.
//
// The Running state is never stored; it is the period between
// [Scheduler.GetReadyReaction] yielding a reaction and
// [Scheduler.DoneWithReaction] being called for it. From the scheduler's
// point of view, only Inactive vs Queued is ever observable in the status
// cell itself.
type ReactionStatus uint32

const (
	// Inactive means the reaction is not triggered for the current tag.
	Inactive ReactionStatus = iota
	// Queued means the reaction has been triggered and is waiting for a
	// worker to dispatch it.
	Queued
)

// String renders the status for debug logging.
func (s ReactionStatus) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Queued:
		return "queued"
	default:
		return "unknown"
	}
}

// Body is the opaque unit of computation a reaction invokes. The scheduler
// never calls Body itself - that is the outer runtime's job, triggered by
// whatever GetReadyReaction yields - but it is carried on Reaction so that
// callers have a convenient place to hang it.
type Body func()

// Reaction is referenced by index into the scheduler's reaction array. Its
// status is owned by the scheduler (mutated only via CAS, from
// [Scheduler.TriggerReaction] and [Scheduler.DoneWithReaction]); its Body is
// owned and invoked by the outer runtime.
type Reaction struct {
	// Name is used only for logging/tracing.
	Name string
	// Body is invoked by the outer runtime once this reaction has been
	// yielded by GetReadyReaction. The scheduler never calls it.
	Body Body

	status atomic.Uint32
}

// NewReaction constructs a reaction in the Inactive state.
func NewReaction(name string, body Body) *Reaction {
	return &Reaction{Name: name, Body: body}
}

// Status returns the reaction's current status. It is a plain atomic load;
// callers must not use it to make triggering decisions racily (use
// TriggerReaction/DoneWithReaction, which CAS).
func (r *Reaction) Status() ReactionStatus {
	return ReactionStatus(r.status.Load())
}

// trigger performs the inactive->queued CAS. Returns true iff this call
// performed the transition; a false return (the reaction was already queued
// or running) is not an error - repeated triggers are idempotent by design.
func (r *Reaction) trigger() bool {
	return r.status.CompareAndSwap(uint32(Inactive), uint32(Queued))
}

// done performs the queued->inactive CAS. Returns true iff this call
// performed the transition. A false return covers the documented EXE-on-
// inactive-reaction case: EXE is how the generator encodes known-triggered
// reactions (startup, shutdown, timers) that were never materialized as a
// queue entry, so there is nothing to clear.
func (r *Reaction) done() bool {
	return r.status.CompareAndSwap(uint32(Queued), uint32(Inactive))
}
