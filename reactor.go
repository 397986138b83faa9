package fsched

import "sync/atomic"

// Tag is a lexicographic logical timestamp: (time, microstep).
type Tag struct {
	Time      int64
	Microstep uint32
}

// Compare returns -1, 0, or 1 as t is less than, equal to, or greater than
// other, ordering first by Time then by Microstep.
func (t Tag) Compare(other Tag) int {
	switch {
	case t.Time < other.Time:
		return -1
	case t.Time > other.Time:
		return 1
	case t.Microstep < other.Microstep:
		return -1
	case t.Microstep > other.Microstep:
		return 1
	default:
		return 0
	}
}

// Reactor is a named entity with a logical tag; it holds no code in this
// core (reactors never execute, they are time carriers for ADV/BIT). It is
// referenced by index into the scheduler's reactor array.
//
// Fields are individually atomic rather than mutex-protected, because ADV2
// must update a reactor without taking any lock at all (that is the entire
// point of the "2" discipline). ADV instead takes the
// scheduler's single global mutex (see scheduler.go) around the same
// unlocked update, which serializes it against other ADV/INC callers
// without requiring Reactor itself to know about that lock.
type Reactor struct {
	// Name is used only for logging/tracing.
	Name string
	// StopTag is the tag at or beyond which this reactor is considered to
	// have reached shutdown.
	StopTag Tag

	time        atomic.Int64
	microstep   atomic.Uint32
	reachedStop atomic.Bool
}

// NewReactor constructs a reactor with the given stop tag. Its tag is set to
// the zero Tag until [Scheduler.Init] (or BindStartTime) assigns the run's
// start_time.
func NewReactor(name string, stopTag Tag) *Reactor {
	return &Reactor{Name: name, StopTag: stopTag}
}

// reset assigns the reactor's tag to (startTime, 0) and recomputes
// reachedStop. Called by Init/BindStartTime; never called concurrently with
// advance.
func (r *Reactor) reset(startTime int64) {
	r.time.Store(startTime)
	r.microstep.Store(0)
	r.reachedStop.Store(Tag{Time: startTime}.Compare(r.StopTag) >= 0)
}

// advance is the shared ADV/ADV2 body: time += delta, microstep reset to 0,
// and reachedStop latched (once true, it is never cleared; ADV2 past stop
// continues to advance time, unclamped, by design).
func (r *Reactor) advance(delta int64) {
	t := r.time.Add(delta)
	r.microstep.Store(0)
	if !r.reachedStop.Load() && (Tag{Time: t}).Compare(r.StopTag) >= 0 {
		r.reachedStop.Store(true)
	}
}

// ReachedStop reports whether this reactor has reached its stop tag. Once
// true it stays true (see advance).
func (r *Reactor) ReachedStop() bool {
	return r.reachedStop.Load()
}

// CurrentTag returns a snapshot of the reactor's tag, for tracing/tests. The
// two fields are read independently (not under a single lock), consistent
// with the rest of this type's lock-free design.
func (r *Reactor) CurrentTag() Tag {
	return Tag{Time: r.time.Load(), Microstep: r.microstep.Load()}
}
