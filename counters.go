package fsched

import (
	"runtime"
	"sync/atomic"
)

// CounterSet is the process-wide fixed-length array of 32-bit counters used
// for producer/consumer synchronization between workers (C2).
//
// Two increment disciplines coexist per counter, chosen by the generator:
// locked (driven by the INC opcode, serialized through [Scheduler]'s single
// global mutex - see scheduler.go) and single-writer lock-free (driven by
// INC2, via [CounterSet.Add] with no external lock). The compiler must not
// mix writers on the same counter across both disciplines; CounterSet itself
// does not check this - that is a structural property of the generated
// schedule, not something runtime can validate. Storage is always atomic so
// that WaitAtLeast observes a well-formed value regardless of which
// discipline wrote it.
type CounterSet struct {
	values []atomic.Uint32
}

// NewCounterSet allocates a zero-initialized counter array of the given
// length.
func NewCounterSet(n int) *CounterSet {
	return &CounterSet{values: make([]atomic.Uint32, n)}
}

// Len returns the number of counters.
func (c *CounterSet) Len() int { return len(c.values) }

// Add atomically adds k to counter i. It is the single increment primitive;
// callers needing the "locked" INC discipline additionally hold the
// scheduler's global mutex around the call (see Scheduler.step), which
// does not change Add's own atomicity but matches the mutual exclusion the
// generator requested between INC and ADV for that worker's schedule.
func (c *CounterSet) Add(i int, k uint32) {
	c.values[i].Add(k)
}

// WaitAtLeast spins, reading counter i, until its value is >= v. The read is
// never hoisted out of the loop because it goes through an atomic load; a
// pause hint (runtime.Gosched) keeps the spin from starving other
// goroutines on a GOMAXPROCS-limited system. This is intentionally not a
// blocking primitive: the FS schedule is expected to make the wait short,
// bounded by the producer's reaction latency.
func (c *CounterSet) WaitAtLeast(i int, v uint32) {
	for c.values[i].Load() < v {
		runtime.Gosched()
	}
}

// Get returns the current value of counter i. It is exposed for tracing and
// tests; the interpreter itself only ever uses WaitAtLeast to observe a
// counter.
func (c *CounterSet) Get(i int) uint32 {
	return c.values[i].Load()
}

// ClearAll sets every counter to 0. Only the barrier's last-to-idle worker
// calls this (see [idleBarrier]); it is the only thing that ever resets
// counters.
func (c *CounterSet) ClearAll() {
	for i := range c.values {
		c.values[i].Store(0)
	}
}
