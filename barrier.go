package fsched

import "sync/atomic"

// idleBarrier tracks the number of idle workers; the last one to idle runs
// the counter reset and releases the others (C5). It backs the SAC opcode.
type idleBarrier struct {
	nIdle     atomic.Int64
	nWorkers  int64
	sem       *countingSemaphore
	counters  *CounterSet
	onWaitAll func() // optional hook, fires once per round, from the last-to-idle worker
}

// newIdleBarrier constructs a barrier for nWorkers workers, resetting
// counters on every release.
func newIdleBarrier(nWorkers int, counters *CounterSet) *idleBarrier {
	return &idleBarrier{
		nWorkers: int64(nWorkers),
		sem:      newCountingSemaphore(nWorkers),
		counters: counters,
	}
}

// waitForWork implements SAC's blocking body: increment the idle count; if
// this call made every worker idle, this goroutine is the last arrival -
// it clears the counters and notifies the rest; otherwise it blocks on the
// semaphore until released.
func (b *idleBarrier) waitForWork() {
	now := b.nIdle.Add(1)
	if now == b.nWorkers {
		b.counters.ClearAll()
		if b.onWaitAll != nil {
			b.onWaitAll()
		}
		b.notifyWorkers()
		return
	}
	b.sem.acquire()
}

// notifyWorkers is invoked only while every worker is idle (so n_idle needs
// no separate locking around this read-then-subtract): it reads how many
// workers are waiting, resets the idle count to 0, and releases permits for
// everyone except itself (the releaser does not wait, so it does not post a
// permit for itself).
func (b *idleBarrier) notifyWorkers() {
	workersToAwaken := b.nIdle.Load()
	b.nIdle.Add(-workersToAwaken)
	if workersToAwaken > 1 {
		b.sem.release(int(workersToAwaken - 1))
	}
}
