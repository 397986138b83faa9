package fsched

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScheduler_InitIsIdempotentOnStructures(t *testing.T) {
	r := NewReactor("r", Tag{Time: 100})
	prog := NewBuilder().Stp().Program()

	s := NewScheduler()
	params := &Params{
		Programs:          []Program{prog},
		Reactors:          []*Reactor{r},
		NumCounters:       1,
		StartTime:         0,
		PhysicalStartTime: time.Now(),
	}

	require.False(t, s.Init(1, params), "first Init call reported already initialized")
	countersFirst := s.counters

	params2 := &Params{StartTime: 50}
	require.True(t, s.Init(1, params2), "second Init call should report already initialized")

	// Structures (e.g. the counter set) must not have been rebuilt.
	require.Same(t, countersFirst, s.counters, "second Init rebuilt structures; expected it to only rebind start time")
	require.Equal(t, int64(50), r.CurrentTag().Time, "reactor time after second Init should be the rebound start time")
}

func TestScheduler_InitStructuresThenBindStartTime(t *testing.T) {
	r := NewReactor("r", Tag{Time: 100})
	prog := NewBuilder().Stp().Program()

	s := NewScheduler()
	s.InitStructures(1, &Params{
		Programs:    []Program{prog},
		Reactors:    []*Reactor{r},
		NumCounters: 2,
	})

	// Before BindStartTime, reactor tags have not been touched yet.
	if got := r.CurrentTag(); got != (Tag{}) {
		t.Fatalf("reactor tag before BindStartTime = %+v, want zero value", got)
	}

	s.BindStartTime(10)
	if got := r.CurrentTag().Time; got != 10 {
		t.Fatalf("reactor time after BindStartTime = %d, want 10", got)
	}
}

func TestScheduler_WithPhysicalStartTimeOptionSurvivesInit(t *testing.T) {
	anchor := time.Now().Add(-24 * time.Hour)
	s := NewScheduler(WithPhysicalStartTime(anchor))

	prog := NewBuilder().Stp().Program()
	s.Init(1, &Params{Programs: []Program{prog}, NumCounters: 1})

	if !s.physicalStartTime.Equal(anchor) {
		t.Fatalf("physicalStartTime = %v, want the WithPhysicalStartTime anchor %v", s.physicalStartTime, anchor)
	}
}

func TestScheduler_ParamsPhysicalStartTimeOverridesOption(t *testing.T) {
	anchor := time.Now().Add(-24 * time.Hour)
	override := time.Now().Add(-48 * time.Hour)
	s := NewScheduler(WithPhysicalStartTime(anchor))

	prog := NewBuilder().Stp().Program()
	s.Init(1, &Params{Programs: []Program{prog}, NumCounters: 1, PhysicalStartTime: override})

	if !s.physicalStartTime.Equal(override) {
		t.Fatalf("physicalStartTime = %v, want explicit Params override %v", s.physicalStartTime, override)
	}
}

func TestScheduler_DefaultsPhysicalStartTimeToNow(t *testing.T) {
	before := time.Now()
	s := NewScheduler()
	prog := NewBuilder().Stp().Program()
	s.Init(1, &Params{Programs: []Program{prog}, NumCounters: 1})
	after := time.Now()

	if s.physicalStartTime.Before(before) || s.physicalStartTime.After(after) {
		t.Fatalf("physicalStartTime = %v, want between %v and %v", s.physicalStartTime, before, after)
	}
}

func TestScheduler_WorkerIDDefaultsToIndex(t *testing.T) {
	s := NewScheduler()
	if got := s.workerID(3); got != 3 {
		t.Fatalf("workerID(3) = %d, want 3 (default identity mapping)", got)
	}
}

func TestScheduler_WithWorkerIDsOverridesLabels(t *testing.T) {
	s := NewScheduler(WithWorkerIDs([]int{100, 200}))
	if got := s.workerID(0); got != 100 {
		t.Fatalf("workerID(0) = %d, want 100", got)
	}
	if got := s.workerID(1); got != 200 {
		t.Fatalf("workerID(1) = %d, want 200", got)
	}
}

func TestScheduler_TriggerAndDoneDelegateToReaction(t *testing.T) {
	s := NewScheduler()
	r := NewReaction("r", nil)

	s.TriggerReaction(r, -1)
	if got := r.Status(); got != Queued {
		t.Fatalf("status after TriggerReaction = %v, want queued", got)
	}

	s.DoneWithReaction(0, r)
	if got := r.Status(); got != Inactive {
		t.Fatalf("status after DoneWithReaction = %v, want inactive", got)
	}
}

func TestScheduler_FreeClearsState(t *testing.T) {
	prog := NewBuilder().Stp().Program()
	s := NewScheduler()
	s.Init(1, &Params{Programs: []Program{prog}, NumCounters: 1})

	s.Free()

	if s.initialized {
		t.Fatal("Free should clear initialized")
	}
	if s.programs != nil || s.reactions != nil || s.reactors != nil || s.counters != nil || s.barrier != nil {
		t.Fatal("Free should release all params-owned and derived state")
	}
}

func TestScheduler_TraceHooksFireAroundSAC(t *testing.T) {
	var (
		mu             sync.Mutex
		started, ended []int
	)
	s := NewScheduler(WithTraceHooks(TraceHooks{
		WaitStarts: func(w int) { mu.Lock(); started = append(started, w); mu.Unlock() },
		WaitEnds:   func(w int) { mu.Lock(); ended = append(ended, w); mu.Unlock() },
	}))

	prog := NewBuilder().Sac().Stp().Program()
	s.Init(2, &Params{Programs: []Program{prog, prog}, NumCounters: 1})
	defer s.Free()

	done := make(chan struct{}, 2)
	for w := 0; w < 2; w++ {
		go func(w int) {
			s.GetReadyReaction(w)
			done <- struct{}{}
		}(w)
	}
	<-done
	<-done

	if len(started) != 2 || len(ended) != 2 {
		t.Fatalf("hooks fired started=%d ended=%d, want 2 and 2", len(started), len(ended))
	}
}
