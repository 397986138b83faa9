// Package fsched implements a fully-static (FS) scheduler for a
// deterministic, reactor-oriented runtime.
//
// At program-generation time, a compiler external to this package emits,
// for each worker, a straight-line [Program] in a small
// instruction set (see [Opcode]). At run time, each worker is a tiny
// virtual machine that interprets its own program, dispatching reactions
// (opaque units of computation, see [Reaction]) to the outer runtime for
// execution. All ordering between reactions across workers - both data
// dependence and logical-time advancement - is expressed by explicit
// synchronization instructions: counter waits (WU), physical-time delays
// (DU), and barriers (SAC). There is no dynamic event queue, no priority
// queue, and no topological sort at run time.
//
// # Usage
//
//	sched := fsched.NewScheduler()
//	sched.Init(len(programs), &fsched.Params{
//		Programs:    programs,
//		Reactions:   reactions,
//		Reactors:    reactors,
//		NumCounters: numCounters,
//		StartTime:   0,
//	})
//	defer sched.Free()
//
//	for w := range programs {
//		go func(w int) {
//			for {
//				r := sched.GetReadyReaction(w)
//				if r == nil {
//					return // STP: worker must exit
//				}
//				r.Body()
//				sched.DoneWithReaction(w, r)
//			}
//		}(w)
//	}
//
// The outer threaded runtime that owns worker goroutines, the reaction
// bodies themselves, and the compiler producing the schedule tables are all
// external collaborators; this package only implements the scheduler core:
// the instruction set, the per-worker interpreter, the inter-worker
// synchronization substrate, per-reactor tag advancement and stop
// detection, and the reaction status machine.
package fsched
