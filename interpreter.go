package fsched

import "time"

// stepResult is the small result variant the dispatch of a single
// instruction returns: the yielded reaction and "should the worker exit"
// come back as return values rather than out-parameters. The program
// counter lives in s.pc[w] and is passed to step as a pointer.
type stepResult int8

const (
	stepContinue stepResult = iota // keep fetching
	stepYield                      // a reaction was yielded; return it
	stepExit                       // STP: return nil, the worker must exit
)

// GetReadyReaction runs worker w's fetch/decode/execute loop (C6) until it
// can yield a reaction pointer or the worker must exit (STP), at which
// point it returns nil. It is the only entry point that advances w's
// program counter.
func (s *Scheduler) GetReadyReaction(w int) *Reaction {
	prog := s.programs[w]
	pc := &s.pc[w]

	for {
		inst := prog[*pc]
		reaction, result := s.step(w, pc, inst)
		switch result {
		case stepYield:
			return reaction
		case stepExit:
			return nil
		default:
			// stepContinue: loop again with the updated pc.
		}
	}
}

// step dispatches a single instruction for worker w, mutating *pc and
// s.iteration[w] as appropriate, and returns the reaction to yield (if any)
// along with what the caller should do next.
func (s *Scheduler) step(w int, pc *int64, inst Instruction) (*Reaction, stepResult) {
	switch inst.Op {
	case ADV:
		r := s.reactorAt(w, *pc, inst)
		s.mu.Lock()
		r.advance(inst.B)
		s.mu.Unlock()
		*pc++
		return nil, stepContinue

	case ADV2:
		r := s.reactorAt(w, *pc, inst)
		r.advance(inst.B)
		*pc++
		return nil, stepContinue

	case BIT:
		if s.allReactorsStopped() {
			*pc = inst.A
		} else {
			*pc++
		}
		return nil, stepContinue

	case DU:
		wakeup := s.physicalStartTime.Add(time.Duration(inst.A) * time.Duration(s.iteration[w]+1))
		if d := time.Until(wakeup); d > 0 {
			time.Sleep(d)
		}
		*pc++
		return nil, stepContinue

	case EIT:
		reaction := s.reactionAt(w, *pc, inst)
		*pc++
		if reaction.Status() == Queued {
			return reaction, stepYield
		}
		return nil, stepContinue

	case EXE:
		reaction := s.reactionAt(w, *pc, inst)
		*pc++
		return reaction, stepYield

	case INC:
		s.checkCounterIndex(w, *pc, inst)
		s.mu.Lock()
		s.counters.Add(int(inst.A), uint32(inst.B))
		s.mu.Unlock()
		*pc++
		return nil, stepContinue

	case INC2:
		s.checkCounterIndex(w, *pc, inst)
		s.counters.Add(int(inst.A), uint32(inst.B))
		*pc++
		return nil, stepContinue

	case JMP:
		*pc = inst.A
		if inst.B != -1 {
			s.iteration[w]++
		}
		return nil, stepContinue

	case SAC:
		id := s.workerID(w)
		s.hooks.waitStarts(id)
		s.barrier.waitForWork()
		s.hooks.waitEnds(id)
		*pc++
		return nil, stepContinue

	case STP:
		return nil, stepExit

	case WU:
		s.checkCounterIndex(w, *pc, inst)
		s.counters.WaitAtLeast(int(inst.A), uint32(inst.B))
		*pc++
		return nil, stepContinue

	default:
		s.abort(w, *pc, inst, ErrUnknownOpcode)
		return nil, stepExit
	}
}

// allReactorsStopped implements BIT's scan: every call re-examines each
// reactor's latched reached-stop flag rather than maintaining a cached
// increment-on-transition counter, which is fragile under concurrent ADV
// calls racing the stop-tag transition; this rescans every time, by design.
func (s *Scheduler) allReactorsStopped() bool {
	for _, r := range s.reactors {
		if !r.ReachedStop() {
			return false
		}
	}
	return true
}

func (s *Scheduler) reactorAt(w int, pc int64, inst Instruction) *Reactor {
	i := int(inst.A)
	if i < 0 || i >= len(s.reactors) {
		s.abort(w, pc, inst, ErrIndexOutOfRange)
	}
	return s.reactors[i]
}

func (s *Scheduler) reactionAt(w int, pc int64, inst Instruction) *Reaction {
	i := int(inst.A)
	if i < 0 || i >= len(s.reactions) {
		s.abort(w, pc, inst, ErrIndexOutOfRange)
	}
	return s.reactions[i]
}

func (s *Scheduler) checkCounterIndex(w int, pc int64, inst Instruction) {
	i := int(inst.A)
	if i < 0 || i >= s.counters.Len() {
		s.abort(w, pc, inst, ErrIndexOutOfRange)
	}
}

// abort reports a FatalScheduleError through the logger and terminates the
// process: an unknown opcode or an out-of-range index is a programming
// error in the generator that produced the schedule, not a recoverable
// condition.
func (s *Scheduler) abort(w int, pc int64, inst Instruction, cause error) {
	err := &FatalScheduleError{Worker: s.workerID(w), PC: int(pc), Instruction: inst, Cause: cause}
	s.logger.Emerg().Err(err).Int(`worker`, s.workerID(w)).Int(`pc`, int(pc)).Log(`fatal schedule error, aborting`)
	osExit(2)
	// osExit terminates the process in production. Tests that stub osExit
	// to avoid killing the test binary still must not fall through to the
	// offending index access below, so unwind via panic regardless.
	panic(err)
}
