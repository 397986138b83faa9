package fsched

import (
	"errors"
	"fmt"
)

// ErrUnknownOpcode is wrapped by every FatalScheduleError raised because the
// interpreter fetched an instruction whose opcode is outside the closed set
// defined in instruction.go. This is a programming error in the generator
// that produced the schedule, not a condition the scheduler can recover
// from.
var ErrUnknownOpcode = errors.New("fsched: unknown opcode")

// ErrIndexOutOfRange is wrapped by every FatalScheduleError raised because an
// instruction referenced a reaction, reactor, or counter index outside the
// bounds configured at Init.
var ErrIndexOutOfRange = errors.New("fsched: index out of range")

// FatalScheduleError reports a structural defect in a worker's static
// schedule: an unknown opcode or an out-of-range operand index. These can
// never happen with a schedule produced by a correct generator, so
// encountering one means the schedule and the running binary disagree -
// there is no well-defined way to continue, and the scheduler aborts after
// reporting it.
//
// It wraps the underlying cause (ErrUnknownOpcode or ErrIndexOutOfRange)
// via Unwrap, so callers can use errors.Is/errors.As on it like any other
// wrapped error.
type FatalScheduleError struct {
	// Worker is the id of the worker whose program counter hit the fault.
	Worker int
	// PC is the offset into that worker's Program.
	PC int
	// Instruction is the offending instruction.
	Instruction Instruction
	// Cause is one of ErrUnknownOpcode or ErrIndexOutOfRange.
	Cause error
}

func (e *FatalScheduleError) Error() string {
	return fmt.Sprintf("fsched: worker %d pc %d: %v (%s %d %d)",
		e.Worker, e.PC, e.Cause, e.Instruction.Op, e.Instruction.A, e.Instruction.B)
}

// Unwrap supports errors.Is(err, ErrUnknownOpcode) and
// errors.Is(err, ErrIndexOutOfRange).
func (e *FatalScheduleError) Unwrap() error {
	return e.Cause
}
