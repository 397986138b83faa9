package fsched

// Builder assembles a Program instruction by instruction, using mnemonics
// instead of raw Instruction{Op, A, B} literals. It exists purely as test
// and example tooling for hand-writing small schedules readably; the real
// compiler that emits production schedules is a separate, external
// concern.
type Builder struct {
	prog Program
}

// NewBuilder starts an empty schedule.
func NewBuilder() *Builder { return &Builder{} }

// Len returns the number of instructions appended so far; useful for
// computing jump/branch targets (BIT/JMP) before the instructions they
// point to have been appended.
func (b *Builder) Len() int { return len(b.prog) }

func (b *Builder) push(op Opcode, a, b2 int64) *Builder {
	b.prog = append(b.prog, Instruction{Op: op, A: a, B: b2})
	return b
}

// Adv appends ADV rid, delta.
func (b *Builder) Adv(rid int, delta int64) *Builder { return b.push(ADV, int64(rid), delta) }

// Adv2 appends ADV2 rid, delta.
func (b *Builder) Adv2(rid int, delta int64) *Builder { return b.push(ADV2, int64(rid), delta) }

// Bit appends BIT addr.
func (b *Builder) Bit(addr int) *Builder { return b.push(BIT, int64(addr), -1) }

// Du appends DU offset.
func (b *Builder) Du(offset int64) *Builder { return b.push(DU, offset, -1) }

// Eit appends EIT xid.
func (b *Builder) Eit(xid int) *Builder { return b.push(EIT, int64(xid), -1) }

// Exe appends EXE xid.
func (b *Builder) Exe(xid int) *Builder { return b.push(EXE, int64(xid), -1) }

// Inc appends INC cid, k.
func (b *Builder) Inc(cid int, k int64) *Builder { return b.push(INC, int64(cid), k) }

// Inc2 appends INC2 cid, k.
func (b *Builder) Inc2(cid int, k int64) *Builder { return b.push(INC2, int64(cid), k) }

// Jmp appends JMP addr, flag (flag != -1 increments the hyperperiod
// iteration counter on execution).
func (b *Builder) Jmp(addr int, flag int64) *Builder { return b.push(JMP, int64(addr), flag) }

// Sac appends SAC.
func (b *Builder) Sac() *Builder { return b.push(SAC, -1, -1) }

// Stp appends STP.
func (b *Builder) Stp() *Builder { return b.push(STP, -1, -1) }

// Wu appends WU cid, v.
func (b *Builder) Wu(cid int, v int64) *Builder { return b.push(WU, int64(cid), v) }

// Program returns the assembled, ready-to-run schedule.
func (b *Builder) Program() Program { return b.prog }
