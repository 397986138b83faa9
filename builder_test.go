package fsched

import "testing"

func TestBuilder_ProducesExpectedProgram(t *testing.T) {
	prog := NewBuilder().
		Adv(0, 10).
		Adv2(1, 20).
		Bit(9).
		Du(5).
		Eit(2).
		Exe(3).
		Inc(0, 1).
		Inc2(1, 2).
		Jmp(0, 1).
		Sac().
		Stp().
		Wu(0, 4).
		Program()

	want := Program{
		{Op: ADV, A: 0, B: 10},
		{Op: ADV2, A: 1, B: 20},
		{Op: BIT, A: 9, B: -1},
		{Op: DU, A: 5, B: -1},
		{Op: EIT, A: 2, B: -1},
		{Op: EXE, A: 3, B: -1},
		{Op: INC, A: 0, B: 1},
		{Op: INC2, A: 1, B: 2},
		{Op: JMP, A: 0, B: 1},
		{Op: SAC, A: -1, B: -1},
		{Op: STP, A: -1, B: -1},
		{Op: WU, A: 0, B: 4},
	}

	if len(prog) != len(want) {
		t.Fatalf("program has %d instructions, want %d", len(prog), len(want))
	}
	for i := range want {
		if prog[i] != want[i] {
			t.Errorf("instruction %d = %+v, want %+v", i, prog[i], want[i])
		}
	}
}

func TestBuilder_LenTracksJumpTargets(t *testing.T) {
	b := NewBuilder()
	if got := b.Len(); got != 0 {
		t.Fatalf("Len() on empty builder = %d, want 0", got)
	}

	b.Adv(0, 1)
	loopTarget := b.Len()
	b.Inc2(0, 1)
	b.Jmp(loopTarget, -1)

	prog := b.Program()
	if got := prog[2].A; got != int64(loopTarget) {
		t.Fatalf("JMP target = %d, want %d", got, loopTarget)
	}
}
