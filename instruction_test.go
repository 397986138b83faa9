package fsched

import "testing"

func TestOpcode_String(t *testing.T) {
	tests := []struct {
		op   Opcode
		want string
	}{
		{ADV, "ADV"},
		{ADV2, "ADV2"},
		{BIT, "BIT"},
		{DU, "DU"},
		{EIT, "EIT"},
		{EXE, "EXE"},
		{INC, "INC"},
		{INC2, "INC2"},
		{JMP, "JMP"},
		{SAC, "SAC"},
		{STP, "STP"},
		{WU, "WU"},
		{Opcode(99), "Opcode(99)"},
	}
	for _, tc := range tests {
		if got := tc.op.String(); got != tc.want {
			t.Errorf("Opcode(%d).String() = %q, want %q", tc.op, got, tc.want)
		}
	}
}
