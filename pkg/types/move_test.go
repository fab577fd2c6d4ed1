package types

import "testing"

func TestInversePairs(t *testing.T) {
	for _, m := range Moves {
		inv := m.Inverse()
		if !inv.Valid() {
			t.Errorf("Inverse(%v) = %d, not a valid move", m, inv)
		}
		if inv == m {
			t.Errorf("%v must not be its own inverse", m)
		}
		if inv.Inverse() != m {
			t.Errorf("Inverse(Inverse(%v)) = %v, want %v", m, inv.Inverse(), m)
		}
	}
}

func TestNotation(t *testing.T) {
	tests := []struct {
		m    Move
		want string
	}{
		{FrontCW, "F"},
		{FrontCCW, "F'"},
		{LeftCW, "L"},
		{LeftCCW, "L'"},
		{TopCW, "U"},
		{TopCCW, "U'"},
		{MoveNone, "?"},
	}
	for _, tt := range tests {
		if got := tt.m.Notation(); got != tt.want {
			t.Errorf("Notation(%d) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestSequenceNotation(t *testing.T) {
	if got := (Sequence{}).Notation(); got != "" {
		t.Errorf("empty sequence notation = %q, want empty", got)
	}
	seq := Sequence{TopCCW, FrontCCW}
	if got := seq.Notation(); got != "U' F'" {
		t.Errorf("sequence notation = %q, want %q", got, "U' F'")
	}
}

func TestValid(t *testing.T) {
	if MoveNone.Valid() {
		t.Error("MoveNone must not be a valid turn")
	}
	if Move(7).Valid() {
		t.Error("Move(7) must not be a valid turn")
	}
	for _, m := range Moves {
		if !m.Valid() {
			t.Errorf("%v should be valid", m)
		}
	}
}
