package impasse

import "testing"

func TestMoveTypeCombine(t *testing.T) {
	cases := []struct {
		base, other, want MoveType
	}{
		{Normal, Crown, Crown},
		{BearOff, Crown, BearOffCrown},
		{Transpose, Crown, TransposeCrown},
		{Transpose, BearOff, TransposeBearOff},
		{Impasse, Crown, ImpasseCrown},
	}
	for _, c := range cases {
		got := c.base.Combine(c.other)
		if got != c.want {
			t.Errorf("%s.Combine(%s) = %s, want %s", c.base, c.other, got, c.want)
		}
	}
}

func TestMoveTypeCombineInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Combine to panic on an unsupported combination")
		}
	}()
	BearOff.Combine(BearOff)
}

func TestMoveIsValid(t *testing.T) {
	if (Move{}).IsValid() {
		t.Error("the zero Move should not be valid")
	}
	valid := Move{Type: Normal, Positions: [3]Position{{X: 1, Y: 1, OldSign: 1, NewSign: 0}, emptyPosition, emptyPosition}}
	if !valid.IsValid() {
		t.Error("a move with a non-Invalid type should be valid")
	}
}

func TestToBearOffHalvesTheCrownedDestination(t *testing.T) {
	m := Move{
		Type: Normal,
		Positions: [3]Position{
			{X: 1, Y: 1, OldSign: 1, NewSign: 0},
			{X: 0, Y: 0, OldSign: 0, NewSign: 2},
			emptyPosition,
		},
	}
	m.toBearOff()
	if m.Type != BearOff {
		t.Errorf("toBearOff on a Normal move produced type %s, want BearOff", m.Type)
	}
	if m.Positions[1].NewSign != 1 {
		t.Errorf("toBearOff left NewSign at %d, want 1", m.Positions[1].NewSign)
	}
}

func TestMoveLessOrdersByPositionThenType(t *testing.T) {
	a := Move{Type: Normal, Positions: [3]Position{{X: 0, Y: 0}, emptyPosition, emptyPosition}}
	b := Move{Type: Normal, Positions: [3]Position{{X: 1, Y: 0}, emptyPosition, emptyPosition}}
	if !a.Less(b) {
		t.Error("a move at row 0 should sort before one at row 1")
	}
	if b.Less(a) {
		t.Error("Less should not be symmetric for distinct moves")
	}
}

func TestMoveStringOmitsUnusedSlots(t *testing.T) {
	m := Move{
		Type: Normal,
		Positions: [3]Position{
			{X: 3, Y: 3, OldSign: 1, NewSign: 0},
			{X: 2, Y: 2, OldSign: 0, NewSign: 1},
			emptyPosition,
		},
	}
	s := m.String()
	if s == "" {
		t.Fatal("expected a non-empty rendering")
	}
	want := "Normal\nD5 - from 1 to 0\nC6 - from 0 to 1\n"
	if s != want {
		t.Errorf("Move.String() = %q, want %q (no line for the unused slot)", s, want)
	}
}
