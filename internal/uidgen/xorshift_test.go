package uidgen

import "testing"

func TestGenerator_ProducesValuesInRange(t *testing.T) {
	g := New(42)
	for i := 0; i < 1000; i++ {
		v := g.Next()
		if v < MinAssigned || v > Max24Bit {
			t.Fatalf("value out of range: %d", v)
		}
	}
}

func TestGenerator_ZeroSeedIsUsable(t *testing.T) {
	g := New(0)
	v := g.Next()
	if v < MinAssigned || v > Max24Bit {
		t.Fatalf("value out of range: %d", v)
	}
}

func TestGenerator_AssignSkipsTaken(t *testing.T) {
	g := New(7)
	taken := map[uint32]bool{}
	first := g.Assign(func(v uint32) bool { return taken[v] })
	taken[first] = true
	second := g.Assign(func(v uint32) bool { return taken[v] })
	if first == second {
		t.Fatalf("expected distinct uids, got %d twice", first)
	}
}
