package sieve

import (
	"testing"
)

func TestResidueState_Advance_WrapsAtMostOnce(t *testing.T) {
	// GIVEN digits [1, 2] for moduli [3, 5]
	rs := NewResidueState(4)
	rs.Activate(3, 1)
	rs.Activate(5, 2)

	// WHEN Advance(2) is called
	wraps := rs.Advance(2)

	// THEN the first digit wraps (1+2=3 -> 0) and the second does not (2+2=4)
	digits := rs.Digits()
	if digits[0] != 0 {
		t.Errorf("digit[0]: got %d, want 0", digits[0])
	}
	if digits[1] != 4 {
		t.Errorf("digit[1]: got %d, want 4", digits[1])
	}
	if wraps != 1 {
		t.Errorf("wraps: got %d, want 1", wraps)
	}
}

func TestResidueState_Advance_ModulusTwo(t *testing.T) {
	// GIVEN modulus 2 with digit 1 (an odd candidate)
	rs := NewResidueState(1)
	rs.Activate(2, 1)

	// WHEN Advance(2) is called repeatedly
	// THEN the digit stays 1 and wraps every step (odd candidates are
	// never divisible by 2)
	for i := 0; i < 5; i++ {
		wraps := rs.Advance(2)
		if wraps != 1 {
			t.Fatalf("step %d: wraps got %d, want 1", i, wraps)
		}
		if d := rs.Digits()[0]; d != 1 {
			t.Fatalf("step %d: digit got %d, want 1", i, d)
		}
	}
}

func TestResidueState_HasZero_EmptyState(t *testing.T) {
	// GIVEN a state with no active moduli
	rs := NewResidueState(0)

	// WHEN HasZero() is called
	// THEN it reports false: with nothing active, nothing divides the candidate
	if rs.HasZero() {
		t.Error("HasZero on empty state: got true, want false")
	}
}

func TestResidueState_Activate_KeepsSlicesAligned(t *testing.T) {
	// GIVEN an empty state
	rs := NewResidueState(2)

	// WHEN three moduli are activated
	rs.Activate(3, 0)
	rs.Activate(5, 0)
	rs.Activate(7, 0)

	// THEN moduli and digits stay index-aligned and in activation order
	if rs.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", rs.Len())
	}
	moduli := rs.Moduli()
	digits := rs.Digits()
	if len(moduli) != len(digits) {
		t.Fatalf("moduli/digits length mismatch: %d vs %d", len(moduli), len(digits))
	}
	want := []uint64{3, 5, 7}
	for i, m := range moduli {
		if m != want[i] {
			t.Errorf("moduli[%d]: got %d, want %d", i, m, want[i])
		}
	}
}

func TestResidueState_TracksResiduesThroughScan(t *testing.T) {
	// GIVEN moduli {3, 5, 7} seeded with the true residues of n=9
	start := uint64(9)
	moduli := []uint64{3, 5, 7}
	rs := NewResidueState(len(moduli))
	for _, m := range moduli {
		rs.Activate(m, start%m)
	}

	// WHEN the scan advances through 200 odd candidates
	// THEN every tracked digit equals the independently computed residue
	n := start
	for step := 0; step < 200; step++ {
		n += 2
		rs.Advance(2)
		digits := rs.Digits()
		for k, m := range moduli {
			if digits[k] != n%m {
				t.Fatalf("candidate %d, modulus %d: digit got %d, want %d", n, m, digits[k], n%m)
			}
		}
	}
}

func TestResidueState_Snapshots_AreCopies(t *testing.T) {
	// GIVEN an active state
	rs := NewResidueState(1)
	rs.Activate(3, 1)

	// WHEN the returned snapshots are mutated
	rs.Moduli()[0] = 99
	rs.Digits()[0] = 99

	// THEN the internal state is unaffected
	if rs.Moduli()[0] != 3 || rs.Digits()[0] != 1 {
		t.Error("snapshot mutation leaked into ResidueState")
	}
}
