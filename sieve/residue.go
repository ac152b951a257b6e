// Implements ResidueState, the live set of active moduli and their running
// residues for the current candidate. Residues are maintained purely by
// bounded addition and conditional subtraction; no division or modulus is
// ever computed here.

package sieve

// ResidueState tracks one residue counter ("digit") per active prime
// modulus. After the scan has processed candidate n, digits[k] == n mod
// moduli[k] for every active index k, with every digit kept in
// [0, moduli[k]).
type ResidueState struct {
	moduli []uint64 // active prime moduli, in activation (ascending) order
	digits []uint64 // digits[k] = current candidate mod moduli[k]
}

// NewResidueState returns an empty state with room for capacity moduli.
func NewResidueState(capacity int) *ResidueState {
	return &ResidueState{
		moduli: make([]uint64, 0, capacity),
		digits: make([]uint64, 0, capacity),
	}
}

// Advance bulk-adds step to every digit and wraps each result back into
// [0, modulus). It returns the number of digits that wrapped.
//
// A single conditional subtraction per digit is sufficient: every modulus
// is >= step (the smallest modulus ever activated is 2 and the scan step
// is 2), so an in-range digit can overshoot its modulus by at most step
// after one addition.
func (rs *ResidueState) Advance(step uint64) uint64 {
	moduli := rs.moduli
	// Slicing to len(moduli) lets the compiler drop the bounds checks in
	// the loop body.
	digits := rs.digits[:len(moduli)]
	var wraps uint64
	for k := range digits {
		d := digits[k] + step
		if d >= moduli[k] {
			d -= moduli[k]
			wraps++
		}
		digits[k] = d
	}
	return wraps
}

// HasZero reports whether any active digit is zero, i.e. whether some
// active modulus divides the current candidate. Vacuously false while no
// modulus is active.
func (rs *ResidueState) HasZero() bool {
	for _, d := range rs.digits {
		if d == 0 {
			return true
		}
	}
	return false
}

// Activate appends modulus with the given starting digit. The deferred
// scan always activates at n = p*p where the residue is exactly 0.
func (rs *ResidueState) Activate(modulus, digit uint64) {
	rs.moduli = append(rs.moduli, modulus)
	rs.digits = append(rs.digits, digit)
}

// Len returns the number of active moduli.
func (rs *ResidueState) Len() int {
	return len(rs.moduli)
}

// Moduli returns a copy of the active moduli in activation order.
func (rs *ResidueState) Moduli() []uint64 {
	out := make([]uint64, len(rs.moduli))
	copy(out, rs.moduli)
	return out
}

// Digits returns a copy of the current digits, index-aligned with Moduli.
func (rs *ResidueState) Digits() []uint64 {
	out := make([]uint64, len(rs.digits))
	copy(out, rs.digits)
	return out
}
