// Tracks generation-wide work counters such as digit increments and wraps.

package sieve

import (
	"fmt"
	"io"
	"os"
)

// Stats aggregates operation counts for one generation run. Useful for
// comparing the deferred-activation scan against the naive baseline, since
// the prime sequences themselves are identical.
type Stats struct {
	TotalPrimesFound  uint64 // number of primes produced, including the seeded 2
	SquareMultiplies  uint64 // squarings performed when scheduling activations
	DigitIncrements   uint64 // total digit += step operations
	DigitWraps        uint64 // digits that wrapped back into range
	ZeroChecks        uint64 // candidates tested for a zero digit
	ActiveModuliFinal int    // active moduli when the run finished
	MaxPrime          uint64 // largest prime produced
}

// Fprint writes the counters to w in the final-report format.
func (s *Stats) Fprint(w io.Writer) {
	fmt.Fprintln(w, "=== Generation Stats ===")
	fmt.Fprintf(w, "Primes Found         : %d\n", s.TotalPrimesFound)
	fmt.Fprintf(w, "Max Prime            : %d\n", s.MaxPrime)
	fmt.Fprintf(w, "Square Multiplies    : %d\n", s.SquareMultiplies)
	fmt.Fprintf(w, "Digit Increments     : %d\n", s.DigitIncrements)
	fmt.Fprintf(w, "Digit Wraps          : %d\n", s.DigitWraps)
	fmt.Fprintf(w, "Zero Checks          : %d\n", s.ZeroChecks)
	fmt.Fprintf(w, "Final Active Moduli  : %d\n", s.ActiveModuliFinal)
}

// Print displays the counters at the end of a generation run.
func (s *Stats) Print() {
	s.Fprint(os.Stdout)
}
