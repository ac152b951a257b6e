// Implements the naive baseline scan: every discovered prime becomes an
// active modulus immediately, so the digit vector grows with every prime
// found rather than with the primes below sqrt(n). The output sequence is
// identical to the deferred scan; only the amount of digit work differs.

package sieve

// runNaive is the immediate-activation variant. Modulus 2 is active from
// the start with digit 1 (the scan cursor begins at n=1), and each new
// prime p is activated at its discovery candidate, where p's residue is 0.
// No squaring is ever needed because there is no activation schedule.
func (g *Generator) runNaive() ([]uint64, error) {
	count := uint64(g.Config.Count)

	primes := make([]uint64, 0, count)
	primes = append(primes, 2)
	if count == 1 {
		g.finishStats(primes)
		return primes, nil
	}

	g.state.Activate(2, 1)

	n := uint64(1)
	for uint64(len(primes)) < count {
		n += scanStep

		active := g.state.Len()
		g.Stats.DigitWraps += g.state.Advance(scanStep)
		g.Stats.DigitIncrements += uint64(active)

		g.Stats.ZeroChecks++
		if g.state.HasZero() {
			continue
		}

		primes = append(primes, n)
		g.state.Activate(n, 0)
	}

	g.finishStats(primes)
	return primes, nil
}

// GenerateNaive returns the first count primes using the immediate
// activation baseline. Stats is nil unless collectStats is set.
func GenerateNaive(count int64, collectStats bool) ([]uint64, *Stats, error) {
	g := NewGenerator(NewGeneratorConfig(count, collectStats, VariantNaive))
	primes, err := g.Run()
	if err != nil {
		return nil, nil, err
	}
	if !collectStats {
		return primes, nil, nil
	}
	return primes, g.Stats, nil
}
