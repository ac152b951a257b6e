// Implements the Generator, the scan loop that produces the prime sequence.
// Odd candidates are visited in order; the residue digits decide primality
// and newly found primes are scheduled for activation at their square.

package sieve

import (
	"github.com/sirupsen/logrus"
)

// scanStep is the candidate stride. Only odd integers are visited; 2 is
// seeded as the lone even prime.
const scanStep = 2

// maxSquarablePrime is the largest prime whose square still fits in uint64.
const maxSquarablePrime = 1<<32 - 1

// Generator produces the first Config.Count primes. Each Generator owns its
// own residue state and pending queue; nothing is shared between runs.
type Generator struct {
	Config GeneratorConfig
	Stats  *Stats

	state   *ResidueState
	pending *PendingQueue
}

// NewGenerator creates a Generator for the given configuration. The
// configuration is validated by Run, not here.
func NewGenerator(cfg GeneratorConfig) *Generator {
	return &Generator{
		Config:  cfg,
		Stats:   &Stats{},
		state:   NewResidueState(64),
		pending: &PendingQueue{},
	}
}

// Run executes the configured variant and returns the prime sequence. The
// Stats field is fully populated afterwards. On error no partial sequence
// is returned.
func (g *Generator) Run() ([]uint64, error) {
	if err := validateCount(g.Config.Count); err != nil {
		return nil, err
	}
	if g.Config.Variant == VariantNaive {
		return g.runNaive()
	}
	return g.runDeferred()
}

// runDeferred is the deferred-activation scan: a discovered prime p joins
// the active moduli only once the candidate reaches p*p, where its residue
// is exactly 0. Until then p cannot divide any candidate, so it is not
// consulted.
func (g *Generator) runDeferred() ([]uint64, error) {
	count := uint64(g.Config.Count)

	primes := make([]uint64, 0, count)
	primes = append(primes, 2)
	if count == 1 {
		g.finishStats(primes)
		return primes, nil
	}

	// The scan starts at n=1 so the first candidate visited is 3. Folding
	// 2 into the loop would need a step-1 phase first and change the
	// counters, so it stays a seeded special case.
	n := uint64(1)
	for uint64(len(primes)) < count {
		n += scanStep

		if active := g.state.Len(); active > 0 {
			g.Stats.DigitWraps += g.state.Advance(scanStep)
			g.Stats.DigitIncrements += uint64(active)
		}

		for head := g.pending.Peek(); head != nil && head.Square == n; head = g.pending.Peek() {
			act := g.pending.Dequeue()
			// At n = p*p the residue n mod p is 0 by construction.
			g.state.Activate(act.Prime, 0)
			logrus.Debugf("activated modulus %d at candidate %d", act.Prime, n)
		}

		g.Stats.ZeroChecks++
		if g.state.HasZero() {
			continue
		}

		primes = append(primes, n)
		if n > maxSquarablePrime {
			return nil, &OverflowError{Prime: n}
		}
		g.pending.Enqueue(n, n*n)
		g.Stats.SquareMultiplies++
	}

	g.finishStats(primes)
	return primes, nil
}

// finishStats fills the summary fields once the scan terminates.
func (g *Generator) finishStats(primes []uint64) {
	g.Stats.TotalPrimesFound = uint64(len(primes))
	g.Stats.ActiveModuliFinal = g.state.Len()
	if len(primes) > 0 {
		g.Stats.MaxPrime = primes[len(primes)-1]
	}
}

// Generate returns the first count primes using the deferred-activation
// scan. Stats is nil unless collectStats is set.
func Generate(count int64, collectStats bool) ([]uint64, *Stats, error) {
	g := NewGenerator(NewGeneratorConfig(count, collectStats, VariantDeferred))
	primes, err := g.Run()
	if err != nil {
		return nil, nil, err
	}
	if !collectStats {
		return primes, nil, nil
	}
	return primes, g.Stats, nil
}
