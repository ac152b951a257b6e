package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	sieve "github.com/rns-sieve/rns-sieve/sieve"
)

var benchRuns int // Number of timed runs per variant

// variantTiming holds wall-clock samples for one variant, in seconds.
type variantTiming struct {
	variant string
	samples []float64
}

// summarize reports min, median, p90 and max over the sorted samples.
func (vt *variantTiming) summarize() (min, median, p90, max float64) {
	sorted := append([]float64(nil), vt.samples...)
	sort.Float64s(sorted)
	min = sorted[0]
	max = sorted[len(sorted)-1]
	median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return min, median, p90, max
}

// timeVariant runs the variant benchRuns times and records each duration.
func timeVariant(count int64, variant string) (*variantTiming, []uint64, error) {
	vt := &variantTiming{variant: variant, samples: make([]float64, 0, benchRuns)}
	var primes []uint64
	for i := 0; i < benchRuns; i++ {
		g := sieve.NewGenerator(sieve.NewGeneratorConfig(count, false, variant))
		start := time.Now()
		out, err := g.Run()
		if err != nil {
			return nil, nil, err
		}
		vt.samples = append(vt.samples, time.Since(start).Seconds())
		primes = out
	}
	return vt, primes, nil
}

// benchCmd times both scan variants on the same count and checks that they
// agree on the output sequence.
var benchCmd = &cobra.Command{
	Use:   "bench <count>",
	Short: "Benchmark the deferred scan against the naive baseline",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		count, err := parseCount(args[0])
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		deferred, deferredPrimes, err := timeVariant(count, sieve.VariantDeferred)
		if err != nil {
			logrus.Fatalf("Deferred variant failed: %v", err)
		}
		naive, naivePrimes, err := timeVariant(count, sieve.VariantNaive)
		if err != nil {
			logrus.Fatalf("Naive variant failed: %v", err)
		}

		// The two variants must agree on every prime.
		if len(deferredPrimes) != len(naivePrimes) {
			logrus.Fatalf("Variant mismatch: deferred found %d primes, naive found %d", len(deferredPrimes), len(naivePrimes))
		}
		for i := range deferredPrimes {
			if deferredPrimes[i] != naivePrimes[i] {
				logrus.Fatalf("Variant mismatch at index %d: deferred %d, naive %d", i, deferredPrimes[i], naivePrimes[i])
			}
		}

		fmt.Printf("=== Benchmark: first %d primes, %d runs per variant ===\n", count, benchRuns)
		for _, vt := range []*variantTiming{deferred, naive} {
			min, median, p90, max := vt.summarize()
			fmt.Printf("%-9s min %.4fs  median %.4fs  p90 %.4fs  max %.4fs\n", vt.variant, min, median, p90, max)
		}
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchRuns, "runs", 5, "Number of timed runs per variant")
	rootCmd.AddCommand(benchCmd)
}
