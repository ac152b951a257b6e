package sieve

// Variant names for GeneratorConfig.Variant.
const (
	// VariantDeferred activates a modulus only once the scan reaches the
	// prime's square, bounding the active set to primes <= sqrt(n).
	VariantDeferred = "deferred"

	// VariantNaive activates every prime the moment it is found. Same
	// output, asymptotically more digit work; kept as the baseline.
	VariantNaive = "naive"
)

// GeneratorConfig groups the parameters of one generation run.
type GeneratorConfig struct {
	Count        int64  // number of primes to produce, in [1, MaxCount]
	CollectStats bool   // assemble a Stats record alongside the primes
	Variant      string // "deferred" (default) or "naive"
}

// Validate reports whether the configured count is acceptable.
func (c GeneratorConfig) Validate() error {
	return validateCount(c.Count)
}

// NewGeneratorConfig creates a GeneratorConfig. An empty variant selects
// the deferred scan.
func NewGeneratorConfig(count int64, collectStats bool, variant string) GeneratorConfig {
	if variant == "" {
		variant = VariantDeferred
	}
	return GeneratorConfig{
		Count:        count,
		CollectStats: collectStats,
		Variant:      variant,
	}
}
