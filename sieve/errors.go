package sieve

import "fmt"

// MaxCount is the largest number of primes a single generation run accepts.
const MaxCount = 1_000_000_000

// InvalidCountError reports a requested prime count outside [1, MaxCount].
// It is returned before any generation work starts, so the caller can
// recover cleanly.
type InvalidCountError struct {
	Count int64 // the rejected request
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("invalid prime count %d: must be between 1 and %d", e.Count, int64(MaxCount))
}

// OverflowError reports that a discovered prime cannot be squared within
// the uint64 working range. The generation run is abandoned; no partial
// prime list is returned.
type OverflowError struct {
	Prime uint64 // the prime whose square would overflow
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("prime %d overflows the 64-bit working range when squared", e.Prime)
}

// validateCount rejects counts outside [1, MaxCount].
func validateCount(count int64) error {
	if count < 1 || count > MaxCount {
		return &InvalidCountError{Count: count}
	}
	return nil
}
