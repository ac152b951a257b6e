// Package sieve implements an incremental residue-number-system (RNS) prime
// generator that finds primes without ever dividing or computing a modulus.
//
// # Reading Guide
//
// Start with these three files to understand the generator kernel:
//   - residue.go: ResidueState, the per-prime residue counters and their
//     bulk advance/wrap update
//   - pending.go: PendingQueue, primes waiting for activation at their square
//   - engine.go: the scan loop over odd candidates and the deferred-activation
//     schedule
//
// # Method
//
// For every tracked prime p the generator maintains digit = n mod p for the
// current candidate n, updated only by bounded addition and conditional
// subtraction. A candidate is prime exactly when no tracked digit is zero.
// A discovered prime p only starts being tracked once the scan reaches p*p,
// so the active set holds just the primes <= sqrt(n).
//
// naive.go keeps the unoptimized baseline that activates every prime the
// moment it is found; it produces the same sequence and exists for
// comparison benchmarks.
package sieve
