// Package primality implements deterministic and probabilistic primality
// tests along with trial-division factoring.
//
// IsPrime, NextPrime, Factor and EulerPhi are exact and run in O(√n); they
// are meant for inputs up to roughly 10^12. IsProbablyPrime and
// NextProbablePrime run the Miller–Rabin test with random bases and handle
// numbers of any size, at the cost of a false positive probability of at
// most 4^-rounds.
//
// The strong pseudoprime check comes in two flavors selected by Witness:
//
//   - WitnessFull runs the complete squaring ladder and never rejects a prime.
//   - WitnessFirstStep only inspects base^m for n-1 = 2^e*m. It is kept for
//     comparison with the simpler classroom formulation and rejects some
//     primes (5 fails for every base in [2, 3]).
package primality
