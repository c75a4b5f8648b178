// Package modarith implements the modular arithmetic kernel shared by every
// cipher in the toolkit: gcd, the extended Euclidean algorithm and modular
// inverses, all over math/big integers.
//
// MultiplicativeInverse runs in O(log n) via EGCD. There is no brute-force
// fallback; trying every candidate residue is only practical for toy moduli.
package modarith
