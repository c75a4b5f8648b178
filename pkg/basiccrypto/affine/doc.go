// Package affine implements the affine block cipher
//
//	c = (a*p + b) mod 256^k
//
// over blocks produced by the blockcodec package, together with the
// known-plaintext attacks that show why the scheme is insecure.
//
// A key (a, b) can decrypt only when a is odd, that is coprime to 256^k.
// Two plaintext/ciphertext block pairs are enough to recover the key up to
// gcd ambiguity; SolveKeys enumerates every consistent key and Crack drives
// it from a plaintext crib.
package affine
