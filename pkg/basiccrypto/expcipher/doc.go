// Package expcipher implements the exponentiation cipher c = x^k mod p for
// a prime p larger than every plaintext block.
//
// Decryption raises to k^-1 mod (p-1), so k must be coprime to p-1. With a
// modulus as small as 257 the whole key space can be walked; Search does
// exactly that.
package expcipher
